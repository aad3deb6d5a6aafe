package ir

type Type int

const (
	StringType Type = iota
	SymbolType
	NumberType
	ObjectType
	ArrayType
	OtherType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		StringType: "String",
		SymbolType: "Symbol",
		NumberType: "Number",
		ObjectType: "Object",
		ArrayType:  "Array",
		OtherType:  "Other",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func Types() []Type {
	return []Type{
		StringType,
		SymbolType,
		NumberType,
		ObjectType,
		ArrayType,
		OtherType,
	}
}
