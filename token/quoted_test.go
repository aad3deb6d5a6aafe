package token

import "testing"

func TestNeedsQuote(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"ab", false},
		{"", false},
		{"a b", true},
		{"a:b", true},
		{" ", true},
		{":", true},
		{"host:port", true},
		{"with-dash_and.dot", false},
		{`embedded"quote`, false},
		{`back\slash`, false},
	}
	for _, tt := range tests {
		if got := NeedsQuote(tt.in); got != tt.want {
			t.Errorf("NeedsQuote(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a b", `"a b"`},
		{"a:b", `"a:b"`},
		// embedded quotes stay verbatim, no escaping
		{`a "b"`, `"a "b""`},
	}
	for _, tt := range tests {
		if got := Quote(tt.in); got != tt.want {
			t.Errorf("Quote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
