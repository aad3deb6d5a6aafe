package gomap

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/beji/to-yaml/encode"
	"github.com/beji/to-yaml/ir"
)

func TestToIRScalars(t *testing.T) {
	tests := []struct {
		name string
		in   any
		typ  ir.Type
	}{
		{"string", "a", ir.StringType},
		{"int", 1, ir.NumberType},
		{"int64", int64(1), ir.NumberType},
		{"uint", uint(1), ir.NumberType},
		{"float", 1.5, ir.NumberType},
		{"bool", true, ir.OtherType},
		{"nil", nil, ir.OtherType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := ToIR(tt.in)
			if err != nil {
				t.Fatalf("ToIR(%v): %v", tt.in, err)
			}
			if node.Type != tt.typ {
				t.Errorf("Type = %s, want %s", node.Type, tt.typ)
			}
		})
	}
}

func TestToIRStructOrderAndTags(t *testing.T) {
	type service struct {
		Name     string `yaml:"name"`
		Port     int    `yaml:"port"`
		Replicas int
		Secret   string `yaml:"-"`
		internal string
	}
	node, err := ToIR(service{Name: "web", Port: 80, Replicas: 3, Secret: "x", internal: "y"})
	if err != nil {
		t.Fatal(err)
	}
	got := encode.MustString(node)
	want := "name: web\nport: 80\nReplicas: 3\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestToIRNested(t *testing.T) {
	type port struct {
		Port       int `yaml:"port"`
		TargetPort int `yaml:"targetPort"`
	}
	type spec struct {
		Ports    []port            `yaml:"ports"`
		Selector map[string]string `yaml:"selector"`
	}
	node, err := ToIR(spec{
		Ports:    []port{{Port: 80, TargetPort: 8080}},
		Selector: map[string]string{"b": "2", "a": "1"},
	})
	if err != nil {
		t.Fatal(err)
	}
	got := encode.MustString(node)
	want := strings.Join([]string{
		"ports:",
		"  - port: 80",
		"    targetPort: 8080",
		"selector:",
		"  a: 1",
		"  b: 2",
	}, "\n") + "\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestToIRPointers(t *testing.T) {
	v := 80
	node, err := ToIR(map[string]*int{"port": &v, "none": nil})
	if err != nil {
		t.Fatal(err)
	}
	port := ir.Get(node, "port")
	if port == nil || port.Type != ir.NumberType || *port.Int64 != 80 {
		t.Errorf("port = %+v, want number 80", port)
	}
	none := ir.Get(node, "none")
	if none == nil || none.Type != ir.OtherType || none.Value != nil {
		t.Errorf("none = %+v, want nil other", none)
	}
}

func TestToIRUnsupported(t *testing.T) {
	type bad struct {
		Ch chan int `yaml:"ch"`
	}
	_, err := ToIR(bad{})
	if err == nil {
		t.Fatal("expected error for chan field")
	}
	merr, ok := err.(*MarshalError)
	if !ok {
		t.Fatalf("error type %T, want *MarshalError", err)
	}
	if merr.FieldPath != "ch" {
		t.Errorf("FieldPath = %q, want ch", merr.FieldPath)
	}
}

func TestToIRUnsupportedMapKey(t *testing.T) {
	_, err := ToIR(map[int]string{1: "a"})
	if err == nil {
		t.Fatal("expected error for int map key")
	}
	if _, ok := err.(*MarshalError); !ok {
		t.Fatalf("error type %T, want *MarshalError", err)
	}
}
