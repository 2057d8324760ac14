package types

import "testing"

func TestRegistryRegisterAndLookup(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("i32", Int32); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	got, ok := reg.Lookup("i32")
	if !ok || got != Type(Int32) {
		t.Errorf("Lookup(i32) = %v, %t; want Int32, true", got, ok)
	}
	if _, ok := reg.Lookup("missing"); ok {
		t.Errorf("Lookup(missing) ok = true, want false")
	}
}

func TestRegistryRejectsDuplicatesAndNil(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("x", Int8); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if err := reg.Register("x", Int16); err == nil {
		t.Errorf("duplicate Register(x): want error")
	}
	if err := reg.Register("y", nil); err == nil {
		t.Errorf("Register(nil type): want error")
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := reg.Register(name, Int32); err != nil {
			t.Fatalf("Register(%s) error: %v", name, err)
		}
	}
	names := reg.Names()
	want := []string{"alpha", "mid", "zeta"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}
}

func TestDefaultRegistry(t *testing.T) {
	reg := Default()
	if reg != Default() {
		t.Fatalf("Default() is not a singleton")
	}

	tests := []struct {
		name string
		want Type
	}{
		{"void", Void},
		{"int32", Int32},
		{"pointer", Pointer},
		{"float64", Float64},
		// C-style aliases resolve to the same singletons.
		{"char", Int8},
		{"uchar", UInt8},
		{"double", Float64},
		{"int", Int32},
	}
	for _, tt := range tests {
		got, ok := reg.Lookup(tt.name)
		if !ok {
			t.Errorf("Lookup(%q) not found", tt.name)
			continue
		}
		if got != tt.want {
			t.Errorf("Lookup(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
