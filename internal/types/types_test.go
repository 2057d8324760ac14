package types

import "testing"

func TestPrimitiveLayout(t *testing.T) {
	tests := []struct {
		typ       *Primitive
		wantName  string
		wantTag   NativeTag
		wantSize  int
		wantAlign int
	}{
		{Void, "Void", VOID_TAG, 0, 1},
		{Int8, "Int8", INT8_TAG, 1, 1},
		{UInt8, "UInt8", UINT8_TAG, 1, 1},
		{Int16, "Int16", INT16_TAG, 2, 2},
		{UInt16, "UInt16", UINT16_TAG, 2, 2},
		{Int32, "Int32", INT32_TAG, 4, 4},
		{UInt32, "UInt32", UINT32_TAG, 4, 4},
		{Int64, "Int64", INT64_TAG, 8, 8},
		{UInt64, "UInt64", UINT64_TAG, 8, 8},
		{Float32, "Float32", FLOAT32_TAG, 4, 4},
		{Float64, "Float64", FLOAT64_TAG, 8, 8},
	}

	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			if tt.typ.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", tt.typ.Name(), tt.wantName)
			}
			if tt.typ.Tag() != tt.wantTag {
				t.Errorf("Tag() = %v, want %v", tt.typ.Tag(), tt.wantTag)
			}
			if tt.typ.Size() != tt.wantSize {
				t.Errorf("Size() = %d, want %d", tt.typ.Size(), tt.wantSize)
			}
			if tt.typ.Alignment() != tt.wantAlign {
				t.Errorf("Alignment() = %d, want %d", tt.typ.Alignment(), tt.wantAlign)
			}
		})
	}
}

func TestTagPredicates(t *testing.T) {
	if !INT32_TAG.IsInteger() || UINT64_TAG.IsInteger() == false {
		t.Errorf("integer tags not recognized")
	}
	if VOID_TAG.IsInteger() || POINTER_TAG.IsInteger() || FLOAT32_TAG.IsInteger() {
		t.Errorf("non-integer tag reported as integer")
	}
	if !FLOAT32_TAG.IsFloat() || !FLOAT64_TAG.IsFloat() {
		t.Errorf("float tags not recognized")
	}
	if INT32_TAG.IsFloat() {
		t.Errorf("INT32 reported as float")
	}
}

func TestPointerType(t *testing.T) {
	if Pointer.Tag() != POINTER_TAG {
		t.Errorf("Pointer.Tag() = %v, want POINTER_TAG", Pointer.Tag())
	}
	if Pointer.Size() != PointerSize || Pointer.Alignment() != PointerSize {
		t.Errorf("Pointer layout = %d/%d, want %d/%d", Pointer.Size(), Pointer.Alignment(), PointerSize, PointerSize)
	}
	if Pointer.Pointee() != nil {
		t.Errorf("untyped Pointer has pointee %v", Pointer.Pointee())
	}

	if NewPointer(nil) != Pointer {
		t.Errorf("NewPointer(nil) is not the untyped singleton")
	}
	p := NewPointer(Int32)
	if p.Pointee() != Type(Int32) {
		t.Errorf("Pointee() = %v, want Int32", p.Pointee())
	}
	// Pointee never changes size, alignment, or tag.
	if p.Size() != Pointer.Size() || p.Tag() != POINTER_TAG {
		t.Errorf("typed pointer layout differs from untyped")
	}
}
