package types

import "fmt"

// Field is one member of a struct type. Offset is computed during layout.
type Field struct {
	Name   string
	Type   Type
	Offset int
}

// StructType is an aggregate with SysV-style layout: each field is placed at
// the next offset aligned to its natural alignment, and the total size is
// rounded up to the struct's alignment. Structs are Types but not Params.
type StructType struct {
	name   string
	fields []Field
	size   int
	align  int
}

// NewStruct lays out the given fields and returns the resulting struct type.
// Field types must be complete: void fields and nil field types are rejected.
func NewStruct(name string, fields []Field) (*StructType, error) {
	st := &StructType{name: name, align: 1}
	st.fields = make([]Field, len(fields))
	off := 0
	for i, f := range fields {
		if f.Type == nil {
			return nil, fmt.Errorf("struct %s: field %s has no type", name, f.Name)
		}
		if f.Type.Tag() == VOID_TAG {
			return nil, fmt.Errorf("struct %s: field %s cannot be void", name, f.Name)
		}
		a := f.Type.Alignment()
		off = alignUp(off, a)
		st.fields[i] = Field{Name: f.Name, Type: f.Type, Offset: off}
		off += f.Type.Size()
		if a > st.align {
			st.align = a
		}
	}
	st.size = alignUp(off, st.align)
	return st, nil
}

func (s *StructType) Tag() NativeTag { return STRUCT_TAG }
func (s *StructType) Name() string   { return s.name }
func (s *StructType) Size() int      { return s.size }
func (s *StructType) Alignment() int { return s.align }

// Fields returns a copy of the laid-out fields, offsets filled in.
func (s *StructType) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

func alignUp(off, align int) int {
	return (off + align - 1) &^ (align - 1)
}
