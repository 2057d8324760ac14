package types

// PointerType is a native pointer. It may optionally record what it points
// at; the pointee does not affect size, alignment, or tag.
type PointerType struct {
	pointee Type // nil for an untyped pointer
}

// Pointer is the untyped pointer singleton (void*).
var Pointer = &PointerType{}

// NewPointer returns a pointer type with the given pointee. A nil pointee
// yields the untyped Pointer singleton.
func NewPointer(pointee Type) *PointerType {
	if pointee == nil {
		return Pointer
	}
	return &PointerType{pointee: pointee}
}

func (p *PointerType) Tag() NativeTag { return POINTER_TAG }
func (p *PointerType) Name() string   { return "Pointer" }
func (p *PointerType) Size() int      { return PointerSize }
func (p *PointerType) Alignment() int { return PointerSize }
func (p *PointerType) NativeParam()   {}

// Pointee returns the pointed-at type, or nil for an untyped pointer.
func (p *PointerType) Pointee() Type { return p.pointee }
