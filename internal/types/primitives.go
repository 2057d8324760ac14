package types

// Primitive is a fixed-layout builtin type: void, the integer widths and the
// two float widths. Instances are shared package-level singletons.
type Primitive struct {
	name  string
	tag   NativeTag
	size  int
	align int
}

func (p *Primitive) Tag() NativeTag { return p.tag }
func (p *Primitive) Name() string   { return p.name }
func (p *Primitive) Size() int      { return p.size }
func (p *Primitive) Alignment() int { return p.align }
func (p *Primitive) NativeParam()   {}

var (
	Void    = &Primitive{"Void", VOID_TAG, 0, 1}
	Int8    = &Primitive{"Int8", INT8_TAG, 1, 1}
	UInt8   = &Primitive{"UInt8", UINT8_TAG, 1, 1}
	Int16   = &Primitive{"Int16", INT16_TAG, 2, 2}
	UInt16  = &Primitive{"UInt16", UINT16_TAG, 2, 2}
	Int32   = &Primitive{"Int32", INT32_TAG, 4, 4}
	UInt32  = &Primitive{"UInt32", UINT32_TAG, 4, 4}
	Int64   = &Primitive{"Int64", INT64_TAG, 8, 8}
	UInt64  = &Primitive{"UInt64", UINT64_TAG, 8, 8}
	Float32 = &Primitive{"Float32", FLOAT32_TAG, 4, 4}
	Float64 = &Primitive{"Float64", FLOAT64_TAG, 8, 8}
)
