package types

// NativeTag identifies how a value is represented at the foreign-function
// boundary. The set is closed: every Type maps onto exactly one tag.
type NativeTag string

const (
	VOID_TAG    NativeTag = "VOID"
	INT8_TAG    NativeTag = "INT8"
	UINT8_TAG   NativeTag = "UINT8"
	INT16_TAG   NativeTag = "INT16"
	UINT16_TAG  NativeTag = "UINT16"
	INT32_TAG   NativeTag = "INT32"
	UINT32_TAG  NativeTag = "UINT32"
	INT64_TAG   NativeTag = "INT64"
	UINT64_TAG  NativeTag = "UINT64"
	FLOAT32_TAG NativeTag = "FLOAT32"
	FLOAT64_TAG NativeTag = "FLOAT64"
	POINTER_TAG NativeTag = "POINTER"
	STRUCT_TAG  NativeTag = "STRUCT"
)

// IsInteger reports whether the tag is one of the fixed-width integer tags.
func (t NativeTag) IsInteger() bool {
	switch t {
	case INT8_TAG, UINT8_TAG, INT16_TAG, UINT16_TAG, INT32_TAG, UINT32_TAG, INT64_TAG, UINT64_TAG:
		return true
	}
	return false
}

// IsFloat reports whether the tag is a floating-point tag.
func (t NativeTag) IsFloat() bool {
	return t == FLOAT32_TAG || t == FLOAT64_TAG
}
