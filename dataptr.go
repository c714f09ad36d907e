package imgcore

// DataPtr is a mutable reference to row 0 of a contiguous byte buffer.
// It never owns the buffer; an owning image holds one internally and
// hands out views built on top of it.
type DataPtr struct {
	buf []byte
}

// NewDataPtr wraps buf. A nil buf represents the null pointer.
func NewDataPtr(buf []byte) DataPtr { return DataPtr{buf: buf} }

// IsNil reports whether the pointer is null.
func (p DataPtr) IsNil() bool { return p.buf == nil }

// Bytes returns the underlying buffer.
func (p DataPtr) Bytes() []byte { return p.buf }

// AsConst produces the read-only counterpart. The reverse conversion
// does not exist: a ConstDataPtr cannot be turned back into a DataPtr,
// matching the one-directional Mutable-to-Constant coercion spec.md §3
// requires of the modifiability tag.
func (p DataPtr) AsConst() ConstDataPtr { return ConstDataPtr{buf: p.buf} }

// ConstDataPtr is the read-only counterpart of DataPtr.
type ConstDataPtr struct {
	buf []byte
}

// NewConstDataPtr wraps buf as read-only.
func NewConstDataPtr(buf []byte) ConstDataPtr { return ConstDataPtr{buf: buf} }

// IsNil reports whether the pointer is null.
func (p ConstDataPtr) IsNil() bool { return p.buf == nil }

// Bytes returns the underlying buffer. Callers must not mutate it; Go
// has no way to enforce that at the type level for a byte slice, so
// this is a documented contract rather than a compiler-checked one.
func (p ConstDataPtr) Bytes() []byte { return p.buf }
