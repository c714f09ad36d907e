package imgcore

import "errors"

// Sentinel errors for the taxonomy in spec.md §7. Callers match with
// errors.Is; functions that need to attach context wrap one of these
// with fmt.Errorf's %w verb rather than minting a new error value.
var (
	ErrShapeMismatch         = errors.New("imgcore: shape mismatch")
	ErrUnsupportedConversion = errors.New("imgcore: unsupported conversion")
	ErrInvalidPhase          = errors.New("imgcore: invalid phase")
	ErrCannotReallocateView  = errors.New("imgcore: cannot reallocate a view-backed image")
	ErrDecodeFailure         = errors.New("imgcore: decode failure")
	ErrEncodeFailure         = errors.New("imgcore: encode failure")
	ErrAccessOutOfBounds     = errors.New("imgcore: access out of bounds")
	ErrAllocationFailure     = errors.New("imgcore: allocation failure")
)
