package png

import "github.com/deepteams/imgcore"

// The PNG bridge reuses imgcore's error taxonomy (spec.md §7) rather
// than minting its own sentinels, exactly as the teacher's webp.go
// reuses its own small error set across encode and decode.
var (
	ErrDecodeFailure = imgcore.ErrDecodeFailure
	ErrEncodeFailure = imgcore.ErrEncodeFailure
	ErrInvalidPhase  = imgcore.ErrInvalidPhase
)
