package qbin

import "errors"

// Error kinds returned by the binary codec. Callers should compare with
// errors.Is; ProjectCodec wraps these with layer_path context before they
// reach the host application.
var (
	// ErrTruncated indicates the buffer is shorter than a schema field,
	// header, or declared sequence requires.
	ErrTruncated = errors.New("qbin: truncated data")

	// ErrInvalidPrimitive indicates a primitive decode received a byte
	// slice of the wrong width.
	ErrInvalidPrimitive = errors.New("qbin: invalid primitive width")

	// ErrInvalidEnum indicates a BrushType code or Picture image_kind
	// outside its declared domain.
	ErrInvalidEnum = errors.New("qbin: invalid enum value")
)
