// Package qbin implements the typed, offset-addressed binary codec for a
// Quill project's Scene.qbin payload: a byte cursor, fixed-width
// little-endian primitive encode/decode, static record schemas, and the
// recursive record codec that walks them.
package qbin

import (
	"fmt"
	"math"
)

// Declared byte widths of the primitive and compound types.
const (
	WidthU8        = 1
	WidthI16       = 2
	WidthI32       = 4
	WidthF32       = 4
	WidthBool      = 1
	WidthVec3      = 12
	WidthBBox      = 24
	WidthBrushType = 2
	WidthVertex    = 56
)

// Raw holds a span of bytes whose meaning is unidentified. It is preserved
// verbatim across decode/encode rather than interpreted as a typed scalar;
// a typed bool or int would lose information for non-canonical input
// bytes.
type Raw []byte

// Clone returns a copy of r, detached from the source buffer.
func (r Raw) Clone() Raw {
	out := make(Raw, len(r))
	copy(out, r)
	return out
}

// appendRaw appends r to dst at its declared width, zero-padding a short
// or nil span so a record whose unknown fields were never populated still
// encodes to the declared layout.
func appendRaw(dst []byte, r Raw, width int) []byte {
	if len(r) > width {
		r = r[:width]
	}
	dst = append(dst, r...)
	for i := len(r); i < width; i++ {
		dst = append(dst, 0)
	}
	return dst
}

// DecodeRaw returns a copy of exactly width bytes at the front of b.
func DecodeRaw(b []byte, width int) (Raw, error) {
	if len(b) != width {
		return nil, fmt.Errorf("%w: raw field wants %d bytes, got %d", ErrInvalidPrimitive, width, len(b))
	}
	return Raw(b).Clone(), nil
}

// EncodeU8 encodes a u8 value.
func EncodeU8(v uint8) []byte { return []byte{v} }

// DecodeU8 decodes a u8 value.
func DecodeU8(b []byte) (uint8, error) {
	if len(b) != WidthU8 {
		return 0, fmt.Errorf("%w: u8 wants %d bytes, got %d", ErrInvalidPrimitive, WidthU8, len(b))
	}
	return b[0], nil
}

// EncodeI16 encodes an i16 value, little-endian.
func EncodeI16(v int16) []byte {
	u := uint16(v)
	return []byte{byte(u), byte(u >> 8)}
}

// DecodeI16 decodes an i16 value, little-endian.
func DecodeI16(b []byte) (int16, error) {
	if len(b) != WidthI16 {
		return 0, fmt.Errorf("%w: i16 wants %d bytes, got %d", ErrInvalidPrimitive, WidthI16, len(b))
	}
	return int16(uint16(b[0]) | uint16(b[1])<<8), nil
}

// EncodeI32 encodes an i32 value, little-endian.
func EncodeI32(v int32) []byte {
	u := uint32(v)
	return []byte{byte(u), byte(u >> 8), byte(u >> 16), byte(u >> 24)}
}

// DecodeI32 decodes an i32 value, little-endian.
func DecodeI32(b []byte) (int32, error) {
	if len(b) != WidthI32 {
		return 0, fmt.Errorf("%w: i32 wants %d bytes, got %d", ErrInvalidPrimitive, WidthI32, len(b))
	}
	u := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return int32(u), nil
}

// EncodeF32 encodes an f32 value, little-endian IEEE 754.
func EncodeF32(v float32) []byte {
	return EncodeI32(int32(math.Float32bits(v)))
}

// DecodeF32 decodes an f32 value, little-endian IEEE 754.
func DecodeF32(b []byte) (float32, error) {
	i, err := DecodeI32(b)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	return math.Float32frombits(uint32(i)), nil
}

// EncodeBool canonicalizes a bool to {0x00, 0x01}.
func EncodeBool(v bool) []byte {
	if v {
		return []byte{0x01}
	}
	return []byte{0x00}
}

// DecodeBool decodes a bool: any nonzero byte is true.
func DecodeBool(b []byte) (bool, error) {
	if len(b) != WidthBool {
		return false, fmt.Errorf("%w: bool wants %d bytes, got %d", ErrInvalidPrimitive, WidthBool, len(b))
	}
	return b[0] != 0, nil
}
