package qbin

// Vec3 is a 3-component float32 vector, 12 bytes on the wire.
type Vec3 struct {
	X, Y, Z float32
}

// DecodeVec3 reads a Vec3 from the front of a ByteCursor.
func DecodeVec3(c *ByteCursor) (Vec3, error) {
	b, err := c.Next(WidthVec3)
	if err != nil {
		return Vec3{}, err
	}
	x, err := DecodeF32(b[0:4])
	if err != nil {
		return Vec3{}, err
	}
	y, err := DecodeF32(b[4:8])
	if err != nil {
		return Vec3{}, err
	}
	z, err := DecodeF32(b[8:12])
	if err != nil {
		return Vec3{}, err
	}
	return Vec3{X: x, Y: y, Z: z}, nil
}

// Encode appends the Vec3's little-endian byte representation to dst.
func (v Vec3) Encode(dst []byte) []byte {
	dst = append(dst, EncodeF32(v.X)...)
	dst = append(dst, EncodeF32(v.Y)...)
	dst = append(dst, EncodeF32(v.Z)...)
	return dst
}
