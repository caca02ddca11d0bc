package qbin

// BBox is an axis-aligned bounding box: six float32 bounds, 24 bytes.
type BBox struct {
	MinX, MaxX float32
	MinY, MaxY float32
	MinZ, MaxZ float32
}

// DecodeBBox reads a BBox from the front of a ByteCursor.
func DecodeBBox(c *ByteCursor) (BBox, error) {
	b, err := c.Next(WidthBBox)
	if err != nil {
		return BBox{}, err
	}
	vals := [6]float32{}
	for i := range vals {
		v, err := DecodeF32(b[i*4 : i*4+4])
		if err != nil {
			return BBox{}, err
		}
		vals[i] = v
	}
	return BBox{
		MinX: vals[0], MaxX: vals[1],
		MinY: vals[2], MaxY: vals[3],
		MinZ: vals[4], MaxZ: vals[5],
	}, nil
}

// Encode appends the BBox's little-endian byte representation to dst.
func (b BBox) Encode(dst []byte) []byte {
	dst = append(dst, EncodeF32(b.MinX)...)
	dst = append(dst, EncodeF32(b.MaxX)...)
	dst = append(dst, EncodeF32(b.MinY)...)
	dst = append(dst, EncodeF32(b.MaxY)...)
	dst = append(dst, EncodeF32(b.MinZ)...)
	dst = append(dst, EncodeF32(b.MaxZ)...)
	return dst
}
