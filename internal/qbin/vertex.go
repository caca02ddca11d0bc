package qbin

// Vertex is one sampled point along a stroke, 56 bytes on the wire.
type Vertex struct {
	Position Vec3
	Normal   Vec3
	Tangent  Vec3
	Color    Vec3
	Opacity  float32
	Width    float32
}

// DecodeVertex reads a Vertex from the front of a ByteCursor.
func DecodeVertex(c *ByteCursor) (Vertex, error) {
	position, err := DecodeVec3(c)
	if err != nil {
		return Vertex{}, err
	}
	normal, err := DecodeVec3(c)
	if err != nil {
		return Vertex{}, err
	}
	tangent, err := DecodeVec3(c)
	if err != nil {
		return Vertex{}, err
	}
	color, err := DecodeVec3(c)
	if err != nil {
		return Vertex{}, err
	}
	opacityBytes, err := c.Next(WidthF32)
	if err != nil {
		return Vertex{}, err
	}
	opacity, err := DecodeF32(opacityBytes)
	if err != nil {
		return Vertex{}, err
	}
	widthBytes, err := c.Next(WidthF32)
	if err != nil {
		return Vertex{}, err
	}
	width, err := DecodeF32(widthBytes)
	if err != nil {
		return Vertex{}, err
	}
	return Vertex{
		Position: position,
		Normal:   normal,
		Tangent:  tangent,
		Color:    color,
		Opacity:  opacity,
		Width:    width,
	}, nil
}

// Encode appends the Vertex's little-endian byte representation to dst.
func (v Vertex) Encode(dst []byte) []byte {
	dst = v.Position.Encode(dst)
	dst = v.Normal.Encode(dst)
	dst = v.Tangent.Encode(dst)
	dst = v.Color.Encode(dst)
	dst = append(dst, EncodeF32(v.Opacity)...)
	dst = append(dst, EncodeF32(v.Width)...)
	return dst
}

// Size returns the Vertex's encoded size in bytes (always WidthVertex).
func (v Vertex) Size() int { return WidthVertex }
