package qbin

import "fmt"

// strokeHeaderSize is the fixed prefix before a stroke's vertex sequence.
const strokeHeaderSize = WidthI32 + WidthI32 + WidthBBox + WidthBrushType + WidthBool + WidthU8 + WidthI32

// Stroke is one continuous brush motion: a header plus a vertex
// sequence. GlobalStrokeID is always known before the brush/vertex
// fields are decoded, so errors from the rest of the record can be
// annotated with it.
type Stroke struct {
	GlobalStrokeID           int32
	Unknown0                 Raw // 4 bytes, preserved verbatim
	BBox                     BBox
	Brush                    BrushType
	DisableRotationalOpacity bool
	Unknown1                 Raw // 1 byte, preserved verbatim
	Vertices                 []Vertex
}

// DecodeStroke reads a Stroke from the front of a ByteCursor.
func DecodeStroke(c *ByteCursor) (Stroke, error) {
	idBytes, err := c.Next(WidthI32)
	if err != nil {
		return Stroke{}, fmt.Errorf("stroke header: %w", err)
	}
	id, err := DecodeI32(idBytes)
	if err != nil {
		return Stroke{}, fmt.Errorf("stroke header: %w", err)
	}

	unknown0Bytes, err := c.Next(WidthI32)
	if err != nil {
		return Stroke{}, fmt.Errorf("stroke %d: %w", id, err)
	}
	unknown0, err := DecodeRaw(unknown0Bytes, WidthI32)
	if err != nil {
		return Stroke{}, fmt.Errorf("stroke %d: %w", id, err)
	}

	bbox, err := DecodeBBox(c)
	if err != nil {
		return Stroke{}, fmt.Errorf("stroke %d: %w", id, err)
	}

	brush, err := DecodeBrushType(c)
	if err != nil {
		return Stroke{}, fmt.Errorf("stroke %d: %w", id, err)
	}

	disableBytes, err := c.Next(WidthBool)
	if err != nil {
		return Stroke{}, fmt.Errorf("stroke %d: %w", id, err)
	}
	disable, err := DecodeBool(disableBytes)
	if err != nil {
		return Stroke{}, fmt.Errorf("stroke %d: %w", id, err)
	}

	unknown1Bytes, err := c.Next(WidthU8)
	if err != nil {
		return Stroke{}, fmt.Errorf("stroke %d: %w", id, err)
	}
	unknown1, err := DecodeRaw(unknown1Bytes, WidthU8)
	if err != nil {
		return Stroke{}, fmt.Errorf("stroke %d: %w", id, err)
	}

	numVerticesBytes, err := c.Next(WidthI32)
	if err != nil {
		return Stroke{}, fmt.Errorf("stroke %d: %w", id, err)
	}
	numVertices, err := DecodeI32(numVerticesBytes)
	if err != nil {
		return Stroke{}, fmt.Errorf("stroke %d: %w", id, err)
	}

	if numVertices < 0 {
		return Stroke{}, fmt.Errorf("%w: stroke %d declares negative vertex count %d", ErrTruncated, id, numVertices)
	}

	// Cap the preallocation at what the remaining bytes could possibly
	// hold, so a corrupt count cannot demand an absurd allocation before
	// the loop fails with ErrTruncated.
	var vertices []Vertex
	if numVertices > 0 {
		maxPossible := int32(len(c.Remaining()) / WidthVertex)
		vertices = make([]Vertex, 0, min(numVertices, maxPossible))
	}
	for i := int32(0); i < numVertices; i++ {
		v, err := DecodeVertex(c)
		if err != nil {
			return Stroke{}, fmt.Errorf("stroke %d: vertex %d/%d: %w", id, i, numVertices, err)
		}
		vertices = append(vertices, v)
	}

	return Stroke{
		GlobalStrokeID:           id,
		Unknown0:                 unknown0,
		BBox:                     bbox,
		Brush:                    brush,
		DisableRotationalOpacity: disable,
		Unknown1:                 unknown1,
		Vertices:                 vertices,
	}, nil
}

// Encode appends the Stroke's little-endian byte representation to dst.
// num_vertices is synthesized from len(s.Vertices), the single
// authoritative place this count is set.
func (s Stroke) Encode(dst []byte) []byte {
	dst = append(dst, EncodeI32(s.GlobalStrokeID)...)
	dst = appendRaw(dst, s.Unknown0, WidthI32)
	dst = s.BBox.Encode(dst)
	dst = s.Brush.Encode(dst)
	dst = append(dst, EncodeBool(s.DisableRotationalOpacity)...)
	dst = appendRaw(dst, s.Unknown1, WidthU8)
	dst = append(dst, EncodeI32(int32(len(s.Vertices)))...)
	for _, v := range s.Vertices {
		dst = v.Encode(dst)
	}
	return dst
}

// Size returns the Stroke's encoded size in bytes.
func (s Stroke) Size() int {
	return strokeHeaderSize + len(s.Vertices)*WidthVertex
}
