package qbin

import "fmt"

// Drawing owns an ordered sequence of Stroke.
type Drawing struct {
	Strokes []Stroke
}

// isTopLevelItem marks Drawing as a TopLevelItem variant.
func (Drawing) isTopLevelItem() {}

// Kind reports this item's RecordKind.
func (Drawing) Kind() RecordKind { return KindDrawingItem }

// DecodeDrawing reads a Drawing from the front of a ByteCursor.
func DecodeDrawing(c *ByteCursor) (Drawing, error) {
	numStrokesBytes, err := c.Next(WidthI32)
	if err != nil {
		return Drawing{}, fmt.Errorf("drawing header: %w", err)
	}
	numStrokes, err := DecodeI32(numStrokesBytes)
	if err != nil {
		return Drawing{}, fmt.Errorf("drawing header: %w", err)
	}

	if numStrokes < 0 {
		return Drawing{}, fmt.Errorf("%w: drawing declares negative stroke count %d", ErrTruncated, numStrokes)
	}

	// Preallocation is capped by the smallest possible stroke encoding,
	// so a corrupt count cannot demand an absurd allocation up front.
	var strokes []Stroke
	if numStrokes > 0 {
		maxPossible := int32(len(c.Remaining()) / strokeHeaderSize)
		strokes = make([]Stroke, 0, min(numStrokes, maxPossible))
	}
	for i := int32(0); i < numStrokes; i++ {
		s, err := DecodeStroke(c)
		if err != nil {
			return Drawing{}, fmt.Errorf("drawing: stroke %d/%d: %w", i, numStrokes, err)
		}
		strokes = append(strokes, s)
	}
	return Drawing{Strokes: strokes}, nil
}

// Encode appends the Drawing's little-endian byte representation to dst.
// num_strokes is synthesized from len(d.Strokes).
func (d Drawing) Encode(dst []byte) []byte {
	dst = append(dst, EncodeI32(int32(len(d.Strokes)))...)
	for _, s := range d.Strokes {
		dst = s.Encode(dst)
	}
	return dst
}

// Size returns the Drawing's encoded size in bytes.
func (d Drawing) Size() int {
	total := WidthI32
	for _, s := range d.Strokes {
		total += s.Size()
	}
	return total
}
