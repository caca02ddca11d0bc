package qbin

import "fmt"

// BrushType is the i16 brush code.
type BrushType int16

const (
	BrushLine     BrushType = 0
	BrushRibbon   BrushType = 1
	BrushCylinder BrushType = 2
	BrushEllipse  BrushType = 3
	BrushCube     BrushType = 4
)

var brushNames = map[BrushType]string{
	BrushLine:     "LINE",
	BrushRibbon:   "RIBBON",
	BrushCylinder: "CYLINDER",
	BrushEllipse:  "ELLIPSE",
	BrushCube:     "CUBE",
}

var brushByName = func() map[string]BrushType {
	m := make(map[string]BrushType, len(brushNames))
	for k, v := range brushNames {
		m[v] = k
	}
	return m
}()

// String returns the brush's name as emitted in the ASCII projection
// ("LINE", "RIBBON", ...), or a numeric fallback for an out-of-domain code.
func (b BrushType) String() string {
	if name, ok := brushNames[b]; ok {
		return name
	}
	return fmt.Sprintf("BrushType(%d)", int16(b))
}

// Valid reports whether b is one of the five declared brush codes.
func (b BrushType) Valid() bool {
	_, ok := brushNames[b]
	return ok
}

// BrushTypeFromName parses a brush's ASCII name back into its code.
func BrushTypeFromName(name string) (BrushType, error) {
	b, ok := brushByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown brush name %q", ErrInvalidEnum, name)
	}
	return b, nil
}

// DecodeBrushType reads a BrushType from the front of a ByteCursor and
// validates its code is within {0..4}.
func DecodeBrushType(c *ByteCursor) (BrushType, error) {
	b, err := c.Next(WidthBrushType)
	if err != nil {
		return 0, err
	}
	code, err := DecodeI16(b)
	if err != nil {
		return 0, err
	}
	bt := BrushType(code)
	if !bt.Valid() {
		return 0, fmt.Errorf("%w: brush code %d outside {0..4}", ErrInvalidEnum, code)
	}
	return bt, nil
}

// Encode appends the BrushType's little-endian byte representation to dst.
// Encode does not re-validate; callers that accept attacker-controlled
// values should call Valid first.
func (b BrushType) Encode(dst []byte) []byte {
	return append(dst, EncodeI16(int16(b))...)
}
