package ascii

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/btparker/quillustrate/internal/qbin"
)

// Decode parses Scene.qa text back into a qbin.File. Decode(Encode(f))
// reproduces f exactly, including every preserved unknown byte span,
// except File.Warnings, which the projection does not carry.
func Decode(text []byte) (qbin.File, error) {
	var in asciiFile
	if err := json.Unmarshal(text, &in); err != nil {
		return qbin.File{}, fmt.Errorf("%w: %v", ErrAsciiParse, err)
	}
	return fromAsciiFile(in)
}

func fromAsciiFile(in asciiFile) (qbin.File, error) {
	unknown0, err := decodeHex(in.Unknown0, qbin.WidthI32, "_unknown0")
	if err != nil {
		return qbin.File{}, err
	}
	var items []qbin.TopLevelItem
	if len(in.Items) > 0 {
		items = make([]qbin.TopLevelItem, 0, len(in.Items))
	}
	for i, it := range in.Items {
		switch it.Kind {
		case "Drawing":
			if it.Drawing == nil {
				return qbin.File{}, fmt.Errorf("%w: item %d: kind Drawing has no drawing body", ErrAsciiParse, i)
			}
			d, err := fromAsciiDrawing(*it.Drawing)
			if err != nil {
				return qbin.File{}, fmt.Errorf("item %d: %w", i, err)
			}
			items = append(items, d)
		case "Picture":
			if it.Picture == nil {
				return qbin.File{}, fmt.Errorf("%w: item %d: kind Picture has no picture body", ErrAsciiParse, i)
			}
			p, err := fromAsciiPicture(*it.Picture)
			if err != nil {
				return qbin.File{}, fmt.Errorf("item %d: %w", i, err)
			}
			items = append(items, p)
		default:
			return qbin.File{}, fmt.Errorf("%w: item %d: unknown kind %q", ErrAsciiParse, i, it.Kind)
		}
	}
	return qbin.File{
		HighestGlobalStrokeID: in.HighestGlobalStrokeID,
		Unknown0:              unknown0,
		Items:                 items,
	}, nil
}

func fromAsciiDrawing(in asciiDrawing) (qbin.Drawing, error) {
	var strokes []qbin.Stroke
	if len(in.Strokes) > 0 {
		strokes = make([]qbin.Stroke, len(in.Strokes))
	}
	for i, s := range in.Strokes {
		st, err := fromAsciiStroke(s)
		if err != nil {
			return qbin.Drawing{}, fmt.Errorf("stroke %d: %w", i, err)
		}
		strokes[i] = st
	}
	return qbin.Drawing{Strokes: strokes}, nil
}

func fromAsciiStroke(in asciiStroke) (qbin.Stroke, error) {
	unknown0, err := decodeHex(in.Unknown0, qbin.WidthI32, "_unknown0")
	if err != nil {
		return qbin.Stroke{}, err
	}
	unknown1, err := decodeHex(in.Unknown1, qbin.WidthU8, "_unknown1")
	if err != nil {
		return qbin.Stroke{}, err
	}
	brush, err := qbin.BrushTypeFromName(in.Brush)
	if err != nil {
		return qbin.Stroke{}, fmt.Errorf("%w: %v", ErrAsciiParse, err)
	}
	var vertices []qbin.Vertex
	if len(in.Vertices) > 0 {
		vertices = make([]qbin.Vertex, len(in.Vertices))
	}
	for i, v := range in.Vertices {
		vertices[i] = fromAsciiVertex(v)
	}
	return qbin.Stroke{
		GlobalStrokeID:           in.GlobalStrokeID,
		Unknown0:                 unknown0,
		BBox:                     fromAsciiBBox(in.BBox),
		Brush:                    brush,
		DisableRotationalOpacity: in.DisableRotationalOpacity,
		Unknown1:                 unknown1,
		Vertices:                 vertices,
	}, nil
}

func fromAsciiVertex(in asciiVertex) qbin.Vertex {
	return qbin.Vertex{
		Position: fromAsciiVec3(in.Position),
		Normal:   fromAsciiVec3(in.Normal),
		Tangent:  fromAsciiVec3(in.Tangent),
		Color:    fromAsciiVec3(in.Color),
		Opacity:  in.Opacity,
		Width:    in.Width,
	}
}

func fromAsciiVec3(in asciiVec3) qbin.Vec3 {
	return qbin.Vec3{X: in.X, Y: in.Y, Z: in.Z}
}

func fromAsciiBBox(in asciiBBox) qbin.BBox {
	return qbin.BBox{
		MinX: in.MinX, MaxX: in.MaxX,
		MinY: in.MinY, MaxY: in.MaxY,
		MinZ: in.MinZ, MaxZ: in.MaxZ,
	}
}

func fromAsciiPicture(in asciiPicture) (qbin.Picture, error) {
	unknown0, err := decodeHex(in.Unknown0, qbin.WidthI16, "_unknown0")
	if err != nil {
		return qbin.Picture{}, err
	}
	unknown1, err := decodeHex(in.Unknown1, qbin.WidthU8, "_unknown1")
	if err != nil {
		return qbin.Picture{}, err
	}
	unknown2, err := decodeHex(in.Unknown2, qbin.WidthU8, "_unknown2")
	if err != nil {
		return qbin.Picture{}, err
	}
	unknown3, err := decodeHex(in.Unknown3, qbin.WidthU8, "_unknown3")
	if err != nil {
		return qbin.Picture{}, err
	}
	unknown4To7, err := decodeHex(in.Unknown4To7, 4, "_unknown4_7")
	if err != nil {
		return qbin.Picture{}, err
	}
	var trailing []byte
	if in.TrailingBytes != "" {
		trailing, err = hex.DecodeString(in.TrailingBytes)
		if err != nil {
			return qbin.Picture{}, fmt.Errorf("%w: trailing_bytes: %v", ErrAsciiParse, err)
		}
	}

	p := qbin.Picture{
		Unknown0:      unknown0,
		ChannelSize:   in.ChannelSize,
		Unknown1:      unknown1,
		ImageKind:     in.ImageKind,
		Unknown2:      unknown2,
		Unknown3:      unknown3,
		Width:         in.Width,
		Height:        in.Height,
		Unknown4To7:   unknown4To7,
		TrailingBytes: qbin.Raw(trailing),
	}
	switch in.ImageKind {
	case qbin.ImageKindRGB:
		if len(in.RGBPixels) > 0 {
			pixels := make([]qbin.RGB, len(in.RGBPixels))
			for i, px := range in.RGBPixels {
				pixels[i] = qbin.RGB{R: px.R, G: px.G, B: px.B}
			}
			p.RGBPixels = pixels
		}
	case qbin.ImageKindRGBA:
		if len(in.RGBAPixels) > 0 {
			pixels := make([]qbin.RGBA, len(in.RGBAPixels))
			for i, px := range in.RGBAPixels {
				pixels[i] = qbin.RGBA{R: px.R, G: px.G, B: px.B, A: px.A}
			}
			p.RGBAPixels = pixels
		}
	default:
		return qbin.Picture{}, fmt.Errorf("%w: image_kind %d outside {%d,%d}", qbin.ErrInvalidEnum, in.ImageKind, qbin.ImageKindRGB, qbin.ImageKindRGBA)
	}
	return p, nil
}

// decodeHex parses a hex string into a qbin.Raw of exactly width bytes.
func decodeHex(s string, width int, field string) (qbin.Raw, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAsciiParse, field, err)
	}
	if len(b) != width {
		return nil, fmt.Errorf("%w: %s: wants %d bytes, got %d", ErrAsciiParse, field, width, len(b))
	}
	return qbin.Raw(b), nil
}
