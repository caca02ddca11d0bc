package ascii

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/btparker/quillustrate/internal/qbin"
)

// Encode renders a qbin.File as its lossless JSON projection (Scene.qa).
func Encode(f qbin.File) ([]byte, error) {
	out := toAsciiFile(f)
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("ascii: encode: %w", err)
	}
	return b, nil
}

func toAsciiFile(f qbin.File) asciiFile {
	var items []asciiItem
	if len(f.Items) > 0 {
		items = make([]asciiItem, 0, len(f.Items))
	}
	for _, item := range f.Items {
		switch v := item.(type) {
		case qbin.Drawing:
			d := toAsciiDrawing(v)
			items = append(items, asciiItem{Kind: "Drawing", Drawing: &d})
		case qbin.Picture:
			p := toAsciiPicture(v)
			items = append(items, asciiItem{Kind: "Picture", Picture: &p})
		}
	}
	return asciiFile{
		HighestGlobalStrokeID: f.HighestGlobalStrokeID,
		Unknown0:              hex.EncodeToString(f.Unknown0),
		Items:                 items,
	}
}

func toAsciiDrawing(d qbin.Drawing) asciiDrawing {
	strokes := make([]asciiStroke, len(d.Strokes))
	for i, s := range d.Strokes {
		strokes[i] = toAsciiStroke(s)
	}
	return asciiDrawing{NumStrokes: len(d.Strokes), Strokes: strokes}
}

func toAsciiStroke(s qbin.Stroke) asciiStroke {
	vertices := make([]asciiVertex, len(s.Vertices))
	for i, v := range s.Vertices {
		vertices[i] = toAsciiVertex(v)
	}
	return asciiStroke{
		GlobalStrokeID:           s.GlobalStrokeID,
		Unknown0:                 hex.EncodeToString(s.Unknown0),
		BBox:                     toAsciiBBox(s.BBox),
		Brush:                    s.Brush.String(),
		DisableRotationalOpacity: s.DisableRotationalOpacity,
		Unknown1:                 hex.EncodeToString(s.Unknown1),
		NumVertices:              len(s.Vertices),
		Vertices:                 vertices,
	}
}

func toAsciiVertex(v qbin.Vertex) asciiVertex {
	return asciiVertex{
		Position: toAsciiVec3(v.Position),
		Normal:   toAsciiVec3(v.Normal),
		Tangent:  toAsciiVec3(v.Tangent),
		Color:    toAsciiVec3(v.Color),
		Opacity:  v.Opacity,
		Width:    v.Width,
	}
}

func toAsciiVec3(v qbin.Vec3) asciiVec3 {
	return asciiVec3{X: v.X, Y: v.Y, Z: v.Z}
}

func toAsciiBBox(b qbin.BBox) asciiBBox {
	return asciiBBox{
		MinX: b.MinX, MaxX: b.MaxX,
		MinY: b.MinY, MaxY: b.MaxY,
		MinZ: b.MinZ, MaxZ: b.MaxZ,
	}
}

func toAsciiPicture(p qbin.Picture) asciiPicture {
	out := asciiPicture{
		Unknown0:      hex.EncodeToString(p.Unknown0),
		ChannelSize:   p.ChannelSize,
		Unknown1:      hex.EncodeToString(p.Unknown1),
		ImageKind:     p.ImageKind,
		Unknown2:      hex.EncodeToString(p.Unknown2),
		Unknown3:      hex.EncodeToString(p.Unknown3),
		Width:         p.Width,
		Height:        p.Height,
		Unknown4To7:   hex.EncodeToString(p.Unknown4To7),
		TrailingBytes: hex.EncodeToString(p.TrailingBytes),
	}
	if len(p.RGBPixels) > 0 {
		pixels := make([]asciiRGB, len(p.RGBPixels))
		for i, px := range p.RGBPixels {
			pixels[i] = asciiRGB{R: px.R, G: px.G, B: px.B}
		}
		out.RGBPixels = pixels
	}
	if len(p.RGBAPixels) > 0 {
		pixels := make([]asciiRGBA, len(p.RGBAPixels))
		for i, px := range p.RGBAPixels {
			pixels[i] = asciiRGBA{R: px.R, G: px.G, B: px.B, A: px.A}
		}
		out.RGBAPixels = pixels
	}
	return out
}
