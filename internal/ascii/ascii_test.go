package ascii

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btparker/quillustrate/internal/qbin"
)

func sampleStroke() qbin.Stroke {
	return qbin.Stroke{
		GlobalStrokeID: 7,
		Unknown0:       qbin.Raw{0, 0, 0, 0},
		BBox:           qbin.BBox{},
		Brush:          qbin.BrushLine,
		Unknown1:       qbin.Raw{0xAB},
		Vertices: []qbin.Vertex{
			{
				Position: qbin.Vec3{X: 1},
				Opacity:  1.0,
				Width:    0.5,
			},
		},
	}
}

func sampleFile() qbin.File {
	return qbin.File{
		HighestGlobalStrokeID: 1,
		Unknown0:              qbin.Raw{0xDE, 0xAD, 0xBE, 0xEF},
		Items: []qbin.TopLevelItem{
			qbin.Drawing{Strokes: []qbin.Stroke{sampleStroke()}},
			qbin.Picture{
				Unknown0:    qbin.Raw{0, 0},
				ChannelSize: 1,
				Unknown1:    qbin.Raw{0},
				ImageKind:   qbin.ImageKindRGB,
				Unknown2:    qbin.Raw{0},
				Unknown3:    qbin.Raw{0},
				Width:       2,
				Height:      1,
				Unknown4To7: qbin.Raw{0, 0, 0, 0},
				RGBPixels: []qbin.RGB{
					{R: 255}, {G: 255},
				},
			},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	f := sampleFile()
	text, err := Encode(f)
	require.NoError(t, err)

	got, err := Decode(text)
	require.NoError(t, err)
	assert.Equal(t, f, got)
}

func TestRoundTrip_RGBAAndTrailingBytes(t *testing.T) {
	f := qbin.File{
		HighestGlobalStrokeID: 3,
		Unknown0:              qbin.Raw{1, 2, 3, 4},
		Items: []qbin.TopLevelItem{
			qbin.Picture{
				Unknown0:      qbin.Raw{9, 9},
				ChannelSize:   1,
				Unknown1:      qbin.Raw{7},
				ImageKind:     qbin.ImageKindRGBA,
				Unknown2:      qbin.Raw{0},
				Unknown3:      qbin.Raw{0xFF},
				Width:         1,
				Height:        1,
				Unknown4To7:   qbin.Raw{4, 5, 6, 7},
				RGBAPixels:    []qbin.RGBA{{R: 1, G: 2, B: 3, A: 4}},
				TrailingBytes: qbin.Raw{0xCA, 0xFE},
			},
		},
	}
	text, err := Encode(f)
	require.NoError(t, err)

	got, err := Decode(text)
	require.NoError(t, err)
	assert.Equal(t, f, got)
}

func TestRoundTrip_EmptyFile(t *testing.T) {
	f := qbin.File{Unknown0: qbin.Raw{0, 0, 0, 0}}
	text, err := Encode(f)
	require.NoError(t, err)

	got, err := Decode(text)
	require.NoError(t, err)
	assert.Equal(t, f, got)
}

// The projection is meant for human inspection: brushes come out by
// name, counts and unknown bytes are visible in declared order.
func TestEncode_HumanReadableKeys(t *testing.T) {
	text, err := Encode(sampleFile())
	require.NoError(t, err)
	s := string(text)

	assert.Contains(t, s, `"brush": "LINE"`)
	assert.Contains(t, s, `"num_vertices": 1`)
	assert.Contains(t, s, `"num_strokes": 1`)
	assert.Contains(t, s, `"_unknown1": "ab"`)
	assert.Contains(t, s, `"_unknown0": "deadbeef"`)

	// Header keys precede body keys, matching the binary layout.
	assert.Less(t, strings.Index(s, `"global_stroke_id"`), strings.Index(s, `"vertices"`))
	assert.Less(t, strings.Index(s, `"image_kind"`), strings.Index(s, `"rgb_pixels"`))
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"malformed json", `{`},
		{"unknown item kind", `{"_unknown0":"00000000","items":[{"kind":"Sculpt"}]}`},
		{"drawing body missing", `{"_unknown0":"00000000","items":[{"kind":"Drawing"}]}`},
		{"picture body missing", `{"_unknown0":"00000000","items":[{"kind":"Picture"}]}`},
		{"bad hex", `{"_unknown0":"zz"}`},
		{"hex width mismatch", `{"_unknown0":"00"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.text))
			require.ErrorIs(t, err, ErrAsciiParse)
		})
	}
}

func TestDecode_BadBrushName(t *testing.T) {
	f := sampleFile()
	text, err := Encode(f)
	require.NoError(t, err)

	mangled := strings.Replace(string(text), `"brush": "LINE"`, `"brush": "SPLINE"`, 1)
	_, err = Decode([]byte(mangled))
	require.ErrorIs(t, err, ErrAsciiParse)
	assert.Contains(t, err.Error(), "SPLINE")
}

func TestDecode_BadImageKind(t *testing.T) {
	f := sampleFile()
	text, err := Encode(f)
	require.NoError(t, err)

	mangled := strings.Replace(string(text), `"image_kind": 6`, `"image_kind": 9`, 1)
	_, err = Decode([]byte(mangled))
	require.ErrorIs(t, err, qbin.ErrInvalidEnum)
}
