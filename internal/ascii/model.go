package ascii

// The ascii* types below are pure JSON projections of their qbin
// counterparts. Field order is declared in the same order as the
// corresponding qbin.RecordSchema, which is what fixes the key order
// encoding/json emits — there is no separate ordered-map machinery.

type asciiVec3 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

type asciiBBox struct {
	MinX float32 `json:"min_x"`
	MaxX float32 `json:"max_x"`
	MinY float32 `json:"min_y"`
	MaxY float32 `json:"max_y"`
	MinZ float32 `json:"min_z"`
	MaxZ float32 `json:"max_z"`
}

type asciiVertex struct {
	Position asciiVec3 `json:"position"`
	Normal   asciiVec3 `json:"normal"`
	Tangent  asciiVec3 `json:"tangent"`
	Color    asciiVec3 `json:"color"`
	Opacity  float32   `json:"opacity"`
	Width    float32   `json:"width"`
}

type asciiStroke struct {
	GlobalStrokeID           int32         `json:"global_stroke_id"`
	Unknown0                 string        `json:"_unknown0"`
	BBox                     asciiBBox     `json:"bbox"`
	Brush                    string        `json:"brush"`
	DisableRotationalOpacity bool          `json:"disable_rotational_opacity"`
	Unknown1                 string        `json:"_unknown1"`
	NumVertices              int           `json:"num_vertices"`
	Vertices                 []asciiVertex `json:"vertices"`
}

type asciiDrawing struct {
	NumStrokes int           `json:"num_strokes"`
	Strokes    []asciiStroke `json:"strokes"`
}

type asciiRGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

type asciiRGBA struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

type asciiPicture struct {
	Unknown0      string      `json:"_unknown0"`
	ChannelSize   int16       `json:"channel_size"`
	Unknown1      string      `json:"_unknown1"`
	ImageKind     uint8       `json:"image_kind"`
	Unknown2      string      `json:"_unknown2"`
	Unknown3      string      `json:"_unknown3"`
	Width         int32       `json:"width"`
	Height        int32       `json:"height"`
	Unknown4To7   string      `json:"_unknown4_7"`
	RGBPixels     []asciiRGB  `json:"rgb_pixels,omitempty"`
	RGBAPixels    []asciiRGBA `json:"rgba_pixels,omitempty"`
	TrailingBytes string      `json:"trailing_bytes,omitempty"`
}

// asciiItem carries exactly one of Drawing or Picture, tagged by Kind, so
// a File's heterogeneous item sequence round-trips through a single JSON
// array without reflection-based type discovery on decode.
type asciiItem struct {
	Kind    string        `json:"kind"`
	Drawing *asciiDrawing `json:"drawing,omitempty"`
	Picture *asciiPicture `json:"picture,omitempty"`
}

type asciiFile struct {
	HighestGlobalStrokeID int32       `json:"highest_global_stroke_id"`
	Unknown0              string      `json:"_unknown0"`
	Items                 []asciiItem `json:"items"`
}
