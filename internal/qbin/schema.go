package qbin

// FieldRole classifies how a schema field's bytes are determined.
type FieldRole int

const (
	RolePrimitiveValue FieldRole = iota
	RoleFixedSizeRecord
	RoleVariableSequence
	RoleUnknownBytes
)

// FieldKind names a field's primitive or compound type.
type FieldKind int

const (
	KindU8 FieldKind = iota
	KindI16
	KindI32
	KindF32
	KindBool
	KindVec3
	KindBBox
	KindBrushType
	KindVertex
	KindStroke
	KindDrawing
	KindPicture
	KindRGB
	KindRGBA
)

// fixedWidths gives the declared byte width of every kind that has one.
// Drawing, Stroke, and Picture are variable-size and are not listed here.
var fixedWidths = map[FieldKind]int{
	KindU8:        WidthU8,
	KindI16:       WidthI16,
	KindI32:       WidthI32,
	KindF32:       WidthF32,
	KindBool:      WidthBool,
	KindVec3:      WidthVec3,
	KindBBox:      WidthBBox,
	KindBrushType: WidthBrushType,
	KindVertex:    WidthVertex,
	KindRGB:       3,
	KindRGBA:      4,
}

// FieldDescriptor is one entry in a RecordSchema: a field's name, type,
// relative offset within its record, and role. CountFrom names the header
// field that carries a variable-sequence's length; it is the sentinel
// "external" for File's top-level sequence, whose length comes from the
// SceneIndex rather than any header field.
type FieldDescriptor struct {
	Name      string
	Kind      FieldKind
	Offset    int
	Role      FieldRole
	CountFrom string
}

// CountFromExternal is the sentinel used by File's body field: its
// sequence length is supplied by the caller (ProjectCodec via SceneIndex),
// not carried in any header field.
const CountFromExternal = "external"

// RecordSchema is the static, per-record-type description of the wire
// layout. It carries no behavior: the hand-written Decode/Encode methods
// on each record type and the ASCII projection's field order mirror it
// rather than walk it (Picture.Size reads PictureSchema.HeaderSize; the
// schema tests check the codecs agree with the tables), and nothing walks
// it via reflection.
type RecordSchema struct {
	Name   string
	Header []FieldDescriptor
	Body   []FieldDescriptor
}

// HeaderSize sums the declared widths of a schema's header fields.
func (s RecordSchema) HeaderSize() int {
	total := 0
	for _, f := range s.Header {
		total += fixedWidths[f.Kind]
	}
	return total
}

// FieldOrder returns header field names followed by body field names, in
// declared order — the order the ASCII projection emits keys in.
func (s RecordSchema) FieldOrder() []string {
	names := make([]string, 0, len(s.Header)+len(s.Body))
	for _, f := range s.Header {
		names = append(names, f.Name)
	}
	for _, f := range s.Body {
		names = append(names, f.Name)
	}
	return names
}

// Vec3Schema describes the Vec3 compound type.
var Vec3Schema = RecordSchema{
	Name: "Vec3",
	Body: []FieldDescriptor{
		{Name: "x", Kind: KindF32, Offset: 0, Role: RolePrimitiveValue},
		{Name: "y", Kind: KindF32, Offset: 4, Role: RolePrimitiveValue},
		{Name: "z", Kind: KindF32, Offset: 8, Role: RolePrimitiveValue},
	},
}

// BBoxSchema describes the BBox compound type.
var BBoxSchema = RecordSchema{
	Name: "BBox",
	Body: []FieldDescriptor{
		{Name: "min_x", Kind: KindF32, Offset: 0, Role: RolePrimitiveValue},
		{Name: "max_x", Kind: KindF32, Offset: 4, Role: RolePrimitiveValue},
		{Name: "min_y", Kind: KindF32, Offset: 8, Role: RolePrimitiveValue},
		{Name: "max_y", Kind: KindF32, Offset: 12, Role: RolePrimitiveValue},
		{Name: "min_z", Kind: KindF32, Offset: 16, Role: RolePrimitiveValue},
		{Name: "max_z", Kind: KindF32, Offset: 20, Role: RolePrimitiveValue},
	},
}

// VertexSchema describes the Vertex compound type.
var VertexSchema = RecordSchema{
	Name: "Vertex",
	Body: []FieldDescriptor{
		{Name: "position", Kind: KindVec3, Offset: 0, Role: RoleFixedSizeRecord},
		{Name: "normal", Kind: KindVec3, Offset: 12, Role: RoleFixedSizeRecord},
		{Name: "tangent", Kind: KindVec3, Offset: 24, Role: RoleFixedSizeRecord},
		{Name: "color", Kind: KindVec3, Offset: 36, Role: RoleFixedSizeRecord},
		{Name: "opacity", Kind: KindF32, Offset: 48, Role: RolePrimitiveValue},
		{Name: "width", Kind: KindF32, Offset: 52, Role: RolePrimitiveValue},
	},
}

// StrokeSchema describes the Stroke record: a header plus a vertex sequence.
var StrokeSchema = RecordSchema{
	Name: "Stroke",
	Header: []FieldDescriptor{
		{Name: "global_stroke_id", Kind: KindI32, Offset: 0, Role: RolePrimitiveValue},
		{Name: "_unknown0", Kind: KindI32, Offset: 4, Role: RoleUnknownBytes},
		{Name: "bbox", Kind: KindBBox, Offset: 8, Role: RoleFixedSizeRecord},
		{Name: "brush", Kind: KindBrushType, Offset: 32, Role: RolePrimitiveValue},
		{Name: "disable_rotational_opacity", Kind: KindBool, Offset: 34, Role: RolePrimitiveValue},
		{Name: "_unknown1", Kind: KindU8, Offset: 35, Role: RoleUnknownBytes},
		{Name: "num_vertices", Kind: KindI32, Offset: 36, Role: RolePrimitiveValue},
	},
	Body: []FieldDescriptor{
		{Name: "vertices", Kind: KindVertex, Role: RoleVariableSequence, CountFrom: "num_vertices"},
	},
}

// DrawingSchema describes the Drawing record: a header plus a stroke sequence.
var DrawingSchema = RecordSchema{
	Name: "Drawing",
	Header: []FieldDescriptor{
		{Name: "num_strokes", Kind: KindI32, Offset: 0, Role: RolePrimitiveValue},
	},
	Body: []FieldDescriptor{
		{Name: "strokes", Kind: KindStroke, Role: RoleVariableSequence, CountFrom: "num_strokes"},
	},
}

// PictureSchema describes the Picture record: a header plus a pixel sequence
// whose element type (RGB or RGBA) is chosen at decode time by image_kind.
var PictureSchema = RecordSchema{
	Name: "Picture",
	Header: []FieldDescriptor{
		{Name: "_unknown0", Kind: KindI16, Offset: 0, Role: RoleUnknownBytes},
		{Name: "channel_size", Kind: KindI16, Offset: 2, Role: RolePrimitiveValue},
		{Name: "_unknown1", Kind: KindU8, Offset: 4, Role: RoleUnknownBytes},
		{Name: "image_kind", Kind: KindU8, Offset: 5, Role: RolePrimitiveValue},
		{Name: "_unknown2", Kind: KindU8, Offset: 6, Role: RoleUnknownBytes},
		{Name: "_unknown3", Kind: KindU8, Offset: 7, Role: RoleUnknownBytes},
		{Name: "width", Kind: KindI32, Offset: 8, Role: RolePrimitiveValue},
		{Name: "height", Kind: KindI32, Offset: 12, Role: RolePrimitiveValue},
		{Name: "_unknown4_7", Kind: KindI32, Offset: 16, Role: RoleUnknownBytes},
	},
	Body: []FieldDescriptor{
		{Name: "pixels", Role: RoleVariableSequence, CountFrom: "width*height"},
	},
}

// FileSchema describes the top-level File record: a two-field header
// followed by the externally-indexed sequence of Drawing/Picture items.
var FileSchema = RecordSchema{
	Name: "File",
	Header: []FieldDescriptor{
		{Name: "highest_global_stroke_id", Kind: KindI32, Offset: 0, Role: RolePrimitiveValue},
		{Name: "_unknown0", Kind: KindI32, Offset: 4, Role: RoleUnknownBytes},
	},
	Body: []FieldDescriptor{
		{Name: "items", Role: RoleVariableSequence, CountFrom: CountFromExternal},
	},
}
