package qbin

import "testing"

// The schema tables are the single written-down description of the wire
// layout; the hand-written codecs must agree with them.
func TestSchemaHeaderSizesMatchCodecs(t *testing.T) {
	if got := StrokeSchema.HeaderSize(); got != strokeHeaderSize {
		t.Fatalf("StrokeSchema.HeaderSize() = %d, want %d", got, strokeHeaderSize)
	}
	if got := DrawingSchema.HeaderSize(); got != WidthI32 {
		t.Fatalf("DrawingSchema.HeaderSize() = %d, want %d", got, WidthI32)
	}
	if got := FileSchema.HeaderSize(); got != WidthI32+WidthI32 {
		t.Fatalf("FileSchema.HeaderSize() = %d, want %d", got, WidthI32+WidthI32)
	}

	// A Picture's header is everything before the pixel region.
	p := Picture{
		Unknown0: Raw{0, 0}, Unknown1: Raw{0}, Unknown2: Raw{0}, Unknown3: Raw{0},
		Unknown4To7: Raw{0, 0, 0, 0},
		ImageKind:   ImageKindRGB,
	}
	if got := len(p.Encode(nil)); got != PictureSchema.HeaderSize() {
		t.Fatalf("pixel-less Picture encodes to %d bytes, PictureSchema.HeaderSize() = %d", got, PictureSchema.HeaderSize())
	}
}

func TestSchemaDeclaredOffsetsAreDense(t *testing.T) {
	for _, s := range []RecordSchema{StrokeSchema, PictureSchema, FileSchema} {
		offset := 0
		for _, f := range s.Header {
			if f.Offset != offset {
				t.Fatalf("%s: field %q declared at offset %d, want %d", s.Name, f.Name, f.Offset, offset)
			}
			offset += fixedWidths[f.Kind]
		}
		if offset != s.HeaderSize() {
			t.Fatalf("%s: fields sum to %d, HeaderSize() = %d", s.Name, offset, s.HeaderSize())
		}
	}
}

func TestSchemaFixedCompoundWidths(t *testing.T) {
	if got := Vec3Schema.Name; got != "Vec3" {
		t.Fatalf("Vec3Schema.Name = %q", got)
	}
	cases := []struct {
		schema RecordSchema
		width  int
	}{
		{Vec3Schema, WidthVec3},
		{BBoxSchema, WidthBBox},
		{VertexSchema, WidthVertex},
	}
	for _, c := range cases {
		total := 0
		for _, f := range c.schema.Body {
			if f.Offset != total {
				t.Fatalf("%s: field %q declared at offset %d, want %d", c.schema.Name, f.Name, f.Offset, total)
			}
			total += fixedWidths[f.Kind]
		}
		if total != c.width {
			t.Fatalf("%s: fields sum to %d bytes, want %d", c.schema.Name, total, c.width)
		}
	}
}

// Body sequences must name a real count source: a header field of the
// same schema, or the external sentinel for File.
func TestSchemaSequenceCountSources(t *testing.T) {
	for _, s := range []RecordSchema{StrokeSchema, DrawingSchema, FileSchema} {
		for _, f := range s.Body {
			if f.Role != RoleVariableSequence {
				continue
			}
			if f.CountFrom == CountFromExternal {
				if s.Name != "File" {
					t.Fatalf("%s: only File's sequence is externally counted", s.Name)
				}
				continue
			}
			found := false
			for _, h := range s.Header {
				if h.Name == f.CountFrom {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("%s: sequence %q counts from unknown header field %q", s.Name, f.Name, f.CountFrom)
			}
		}
	}
}

func TestSchemaFieldOrder(t *testing.T) {
	got := StrokeSchema.FieldOrder()
	want := []string{"global_stroke_id", "_unknown0", "bbox", "brush", "disable_rotational_opacity", "_unknown1", "num_vertices", "vertices"}
	if len(got) != len(want) {
		t.Fatalf("FieldOrder() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FieldOrder()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
