package qbin

import "fmt"

// RecordKind tags which concrete type a TopLevelItem holds. Dispatch on it
// is a lookup against an externally-supplied list, never a type switch
// driven by the bytes themselves — the binary payload is not
// self-delimiting at the top level.
type RecordKind int

const (
	KindDrawingItem RecordKind = iota
	KindPictureItem
)

// String names a RecordKind for diagnostics.
func (k RecordKind) String() string {
	switch k {
	case KindDrawingItem:
		return "Drawing"
	case KindPictureItem:
		return "Picture"
	default:
		return fmt.Sprintf("RecordKind(%d)", int(k))
	}
}

// TopLevelItem is the tagged-variant interface satisfied by Drawing and
// Picture: the two record types a File's body can hold. isTopLevelItem is
// unexported so no type outside this package can implement it.
type TopLevelItem interface {
	isTopLevelItem()
	Kind() RecordKind
	Encode(dst []byte) []byte
	Size() int
}

// ItemSpan names one entry in the externally-known list of (offset, kind)
// pairs that bounds a top-level item's span within the payload. The
// caller — ordinarily a project-level scene index — owns this list; File
// itself has no way to discover it from the bytes alone.
type ItemSpan struct {
	Offset int
	Kind   RecordKind
}

// File is the top-level container: a header plus an ordered sequence of
// Drawing and Picture items, addressed by byte offset rather than nested
// inline.
type File struct {
	HighestGlobalStrokeID int32
	Unknown0              Raw // 4 bytes, preserved verbatim
	Items                 []TopLevelItem

	// Warnings holds non-fatal anomalies observed during DecodeFile,
	// e.g. a Picture whose trailing bytes were preserved rather than
	// rejected. Never populated by Encode.
	Warnings []Warning
}

// DecodeFileHeader reads just File's two header fields from the front of
// buf, returning the byte offset immediately following them (where the
// first top-level item, if any, begins).
func DecodeFileHeader(buf []byte) (highestGlobalStrokeID int32, unknown0 Raw, bodyOffset int, err error) {
	c := NewByteCursor(buf)

	idBytes, err := c.Next(WidthI32)
	if err != nil {
		return 0, nil, 0, fmt.Errorf("file header: %w", err)
	}
	id, err := DecodeI32(idBytes)
	if err != nil {
		return 0, nil, 0, fmt.Errorf("file header: %w", err)
	}

	unknown0Bytes, err := c.Next(WidthI32)
	if err != nil {
		return 0, nil, 0, fmt.Errorf("file header: %w", err)
	}
	unknown0, err = DecodeRaw(unknown0Bytes, WidthI32)
	if err != nil {
		return 0, nil, 0, fmt.Errorf("file header: %w", err)
	}

	return id, unknown0, c.Offset(), nil
}

// ItemSpanBytes carves the absolute byte range belonging to spans[i] out
// of buf: from its offset to the next span's offset, or to end of buf for
// the last entry.
func ItemSpanBytes(buf []byte, spans []ItemSpan, i int) ([]byte, error) {
	start := spans[i].Offset
	end := len(buf)
	if i+1 < len(spans) {
		end = spans[i+1].Offset
	}
	return sliceSpan(buf, start, end)
}

// DecodeItem decodes a single TopLevelItem of the given kind from itemBytes
// (ordinarily the result of ItemSpanBytes). When kind is KindPictureItem
// and the decoded Picture carries trailing bytes, trailingLen reports
// their count so the caller can record a Warning with its own context
// (item index, layer_path); it is 0 for Drawing and for a Picture with no
// trailing bytes.
func DecodeItem(itemBytes []byte, kind RecordKind) (item TopLevelItem, trailingLen int, err error) {
	c := NewByteCursor(itemBytes)
	switch kind {
	case KindDrawingItem:
		d, err := DecodeDrawing(c)
		if err != nil {
			return nil, 0, err
		}
		return d, 0, nil
	case KindPictureItem:
		p, err := DecodePicture(c)
		if err != nil {
			return nil, 0, err
		}
		return p, len(p.TrailingBytes), nil
	default:
		return nil, 0, fmt.Errorf("%w: record kind %d", ErrInvalidEnum, kind)
	}
}

// DecodeFile reads a File's header, then decodes one item per entry in
// spans. Each item is decoded from a cursor bounded to the span between
// its offset and the next entry's offset (or the end of buf for the last
// entry), so a Picture's trailing-byte capture never reads into the next
// item's bytes. Errors are annotated with the item's index and offset
// only; callers that want layer_path-level annotation (ProjectCodec)
// should instead drive DecodeFileHeader/ItemSpanBytes/DecodeItem directly.
func DecodeFile(buf []byte, spans []ItemSpan) (File, error) {
	// An empty buffer is an absent payload, not a malformed one.
	if len(buf) == 0 && len(spans) == 0 {
		return File{}, nil
	}

	id, unknown0, _, err := DecodeFileHeader(buf)
	if err != nil {
		return File{}, err
	}

	var items []TopLevelItem
	if len(spans) > 0 {
		items = make([]TopLevelItem, 0, len(spans))
	}
	var warnings []Warning
	for i, span := range spans {
		itemBytes, err := ItemSpanBytes(buf, spans, i)
		if err != nil {
			return File{}, fmt.Errorf("file: item %d (offset %d): %w", i, span.Offset, err)
		}
		item, trailingLen, err := DecodeItem(itemBytes, span.Kind)
		if err != nil {
			return File{}, fmt.Errorf("file: item %d (offset %d): %w", i, span.Offset, err)
		}
		if trailingLen > 0 {
			warnings = append(warnings, pictureTrailingBytesWarning(i, trailingLen))
		}
		items = append(items, item)
	}

	return File{
		HighestGlobalStrokeID: id,
		Unknown0:              unknown0,
		Items:                 items,
		Warnings:              warnings,
	}, nil
}

// Encode appends the File's little-endian byte representation to dst.
// Items are written back to back, in the order held in f.Items; the
// caller is responsible for keeping its externally-known offset list
// consistent with that order before it is used to decode again.
func (f File) Encode(dst []byte) []byte {
	dst = append(dst, EncodeI32(f.HighestGlobalStrokeID)...)
	dst = appendRaw(dst, f.Unknown0, WidthI32)
	for _, item := range f.Items {
		dst = item.Encode(dst)
	}
	return dst
}

// Size returns the File's encoded size in bytes.
func (f File) Size() int {
	total := WidthI32 + WidthI32
	for _, item := range f.Items {
		total += item.Size()
	}
	return total
}

// sliceSpan carves an absolute [start,end) byte range out of buf, bounds
// checked, for bounding one top-level item's decode to its own span.
func sliceSpan(buf []byte, start, end int) ([]byte, error) {
	if start < 0 || end > len(buf) || start > end {
		return nil, ErrTruncated
	}
	return buf[start:end], nil
}
