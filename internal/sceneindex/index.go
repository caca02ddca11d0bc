package sceneindex

import (
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strconv"

	"github.com/btparker/quillustrate/internal/qbin"
)

// Entry is one discovered binding between a Scene.qbin byte offset and the
// layer that owns it.
type Entry struct {
	Offset    int
	Kind      qbin.RecordKind
	LayerPath string

	// seq is this entry's position in the depth-first tree walk, before
	// sorting by Offset. Rewrite uses it to place a recomputed offset back
	// at the same leaf it came from, since tree order and offset order
	// need not agree.
	seq int
}

// SceneIndex is the ordered set of Entry values produced by walking a
// Scene.json layer tree; Build rejects a tree in which two entries share
// an offset. Entries are always held sorted by
// Offset, since the binary payload is addressed strictly by increasing
// offset even though Scene.json's tree order need not match it.
type SceneIndex struct {
	entries []Entry
	doc     jsonObject
}

// Entries returns the index's entries in ascending offset order.
func (s SceneIndex) Entries() []Entry {
	return s.entries
}

// Spans projects the index into the (offset, kind) list qbin.DecodeFile
// consumes to bound each top-level item's span.
func (s SceneIndex) Spans() []qbin.ItemSpan {
	spans := make([]qbin.ItemSpan, len(s.entries))
	for i, e := range s.entries {
		spans[i] = qbin.ItemSpan{Offset: e.Offset, Kind: e.Kind}
	}
	return spans
}

// Build walks raw Scene.json bytes and returns the resulting SceneIndex,
// sorted by offset. The tree is walked depth-first starting from
// Sequence.RootLayer; a Paint layer contributes one entry per drawing in
// its Drawings list, a Picture layer contributes its own single entry,
// and any other layer type is descended into via its own Children list.
// The binary payload is not self-delimiting at the top level, so decoding
// it is impossible without this externally-supplied list.
func Build(sceneJSON []byte) (SceneIndex, error) {
	doc, err := parseSceneDocument(sceneJSON)
	if err != nil {
		return SceneIndex{}, fmt.Errorf("sceneindex: parse Scene.json: %w", err)
	}

	root, rootName, err := rootLayer(doc)
	if err != nil {
		return SceneIndex{}, fmt.Errorf("sceneindex: %w", err)
	}

	var entries []Entry
	counter := 0
	if err := walk(root, rootName, &entries, &counter); err != nil {
		return SceneIndex{}, err
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Offset < entries[j].Offset })

	seen := make(map[int]string, len(entries))
	for _, e := range entries {
		if prior, ok := seen[e.Offset]; ok {
			return SceneIndex{}, fmt.Errorf("%w: offset %d claimed by both %q and %q", ErrSceneIndexMismatch, e.Offset, prior, e.LayerPath)
		}
		seen[e.Offset] = e.LayerPath
	}

	return SceneIndex{entries: entries, doc: doc}, nil
}

func walk(layer jsonObject, layerPath string, entries *[]Entry, counter *int) error {
	children, err := layerChildren(layer, layerPath)
	if err != nil {
		return fmt.Errorf("sceneindex: layer %q: %w", layerPath, err)
	}
	for _, raw := range children {
		child, err := asObject(raw, "layer")
		if err != nil {
			return fmt.Errorf("sceneindex: layer %q: %w", layerPath, err)
		}
		name, err := asString(child["Name"], "Name")
		if err != nil {
			return fmt.Errorf("sceneindex: layer %q: %w", layerPath, err)
		}
		childType, _ := child["Type"].(string)
		childPath := path.Join(layerPath, name)

		switch childType {
		case "Paint":
			impl, err := layerImplementation(child, childPath)
			if err != nil {
				return fmt.Errorf("sceneindex: layer %q: %w", childPath, err)
			}
			drawings, err := asArray(impl["Drawings"], childPath+".Implementation.Drawings")
			if err != nil {
				return fmt.Errorf("sceneindex: layer %q: %w", childPath, err)
			}
			for _, rawDrawing := range drawings {
				drawing, err := asObject(rawDrawing, childPath+".Implementation.Drawings[]")
				if err != nil {
					return fmt.Errorf("sceneindex: layer %q: %w", childPath, err)
				}
				hexOffset, err := asString(drawing["DataFileOffset"], childPath+".Implementation.Drawings[].DataFileOffset")
				if err != nil {
					return fmt.Errorf("sceneindex: layer %q: %w", childPath, err)
				}
				offset, err := parseHexOffset(hexOffset)
				if err != nil {
					return fmt.Errorf("sceneindex: layer %q: %w", childPath, err)
				}
				*entries = append(*entries, Entry{Offset: offset, Kind: qbin.KindDrawingItem, LayerPath: childPath, seq: *counter})
				*counter++
			}
		case "Picture":
			impl, err := layerImplementation(child, childPath)
			if err != nil {
				return fmt.Errorf("sceneindex: layer %q: %w", childPath, err)
			}
			hexOffset, err := asString(impl["DataFileOffset"], childPath+".Implementation.DataFileOffset")
			if err != nil {
				return fmt.Errorf("sceneindex: layer %q: %w", childPath, err)
			}
			offset, err := parseHexOffset(hexOffset)
			if err != nil {
				return fmt.Errorf("sceneindex: layer %q: %w", childPath, err)
			}
			*entries = append(*entries, Entry{Offset: offset, Kind: qbin.KindPictureItem, LayerPath: childPath, seq: *counter})
			*counter++
		default:
			if err := walk(child, childPath, entries, counter); err != nil {
				return err
			}
		}
	}
	return nil
}

// Validate checks that every entry's offset falls within a binary payload
// of length bufLen, returning ErrSceneIndexMismatch for the first offset
// found past end-of-buffer.
func (s SceneIndex) Validate(bufLen int) error {
	for _, e := range s.entries {
		if e.Offset < 0 || e.Offset > bufLen {
			return fmt.Errorf("%w: layer %q offset %d exceeds binary length %d", ErrSceneIndexMismatch, e.LayerPath, e.Offset, bufLen)
		}
	}
	return nil
}

// Rewrite re-marshals the Scene.json document this index was built from,
// substituting each entry's DataFileOffset with newOffsets[i] (newOffsets
// must be parallel to Entries(), i.e. in ascending-by-original-offset
// order — the order ProjectCodec.Save assigns running offsets to
// File.Items in). Every field this package does not model passes through
// unchanged.
func (s SceneIndex) Rewrite(newOffsets []int) ([]byte, error) {
	if len(newOffsets) != len(s.entries) {
		return nil, fmt.Errorf("sceneindex: rewrite wants %d offsets, got %d", len(s.entries), len(newOffsets))
	}
	byTreeOrder := make([]int, len(s.entries))
	for i, e := range s.entries {
		byTreeOrder[e.seq] = newOffsets[i]
	}

	root, rootName, err := rootLayer(s.doc)
	if err != nil {
		return nil, fmt.Errorf("sceneindex: %w", err)
	}
	counter := 0
	if err := rewriteWalk(root, rootName, byTreeOrder, &counter); err != nil {
		return nil, err
	}

	out, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("sceneindex: marshal Scene.json: %w", err)
	}
	return out, nil
}

func rewriteWalk(layer jsonObject, layerPath string, newOffsets []int, counter *int) error {
	children, err := layerChildren(layer, layerPath)
	if err != nil {
		return fmt.Errorf("sceneindex: layer %q: %w", layerPath, err)
	}
	for _, raw := range children {
		child, err := asObject(raw, "layer")
		if err != nil {
			return fmt.Errorf("sceneindex: layer %q: %w", layerPath, err)
		}
		name, _ := child["Name"].(string)
		childType, _ := child["Type"].(string)
		childPath := path.Join(layerPath, name)

		switch childType {
		case "Paint":
			impl, err := layerImplementation(child, childPath)
			if err != nil {
				return fmt.Errorf("sceneindex: layer %q: %w", childPath, err)
			}
			drawings, err := asArray(impl["Drawings"], childPath+".Implementation.Drawings")
			if err != nil {
				return fmt.Errorf("sceneindex: layer %q: %w", childPath, err)
			}
			for _, rawDrawing := range drawings {
				drawing, err := asObject(rawDrawing, childPath+".Implementation.Drawings[]")
				if err != nil {
					return fmt.Errorf("sceneindex: layer %q: %w", childPath, err)
				}
				drawing["DataFileOffset"] = FormatHexOffset(newOffsets[*counter])
				*counter++
			}
		case "Picture":
			impl, err := layerImplementation(child, childPath)
			if err != nil {
				return fmt.Errorf("sceneindex: layer %q: %w", childPath, err)
			}
			impl["DataFileOffset"] = FormatHexOffset(newOffsets[*counter])
			*counter++
		default:
			if err := rewriteWalk(child, childPath, newOffsets, counter); err != nil {
				return err
			}
		}
	}
	return nil
}

// parseHexOffset parses a Scene.json DataFileOffset string, a bare hex
// literal with no "0x" prefix (e.g. "1a4").
func parseHexOffset(s string) (int, error) {
	v, err := strconv.ParseInt(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid DataFileOffset %q: %w", s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: negative offset %q", ErrSceneIndexMismatch, s)
	}
	return int(v), nil
}

// FormatHexOffset renders an offset back into Scene.json's bare-hex string
// form, the inverse of parseHexOffset, for use when ProjectCodec rewrites
// offsets after a Save that changed record sizes.
func FormatHexOffset(offset int) string {
	return strconv.FormatInt(int64(offset), 16)
}
