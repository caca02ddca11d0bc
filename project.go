package quillustrate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btparker/quillustrate/internal/ascii"
	"github.com/btparker/quillustrate/internal/qbin"
	"github.com/btparker/quillustrate/internal/sceneindex"
)

const (
	sceneJSONName  = "Scene.json"
	stateJSONName  = "State.json"
	altStateName   = "~State.json"
	sceneQbinName  = "Scene.qbin"
	sceneASCIIName = "Scene.qa"
)

// Project is a loaded project: its binary payload decoded into a
// qbin.File, its opaque state blob passed through verbatim, and the
// SceneIndex it was decoded against (needed again on Save to rewrite
// DataFileOffset entries if item sizes changed).
type Project struct {
	File  qbin.File
	State []byte

	index sceneindex.SceneIndex
}

// Load reads a project directory's Scene.json, State.json (or
// ~State.json), and Scene.qbin, and assembles a Project.
func Load(projectDir string) (*Project, error) {
	state, err := readState(projectDir)
	if err != nil {
		return nil, err
	}

	sceneJSON, err := os.ReadFile(filepath.Join(projectDir, sceneJSONName))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrIO, sceneJSONName, err)
	}

	qbinBytes, err := os.ReadFile(filepath.Join(projectDir, sceneQbinName))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrIO, sceneQbinName, err)
	}

	index, err := sceneindex.Build(sceneJSON)
	if err != nil {
		return nil, fmt.Errorf("quillustrate: %w", err)
	}
	if err := index.Validate(len(qbinBytes)); err != nil {
		return nil, fmt.Errorf("quillustrate: %w", err)
	}

	file, err := decodeFileWithIndex(qbinBytes, index)
	if err != nil {
		return nil, err
	}

	return &Project{File: file, State: state, index: index}, nil
}

// decodeFileWithIndex drives qbin.DecodeFileHeader/ItemSpanBytes/DecodeItem
// directly (rather than qbin.DecodeFile) so every error and warning can be
// annotated with the offending entry's layer_path.
func decodeFileWithIndex(buf []byte, index sceneindex.SceneIndex) (qbin.File, error) {
	// An empty Scene.qbin with no indexed layers is an absent payload,
	// not a malformed one.
	if len(buf) == 0 && len(index.Entries()) == 0 {
		return qbin.File{}, nil
	}

	highestID, unknown0, _, err := qbin.DecodeFileHeader(buf)
	if err != nil {
		return qbin.File{}, fmt.Errorf("quillustrate: %w", err)
	}

	entries := index.Entries()
	spans := index.Spans()
	var items []qbin.TopLevelItem
	if len(entries) > 0 {
		items = make([]qbin.TopLevelItem, 0, len(entries))
	}
	var warnings []qbin.Warning

	for i, entry := range entries {
		itemBytes, err := qbin.ItemSpanBytes(buf, spans, i)
		if err != nil {
			return qbin.File{}, annotate(entry.LayerPath, err)
		}
		item, trailingLen, err := qbin.DecodeItem(itemBytes, entry.Kind)
		if err != nil {
			return qbin.File{}, annotate(entry.LayerPath, err)
		}
		if trailingLen > 0 {
			warnings = append(warnings, qbin.Warning{ItemIndex: i, Message: fmt.Sprintf("layer_path %q: picture has %d trailing byte(s) beyond its declared pixel region", entry.LayerPath, trailingLen)})
		}
		items = append(items, item)
	}

	return qbin.File{
		HighestGlobalStrokeID: highestID,
		Unknown0:              unknown0,
		Items:                 items,
		Warnings:              warnings,
	}, nil
}

func readState(projectDir string) ([]byte, error) {
	path := filepath.Join(projectDir, stateJSONName)
	b, err := os.ReadFile(path)
	if err == nil {
		return b, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrIO, stateJSONName, err)
	}
	altPath := filepath.Join(projectDir, altStateName)
	b, altErr := os.ReadFile(altPath)
	if altErr != nil {
		return nil, fmt.Errorf("%w: reading %s or %s: %v", ErrIO, stateJSONName, altStateName, altErr)
	}
	return b, nil
}

// SaveOptions controls which files Save emits besides the always-written
// Scene.json, State.json, and Scene.qbin.
type SaveOptions struct {
	// WriteASCII controls whether Scene.qa is also written. Defaults to
	// true. Scene.qbin is always written regardless, so the byte-exact
	// binary form never depends on this flag.
	WriteASCII bool
}

// DefaultSaveOptions returns the SaveOptions Save uses when none are given.
func DefaultSaveOptions() SaveOptions {
	return SaveOptions{WriteASCII: true}
}

// Save serializes p's File, rewrites p's SceneIndex offsets to match the
// sizes actually produced, and writes Scene.json, State.json, Scene.qbin,
// and (by default) Scene.qa into outDir.
func Save(p *Project, outDir string, opts SaveOptions) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrIO, outDir, err)
	}

	qbinBytes := encodeFile(p.File)
	if err := os.WriteFile(filepath.Join(outDir, sceneQbinName), qbinBytes, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrIO, sceneQbinName, err)
	}

	newOffsets := runningOffsets(p.File)
	sceneJSON, err := p.index.Rewrite(newOffsets)
	if err != nil {
		return fmt.Errorf("quillustrate: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, sceneJSONName), sceneJSON, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrIO, sceneJSONName, err)
	}

	if err := os.WriteFile(filepath.Join(outDir, stateJSONName), p.State, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrIO, stateJSONName, err)
	}

	if opts.WriteASCII {
		text, err := ascii.Encode(p.File)
		if err != nil {
			return fmt.Errorf("quillustrate: %w", err)
		}
		if err := os.WriteFile(filepath.Join(outDir, sceneASCIIName), text, 0o644); err != nil {
			return fmt.Errorf("%w: writing %s: %v", ErrIO, sceneASCIIName, err)
		}
	}

	return nil
}

// runningOffsets computes each top-level item's byte offset within the
// payload Encode will produce, in p.File.Items order — the order
// SceneIndex.Rewrite expects.
func runningOffsets(f qbin.File) []int {
	offsets := make([]int, len(f.Items))
	offset := qbin.WidthI32 + qbin.WidthI32 // the File header
	for i, item := range f.Items {
		offsets[i] = offset
		offset += item.Size()
	}
	return offsets
}
