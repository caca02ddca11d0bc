package quillustrate

import (
	"errors"
	"fmt"
)

// ErrIO reports an underlying filesystem failure reading or writing a
// project's files.
var ErrIO = errors.New("quillustrate: io error")

// annotate wraps err with the layer_path of the SceneIndex entry it came
// from, so a decode failure names the layer whose bytes caused it.
func annotate(layerPath string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("quillustrate: layer_path %q: %w", layerPath, err)
}
