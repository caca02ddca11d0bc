// Package sceneindex builds the ordered (offset, kind, layer_path) index
// that bounds each top-level qbin.Drawing/qbin.Picture item within
// Scene.qbin, by walking the layer tree described in a project's
// Scene.json.
package sceneindex

import "errors"

// ErrSceneIndexMismatch reports that an entry's declared offset could not
// be reconciled against the payload it addresses: a negative or
// out-of-range offset, or a duplicate offset claimed by two layers.
var ErrSceneIndexMismatch = errors.New("sceneindex: offset mismatch")
