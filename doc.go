// Package quillustrate implements a codec for a VR painting application's
// project format: two JSON scene-description files, an opaque binary
// payload of stroke geometry and embedded pictures, and a small state
// blob.
//
// Load reads a project directory into a Project. Save writes one back
// out, reproducing the binary payload byte-for-byte for any Project that
// came from Load unmodified. ToASCII/FromASCII provide a lossless,
// human-editable JSON projection of the binary payload.
//
// Basic usage for reading a project:
//
//	proj, err := quillustrate.Load("path/to/project")
//
// Basic usage for writing one back out:
//
//	err := quillustrate.Save(proj, "path/to/output", quillustrate.DefaultSaveOptions())
//
// The binary codec itself — byte cursor, primitive encoding, record
// schemas, and the recursive record codec — lives in internal/qbin.
// internal/sceneindex locates top-level records inside the payload by
// walking the scene file's layer tree. internal/ascii implements the
// JSON projection.
package quillustrate
