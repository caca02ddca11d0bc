// Package ascii implements the lossless, human-editable JSON projection of
// a qbin.File: Scene.qa. Field order mirrors each qbin.RecordSchema's
// declared order, BrushType is emitted by name, and every unknown byte
// span is emitted as a lowercase hex string rather than a numeric guess.
package ascii

import "errors"

// ErrAsciiParse reports a structural failure decoding Scene.qa: malformed
// JSON, a missing field, or a hex/brush-name value that does not parse.
var ErrAsciiParse = errors.New("ascii: parse failure")
