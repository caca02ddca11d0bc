package quillustrate

import (
	"fmt"

	"github.com/btparker/quillustrate/internal/ascii"
	"github.com/btparker/quillustrate/internal/qbin"
)

// ToASCII renders a Project's binary payload as Scene.qa text.
func ToASCII(p *Project) ([]byte, error) {
	text, err := ascii.Encode(p.File)
	if err != nil {
		return nil, fmt.Errorf("quillustrate: %w", err)
	}
	return text, nil
}

// FromASCII parses Scene.qa text produced by ToASCII back into a File.
// The caller is responsible for attaching it to a Project (setting
// Project.File) alongside a SceneIndex and State obtained from Load, when
// the result needs to be saved back out.
func FromASCII(text []byte) (qbin.File, error) {
	f, err := ascii.Decode(text)
	if err != nil {
		return qbin.File{}, fmt.Errorf("quillustrate: %w", err)
	}
	return f, nil
}
