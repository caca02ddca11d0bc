package qbin

import (
	"errors"
	"testing"
)

func TestPictureRGB2x1RoundTrip(t *testing.T) {
	p := Picture{
		Unknown0:    Raw{0, 0},
		ChannelSize: 8,
		Unknown1:    Raw{0},
		ImageKind:   ImageKindRGB,
		Unknown2:    Raw{0},
		Unknown3:    Raw{0},
		Width:       2,
		Height:      1,
		Unknown4To7: Raw{0, 0, 0, 0},
		RGBPixels: []RGB{
			{R: 0xFF, G: 0x00, B: 0x00},
			{R: 0x00, G: 0xFF, B: 0x00},
		},
	}
	encoded := p.Encode(nil)
	got, err := DecodePicture(NewByteCursor(encoded))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.RGBPixels) != 2 {
		t.Fatalf("got %d pixels, want 2", len(got.RGBPixels))
	}
	if got.RGBPixels[0] != (RGB{R: 0xFF, G: 0x00, B: 0x00}) {
		t.Fatalf("pixel 0 = %+v", got.RGBPixels[0])
	}
	if got.RGBPixels[1] != (RGB{R: 0x00, G: 0xFF, B: 0x00}) {
		t.Fatalf("pixel 1 = %+v", got.RGBPixels[1])
	}
	reencoded := got.Encode(nil)
	if string(reencoded) != string(encoded) {
		t.Fatalf("re-encoding did not reproduce the original bytes")
	}
}

func TestPictureRGBA(t *testing.T) {
	p := Picture{
		ImageKind: ImageKindRGBA,
		Width:     1,
		Height:    1,
		Unknown0:  Raw{0, 0}, Unknown1: Raw{0}, Unknown2: Raw{0}, Unknown3: Raw{0},
		Unknown4To7: Raw{0, 0, 0, 0},
		RGBAPixels:  []RGBA{{R: 1, G: 2, B: 3, A: 4}},
	}
	encoded := p.Encode(nil)
	got, err := DecodePicture(NewByteCursor(encoded))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.RGBAPixels) != 1 || got.RGBAPixels[0] != (RGBA{R: 1, G: 2, B: 3, A: 4}) {
		t.Fatalf("got %+v", got.RGBAPixels)
	}
}

func TestPictureZeroDimensions(t *testing.T) {
	p := Picture{
		ImageKind: ImageKindRGB,
		Width:     0,
		Height:    0,
		Unknown0:  Raw{0, 0}, Unknown1: Raw{0}, Unknown2: Raw{0}, Unknown3: Raw{0},
		Unknown4To7: Raw{0, 0, 0, 0},
	}
	encoded := p.Encode(nil)
	got, err := DecodePicture(NewByteCursor(encoded))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.RGBPixels) != 0 {
		t.Fatalf("expected zero pixels, got %d", len(got.RGBPixels))
	}
}

func TestPictureInvalidImageKind(t *testing.T) {
	p := Picture{
		ImageKind: 3,
		Width:     0, Height: 0,
		Unknown0: Raw{0, 0}, Unknown1: Raw{0}, Unknown2: Raw{0}, Unknown3: Raw{0},
		Unknown4To7: Raw{0, 0, 0, 0},
	}
	encoded := p.Encode(nil)
	if _, err := DecodePicture(NewByteCursor(encoded)); !errors.Is(err, ErrInvalidEnum) {
		t.Fatalf("expected ErrInvalidEnum, got %v", err)
	}
}

func TestPictureTrailingBytesPreserved(t *testing.T) {
	p := Picture{
		ImageKind: ImageKindRGB,
		Width:     1,
		Height:    1,
		Unknown0:  Raw{0, 0}, Unknown1: Raw{0}, Unknown2: Raw{0}, Unknown3: Raw{0},
		Unknown4To7: Raw{0, 0, 0, 0},
		RGBPixels:   []RGB{{R: 1, G: 2, B: 3}},
	}
	encoded := p.Encode(nil)
	// Simulate an upstream capture with 2 extra bytes beyond the declared
	// pixel region.
	encoded = append(encoded, 0xDE, 0xAD)

	got, err := DecodePicture(NewByteCursor(encoded))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.TrailingBytes) != 2 || got.TrailingBytes[0] != 0xDE || got.TrailingBytes[1] != 0xAD {
		t.Fatalf("TrailingBytes = %v", got.TrailingBytes)
	}
	reencoded := got.Encode(nil)
	if string(reencoded) != string(encoded) {
		t.Fatalf("re-encoding did not reproduce the original bytes including the trailing tail")
	}
}
