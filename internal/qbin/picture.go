package qbin

import "fmt"

// Picture image_kind values.
const (
	ImageKindRGB  uint8 = 6
	ImageKindRGBA uint8 = 7
)

// RGB is a 3-byte-per-pixel color sample.
type RGB struct{ R, G, B byte }

// RGBA is a 4-byte-per-pixel color sample.
type RGBA struct{ R, G, B, A byte }

// Picture is a pixel array embedded in the payload: a format within the
// format, whose element type is chosen by image_kind and whose length is
// width times height pixels.
type Picture struct {
	Unknown0    Raw // 2 bytes
	ChannelSize int16
	Unknown1    Raw // 1 byte
	ImageKind   uint8
	Unknown2    Raw // 1 byte
	Unknown3    Raw // 1 byte
	Width       int32
	Height      int32
	Unknown4To7 Raw // 4 bytes

	RGBPixels  []RGB  // populated when ImageKind == ImageKindRGB
	RGBAPixels []RGBA // populated when ImageKind == ImageKindRGBA

	// TrailingBytes holds any bytes observed beyond width*height pixels
	// within this Picture's span. Only ever non-empty when the upstream
	// capture's pixel-count formula disagrees with the bytes actually
	// present; preserved verbatim rather than interpreted.
	TrailingBytes Raw
}

// isTopLevelItem marks Picture as a TopLevelItem variant.
func (Picture) isTopLevelItem() {}

// Kind reports this item's RecordKind.
func (Picture) Kind() RecordKind { return KindPictureItem }

// PixelCount returns width*height, the declared pixel sequence length.
func (p Picture) PixelCount() int64 {
	return int64(p.Width) * int64(p.Height)
}

// DecodePicture reads a Picture from a ByteCursor bounded to this
// Picture's span (i.e. from its SceneIndex offset to the next item's
// offset, or end of buffer). Any bytes left over after the declared pixel
// region are captured as TrailingBytes rather than treated as an error.
func DecodePicture(c *ByteCursor) (Picture, error) {
	unknown0Bytes, err := c.Next(WidthI16)
	if err != nil {
		return Picture{}, fmt.Errorf("picture header: %w", err)
	}
	unknown0, err := DecodeRaw(unknown0Bytes, WidthI16)
	if err != nil {
		return Picture{}, fmt.Errorf("picture header: %w", err)
	}

	channelSizeBytes, err := c.Next(WidthI16)
	if err != nil {
		return Picture{}, fmt.Errorf("picture header: %w", err)
	}
	channelSize, err := DecodeI16(channelSizeBytes)
	if err != nil {
		return Picture{}, fmt.Errorf("picture header: %w", err)
	}

	unknown1Bytes, err := c.Next(WidthU8)
	if err != nil {
		return Picture{}, fmt.Errorf("picture header: %w", err)
	}
	unknown1, err := DecodeRaw(unknown1Bytes, WidthU8)
	if err != nil {
		return Picture{}, fmt.Errorf("picture header: %w", err)
	}

	imageKindBytes, err := c.Next(WidthU8)
	if err != nil {
		return Picture{}, fmt.Errorf("picture header: %w", err)
	}
	imageKind, err := DecodeU8(imageKindBytes)
	if err != nil {
		return Picture{}, fmt.Errorf("picture header: %w", err)
	}
	if imageKind != ImageKindRGB && imageKind != ImageKindRGBA {
		return Picture{}, fmt.Errorf("%w: image_kind %d outside {%d,%d}", ErrInvalidEnum, imageKind, ImageKindRGB, ImageKindRGBA)
	}

	unknown2Bytes, err := c.Next(WidthU8)
	if err != nil {
		return Picture{}, fmt.Errorf("picture header: %w", err)
	}
	unknown2, err := DecodeRaw(unknown2Bytes, WidthU8)
	if err != nil {
		return Picture{}, fmt.Errorf("picture header: %w", err)
	}

	unknown3Bytes, err := c.Next(WidthU8)
	if err != nil {
		return Picture{}, fmt.Errorf("picture header: %w", err)
	}
	unknown3, err := DecodeRaw(unknown3Bytes, WidthU8)
	if err != nil {
		return Picture{}, fmt.Errorf("picture header: %w", err)
	}

	widthBytes, err := c.Next(WidthI32)
	if err != nil {
		return Picture{}, fmt.Errorf("picture header: %w", err)
	}
	width, err := DecodeI32(widthBytes)
	if err != nil {
		return Picture{}, fmt.Errorf("picture header: %w", err)
	}

	heightBytes, err := c.Next(WidthI32)
	if err != nil {
		return Picture{}, fmt.Errorf("picture header: %w", err)
	}
	height, err := DecodeI32(heightBytes)
	if err != nil {
		return Picture{}, fmt.Errorf("picture header: %w", err)
	}

	unknown4To7Bytes, err := c.Next(4)
	if err != nil {
		return Picture{}, fmt.Errorf("picture header: %w", err)
	}
	unknown4To7, err := DecodeRaw(unknown4To7Bytes, 4)
	if err != nil {
		return Picture{}, fmt.Errorf("picture header: %w", err)
	}

	p := Picture{
		Unknown0:    unknown0,
		ChannelSize: channelSize,
		Unknown1:    unknown1,
		ImageKind:   imageKind,
		Unknown2:    unknown2,
		Unknown3:    unknown3,
		Width:       width,
		Height:      height,
		Unknown4To7: unknown4To7,
	}

	// An empty pixel sequence stays nil, so a decoded Picture compares
	// equal to a hand-constructed one. Preallocation is capped at what
	// the span could possibly hold, so a corrupt width/height pair cannot
	// demand an absurd allocation before the loop fails with ErrTruncated.
	count := p.PixelCount()
	if count < 0 {
		return Picture{}, fmt.Errorf("%w: picture declares negative pixel count %d (%dx%d)", ErrTruncated, count, width, height)
	}
	switch {
	case count == 0:
	case imageKind == ImageKindRGB:
		pixels := make([]RGB, 0, min(count, int64(len(c.Remaining())/3)))
		for i := int64(0); i < count; i++ {
			b, err := c.Next(3)
			if err != nil {
				return Picture{}, fmt.Errorf("picture: pixel %d/%d: %w", i, count, err)
			}
			pixels = append(pixels, RGB{R: b[0], G: b[1], B: b[2]})
		}
		p.RGBPixels = pixels
	case imageKind == ImageKindRGBA:
		pixels := make([]RGBA, 0, min(count, int64(len(c.Remaining())/4)))
		for i := int64(0); i < count; i++ {
			b, err := c.Next(4)
			if err != nil {
				return Picture{}, fmt.Errorf("picture: pixel %d/%d: %w", i, count, err)
			}
			pixels = append(pixels, RGBA{R: b[0], G: b[1], B: b[2], A: b[3]})
		}
		p.RGBAPixels = pixels
	}

	// Any bytes left in this Picture's bounded span are an opaque tail:
	// preserve, do not guess at their meaning.
	if tail := c.Remaining(); len(tail) > 0 {
		p.TrailingBytes = Raw(tail).Clone()
		c.Advance(len(tail))
	}

	return p, nil
}

// Encode appends the Picture's little-endian byte representation to dst.
func (p Picture) Encode(dst []byte) []byte {
	dst = appendRaw(dst, p.Unknown0, WidthI16)
	dst = append(dst, EncodeI16(p.ChannelSize)...)
	dst = appendRaw(dst, p.Unknown1, WidthU8)
	dst = append(dst, EncodeU8(p.ImageKind)...)
	dst = appendRaw(dst, p.Unknown2, WidthU8)
	dst = appendRaw(dst, p.Unknown3, WidthU8)
	dst = append(dst, EncodeI32(p.Width)...)
	dst = append(dst, EncodeI32(p.Height)...)
	dst = appendRaw(dst, p.Unknown4To7, 4)
	switch p.ImageKind {
	case ImageKindRGB:
		for _, px := range p.RGBPixels {
			dst = append(dst, px.R, px.G, px.B)
		}
	case ImageKindRGBA:
		for _, px := range p.RGBAPixels {
			dst = append(dst, px.R, px.G, px.B, px.A)
		}
	}
	dst = append(dst, []byte(p.TrailingBytes)...)
	return dst
}

// Size returns the Picture's encoded size in bytes.
func (p Picture) Size() int {
	headerSize := PictureSchema.HeaderSize()
	pixelSize := 3
	pixelCount := len(p.RGBPixels)
	if p.ImageKind == ImageKindRGBA {
		pixelSize = 4
		pixelCount = len(p.RGBAPixels)
	}
	return headerSize + pixelCount*pixelSize + len(p.TrailingBytes)
}
