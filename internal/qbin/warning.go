package qbin

import "fmt"

// Warning records a non-fatal anomaly observed during decode: currently,
// only a Picture whose pixel-count formula disagrees with the bytes
// remaining in its span. They accumulate as typed values on File rather
// than being written to stderr, so a host application can format or log
// them however it prefers.
type Warning struct {
	ItemIndex int
	Message   string
}

func (w Warning) String() string {
	return fmt.Sprintf("item %d: %s", w.ItemIndex, w.Message)
}

func pictureTrailingBytesWarning(itemIndex int, n int) Warning {
	return Warning{
		ItemIndex: itemIndex,
		Message:   fmt.Sprintf("picture has %d trailing byte(s) beyond its declared pixel region", n),
	}
}
