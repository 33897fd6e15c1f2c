package editor

import (
	"image"
	"math"

	"github.com/dustin/go-humanize"
)

// Info summarizes an image for the client: pixel dimensions, the encoded
// format, and the file size in both units the UI displays.
type Info struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Format string  `json:"format"`
	SizeKB float64 `json:"size_kb"`
	SizeMB float64 `json:"size_mb"`
}

// NewInfo builds an Info from a decoded image and the byte size of its
// encoded form.
func NewInfo(img image.Image, format Format, sizeBytes int64) Info {
	return Info{
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
		Format: string(format),
		SizeKB: round2(float64(sizeBytes) / 1024),
		SizeMB: round2(float64(sizeBytes) / (1024 * 1024)),
	}
}

// SizeLabel is a human-readable size for status lines, e.g. "1.2 MB".
func SizeLabel(sizeBytes int64) string {
	return humanize.IBytes(uint64(sizeBytes))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
