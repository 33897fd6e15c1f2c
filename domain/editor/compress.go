package editor

import (
	"fmt"
	"image"
)

const (
	minQuality  = 10
	qualityStep = 5
)

// CompressResult reports what Compress actually produced.
type CompressResult struct {
	Data        []byte
	Format      Format
	QualityUsed int
}

// Compress encodes img in the given format at the requested quality. When
// maxSizeKB is positive and the format is JPEG, the quality is stepped down
// by 5 until the output fits or quality reaches 10; the final attempt is
// kept even if it still exceeds the target. PNG ignores both quality and the
// size target. Alpha is flattened onto white for both formats.
func Compress(img image.Image, format Format, quality, maxSizeKB int) (CompressResult, error) {
	if !format.CanEncode() {
		return CompressResult{}, fmt.Errorf("cannot compress to format %s", format)
	}
	if quality < 1 || quality > 100 {
		return CompressResult{}, fmt.Errorf("quality %d out of range 1-100", quality)
	}
	if format == FormatPNG {
		data, err := EncodeBytes(Flatten(img), FormatPNG, 0)
		if err != nil {
			return CompressResult{}, err
		}
		return CompressResult{Data: data, Format: FormatPNG, QualityUsed: quality}, nil
	}

	q := quality
	for {
		data, err := EncodeBytes(img, FormatJPEG, q)
		if err != nil {
			return CompressResult{}, err
		}
		if maxSizeKB <= 0 || len(data) <= maxSizeKB*1024 || q <= minQuality {
			return CompressResult{Data: data, Format: FormatJPEG, QualityUsed: q}, nil
		}
		q -= qualityStep
		if q < minQuality {
			q = minQuality
		}
	}
}
