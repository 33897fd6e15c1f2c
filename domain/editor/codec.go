package editor

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"

	_ "golang.org/x/image/webp"
)

// Open decodes an image file, honoring EXIF orientation.
func Open(path string) (image.Image, Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads an image from r. The returned Format reflects the encoded
// stream, not the requested output.
func Decode(r io.Reader) (image.Image, Format, error) {
	var buf bytes.Buffer
	tee := io.TeeReader(r, &buf)
	_, name, err := image.DecodeConfig(tee)
	if err != nil {
		return nil, "", fmt.Errorf("decode image header: %w", err)
	}
	img, err := imaging.Decode(io.MultiReader(&buf, r), imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	var format Format
	switch name {
	case "jpeg":
		format = FormatJPEG
	case "webp":
		format = FormatWEBP
	default:
		format = FormatPNG
	}
	return img, format, nil
}

// Encode writes img to w in the given format. JPEG quality is 1..100; it is
// ignored for PNG. Images with transparency are flattened onto white before
// JPEG encoding.
func Encode(w io.Writer, img image.Image, format Format, quality int) error {
	if !format.CanEncode() {
		return fmt.Errorf("cannot encode format %s", format)
	}
	if format == FormatJPEG {
		img = Flatten(img)
		return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(quality))
	}
	return imaging.Encode(w, img, imaging.PNG)
}

// EncodeBytes is Encode into a fresh byte slice.
func EncodeBytes(img image.Image, format Format, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, format, quality); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save encodes img to path, replacing any existing file.
func Save(path string, img image.Image, format Format, quality int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image file: %w", err)
	}
	if err := Encode(f, img, format, quality); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// PreviewDataURI renders img as a base64 PNG data URI for inline previews.
func PreviewDataURI(img image.Image) (string, error) {
	data, err := EncodeBytes(img, FormatPNG, 0)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}
