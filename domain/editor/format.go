package editor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Format identifies an image codec handled by the editor.
type Format string

const (
	FormatJPEG Format = "JPEG"
	FormatPNG  Format = "PNG"
	FormatWEBP Format = "WEBP" // decode only; no pure-Go encoder
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "JPEG", "JPG":
		return FormatJPEG, nil
	case "PNG":
		return FormatPNG, nil
	case "WEBP":
		return FormatWEBP, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", s)
	}
}

// FormatFromExt derives the format from a filename extension, defaulting to
// PNG for anything unrecognized.
func FormatFromExt(name string) Format {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")) {
	case "jpg", "jpeg":
		return FormatJPEG
	case "webp":
		return FormatWEBP
	default:
		return FormatPNG
	}
}

// Ext returns the canonical filename extension, without the dot.
func (f Format) Ext() string {
	switch f {
	case FormatJPEG:
		return "jpg"
	case FormatWEBP:
		return "webp"
	default:
		return "png"
	}
}

// CanEncode reports whether the editor can write the format back out.
func (f Format) CanEncode() bool { return f == FormatJPEG || f == FormatPNG }

// imagingFormat translates to the imaging library's format enum. WEBP output
// is rejected by CanEncode before this is reached; JPEG is the fallback.
func (f Format) imagingFormat() imaging.Format {
	if f == FormatPNG {
		return imaging.PNG
	}
	return imaging.JPEG
}

// AllowedFile reports whether the filename carries an accepted upload
// extension (jpg, jpeg, png, webp).
func AllowedFile(name string) bool {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")) {
	case "jpg", "jpeg", "png", "webp":
		return true
	default:
		return false
	}
}
