package api

import "github.com/mvail/pixpress/domain/editor"

// AdjustRequest carries the enhancement factors for one image. 1.0 is
// identity for every factor.
type AdjustRequest struct {
	Filename   string  `json:"filename"`
	Brightness float64 `json:"brightness"`
	Contrast   float64 `json:"contrast"`
	Saturation float64 `json:"saturation"`
	Sharpness  float64 `json:"sharpness"`
}

// CropRequest names a rectangle in natural image pixels.
type CropRequest struct {
	Filename string `json:"filename"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// CompressRequest asks for a re-encode of the working image.
type CompressRequest struct {
	Filename     string `json:"filename"`
	Quality      int    `json:"quality"`
	OutputFormat string `json:"outputFormat"`
	MaxSizeKB    int    `json:"maxSizeKB"`
}

// ImageResponse is the common shape for upload, adjust, crop, and reset.
// Preview is a base64 PNG data URI of the current working image.
type ImageResponse struct {
	Success  bool         `json:"success"`
	Filename string       `json:"filename,omitempty"`
	Preview  string       `json:"preview,omitempty"`
	Info     *editor.Info `json:"info,omitempty"`
	Error    string       `json:"error,omitempty"`
}

// CompressResponse extends ImageResponse with what the compressor decided.
type CompressResponse struct {
	Success     bool         `json:"success"`
	Preview     string       `json:"preview,omitempty"`
	Info        *editor.Info `json:"info,omitempty"`
	QualityUsed int          `json:"qualityUsed,omitempty"`
	NewFilename string       `json:"newFilename,omitempty"`
	Format      string       `json:"format,omitempty"`
	Error       string       `json:"error,omitempty"`
}

// HealthResponse reports server liveness.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
