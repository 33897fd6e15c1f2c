package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Client is the UI-side counterpart of Server. All calls block and are safe
// for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient talks to a server at baseURL, e.g. "http://127.0.0.1:49621".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Health checks that the server is up.
func (c *Client) Health(ctx context.Context) (HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return HealthResponse{}, err
	}
	var out HealthResponse
	if err := c.do(req, &out); err != nil {
		return HealthResponse{}, err
	}
	return out, nil
}

// Upload sends a local file as a multipart upload.
func (c *Client) Upload(ctx context.Context, path string) (ImageResponse, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImageResponse{}, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("image", filepath.Base(path))
	if err != nil {
		return ImageResponse{}, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return ImageResponse{}, fmt.Errorf("read upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return ImageResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &body)
	if err != nil {
		return ImageResponse{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out ImageResponse
	if err := c.do(req, &out); err != nil {
		return ImageResponse{}, err
	}
	return out, checkImageResponse(out)
}

// Adjust applies enhancement factors to the pristine image.
func (c *Client) Adjust(ctx context.Context, r AdjustRequest) (ImageResponse, error) {
	var out ImageResponse
	if err := c.postJSON(ctx, "/adjust", r, &out); err != nil {
		return ImageResponse{}, err
	}
	return out, checkImageResponse(out)
}

// Crop cuts a rectangle out of the working image.
func (c *Client) Crop(ctx context.Context, r CropRequest) (ImageResponse, error) {
	var out ImageResponse
	if err := c.postJSON(ctx, "/crop", r, &out); err != nil {
		return ImageResponse{}, err
	}
	return out, checkImageResponse(out)
}

// Compress re-encodes the working image.
func (c *Client) Compress(ctx context.Context, r CompressRequest) (CompressResponse, error) {
	var out CompressResponse
	if err := c.postJSON(ctx, "/compress", r, &out); err != nil {
		return CompressResponse{}, err
	}
	if !out.Success {
		return CompressResponse{}, fmt.Errorf("server: %s", out.Error)
	}
	return out, nil
}

// Reset deletes the working image and its pristine twin on the server.
func (c *Client) Reset(ctx context.Context, filename string) (ImageResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/reset/"+filename, nil)
	if err != nil {
		return ImageResponse{}, err
	}
	var out ImageResponse
	if err := c.do(req, &out); err != nil {
		return ImageResponse{}, err
	}
	return out, checkImageResponse(out)
}

// Download fetches a stored file into destPath.
func (c *Client) Download(ctx context.Context, filename, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/download/"+filename, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download: server returned %s", resp.Status)
	}
	f, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("create download: %w", err)
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		return fmt.Errorf("write download: %w", err)
	}
	return f.Close()
}

func (c *Client) postJSON(ctx context.Context, endpoint string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}
	return nil
}

func checkImageResponse(r ImageResponse) error {
	if !r.Success {
		return fmt.Errorf("server: %s", r.Error)
	}
	return nil
}
