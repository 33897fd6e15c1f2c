package presenter

import (
	"context"
	"encoding/base64"
	"image"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mvail/pixpress/api"
	"github.com/mvail/pixpress/config"
	"github.com/mvail/pixpress/domain/editor"
	"github.com/mvail/pixpress/domain/geometry"
	"github.com/mvail/pixpress/ui/images"
	"github.com/mvail/pixpress/ui/model"
)

func previewURI(w, h int) string {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(images.EncodePNG(img))
}

func imageResp(filename string, w, h int) api.ImageResponse {
	return api.ImageResponse{
		Success:  true,
		Filename: filename,
		Preview:  previewURI(w, h),
		Info:     &editor.Info{Width: w, Height: h, Format: "PNG", SizeKB: 1.5},
	}
}

type mockClient struct {
	uploadResp   api.ImageResponse
	adjustResp   api.ImageResponse
	cropResp     api.ImageResponse
	compressResp api.CompressResponse
	resetResp    api.ImageResponse

	adjustReqs   []api.AdjustRequest
	cropReqs     []api.CropRequest
	compressReqs []api.CompressRequest
	downloads    []string
}

func (c *mockClient) Upload(context.Context, string) (api.ImageResponse, error) {
	return c.uploadResp, nil
}
func (c *mockClient) Adjust(_ context.Context, r api.AdjustRequest) (api.ImageResponse, error) {
	c.adjustReqs = append(c.adjustReqs, r)
	return c.adjustResp, nil
}
func (c *mockClient) Crop(_ context.Context, r api.CropRequest) (api.ImageResponse, error) {
	c.cropReqs = append(c.cropReqs, r)
	return c.cropResp, nil
}
func (c *mockClient) Compress(_ context.Context, r api.CompressRequest) (api.CompressResponse, error) {
	c.compressReqs = append(c.compressReqs, r)
	return c.compressResp, nil
}
func (c *mockClient) Reset(context.Context, string) (api.ImageResponse, error) {
	return c.resetResp, nil
}
func (c *mockClient) Download(_ context.Context, filename, _ string) error {
	c.downloads = append(c.downloads, filename)
	return nil
}

type mockEditorView struct {
	previews int
	cleared  int
	info     editor.Info
	status   string
	errors   []string
}

func (v *mockEditorView) ShowPreview()              { v.previews++ }
func (v *mockEditorView) ShowInfo(info editor.Info) { v.info = info }
func (v *mockEditorView) ShowCleared()              { v.cleared++ }
func (v *mockEditorView) SetStatus(text string)     { v.status = text }
func (v *mockEditorView) ShowError(msg string)      { v.errors = append(v.errors, msg) }

func newEditorFixture(t *testing.T, client *mockClient) (*EditorPresenter, *mockEditorView) {
	t.Helper()
	cfg := config.DefaultConfig()
	view := &mockEditorView{}
	p := NewEditorPresenter(client, model.NewEditorModel(), model.NewCropModel(), model.NewAdjustModel(),
		view, cfg, filepath.Join(t.TempDir(), "config.json"), nil)
	return p, view
}

// drain ticks until cond holds or the deadline passes.
func drain(t *testing.T, p *EditorPresenter, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		p.Tick()
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not reached before deadline")
}

func TestEditorPresenter_UploadOpensSession(t *testing.T) {
	client := &mockClient{uploadResp: imageResp("a.png", 640, 480)}
	p, view := newEditorFixture(t, client)

	p.OpenFile("/tmp/whatever.png")
	drain(t, p, func() bool { return p.Model.Loaded() })

	if p.Model.Filename() != "a.png" {
		t.Fatalf("got filename %q", p.Model.Filename())
	}
	if got := p.CropModel.Rect(); got != (geometry.CropRect{X: 0, Y: 0, Width: 640, Height: 480}) {
		t.Fatalf("crop rect not initialized to full image: %+v", got)
	}
	if view.previews != 1 || view.info.Width != 640 {
		t.Fatalf("view not updated: previews=%d info=%+v", view.previews, view.info)
	}
	if !strings.Contains(view.status, "Loaded") {
		t.Fatalf("status %q", view.status)
	}
}

func TestEditorPresenter_UploadRestoresPersistedRect(t *testing.T) {
	client := &mockClient{uploadResp: imageResp("a.png", 640, 480)}
	p, _ := newEditorFixture(t, client)
	p.Config.CropX, p.Config.CropY, p.Config.CropW, p.Config.CropH = 10, 20, 100, 50

	p.OpenFile("x.png")
	drain(t, p, func() bool { return p.Model.Loaded() })

	if got := p.CropModel.Rect(); got != (geometry.CropRect{X: 10, Y: 20, Width: 100, Height: 50}) {
		t.Fatalf("persisted rect not restored: %+v", got)
	}
}

func TestEditorPresenter_PersistedRectIgnoredWhenTooBig(t *testing.T) {
	client := &mockClient{uploadResp: imageResp("a.png", 64, 48)}
	p, _ := newEditorFixture(t, client)
	p.Config.CropX, p.Config.CropY, p.Config.CropW, p.Config.CropH = 0, 0, 600, 400

	p.OpenFile("x.png")
	drain(t, p, func() bool { return p.Model.Loaded() })

	if got := p.CropModel.Rect(); got != (geometry.CropRect{X: 0, Y: 0, Width: 64, Height: 48}) {
		t.Fatalf("oversized persisted rect should fall back to full image: %+v", got)
	}
}

func TestEditorPresenter_CropShrinksBoundsAndPersists(t *testing.T) {
	client := &mockClient{
		uploadResp: imageResp("a.png", 640, 480),
		cropResp:   imageResp("a.png", 300, 200),
	}
	p, view := newEditorFixture(t, client)
	p.OpenFile("x.png")
	drain(t, p, func() bool { return p.Model.Loaded() })

	p.RequestCrop(geometry.CropRect{X: 50, Y: 60, Width: 300, Height: 200})
	drain(t, p, func() bool { return p.Model.Info().Width == 300 })

	if b := p.CropModel.Bounds(); b.NaturalWidth != 300 || b.NaturalHeight != 200 {
		t.Fatalf("bounds not updated after crop: %+v", b)
	}
	if p.Config.CropW != 300 || p.Config.CropH != 200 || p.Config.CropX != 50 {
		t.Fatalf("applied rect not persisted: %+v", p.Config)
	}
	if !strings.Contains(view.status, "Cropped") {
		t.Fatalf("status %q", view.status)
	}

	// saved to disk too
	saved, err := config.Load(p.ConfigPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if saved.CropW != 300 {
		t.Fatalf("config file not written: %+v", saved)
	}
}

func TestEditorPresenter_StaleResponseDropped(t *testing.T) {
	client := &mockClient{uploadResp: imageResp("a.png", 640, 480)}
	p, view := newEditorFixture(t, client)
	p.OpenFile("x.png")
	drain(t, p, func() bool { return p.Model.Loaded() })

	// A late response for a previous session's filename must be ignored.
	p.resultCh <- editorResult{op: opAdjust, filename: "old.png", resp: imageResp("old.png", 5, 5)}
	p.Tick()
	if p.Model.Info().Width != 640 {
		t.Fatalf("stale response applied: %+v", p.Model.Info())
	}
	if len(view.errors) != 0 {
		t.Fatalf("stale response raised an error: %v", view.errors)
	}
}

func TestEditorPresenter_CompressAdoptsRenamedSession(t *testing.T) {
	client := &mockClient{
		uploadResp: imageResp("a.png", 64, 48),
		compressResp: api.CompressResponse{
			Success:     true,
			Preview:     previewURI(64, 48),
			Info:        &editor.Info{Width: 64, Height: 48, Format: "JPEG", SizeKB: 3.2},
			QualityUsed: 75,
			NewFilename: "a.jpg",
			Format:      "JPEG",
		},
	}
	p, view := newEditorFixture(t, client)
	p.OpenFile("x.png")
	drain(t, p, func() bool { return p.Model.Loaded() })

	p.RequestCompress(0, "jpeg", 500)
	drain(t, p, func() bool { return strings.Contains(view.status, "Compressed") })

	if len(client.compressReqs) != 1 || client.compressReqs[0].Quality != 85 {
		t.Fatalf("default quality not applied: %+v", client.compressReqs)
	}
	if p.Model.Filename() != "a.jpg" {
		t.Fatalf("session filename %q, want the renamed file", p.Model.Filename())
	}

	p.RequestDownload("/tmp/out.jpg")
	drain(t, p, func() bool { return len(client.downloads) == 1 })
	if client.downloads[0] != "a.jpg" {
		t.Fatalf("downloaded %q, want the renamed file", client.downloads[0])
	}
}

func TestEditorPresenter_ResetClearsSession(t *testing.T) {
	client := &mockClient{
		uploadResp: imageResp("a.png", 640, 480),
		resetResp:  api.ImageResponse{Success: true},
	}
	p, view := newEditorFixture(t, client)
	p.OpenFile("x.png")
	drain(t, p, func() bool { return p.Model.Loaded() })

	p.AdjustModel.Set(editor.Adjustments{Brightness: 2, Contrast: 1, Saturation: 1, Sharpness: 1})
	p.CropModel.SetRect(geometry.CropRect{X: 5, Y: 5, Width: 10, Height: 10})

	p.RequestReset()
	drain(t, p, func() bool { return view.cleared == 1 })

	if p.Model.Loaded() {
		t.Fatalf("session still open after reset")
	}
	if !p.AdjustModel.Values().IsIdentity() {
		t.Fatalf("adjustments not reset: %+v", p.AdjustModel.Values())
	}
}
