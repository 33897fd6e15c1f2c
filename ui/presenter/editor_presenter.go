package presenter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mvail/pixpress/api"
	"github.com/mvail/pixpress/config"
	"github.com/mvail/pixpress/domain/editor"
	"github.com/mvail/pixpress/domain/geometry"
	"github.com/mvail/pixpress/ui/images"
	"github.com/mvail/pixpress/ui/model"
)

// EditorClient narrows the API client surface used by the presenters.
type EditorClient interface {
	Upload(ctx context.Context, path string) (api.ImageResponse, error)
	Adjust(ctx context.Context, r api.AdjustRequest) (api.ImageResponse, error)
	Crop(ctx context.Context, r api.CropRequest) (api.ImageResponse, error)
	Compress(ctx context.Context, r api.CompressRequest) (api.CompressResponse, error)
	Reset(ctx context.Context, filename string) (api.ImageResponse, error)
	Download(ctx context.Context, filename, destPath string) error
}

// EditorView describes the UI surface updated after server round trips.
type EditorView interface {
	ShowPreview()
	ShowInfo(info editor.Info)
	ShowCleared()
	SetStatus(text string)
	ShowError(msg string)
}

type editorOp int

const (
	opUpload editorOp = iota + 1
	opAdjust
	opCrop
	opCompress
	opReset
	opDownload
)

type editorResult struct {
	op       editorOp
	filename string
	rect     geometry.CropRect
	resp     api.ImageResponse
	compress api.CompressResponse
	dest     string
	err      error
}

// EditorPresenter owns every server round trip: upload, adjust, crop,
// compress, reset, download. Requests run on worker goroutines; results are
// queued and applied to models and view on the UI thread tick, so stale
// responses for a closed session are dropped by filename.
type EditorPresenter struct {
	Client      EditorClient
	Model       *model.EditorModel
	CropModel   *model.CropModel
	AdjustModel *model.AdjustModel
	View        EditorView
	Config      *config.Config
	ConfigPath  string
	logger      *slog.Logger

	resultCh chan editorResult
}

func NewEditorPresenter(client EditorClient, m *model.EditorModel, cropM *model.CropModel, adjustM *model.AdjustModel, view EditorView, cfg *config.Config, configPath string, logger *slog.Logger) *EditorPresenter {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &EditorPresenter{
		Client:      client,
		Model:       m,
		CropModel:   cropM,
		AdjustModel: adjustM,
		View:        view,
		Config:      cfg,
		ConfigPath:  configPath,
		logger:      logger,
		resultCh:    make(chan editorResult, 8),
	}
}

// OpenFile uploads a local file and opens an editing session for it.
func (p *EditorPresenter) OpenFile(path string) {
	if p == nil || p.Client == nil {
		return
	}
	p.View.SetStatus("Uploading...")
	go func() {
		resp, err := p.Client.Upload(context.Background(), path)
		p.resultCh <- editorResult{op: opUpload, resp: resp, err: err}
	}()
}

// RequestAdjust sends the full adjustment set for the loaded image.
func (p *EditorPresenter) RequestAdjust(a editor.Adjustments) {
	filename := p.sessionFilename()
	if filename == "" {
		return
	}
	req := api.AdjustRequest{
		Filename:   filename,
		Brightness: a.Brightness,
		Contrast:   a.Contrast,
		Saturation: a.Saturation,
		Sharpness:  a.Sharpness,
	}
	go func() {
		resp, err := p.Client.Adjust(context.Background(), req)
		p.resultCh <- editorResult{op: opAdjust, filename: filename, resp: resp, err: err}
	}()
}

// RequestCrop applies a rectangle in natural image pixels.
func (p *EditorPresenter) RequestCrop(r geometry.CropRect) {
	filename := p.sessionFilename()
	if filename == "" || r.Width < 1 || r.Height < 1 {
		return
	}
	req := api.CropRequest{Filename: filename, X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
	go func() {
		resp, err := p.Client.Crop(context.Background(), req)
		p.resultCh <- editorResult{op: opCrop, filename: filename, rect: r, resp: resp, err: err}
	}()
}

// RequestCompress re-encodes the working image.
func (p *EditorPresenter) RequestCompress(quality int, format string, maxSizeKB int) {
	filename := p.sessionFilename()
	if filename == "" {
		return
	}
	if quality < 1 {
		quality = p.Config.DefaultQuality
	}
	req := api.CompressRequest{Filename: filename, Quality: quality, OutputFormat: format, MaxSizeKB: maxSizeKB}
	p.View.SetStatus("Compressing...")
	go func() {
		resp, err := p.Client.Compress(context.Background(), req)
		p.resultCh <- editorResult{op: opCompress, filename: filename, compress: resp, err: err}
	}()
}

// RequestReset discards the server-side session files.
func (p *EditorPresenter) RequestReset() {
	filename := p.sessionFilename()
	if filename == "" {
		return
	}
	go func() {
		resp, err := p.Client.Reset(context.Background(), filename)
		p.resultCh <- editorResult{op: opReset, filename: filename, resp: resp, err: err}
	}()
}

// RequestDownload saves the working copy to a local path.
func (p *EditorPresenter) RequestDownload(destPath string) {
	filename := p.sessionFilename()
	if filename == "" {
		return
	}
	go func() {
		err := p.Client.Download(context.Background(), filename, destPath)
		p.resultCh <- editorResult{op: opDownload, filename: filename, dest: destPath, err: err}
	}()
}

// Tick drains queued results on the UI thread.
func (p *EditorPresenter) Tick() {
	if p == nil {
		return
	}
	for {
		select {
		case res := <-p.resultCh:
			p.handleResult(res)
		default:
			return
		}
	}
}

func (p *EditorPresenter) sessionFilename() string {
	if p == nil || p.Client == nil || p.Model == nil {
		return ""
	}
	return p.Model.Filename()
}

func (p *EditorPresenter) handleResult(res editorResult) {
	if res.err != nil {
		if p.logger != nil {
			p.logger.Error("editor request failed", "op", int(res.op), "error", res.err)
		}
		p.View.ShowError(res.err.Error())
		return
	}

	switch res.op {
	case opUpload:
		p.openSession(res.resp)
	case opAdjust, opCrop:
		if res.filename != p.Model.Filename() {
			return
		}
		preview, err := images.DecodeDataURI(res.resp.Preview)
		if err != nil {
			p.View.ShowError("preview decode failed")
			return
		}
		info := editor.Info{}
		if res.resp.Info != nil {
			info = *res.resp.Info
		}
		p.Model.UpdatePreview(res.filename, preview, info)
		p.CropModel.SetBounds(geometry.ImageBounds{NaturalWidth: info.Width, NaturalHeight: info.Height})
		if res.op == opCrop {
			p.persistCropRect(res.rect)
			p.View.SetStatus(fmt.Sprintf("Cropped to %dx%d", info.Width, info.Height))
		} else {
			p.View.SetStatus("Adjustments applied")
		}
		p.View.ShowPreview()
		p.View.ShowInfo(info)
	case opReset:
		if res.filename != p.Model.Filename() {
			return
		}
		p.Model.Clear()
		p.AdjustModel.Reset()
		p.CropModel.Reset()
		p.View.ShowCleared()
		p.View.SetStatus("No image loaded")
	case opCompress:
		if res.filename != p.Model.Filename() {
			return
		}
		preview, err := images.DecodeDataURI(res.compress.Preview)
		if err != nil {
			p.View.ShowError("preview decode failed")
			return
		}
		info := editor.Info{}
		if res.compress.Info != nil {
			info = *res.compress.Info
		}
		// The server renames the session on a format change.
		p.Model.SetSession(res.compress.NewFilename, preview, info)
		p.View.ShowPreview()
		p.View.ShowInfo(info)
		p.View.SetStatus(fmt.Sprintf("Compressed to %s at quality %d (%.1f KB)",
			res.compress.Format, res.compress.QualityUsed, info.SizeKB))
	case opDownload:
		p.View.SetStatus("Saved " + res.dest)
	}
}

// openSession installs a fresh upload into the models and restores the
// persisted crop rectangle when it still fits the new image.
func (p *EditorPresenter) openSession(resp api.ImageResponse) {
	preview, err := images.DecodeDataURI(resp.Preview)
	if err != nil {
		p.View.ShowError("preview decode failed")
		return
	}
	info := editor.Info{}
	if resp.Info != nil {
		info = *resp.Info
	}
	p.Model.SetSession(resp.Filename, preview, info)
	p.AdjustModel.Reset()
	p.CropModel.Reset()
	bounds := geometry.ImageBounds{NaturalWidth: info.Width, NaturalHeight: info.Height}
	p.CropModel.SetBounds(bounds)

	if p.Config.CropW > 0 && p.Config.CropH > 0 &&
		p.Config.CropX+p.Config.CropW <= bounds.NaturalWidth &&
		p.Config.CropY+p.Config.CropH <= bounds.NaturalHeight {
		p.CropModel.SetRect(geometry.CropRect{
			X: p.Config.CropX, Y: p.Config.CropY,
			Width: p.Config.CropW, Height: p.Config.CropH,
		})
	}

	p.View.ShowPreview()
	p.View.ShowInfo(info)
	p.View.SetStatus(fmt.Sprintf("Loaded %s (%s)", resp.Filename, editor.SizeLabel(int64(info.SizeKB*1024))))
}

func (p *EditorPresenter) persistCropRect(r geometry.CropRect) {
	p.Config.CropX = r.X
	p.Config.CropY = r.Y
	p.Config.CropW = r.Width
	p.Config.CropH = r.Height
	if p.ConfigPath == "" {
		return
	}
	if err := p.Config.Save(p.ConfigPath); err != nil && p.logger != nil {
		p.logger.Error("persist config", "error", err)
	}
}
