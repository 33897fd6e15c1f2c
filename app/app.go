package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	. "modernc.org/tk9.0"

	"github.com/mvail/pixpress/domain/editor"
	"github.com/mvail/pixpress/ui/theme"
	"github.com/mvail/pixpress/ui/view"
)

const (
	tick = 50 * time.Millisecond
)

type app struct {
	container *AppContainer
	afterID   string
}

func NewApp(title string, width, height int, c *AppContainer) *app {
	a := &app{container: c}

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

func (a *app) Start() {
	c := a.container

	// The processing server runs beside the UI for the whole session.
	go func() {
		if err := c.Server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			c.Logger.Error("api server failed", "err", err)
		}
	}()

	theme.InitStyles()
	c.RootView.Build(c.Editor, c.Crop, a.handlers())
	c.Loop.Schedule = a.scheduleUpdate

	// Kick off update loop.
	a.scheduleUpdate()

	App.Wait()
}

// handlers wires the view callbacks to the presenters. All of them run on
// Tk's event loop thread.
func (a *app) handlers() view.RootHandlers {
	c := a.container
	return view.RootHandlers{
		OnOpen: c.EditorPresenter.OpenFile,
		OnCropToggle: func() {
			if c.Crop.Active() {
				c.CropPresenter.ExitCropMode()
			} else {
				c.CropPresenter.EnterCropMode()
			}
		},
		OnResetImage: func() {
			c.AdjustPresenter.Cancel()
			c.CropPresenter.ExitCropMode()
			c.EditorPresenter.RequestReset()
			c.RootView.SetAdjustValues(editor.DefaultAdjustments())
		},
		OnExit:        a.exitHandler,
		OnPointerDown: c.CropPresenter.OnPointerDown,
		OnPointerMove: c.CropPresenter.OnPointerMove,
		OnPointerUp:   c.CropPresenter.OnPointerUp,
		Crop: view.CropHandlers{
			OnFieldEdit: c.CropPresenter.OnFieldEdit,
			OnPreset:    c.CropPresenter.OnPreset,
			OnApply:     c.CropPresenter.Apply,
		},
		Adjust: view.AdjustHandlers{
			OnEdit:  func(adj editor.Adjustments) { c.AdjustPresenter.OnEdit(adj, time.Now()) },
			OnReset: func() { c.AdjustPresenter.OnResetAll(time.Now()) },
		},
		Compress: view.CompressHandlers{
			OnCompress: c.EditorPresenter.RequestCompress,
			OnDownload: c.EditorPresenter.RequestDownload,
		},
	}
}

func (a *app) exitHandler() {
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := a.container.Server.Stop(ctx); err != nil {
		a.container.Logger.Error("api server shutdown", "err", err)
	}
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	// Schedule the next tick using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.container.Loop.Tick() })
}
