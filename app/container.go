package app

import (
	"log/slog"
	"time"

	"github.com/mvail/pixpress/api"
	"github.com/mvail/pixpress/config"
	"github.com/mvail/pixpress/domain/crop"
	"github.com/mvail/pixpress/ui/model"
	"github.com/mvail/pixpress/ui/presenter"
	"github.com/mvail/pixpress/ui/view"
)

// Container assembles the store, server, client, models, presenters and the
// root view.
type AppContainer struct {
	Config     *config.Config
	ConfigPath string
	Logger     *slog.Logger

	Store  *api.Store
	Server *api.Server
	Client *api.Client

	Editor *model.EditorModel
	Crop   *model.CropModel
	Adjust *model.AdjustModel

	RootView *view.RootView

	// Presenters
	EditorPresenter *presenter.EditorPresenter
	CropPresenter   *presenter.CropPresenter
	AdjustPresenter *presenter.AdjustPresenter
	Loop            *presenter.Loop
}

// BuildContainer constructs all components. Side-effects limited to creating
// the upload directory; the server is not started and the view is not built.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger) (*AppContainer, error) {
	c := &AppContainer{Config: cfg, ConfigPath: cfgPath, Logger: logger}

	store, err := api.NewStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}
	c.Store = store
	c.Server = api.NewServer(cfg.ListenAddr, store, cfg.MaxUploadMB, logger)
	c.Client = api.NewClient("http://" + cfg.ListenAddr)

	c.Editor = model.NewEditorModel()
	c.Crop = model.NewCropModel()
	c.Adjust = model.NewAdjustModel()

	// View
	c.RootView = view.NewRootView(logger)

	// Presenters. The root view doubles as the editor view, the crop view
	// and the pointer metrics provider.
	c.EditorPresenter = presenter.NewEditorPresenter(c.Client, c.Editor, c.Crop, c.Adjust,
		c.RootView, cfg, cfgPath, logger)
	c.CropPresenter = presenter.NewCropPresenter(c.Crop, crop.NewDragController(logger),
		c.RootView, c.RootView, c.EditorPresenter, logger)
	c.AdjustPresenter = presenter.NewAdjustPresenter(c.Adjust, c.EditorPresenter,
		time.Duration(cfg.DebounceMillis)*time.Millisecond)
	// Loop.Schedule is wired by the app wrapper once Tk owns ticking.
	c.Loop = presenter.NewLoop(c.EditorPresenter, c.AdjustPresenter, nil)
	return c, nil
}
