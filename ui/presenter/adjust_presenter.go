package presenter

import (
	"time"

	"github.com/mvail/pixpress/domain/editor"
	"github.com/mvail/pixpress/ui/model"
)

// AdjustDispatcher sends the full adjustment set to the server.
type AdjustDispatcher interface {
	RequestAdjust(editor.Adjustments)
}

// AdjustPresenter debounces slider edits so a burst of changes becomes one
// server request carrying the final values. Field edits land in the model
// immediately; the dispatch waits out the quiet window.
type AdjustPresenter struct {
	Model    *model.AdjustModel
	Dispatch AdjustDispatcher
	debounce *Debouncer
}

func NewAdjustPresenter(m *model.AdjustModel, dispatch AdjustDispatcher, delay time.Duration) *AdjustPresenter {
	return &AdjustPresenter{Model: m, Dispatch: dispatch, debounce: NewDebouncer(delay)}
}

// OnEdit records new factors and restarts the quiet window.
func (p *AdjustPresenter) OnEdit(a editor.Adjustments, now time.Time) {
	if p == nil || p.Model == nil {
		return
	}
	p.Model.Set(a)
	p.debounce.Trigger(now)
}

// OnResetAll returns every factor to identity and schedules a dispatch.
func (p *AdjustPresenter) OnResetAll(now time.Time) {
	if p == nil || p.Model == nil {
		return
	}
	p.Model.Reset()
	p.debounce.Trigger(now)
}

// Cancel drops any pending dispatch. Called when the session closes.
func (p *AdjustPresenter) Cancel() {
	if p == nil {
		return
	}
	p.debounce.Cancel()
}

// Tick fires the pending dispatch once the quiet window has elapsed.
func (p *AdjustPresenter) Tick(now time.Time) {
	if p == nil || p.Dispatch == nil {
		return
	}
	if p.debounce.Fire(now) {
		p.Dispatch.RequestAdjust(p.Model.Values())
	}
}
