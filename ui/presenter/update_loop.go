package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It drains queued server results, fires due debounces, and invokes a
// scheduler callback. The zero value is usable (methods are nil-safe).
type Loop struct {
	Editor   *EditorPresenter
	Adjust   *AdjustPresenter
	Schedule func()
}

func NewLoop(editor *EditorPresenter, adjust *AdjustPresenter, schedule func()) *Loop {
	return &Loop{Editor: editor, Adjust: adjust, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	// Drain server responses first so a fired debounce sees fresh state.
	if l.Editor != nil {
		l.Editor.Tick()
	}
	if l.Adjust != nil {
		l.Adjust.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
