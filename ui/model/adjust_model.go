package model

import (
	"github.com/mvail/pixpress/domain/editor"
)

// AdjustModel holds the current enhancement factors. The zero value reads
// as identity; factors are clamped to the editor's accepted range on write.
// No synchronization needed: updates occur on the UI thread tick.
type AdjustModel struct {
	values editor.Adjustments
	set    bool
}

func NewAdjustModel() *AdjustModel { return &AdjustModel{} }

// Values returns the current factors, identity until something was set.
func (m *AdjustModel) Values() editor.Adjustments {
	if m == nil || !m.set {
		return editor.DefaultAdjustments()
	}
	return m.values
}

// Set stores clamped factors.
func (m *AdjustModel) Set(a editor.Adjustments) {
	if m == nil {
		return
	}
	m.values = a.Clamp()
	m.set = true
}

// Reset returns all factors to identity.
func (m *AdjustModel) Reset() {
	if m == nil {
		return
	}
	m.values = editor.DefaultAdjustments()
	m.set = true
}
