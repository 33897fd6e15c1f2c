package model

import (
	"image"

	"github.com/mvail/pixpress/domain/editor"
)

// EditorModel tracks the loaded image session: the server-side working
// filename, the latest preview pixels, and the latest file info. Zero value
// means nothing loaded and is usable.
// No synchronization needed: updates occur on the UI thread tick.
type EditorModel struct {
	filename string
	preview  image.Image
	info     editor.Info
}

func NewEditorModel() *EditorModel { return &EditorModel{} }

// Loaded reports whether an image session is open.
func (m *EditorModel) Loaded() bool {
	return m != nil && m.filename != ""
}

// Filename returns the server-side working filename ("" when nothing loaded).
func (m *EditorModel) Filename() string {
	if m == nil {
		return ""
	}
	return m.filename
}

// SetSession opens a session for a freshly uploaded image.
func (m *EditorModel) SetSession(filename string, preview image.Image, info editor.Info) {
	if m == nil {
		return
	}
	m.filename = filename
	m.preview = preview
	m.info = info
}

// UpdatePreview replaces the preview and info after a server round trip.
// Stale updates for another filename are dropped.
func (m *EditorModel) UpdatePreview(filename string, preview image.Image, info editor.Info) bool {
	if m == nil || filename != m.filename {
		return false
	}
	m.preview = preview
	m.info = info
	return true
}

// Preview returns the latest preview pixels (nil when nothing loaded).
func (m *EditorModel) Preview() image.Image {
	if m == nil {
		return nil
	}
	return m.preview
}

// Info returns the latest file info.
func (m *EditorModel) Info() editor.Info {
	if m == nil {
		return editor.Info{}
	}
	return m.info
}

// Clear closes the session.
func (m *EditorModel) Clear() {
	if m == nil {
		return
	}
	*m = EditorModel{}
}
