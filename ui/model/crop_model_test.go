package model

import (
	"testing"

	"github.com/mvail/pixpress/domain/editor"
	"github.com/mvail/pixpress/domain/geometry"
)

func TestCropModel_PlaceholderBeforeBounds(t *testing.T) {
	m := NewCropModel()
	got := m.Rect()
	want := geometry.CropRect{X: 0, Y: 0, Width: 100, Height: 100}
	if got != want {
		t.Fatalf("got %+v, want placeholder %+v", got, want)
	}
}

func TestCropModel_FirstBoundsSelectsFullImage(t *testing.T) {
	m := NewCropModel()
	m.SetBounds(geometry.ImageBounds{NaturalWidth: 640, NaturalHeight: 480})
	got := m.Rect()
	want := geometry.CropRect{X: 0, Y: 0, Width: 640, Height: 480}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestCropModel_NewBoundsClampExistingRect(t *testing.T) {
	m := NewCropModel()
	m.SetBounds(geometry.ImageBounds{NaturalWidth: 640, NaturalHeight: 480})
	m.SetRect(geometry.CropRect{X: 500, Y: 400, Width: 100, Height: 50})

	// A crop shrank the image; the rect must follow the new bounds.
	m.SetBounds(geometry.ImageBounds{NaturalWidth: 550, NaturalHeight: 420})
	got := m.Rect()
	if got.X+got.Width > 550 || got.Y+got.Height > 420 {
		t.Fatalf("rect %+v escapes 550x420 bounds", got)
	}
}

func TestCropModel_SetRectClampsToBounds(t *testing.T) {
	m := NewCropModel()
	m.SetBounds(geometry.ImageBounds{NaturalWidth: 200, NaturalHeight: 200})
	m.SetRect(geometry.CropRect{X: -10, Y: 150, Width: 100, Height: 100})
	got := m.Rect()
	want := geometry.CropRect{X: 0, Y: 150, Width: 100, Height: 50}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestCropModel_ActiveAndReset(t *testing.T) {
	m := NewCropModel()
	m.SetActive(true)
	if !m.Active() {
		t.Fatalf("expected active")
	}
	m.SetBounds(geometry.ImageBounds{NaturalWidth: 10, NaturalHeight: 10})
	m.Reset()
	if m.Active() || m.Bounds().Known() {
		t.Fatalf("reset did not clear state")
	}
	if m.Rect() != (geometry.CropRect{X: 0, Y: 0, Width: 100, Height: 100}) {
		t.Fatalf("reset did not restore placeholder")
	}
}

func TestCropModel_NilSafe(t *testing.T) {
	var m *CropModel
	m.SetActive(true)
	m.SetBounds(geometry.ImageBounds{NaturalWidth: 10, NaturalHeight: 10})
	m.SetRect(geometry.CropRect{})
	if m.Active() {
		t.Fatalf("nil model reported active")
	}
}

func TestAdjustModel_DefaultsToIdentity(t *testing.T) {
	m := NewAdjustModel()
	if got := m.Values(); !got.IsIdentity() {
		t.Fatalf("got %+v, want identity", got)
	}
}

func TestAdjustModel_SetClampsAndResets(t *testing.T) {
	m := NewAdjustModel()
	m.Set(editor.Adjustments{Brightness: 9, Contrast: 1.2, Saturation: -3, Sharpness: 1})
	got := m.Values()
	if got.Brightness != 5 || got.Saturation != 0 || got.Contrast != 1.2 {
		t.Fatalf("got %+v, want clamped values", got)
	}
	m.Reset()
	if !m.Values().IsIdentity() {
		t.Fatalf("reset did not restore identity")
	}
}

func TestEditorModel_SessionLifecycle(t *testing.T) {
	m := NewEditorModel()
	if m.Loaded() {
		t.Fatalf("zero value reported loaded")
	}
	m.SetSession("a.png", nil, editor.Info{Width: 10, Height: 20})
	if !m.Loaded() || m.Filename() != "a.png" {
		t.Fatalf("session not opened")
	}

	if ok := m.UpdatePreview("b.png", nil, editor.Info{}); ok {
		t.Fatalf("stale update for another filename was accepted")
	}
	if ok := m.UpdatePreview("a.png", nil, editor.Info{Width: 5, Height: 5}); !ok {
		t.Fatalf("update for current filename was dropped")
	}
	if m.Info().Width != 5 {
		t.Fatalf("info not updated: %+v", m.Info())
	}

	m.Clear()
	if m.Loaded() {
		t.Fatalf("clear did not close session")
	}
}
