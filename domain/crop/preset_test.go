package crop

import (
	"testing"

	"github.com/mvail/pixpress/domain/geometry"
)

func TestPreset_LandscapeClampsToHeight(t *testing.T) {
	// 1000x500: full-width 16:9 would be 562 tall, so height pins at 500 and
	// width recomputes to 889, centered.
	b := geometry.ImageBounds{NaturalWidth: 1000, NaturalHeight: 500}
	got, ok := PresetLandscape.Apply(b)
	if !ok {
		t.Fatal("landscape should produce a rectangle")
	}
	want := geometry.CropRect{X: 55, Y: 0, Width: 889, Height: 500}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestPreset_LandscapeFitsWide(t *testing.T) {
	b := geometry.ImageBounds{NaturalWidth: 1600, NaturalHeight: 1200}
	got, _ := PresetLandscape.Apply(b)
	want := geometry.CropRect{X: 0, Y: 150, Width: 1600, Height: 900}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestPreset_Portrait(t *testing.T) {
	b := geometry.ImageBounds{NaturalWidth: 1000, NaturalHeight: 500}
	got, _ := PresetPortrait.Apply(b)
	want := geometry.CropRect{X: 359, Y: 0, Width: 281, Height: 500}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestPreset_PortraitClampsToWidth(t *testing.T) {
	// 300x2000: full-height 9:16 would need 1125px of width, so width pins
	// at 300 and height recomputes.
	b := geometry.ImageBounds{NaturalWidth: 300, NaturalHeight: 2000}
	got, _ := PresetPortrait.Apply(b)
	want := geometry.CropRect{X: 0, Y: 733, Width: 300, Height: 533}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestPreset_Square(t *testing.T) {
	b := geometry.ImageBounds{NaturalWidth: 1000, NaturalHeight: 500}
	got, _ := PresetSquare.Apply(b)
	want := geometry.CropRect{X: 250, Y: 0, Width: 500, Height: 500}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestPreset_Idempotent(t *testing.T) {
	b := geometry.ImageBounds{NaturalWidth: 1237, NaturalHeight: 843}
	for _, p := range []Preset{PresetLandscape, PresetPortrait, PresetSquare} {
		first, _ := p.Apply(b)
		second, _ := p.Apply(b)
		if first != second {
			t.Fatalf("%s not idempotent: %+v vs %+v", p, first, second)
		}
	}
}

func TestPreset_CustomIsUIStateOnly(t *testing.T) {
	if _, ok := PresetCustom.Apply(geometry.ImageBounds{NaturalWidth: 100, NaturalHeight: 100}); ok {
		t.Fatal("custom must not change geometry")
	}
}

func TestPreset_UnknownBoundsUseDefault(t *testing.T) {
	got, ok := PresetLandscape.Apply(geometry.ImageBounds{})
	if !ok {
		t.Fatal("expected a rectangle")
	}
	want := geometry.CropRect{X: 0, Y: 75, Width: 800, Height: 450}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("landscape"); !ok || p != PresetLandscape {
		t.Fatalf("parse landscape failed: %v %v", p, ok)
	}
	if _, ok := ParsePreset("panorama"); ok {
		t.Fatal("unknown tag should not parse")
	}
}
