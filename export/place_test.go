package export

import (
	"errors"
	"math"
	"testing"

	"github.com/robdobsn/WordClockGrace/font"
	"github.com/robdobsn/WordClockGrace/outline"
)

// brokenSource loads no real faces, so every Load yields the synthetic
// fallback face with its exactly known box.
func brokenSource() *font.Source {
	return &font.Source{
		Fetch: func(string) ([]byte, error) {
			return nil, errors.New("unavailable")
		},
	}
}

func placedBounds(t *testing.T, p Placement, path outline.Path) (minX, minY, maxX, maxY float64) {
	t.Helper()
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, c := range outline.Flatten(path) {
		for _, pt := range c {
			x := (pt.X + p.OffsetX) * p.Stretch
			y := pt.Y + p.OffsetY
			minX, minY = math.Min(minX, x), math.Min(minY, y)
			maxX, maxY = math.Max(maxX, x), math.Max(maxY, y)
		}
	}
	if minX > maxX {
		t.Fatal("no placed points")
	}
	return minX, minY, maxX, maxY
}

func TestPlaceGlyphFitSynthetic(t *testing.T) {
	face := brokenSource().Load("anything")
	spec := CellSpec{Width: 20, Height: 20, Padding: 0.1, Stretch: 1}
	p, path, ok := PlaceGlyph(face, 'A', spec)
	if !ok {
		t.Fatal("PlaceGlyph failed")
	}
	b := outline.Bounds(outline.Flatten(path))
	target := 16.0
	if math.Abs(b.Dy()-target) > 1e-9 {
		t.Errorf("fitted height = %g, want %g", b.Dy(), target)
	}
	if p.Size <= 0 {
		t.Errorf("fitted size = %g, want > 0", p.Size)
	}
}

func TestPlaceGlyphFitReal(t *testing.T) {
	var src font.Source
	face := src.Load("go-regular")
	spec := CellSpec{Width: 20, Height: 20, Padding: 0.1, Stretch: 1}
	_, path, ok := PlaceGlyph(face, 'A', spec)
	if !ok {
		t.Fatal("PlaceGlyph failed")
	}
	b := outline.Bounds(outline.Flatten(path))
	target := 16.0
	if rel := math.Abs(b.Dy()-target) / target; rel > 0.005 {
		t.Errorf("fitted height = %g, want %g within 0.5%%", b.Dy(), target)
	}
}

func TestPlaceGlyphCenter(t *testing.T) {
	var src font.Source
	face := src.Load("go-regular")
	for _, stretch := range []float64{0.5, 1.0, 1.55, 2.0} {
		for _, ch := range []rune{'A', 'W'} {
			spec := CellSpec{
				Width: 30, Height: 20, Padding: 0.1,
				Stretch:         stretch,
				StretchOverride: DefaultStretchOverride(),
				Center:          true,
			}
			p, path, ok := PlaceGlyph(face, ch, spec)
			if !ok {
				t.Fatalf("PlaceGlyph(%q) failed", ch)
			}
			minX, _, maxX, _ := placedBounds(t, p, path)
			mid := (minX + maxX) / 2
			if math.Abs(mid-spec.Width/2) > 1e-9 {
				t.Errorf("stretch %g %q: placed midpoint = %g, want %g",
					stretch, ch, mid, spec.Width/2)
			}
		}
	}
}

func TestPlaceGlyphLeftAlign(t *testing.T) {
	var src font.Source
	face := src.Load("go-regular")
	spec := CellSpec{Width: 20, Height: 20, Padding: 0.1, Stretch: 1.3}
	p, path, ok := PlaceGlyph(face, 'A', spec)
	if !ok {
		t.Fatal("PlaceGlyph failed")
	}
	minX, _, _, _ := placedBounds(t, p, path)
	if math.Abs(minX) > 1e-9 {
		t.Errorf("placed left edge = %g, want 0", minX)
	}
}

func TestPlaceGlyphVerticalCenter(t *testing.T) {
	var src font.Source
	face := src.Load("go-regular")
	spec := CellSpec{Width: 20, Height: 20, Padding: 0.1, Stretch: 1, Center: true}
	p, path, ok := PlaceGlyph(face, 'A', spec)
	if !ok {
		t.Fatal("PlaceGlyph failed")
	}
	_, minY, _, maxY := placedBounds(t, p, path)
	mid := (minY + maxY) / 2
	if math.Abs(mid-spec.Height/2) > 1e-9 {
		t.Errorf("placed vertical midpoint = %g, want %g", mid, spec.Height/2)
	}
}

func TestPlaceGlyphMissing(t *testing.T) {
	var src font.Source
	face := src.Load("go-regular")
	spec := CellSpec{Width: 20, Height: 20, Stretch: 1}
	if _, _, ok := PlaceGlyph(face, '͸', spec); ok {
		t.Error("PlaceGlyph succeeded for an unmapped rune")
	}
	if _, _, ok := PlaceGlyph(face, ' ', spec); ok {
		t.Error("PlaceGlyph succeeded for a blank glyph")
	}
}

func TestPlaceGlyphDegenerate(t *testing.T) {
	var src font.Source
	face := src.Load("go-regular")
	cases := []struct {
		name string
		spec CellSpec
	}{
		{"zero height", CellSpec{Width: 20, Stretch: 1}},
		{"padding eats cell", CellSpec{Width: 20, Height: 20, Padding: 0.5, Stretch: 1}},
		{"zero stretch", CellSpec{Width: 20, Height: 20}},
	}
	for _, c := range cases {
		if _, _, ok := PlaceGlyph(face, 'A', c.spec); ok {
			t.Errorf("%s: PlaceGlyph succeeded", c.name)
		}
	}
}

func TestEffectiveStretch(t *testing.T) {
	spec := CellSpec{Stretch: 2, StretchOverride: DefaultStretchOverride()}
	if got := spec.EffectiveStretch('A'); got != 2 {
		t.Errorf("EffectiveStretch('A') = %g, want 2", got)
	}
	if got := spec.EffectiveStretch('W'); got != 1.4 {
		t.Errorf("EffectiveStretch('W') = %g, want 1.4", got)
	}
	if got := spec.EffectiveStretch('w'); got != 1.4 {
		t.Errorf("EffectiveStretch('w') = %g, want 1.4", got)
	}
}
