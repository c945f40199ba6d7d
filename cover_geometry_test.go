package main

import (
	"math"
	"testing"
)

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestHardcoverGeometry(t *testing.T) {
	// US Trade 6x9" trim with a 204-page case-wrap spine.
	trim := TrimSize{WidthMm: 152.4, HeightMm: 228.6}
	g := hardcoverGeometry(trim, 17.46)

	wantWidth := 2*(19.05+152.4) + 17.46 + 2*3.175
	wantHeight := 228.6 + 2*19.05 + 2*3.175

	if !closeTo(g.SheetWidthMm, wantWidth) {
		t.Errorf("SheetWidthMm = %.4f, want %.4f", g.SheetWidthMm, wantWidth)
	}
	if !closeTo(g.SheetHeightMm, wantHeight) {
		t.Errorf("SheetHeightMm = %.4f, want %.4f", g.SheetHeightMm, wantHeight)
	}
	if !closeTo(g.BackPanelX, 3.175+19.05) {
		t.Errorf("BackPanelX = %.4f, want %.4f", g.BackPanelX, 3.175+19.05)
	}
}

func TestPaperbackGeometry(t *testing.T) {
	// Digest 5.5x8.5" trim with a thin perfect-bound spine.
	trim := TrimSize{WidthMm: 139.7, HeightMm: 215.9}
	g := paperbackGeometry(trim, 8.73)

	wantWidth := 2*3.175 + 2*139.7 + 8.73
	wantHeight := 215.9 + 2*3.175

	if !closeTo(g.SheetWidthMm, wantWidth) {
		t.Errorf("SheetWidthMm = %.4f, want %.4f", g.SheetWidthMm, wantWidth)
	}
	if !closeTo(g.SheetHeightMm, wantHeight) {
		t.Errorf("SheetHeightMm = %.4f, want %.4f", g.SheetHeightMm, wantHeight)
	}
	if !closeTo(g.BackPanelX, 3.175) {
		t.Errorf("BackPanelX = %.4f, want 3.175", g.BackPanelX)
	}
}

func TestGeometryZonesContiguous(t *testing.T) {
	trim := TrimSize{WidthMm: 152.4, HeightMm: 228.6}

	for _, g := range []CoverGeometry{
		paperbackGeometry(trim, 12.7),
		hardcoverGeometry(trim, 12.7),
	} {
		if !closeTo(g.SpineX, g.BackPanelX+g.PanelWidthMm) {
			t.Errorf("SpineX = %.4f, want back panel end %.4f", g.SpineX, g.BackPanelX+g.PanelWidthMm)
		}
		if !closeTo(g.FrontPanelX, g.SpineX+g.SpineWidthMm) {
			t.Errorf("FrontPanelX = %.4f, want spine end %.4f", g.FrontPanelX, g.SpineX+g.SpineWidthMm)
		}
		if g.FrontPanelX+g.PanelWidthMm >= g.SheetWidthMm {
			t.Errorf("front panel ends at %.4f, past or at sheet edge %.4f",
				g.FrontPanelX+g.PanelWidthMm, g.SheetWidthMm)
		}
	}
}

func TestGeometryDeterministic(t *testing.T) {
	trim := TrimSize{WidthMm: 152.4, HeightMm: 228.6}
	a := hardcoverGeometry(trim, 14.29)
	b := hardcoverGeometry(trim, 14.29)
	if a != b {
		t.Errorf("same inputs produced different geometry: %+v vs %+v", a, b)
	}
}

func TestSpineTextThreshold(t *testing.T) {
	trim := TrimSize{WidthMm: 139.7, HeightMm: 215.9}

	tests := []struct {
		spine float64
		want  bool
	}{
		{0, false},
		{5.9, false},
		{6.0, true},
		{28.58, true},
	}
	for _, tt := range tests {
		g := paperbackGeometry(trim, tt.spine)
		if g.SpineText != tt.want {
			t.Errorf("spine %.2f mm: SpineText = %v, want %v", tt.spine, g.SpineText, tt.want)
		}
	}
}

func TestFrontPanelCenterX(t *testing.T) {
	trim := TrimSize{WidthMm: 139.7, HeightMm: 215.9}
	g := paperbackGeometry(trim, 8.73)

	want := g.FrontPanelX + trim.WidthMm/2
	if !closeTo(g.FrontPanelCenterX(), want) {
		t.Errorf("FrontPanelCenterX = %.4f, want %.4f", g.FrontPanelCenterX(), want)
	}
}
