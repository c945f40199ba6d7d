package main

// Physical allowances in millimeters. The hardcover wrap folds around the
// board on the three non-spine edges; the spine-facing edge is bonded, not
// folded, so it gets no wrap. Bleed and overhang are trimmed or hidden after
// printing.
const (
	hardcoverWrapMm     = 19.05
	hardcoverOverhangMm = 3.175
	paperbackBleedMm    = 3.175

	// Spines narrower than this cannot carry legible text.
	minSpineTextMm = 6.0
)

// CoverGeometry is the derived, read-only layout of one wraparound cover
// sheet. The three horizontal zones (back panel, spine, front panel) run
// left to right with no gaps and no overlap.
type CoverGeometry struct {
	SheetWidthMm  float64
	SheetHeightMm float64

	// X origins of the trim-sized back panel, the spine, and the front panel.
	BackPanelX  float64
	SpineX      float64
	FrontPanelX float64

	PanelWidthMm  float64
	PanelHeightMm float64
	SpineWidthMm  float64

	// SpineText reports whether the spine is wide enough for text.
	SpineText bool
}

// FrontPanelCenterX is the horizontal center of the front panel.
func (g CoverGeometry) FrontPanelCenterX() float64 {
	return g.FrontPanelX + g.PanelWidthMm/2
}

// paperbackGeometry lays out a bleed-only cover: a uniform bleed on every
// outer edge and no per-panel wrap.
//
//	width  = 2*bleed + 2*trimWidth + spineWidth
//	height = trimHeight + 2*bleed
func paperbackGeometry(trim TrimSize, spineWidthMm float64) CoverGeometry {
	g := CoverGeometry{
		SheetWidthMm:  2*paperbackBleedMm + 2*trim.WidthMm + spineWidthMm,
		SheetHeightMm: trim.HeightMm + 2*paperbackBleedMm,
		BackPanelX:    paperbackBleedMm,
		PanelWidthMm:  trim.WidthMm,
		PanelHeightMm: trim.HeightMm,
		SpineWidthMm:  spineWidthMm,
		SpineText:     spineWidthMm >= minSpineTextMm,
	}
	g.SpineX = g.BackPanelX + trim.WidthMm
	g.FrontPanelX = g.SpineX + spineWidthMm
	return g
}

// hardcoverGeometry lays out a wrapped cover: each trim-sized panel extends
// by the wrap allowance on its three non-spine edges, and the whole sheet
// gains a uniform overhang on every outer edge.
//
//	width  = 2*(wrap + trimWidth) + spineWidth + 2*overhang
//	height = trimHeight + 2*wrap + 2*overhang
func hardcoverGeometry(trim TrimSize, spineWidthMm float64) CoverGeometry {
	g := CoverGeometry{
		SheetWidthMm:  2*(hardcoverWrapMm+trim.WidthMm) + spineWidthMm + 2*hardcoverOverhangMm,
		SheetHeightMm: trim.HeightMm + 2*hardcoverWrapMm + 2*hardcoverOverhangMm,
		BackPanelX:    hardcoverOverhangMm + hardcoverWrapMm,
		PanelWidthMm:  trim.WidthMm,
		PanelHeightMm: trim.HeightMm,
		SpineWidthMm:  spineWidthMm,
		SpineText:     spineWidthMm >= minSpineTextMm,
	}
	g.SpineX = g.BackPanelX + trim.WidthMm
	g.FrontPanelX = g.SpineX + spineWidthMm
	return g
}
