package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// CoverContent is the text placed on the cover. All fields are plain text.
type CoverContent struct {
	Title    string
	Subtitle string
	Author   string
}

const defaultAuthor = "Anonymous"

func (c CoverContent) author() string {
	if c.Author == "" {
		return defaultAuthor
	}
	return c.Author
}

const mmPerPt = 25.4 / 72.0

// loadCoverFonts returns the regular and bold cover typefaces. When a custom
// font is configured it must load, since substituting a different face behind
// the user's back would change the cover; the bundled Go faces are the
// default and are always embeddable.
func loadCoverFonts(config *Config) (regular, bold []byte, err error) {
	if config.CoverFontPath != "" {
		regular, err = os.ReadFile(config.CoverFontPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read cover font: %w", err)
		}
	} else {
		regular = goregular.TTF
	}

	if config.CoverFontBoldPath != "" {
		bold, err = os.ReadFile(config.CoverFontBoldPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read bold cover font: %w", err)
		}
	} else if config.CoverFontPath != "" {
		bold = regular
	} else {
		bold = gobold.TTF
	}

	return regular, bold, nil
}

// renderCover paints the wraparound cover described by geometry into a PDF
// sized exactly to the sheet. fontTTF must be a parseable TrueType font and
// is embedded in full: the downstream print pipeline rejects covers whose
// fonts are merely referenced, so there is no non-embedded fallback.
func renderCover(geo CoverGeometry, content CoverContent, fontTTF, fontBoldTTF []byte) ([]byte, error) {
	if len(fontTTF) == 0 {
		return nil, fmt.Errorf("no embeddable cover font available")
	}
	if len(fontBoldTTF) == 0 {
		fontBoldTTF = fontTTF
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: geo.SheetWidthMm, Ht: geo.SheetHeightMm},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	pdf.AddUTF8FontFromBytes("cover", "", fontTTF)
	pdf.AddUTF8FontFromBytes("cover", "B", fontBoldTTF)
	if pdf.Err() {
		return nil, fmt.Errorf("failed to embed cover font: %w", pdf.Error())
	}

	pdf.AddPage()

	// Solid background across the whole sheet, bleed and wrap included.
	pdf.SetFillColor(31, 42, 68)
	pdf.Rect(0, 0, geo.SheetWidthMm, geo.SheetHeightMm, "F")
	pdf.SetTextColor(240, 236, 226)

	panelTop := geo.SheetHeightMm/2 - geo.PanelHeightMm/2

	// Title, subtitle, and author are centered within the front panel only so
	// nothing crosses the spine fold or the cut lines.
	frontLine := func(text, style string, sizePt, y float64) {
		pdf.SetFont("cover", style, sizePt)
		pdf.SetXY(geo.FrontPanelX, y)
		pdf.CellFormat(geo.PanelWidthMm, sizePt*mmPerPt*1.2, text, "", 0, "C", false, 0, "")
	}

	frontLine(content.Title, "B", 32, panelTop+geo.PanelHeightMm*0.26)
	if content.Subtitle != "" {
		frontLine(content.Subtitle, "", 18, panelTop+geo.PanelHeightMm*0.38)
	}
	frontLine(content.author(), "", 16, panelTop+geo.PanelHeightMm*0.72)

	if geo.SpineText {
		drawSpineText(pdf, geo, content)
	}

	if pdf.Err() {
		return nil, fmt.Errorf("cover rendering failed: %w", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write cover document: %w", err)
	}
	return buf.Bytes(), nil
}

// drawSpineText rotates the title/author line 90 degrees and centers it in
// the spine zone both ways.
func drawSpineText(pdf *fpdf.Fpdf, geo CoverGeometry, content CoverContent) {
	label := content.Title
	if a := content.author(); a != "" {
		label = label + "   " + a
	}

	// Cap the size so the glyph height stays inside the spine.
	sizePt := geo.SpineWidthMm * 0.55 / mmPerPt
	if sizePt > 14 {
		sizePt = 14
	}
	pdf.SetFont("cover", "", sizePt)

	cx := geo.SpineX + geo.SpineWidthMm/2
	cy := geo.SheetHeightMm / 2
	width := pdf.GetStringWidth(label)

	pdf.TransformBegin()
	pdf.TransformRotate(-90, cx, cy)
	// Rotated glyphs hang above the mathematical center line; nudging the
	// baseline down makes the label read optically centered.
	baseline := sizePt * mmPerPt * 0.35
	pdf.Text(cx-width/2, cy+baseline, label)
	pdf.TransformEnd()
}
