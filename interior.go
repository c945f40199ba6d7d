package main

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// InteriorInfo is read once from the interior document at workflow start.
// Trim size and page count drive binding eligibility and cover geometry.
type InteriorInfo struct {
	Path      string
	PageCount int
	Trim      TrimSize
}

func inspectInterior(path string) (*InteriorInfo, error) {
	pages, err := api.PageCountFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read interior page count: %w", err)
	}
	if pages < 2 {
		return nil, fmt.Errorf("interior has %d page(s), a book needs at least 2", pages)
	}

	dims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read interior page size: %w", err)
	}
	if len(dims) == 0 {
		return nil, fmt.Errorf("interior reports no page dimensions")
	}

	return &InteriorInfo{
		Path:      path,
		PageCount: pages,
		Trim:      trimFromPoints(dims[0].Width, dims[0].Height),
	}, nil
}

// trimFromPoints converts a page size in PDF points to millimeters.
func trimFromPoints(widthPt, heightPt float64) TrimSize {
	return TrimSize{
		WidthMm:  widthPt * mmPerPt,
		HeightMm: heightPt * mmPerPt,
	}
}
