package main

import (
	"errors"
	"fmt"
)

// SpineEntry maps a closed page-count range to a spine width. The entries for
// a binding family are sorted ascending and tile the family's supported range
// with no gaps, so every valid page count matches exactly one entry.
type SpineEntry struct {
	MinPages int
	MaxPages int
	WidthMm  float64
}

var errSpineRange = errors.New("page count outside supported range")

// lookupSpine scans for the entry containing pages. A miss is a loud failure,
// never a zero-width default: the caller treats it as an invalid combination
// of binding and page count.
func lookupSpine(binding string, entries []SpineEntry, pages int) (float64, error) {
	for _, e := range entries {
		if pages >= e.MinPages && pages <= e.MaxPages {
			return e.WidthMm, nil
		}
	}
	return 0, fmt.Errorf("%w: %d pages for %s", errSpineRange, pages, binding)
}

// A folded saddle-stitch booklet has no measurable spine.
var saddleStitchSpine = []SpineEntry{
	{4, 48, 0},
}

var perfectBoundSpine = []SpineEntry{
	{32, 101, 6.35},
	{102, 140, 8.73},
	{141, 168, 10.32},
	{169, 203, 11.91},
	{204, 244, 14.29},
	{245, 285, 16.67},
	{286, 326, 19.05},
	{327, 380, 22.23},
	{381, 431, 25.4},
	{432, 800, 28.58},
}

// Hardcover spines include the board thickness on top of the page block.
var caseWrapSpine = []SpineEntry{
	{24, 84, 6.35},
	{85, 140, 12.7},
	{141, 168, 14.29},
	{169, 203, 15.88},
	{204, 244, 17.46},
	{245, 285, 19.05},
	{286, 326, 20.64},
	{327, 380, 22.23},
	{381, 431, 23.81},
	{432, 485, 25.4},
	{486, 800, 28.58},
}

var linenWrapSpine = []SpineEntry{
	{24, 84, 7.94},
	{85, 140, 14.29},
	{141, 168, 15.88},
	{169, 203, 17.46},
	{204, 244, 19.05},
	{245, 285, 20.64},
	{286, 326, 22.23},
	{327, 380, 23.81},
	{381, 431, 25.4},
	{432, 485, 26.99},
	{486, 800, 30.16},
}

// Coil spines step with the coil diameter, not the page block alone.
var coilBoundSpine = []SpineEntry{
	{3, 48, 6.35},
	{49, 90, 7.94},
	{91, 130, 9.53},
	{131, 180, 11.11},
	{181, 230, 12.7},
	{231, 280, 14.29},
	{281, 330, 15.88},
	{331, 470, 19.05},
}
