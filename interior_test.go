package main

import (
	"math"
	"testing"
)

func TestTrimFromPoints(t *testing.T) {
	tests := []struct {
		name       string
		widthPt    float64
		heightPt   float64
		wantWidth  float64
		wantHeight float64
	}{
		{"US Letter", 612, 792, 215.9, 279.4},
		{"US Trade 6x9", 432, 648, 152.4, 228.6},
		{"A5", 419.53, 595.28, 148.0, 210.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := trimFromPoints(tt.widthPt, tt.heightPt)
			if math.Abs(got.WidthMm-tt.wantWidth) > 0.01 {
				t.Errorf("WidthMm = %.3f, want %.3f", got.WidthMm, tt.wantWidth)
			}
			if math.Abs(got.HeightMm-tt.wantHeight) > 0.01 {
				t.Errorf("HeightMm = %.3f, want %.3f", got.HeightMm, tt.wantHeight)
			}
		})
	}
}

func TestInspectInteriorMissingFile(t *testing.T) {
	if _, err := inspectInterior("/nonexistent/book.pdf"); err == nil {
		t.Fatal("expected error for a missing interior document")
	}
}
