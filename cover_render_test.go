package main

import (
	"bytes"
	"testing"
)

func TestRenderCoverProducesPDF(t *testing.T) {
	trim := TrimSize{WidthMm: 152.4, HeightMm: 228.6}
	regular, bold, err := loadCoverFonts(DefaultConfig())
	if err != nil {
		t.Fatalf("loadCoverFonts: %v", err)
	}

	tests := []struct {
		name string
		geo  CoverGeometry
	}{
		{"hardcover with spine text", hardcoverGeometry(trim, 17.46)},
		{"paperback without spine text", paperbackGeometry(trim, 0)},
	}

	content := CoverContent{Title: "Field Notes", Subtitle: "A Year Outside", Author: "M. Herrera"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := renderCover(tt.geo, content, regular, bold)
			if err != nil {
				t.Fatalf("renderCover: %v", err)
			}
			if !bytes.HasPrefix(out, []byte("%PDF")) {
				t.Errorf("output does not start with %%PDF header")
			}
			if len(out) < 1000 {
				t.Errorf("suspiciously small cover document: %d bytes", len(out))
			}
		})
	}
}

func TestRenderCoverRequiresFont(t *testing.T) {
	geo := paperbackGeometry(TrimSize{WidthMm: 139.7, HeightMm: 215.9}, 8.73)
	if _, err := renderCover(geo, CoverContent{Title: "X"}, nil, nil); err == nil {
		t.Fatal("expected error when no font bytes are supplied")
	}
}

func TestRenderCoverBoldFallsBackToRegular(t *testing.T) {
	geo := paperbackGeometry(TrimSize{WidthMm: 139.7, HeightMm: 215.9}, 8.73)
	regular, _, err := loadCoverFonts(DefaultConfig())
	if err != nil {
		t.Fatalf("loadCoverFonts: %v", err)
	}

	out, err := renderCover(geo, CoverContent{Title: "X"}, regular, nil)
	if err != nil {
		t.Fatalf("renderCover without bold face: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header")
	}
}

func TestCoverContentAuthorPlaceholder(t *testing.T) {
	if got := (CoverContent{}).author(); got != "Anonymous" {
		t.Errorf("empty author = %q, want Anonymous", got)
	}
	if got := (CoverContent{Author: "J. Doe"}).author(); got != "J. Doe" {
		t.Errorf("author = %q, want J. Doe", got)
	}
}

func TestLoadCoverFontsCustomPathMustLoad(t *testing.T) {
	config := DefaultConfig()
	config.CoverFontPath = "/nonexistent/font.ttf"

	if _, _, err := loadCoverFonts(config); err == nil {
		t.Fatal("expected error for unreadable custom font path")
	}
}
