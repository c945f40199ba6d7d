package main

import "testing"

func TestBindingForPageCount(t *testing.T) {
	tests := []struct {
		name      string
		pages     int
		threshold int
		want      string
	}{
		{"at threshold stays booklet", 23, 23, "saddle-stitch paperback"},
		{"above threshold becomes hardcover", 24, 23, "case-wrap hardcover"},
		{"well above threshold", 400, 23, "case-wrap hardcover"},
		{"tiny booklet", 4, 23, "saddle-stitch paperback"},
		{"custom threshold respected", 50, 100, "saddle-stitch paperback"},
		{"custom threshold crossed", 101, 100, "case-wrap hardcover"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bindingForPageCount(tt.pages, tt.threshold)
			if got.Name() != tt.want {
				t.Errorf("bindingForPageCount(%d, %d) = %q, want %q",
					tt.pages, tt.threshold, got.Name(), tt.want)
			}
		})
	}
}

func TestBindingNamesMatchSelectorKeys(t *testing.T) {
	config := DefaultConfig()
	bindings := []Binding{saddleStitch{}, perfectBound{}, caseWrap{}, linenWrap{}, coilBound{}}

	for _, b := range bindings {
		if _, ok := config.Selectors.BindingChoice[b.Name()]; !ok {
			t.Errorf("default config has no binding_choice selectors for %q", b.Name())
		}
	}
}

func TestBindingGeometryDispatch(t *testing.T) {
	trim := TrimSize{WidthMm: 152.4, HeightMm: 228.6}

	paper := perfectBound{}.Geometry(trim, 10)
	hard := caseWrap{}.Geometry(trim, 10)

	if paper.SheetWidthMm >= hard.SheetWidthMm {
		t.Errorf("hardcover sheet should be wider: paperback %.2f, hardcover %.2f",
			paper.SheetWidthMm, hard.SheetWidthMm)
	}
	if paper.SheetHeightMm >= hard.SheetHeightMm {
		t.Errorf("hardcover sheet should be taller: paperback %.2f, hardcover %.2f",
			paper.SheetHeightMm, hard.SheetHeightMm)
	}
}
