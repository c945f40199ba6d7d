package main

// TrimSize is the final cut size of the interior pages, read once from the
// interior document and immutable afterwards.
type TrimSize struct {
	WidthMm  float64
	HeightMm float64
}

// Binding is one print binding family. Each family owns its spine table and
// its cover geometry rule, so adding a family never grows a conditional
// elsewhere in the program.
type Binding interface {
	Name() string
	SpineWidth(pages int) (float64, error)
	Geometry(trim TrimSize, spineWidthMm float64) CoverGeometry
}

type saddleStitch struct{}
type perfectBound struct{}
type caseWrap struct{}
type linenWrap struct{}
type coilBound struct{}

func (saddleStitch) Name() string { return "saddle-stitch paperback" }
func (perfectBound) Name() string { return "perfect-bound paperback" }
func (caseWrap) Name() string     { return "case-wrap hardcover" }
func (linenWrap) Name() string    { return "linen-wrap hardcover" }
func (coilBound) Name() string    { return "coil-bound paperback" }

func (b saddleStitch) SpineWidth(pages int) (float64, error) {
	return lookupSpine(b.Name(), saddleStitchSpine, pages)
}

func (b perfectBound) SpineWidth(pages int) (float64, error) {
	return lookupSpine(b.Name(), perfectBoundSpine, pages)
}

func (b caseWrap) SpineWidth(pages int) (float64, error) {
	return lookupSpine(b.Name(), caseWrapSpine, pages)
}

func (b linenWrap) SpineWidth(pages int) (float64, error) {
	return lookupSpine(b.Name(), linenWrapSpine, pages)
}

func (b coilBound) SpineWidth(pages int) (float64, error) {
	return lookupSpine(b.Name(), coilBoundSpine, pages)
}

func (saddleStitch) Geometry(trim TrimSize, spineWidthMm float64) CoverGeometry {
	return paperbackGeometry(trim, spineWidthMm)
}

func (perfectBound) Geometry(trim TrimSize, spineWidthMm float64) CoverGeometry {
	return paperbackGeometry(trim, spineWidthMm)
}

func (coilBound) Geometry(trim TrimSize, spineWidthMm float64) CoverGeometry {
	return paperbackGeometry(trim, spineWidthMm)
}

func (caseWrap) Geometry(trim TrimSize, spineWidthMm float64) CoverGeometry {
	return hardcoverGeometry(trim, spineWidthMm)
}

func (linenWrap) Geometry(trim TrimSize, spineWidthMm float64) CoverGeometry {
	return hardcoverGeometry(trim, spineWidthMm)
}

// bindingForPageCount applies the current product policy: anything above the
// threshold is printed as a case-wrap hardcover, the rest as a saddle-stitch
// booklet. The threshold comes from config, not a literal.
func bindingForPageCount(pages, hardcoverThreshold int) Binding {
	if pages > hardcoverThreshold {
		return caseWrap{}
	}
	return saddleStitch{}
}
