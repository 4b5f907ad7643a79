package raster

import (
	"testing"

	"github.com/pspoerri/rusterize/geom"
)

func collectWrites(edges []LineEdge, d Descriptor, strategy LineBurnStrategy) map[[2]int]bool {
	seen := map[[2]int]bool{}
	w := writerFunc(func(y, x int, _, _ float64) {
		seen[[2]int{y, x}] = true
	})
	BurnLines(edges, d, strategy, 1, 0, w)
	return seen
}

type writerFunc func(y, x int, value, background float64)

func (f writerFunc) Write(y, x int, value, background float64) { f(y, x, value, background) }

func TestBurnLinesStandardHorizontal(t *testing.T) {
	d, err := FromRaw(RawDescriptor{Ncols: 5, Nrows: 5, Xmin: 0, Xmax: 5, Ymin: 0, Ymax: 5, Xres: 1, Yres: 1, HasExtent: true})
	if err != nil {
		t.Fatal(err)
	}
	var edges []LineEdge
	ExtractLine(&edges, []geom.Point{{X: 0.5, Y: 2.5}, {X: 3.5, Y: 2.5}}, d, false)

	seen := collectWrites(edges, d, Standard)
	for x := 0; x <= 3; x++ {
		if !seen[[2]int{2, x}] {
			t.Errorf("expected pixel (2,%d) set", x)
		}
	}
}

func TestBurnLinesStandardOpenLineBurnsFinalPixel(t *testing.T) {
	d, err := FromRaw(RawDescriptor{Ncols: 4, Nrows: 4, Xmin: 0, Xmax: 4, Ymin: 0, Ymax: 4, Xres: 1, Yres: 1, HasExtent: true})
	if err != nil {
		t.Fatal(err)
	}
	var edges []LineEdge
	ExtractLine(&edges, []geom.Point{{X: 0.5, Y: 0.5}, {X: 3.5, Y: 0.5}}, d, false)

	seen := collectWrites(edges, d, Standard)
	if !seen[[2]int{3, 3}] {
		t.Error("open line's final pixel should be burned")
	}
}

func TestBurnLinesAllTouchedVertical(t *testing.T) {
	d, err := FromRaw(RawDescriptor{Ncols: 5, Nrows: 5, Xmin: 0, Xmax: 5, Ymin: 0, Ymax: 5, Xres: 1, Yres: 1, HasExtent: true})
	if err != nil {
		t.Fatal(err)
	}
	var edges []LineEdge
	ExtractLine(&edges, []geom.Point{{X: 2.5, Y: 0.5}, {X: 2.5, Y: 3.5}}, d, false)

	seen := collectWrites(edges, d, AllTouched)
	for y := 1; y <= 4; y++ {
		if !seen[[2]int{y, 2}] {
			t.Errorf("expected pixel (%d,2) set", y)
		}
	}
}

func TestBurnLinesAllTouchedHorizontal(t *testing.T) {
	d, err := FromRaw(RawDescriptor{Ncols: 5, Nrows: 5, Xmin: 0, Xmax: 5, Ymin: 0, Ymax: 5, Xres: 1, Yres: 1, HasExtent: true})
	if err != nil {
		t.Fatal(err)
	}
	var edges []LineEdge
	ExtractLine(&edges, []geom.Point{{X: 0.5, Y: 2.5}, {X: 3.5, Y: 2.5}}, d, false)

	seen := collectWrites(edges, d, AllTouched)
	for x := 0; x <= 3; x++ {
		if !seen[[2]int{2, x}] {
			t.Errorf("expected pixel (2,%d) set", x)
		}
	}
}
