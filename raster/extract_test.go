package raster

import (
	"testing"

	"github.com/pspoerri/rusterize/geom"
)

func testDescriptor(t *testing.T) Descriptor {
	t.Helper()
	d, err := FromRaw(RawDescriptor{Ncols: 4, Nrows: 4, Xmin: 0, Xmax: 4, Ymin: 0, Ymax: 4, Xres: 1, Yres: 1, HasExtent: true})
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestExtractPointInsideAndOutside(t *testing.T) {
	d := testDescriptor(t)

	var edges []PointEdge
	ExtractPoint(&edges, geom.Point{X: 1.5, Y: 1.5}, d)
	ExtractPoint(&edges, geom.Point{X: 100, Y: 100}, d)

	if len(edges) != 1 {
		t.Fatalf("expected 1 in-raster point, got %d", len(edges))
	}
	if edges[0].X != 1 || edges[0].Y != 2 {
		t.Errorf("unexpected pixel coords: %+v", edges[0])
	}
}

func TestExtractRingDropsHorizontalEdges(t *testing.T) {
	d := testDescriptor(t)

	coords := []geom.Point{
		{X: 1, Y: 1}, {X: 3, Y: 1}, // horizontal: dropped
		{X: 3, Y: 3}, {X: 1, Y: 3}, // horizontal: dropped
		{X: 1, Y: 1},
	}
	var edges []PolyEdge
	ExtractRing(&edges, coords, d)

	if len(edges) != 2 {
		t.Fatalf("expected 2 non-horizontal edges, got %d", len(edges))
	}
}

func TestExtractLineKeepsOnlyOverlapping(t *testing.T) {
	d := testDescriptor(t)

	coords := []geom.Point{
		{X: -10, Y: -10}, {X: -9, Y: -9}, // fully off raster
		{X: 1, Y: 1}, {X: 2, Y: 2}, // (-9,-9)->(1,1) enters the raster; (1,1)->(2,2) is on it
	}
	var edges []LineEdge
	ExtractLine(&edges, coords, d, false)

	if len(edges) != 2 {
		t.Fatalf("expected 2 overlapping segments kept, got %d", len(edges))
	}
}

func TestExtractLineClosedPropagatesPerComponent(t *testing.T) {
	d := testDescriptor(t)

	var edges []LineEdge
	ExtractLine(&edges, []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, d, true)
	ExtractLine(&edges, []geom.Point{{X: 1, Y: 2}, {X: 2, Y: 3}}, d, false)

	if !edges[0].IsClosed {
		t.Error("first component's edge should keep its own IsClosed=true")
	}
	if edges[1].IsClosed {
		t.Error("second component's edge should keep its own IsClosed=false, not merge with the first")
	}
}
