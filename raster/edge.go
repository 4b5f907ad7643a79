package raster

import "math"

// PointEdge is a single point already converted to pixel coordinates.
type PointEdge struct {
	X, Y int
}

// PolyEdge is one non-horizontal segment of a polygon ring, in pixel
// coordinates, oriented top-to-bottom (y0 <= y1 by construction). It
// supports the scanline sweep in BurnPolygon: Intersect reports the edge's
// x position at a given scanline.
type PolyEdge struct {
	Ystart, Yend int // edge is active for scanlines Ystart <= y < Yend
	x0, y0       float64
	dxdy         float64

	// XAtYLine caches the most recent Intersect result so the active-edge
	// list can be sorted by it without recomputing per comparison.
	XAtYLine float64
}

// NewPolyEdge builds a PolyEdge from two ring vertices already projected to
// pixel space. Horizontal edges (y0 == y1) carry no scanline information
// and should not be constructed; callers filter those out beforehand.
func NewPolyEdge(x0, y0, x1, y1 float64) PolyEdge {
	xTop, yTop, xBot, yBot := x0, y0, x1, y1
	if y0 >= y1 {
		xTop, yTop, xBot, yBot = x1, y1, x0, y0
	}

	// Ceiling matches the GDAL-style "first/last scanline this edge is
	// active for" rule; clamped to 0 the way a saturating float-to-uint
	// cast would (an edge entirely above the raster gets ystart==yend==0
	// and is dropped by the sweep on its first iteration).
	ystart := int(math.Max(0, math.Ceil(yTop-0.5)))
	yend := int(math.Max(0, math.Ceil(yBot-0.5)))
	dxdy := (xBot - xTop) / (yBot - yTop)

	return PolyEdge{
		Ystart: ystart,
		Yend:   yend,
		x0:     xTop,
		y0:     yTop,
		dxdy:   dxdy,
	}
}

// Intersect returns the edge's x position at the pixel-center height of
// scanline yline.
func (e PolyEdge) Intersect(yline int) float64 {
	centerY := float64(yline) + 0.5
	return e.x0 + (centerY-e.y0)*e.dxdy
}

// LineEdge is one segment of a linestring or ring perimeter, in pixel
// coordinates, used by both line burn strategies.
type LineEdge struct {
	X0, Y0, X1, Y1 float64
	// IsClosed is this segment's owning linestring's closedness, needed by
	// the Standard burner to decide whether to burn the final pixel.
	IsClosed bool
}

// EdgeCollection accumulates the edges extracted from one or more
// geometries, tracking whether it holds polygon edges, line edges, both,
// or neither. The zero value is an empty collection.
type EdgeCollection struct {
	Poly []PolyEdge
	Line []LineEdge
}

// Empty reports whether the collection holds no edges of either kind.
func (c *EdgeCollection) Empty() bool {
	return len(c.Poly) == 0 && len(c.Line) == 0
}

// AddPoly appends polygon edges to the collection.
func (c *EdgeCollection) AddPoly(edges ...PolyEdge) {
	c.Poly = append(c.Poly, edges...)
}

// AddLine appends line edges to the collection.
func (c *EdgeCollection) AddLine(edges ...LineEdge) {
	c.Line = append(c.Line, edges...)
}
