package raster

import (
	"math"

	"github.com/pspoerri/rusterize/geom"
)

// BurnPoints writes every point edge directly to the writer; points have
// no notion of "all touched" or deduplication.
func BurnPoints[T Numeric](edges []PointEdge, value, background T, w PixelWriter[T]) {
	for _, p := range edges {
		w.Write(p.Y, p.X, value, background)
	}
}

// Burn rasterizes a single geometry (which may itself be a
// GeometryCollection) onto w, dispatching by geometry kind. strategy
// selects Standard vs all-touched line burning; needsDedup (set for the
// sum and count reducers) additionally requests a PixelCache wherever
// duplicate emissions would otherwise be double-counted. Line geometries
// also get a PixelCache when the pixels are not square.
func Burn[T Numeric](g geom.Geometry, d Descriptor, strategy LineBurnStrategy, needsDedup bool, value, background T, w PixelWriter[T]) {
	for _, leaf := range flatten(g) {
		burnLeaf(leaf, d, strategy, needsDedup, value, background, w)
	}
}

// flatten walks a geometry tree with an explicit stack (not recursion) and
// returns the ordered list of non-collection leaf geometries. A
// GeometryCollection contributes its members in order; nested collections
// are expanded in place.
func flatten(g geom.Geometry) []geom.Geometry {
	var leaves []geom.Geometry
	stack := []geom.Geometry{g}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if coll, ok := cur.(geom.GeometryCollection); ok {
			// push in reverse so members are visited in original order
			for i := len(coll.Geometries) - 1; i >= 0; i-- {
				stack = append(stack, coll.Geometries[i])
			}
			continue
		}
		leaves = append(leaves, cur)
	}
	return leaves
}

func burnLeaf[T Numeric](g geom.Geometry, d Descriptor, strategy LineBurnStrategy, needsDedup bool, value, background T, w PixelWriter[T]) {
	switch v := g.(type) {
	case geom.Point:
		var pts []PointEdge
		ExtractPoint(&pts, v, d)
		BurnPoints(pts, value, background, w)

	case geom.MultiPoint:
		var pts []PointEdge
		for _, p := range v.Points {
			ExtractPoint(&pts, p, d)
		}
		BurnPoints(pts, value, background, w)

	case geom.LineString:
		burnLineGeometry([][]geom.Point{v.Coords}, []bool{v.Closed()}, d, strategy, needsDedup, value, background, w)

	case geom.MultiLineString:
		coordSets := make([][]geom.Point, len(v.Lines))
		closed := make([]bool, len(v.Lines))
		for i, line := range v.Lines {
			coordSets[i] = line.Coords
			closed[i] = line.Closed()
		}
		burnLineGeometry(coordSets, closed, d, strategy, needsDedup, value, background, w)

	case geom.Polygon:
		burnPolygons([]geom.Polygon{v}, d, strategy, needsDedup, value, background, w)

	case geom.MultiPolygon:
		burnPolygons(v.Polygons, d, strategy, needsDedup, value, background, w)
	}
}

func burnLineGeometry[T Numeric](coordSets [][]geom.Point, closed []bool, d Descriptor, strategy LineBurnStrategy, needsDedup bool, value, background T, w PixelWriter[T]) {
	var lines []LineEdge
	ends := make([]int, len(coordSets))
	for i, coords := range coordSets {
		ExtractLine(&lines, coords, d, closed[i])
		ends[i] = len(lines)
	}
	if len(lines) == 0 {
		return
	}

	var lw PixelWriter[T] = w
	if d.Xres != d.Yres || needsDedup {
		lw = LineWriter[T]{Inner: w, Cache: NewPixelCache(lines)}
	}
	// each component is burned on its own, so the Standard burner's
	// final-pixel rule applies to the last edge of every component
	start := 0
	for _, end := range ends {
		BurnLines(lines[start:end], d, strategy, value, background, lw)
		start = end
	}
}

func burnPolygons[T Numeric](polys []geom.Polygon, d Descriptor, strategy LineBurnStrategy, needsDedup bool, value, background T, w PixelWriter[T]) {
	var polyEdges []PolyEdge
	for _, p := range polys {
		ExtractRing(&polyEdges, p.Exterior.Coords, d)
		for _, hole := range p.Holes {
			ExtractRing(&polyEdges, hole.Coords, d)
		}
	}

	if strategy != AllTouched {
		BurnPolygon(polyEdges, d, value, background, w)
		return
	}

	var lineEdges []LineEdge
	for _, p := range polys {
		ExtractLine(&lineEdges, p.Exterior.Coords, d, true)
		for _, hole := range p.Holes {
			ExtractLine(&lineEdges, hole.Coords, d, true)
		}
	}

	// A perimeter edge lying on a pixel grid line only touches the pixels on
	// either side along their border; those pixels are left to the fill.
	var perimeter []LineEdge
	for _, e := range lineEdges {
		onCol := abs(e.X0-e.X1) < 0.01 && abs(e.X0-math.Round(e.X0)) < epsilonIntersect
		onRow := abs(e.Y0-e.Y1) < 0.01 && abs(e.Y0-math.Round(e.Y0)) < epsilonIntersect
		if !onCol && !onRow {
			perimeter = append(perimeter, e)
		}
	}

	if !needsDedup {
		BurnLines(perimeter, d, strategy, value, background, w)
		BurnPolygon(polyEdges, d, value, background, w)
		return
	}

	cache := NewPixelCache(lineEdges)

	lineW := LineWriter[T]{Inner: w, Cache: cache}
	BurnLines(perimeter, d, strategy, value, background, lineW)

	fillW := FillWriter[T]{Inner: w, Cache: cache}
	BurnPolygon(polyEdges, d, value, background, fillW)
}
