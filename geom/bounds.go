package geom

import "math"

// Rect is an axis-aligned bounding box in world coordinates.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

func rectOf(g Geometry) (Rect, bool) {
	switch v := g.(type) {
	case Point:
		return Rect{v.X, v.Y, v.X, v.Y}, true
	case MultiPoint:
		return rectOfPoints(v.Points)
	case LineString:
		return rectOfPoints(v.Coords)
	case MultiLineString:
		var acc Rect
		found := false
		for _, line := range v.Lines {
			r, ok := rectOfPoints(line.Coords)
			if !ok {
				continue
			}
			acc, found = mergeRect(acc, found, r)
		}
		return acc, found
	case Polygon:
		var acc Rect
		found := false
		r, ok := rectOfPoints(v.Exterior.Coords)
		if ok {
			acc, found = mergeRect(acc, found, r)
		}
		for _, hole := range v.Holes {
			r, ok := rectOfPoints(hole.Coords)
			if !ok {
				continue
			}
			acc, found = mergeRect(acc, found, r)
		}
		return acc, found
	case MultiPolygon:
		var acc Rect
		found := false
		for _, poly := range v.Polygons {
			r, ok := rectOf(poly)
			if !ok {
				continue
			}
			acc, found = mergeRect(acc, found, r)
		}
		return acc, found
	case GeometryCollection:
		var acc Rect
		found := false
		for _, inner := range v.Geometries {
			r, ok := rectOf(inner)
			if !ok {
				continue
			}
			acc, found = mergeRect(acc, found, r)
		}
		return acc, found
	default:
		return Rect{}, false
	}
}

func rectOfPoints(pts []Point) (Rect, bool) {
	if len(pts) == 0 {
		return Rect{}, false
	}
	r := Rect{pts[0].X, pts[0].Y, pts[0].X, pts[0].Y}
	for _, p := range pts[1:] {
		r.MinX = math.Min(r.MinX, p.X)
		r.MinY = math.Min(r.MinY, p.Y)
		r.MaxX = math.Max(r.MaxX, p.X)
		r.MaxY = math.Max(r.MaxY, p.Y)
	}
	return r, true
}

func mergeRect(acc Rect, accValid bool, r Rect) (Rect, bool) {
	if !accValid {
		return r, true
	}
	return Rect{
		MinX: math.Min(acc.MinX, r.MinX),
		MinY: math.Min(acc.MinY, r.MinY),
		MaxX: math.Max(acc.MaxX, r.MaxX),
		MaxY: math.Max(acc.MaxY, r.MaxY),
	}, true
}

// Bounds merges the bounding rectangles of every geometry in geoms into a
// single enclosing Rect. ok is false when geoms is empty or every geometry
// is itself empty (e.g. an empty GeometryCollection).
func Bounds(geoms []Geometry) (r Rect, ok bool) {
	for _, g := range geoms {
		gr, gok := rectOf(g)
		if !gok {
			continue
		}
		r, ok = mergeRect(r, ok, gr)
	}
	return r, ok
}
