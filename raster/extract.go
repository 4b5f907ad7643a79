package raster

import "github.com/pspoerri/rusterize/geom"

// horizontalEpsilon bounds how close two y coordinates must be for a ring
// edge to be treated as horizontal and dropped (it contributes nothing to
// the scanline sweep).
const horizontalEpsilon = 2.220446049250313e-16 // float64 machine epsilon

// ExtractPoint projects a single point to pixel space and appends a
// PointEdge if it falls inside the raster.
func ExtractPoint(edges *[]PointEdge, p geom.Point, d Descriptor) {
	x := (p.X - d.Xmin) / d.Xres
	y := (d.Ymax - p.Y) / d.Yres

	if x >= 0 && x < float64(d.Ncols) && y >= 0 && y < float64(d.Nrows) {
		*edges = append(*edges, PointEdge{X: int(x), Y: int(y)})
	}
}

// ExtractRing projects a closed ring's vertex pairs to pixel space and
// appends one PolyEdge per non-horizontal, on-raster segment.
func ExtractRing(edges *[]PolyEdge, coords []geom.Point, d Descriptor) {
	if len(coords) < 2 {
		return
	}
	rows := float64(d.Nrows)
	for i := 0; i < len(coords)-1; i++ {
		x0 := (coords[i].X - d.Xmin) / d.Xres
		x1 := (coords[i+1].X - d.Xmin) / d.Xres
		y0 := (d.Ymax - coords[i].Y) / d.Yres
		y1 := (d.Ymax - coords[i+1].Y) / d.Yres

		if abs(y0-y1) < horizontalEpsilon {
			continue
		}

		minY, maxY := y0, y1
		if minY > maxY {
			minY, maxY = maxY, minY
		}
		if minY < rows && maxY >= 0 {
			*edges = append(*edges, NewPolyEdge(x0, y0, x1, y1))
		}
	}
}

// ExtractLine projects a linestring's vertex pairs to pixel space and
// appends one LineEdge per on-raster segment. closed marks every emitted
// edge with the linestring's own closedness — multi-linestring components
// never merge their closedness.
func ExtractLine(edges *[]LineEdge, coords []geom.Point, d Descriptor, closed bool) {
	if len(coords) < 2 {
		return
	}
	rows := float64(d.Nrows)
	cols := float64(d.Ncols)
	for i := 0; i < len(coords)-1; i++ {
		x0 := (coords[i].X - d.Xmin) / d.Xres
		y0 := (d.Ymax - coords[i].Y) / d.Yres
		x1 := (coords[i+1].X - d.Xmin) / d.Xres
		y1 := (d.Ymax - coords[i+1].Y) / d.Yres

		minX, maxX := minmax(x0, x1)
		minY, maxY := minmax(y0, y1)

		if minX < cols && maxX >= 0 && minY < rows && maxY >= 0 {
			*edges = append(*edges, LineEdge{X0: x0, Y0: y0, X1: x1, Y1: y1, IsClosed: closed})
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func minmax(a, b float64) (min, max float64) {
	if a < b {
		return a, b
	}
	return b, a
}
