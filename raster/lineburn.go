package raster

import "math"

// The all-touched strategy below is adapted from GDAL's rasterizer
// (alg/llrasterize.cpp), primarily to match its output pixel-for-pixel.
const (
	epsilonIntersect = 1e-4
	tolerance        = 1e-9
)

// LineBurnStrategy selects how a LineEdge's pixels are chosen: Standard
// draws a single-pixel-wide Bresenham line, AllTouched draws every pixel
// the line's geometry crosses.
type LineBurnStrategy int

const (
	Standard LineBurnStrategy = iota
	AllTouched
)

// BurnLines rasterizes a set of line edges with the given strategy.
func BurnLines[T Numeric](edges []LineEdge, d Descriptor, strategy LineBurnStrategy, value, background T, w PixelWriter[T]) {
	switch strategy {
	case AllTouched:
		burnLinesAllTouched(edges, d, value, background, w)
	default:
		burnLinesStandard(edges, d, value, background, w)
	}
}

func burnLinesStandard[T Numeric](edges []LineEdge, d Descriptor, value, background T, w PixelWriter[T]) {
	if len(edges) == 0 {
		return
	}
	nrows, ncols := d.Nrows, d.Ncols
	lastIdx := len(edges) - 1

	for idx, e := range edges {
		ix0 := int(math.Floor(e.X0))
		ix1 := int(math.Floor(e.X1))
		iy0 := int(math.Floor(e.Y0))
		iy1 := int(math.Floor(e.Y1))

		dx := abs64(float64(ix1 - ix0))
		dy := -abs64(float64(iy1 - iy0))

		sx := -1
		if ix0 < ix1 {
			sx = 1
		}
		sy := -1
		if iy0 < iy1 {
			sy = 1
		}

		err := dx + dy
		for ix0 != ix1 || iy0 != iy1 {
			if ix0 >= 0 && ix0 < ncols && iy0 >= 0 && iy0 < nrows {
				w.Write(iy0, ix0, value, background)
			}

			e2 := 2 * err
			if e2 >= dy {
				err += dy
				ix0 += sx
			}
			if e2 <= dx {
				err += dx
				iy0 += sy
			}
		}

		if idx == lastIdx && !e.IsClosed && ix0 >= 0 && ix0 < ncols && iy0 >= 0 && iy0 < nrows {
			w.Write(iy0, ix0, value, background)
		}
	}
}

func abs64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func burnLinesAllTouched[T Numeric](edges []LineEdge, d Descriptor, value, background T, w PixelWriter[T]) {
	if len(edges) == 0 {
		return
	}
	nrows, ncols := d.Nrows, d.Ncols
	nrowsF, ncolsF := float64(nrows), float64(ncols)

	for _, e := range edges {
		dfX, dfY, dfXEnd, dfYEnd := e.X0, e.Y0, e.X1, e.Y1

		if dfX > dfXEnd {
			dfX, dfXEnd = dfXEnd, dfX
			dfY, dfYEnd = dfYEnd, dfY
		}

		// vertical
		if abs64(dfX-dfXEnd) < 0.01 {
			if dfYEnd < dfY {
				dfY, dfYEnd = dfYEnd, dfY
			}
			ix := int(math.Floor(dfXEnd))
			if ix < 0 || ix >= ncols {
				continue
			}
			iy := int(math.Floor(dfY))
			iyEnd := int(math.Floor(dfYEnd - epsilonIntersect))
			if iy < 0 {
				iy = 0
			}
			if iyEnd > nrows-1 {
				iyEnd = nrows - 1
			}
			for y := iy; y <= iyEnd; y++ {
				w.Write(y, ix, value, background)
			}
			continue
		}

		// horizontal
		if abs64(dfY-dfYEnd) < 0.01 {
			if dfXEnd < dfX {
				dfX, dfXEnd = dfXEnd, dfX
			}
			iy := int(math.Floor(dfY))
			if iy < 0 || iy >= nrows {
				continue
			}
			ix := int(math.Floor(dfX))
			ixEnd := int(math.Floor(dfXEnd - epsilonIntersect))
			if ix < 0 {
				ix = 0
			}
			if ixEnd > ncols-1 {
				ixEnd = ncols - 1
			}
			for x := ix; x <= ixEnd; x++ {
				w.Write(iy, x, value, background)
			}
			continue
		}

		// sloped
		slope := (dfYEnd - dfY) / (dfXEnd - dfX)
		invSlope := 1.0 / slope

		if dfX < 0 {
			dfY += (0 - dfX) * slope
			dfX = 0
		}
		if dfXEnd > ncolsF {
			dfYEnd += (ncolsF - dfXEnd) * slope
			dfXEnd = ncolsF
		}

		if dfY < 0 {
			dfX += (0 - dfY) * invSlope
			dfY = 0
		} else if dfY > nrowsF {
			dfX += (nrowsF - dfY) * invSlope
			dfY = nrowsF
		}

		if dfYEnd < 0 {
			dfXEnd += (0 - dfYEnd) * invSlope
		} else if dfYEnd > nrowsF {
			dfXEnd += (nrowsF - dfYEnd) * invSlope
		}

		dfX = clamp(dfX, 0, ncolsF)
		dfXEnd = clamp(dfXEnd, 0, ncolsF)

		for dfX >= 0 && dfX < dfXEnd {
			ix := int(math.Floor(dfX))
			iy := int(math.Floor(dfY))
			if slope < 0 {
				// moving up: at an exact row boundary the line enters the
				// row above, so a pixel touched only at its corner is skipped
				iy = int(math.Ceil(dfY)) - 1
			}

			if ix >= 0 && ix < ncols && iy >= 0 && iy < nrows {
				w.Write(iy, ix, value, background)
			}

			sx := math.Floor(dfX+1) - dfX
			sy := sx * slope

			if int(math.Floor(dfY+sy)) == iy {
				dfX += sx
				dfY += sy
			} else if slope < 0 {
				sy = float64(iy) - dfY
				if sy > -tolerance {
					sy = -tolerance
				}
				sx = sy / slope
				dfX += sx
				dfY += sy
			} else {
				sy = float64(iy+1) - dfY
				if sy < tolerance {
					sy = tolerance
				}
				sx = sy / slope
				dfX += sx
				dfY += sy
			}
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
