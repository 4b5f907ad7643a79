package raster

import (
	"math"
	"sort"
)

// BurnPolygon scan-converts a set of polygon edges using an even-odd
// active-edge sweep, writing filled pixels row by row.
func BurnPolygon[T Numeric](edges []PolyEdge, d Descriptor, value, background T, w PixelWriter[T]) {
	if len(edges) == 0 {
		return
	}

	sort.Slice(edges, func(i, j int) bool { return edges[i].Ystart < edges[j].Ystart })

	yline := edges[0].Ystart
	var active []PolyEdge
	pending := edges
	ncols := float64(d.Ncols)

	for yline < d.Nrows && (len(active) != 0 || len(pending) != 0) {
		split := sort.Search(len(pending), func(i int) bool { return pending[i].Ystart > yline })
		active = append(active, pending[:split]...)
		pending = pending[split:]

		active = dropEnded(active, yline)
		if len(active) == 0 {
			yline++
			continue
		}

		for i := range active {
			active[i].XAtYLine = active[i].Intersect(yline)
		}
		sort.Slice(active, func(i, j int) bool { return active[i].XAtYLine < active[j].XAtYLine })

		for i := 0; i+1 < len(active); i += 2 {
			x1 := active[i].XAtYLine
			x2 := active[i+1].XAtYLine

			xstart := int(clamp(math.Floor(x1+0.5), 0, ncols))
			xend := int(clamp(math.Floor(x2+0.5), 0, ncols))

			for xpix := xstart; xpix < xend; xpix++ {
				w.Write(yline, xpix, value, background)
			}
		}

		yline++
	}
}

func dropEnded(active []PolyEdge, yline int) []PolyEdge {
	kept := active[:0]
	for _, e := range active {
		if e.Yend > yline {
			kept = append(kept, e)
		}
	}
	return kept
}
