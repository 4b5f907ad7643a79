package raster

import "math"

// PixelCache is a flat bitset over the bounding box of a set of line edges,
// used to deduplicate pixels touched more than once: once by the perimeter
// burn of an all-touched polygon, once by overlapping segments of a
// duplicate-sensitive line reducer.
type PixelCache struct {
	bits       []uint64
	width      int
	xmin, ymin int
}

// NewPixelCache builds a cache sized to the bounding box of edges. Passing
// no edges yields a one-pixel cache at (0,0).
func NewPixelCache(edges []LineEdge) *PixelCache {
	xmin, ymin := math.MaxFloat64, math.MaxFloat64
	xmax, ymax := -math.MaxFloat64, -math.MaxFloat64
	for _, e := range edges {
		xmin = math.Min(xmin, math.Min(e.X0, e.X1))
		ymin = math.Min(ymin, math.Min(e.Y0, e.Y1))
		xmax = math.Max(xmax, math.Max(e.X0, e.X1))
		ymax = math.Max(ymax, math.Max(e.Y0, e.Y1))
	}
	if len(edges) == 0 {
		xmin, ymin, xmax, ymax = 0, 0, 0, 0
	}

	width := int(math.Floor(xmax) - math.Floor(xmin) + 1)
	height := int(math.Floor(ymax) - math.Floor(ymin) + 1)

	return &PixelCache{
		bits:  make([]uint64, (width*height+63)/64),
		width: width,
		xmin:  int(math.Floor(xmin)),
		ymin:  int(math.Floor(ymin)),
	}
}

func (c *PixelCache) unravel(x, y int) int {
	localX := x - c.xmin
	localY := y - c.ymin
	return localY*c.width + localX
}

// Insert marks (x,y) as visited, returning true iff it was not already
// marked.
func (c *PixelCache) Insert(x, y int) bool {
	idx := c.unravel(x, y)
	word, bit := idx/64, uint(idx%64)
	if c.bits[word]&(1<<bit) != 0 {
		return false
	}
	c.bits[word] |= 1 << bit
	return true
}

// Contains reports whether (x,y) has been marked visited. Pixels outside
// the cache's bounding box are never marked.
func (c *PixelCache) Contains(x, y int) bool {
	if x < c.xmin || x >= c.xmin+c.width || y < c.ymin {
		return false
	}
	idx := c.unravel(x, y)
	if idx/64 >= len(c.bits) {
		return false
	}
	word, bit := idx/64, uint(idx%64)
	return c.bits[word]&(1<<bit) != 0
}
