package raster

import "testing"

func TestPixelCacheInsertContains(t *testing.T) {
	edges := []LineEdge{{X0: 0, Y0: 0, X1: 3, Y1: 3}}
	c := NewPixelCache(edges)

	if c.Contains(1, 1) {
		t.Error("fresh cache should not contain any pixel")
	}
	if !c.Insert(1, 1) {
		t.Error("first Insert should report newly inserted")
	}
	if c.Insert(1, 1) {
		t.Error("second Insert of the same pixel should report not new")
	}
	if !c.Contains(1, 1) {
		t.Error("Contains should report true after Insert")
	}
}

func TestPixelCacheIndependentPixels(t *testing.T) {
	edges := []LineEdge{{X0: 0, Y0: 0, X1: 5, Y1: 5}}
	c := NewPixelCache(edges)

	c.Insert(0, 0)
	if c.Contains(5, 5) {
		t.Error("inserting (0,0) should not mark (5,5)")
	}
	c.Insert(5, 5)
	if !c.Contains(0, 0) || !c.Contains(5, 5) {
		t.Error("both inserted pixels should be contained")
	}
}

func TestPixelCacheNegativeBoundingBox(t *testing.T) {
	edges := []LineEdge{{X0: -3, Y0: -2, X1: 1, Y1: 1}}
	c := NewPixelCache(edges)

	if !c.Insert(-3, -2) {
		t.Error("Insert at the cache's own min corner should succeed")
	}
	if !c.Contains(-3, -2) {
		t.Error("Contains should see the min corner after Insert")
	}
}
