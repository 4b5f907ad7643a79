package raster

import "testing"

func TestFromRawNoPadWithoutResolution(t *testing.T) {
	d, err := FromRaw(RawDescriptor{
		Ncols: 4, Nrows: 4,
		Xmin: 0.5, Xmax: 3.5, Ymin: 0.5, Ymax: 3.5,
		HasExtent: false,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// nrows/ncols given, resolution derived from the unpadded extent
	if d.Xmin != 0.5 || d.Xmax != 3.5 {
		t.Errorf("expected no padding without resolution, got xmin=%v xmax=%v", d.Xmin, d.Xmax)
	}
	if d.Xres != (3.5-0.5)/4 {
		t.Errorf("unexpected derived resolution: %v", d.Xres)
	}
}

func TestFromRawPadsWhenResolutionGiven(t *testing.T) {
	d, err := FromRaw(RawDescriptor{
		Xmin: 1, Xmax: 3, Ymin: 1, Ymax: 3,
		Xres: 1, Yres: 1,
		HasExtent: false,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Xmin != 0.5 || d.Xmax != 3.5 {
		t.Errorf("expected half-pixel pad, got xmin=%v xmax=%v", d.Xmin, d.Xmax)
	}
	if d.Ncols != 3 {
		t.Errorf("expected ncols=3, got %d", d.Ncols)
	}
}

func TestFromRawTapSnapping(t *testing.T) {
	d, err := FromRaw(RawDescriptor{
		Xmin: 1.2, Xmax: 3.4, Ymin: 0.1, Ymax: 2.9,
		Xres: 1, Yres: 1,
		HasExtent: true,
		Tap:       true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Xmin != 1 || d.Xmax != 4 {
		t.Errorf("tap snapping xmin/xmax wrong: %v %v", d.Xmin, d.Xmax)
	}
	if d.Ymin != 0 || d.Ymax != 3 {
		t.Errorf("tap snapping ymin/ymax wrong: %v %v", d.Ymin, d.Ymax)
	}
}

func TestFromRawNeedsResolutionOrShape(t *testing.T) {
	_, err := FromRaw(RawDescriptor{Xmin: 0, Xmax: 1, Ymin: 0, Ymax: 1})
	if err == nil {
		t.Fatal("expected an error when neither resolution nor shape is given")
	}
}

func TestAxisCoordinates(t *testing.T) {
	d, err := FromRaw(RawDescriptor{
		Ncols: 2, Nrows: 2,
		Xmin: 0, Xmax: 2, Ymin: 0, Ymax: 2,
		HasExtent: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	y, x := d.AxisCoordinates()
	if len(y) != 2 || len(x) != 2 {
		t.Fatalf("expected 2 coordinates per axis, got y=%d x=%d", len(y), len(x))
	}
	if y[0] != 1.5 || y[1] != 0.5 {
		t.Errorf("unexpected y coordinates: %v", y)
	}
	if x[0] != 0.5 || x[1] != 1.5 {
		t.Errorf("unexpected x coordinates: %v", x)
	}
}
