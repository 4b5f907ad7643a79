package raster

import (
	"math"

	"github.com/pspoerri/rusterize/rusterr"
)

// RawDescriptor is the caller-supplied, possibly-incomplete raster
// geometry: any combination of resolution, shape, and extent may be
// zero-valued, in which case FromRaw derives the missing pieces from what
// was given.
type RawDescriptor struct {
	Ncols, Nrows           int
	Xmin, Xmax, Ymin, Ymax float64
	Xres, Yres             float64
	// HasExtent is false when Xmin/Xmax/Ymin/Ymax describe a geometry
	// bounding box rather than a user-chosen extent; in that case, when
	// Tap is false and a resolution is given, FromRaw pads the extent by
	// half a pixel on every side so edge geometries are not clipped at the
	// raster boundary.
	HasExtent bool
	// Tap requests target-aligned-pixel snapping: the extent is expanded
	// to the nearest multiple of the resolution instead of half-pixel
	// padded. Only meaningful when a resolution is given.
	Tap bool
}

// Descriptor is a fully resolved raster geometry: every field is present
// and consistent (ncols/nrows agree with the extent and resolution).
type Descriptor struct {
	Ncols, Nrows           int
	Xmin, Xmax, Ymin, Ymax float64
	Xres, Yres             float64
}

// FromRaw resolves a RawDescriptor into a Descriptor, deriving whichever of
// {resolution, shape} is missing from the other and the extent. At least
// one of resolution or shape must be given; requiring neither leaves the
// pixel grid undetermined regardless of extent.
func FromRaw(raw RawDescriptor) (Descriptor, error) {
	d := Descriptor{
		Ncols: raw.Ncols, Nrows: raw.Nrows,
		Xmin: raw.Xmin, Xmax: raw.Xmax, Ymin: raw.Ymin, Ymax: raw.Ymax,
		Xres: raw.Xres, Yres: raw.Yres,
	}

	hasRes := d.Xres != 0
	hasShape := d.Nrows != 0

	if !hasRes && !hasShape {
		return Descriptor{}, rusterr.Config("raster descriptor needs resolution or shape (ncols/nrows), neither was given")
	}

	if !raw.HasExtent && !raw.Tap && hasRes {
		d.Xmin -= d.Xres / 2
		d.Xmax += d.Xres / 2
		d.Ymin -= d.Yres / 2
		d.Ymax += d.Yres / 2
	}

	if !hasRes {
		d.resolution()
	} else if raw.Tap {
		d.Xmin = math.Floor(d.Xmin/d.Xres) * d.Xres
		d.Xmax = math.Ceil(d.Xmax/d.Xres) * d.Xres
		d.Ymin = math.Floor(d.Ymin/d.Yres) * d.Yres
		d.Ymax = math.Ceil(d.Ymax/d.Yres) * d.Yres
	}

	if !hasShape {
		d.shape()
	}

	if d.Ncols <= 0 || d.Nrows <= 0 {
		return Descriptor{}, rusterr.Config("resolved raster shape is empty: %d rows x %d cols", d.Nrows, d.Ncols)
	}

	return d, nil
}

func (d *Descriptor) shape() {
	d.Nrows = int(0.5 + (d.Ymax-d.Ymin)/d.Yres)
	d.Ncols = int(0.5 + (d.Xmax-d.Xmin)/d.Xres)
}

func (d *Descriptor) resolution() {
	d.Xres = (d.Xmax - d.Xmin) / float64(d.Ncols)
	d.Yres = (d.Ymax - d.Ymin) / float64(d.Nrows)
}

// AxisCoordinates returns the pixel-center coordinate of every row (y,
// descending from the top) and column (x, ascending from the left).
func (d Descriptor) AxisCoordinates() (y, x []float64) {
	y = make([]float64, d.Nrows)
	for i := 0; i < d.Nrows; i++ {
		y[i] = d.Ymax - d.Yres/2 - float64(i)*d.Yres
	}
	x = make([]float64, d.Ncols)
	for i := 0; i < d.Ncols; i++ {
		x[i] = d.Xmin + d.Xres/2 + float64(i)*d.Xres
	}
	return y, x
}
