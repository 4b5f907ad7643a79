// Package output holds the two result containers a rasterization run
// produces: a dense, fully materialized buffer, or a sparse coordinate-list
// encoding that defers materialization until the caller asks for it.
package output

import "github.com/pspoerri/rusterize/raster"

// DenseArray is a [bands, nrows, ncols] buffer stored row-major per band,
// bands laid out contiguously one after another.
type DenseArray[T raster.Numeric] struct {
	Data       []T
	BandNames  []string
	Descriptor raster.Descriptor
}

// NewDenseArray allocates a DenseArray with every cell set to background.
func NewDenseArray[T raster.Numeric](bandNames []string, d raster.Descriptor, background T) *DenseArray[T] {
	data := make([]T, len(bandNames)*d.Nrows*d.Ncols)
	for i := range data {
		data[i] = background
	}
	return &DenseArray[T]{Data: data, BandNames: bandNames, Descriptor: d}
}

// Band returns a flat, row-major view over band i's nrows*ncols cells. The
// view shares storage with Data — writes through it mutate the array in
// place. This is the Go-idiomatic equivalent of splitting a 3-D array along
// its outer axis into disjoint mutable 2-D views, one per worker.
func (a *DenseArray[T]) Band(i int) []T {
	size := a.Descriptor.Nrows * a.Descriptor.Ncols
	return a.Data[i*size : (i+1)*size]
}

// NumBands reports how many bands the array holds.
func (a *DenseArray[T]) NumBands() int {
	return len(a.BandNames)
}
