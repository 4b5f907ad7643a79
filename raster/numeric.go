// Package raster implements the rasterization core: turning vector
// geometries and an attribute table into a pixel grid. It has no knowledge
// of WKB/WKT, file formats, or any geometry ingestion concern — those live
// above this package.
package raster

// Numeric enumerates the closed set of pixel element types the
// rasterization core supports. This mirrors the ten monomorphized dtype
// instantiations the original engine dispatches to (unsigned/signed
// integers of every common width, plus float32/float64); Go generics let
// one implementation serve all ten instead of hand-written duplicates.
type Numeric interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
