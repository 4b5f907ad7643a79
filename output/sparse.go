package output

import "github.com/pspoerri/rusterize/raster"

// Triplets is a contiguous (row, col, value) coordinate list spanning every
// band of a SparseArray, sliced per band via Lengths.
type Triplets[T raster.Numeric] struct {
	Rows, Cols []int
	Data       []T
}

// SparseArray holds raw per-pixel emissions rather than a materialized
// grid: every emission the burners made is recorded as one triplet, in
// emission order, with no reduction applied yet. Materialize
// replays them through the reducer to restore the same aggregation
// semantics a DenseArray would have produced.
type SparseArray[T raster.Numeric] struct {
	BandNames  []string
	Triplets   Triplets[T]
	Lengths    []int // per-band triplet count; sum(Lengths) == len(Triplets.Rows)
	Descriptor raster.Descriptor
	Reducer    raster.Reducer[T]
	Background T
}

// Materialize replays the stored triplets through the reducer into a fresh
// DenseArray, one band at a time. This is the only place overlap
// aggregation happens for the sparse path — SparseWriter itself performs
// no deduplication.
func (s *SparseArray[T]) Materialize() *DenseArray[T] {
	dense := NewDenseArray[T](s.BandNames, s.Descriptor, s.Background)

	offset := 0
	for bandIdx, n := range s.Lengths {
		band := dense.Band(bandIdx)
		rows := s.Triplets.Rows[offset : offset+n]
		cols := s.Triplets.Cols[offset : offset+n]
		values := s.Triplets.Data[offset : offset+n]

		for i := range rows {
			idx := rows[i]*s.Descriptor.Ncols + cols[i]
			s.Reducer.Apply(band, idx, values[i], s.Background)
		}
		offset += n
	}
	return dense
}

// Row is one (row, col, value, band) record, the unit ToTabular emits.
type Row[T raster.Numeric] struct {
	Band     int // 1-based; only meaningful when len(BandNames) > 1
	Row, Col int
	Value    T
}

// ToTabular flattens the sparse array into row records, adding a 1-based
// band index only when there is more than one band — a single-band result
// has no need for a band column.
func (s *SparseArray[T]) ToTabular() []Row[T] {
	total := len(s.Triplets.Rows)
	rows := make([]Row[T], 0, total)

	offset := 0
	for bandIdx, n := range s.Lengths {
		band := 0
		if len(s.Lengths) > 1 {
			band = bandIdx + 1
		}
		for i := offset; i < offset+n; i++ {
			rows = append(rows, Row[T]{
				Band:  band,
				Row:   s.Triplets.Rows[i],
				Col:   s.Triplets.Cols[i],
				Value: s.Triplets.Data[i],
			})
		}
		offset += n
	}
	return rows
}
