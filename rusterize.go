// Package rusterize turns vector geometries and an optional attribute
// table into a raster: one or more bands of pixel values produced by
// scan-converting each input geometry and combining overlapping emissions
// with a pixel reducer. See the raster, geom, table, and output packages
// for the pieces this driver wires together.
package rusterize

import (
	"fmt"
	"log"
	"math"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/pspoerri/rusterize/geom"
	"github.com/pspoerri/rusterize/output"
	"github.com/pspoerri/rusterize/raster"
	"github.com/pspoerri/rusterize/rusterr"
	"github.com/pspoerri/rusterize/table"
)

// Config holds everything needed to rasterize a set of geometries. Zero
// values mean "derive from the geometries or use a sensible default" where
// noted per field.
type Config struct {
	// Descriptor describes the target pixel grid. Leave Xmin/Xmax/Ymin/Ymax
	// all zero to derive the extent from the geometries' combined bounding
	// box instead.
	Descriptor raster.RawDescriptor

	// Reducer names the pixel aggregation function: sum, first, last, min,
	// max, count, or any.
	Reducer string

	// Table, Field, and By resolve per-geometry burn values and an
	// optional grouping key, following table.Resolve's four cases. Table
	// may be nil, in which case every geometry burns BurnValue.
	Table table.Table
	Field string
	By    string

	BurnValue  float64
	Background float64

	// AllTouched selects the all-touched line/polygon-perimeter burn
	// strategy (every pixel a boundary crosses) instead of the standard
	// single-pixel-wide Bresenham strategy.
	AllTouched bool

	// Encoding selects "dense" (a fully materialized buffer) or "sparse"
	// (a coordinate list, materialized on demand). Defaults to "dense".
	Encoding string

	// Concurrency caps how many bands are rasterized in parallel. Zero
	// means runtime.NumCPU().
	Concurrency int

	Verbose bool
}

// Result holds whichever output encoding was requested; exactly one of
// Dense or Sparse is non-nil.
type Result[T raster.Numeric] struct {
	Dense  *output.DenseArray[T]
	Sparse *output.SparseArray[T]
}

// Rusterize rasterizes geoms according to cfg. T fixes the pixel element
// type for this call; callers pick one of the ten supported numeric types
// the same way the conceptual dtype dispatch in SPEC_FULL.md describes.
func Rusterize[T raster.Numeric](geoms []geom.Geometry, cfg Config) (Result[T], error) {
	reducer, err := raster.NewReducer[T](cfg.Reducer)
	if err != nil {
		return Result[T]{}, err
	}

	kept := filterSupported(geoms, cfg.Verbose)
	if len(kept) == 0 {
		return Result[T]{}, rusterr.Fatal("no supported geometries to rasterize (got %d input geometries)", len(geoms))
	}

	rawDescriptor := cfg.Descriptor
	if rawDescriptor.Xmin == 0 && rawDescriptor.Xmax == 0 && rawDescriptor.Ymin == 0 && rawDescriptor.Ymax == 0 {
		rect, ok := geom.Bounds(kept)
		if !ok {
			return Result[T]{}, rusterr.Fatal("cannot derive an extent: no geometry has a bounding box")
		}
		rawDescriptor.Xmin, rawDescriptor.Ymin = rect.MinX, rect.MinY
		rawDescriptor.Xmax, rawDescriptor.Ymax = rect.MaxX, rect.MaxY
		rawDescriptor.HasExtent = false
	}

	descriptor, err := raster.FromRaw(rawDescriptor)
	if err != nil {
		return Result[T]{}, err
	}

	resolved, err := table.Resolve(cfg.Table, cfg.Field, cfg.By, cfg.BurnValue, len(kept))
	if err != nil {
		return Result[T]{}, err
	}
	if len(resolved.Field) != len(kept) {
		return Result[T]{}, rusterr.Invalid("table has %d rows but %d geometries were supplied", len(resolved.Field), len(kept))
	}

	strategy := raster.Standard
	if cfg.AllTouched {
		strategy = raster.AllTouched
	}

	groups := groupIndices(resolved.By, len(kept))

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	background := T(cfg.Background)

	switch cfg.Encoding {
	case "", "dense":
		return rasterizeDense(kept, descriptor, reducer, resolved, groups, strategy, background, concurrency, cfg.Verbose)
	case "sparse":
		return rasterizeSparse(kept, descriptor, reducer, resolved, groups, strategy, background, concurrency, cfg.Verbose)
	default:
		return Result[T]{}, rusterr.Config("unknown output encoding %q (supported: dense, sparse)", cfg.Encoding)
	}
}

func filterSupported(geoms []geom.Geometry, verbose bool) []geom.Geometry {
	kept := make([]geom.Geometry, 0, len(geoms))
	dropped := 0
	for _, g := range geoms {
		if geom.Supported(g) {
			kept = append(kept, g)
		} else {
			dropped++
		}
	}
	if dropped > 0 && verbose {
		log.Printf("dropped %d unsupported geometries out of %d", dropped, len(geoms))
	}
	return kept
}

// group is one output band's worth of input row indices.
type group struct {
	name    string
	indices []int
}

// groupIndices partitions row indices by their "by" key, preserving the
// order each key first appears in (band order is "first seen" order, not
// sorted). A nil by yields a single group named "band_1" covering every
// row.
func groupIndices(by []string, n int) []group {
	if by == nil {
		indices := make([]int, n)
		for i := range indices {
			indices[i] = i
		}
		return []group{{name: "band_1", indices: indices}}
	}

	idxByName := make(map[string]int)
	var groups []group
	for i, key := range by {
		gi, ok := idxByName[key]
		if !ok {
			gi = len(groups)
			idxByName[key] = gi
			groups = append(groups, group{name: key})
		}
		groups[gi].indices = append(groups[gi].indices, i)
	}
	return groups
}

// bandJob is one unit of parallel work: rasterize one band.
type bandJob struct {
	idx   int
	group group
}

// runBandJobs fans bands out to a worker pool, mirroring the job
// channel/WaitGroup/atomic-counter pattern used for parallel tile
// generation: each worker pulls jobs from a channel and reports an error
// through a non-blocking channel so the first failure wins.
func runBandJobs(groups []group, concurrency int, verbose bool, label string, work func(bandJob) error) error {
	jobs := make(chan bandJob, concurrency*2)
	errCh := make(chan error, 1)
	var wg sync.WaitGroup

	var processed atomic.Int64
	var pb *progressBar
	if verbose {
		pb = newProgressBar(label, int64(len(groups)))
	}

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				if err := work(job); err != nil {
					select {
					case errCh <- fmt.Errorf("rasterizing band %q: %w", job.group.name, err):
					default:
					}
					continue
				}
				processed.Add(1)
				if pb != nil {
					pb.Increment()
				}
			}
		}()
	}

	for i, g := range groups {
		jobs <- bandJob{idx: i, group: g}
	}
	close(jobs)
	wg.Wait()
	if pb != nil {
		pb.Finish()
	}

	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}

func rasterizeDense[T raster.Numeric](geoms []geom.Geometry, d raster.Descriptor, reducer raster.Reducer[T], resolved table.Resolved, groups []group, strategy raster.LineBurnStrategy, background T, concurrency int, verbose bool) (Result[T], error) {
	bandNames := make([]string, len(groups))
	for i, g := range groups {
		bandNames[i] = g.name
	}
	dense := output.NewDenseArray[T](bandNames, d, background)

	err := runBandJobs(groups, concurrency, verbose, "rasterize", func(job bandJob) error {
		writer := raster.DenseWriter[T]{Band: dense.Band(job.idx), Ncols: d.Ncols, Reducer: reducer}
		for _, rowIdx := range job.group.indices {
			field := resolved.Field[rowIdx]
			if math.IsNaN(field) {
				continue
			}
			raster.Burn[T](geoms[rowIdx], d, strategy, reducer.NeedsDedup, T(field), background, writer)
		}
		return nil
	})
	if err != nil {
		return Result[T]{}, err
	}

	return Result[T]{Dense: dense}, nil
}

func rasterizeSparse[T raster.Numeric](geoms []geom.Geometry, d raster.Descriptor, reducer raster.Reducer[T], resolved table.Resolved, groups []group, strategy raster.LineBurnStrategy, background T, concurrency int, verbose bool) (Result[T], error) {
	writers := make([]*raster.SparseWriter[T], len(groups))
	for i := range writers {
		writers[i] = &raster.SparseWriter[T]{}
	}

	err := runBandJobs(groups, concurrency, verbose, "rasterize", func(job bandJob) error {
		w := writers[job.idx]
		for _, rowIdx := range job.group.indices {
			field := resolved.Field[rowIdx]
			if math.IsNaN(field) {
				continue
			}
			raster.Burn[T](geoms[rowIdx], d, strategy, reducer.NeedsDedup, T(field), background, w)
		}
		return nil
	})
	if err != nil {
		return Result[T]{}, err
	}

	sparse := &output.SparseArray[T]{
		BandNames:  make([]string, len(groups)),
		Descriptor: d,
		Reducer:    reducer,
		Background: background,
	}
	for i, g := range groups {
		sparse.BandNames[i] = g.name
		w := writers[i]
		sparse.Triplets.Rows = append(sparse.Triplets.Rows, w.Rows...)
		sparse.Triplets.Cols = append(sparse.Triplets.Cols, w.Cols...)
		sparse.Triplets.Data = append(sparse.Triplets.Data, w.Values...)
		sparse.Lengths = append(sparse.Lengths, len(w.Values))
	}

	return Result[T]{Sparse: sparse}, nil
}
