package raster

import "github.com/pspoerri/rusterize/rusterr"

// Reducer aggregates one emitted value into band[y,x], treating the cell's
// current contents as "unset" when it equals background (and, for floating
// types, also when it is NaN).
type Reducer[T Numeric] struct {
	Name string
	// NeedsDedup reports whether this reducer's result depends on how many
	// times a pixel is written — sum and count do, first/last/min/max/any
	// don't. Duplicate-sensitive reducers force a PixelCache to dedupe
	// overlapping line-ends before burning.
	NeedsDedup bool
	apply      func(current, value T, background T, unset bool) T
}

// Apply mutates band[y,x] according to the reducer's rule.
func (r Reducer[T]) Apply(band []T, idx int, value, background T) {
	current := band[idx]
	band[idx] = r.apply(current, value, background, isUnset(current, background))
}

// isUnset reports whether v counts as "not yet written": either it equals
// background, or (for float32/float64 instantiations of T) it is NaN. The
// `v != v` self-comparison is the NaN test; it is always false for integer
// types, so this needs no type switch to cover both cases generically.
func isUnset[T Numeric](v, background T) bool {
	return v == background || v != v
}

// NewReducer resolves a reducer by name. An unknown name is a
// ConfigurationError, per the spec's "unknown reducer name is a fatal
// configuration error" rule, realized here as a normal error rather than a
// panic/fatal process exit.
func NewReducer[T Numeric](name string) (Reducer[T], error) {
	switch name {
	case "sum":
		return Reducer[T]{Name: name, NeedsDedup: true, apply: func(cur, v, _ T, unset bool) T {
			if unset {
				return v
			}
			return cur + v
		}}, nil
	case "first":
		return Reducer[T]{Name: name, NeedsDedup: false, apply: func(cur, v, _ T, unset bool) T {
			if unset {
				return v
			}
			return cur
		}}, nil
	case "last":
		return Reducer[T]{Name: name, NeedsDedup: false, apply: func(_, v, _ T, _ bool) T {
			return v
		}}, nil
	case "min":
		return Reducer[T]{Name: name, NeedsDedup: false, apply: func(cur, v, _ T, unset bool) T {
			if unset || v < cur {
				return v
			}
			return cur
		}}, nil
	case "max":
		return Reducer[T]{Name: name, NeedsDedup: false, apply: func(cur, v, _ T, unset bool) T {
			if unset || v > cur {
				return v
			}
			return cur
		}}, nil
	case "count":
		return Reducer[T]{Name: name, NeedsDedup: true, apply: func(cur, _, _ T, unset bool) T {
			if unset {
				return 1
			}
			return cur + 1
		}}, nil
	case "any":
		return Reducer[T]{Name: name, NeedsDedup: false, apply: func(_, _, _ T, _ bool) T {
			return 1
		}}, nil
	default:
		return Reducer[T]{}, rusterr.Config("unknown pixel reducer %q", name)
	}
}
