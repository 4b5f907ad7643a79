// Package table defines the minimal attribute-table abstraction the
// rasterization core reads burn values and grouping keys from. Building a
// Table from a CSV, Arrow, or database result is the caller's job; this
// package only specifies what the core needs to read from one.
package table

import "github.com/pspoerri/rusterize/rusterr"

// Table is a column-oriented attribute table, keyed by column name. All
// columns share the same row count.
type Table interface {
	// NumRows returns the number of rows in the table.
	NumRows() int
	// Float returns the named column as float64 values, or ok=false if no
	// such column exists or it cannot be read as float64.
	Float(name string) (values []float64, ok bool)
	// String returns the named column as strings, or ok=false if no such
	// column exists.
	String(name string) (values []string, ok bool)
}

// SliceTable is an in-memory Table backed by plain slices.
type SliceTable struct {
	Rows    int
	Floats  map[string][]float64
	Strings map[string][]string
}

// NumRows implements Table.
func (t SliceTable) NumRows() int { return t.Rows }

// Float implements Table.
func (t SliceTable) Float(name string) ([]float64, bool) {
	v, ok := t.Floats[name]
	return v, ok
}

// String implements Table.
func (t SliceTable) String(name string) ([]string, bool) {
	v, ok := t.Strings[name]
	return v, ok
}

// Resolved holds the per-geometry burn values and (optional) grouping keys
// produced by Resolve, ready for the rasterization core to consume.
type Resolved struct {
	// Field holds one burn value per row. A NaN entry is a null field
	// value; the driver skips that row's geometry silently rather than
	// treating it as an error.
	Field []float64
	// By holds one grouping key per row, or is nil when no by column was
	// requested.
	By []string
}

// Resolve reconciles a table (which may be nil), a field column name, and a
// by column name into per-row burn values and grouping keys, following the
// same four cases as the dataframe-casting step this is grounded on:
//
//  1. no table: every row gets the constant burnValue, n rows.
//  2. field and by both given: field cast to float64, by cast to string;
//     the same column may be used for both.
//  3. field only: by is nil.
//  4. by only: every row gets the constant burnValue as its field.
//
// n is the row count to use when tbl is nil; otherwise tbl.NumRows() is
// authoritative and n is ignored.
func Resolve(tbl Table, field, by string, burnValue float64, n int) (Resolved, error) {
	if tbl == nil {
		if field != "" || by != "" {
			return Resolved{}, rusterr.Config("field %q or by %q requested but no table was supplied", field, by)
		}
		values := make([]float64, n)
		for i := range values {
			values[i] = burnValue
		}
		return Resolved{Field: values}, nil
	}

	rows := tbl.NumRows()

	switch {
	case field != "" && by != "":
		fv, ok := tbl.Float(field)
		if !ok {
			return Resolved{}, rusterr.Config("field column %q not found or not numeric", field)
		}
		if len(fv) != rows {
			return Resolved{}, rusterr.Invalid("field column %q has %d rows, table has %d", field, len(fv), rows)
		}
		bv, ok := tbl.String(by)
		if !ok {
			return Resolved{}, rusterr.Config("by column %q not found", by)
		}
		if len(bv) != rows {
			return Resolved{}, rusterr.Invalid("by column %q has %d rows, table has %d", by, len(bv), rows)
		}
		return Resolved{Field: fv, By: bv}, nil

	case field != "":
		fv, ok := tbl.Float(field)
		if !ok {
			return Resolved{}, rusterr.Config("field column %q not found or not numeric", field)
		}
		if len(fv) != rows {
			return Resolved{}, rusterr.Invalid("field column %q has %d rows, table has %d", field, len(fv), rows)
		}
		return Resolved{Field: fv}, nil

	case by != "":
		bv, ok := tbl.String(by)
		if !ok {
			return Resolved{}, rusterr.Config("by column %q not found", by)
		}
		if len(bv) != rows {
			return Resolved{}, rusterr.Invalid("by column %q has %d rows, table has %d", by, len(bv), rows)
		}
		values := make([]float64, rows)
		for i := range values {
			values[i] = burnValue
		}
		return Resolved{Field: values, By: bv}, nil

	default:
		return Resolved{}, rusterr.Config("a table was supplied but neither field nor by was specified")
	}
}
