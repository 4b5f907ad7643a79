package raster

import (
	"errors"
	"math"
	"testing"

	"github.com/pspoerri/rusterize/rusterr"
)

func TestReducerSum(t *testing.T) {
	red, err := NewReducer[float64]("sum")
	if err != nil {
		t.Fatal(err)
	}
	if !red.NeedsDedup {
		t.Error("sum should need dedup")
	}
	band := []float64{0, 0}
	red.Apply(band, 0, 2, 0)
	red.Apply(band, 0, 3, 0)
	if band[0] != 5 {
		t.Errorf("sum = %v, want 5", band[0])
	}
}

func TestReducerFirst(t *testing.T) {
	red, err := NewReducer[float64]("first")
	if err != nil {
		t.Fatal(err)
	}
	band := []float64{0}
	red.Apply(band, 0, 7, 0)
	red.Apply(band, 0, 9, 0)
	if band[0] != 7 {
		t.Errorf("first = %v, want 7", band[0])
	}
}

func TestReducerLast(t *testing.T) {
	red, err := NewReducer[float64]("last")
	if err != nil {
		t.Fatal(err)
	}
	band := []float64{0}
	red.Apply(band, 0, 7, 0)
	red.Apply(band, 0, 9, 0)
	if band[0] != 9 {
		t.Errorf("last = %v, want 9", band[0])
	}
}

func TestReducerMinMax(t *testing.T) {
	minRed, _ := NewReducer[float64]("min")
	band := []float64{0}
	minRed.Apply(band, 0, 5, 0)
	minRed.Apply(band, 0, 2, 0)
	minRed.Apply(band, 0, 8, 0)
	if band[0] != 2 {
		t.Errorf("min = %v, want 2", band[0])
	}

	maxRed, _ := NewReducer[float64]("max")
	band2 := []float64{0}
	maxRed.Apply(band2, 0, 5, 0)
	maxRed.Apply(band2, 0, 2, 0)
	maxRed.Apply(band2, 0, 8, 0)
	if band2[0] != 8 {
		t.Errorf("max = %v, want 8", band2[0])
	}
}

func TestReducerCount(t *testing.T) {
	red, err := NewReducer[float64]("count")
	if err != nil {
		t.Fatal(err)
	}
	if !red.NeedsDedup {
		t.Error("count should need dedup")
	}
	band := []float64{0}
	red.Apply(band, 0, 1, 0)
	red.Apply(band, 0, 1, 0)
	red.Apply(band, 0, 1, 0)
	if band[0] != 3 {
		t.Errorf("count = %v, want 3", band[0])
	}
}

func TestReducerAny(t *testing.T) {
	red, err := NewReducer[float64]("any")
	if err != nil {
		t.Fatal(err)
	}
	if red.NeedsDedup {
		t.Error("any should not need dedup")
	}
	band := []float64{0}
	red.Apply(band, 0, 42, 0)
	red.Apply(band, 0, 42, 0)
	if band[0] != 1 {
		t.Errorf("any = %v, want 1", band[0])
	}
}

func TestReducerUnknownName(t *testing.T) {
	_, err := NewReducer[float64]("bogus")
	if !errors.Is(err, rusterr.ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got %v", err)
	}
}

func TestReducerFloat64NaNUnset(t *testing.T) {
	red, err := NewReducer[float64]("sum")
	if err != nil {
		t.Fatal(err)
	}
	band := []float64{math.NaN()}
	red.Apply(band, 0, 4, 0)
	if band[0] != 4 {
		t.Errorf("sum starting from NaN = %v, want 4 (NaN treated as unset)", band[0])
	}
}

func TestReducerIntegerUnsetIsEquality(t *testing.T) {
	red, err := NewReducer[int32]("sum")
	if err != nil {
		t.Fatal(err)
	}
	band := []int32{-1}
	red.Apply(band, 0, 5, -1)
	if band[0] != 5 {
		t.Errorf("sum starting from background -1 = %v, want 5", band[0])
	}
	red.Apply(band, 0, 5, -1)
	if band[0] != 10 {
		t.Errorf("second sum = %v, want 10", band[0])
	}
}
