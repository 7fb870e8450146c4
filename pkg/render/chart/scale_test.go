package chart

import (
	"reflect"
	"testing"
)

func TestLinearTicks(t *testing.T) {
	tests := []struct {
		name     string
		max      float64
		wantStep float64
		wantLen  int
		wantLast float64
	}{
		{"small integers", 8, 1, 9, 8},
		{"hundred", 100, 10, 11, 100},
		{"uneven", 437, 50, 9, 400},
		{"fractional", 3, 0.2, 16, 3},
		{"large", 12345, 1000, 13, 12000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticks, step := Linear{Max: tt.max, Range: 100}.Ticks(10)
			if step != tt.wantStep {
				t.Errorf("step = %v, want %v", step, tt.wantStep)
			}
			if len(ticks) != tt.wantLen {
				t.Fatalf("len(ticks) = %d, want %d: %v", len(ticks), tt.wantLen, ticks)
			}
			if ticks[0] != 0 {
				t.Errorf("first tick = %v, want 0", ticks[0])
			}
			if diff := ticks[len(ticks)-1] - tt.wantLast; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("last tick = %v, want %v", ticks[len(ticks)-1], tt.wantLast)
			}
		})
	}
}

func TestLinearDegenerate(t *testing.T) {
	s := Linear{Max: 0, Range: 500}
	if got := s.Scale(10); got != 0 {
		t.Errorf("Scale() with zero domain = %v, want 0", got)
	}
	if ticks, _ := s.Ticks(10); ticks != nil {
		t.Errorf("Ticks() with zero domain = %v, want none", ticks)
	}
}

func TestLinearScale(t *testing.T) {
	s := Linear{Max: 8, Range: 696}
	if got := s.Scale(8); got != 696 {
		t.Errorf("Scale(max) = %v, want 696", got)
	}
	if got := s.Scale(4); got != 348 {
		t.Errorf("Scale(4) = %v, want 348", got)
	}
}

func TestFormatTick(t *testing.T) {
	tests := []struct {
		v, step float64
		want    string
	}{
		{0, 1, "0"},
		{8, 1, "8"},
		{1000, 100, "1,000"},
		{12000, 1000, "12,000"},
		{0.5, 0.5, "0.5"},
		{0.4, 0.2, "0.4"},
		{0.05, 0.05, "0.05"},
	}
	for _, tt := range tests {
		if got := FormatTick(tt.v, tt.step); got != tt.want {
			t.Errorf("FormatTick(%v, %v) = %q, want %q", tt.v, tt.step, got, tt.want)
		}
	}
}

func TestNewBand(t *testing.T) {
	b := NewBand(2, 64, 0.1)
	want := Band{Start: 4, Step: 30, Width: 27}
	if !reflect.DeepEqual(b, want) {
		t.Fatalf("NewBand() = %+v, want %+v", b, want)
	}
	if got := b.Position(1); got != 34 {
		t.Errorf("Position(1) = %v, want 34", got)
	}

	if got := NewBand(0, 64, 0.1); got != (Band{}) {
		t.Errorf("NewBand(0) = %+v, want zero", got)
	}
	if got := NewBand(3, 0, 0.1); got != (Band{}) {
		t.Errorf("NewBand with no extent = %+v, want zero", got)
	}
}

func TestNewBandFitsExtent(t *testing.T) {
	for n := 1; n <= 60; n++ {
		extent := 50*float64(n) - 36
		b := NewBand(n, extent, 0.1)
		end := b.Position(n-1) + b.Width
		if b.Start < 0 || end > extent {
			t.Fatalf("n=%d: bands span [%v, %v], extent %v", n, b.Start, end, extent)
		}
		if b.Width > b.Step {
			t.Fatalf("n=%d: band width %v exceeds step %v", n, b.Width, b.Step)
		}
	}
}
