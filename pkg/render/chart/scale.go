package chart

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Linear maps values in [0, Max] onto [0, Range].
type Linear struct {
	Max   float64
	Range float64
}

// Scale returns the position of v. A zero domain maps everything to 0.
func (s Linear) Scale(v float64) float64 {
	if s.Max <= 0 {
		return 0
	}
	return v / s.Max * s.Range
}

// Ticks returns about count round values between 0 and Max inclusive,
// spaced by 1, 2 or 5 times a power of ten, and the spacing used.
func (s Linear) Ticks(count int) ([]float64, float64) {
	if s.Max <= 0 || count <= 0 || math.IsInf(s.Max, 0) || math.IsNaN(s.Max) {
		return nil, 0
	}
	step := tickStep(s.Max, count)
	n := int(math.Floor(s.Max/step + 1e-9))

	ticks := make([]float64, n+1)
	for i := range ticks {
		ticks[i] = float64(i) * step
	}
	return ticks, step
}

func tickStep(span float64, count int) float64 {
	raw := span / float64(count)
	step := math.Pow10(int(math.Floor(math.Log10(raw))))
	switch ratio := raw / step; {
	case ratio >= math.Sqrt(50):
		step *= 10
	case ratio >= math.Sqrt(10):
		step *= 5
	case ratio >= math.Sqrt2:
		step *= 2
	}
	return step
}

var tickPrinter = message.NewPrinter(language.English)

// FormatTick renders a tick value with thousands separators and as many
// decimals as step needs.
func FormatTick(v, step float64) string {
	decimals := 0
	if step > 0 {
		decimals = max(0, int(-math.Floor(math.Log10(step)+0.01)))
	}
	return tickPrinter.Sprintf("%.*f", decimals, v)
}

// Band divides an extent into equal bands. Bands are separated by a gap of
// padding times the step, and the same gap is left before the first and
// after the last band. Step and band width are rounded to whole pixels and
// the bands are centred in the leftover space.
type Band struct {
	Start float64
	Step  float64
	Width float64
}

// NewBand computes a rounded band scale for n items over [0, extent].
func NewBand(n int, extent, padding float64) Band {
	if n <= 0 || extent <= 0 {
		return Band{}
	}
	step := math.Floor(extent / (float64(n) + padding))
	leftover := extent - (float64(n)-padding)*step
	return Band{
		Start: math.Round(leftover / 2),
		Step:  step,
		Width: math.Round(step * (1 - padding)),
	}
}

// Position returns the start of band i.
func (b Band) Position(i int) float64 {
	return b.Start + float64(i)*b.Step
}
