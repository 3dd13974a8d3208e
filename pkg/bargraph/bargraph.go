// Package bargraph decides which LED slots are lit for a distance reading.
//
// The strip behaves as a proximity bar: nothing is lit while the target is
// farther than the threshold, and the bar grows toward full length as the
// target approaches NearLimit. Slots are colored by fixed position bands.
package bargraph

import (
	"image/color"

	"github.com/tuffrabit/tinygo-rangebar-rp2040/pkg/ranging"
)

// NearLimit is the distance in cm at which the bar is full.
const NearLimit = 5

// State is the per-iteration display state of the bar.
type State uint8

const (
	StateOff State = iota
	StateOn
)

func (s State) String() string {
	switch s {
	case StateOff:
		return "OFF"
	case StateOn:
		return "ON"
	default:
		return "?"
	}
}

// Band colors
var (
	Unlit  = color.RGBA{0, 0, 0, 0}
	Green  = color.RGBA{0, 128, 0, 255}
	Orange = color.RGBA{255, 165, 0, 255}
	Red    = color.RGBA{255, 0, 0, 255}
)

// Band is a contiguous range of slot indices [Start, End) sharing one color.
type Band struct {
	Start int
	End   int
	Color color.RGBA
}

// DefaultBands colors the first 4 slots green, the next 5 orange and the
// rest red. The last band is open ended and stops at the strip length.
var DefaultBands = []Band{
	{Start: 0, End: 4, Color: Green},
	{Start: 4, End: 9, Color: Orange},
	{Start: 9, End: 1 << 15, Color: Red},
}

// Pattern is the result of one Compute call. Slots aliases the buffer passed
// to Compute.
type Pattern struct {
	State State
	Lit   int
	Slots []color.RGBA
}

// StateFor returns StateOn when distance is at or under threshold.
func StateFor(distance, threshold int) State {
	if distance > threshold {
		return StateOff
	}
	return StateOn
}

// LitCount returns how many of n slots are lit.
//
// With threshold <= NearLimit the linear map has no usable range (its input
// span threshold-NearLimit is zero or negative) and the bar stays dark.
// This is what map+constrain yields on the sketch for every such reading.
func LitCount(distance, threshold, n int) int {
	if n <= 0 || StateFor(distance, threshold) == StateOff {
		return 0
	}
	if threshold <= NearLimit {
		return 0
	}
	lit := ranging.Map(distance, threshold, NearLimit, 0, n)
	return ranging.Constrain(lit, 0, n)
}

// ColorAt returns the band color for slot i, or Unlit if no band covers it.
func ColorAt(bands []Band, i int) color.RGBA {
	for _, b := range bands {
		if i >= b.Start && i < b.End {
			return b.Color
		}
	}
	return Unlit
}

// Compute repaints slots for the given reading. Every slot is cleared first,
// then the lit prefix is colored by band. It does not allocate.
func Compute(distance, threshold int, slots []color.RGBA, bands []Band) Pattern {
	for i := range slots {
		slots[i] = Unlit
	}

	p := Pattern{
		State: StateFor(distance, threshold),
		Slots: slots,
	}
	p.Lit = LitCount(distance, threshold, len(slots))

	for i := 0; i < p.Lit; i++ {
		slots[i] = ColorAt(bands, i)
	}
	return p
}
