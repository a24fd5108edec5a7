// Package scoring implements the score-assignment policies behind the three
// ranking modes.
//
// The three modes share the placement contract but differ in how scores are
// validated and defaulted:
//   - Tier: fixed discrete buckets (S=6 .. F=1), assigned wholesale on drop
//   - Free: any non-negative value, typed in directly
//   - Slider: continuous [1,100] with neighbor-midpoint insertion
//
// A Policy is selected once per session and never mixed mid-session.
package scoring

import (
	"fmt"
	"math"
)

// Mode identifies a ranking mode.
type Mode string

const (
	ModeTier   Mode = "tier"
	ModeFree   Mode = "free"
	ModeSlider Mode = "slider"
)

// Slider bounds. Scores are kept to two decimal places.
const (
	SliderMin = 1.0
	SliderMax = 100.0
)

// Policy validates and defaults scores for one ranking mode.
type Policy interface {
	// Mode returns the mode this policy implements.
	Mode() Mode

	// Validate reports whether score is acceptable for this mode.
	Validate(score float64) bool

	// DefaultScore computes the score for an item placed without an
	// explicit value, given the scores currently placed. ok is false when
	// the mode has no default and the item stays unscored (tier mode:
	// nothing until the item is dropped into a specific tier).
	DefaultScore(existing []float64) (score float64, ok bool)
}

// ForMode returns the policy for mode.
func ForMode(mode Mode) (Policy, error) {
	switch mode {
	case ModeTier:
		return TierPolicy{}, nil
	case ModeFree:
		return FreePolicy{}, nil
	case ModeSlider:
		return SliderPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown ranking mode %q", mode)
	}
}

// TierPolicy scores items into the six fixed tier buckets.
type TierPolicy struct{}

func (TierPolicy) Mode() Mode { return ModeTier }

func (TierPolicy) Validate(score float64) bool {
	_, ok := TierForScore(score)
	return ok
}

// DefaultScore returns no default: a tier item has no score until it lands
// in a specific tier bucket.
func (TierPolicy) DefaultScore([]float64) (float64, bool) {
	return 0, false
}

// FreePolicy accepts any non-negative score typed in by the user.
type FreePolicy struct{}

func (FreePolicy) Mode() Mode { return ModeFree }

func (FreePolicy) Validate(score float64) bool {
	return score >= 0
}

func (FreePolicy) DefaultScore([]float64) (float64, bool) {
	return 0, true
}

// SliderPolicy scores items on a continuous 1-100 scale. New items are slotted
// between neighbors by midpoint so the relative order is preserved without
// renumbering anything else.
type SliderPolicy struct{}

func (SliderPolicy) Mode() Mode { return ModeSlider }

func (SliderPolicy) Validate(score float64) bool {
	return score >= SliderMin && score <= SliderMax
}

// DefaultScore appends at the bottom of the current order: the midpoint of
// the scale floor and the lowest placed score, or the floor itself when
// nothing is placed yet.
func (SliderPolicy) DefaultScore(existing []float64) (float64, bool) {
	lo := SliderMax
	for _, s := range existing {
		if s < lo {
			lo = s
		}
	}
	if len(existing) == 0 {
		lo = SliderMin
	}
	return Midpoint(SliderMin, lo), true
}

// Midpoint returns the midpoint of two scores rounded to two decimals.
func Midpoint(a, b float64) float64 {
	return Round2((a + b) / 2)
}

// Round2 rounds to the nearest 0.01.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
