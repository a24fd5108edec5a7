package scoring

import (
	"math"
	"testing"
)

func TestForMode(t *testing.T) {
	for _, mode := range []Mode{ModeTier, ModeFree, ModeSlider} {
		p, err := ForMode(mode)
		if err != nil {
			t.Fatalf("ForMode(%s): %v", mode, err)
		}
		if p.Mode() != mode {
			t.Errorf("ForMode(%s) returned policy for %s", mode, p.Mode())
		}
	}

	if _, err := ForMode("bogus"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestTierPolicy_Validate(t *testing.T) {
	p := TierPolicy{}

	for _, tier := range Tiers {
		if !p.Validate(tier.Score) {
			t.Errorf("tier score %v should validate", tier.Score)
		}
	}

	for _, score := range []float64{0, 7, 3.5, -1, 100} {
		if p.Validate(score) {
			t.Errorf("score %v should not validate in tier mode", score)
		}
	}
}

func TestTierPolicy_NoDefault(t *testing.T) {
	if _, ok := (TierPolicy{}).DefaultScore(nil); ok {
		t.Error("tier mode should have no default score")
	}
}

func TestFreePolicy(t *testing.T) {
	p := FreePolicy{}

	if !p.Validate(0) || !p.Validate(9000.5) {
		t.Error("free mode should accept any non-negative score")
	}
	if p.Validate(-0.01) {
		t.Error("free mode should reject negative scores")
	}

	def, ok := p.DefaultScore(nil)
	if !ok || def != 0 {
		t.Errorf("free default = %v, %v; want 0, true", def, ok)
	}
}

func TestSliderPolicy_Validate(t *testing.T) {
	p := SliderPolicy{}

	cases := []struct {
		score float64
		want  bool
	}{
		{1, true},
		{100, true},
		{50.55, true},
		{0.99, false},
		{100.01, false},
		{-5, false},
	}
	for _, tc := range cases {
		if got := p.Validate(tc.score); got != tc.want {
			t.Errorf("Validate(%v) = %v, want %v", tc.score, got, tc.want)
		}
	}
}

func TestSliderPolicy_DefaultScore(t *testing.T) {
	p := SliderPolicy{}

	// First placement: midpoint of the floor with itself.
	def, ok := p.DefaultScore(nil)
	if !ok || def != 1.00 {
		t.Errorf("first default = %v, %v; want 1.00, true", def, ok)
	}

	// Appends below the current minimum.
	def, _ = p.DefaultScore([]float64{80, 50, 20})
	if def != 10.50 {
		t.Errorf("bottom append = %v, want 10.50", def)
	}
}

func TestMidpoint(t *testing.T) {
	if got := Midpoint(80, 50); got != 65.00 {
		t.Errorf("Midpoint(80, 50) = %v, want 65.00", got)
	}
	if got := Midpoint(SliderMax, 80); got != 90.00 {
		t.Errorf("Midpoint(100, 80) = %v, want 90.00", got)
	}
	if got := Midpoint(10.01, 10.02); got != 10.02 {
		t.Errorf("Midpoint(10.01, 10.02) = %v, want 10.02", got)
	}
}

func TestRound2(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{10.005, 10.01},
		{10.004, 10.0},
		{65, 65},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestTierTable(t *testing.T) {
	if len(Tiers) != 6 {
		t.Fatalf("expected 6 tiers, got %d", len(Tiers))
	}
	if Tiers[0].Label != "S" || Tiers[0].Score != 6 {
		t.Errorf("best tier = %+v, want S/6", Tiers[0])
	}
	if Tiers[5].Label != "F" || Tiers[5].Score != 1 {
		t.Errorf("worst tier = %+v, want F/1", Tiers[5])
	}

	tier, ok := TierForScore(3)
	if !ok || tier.Label != "C" {
		t.Errorf("TierForScore(3) = %+v, %v; want C", tier, ok)
	}
	if _, ok := TierForScore(3.5); ok {
		t.Error("TierForScore(3.5) should not match")
	}

	tier, ok = TierForLabel("A")
	if !ok || tier.Score != 5 {
		t.Errorf("TierForLabel(A) = %+v, %v; want score 5", tier, ok)
	}
}
