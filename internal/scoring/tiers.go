package scoring

// Tier is one fixed score bucket. Color is presentation metadata consumed by
// display surfaces only.
type Tier struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
	Color string  `json:"color"`
}

// Tiers lists the fixed buckets best-first. Order matters: display surfaces
// render the board in this order.
var Tiers = []Tier{
	{Label: "S", Score: 6, Color: "#ff7f7e"},
	{Label: "A", Score: 5, Color: "#ffbf7f"},
	{Label: "B", Score: 4, Color: "#ffdf80"},
	{Label: "C", Score: 3, Color: "#fdff7f"},
	{Label: "D", Score: 2, Color: "#beff7f"},
	{Label: "F", Score: 1, Color: "#7eff80"},
}

// TierForScore returns the tier whose score matches exactly.
func TierForScore(score float64) (Tier, bool) {
	for _, t := range Tiers {
		if t.Score == score {
			return t, true
		}
	}
	return Tier{}, false
}

// TierForLabel returns the tier with the given label.
func TierForLabel(label string) (Tier, bool) {
	for _, t := range Tiers {
		if t.Label == label {
			return t, true
		}
	}
	return Tier{}, false
}
