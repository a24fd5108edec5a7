// Package sheet loads ranking sheets: YAML files declaring a category, a
// mode, and the user's ranking. A sheet is replayed through the session API
// so every mutation goes through the mode's scoring policy, exactly as a
// sequence of drag-and-drop interactions would.
package sheet

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nvandessel/rankforge/internal/catalog"
	"github.com/nvandessel/rankforge/internal/scoring"
	"github.com/nvandessel/rankforge/internal/session"
)

// Sheet is the on-disk declaration of one ranking.
//
// Exactly one of Tiers, Scores, or Order should be populated, matching Mode.
// Placed lists items put on the board without a score yet (free mode's blank
// state); they stay out of the exported relations.
type Sheet struct {
	Category    string `yaml:"category"`
	Mode        string `yaml:"mode"`
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`

	// Tier mode: tier label -> item ids.
	Tiers map[string][]string `yaml:"tiers,omitempty"`

	// Free mode: item id -> score.
	Scores map[string]float64 `yaml:"scores,omitempty"`
	Placed []string           `yaml:"placed,omitempty"`

	// Slider mode: item ids best-first.
	Order []string `yaml:"order,omitempty"`
}

// Load reads a ranking sheet from a YAML file.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sheet: %w", err)
	}

	var s Sheet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing sheet: %w", err)
	}
	if s.Category == "" {
		return nil, fmt.Errorf("sheet missing category")
	}
	if s.Mode == "" {
		return nil, fmt.Errorf("sheet missing mode")
	}
	return &s, nil
}

// Replay creates a session for the sheet's category and mode and applies the
// sheet's ranking through the session API.
func (s *Sheet) Replay(cats []catalog.Category) (*session.Session, error) {
	cat, ok := catalog.Find(cats, s.Category)
	if !ok {
		return nil, fmt.Errorf("unknown category %q", s.Category)
	}

	sess, err := session.New(cat, scoring.Mode(s.Mode))
	if err != nil {
		return nil, err
	}

	switch sess.Mode() {
	case scoring.ModeTier:
		if err := s.replayTiers(sess); err != nil {
			return nil, err
		}
	case scoring.ModeFree:
		if err := s.replayScores(sess); err != nil {
			return nil, err
		}
	case scoring.ModeSlider:
		if err := s.replayOrder(sess); err != nil {
			return nil, err
		}
	}

	return sess, nil
}

func (s *Sheet) replayTiers(sess *session.Session) error {
	// Walk the fixed tier table rather than the map for deterministic order.
	for _, tier := range scoring.Tiers {
		for _, itemID := range s.Tiers[tier.Label] {
			if _, ok := sess.Category().Item(itemID); !ok {
				return fmt.Errorf("unknown item %q in tier %s", itemID, tier.Label)
			}
			sess.MoveToTier(itemID, tier.Score)
		}
	}
	for label := range s.Tiers {
		if _, ok := scoring.TierForLabel(label); !ok {
			return fmt.Errorf("unknown tier %q", label)
		}
	}
	return nil
}

func (s *Sheet) replayScores(sess *session.Session) error {
	for itemID, score := range s.Scores {
		if _, ok := sess.Category().Item(itemID); !ok {
			return fmt.Errorf("unknown item %q", itemID)
		}
		if score < 0 {
			return fmt.Errorf("item %q: score %v out of range", itemID, score)
		}
		sess.Place(itemID)
		sess.SetScore(itemID, score)
	}
	for _, itemID := range s.Placed {
		if _, ok := sess.Category().Item(itemID); !ok {
			return fmt.Errorf("unknown item %q", itemID)
		}
		if !sess.IsPlaced(itemID) {
			sess.Place(itemID)
			sess.ClearScore(itemID)
		}
	}
	return nil
}

// replayOrder rebuilds a slider ranking from a best-first list: the worst
// item is placed first (landing at the bottom of the scale), then each
// better item is dropped onto the current top slot. Midpoint insertion keeps
// the scores strictly descending in list order.
func (s *Sheet) replayOrder(sess *session.Session) error {
	for _, itemID := range s.Order {
		if _, ok := sess.Category().Item(itemID); !ok {
			return fmt.Errorf("unknown item %q", itemID)
		}
	}
	for i := len(s.Order) - 1; i >= 0; i-- {
		itemID := s.Order[i]
		order := sess.Order()
		if len(order) == 0 {
			sess.Place(itemID)
			continue
		}
		sess.PlaceAt(itemID, order[0])
	}
	return nil
}
