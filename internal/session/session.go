// Package session holds the mutable ranking state for one ranking session:
// which catalog items are placed and what score each carries. The placement
// map is the source of truth; graphs are projections rebuilt from it on
// demand.
//
// All mutations funnel through the mode's scoring policy. Out-of-range values
// are rejected silently: the prior valid state is retained and nothing
// surfaces to the caller.
package session

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/nvandessel/rankforge/internal/catalog"
	"github.com/nvandessel/rankforge/internal/scoring"
)

// Placement is a snapshot of one item's state. Placed with a nil Score is
// free mode's blank transient state: the item is on the board but excluded
// from relation generation until a value is typed in.
type Placement struct {
	Placed bool
	Score  *float64
}

type placement struct {
	score *float64
	seq   int // placement order, used as the tie-break for stable sorting
}

// Session is the state store for one ranking session. It is created when a
// category and mode are chosen and discarded on navigation back; the id is
// generated once at construction.
type Session struct {
	mu sync.Mutex

	id       string
	name     string
	category catalog.Category
	policy   scoring.Policy

	placements map[string]*placement
	order      []string // scored item ids, descending by score
	nextSeq    int

	// adjusting freezes the display order while a continuous interaction
	// (slider drag) is underway, so the list doesn't thrash mid-drag.
	adjusting bool
}

// New creates a session for the given category and mode. The session name
// defaults to the category name.
func New(cat catalog.Category, mode scoring.Mode) (*Session, error) {
	policy, err := scoring.ForMode(mode)
	if err != nil {
		return nil, err
	}
	return &Session{
		id:         uuid.NewString(),
		name:       cat.Name,
		category:   cat,
		policy:     policy,
		placements: make(map[string]*placement),
	}, nil
}

// ID returns the session's rank-list identifier.
func (s *Session) ID() string { return s.id }

// Name returns the session's rank-list name.
func (s *Session) Name() string { return s.name }

// Mode returns the active ranking mode.
func (s *Session) Mode() scoring.Mode { return s.policy.Mode() }

// Category returns the catalog category being ranked.
func (s *Session) Category() catalog.Category { return s.category }

// Place marks an item as placed, assigning the policy default score when the
// item had none. Already-placed items are left untouched: Place never
// overwrites an existing score.
func (s *Session) Place(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.category.Item(itemID); !ok {
		return
	}
	if _, ok := s.placements[itemID]; ok {
		return
	}

	p := &placement{seq: s.nextSeq}
	s.nextSeq++
	if def, ok := s.policy.DefaultScore(s.scoredLocked()); ok {
		p.score = &def
	}
	s.placements[itemID] = p
	s.resortLocked()
}

// PlaceAt places an item at the slot currently occupied by targetID,
// slotting it between the target and the item preceding the target in the
// display order (drop-on-item semantics, slider mode). Dropping an item onto
// its own slot, or onto the slot immediately after itself, changes nothing.
// Outside slider mode, or when the target isn't scored, this falls back to a
// plain Place.
func (s *Session) PlaceAt(itemID, targetID string) {
	if s.Mode() != scoring.ModeSlider {
		s.Place(itemID)
		return
	}

	s.mu.Lock()

	if _, ok := s.category.Item(itemID); !ok {
		s.mu.Unlock()
		return
	}
	target, ok := s.placements[targetID]
	if !ok || target.score == nil || itemID == targetID {
		s.mu.Unlock()
		s.Place(itemID)
		return
	}

	idx := s.orderIndexLocked(targetID)
	if idx > 0 && s.order[idx-1] == itemID {
		// Already directly above the target; the drop is a no-op.
		s.mu.Unlock()
		return
	}

	above := scoring.SliderMax
	if idx > 0 {
		above = *s.placements[s.order[idx-1]].score
	}
	score := scoring.Midpoint(above, *target.score)

	p, ok := s.placements[itemID]
	if !ok {
		p = &placement{seq: s.nextSeq}
		s.nextSeq++
		s.placements[itemID] = p
	}
	p.score = &score
	s.resortLocked()
	s.mu.Unlock()
}

// Unplace clears an item's placement and discards its score. Idempotent:
// unplacing an item that was never placed succeeds silently.
func (s *Session) Unplace(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.placements, itemID)
	s.resortLocked()
}

// SetScore overwrites a placed item's score. Values the policy rejects, and
// items that aren't placed, leave the state unchanged.
func (s *Session) SetScore(itemID string, score float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.placements[itemID]
	if !ok || !s.policy.Validate(score) {
		return
	}
	if s.policy.Mode() == scoring.ModeSlider {
		score = scoring.Round2(score)
	}
	p.score = &score
	s.resortLocked()
}

// ClearScore blanks a placed item's score while keeping it placed (free
// mode's in-progress typing state). The item drops out of relation
// generation until a value is set again.
func (s *Session) ClearScore(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.placements[itemID]
	if !ok {
		return
	}
	p.score = nil
	s.resortLocked()
}

// MoveToTier places an item into the tier bucket with the given score,
// replacing any prior tier assignment in one step. An item belongs to at
// most one tier at a time. Scores outside the tier set are rejected
// silently.
func (s *Session) MoveToTier(itemID string, tierScore float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.category.Item(itemID); !ok {
		return
	}
	if !s.policy.Validate(tierScore) {
		return
	}

	p, ok := s.placements[itemID]
	if !ok {
		p = &placement{seq: s.nextSeq}
		s.nextSeq++
		s.placements[itemID] = p
	}
	p.score = &tierScore
	s.resortLocked()
}

// Reset clears every placement. The catalog and the session's rank-list
// identity are untouched.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.placements = make(map[string]*placement)
	s.order = nil
}

// BeginAdjust freezes the display order for the duration of a continuous
// interaction. Score mutations still apply; only the ordering is held.
func (s *Session) BeginAdjust() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adjusting = true
}

// EndAdjust commits a continuous interaction and re-sorts the display order.
func (s *Session) EndAdjust() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adjusting = false
	s.sortLocked()
}

// IsPlaced reports whether the item is on the board (scored or blank).
func (s *Session) IsPlaced(itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.placements[itemID]
	return ok
}

// Score returns the item's score. ok is false for unplaced items and for
// blank placements.
func (s *Session) Score(itemID string) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.placements[itemID]
	if !ok || p.score == nil {
		return 0, false
	}
	return *p.score, true
}

// Placements returns a snapshot of every placement, blank ones included.
func (s *Session) Placements() map[string]Placement {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]Placement, len(s.placements))
	for id, p := range s.placements {
		pl := Placement{Placed: true}
		if p.score != nil {
			v := *p.score
			pl.Score = &v
		}
		out[id] = pl
	}
	return out
}

// Scores returns a snapshot of item id to score for every scored placement.
// Blank placements are excluded.
func (s *Session) Scores() map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]float64, len(s.placements))
	for id, p := range s.placements {
		if p.score != nil {
			out[id] = *p.score
		}
	}
	return out
}

// Order returns the scored items in display order: descending by score,
// frozen while an adjustment is in progress.
func (s *Session) Order() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// PlacedCount returns the number of placed items, blank placements included.
func (s *Session) PlacedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.placements)
}

func (s *Session) scoredLocked() []float64 {
	out := make([]float64, 0, len(s.placements))
	for _, p := range s.placements {
		if p.score != nil {
			out = append(out, *p.score)
		}
	}
	return out
}

func (s *Session) orderIndexLocked(itemID string) int {
	for i, id := range s.order {
		if id == itemID {
			return i
		}
	}
	return -1
}

// resortLocked reconciles the order slice with the placement map. While an
// adjustment is in progress the existing order is kept frozen: removed items
// drop out and new scored items append at the end, but nothing is re-sorted
// until EndAdjust.
func (s *Session) resortLocked() {
	present := make(map[string]bool, len(s.order))
	kept := s.order[:0]
	for _, id := range s.order {
		if p, ok := s.placements[id]; ok && p.score != nil {
			kept = append(kept, id)
			present[id] = true
		}
	}
	s.order = kept
	for id, p := range s.placements {
		if p.score != nil && !present[id] {
			s.order = append(s.order, id)
		}
	}

	if !s.adjusting {
		s.sortLocked()
	}
}

func (s *Session) sortLocked() {
	sort.SliceStable(s.order, func(i, j int) bool {
		a, b := s.placements[s.order[i]], s.placements[s.order[j]]
		if *a.score != *b.score {
			return *a.score > *b.score
		}
		return a.seq < b.seq
	})
}
