// Package graph defines the typed knowledge-graph snapshot and the builder
// that projects placement state into it. Graphs are never mutated in place,
// only rebuilt; relation ids are fresh on every build, so callers must not
// rely on relation-id stability across rebuilds.
package graph

import (
	"github.com/google/uuid"

	"github.com/nvandessel/rankforge/internal/catalog"
)

// RankTypeWeighted tags a rank list as a weighted ranking.
const RankTypeWeighted = "weighted_rank"

// EntityKind discriminates the entity union. The converter dispatches on
// this, not on which fields happen to be set.
type EntityKind string

const (
	EntityKindRankList EntityKind = "rank_list"
	EntityKindItem     EntityKind = "item"
)

// RankList is the ranking container entity: one per session.
type RankList struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	RankType string `json:"rank_type"`
}

// Entity is one node of the knowledge graph, either the rank list or an
// item. RankType is set only for rank lists, Glyph only for items.
type Entity struct {
	Kind     EntityKind `json:"kind"`
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	RankType string     `json:"rank_type,omitempty"`
	Glyph    string     `json:"glyph,omitempty"`
}

// Relation links the rank list to one placed item, carrying the score.
type Relation struct {
	ID    string  `json:"id"`
	From  string  `json:"from"`
	To    string  `json:"to"`
	Score float64 `json:"score"`
}

// KnowledgeGraph is the typed internal snapshot: the rank list plus every
// catalog item (placed or not) as entities, and one relation per scored
// placement.
type KnowledgeGraph struct {
	Entities  []Entity   `json:"entities"`
	Relations []Relation `json:"relations"`
}

// NewRankList creates the rank-list record for a session.
func NewRankList(id, name string) RankList {
	return RankList{ID: id, Name: name, RankType: RankTypeWeighted}
}

// Build projects placement state into a knowledge graph. Entities are the
// rank list followed by every item in catalog order; relations cover exactly
// the items with a defined score (blank placements are excluded). The result
// is deterministic for identical inputs except for relation ids, which are
// generated fresh per call.
func Build(list RankList, items []catalog.Item, scores map[string]float64) KnowledgeGraph {
	g := KnowledgeGraph{
		Entities: make([]Entity, 0, len(items)+1),
	}

	g.Entities = append(g.Entities, Entity{
		Kind:     EntityKindRankList,
		ID:       list.ID,
		Name:     list.Name,
		RankType: list.RankType,
	})

	for _, it := range items {
		g.Entities = append(g.Entities, Entity{
			Kind:  EntityKindItem,
			ID:    it.ID,
			Name:  it.Name,
			Glyph: it.Glyph,
		})

		score, ok := scores[it.ID]
		if !ok {
			continue
		}
		g.Relations = append(g.Relations, Relation{
			ID:    uuid.NewString(),
			From:  list.ID,
			To:    it.ID,
			Score: score,
		})
	}

	return g
}
