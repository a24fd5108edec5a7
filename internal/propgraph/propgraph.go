// Package propgraph lowers the typed knowledge graph into a protocol-neutral
// property graph: entities become {id, properties}, relations become
// {id, from, to, properties}. Typed fields are flattened into open property
// maps and internal-only fields (the display glyph) are dropped.
package propgraph

import (
	"github.com/nvandessel/rankforge/internal/graph"
)

// Property keys used in the flattened maps.
const (
	PropName     = "name"
	PropRankType = "rank_type"
	PropScore    = "score"
)

// Entity is a generic graph node: an id plus an open property map.
type Entity struct {
	ID         string         `json:"id"`
	Properties map[string]any `json:"properties"`
}

// Relation is a generic directed edge carrying properties.
type Relation struct {
	ID         string         `json:"id"`
	From       string         `json:"from"`
	To         string         `json:"to"`
	Properties map[string]any `json:"properties"`
}

// Graph is the protocol-neutral projection of a knowledge graph. This is
// also the property-graph file format.
type Graph struct {
	Entities  []Entity   `json:"entities"`
	Relations []Relation `json:"relations"`
}

// FromKnowledgeGraph converts a typed knowledge graph to a property graph.
// The conversion is total and pure: it never fails for a well-formed graph.
// Dispatch is on the entity kind; an unknown kind projects to empty
// properties rather than failing.
func FromKnowledgeGraph(g graph.KnowledgeGraph) Graph {
	out := Graph{
		Entities:  make([]Entity, 0, len(g.Entities)),
		Relations: make([]Relation, 0, len(g.Relations)),
	}

	for _, e := range g.Entities {
		props := map[string]any{}
		switch e.Kind {
		case graph.EntityKindRankList:
			props[PropName] = e.Name
			props[PropRankType] = e.RankType
		case graph.EntityKindItem:
			// Glyph is presentation-only and intentionally dropped.
			props[PropName] = e.Name
		}
		out.Entities = append(out.Entities, Entity{ID: e.ID, Properties: props})
	}

	for _, r := range g.Relations {
		out.Relations = append(out.Relations, Relation{
			ID:   r.ID,
			From: r.From,
			To:   r.To,
			Properties: map[string]any{
				PropScore: r.Score,
			},
		})
	}

	return out
}

// RankListEntity returns the entity carrying the weighted-rank tag, if any.
func (g Graph) RankListEntity() (Entity, bool) {
	for _, e := range g.Entities {
		if e.Properties[PropRankType] == graph.RankTypeWeighted {
			return e, true
		}
	}
	return Entity{}, false
}

// EntityName returns the name property of the entity with the given id.
func (g Graph) EntityName(id string) (string, bool) {
	for _, e := range g.Entities {
		if e.ID == id {
			name, ok := e.Properties[PropName].(string)
			return name, ok
		}
	}
	return "", false
}
