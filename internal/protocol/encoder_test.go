package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvandessel/rankforge/internal/graph"
	"github.com/nvandessel/rankforge/internal/propgraph"
)

// moviesGraph is a property graph with one rank list named "Movies" and two
// scored relations (6 and 3).
func moviesGraph() propgraph.Graph {
	return propgraph.Graph{
		Entities: []propgraph.Entity{
			{ID: "rl-1", Properties: map[string]any{
				propgraph.PropName:     "Movies",
				propgraph.PropRankType: graph.RankTypeWeighted,
			}},
			{ID: "a", Properties: map[string]any{propgraph.PropName: "Alpha"}},
			{ID: "b", Properties: map[string]any{propgraph.PropName: "Bravo"}},
		},
		Relations: []propgraph.Relation{
			{ID: "r1", From: "rl-1", To: "a", Properties: map[string]any{propgraph.PropScore: 6.0}},
			{ID: "r2", From: "rl-1", To: "b", Properties: map[string]any{propgraph.PropScore: 3.0}},
		},
	}
}

func TestEncode_Summary(t *testing.T) {
	batch, err := NewEncoder(nil).Encode(moviesGraph(), Metadata{})
	require.NoError(t, err)

	assert.Equal(t, 1, batch.Summary.EntityOps)
	assert.Equal(t, 2, batch.Summary.RelationOps)
	assert.Equal(t, 0, batch.Summary.PropertyOps,
		"rank-list properties are all well-known; no definitions needed")
	assert.Equal(t, 3, batch.Summary.Total)
	assert.Len(t, batch.Ops, 3)
}

func TestEncode_BatchName(t *testing.T) {
	batch, err := NewEncoder(nil).Encode(moviesGraph(), Metadata{Title: "Movie night"})
	require.NoError(t, err)
	assert.Equal(t, "Movie night", batch.Name)

	batch, err = NewEncoder(nil).Encode(moviesGraph(), Metadata{})
	require.NoError(t, err)
	assert.Equal(t, "Movies", batch.Name, "empty title falls back to the rank-list name")
}

func TestEncode_OpShapes(t *testing.T) {
	batch, err := NewEncoder(nil).Encode(moviesGraph(), Metadata{})
	require.NoError(t, err)

	entityOp := batch.Ops[0]
	require.Equal(t, OpCreateEntity, entityOp.Type)
	require.NotNil(t, entityOp.Entity)
	assert.NotEmpty(t, entityOp.Entity.ID)
	assert.Len(t, entityOp.Entity.Values, 2, "name and rank_type")
	assert.Contains(t, entityOp.Description, "Movies")

	var protoIDs []string
	for _, op := range batch.Ops[1:] {
		require.Equal(t, OpCreateRelation, op.Type)
		require.NotNil(t, op.Relation)
		assert.Equal(t, entityOp.Entity.ID, op.Relation.From,
			"relation endpoints are remapped to protocol ids")
		assert.NotEmpty(t, op.Relation.Type)
		require.NotNil(t, op.Relation.Value)
		protoIDs = append(protoIDs, op.Relation.ID)
	}
	assert.NotEqual(t, protoIDs[0], protoIDs[1])

	// Score 6 matches tier S; 3 matches tier C.
	assert.Contains(t, batch.Ops[1].Description, `"Alpha" in tier S`)
	assert.Contains(t, batch.Ops[2].Description, `"Bravo" in tier C`)
}

func TestEncode_RawScoreDescription(t *testing.T) {
	g := moviesGraph()
	g.Relations = g.Relations[:1]
	g.Relations[0].Properties[propgraph.PropScore] = 65.5

	batch, err := NewEncoder(nil).Encode(g, Metadata{})
	require.NoError(t, err)
	assert.Contains(t, batch.Ops[1].Description, "at 65.50")
}

func TestEncode_SkipsUnmappedRelation(t *testing.T) {
	g := moviesGraph()
	g.Relations = append(g.Relations, propgraph.Relation{
		ID: "r3", From: "rl-1", To: "ghost",
		Properties: map[string]any{propgraph.PropScore: 1.0},
	})

	batch, err := NewEncoder(nil).Encode(g, Metadata{})
	require.NoError(t, err)
	assert.Equal(t, 2, batch.Summary.RelationOps,
		"relation to an unknown entity is skipped, not counted")
}

func TestEncode_CustomPropertyDefinition(t *testing.T) {
	g := moviesGraph()
	g.Entities[0].Properties["curated"] = true

	batch, err := NewEncoder(nil).Encode(g, Metadata{})
	require.NoError(t, err)

	assert.Equal(t, 1, batch.Summary.PropertyOps)
	require.Equal(t, OpCreateProperty, batch.Ops[0].Type,
		"property definitions precede the entity that uses them")
	assert.Equal(t, "curated", batch.Ops[0].Property.Name)
	assert.Equal(t, DataTypeBoolean, batch.Ops[0].Property.DataType)
}

func TestEncode_NoRankList(t *testing.T) {
	g := propgraph.Graph{
		Entities: []propgraph.Entity{
			{ID: "a", Properties: map[string]any{propgraph.PropName: "Alpha"}},
		},
	}

	batch, err := NewEncoder(nil).Encode(g, Metadata{})
	require.Error(t, err)
	assert.Nil(t, batch, "no partial batch on failure")
}

func TestInferDataType(t *testing.T) {
	cases := []struct {
		in   any
		want DataType
	}{
		{6.0, DataTypeNumber},
		{42, DataTypeNumber},
		{true, DataTypeBoolean},
		{"2024-05-01T12:30:00Z", DataTypeTime},
		{"2024-05-01T12:30", DataTypeTime},
		{"2024-05-01", DataTypeString},
		{"hello", DataTypeString},
		{nil, DataTypeString},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, InferDataType(tc.in), "InferDataType(%v)", tc.in)
	}
}

func TestJob(t *testing.T) {
	job := NewEncoder(nil).Start(moviesGraph(), Metadata{Title: "Async"})

	batch, err := job.Wait()
	require.NoError(t, err)
	require.NotNil(t, batch)
	assert.Equal(t, "Async", batch.Name)
	assert.False(t, job.InProgress())
}

func TestJob_Failure(t *testing.T) {
	job := NewEncoder(nil).Start(propgraph.Graph{}, Metadata{})

	batch, err := job.Wait()
	require.Error(t, err)
	assert.Nil(t, batch, "a job yields a result or an error, never both")
	assert.False(t, job.InProgress())
}
