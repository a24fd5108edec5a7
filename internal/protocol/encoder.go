package protocol

import (
	"fmt"
	"sort"

	"github.com/lithammer/shortuuid/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nvandessel/rankforge/internal/propgraph"
	"github.com/nvandessel/rankforge/internal/scoring"
)

// RelationTypeRanks names the relation type connecting a rank list to the
// items it ranks.
const RelationTypeRanks = "ranks"

// Metadata names and describes a batch. Title falls back to the rank-list
// name when empty.
type Metadata struct {
	Title       string
	Description string
}

// Encoder turns property graphs into operation batches. It holds no state
// across encodes; the id-remapping table is scoped to a single Encode call.
type Encoder struct {
	logger *zap.Logger
}

// NewEncoder creates an encoder. A nil logger disables diagnostics.
func NewEncoder(logger *zap.Logger) *Encoder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Encoder{logger: logger}
}

// wellKnownProperties are assumed to already exist on the network. They get
// locally synthesized protocol ids but no CREATE_PROPERTY operations.
var wellKnownProperties = []string{
	propgraph.PropName,
	propgraph.PropRankType,
	RelationTypeRanks,
	propgraph.PropScore,
}

// Encode assembles the operation batch for a property graph.
//
// Entities other than the rank list are assumed to already exist remotely:
// they are assigned protocol ids and recorded in the id-remapping table but
// emit no operations. The rank list emits one CREATE_ENTITY op (plus
// CREATE_PROPERTY ops for any of its properties outside the well-known set),
// and every resolvable relation emits one CREATE_RELATION op typed "ranks".
// Relations with an endpoint missing from the remapping table are skipped
// with a diagnostic, not treated as fatal.
//
// On error no partial batch is returned.
func (e *Encoder) Encode(g propgraph.Graph, meta Metadata) (*Batch, error) {
	list, ok := g.RankListEntity()
	if !ok {
		return nil, errors.New("property graph has no rank list entity")
	}

	// Local id spaces for this encode only.
	propIDs := make(map[string]string) // name:datatype -> protocol id
	idMap := make(map[string]string)   // session id -> protocol id

	wellKnown := make(map[string]string, len(wellKnownProperties))
	for _, name := range wellKnownProperties {
		wellKnown[name] = newProtocolID()
	}

	var ops []Op
	var summary Summary

	// resolveProperty returns the protocol id for a property, creating a
	// definition op on first use for anything outside the well-known set.
	resolveProperty := func(name string, dt DataType) string {
		if id, ok := wellKnown[name]; ok {
			return id
		}
		key := name + ":" + string(dt)
		if id, ok := propIDs[key]; ok {
			return id
		}
		id := newProtocolID()
		propIDs[key] = id
		ops = append(ops, Op{
			Type:        OpCreateProperty,
			Property:    &PropertyOp{ID: id, Name: name, DataType: dt},
			Description: fmt.Sprintf("Create property %q (%s)", name, dt),
		})
		summary.PropertyOps++
		return id
	}

	for _, ent := range g.Entities {
		if ent.ID == list.ID {
			continue
		}
		idMap[ent.ID] = newProtocolID()
	}

	listID := newProtocolID()
	idMap[list.ID] = listID

	values := make([]PropertyValue, 0, len(list.Properties))
	for _, name := range sortedKeys(list.Properties) {
		v := list.Properties[name]
		values = append(values, PropertyValue{
			Property: resolveProperty(name, InferDataType(v)),
			Value:    v,
		})
	}

	listName, _ := list.Properties[propgraph.PropName].(string)
	ops = append(ops, Op{
		Type:        OpCreateEntity,
		Entity:      &EntityOp{ID: listID, Values: values},
		Description: fmt.Sprintf("Create rank list %q", listName),
	})
	summary.EntityOps++

	ranksType := wellKnown[RelationTypeRanks]
	scoreProp := wellKnown[propgraph.PropScore]

	for _, rel := range g.Relations {
		from, okFrom := idMap[rel.From]
		to, okTo := idMap[rel.To]
		if !okFrom || !okTo {
			e.logger.Warn("skipping relation with unmapped endpoint",
				zap.String("relation", rel.ID),
				zap.String("from", rel.From),
				zap.String("to", rel.To))
			continue
		}

		var value *PropertyValue
		desc := fmt.Sprintf("Rank %s", rel.To)
		if name, ok := g.EntityName(rel.To); ok {
			desc = fmt.Sprintf("Rank %q", name)
		}
		if score, ok := rel.Properties[propgraph.PropScore].(float64); ok {
			value = &PropertyValue{Property: scoreProp, Value: score}
			if tier, ok := scoring.TierForScore(score); ok {
				desc += fmt.Sprintf(" in tier %s", tier.Label)
			} else {
				desc += fmt.Sprintf(" at %.2f", score)
			}
		}

		ops = append(ops, Op{
			Type: OpCreateRelation,
			Relation: &RelationOp{
				ID:    newProtocolID(),
				Type:  ranksType,
				From:  from,
				To:    to,
				Value: value,
			},
			Description: desc,
		})
		summary.RelationOps++
	}

	summary.Total = summary.EntityOps + summary.PropertyOps + summary.RelationOps

	name := meta.Title
	if name == "" {
		name = listName
	}

	return &Batch{Name: name, Ops: ops, Summary: summary}, nil
}

// newProtocolID synthesizes a fresh protocol identifier.
func newProtocolID() string {
	return shortuuid.New()
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
