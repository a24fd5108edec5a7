// Package protocol encodes a property graph as an ordered batch of
// operations for a decentralized knowledge-graph network. Encoding is a
// best-effort client-side preparation step: the batch is written to a file,
// nothing is transmitted.
package protocol

// Operation types, in the order they can appear in a batch: property
// definitions before the entities that use them, entities before the
// relations that connect them.
const (
	OpCreateProperty = "CREATE_PROPERTY"
	OpCreateEntity   = "CREATE_ENTITY"
	OpCreateRelation = "CREATE_RELATION"
)

// DataType classifies a property value on the wire.
type DataType string

const (
	DataTypeString  DataType = "STRING"
	DataTypeNumber  DataType = "NUMBER"
	DataTypeBoolean DataType = "BOOLEAN"
	DataTypeTime    DataType = "TIME"
)

// PropertyValue attaches a value to a property definition by protocol id.
type PropertyValue struct {
	Property string `json:"property"`
	Value    any    `json:"value"`
}

// PropertyOp defines a new property on the network.
type PropertyOp struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	DataType DataType `json:"dataType"`
}

// EntityOp creates an entity with its initial property values.
type EntityOp struct {
	ID     string          `json:"id"`
	Values []PropertyValue `json:"values"`
}

// RelationOp creates a typed relation between two entities, optionally
// carrying an attached value.
type RelationOp struct {
	ID    string         `json:"id"`
	Type  string         `json:"type"`
	From  string         `json:"fromEntity"`
	To    string         `json:"toEntity"`
	Value *PropertyValue `json:"value,omitempty"`
}

// Op is one operation of a batch. Exactly one of Entity, Property, Relation
// is set, matching Type. Description is a human-readable account of what the
// operation does, carried alongside the payload.
type Op struct {
	Type        string      `json:"type"`
	Property    *PropertyOp `json:"property,omitempty"`
	Entity      *EntityOp   `json:"entity,omitempty"`
	Relation    *RelationOp `json:"relation,omitempty"`
	Description string      `json:"_description"`
}

// Summary counts the operations of a batch by category.
type Summary struct {
	EntityOps   int `json:"entityOps"`
	PropertyOps int `json:"propertyOps"`
	RelationOps int `json:"relationOps"`
	Total       int `json:"total"`
}

// Batch is an ordered operation sequence with a human-readable name. The
// summary travels with the batch in memory but is not part of the batch file
// format.
type Batch struct {
	Name    string  `json:"name"`
	Ops     []Op    `json:"ops"`
	Summary Summary `json:"-"`
}
