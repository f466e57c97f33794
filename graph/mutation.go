// Package graph maps ontology constructs to property-graph mutations
// and renders them as parameterized Cypher statements.
//
// Mutations form a small closed set: unconditional node creation and
// idempotent edge merges. Node identity is never checked on creation;
// edge merges are keyed by endpoint identity properties plus the
// relationship type.
package graph

// Mutation is an abstract graph mutation produced by the mapping rules.
// The set of implementations is closed: CreateNode and MergeEdge.
type Mutation interface {
	mutation()
}

// CreateNode is an unconditional node insert. Duplicate nodes are an
// accepted consequence: a resource asserted under two types yields one
// CreateNode per asserting triple.
type CreateNode struct {
	// Label is the node tag, e.g. "Class" or "Property".
	Label string

	// Props are the node's attributes. Values are carried verbatim;
	// rendering passes them as statement parameters, so embedded
	// quotes never corrupt a statement.
	Props map[string]string
}

func (CreateNode) mutation() {}

// MergeEdge is an idempotent directed relationship upsert between two
// existing nodes, matched by a single identity property on each side.
type MergeEdge struct {
	// RelType is the relationship type, e.g. "SUBCLASS".
	RelType string

	FromLabel string
	FromKey   string
	FromValue string

	ToLabel string
	ToKey   string
	ToValue string
}

func (MergeEdge) mutation() {}
