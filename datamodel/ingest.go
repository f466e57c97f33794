package datamodel

import (
	"sort"

	"github.com/google/uuid"

	"github.com/c360studio/ontograph/graph"
)

// Node labels and relationship types for data model ingestion.
const (
	LabelDataModel = "DataModel"
	LabelDimension = "Dimension"
	LabelProperty  = "Property"

	RelHasProperty  = "HAS_PROPERTY"
	RelHasDimension = "HAS_DIMENSION"
)

// Builder converts a data model into graph mutations. NewID generates
// node identifiers; it defaults to uuid and is injectable for tests.
type Builder struct {
	NewID func() string
}

// NewBuilder returns a Builder with uuid identifiers.
func NewBuilder() *Builder {
	return &Builder{NewID: uuid.NewString}
}

// Mutations builds the full mutation sequence for the model. The root
// DataModel node comes first with its identifier generated up front,
// since every HAS_PROPERTY edge references it by value. Dimension nodes
// precede property nodes so HAS_DIMENSION merges find their targets.
// Map iteration is sorted to keep the sequence deterministic.
func (b *Builder) Mutations(m *Model) []graph.Mutation {
	modelID := b.NewID()

	mutations := []graph.Mutation{
		graph.CreateNode{
			Label: LabelDataModel,
			Props: map[string]string{
				"id":          modelID,
				"uri":         m.URI,
				"description": m.Description,
			},
		},
	}

	for _, name := range sortedKeys(m.Dimensions) {
		mutations = append(mutations, graph.CreateNode{
			Label: LabelDimension,
			Props: map[string]string{
				"name":        name,
				"description": m.Dimensions[name],
			},
		})
	}

	for _, name := range sortedPropertyKeys(m.Properties) {
		prop := m.Properties[name]
		propID := b.NewID()

		mutations = append(mutations, graph.CreateNode{
			Label: LabelProperty,
			Props: map[string]string{
				"id":          propID,
				"name":        name,
				"type":        prop.Type,
				"description": prop.Description,
			},
		})
		mutations = append(mutations, graph.MergeEdge{
			RelType:   RelHasProperty,
			FromLabel: LabelDataModel,
			FromKey:   "id",
			FromValue: modelID,
			ToLabel:   LabelProperty,
			ToKey:     "id",
			ToValue:   propID,
		})
		for _, dimension := range prop.Shape {
			mutations = append(mutations, graph.MergeEdge{
				RelType:   RelHasDimension,
				FromLabel: LabelProperty,
				FromKey:   "id",
				FromValue: propID,
				ToLabel:   LabelDimension,
				ToKey:     "name",
				ToValue:   dimension,
			})
		}
	}

	return mutations
}

// Statements renders the model's mutation sequence.
func (b *Builder) Statements(m *Model) []graph.Statement {
	return graph.RenderAll(b.Mutations(m))
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedPropertyKeys(m map[string]Property) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
