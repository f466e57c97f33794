package datamodel

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontograph/graph"
)

// sequentialIDs returns a NewID func yielding id-1, id-2, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func personModel() *Model {
	return &Model{
		URI:         "http://onto-ns.com/meta/0.1/Person",
		Description: "A person data model",
		Dimensions: map[string]string{
			"nskills": "Number of skills",
			"ntasks":  "Number of tasks",
		},
		Properties: map[string]Property{
			"skills": {
				Type:        "string",
				Description: "Skills the person has",
				Shape:       []string{"nskills", "ntasks"},
			},
		},
	}
}

func TestMutationsStructure(t *testing.T) {
	builder := &Builder{NewID: sequentialIDs()}
	mutations := builder.Mutations(personModel())

	// 1 DataModel + 2 Dimension + 1 Property + 1 HAS_PROPERTY +
	// 2 HAS_DIMENSION.
	require.Len(t, mutations, 7)

	root, ok := mutations[0].(graph.CreateNode)
	require.True(t, ok)
	assert.Equal(t, LabelDataModel, root.Label)
	assert.Equal(t, "id-1", root.Props["id"])
	assert.Equal(t, "http://onto-ns.com/meta/0.1/Person", root.Props["uri"])

	// Dimensions come in sorted name order.
	dim1, ok := mutations[1].(graph.CreateNode)
	require.True(t, ok)
	assert.Equal(t, LabelDimension, dim1.Label)
	assert.Equal(t, "nskills", dim1.Props["name"])
	dim2, ok := mutations[2].(graph.CreateNode)
	require.True(t, ok)
	assert.Equal(t, "ntasks", dim2.Props["name"])

	prop, ok := mutations[3].(graph.CreateNode)
	require.True(t, ok)
	assert.Equal(t, LabelProperty, prop.Label)
	assert.Equal(t, "id-2", prop.Props["id"])
	assert.Equal(t, "skills", prop.Props["name"])
	assert.Equal(t, "string", prop.Props["type"])

	hasProp, ok := mutations[4].(graph.MergeEdge)
	require.True(t, ok)
	assert.Equal(t, RelHasProperty, hasProp.RelType)
	// The root identifier is captured before dependent statements are
	// built and embedded by value.
	assert.Equal(t, "id-1", hasProp.FromValue)
	assert.Equal(t, "id-2", hasProp.ToValue)

	shape1, ok := mutations[5].(graph.MergeEdge)
	require.True(t, ok)
	assert.Equal(t, RelHasDimension, shape1.RelType)
	assert.Equal(t, "id-2", shape1.FromValue)
	assert.Equal(t, "nskills", shape1.ToValue)

	shape2, ok := mutations[6].(graph.MergeEdge)
	require.True(t, ok)
	assert.Equal(t, "ntasks", shape2.ToValue)
}

func TestMutationsEmptyModel(t *testing.T) {
	builder := &Builder{NewID: sequentialIDs()}
	mutations := builder.Mutations(&Model{URI: "http://onto-ns.com/meta/0.1/Empty"})

	require.Len(t, mutations, 1)
	root, ok := mutations[0].(graph.CreateNode)
	require.True(t, ok)
	assert.Equal(t, LabelDataModel, root.Label)
}

func TestStatementsRenderable(t *testing.T) {
	builder := &Builder{NewID: sequentialIDs()}
	statements := builder.Statements(personModel())

	require.Len(t, statements, 7)
	assert.Contains(t, statements[0].Text, "CREATE (:DataModel")
	assert.Contains(t, statements[4].Text, "MERGE (from)-[:HAS_PROPERTY]->(to)")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		model   Model
		wantErr string
	}{
		{
			name:  "valid",
			model: *personModel(),
		},
		{
			name:    "missing uri",
			model:   Model{Description: "no uri"},
			wantErr: "uri is required",
		},
		{
			name: "property without type",
			model: Model{
				URI:        "http://example.com/m",
				Properties: map[string]Property{"p": {Description: "untyped"}},
			},
			wantErr: "type is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.model.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
