package graph

import (
	"fmt"
	"sort"
	"strings"
)

// Statement is a renderable Cypher statement. All string-valued
// attributes travel in Params rather than the statement text, so
// source data containing quote characters cannot terminate a literal
// early or otherwise corrupt the statement.
type Statement struct {
	Text   string
	Params map[string]any
}

// Render converts an abstract mutation into a parameterized Cypher
// statement. It has no knowledge of RDF; it only understands the
// mutation shapes.
func Render(m Mutation) Statement {
	switch m := m.(type) {
	case CreateNode:
		return renderCreateNode(m)
	case MergeEdge:
		return renderMergeEdge(m)
	default:
		// Mutation is a closed set; a new variant is a programming error.
		panic(fmt.Sprintf("graph: unknown mutation type %T", m))
	}
}

// RenderAll renders a mutation sequence preserving order.
func RenderAll(mutations []Mutation) []Statement {
	statements := make([]Statement, 0, len(mutations))
	for _, m := range mutations {
		statements = append(statements, Render(m))
	}
	return statements
}

func renderCreateNode(m CreateNode) Statement {
	keys := make([]string, 0, len(m.Props))
	for k := range m.Props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	params := make(map[string]any, len(m.Props))
	assignments := make([]string, 0, len(keys))
	for _, k := range keys {
		assignments = append(assignments, fmt.Sprintf("%s: $%s", k, k))
		params[k] = m.Props[k]
	}

	text := fmt.Sprintf("CREATE (:%s {%s})", m.Label, strings.Join(assignments, ", "))
	return Statement{Text: text, Params: params}
}

func renderMergeEdge(m MergeEdge) Statement {
	text := fmt.Sprintf(
		"MATCH (from:%s {%s: $from}), (to:%s {%s: $to}) MERGE (from)-[:%s]->(to)",
		m.FromLabel, m.FromKey, m.ToLabel, m.ToKey, m.RelType,
	)
	return Statement{
		Text: text,
		Params: map[string]any{
			"from": m.FromValue,
			"to":   m.ToValue,
		},
	}
}
