// Package datamodel ingests a JSON-described data model (an entity with
// typed, dimensioned properties) into the graph store.
package datamodel

import "fmt"

// Model is a data model document: an entity identified by URI whose
// properties are typed and shaped over named dimensions.
type Model struct {
	URI         string              `json:"uri"`
	Description string              `json:"description"`
	Dimensions  map[string]string   `json:"dimensions"`
	Properties  map[string]Property `json:"properties"`
}

// Property is one typed property of a data model. Shape lists the
// dimension names the property is indexed over, in order.
type Property struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Shape       []string `json:"shape"`
}

// Validate checks the document is usable for ingestion.
func (m *Model) Validate() error {
	if m.URI == "" {
		return fmt.Errorf("data model uri is required")
	}
	for name, prop := range m.Properties {
		if prop.Type == "" {
			return fmt.Errorf("property %q: type is required", name)
		}
	}
	return nil
}
