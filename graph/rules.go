package graph

import (
	"github.com/c360studio/ontograph/triplestore"
	"github.com/c360studio/ontograph/vocabulary"
)

// Node labels and relationship types emitted by the mapping rules.
const (
	LabelClass    = "Class"
	LabelProperty = "Property"

	RelSubclass    = "SUBCLASS"
	RelSubproperty = "SUBPROPERTY"
	RelDomain      = "DOMAIN"
	RelRange       = "RANGE"
)

// Rule is one extraction rule: a pure function from a decoded triple
// set to graph mutations.
type Rule func(*triplestore.Store) []Mutation

// Rules returns the extraction rules in their fixed execution order:
// class nodes, subclass edges, object-property nodes, datatype-property
// nodes, generic rdf:Property nodes, subproperty edges, domain and
// range edges. The order only affects output readability; node and
// edge application commute under unconditional-insert plus
// idempotent-merge.
func Rules() []Rule {
	return []Rule{
		classNodes,
		subclassEdges,
		propertyNodes(vocabulary.OWLObjectProperty, "ObjectProperty"),
		propertyNodes(vocabulary.OWLDatatypeProperty, "DatatypeProperty"),
		propertyNodes(vocabulary.RDFProperty, "Property"),
		subpropertyEdges,
		domainRangeEdges,
	}
}

// Extract runs every rule against the store and concatenates the
// resulting mutations in rule order.
func Extract(s *triplestore.Store) []Mutation {
	var mutations []Mutation
	for _, rule := range Rules() {
		mutations = append(mutations, rule(s)...)
	}
	return mutations
}

// classNodes emits a Class node for each subject typed rdfs:Class or
// owl:Class. A subject asserted under both types yields two nodes.
func classNodes(s *triplestore.Store) []Mutation {
	var mutations []Mutation
	for _, classType := range []string{vocabulary.RDFSClass, vocabulary.OWLClass} {
		for _, subject := range s.SubjectsOfType(classType) {
			mutations = append(mutations, CreateNode{
				Label: LabelClass,
				Props: map[string]string{
					"uri":   subject.URI,
					"label": triplestore.DisplayLabel(s, subject),
				},
			})
		}
	}
	return mutations
}

// propertyNodes returns a rule emitting a Property node for each
// subject of the given type, tagged with the property kind. The three
// property rules are not mutually exclusive; multi-typed properties
// yield one node per asserting triple, same as classes.
func propertyNodes(typeIRI, kind string) Rule {
	return func(s *triplestore.Store) []Mutation {
		var mutations []Mutation
		for _, subject := range s.SubjectsOfType(typeIRI) {
			mutations = append(mutations, CreateNode{
				Label: LabelProperty,
				Props: map[string]string{
					"uri":   subject.URI,
					"label": triplestore.DisplayLabel(s, subject),
					"type":  kind,
				},
			})
		}
		return mutations
	}
}

func subclassEdges(s *triplestore.Store) []Mutation {
	return hierarchyEdges(s, vocabulary.RDFSSubClassOf, RelSubclass, LabelClass, LabelClass)
}

func subpropertyEdges(s *triplestore.Store) []Mutation {
	return hierarchyEdges(s, vocabulary.RDFSSubPropertyOf, RelSubproperty, LabelProperty, LabelProperty)
}

// domainRangeEdges links properties to the classes they apply to
// (rdfs:domain) and the classes of their values (rdfs:range).
func domainRangeEdges(s *triplestore.Store) []Mutation {
	mutations := hierarchyEdges(s, vocabulary.RDFSDomain, RelDomain, LabelProperty, LabelClass)
	return append(mutations, hierarchyEdges(s, vocabulary.RDFSRange, RelRange, LabelProperty, LabelClass)...)
}

// hierarchyEdges emits a merge-edge per predicate pair, keyed on both
// endpoints' uri. Pairs touching a blank node were already dropped by
// the store.
func hierarchyEdges(s *triplestore.Store, predicate, relType, fromLabel, toLabel string) []Mutation {
	var mutations []Mutation
	for _, pair := range s.PairsForPredicate(predicate) {
		mutations = append(mutations, MergeEdge{
			RelType:   relType,
			FromLabel: fromLabel,
			FromKey:   "uri",
			FromValue: pair.Subject.URI,
			ToLabel:   toLabel,
			ToKey:     "uri",
			ToValue:   pair.Object.URI,
		})
	}
	return mutations
}
