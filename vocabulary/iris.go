// Package vocabulary provides W3C standard vocabulary IRIs used by the
// ontology mapping rules.
//
// References:
// - RDF: https://www.w3.org/TR/rdf11-concepts/
// - RDF Schema: https://www.w3.org/TR/rdf-schema/
// - OWL: https://www.w3.org/TR/owl2-overview/
package vocabulary

// RDF Standard IRIs
const (
	// RDFType asserts that a resource is an instance of a class.
	RDFType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

	// RDFProperty is the class of generic RDF properties.
	RDFProperty = "http://www.w3.org/1999/02/22-rdf-syntax-ns#Property"
)

// RDF Schema Standard IRIs
const (
	// RDFSClass is the class of RDFS classes.
	RDFSClass = "http://www.w3.org/2000/01/rdf-schema#Class"

	// RDFSLabel provides a human-readable name for a resource.
	RDFSLabel = "http://www.w3.org/2000/01/rdf-schema#label"

	// RDFSSubClassOf relates a class to one of its superclasses.
	RDFSSubClassOf = "http://www.w3.org/2000/01/rdf-schema#subClassOf"

	// RDFSSubPropertyOf relates a property to one of its superproperties.
	RDFSSubPropertyOf = "http://www.w3.org/2000/01/rdf-schema#subPropertyOf"

	// RDFSDomain states the class of subjects a property applies to.
	RDFSDomain = "http://www.w3.org/2000/01/rdf-schema#domain"

	// RDFSRange states the class of values a property takes.
	RDFSRange = "http://www.w3.org/2000/01/rdf-schema#range"
)

// OWL (Web Ontology Language) Standard IRIs
const (
	// OWLClass is the class of OWL classes.
	OWLClass = "http://www.w3.org/2002/07/owl#Class"

	// OWLObjectProperty is the class of properties linking individuals
	// to individuals.
	OWLObjectProperty = "http://www.w3.org/2002/07/owl#ObjectProperty"

	// OWLDatatypeProperty is the class of properties linking individuals
	// to literal values.
	OWLDatatypeProperty = "http://www.w3.org/2002/07/owl#DatatypeProperty"
)
