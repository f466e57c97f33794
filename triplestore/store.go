// Package triplestore provides a read-only view over a parsed RDF graph
// with typed accessors for the ontology mapping rules.
//
// Blank nodes never surface through the accessors: subjects that are
// blank nodes are skipped, and predicate pairs touching a blank node on
// either side are dropped entirely.
package triplestore

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/knakk/rdf"

	"github.com/c360studio/ontograph/vocabulary"
)

// ErrParse indicates the input document is not valid Turtle. Parse
// errors are fatal; partial ontologies are not supported.
var ErrParse = errors.New("turtle parse failed")

// Resource is a named RDF resource identified by its IRI. Blank nodes
// are never represented as a Resource.
type Resource struct {
	URI string
}

// Pair is an ordered (subject, object) pair for a predicate, with both
// sides named resources.
type Pair struct {
	Subject Resource
	Object  Resource
}

// Store is a read-only triple set decoded from a Turtle document.
type Store struct {
	triples []rdf.Triple
	labels  map[string]string
}

// Open reads and decodes the Turtle file at path.
func Open(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ontology file: %w", err)
	}
	defer f.Close()

	store, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return store, nil
}

// Decode parses a Turtle document into a Store. Any syntax error aborts
// the decode and is reported as ErrParse.
func Decode(r io.Reader) (*Store, error) {
	store := &Store{labels: make(map[string]string)}

	dec := rdf.NewTripleDecoder(r, rdf.Turtle)
	for {
		triple, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		store.triples = append(store.triples, triple)

		// Index rdfs:label eagerly; first assertion wins.
		if triple.Pred.String() == vocabulary.RDFSLabel &&
			triple.Subj.Type() == rdf.TermIRI &&
			triple.Obj.Type() == rdf.TermLiteral {
			subj := triple.Subj.String()
			if _, ok := store.labels[subj]; !ok {
				store.labels[subj] = triple.Obj.String()
			}
		}
	}

	return store, nil
}

// Len returns the number of decoded triples.
func (s *Store) Len() int {
	return len(s.triples)
}

// SubjectsOfType returns the named resources asserted to have the given
// rdf:type, in document order. Blank-node subjects are excluded.
func (s *Store) SubjectsOfType(typeIRI string) []Resource {
	var subjects []Resource
	for _, t := range s.triples {
		if t.Pred.String() != vocabulary.RDFType {
			continue
		}
		if t.Obj.Type() != rdf.TermIRI || t.Obj.String() != typeIRI {
			continue
		}
		if t.Subj.Type() != rdf.TermIRI {
			continue
		}
		subjects = append(subjects, Resource{URI: t.Subj.String()})
	}
	return subjects
}

// PairsForPredicate returns the (subject, object) pairs asserted for
// the given predicate, in document order. Pairs where either side is a
// blank node produce nothing.
func (s *Store) PairsForPredicate(predicateIRI string) []Pair {
	var pairs []Pair
	for _, t := range s.triples {
		if t.Pred.String() != predicateIRI {
			continue
		}
		if t.Subj.Type() != rdf.TermIRI || t.Obj.Type() != rdf.TermIRI {
			continue
		}
		pairs = append(pairs, Pair{
			Subject: Resource{URI: t.Subj.String()},
			Object:  Resource{URI: t.Obj.String()},
		})
	}
	return pairs
}

// LabelOf returns the rdfs:label of the resource, if one is asserted.
func (s *Store) LabelOf(r Resource) (string, bool) {
	label, ok := s.labels[r.URI]
	return label, ok
}
