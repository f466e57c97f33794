package triplestore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontograph/vocabulary"
)

const animalOntology = `
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix owl: <http://www.w3.org/2002/07/owl#> .
@prefix ex: <http://example.com/> .

ex:Dog rdf:type owl:Class .
ex:Dog rdfs:label "Dog" .
ex:Animal rdf:type owl:Class .
ex:Dog rdfs:subClassOf ex:Animal .
`

func TestDecode(t *testing.T) {
	store, err := Decode(strings.NewReader(animalOntology))
	require.NoError(t, err)
	assert.Equal(t, 4, store.Len())
}

func TestDecodeParseError(t *testing.T) {
	_, err := Decode(strings.NewReader("this is not turtle @@@"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}

func TestSubjectsOfType(t *testing.T) {
	store, err := Decode(strings.NewReader(animalOntology))
	require.NoError(t, err)

	subjects := store.SubjectsOfType(vocabulary.OWLClass)
	require.Len(t, subjects, 2)
	assert.Equal(t, "http://example.com/Dog", subjects[0].URI)
	assert.Equal(t, "http://example.com/Animal", subjects[1].URI)

	assert.Empty(t, store.SubjectsOfType(vocabulary.RDFSClass))
}

func TestSubjectsOfTypeSkipsBlankNodes(t *testing.T) {
	ttl := `
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .
@prefix owl: <http://www.w3.org/2002/07/owl#> .

_:anon rdf:type owl:Class .
`
	store, err := Decode(strings.NewReader(ttl))
	require.NoError(t, err)

	assert.Empty(t, store.SubjectsOfType(vocabulary.OWLClass))
}

func TestPairsForPredicate(t *testing.T) {
	store, err := Decode(strings.NewReader(animalOntology))
	require.NoError(t, err)

	pairs := store.PairsForPredicate(vocabulary.RDFSSubClassOf)
	require.Len(t, pairs, 1)
	assert.Equal(t, "http://example.com/Dog", pairs[0].Subject.URI)
	assert.Equal(t, "http://example.com/Animal", pairs[0].Object.URI)
}

func TestPairsForPredicateDropsBlankNodes(t *testing.T) {
	ttl := `
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix ex: <http://example.com/> .

ex:Dog rdfs:subClassOf _:restriction .
_:restriction rdfs:subClassOf ex:Animal .
ex:Cat rdfs:subClassOf ex:Animal .
`
	store, err := Decode(strings.NewReader(ttl))
	require.NoError(t, err)

	// Both pairs touching the blank node are dropped entirely.
	pairs := store.PairsForPredicate(vocabulary.RDFSSubClassOf)
	require.Len(t, pairs, 1)
	assert.Equal(t, "http://example.com/Cat", pairs[0].Subject.URI)
}

func TestLabelOf(t *testing.T) {
	store, err := Decode(strings.NewReader(animalOntology))
	require.NoError(t, err)

	label, ok := store.LabelOf(Resource{URI: "http://example.com/Dog"})
	require.True(t, ok)
	assert.Equal(t, "Dog", label)

	_, ok = store.LabelOf(Resource{URI: "http://example.com/Animal"})
	assert.False(t, ok)
}
