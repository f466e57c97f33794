package triplestore

import "strings"

// DisplayLabel derives a stable human-readable label for a resource.
//
// Resolution order:
//  1. the rdfs:label literal if one is asserted
//  2. the final path segment of the IRI (text after the last '/')
//  3. the full IRI string
//
// The function is total: it always returns a non-empty string for a
// resource with a non-empty URI.
func DisplayLabel(s *Store, r Resource) string {
	if label, ok := s.LabelOf(r); ok {
		return label
	}
	if idx := strings.LastIndex(r.URI, "/"); idx >= 0 && idx+1 < len(r.URI) {
		return r.URI[idx+1:]
	}
	return r.URI
}
