package estyped

import "encoding/json"

// Query is a value contributing to relevance-scored matching. Closed set of
// variants, currently just TermQuery.
type Query interface {
	json.Marshaler
	queryVariant()
}

// Term is a single field/value pair matched exactly.
type Term struct {
	Field FieldName
	Value string
}

func (t Term) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"term": map[string]interface{}{
			string(t.Field): t.Value,
		},
	})
}

// TermQuery is an exact-match query with an optional boost. Without a boost
// it renders the short form {"term":{field:value}}; with one the field maps
// to an object carrying value and boost.
type TermQuery struct {
	Term  Term
	Boost *float64
}

func (TermQuery) queryVariant() {}

func (q TermQuery) MarshalJSON() ([]byte, error) {
	if q.Boost == nil {
		return q.Term.MarshalJSON()
	}
	return json.Marshal(map[string]interface{}{
		"term": map[string]interface{}{
			string(q.Term.Field): map[string]interface{}{
				"value": q.Term.Value,
				"boost": *q.Boost,
			},
		},
	})
}

// Boost is a convenience for building a TermQuery boost pointer.
func Boost(b float64) *float64 {
	return &b
}

// BoolMatch is one clause of a bool filter: must, must_not or should.
type BoolMatch interface {
	json.Marshaler
	boolMatchVariant()
}

// MustMatch requires the term to match.
type MustMatch struct {
	Term  Term
	Cache bool
}

func (MustMatch) boolMatchVariant() {}

func (m MustMatch) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"must":   m.Term,
		"_cache": m.Cache,
	})
}

// MustNotMatch requires the term not to match.
type MustNotMatch struct {
	Term  Term
	Cache bool
}

func (MustNotMatch) boolMatchVariant() {}

func (m MustNotMatch) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"must_not": m.Term,
		"_cache":   m.Cache,
	})
}

// ShouldMatch scores documents matching any of the terms. The wire form is
// an array even when only one term is given.
type ShouldMatch struct {
	Terms []Term
	Cache bool
}

func (ShouldMatch) boolMatchVariant() {}

func (m ShouldMatch) MarshalJSON() ([]byte, error) {
	terms := m.Terms
	if terms == nil {
		terms = []Term{}
	}
	return json.Marshal(map[string]interface{}{
		"should": terms,
		"_cache": m.Cache,
	})
}
