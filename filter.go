package estyped

import (
	"encoding/json"
	"strings"
)

// Filter is a boolean-matching predicate restricting a result set without
// affecting relevance scoring. It is a closed set of variants; each variant
// renders to the engine's documented wire shape via MarshalJSON.
type Filter interface {
	json.Marshaler
	filterVariant()
}

// defaultCache is the cache flag applied by the combinators.
const defaultCache = false

// Combine merges two filters into a single one. MatchAllFilter is the
// identity: combining with it returns the other filter unchanged. Two
// non-identity filters produce And([a, b]) in argument order. Repeated
// combination nests rather than flattening into one And list; the nested
// shape is interpreted identically by the engine and is part of the wire
// contract, so it must not be collapsed.
func Combine(a, b Filter) Filter {
	if _, ok := a.(MatchAllFilter); ok {
		return b
	}
	if _, ok := b.(MatchAllFilter); ok {
		return a
	}
	return AndFilter{Filters: []Filter{a, b}, Cache: defaultCache}
}

// CombineAll folds Combine over the given filters, starting from the
// identity. No filters yields MatchAllFilter.
func CombineAll(filters ...Filter) Filter {
	combined := Filter(MatchAllFilter{})
	for _, f := range filters {
		combined = Combine(combined, f)
	}
	return combined
}

// Alternative produces Or([a, b]) in argument order. Unlike Combine it has
// no identity short-circuit; it is commutative in meaning only, not in the
// rendered representation.
func Alternative(a, b Filter) Filter {
	return OrFilter{Filters: []Filter{a, b}, Cache: defaultCache}
}

// MatchAllFilter matches every document. It is the identity of Combine.
type MatchAllFilter struct{}

func (MatchAllFilter) filterVariant() {}

func (MatchAllFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"match_all": map[string]interface{}{},
	})
}

// AndFilter matches documents satisfying all inner filters.
type AndFilter struct {
	Filters []Filter
	Cache   bool
}

func (AndFilter) filterVariant() {}

func (f AndFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"and":    f.Filters,
		"_cache": f.Cache,
	})
}

// OrFilter matches documents satisfying at least one inner filter.
type OrFilter struct {
	Filters []Filter
	Cache   bool
}

func (OrFilter) filterVariant() {}

func (f OrFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"or":     f.Filters,
		"_cache": f.Cache,
	})
}

// NotFilter inverts its inner filter.
type NotFilter struct {
	Filter Filter
	Cache  bool
}

func (NotFilter) filterVariant() {}

func (f NotFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"not": map[string]interface{}{
			"filter": f.Filter,
			"_cache": f.Cache,
		},
	})
}

// ExistsFilter matches documents where the field has any value.
type ExistsFilter struct {
	Field FieldName
}

func (ExistsFilter) filterVariant() {}

func (f ExistsFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"exists": map[string]interface{}{
			"field": f.Field,
		},
	})
}

// BoolFilter wraps a BoolMatch clause.
type BoolFilter struct {
	Match BoolMatch
}

func (BoolFilter) filterVariant() {}

func (f BoolFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"bool": f.Match,
	})
}

// GeoBoundingBoxFilter matches points inside a bounding box. The execution
// strategy ("type") is a sibling of the box on the wire, not nested in it.
type GeoBoundingBoxFilter struct {
	Constraint GeoBoundingBoxConstraint
	Type       GeoFilterType
}

func (GeoBoundingBoxFilter) filterVariant() {}

func (f GeoBoundingBoxFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"geo_bounding_box": f.Constraint,
		"type":             f.Type,
	})
}

// GeoDistanceFilter matches points within a distance of a center point.
type GeoDistanceFilter struct {
	Point        GeoPoint
	Distance     Distance
	DistanceType DistanceType
	OptimizeBbox OptimizeBbox
	Cache        bool
}

func (GeoDistanceFilter) filterVariant() {}

func (f GeoDistanceFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"geo_distance": map[string]interface{}{
			"distance":            f.Distance,
			"distance_type":       f.DistanceType,
			"optimize_bbox":       f.OptimizeBbox,
			string(f.Point.Field): f.Point.LatLon,
			"_cache":              f.Cache,
		},
	})
}

// GeoDistanceRangeFilter matches points in a bounded distance ring around a
// center point. The engine only accepts the full from/to form here; there is
// no cache flag on this variant.
type GeoDistanceRangeFilter struct {
	Point GeoPoint
	Range DistanceRange
}

func (GeoDistanceRangeFilter) filterVariant() {}

func (f GeoDistanceRangeFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"geo_distance_range": map[string]interface{}{
			"from":                f.Range.From,
			"to":                  f.Range.To,
			string(f.Point.Field): f.Point.LatLon,
		},
	})
}

// GeoPolygonFilter matches points inside an arbitrary polygon.
type GeoPolygonFilter struct {
	Field  FieldName
	Points []LatLon
}

func (GeoPolygonFilter) filterVariant() {}

func (f GeoPolygonFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"geo_polygon": map[string]interface{}{
			string(f.Field): map[string]interface{}{
				"points": f.Points,
			},
		},
	})
}

// IdsFilter matches documents of one mapping by id.
type IdsFilter struct {
	Type   MappingName
	Values []DocId
}

func (IdsFilter) filterVariant() {}

func (f IdsFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"ids": map[string]interface{}{
			"type":   f.Type,
			"values": f.Values,
		},
	})
}

// LimitFilter caps the number of documents evaluated per shard.
type LimitFilter struct {
	Limit int
}

func (LimitFilter) filterVariant() {}

func (f LimitFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"limit": map[string]interface{}{
			"value": f.Limit,
		},
	})
}

// MissingFilter matches documents where the field is absent or null,
// depending on the existence/null-value flags.
type MissingFilter struct {
	Field     FieldName
	Existence bool
	NullValue bool
}

func (MissingFilter) filterVariant() {}

func (f MissingFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"missing": map[string]interface{}{
			"field":      f.Field,
			"existence":  f.Existence,
			"null_value": f.NullValue,
		},
	})
}

// PrefixFilter matches documents whose field value starts with the prefix.
type PrefixFilter struct {
	Field  FieldName
	Prefix string
	Cache  bool
}

func (PrefixFilter) filterVariant() {}

func (f PrefixFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"prefix": map[string]interface{}{
			string(f.Field): f.Prefix,
			"_cache":        f.Cache,
		},
	})
}

// RangeExecution selects how the engine executes a range filter.
type RangeExecution string

const (
	RangeExecutionIndex     RangeExecution = "index"
	RangeExecutionFielddata RangeExecution = "fielddata"
)

// RangeValue is a half- or fully-bounded numeric range. Half-bounded
// variants render exactly one comparison key, fully-bounded exactly two.
type RangeValue interface {
	rangeBounds() map[string]interface{}
}

// RangeLt matches values strictly below Upper.
type RangeLt struct{ Upper float64 }

// RangeLte matches values at or below Upper.
type RangeLte struct{ Upper float64 }

// RangeGt matches values strictly above Lower.
type RangeGt struct{ Lower float64 }

// RangeGte matches values at or above Lower.
type RangeGte struct{ Lower float64 }

// RangeGtLt matches Lower < v < Upper.
type RangeGtLt struct{ Lower, Upper float64 }

// RangeGteLte matches Lower <= v <= Upper.
type RangeGteLte struct{ Lower, Upper float64 }

// RangeGteLt matches Lower <= v < Upper.
type RangeGteLt struct{ Lower, Upper float64 }

// RangeGtLte matches Lower < v <= Upper.
type RangeGtLte struct{ Lower, Upper float64 }

func (r RangeLt) rangeBounds() map[string]interface{} {
	return map[string]interface{}{"lt": r.Upper}
}

func (r RangeLte) rangeBounds() map[string]interface{} {
	return map[string]interface{}{"lte": r.Upper}
}

func (r RangeGt) rangeBounds() map[string]interface{} {
	return map[string]interface{}{"gt": r.Lower}
}

func (r RangeGte) rangeBounds() map[string]interface{} {
	return map[string]interface{}{"gte": r.Lower}
}

func (r RangeGtLt) rangeBounds() map[string]interface{} {
	return map[string]interface{}{"gt": r.Lower, "lt": r.Upper}
}

func (r RangeGteLte) rangeBounds() map[string]interface{} {
	return map[string]interface{}{"gte": r.Lower, "lte": r.Upper}
}

func (r RangeGteLt) rangeBounds() map[string]interface{} {
	return map[string]interface{}{"gte": r.Lower, "lt": r.Upper}
}

func (r RangeGtLte) rangeBounds() map[string]interface{} {
	return map[string]interface{}{"gt": r.Lower, "lte": r.Upper}
}

// RangeFilter matches documents whose field value falls in the range.
type RangeFilter struct {
	Field     FieldName
	Range     RangeValue
	Execution RangeExecution
	Cache     bool
}

func (RangeFilter) filterVariant() {}

func (f RangeFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"range": map[string]interface{}{
			string(f.Field): f.Range.rangeBounds(),
			"execution":     f.Execution,
			"_cache":        f.Cache,
		},
	})
}

// RegexpFlags is a set of regexp engine feature flags.
type RegexpFlags uint8

const (
	RegexpAll RegexpFlags = 1 << iota
	RegexpComplement
	RegexpInterval
	RegexpIntersection
	RegexpAnyString
)

var regexpFlagNames = []struct {
	flag RegexpFlags
	name string
}{
	{RegexpAll, "ALL"},
	{RegexpComplement, "COMPLEMENT"},
	{RegexpInterval, "INTERVAL"},
	{RegexpIntersection, "INTERSECTION"},
	{RegexpAnyString, "ANYSTRING"},
}

// String renders the set as pipe-joined uppercase tokens in a fixed order,
// e.g. "COMPLEMENT|INTERSECTION".
func (r RegexpFlags) String() string {
	var tokens []string
	for _, fn := range regexpFlagNames {
		if r&fn.flag != 0 {
			tokens = append(tokens, fn.name)
		}
	}
	return strings.Join(tokens, "|")
}

// MarshalJSON renders the flag set as its pipe-joined string form.
func (r RegexpFlags) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// RegexpFilter matches documents whose field value matches the pattern.
type RegexpFilter struct {
	Field     FieldName
	Regexp    string
	Flags     RegexpFlags
	CacheName string
	Cache     bool
	CacheKey  string
}

func (RegexpFilter) filterVariant() {}

func (f RegexpFilter) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"regexp": map[string]interface{}{
			string(f.Field): map[string]interface{}{
				"value": f.Regexp,
				"flags": f.Flags,
			},
			"_name":      f.CacheName,
			"_cache":     f.Cache,
			"_cache_key": f.CacheKey,
		},
	})
}
