package estyped

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineIdentity(t *testing.T) {
	filters := []Filter{
		ExistsFilter{Field: "user"},
		PrefixFilter{Field: "user", Prefix: "bo"},
		LimitFilter{Limit: 100},
		AndFilter{Filters: []Filter{ExistsFilter{Field: "user"}}, Cache: true},
	}

	for _, f := range filters {
		assert.Equal(t, f, Combine(MatchAllFilter{}, f))
		assert.Equal(t, f, Combine(f, MatchAllFilter{}))
	}

	assert.Equal(t, Filter(MatchAllFilter{}), Combine(MatchAllFilter{}, MatchAllFilter{}))
}

func TestCombineNests(t *testing.T) {
	a := ExistsFilter{Field: "user"}
	b := PrefixFilter{Field: "user", Prefix: "bo"}
	c := LimitFilter{Limit: 10}

	combined := Combine(a, b)
	require.IsType(t, AndFilter{}, combined)
	and := combined.(AndFilter)
	assert.Equal(t, []Filter{a, b}, and.Filters)
	assert.False(t, and.Cache)

	// Repeated combination nests; it must not flatten into a 3-element And.
	nested := Combine(combined, c)
	require.IsType(t, AndFilter{}, nested)
	outer := nested.(AndFilter)
	require.Len(t, outer.Filters, 2)
	assert.Equal(t, combined, outer.Filters[0])
	assert.Equal(t, Filter(c), outer.Filters[1])
}

func TestCombineAll(t *testing.T) {
	assert.Equal(t, Filter(MatchAllFilter{}), CombineAll())

	a := ExistsFilter{Field: "user"}
	assert.Equal(t, Filter(a), CombineAll(a))

	b := LimitFilter{Limit: 5}
	assert.Equal(t, Combine(a, b), CombineAll(a, b))
}

func TestAlternative(t *testing.T) {
	a := ExistsFilter{Field: "user"}
	b := PrefixFilter{Field: "user", Prefix: "bo"}

	alt := Alternative(a, b)
	require.IsType(t, OrFilter{}, alt)
	or := alt.(OrFilter)
	assert.Equal(t, []Filter{a, b}, or.Filters)
	assert.False(t, or.Cache)
}

func TestFilterRendering(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		expected string
	}{
		{
			name:     "match_all",
			filter:   MatchAllFilter{},
			expected: `{"match_all":{}}`,
		},
		{
			name: "and",
			filter: AndFilter{
				Filters: []Filter{ExistsFilter{Field: "user"}, LimitFilter{Limit: 10}},
				Cache:   true,
			},
			expected: `{"and":[{"exists":{"field":"user"}},{"limit":{"value":10}}],"_cache":true}`,
		},
		{
			name: "or",
			filter: OrFilter{
				Filters: []Filter{ExistsFilter{Field: "user"}},
			},
			expected: `{"or":[{"exists":{"field":"user"}}],"_cache":false}`,
		},
		{
			name:     "not",
			filter:   NotFilter{Filter: ExistsFilter{Field: "user"}, Cache: true},
			expected: `{"not":{"filter":{"exists":{"field":"user"}},"_cache":true}}`,
		},
		{
			name:     "exists",
			filter:   ExistsFilter{Field: "user"},
			expected: `{"exists":{"field":"user"}}`,
		},
		{
			name: "bool_must",
			filter: BoolFilter{Match: MustMatch{
				Term:  Term{Field: "user", Value: "bitemyapp"},
				Cache: false,
			}},
			expected: `{"bool":{"must":{"term":{"user":"bitemyapp"}},"_cache":false}}`,
		},
		{
			name: "bool_must_not",
			filter: BoolFilter{Match: MustNotMatch{
				Term:  Term{Field: "user", Value: "bitemyapp"},
				Cache: false,
			}},
			expected: `{"bool":{"must_not":{"term":{"user":"bitemyapp"}},"_cache":false}}`,
		},
		{
			name: "bool_should_single_term_still_array",
			filter: BoolFilter{Match: ShouldMatch{
				Terms: []Term{{Field: "user", Value: "bitemyapp"}},
				Cache: false,
			}},
			expected: `{"bool":{"should":[{"term":{"user":"bitemyapp"}}],"_cache":false}}`,
		},
		{
			name: "ids",
			filter: IdsFilter{
				Type:   "user",
				Values: []DocId{"1", "2"},
			},
			expected: `{"ids":{"type":"user","values":["1","2"]}}`,
		},
		{
			name:     "limit",
			filter:   LimitFilter{Limit: 100},
			expected: `{"limit":{"value":100}}`,
		},
		{
			name:     "missing",
			filter:   MissingFilter{Field: "user", Existence: true, NullValue: false},
			expected: `{"missing":{"field":"user","existence":true,"null_value":false}}`,
		},
		{
			name:     "prefix",
			filter:   PrefixFilter{Field: "user", Prefix: "bo", Cache: true},
			expected: `{"prefix":{"user":"bo","_cache":true}}`,
		},
		{
			name: "range_half_bounded",
			filter: RangeFilter{
				Field:     "age",
				Range:     RangeGt{Lower: 30},
				Execution: RangeExecutionIndex,
				Cache:     false,
			},
			expected: `{"range":{"age":{"gt":30},"execution":"index","_cache":false}}`,
		},
		{
			name: "range_fully_bounded",
			filter: RangeFilter{
				Field:     "age",
				Range:     RangeGteLte{Lower: 18, Upper: 65},
				Execution: RangeExecutionFielddata,
				Cache:     true,
			},
			expected: `{"range":{"age":{"gte":18,"lte":65},"execution":"fielddata","_cache":true}}`,
		},
		{
			name: "regexp",
			filter: RegexpFilter{
				Field:     "user",
				Regexp:    "bo.*n",
				Flags:     RegexpComplement | RegexpIntersection,
				CacheName: "my_regexp",
				Cache:     false,
				CacheKey:  "my_key",
			},
			expected: `{"regexp":{"user":{"value":"bo.*n","flags":"COMPLEMENT|INTERSECTION"},"_name":"my_regexp","_cache":false,"_cache_key":"my_key"}}`,
		},
		{
			name: "geo_bounding_box",
			filter: GeoBoundingBoxFilter{
				Constraint: GeoBoundingBoxConstraint{
					Field: "loc",
					Box: GeoBoundingBox{
						TopLeft:     LatLon{Lat: 40.73, Lon: -74.1},
						BottomRight: LatLon{Lat: 40.01, Lon: -71.12},
					},
					Cache: false,
				},
				Type: GeoFilterMemory,
			},
			expected: `{"geo_bounding_box":{"loc":{"top_left":{"lat":40.73,"lon":-74.1},"bottom_right":{"lat":40.01,"lon":-71.12}},"_cache":false},"type":"memory"}`,
		},
		{
			name: "geo_distance",
			filter: GeoDistanceFilter{
				Point:        GeoPoint{Field: "loc", LatLon: LatLon{Lat: 40, Lon: -70}},
				Distance:     Distance{Coefficient: 10, Unit: Kilometers},
				DistanceType: Arc,
				OptimizeBbox: NoOptimizeBbox,
				Cache:        false,
			},
			expected: `{"geo_distance":{"distance":"10km","distance_type":"arc","optimize_bbox":"none","loc":{"lat":40,"lon":-70},"_cache":false}}`,
		},
		{
			name: "geo_distance_range",
			filter: GeoDistanceRangeFilter{
				Point: GeoPoint{Field: "loc", LatLon: LatLon{Lat: 40, Lon: -70}},
				Range: DistanceRange{
					From: Distance{Coefficient: 200, Unit: Miles},
					To:   Distance{Coefficient: 400, Unit: Miles},
				},
			},
			expected: `{"geo_distance_range":{"from":"200mi","to":"400mi","loc":{"lat":40,"lon":-70}}}`,
		},
		{
			name: "geo_polygon",
			filter: GeoPolygonFilter{
				Field: "loc",
				Points: []LatLon{
					{Lat: 40, Lon: -70},
					{Lat: 30, Lon: -80},
					{Lat: 20, Lon: -90},
				},
			},
			expected: `{"geo_polygon":{"loc":{"points":[{"lat":40,"lon":-70},{"lat":30,"lon":-80},{"lat":20,"lon":-90}]}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rendered, err := json.Marshal(tt.filter)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(rendered))

			// Rendering is deterministic: a second pass is byte-identical.
			again, err := json.Marshal(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, rendered, again)
		})
	}
}

func TestRangeBoundCounts(t *testing.T) {
	tests := []struct {
		name   string
		rv     RangeValue
		bounds []string
	}{
		{"lt", RangeLt{Upper: 5}, []string{"lt"}},
		{"lte", RangeLte{Upper: 5}, []string{"lte"}},
		{"gt", RangeGt{Lower: 5}, []string{"gt"}},
		{"gte", RangeGte{Lower: 5}, []string{"gte"}},
		{"gt_lt", RangeGtLt{Lower: 1, Upper: 5}, []string{"gt", "lt"}},
		{"gte_lte", RangeGteLte{Lower: 1, Upper: 5}, []string{"gte", "lte"}},
		{"gte_lt", RangeGteLt{Lower: 1, Upper: 5}, []string{"gte", "lt"}},
		{"gt_lte", RangeGtLte{Lower: 1, Upper: 5}, []string{"gt", "lte"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rendered, err := json.Marshal(RangeFilter{Field: "age", Range: tt.rv})
			require.NoError(t, err)

			var decoded map[string]map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(rendered, &decoded))

			var fieldObj map[string]float64
			require.NoError(t, json.Unmarshal(decoded["range"]["age"], &fieldObj))
			require.Len(t, fieldObj, len(tt.bounds))
			for _, bound := range tt.bounds {
				assert.Contains(t, fieldObj, bound)
			}
		})
	}
}

func TestRegexpFlagsString(t *testing.T) {
	tests := []struct {
		name     string
		flags    RegexpFlags
		expected string
	}{
		{"none", 0, ""},
		{"all", RegexpAll, "ALL"},
		{"complement_intersection", RegexpComplement | RegexpIntersection, "COMPLEMENT|INTERSECTION"},
		{"interval_anystring", RegexpInterval | RegexpAnyString, "INTERVAL|ANYSTRING"},
		{"complement_interval", RegexpComplement | RegexpInterval, "COMPLEMENT|INTERVAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.flags.String())
		})
	}
}

func TestDistanceString(t *testing.T) {
	tests := []struct {
		distance Distance
		expected string
	}{
		{Distance{Coefficient: 10, Unit: Kilometers}, "10km"},
		{Distance{Coefficient: 2.5, Unit: Miles}, "2.5mi"},
		{Distance{Coefficient: 0.5, Unit: NauticalMiles}, "0.5nmi"},
		{Distance{Coefficient: 100, Unit: Meters}, "100m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.distance.String())

		rendered, err := json.Marshal(tt.distance)
		require.NoError(t, err)
		assert.Equal(t, `"`+tt.expected+`"`, string(rendered))
	}
}
