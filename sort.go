package estyped

import "encoding/json"

// SortSpec is one entry of a search's sort list. Closed set of variants;
// DefaultSort is the field-based descriptor.
type SortSpec interface {
	json.Marshaler
	sortVariant()
}

// SortOrder is the direction of a sort.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// SortMode picks the value used when sorting on a multi-valued field.
type SortMode string

const (
	SortMin SortMode = "min"
	SortMax SortMode = "max"
	SortSum SortMode = "sum"
	SortAvg SortMode = "avg"
)

// Missing places documents lacking the sort field. LastMissing and
// FirstMissing are the engine's placement policies; any other value is used
// verbatim as the substitute sort value.
type Missing string

const (
	LastMissing  Missing = "_last"
	FirstMissing Missing = "_first"
)

// DefaultSort sorts on a field. Mode, MissingPolicy and NestedFilter are
// optional; their keys are omitted from the wire form when unset.
type DefaultSort struct {
	Field          FieldName
	Order          SortOrder
	IgnoreUnmapped bool
	Mode           SortMode
	MissingPolicy  Missing
	NestedFilter   Filter
}

func (DefaultSort) sortVariant() {}

func (s DefaultSort) MarshalJSON() ([]byte, error) {
	descriptor := map[string]interface{}{
		"order":           s.Order,
		"ignore_unmapped": s.IgnoreUnmapped,
	}
	if s.Mode != "" {
		descriptor["mode"] = s.Mode
	}
	if s.MissingPolicy != "" {
		descriptor["missing"] = s.MissingPolicy
	}
	if s.NestedFilter != nil {
		descriptor["nested_filter"] = s.NestedFilter
	}
	return json.Marshal(map[string]interface{}{
		string(s.Field): descriptor,
	})
}
