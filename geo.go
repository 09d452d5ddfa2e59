package estyped

import (
	"encoding/json"
	"strconv"
)

// LatLon is a geographic coordinate pair.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// GeoPoint names a geo field together with a coordinate.
type GeoPoint struct {
	Field  FieldName
	LatLon LatLon
}

// GeoBoundingBox is the rectangle between two corners.
type GeoBoundingBox struct {
	TopLeft     LatLon `json:"top_left"`
	BottomRight LatLon `json:"bottom_right"`
}

// GeoBoundingBoxConstraint binds a bounding box to a field, with a cache flag.
type GeoBoundingBoxConstraint struct {
	Field FieldName
	Box   GeoBoundingBox
	Cache bool
}

func (c GeoBoundingBoxConstraint) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		string(c.Field): c.Box,
		"_cache":        c.Cache,
	})
}

// GeoFilterType selects the bounding-box execution strategy.
type GeoFilterType string

const (
	GeoFilterMemory  GeoFilterType = "memory"
	GeoFilterIndexed GeoFilterType = "indexed"
)

// OptimizeBbox controls the bounding-box pre-filter of a geo distance
// filter: disabled, or executed with one of the GeoFilterType strategies.
type OptimizeBbox string

const (
	NoOptimizeBbox      OptimizeBbox = "none"
	OptimizeBboxMemory  OptimizeBbox = "memory"
	OptimizeBboxIndexed OptimizeBbox = "indexed"
)

// DistanceUnit is the engine's short unit code.
type DistanceUnit string

const (
	Miles         DistanceUnit = "mi"
	Yards         DistanceUnit = "yd"
	Feet          DistanceUnit = "ft"
	Inches        DistanceUnit = "in"
	Kilometers    DistanceUnit = "km"
	Meters        DistanceUnit = "m"
	Centimeters   DistanceUnit = "cm"
	Millimeters   DistanceUnit = "mm"
	NauticalMiles DistanceUnit = "nmi"
)

// DistanceType selects the distance calculation.
type DistanceType string

const (
	Arc       DistanceType = "arc"
	SloppyArc DistanceType = "sloppy_arc"
	Plane     DistanceType = "plane"
)

// Distance is a magnitude with a unit. On the wire it is a single string
// such as "10km", never a JSON number.
type Distance struct {
	Coefficient float64
	Unit        DistanceUnit
}

func (d Distance) String() string {
	return strconv.FormatFloat(d.Coefficient, 'f', -1, 64) + string(d.Unit)
}

func (d Distance) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// DistanceRange is the bounded from/to ring of a geo distance range filter.
type DistanceRange struct {
	From Distance
	To   Distance
}
