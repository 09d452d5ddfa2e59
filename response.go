package estyped

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Status is the engine's root ("/") banner.
type Status struct {
	Status  int    `json:"status"`
	Name    string `json:"name"`
	Tagline string `json:"tagline"`
	Version struct {
		Number string `json:"number"`
	} `json:"version"`
}

// EsResult is the envelope of a single-document read.
type EsResult struct {
	Index   IndexName       `json:"_index"`
	Type    MappingName     `json:"_type"`
	Id      DocId           `json:"_id"`
	Version int             `json:"_version"`
	Found   *bool           `json:"found"`
	Source  json.RawMessage `json:"_source"`
}

// ShardResult reports per-shard execution counts of a search.
type ShardResult struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// Hit is one matched document of a search.
type Hit struct {
	Index  IndexName       `json:"_index"`
	Type   MappingName     `json:"_type"`
	Id     DocId           `json:"_id"`
	Score  float64         `json:"_score"`
	Source json.RawMessage `json:"_source"`
}

// SearchHits is the hits section of a search result.
type SearchHits struct {
	Total    int
	MaxScore *float64
	Hits     []Hit
}

// SearchResult is the envelope of a search response.
type SearchResult struct {
	Took     int
	TimedOut bool
	Shards   ShardResult
	Hits     SearchHits
}

// decodeObject rejects any top-level value that is not a JSON object and
// returns its raw fields.
func decodeObject(data []byte, envelope string) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, &DecodeError{Envelope: envelope, Cause: err}
	}
	if obj == nil {
		return nil, &DecodeError{Envelope: envelope, Cause: errors.New("top-level value is not a JSON object")}
	}
	return obj, nil
}

// requireField decodes a field that must be present.
func requireField(obj map[string]json.RawMessage, envelope, field string, out interface{}) error {
	raw, ok := obj[field]
	if !ok {
		return &DecodeError{Envelope: envelope, Field: field}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &DecodeError{Envelope: envelope, Field: field, Cause: err}
	}
	return nil
}

// optionalField decodes a field when present and leaves out untouched
// otherwise.
func optionalField(obj map[string]json.RawMessage, envelope, field string, out interface{}) error {
	raw, ok := obj[field]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &DecodeError{Envelope: envelope, Field: field, Cause: err}
	}
	return nil
}

// ParseStatus decodes the root banner envelope.
func ParseStatus(data []byte) (*Status, error) {
	const envelope = "Status"

	obj, err := decodeObject(data, envelope)
	if err != nil {
		return nil, err
	}

	var s Status
	if err := requireField(obj, envelope, "status", &s.Status); err != nil {
		return nil, err
	}
	if err := requireField(obj, envelope, "name", &s.Name); err != nil {
		return nil, err
	}
	if err := requireField(obj, envelope, "version", &s.Version); err != nil {
		return nil, err
	}
	if err := requireField(obj, envelope, "tagline", &s.Tagline); err != nil {
		return nil, err
	}

	return &s, nil
}

// ParseEsResult decodes a single-document read envelope. The found flag is
// optional; everything else is required.
func ParseEsResult(data []byte) (*EsResult, error) {
	const envelope = "EsResult"

	obj, err := decodeObject(data, envelope)
	if err != nil {
		return nil, err
	}

	var r EsResult
	if err := requireField(obj, envelope, "_index", &r.Index); err != nil {
		return nil, err
	}
	if err := requireField(obj, envelope, "_type", &r.Type); err != nil {
		return nil, err
	}
	if err := requireField(obj, envelope, "_id", &r.Id); err != nil {
		return nil, err
	}
	if err := requireField(obj, envelope, "_version", &r.Version); err != nil {
		return nil, err
	}
	if err := requireField(obj, envelope, "_source", &r.Source); err != nil {
		return nil, err
	}
	if err := optionalField(obj, envelope, "found", &r.Found); err != nil {
		return nil, err
	}

	return &r, nil
}

// ParseSearchResult decodes a search response envelope.
func ParseSearchResult(data []byte) (*SearchResult, error) {
	const envelope = "SearchResult"

	obj, err := decodeObject(data, envelope)
	if err != nil {
		return nil, err
	}

	var r SearchResult
	if err := requireField(obj, envelope, "took", &r.Took); err != nil {
		return nil, err
	}
	if err := requireField(obj, envelope, "timed_out", &r.TimedOut); err != nil {
		return nil, err
	}
	if err := requireField(obj, envelope, "_shards", &r.Shards); err != nil {
		return nil, err
	}

	rawHits, ok := obj["hits"]
	if !ok {
		return nil, &DecodeError{Envelope: envelope, Field: "hits"}
	}
	hits, err := parseSearchHits(rawHits)
	if err != nil {
		return nil, err
	}
	r.Hits = *hits

	return &r, nil
}

func parseSearchHits(data []byte) (*SearchHits, error) {
	const envelope = "SearchHits"

	obj, err := decodeObject(data, envelope)
	if err != nil {
		return nil, err
	}

	var h SearchHits
	if err := requireField(obj, envelope, "total", &h.Total); err != nil {
		return nil, err
	}
	if err := requireField(obj, envelope, "max_score", &h.MaxScore); err != nil {
		return nil, err
	}
	if err := requireField(obj, envelope, "hits", &h.Hits); err != nil {
		return nil, err
	}

	return &h, nil
}
