package estyped

import "encoding/json"

// FieldName identifies a document field. Its JSON form is the bare string.
type FieldName string

// IndexName identifies an index. Used verbatim as a URL path segment;
// callers must not pass an empty name.
type IndexName string

// MappingName identifies a document type within an index.
type MappingName string

// DocId identifies a single document within a mapping.
type DocId string

// Server is the base URL of a search engine node, e.g. "http://localhost:9200".
type Server string

// ShardCount is a validated number of primary shards.
type ShardCount int

// ReplicaCount is a validated number of replicas per shard.
type ReplicaCount int

// IndexSettings carries the shard/replica layout sent when creating an index.
// Construct via NewIndexSettings; both counts must lie in [1,1000].
type IndexSettings struct {
	Shards   ShardCount
	Replicas ReplicaCount
}

// DefaultIndexSettings matches the engine's own defaults.
var DefaultIndexSettings = IndexSettings{Shards: 3, Replicas: 2}

// NewIndexSettings validates shard and replica counts. Out-of-range values
// fail construction rather than being clamped.
func NewIndexSettings(shards, replicas int) (IndexSettings, error) {
	if shards < 1 || shards > 1000 {
		return IndexSettings{}, ErrShardCountOutOfRange(shards)
	}
	if replicas < 1 || replicas > 1000 {
		return IndexSettings{}, ErrReplicaCountOutOfRange(replicas)
	}
	return IndexSettings{Shards: ShardCount(shards), Replicas: ReplicaCount(replicas)}, nil
}

// MarshalJSON renders the create-index settings body.
func (s IndexSettings) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"settings": map[string]interface{}{
			"index": map[string]interface{}{
				"number_of_shards":   int(s.Shards),
				"number_of_replicas": int(s.Replicas),
			},
		},
	})
}

// Search is a complete search request body. Query, Filter and Sort are
// optional; absent fields are omitted from the rendered JSON entirely.
type Search struct {
	Query       Query
	Filter      Filter
	Sort        []SortSpec
	TrackScores bool
	From        int
	Size        int
}

// NewSearch returns a search with the engine's paging defaults:
// from=0, size=10, scores not tracked, no query, filter or sort.
func NewSearch() Search {
	return Search{From: 0, Size: 10}
}

// SearchWithFilter is a convenience for the common filter-only search.
func SearchWithFilter(f Filter) Search {
	s := NewSearch()
	s.Filter = f
	return s
}

// MarshalJSON renders the request body. The query/filter/sort keys are
// only present when set; null is never emitted for them.
func (s Search) MarshalJSON() ([]byte, error) {
	body := map[string]interface{}{
		"from":         s.From,
		"size":         s.Size,
		"track_scores": s.TrackScores,
	}
	if s.Query != nil {
		body["query"] = s.Query
	}
	if s.Filter != nil {
		body["filter"] = s.Filter
	}
	if s.Sort != nil {
		body["sort"] = s.Sort
	}
	return json.Marshal(body)
}
