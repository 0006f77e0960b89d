package model

// KnowledgeDoc is one retrievable fact. The id doubles as the join key with
// the vector index, so rows are append-only: editing or deleting a doc
// requires a wholesale index rebuild.
type KnowledgeDoc struct {
	ID         int64    `json:"id"`
	SpotID     *int64   `json:"spot_id,omitempty"`
	PlaceID    string   `json:"place_id"`
	Language   string   `json:"language"`
	SourceType string   `json:"source_type"`
	SourceRef  string   `json:"source_ref,omitempty"`
	Text       string   `json:"text"`
	Tags       []string `json:"tags"`
}
