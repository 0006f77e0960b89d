package model

// ScriptParagraph is one ordered paragraph of narration for a spot and language.
type ScriptParagraph struct {
	ID          int64  `json:"id"`
	SpotID      int64  `json:"spot_id"`
	OrderInSpot int    `json:"order_in_spot"`
	Language    string `json:"language"`
	Text        string `json:"text"`
}
