package db

// Record is the per-character output row consumed by the addon layer:
// lookup by character, direct field reads, no further parsing needed.
type Record struct {
	ID               int64  `json:"-"`
	Character        string `json:"-"`
	Keyword          string `json:"keyword"`
	Reading          string `json:"reading"`
	Decomposition    string `json:"decomposition"`
	ComponentsDetail string `json:"components_detail"`
	Spatial          string `json:"spatial"`
	IDS              string `json:"ids"`
	Tags             string `json:"tags"`
}
