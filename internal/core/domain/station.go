package domain

// Station represents one radio station sold as advertising inventory.
// Listeners is the baseline daily audience used as the raw input of reach
// estimation.
type Station struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Frequency string   `json:"frequency"`
	Cities    []string `json:"cities"`
	Audience  string   `json:"audience"` // target age descriptor, e.g. "30–55 лет"
	Color     string   `json:"color"`
	Logo      string   `json:"logo"`
	Listeners int64    `json:"listeners"`
}
