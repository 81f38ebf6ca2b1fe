package domain

import "time"

// PlanSource tells where a media plan's station and slot selection came from.
type PlanSource string

const (
	SourceAI       PlanSource = "ai"
	SourceFallback PlanSource = "fallback"
	SourceManual   PlanSource = "manual"
)

type Strategy struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// RecommendedStation is a station suggested for a campaign along with the
// reason it fits. StationID is empty until resolved against the catalog.
type RecommendedStation struct {
	StationID string `json:"stationId"`
	Name      string `json:"name"`
	Frequency string `json:"freq"`
	Reason    string `json:"reason"`
}

type Creative struct {
	Tips  []string `json:"tips"`
	Hooks []string `json:"hooks"`
}

// Script is one variant of the commercial's text.
type Script struct {
	Title           string `json:"title"`
	DurationSeconds int    `json:"duration"`
	Text            string `json:"text"`
}

// Advice is what the planner model recommends for a business description.
// It only selects stations, slots and flight parameters. Reported carries the
// numbers the model computed itself; they are informational and never used
// for pricing.
type Advice struct {
	Strategy        Strategy             `json:"strategy"`
	Stations        []RecommendedStation `json:"recommendedStations"`
	SlotIndices     []int                `json:"slotIndices"`
	Days            int                  `json:"campaignDays"`
	DurationSeconds int                  `json:"duration"`
	Creative        Creative             `json:"creative"`
	Scripts         []Script             `json:"scripts"`
	Reported        *Calculation         `json:"calculation,omitempty"`
}

// PlanDraft is a media plan before pricing.
type PlanDraft struct {
	Query    string               `json:"query"`
	Source   PlanSource           `json:"source"`
	Strategy Strategy             `json:"strategy"`
	Stations []RecommendedStation `json:"recommendedStations"`
	Creative Creative             `json:"creative"`
	Scripts  []Script             `json:"scripts"`
	Input    PlanInput            `json:"input"`
}

// MediaPlan is a draft priced by the calculator.
type MediaPlan struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	PlanDraft
	Result      PlanResult  `json:"result"`
	Calculation Calculation `json:"calculation"`
}
