package advisor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/shopspring/decimal"

	"radio-mediaplan/internal/core/domain"
)

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// adviceDTO mirrors the JSON the model is asked to produce. Numbers are
// decoded leniently because models mix "20", 20 and "20 сек".
type adviceDTO struct {
	Strategy            domain.Strategy `json:"strategy"`
	RecommendedStations []struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Freq   string `json:"freq"`
		Reason string `json:"reason"`
	} `json:"recommendedStations"`
	SlotIndices  []flexInt       `json:"slotIndices"`
	CampaignDays flexInt         `json:"campaignDays"`
	Duration     flexInt         `json:"duration"`
	Creative     domain.Creative `json:"creative"`
	Scripts      []struct {
		Title    string  `json:"title"`
		Duration flexInt `json:"duration"`
		Text     string  `json:"text"`
	} `json:"scripts"`
	Calculation *calculationDTO `json:"calculation"`
}

type calculationDTO struct {
	StationsCount  float64 `json:"stations_count"`
	SpotsPerDay    float64 `json:"spots_per_day"`
	CampaignDays   float64 `json:"campaign_days"`
	TotalSpots     float64 `json:"total_spots"`
	EstimatedReach float64 `json:"estimated_reach"`
	EstimatedCost  float64 `json:"estimated_cost"`
	CostPerContact float64 `json:"cost_per_contact"`
}

func (d adviceDTO) toDomain() *domain.Advice {
	out := &domain.Advice{
		Strategy:        d.Strategy,
		Days:            int(d.CampaignDays),
		DurationSeconds: int(d.Duration),
		Creative:        d.Creative,
	}
	for _, s := range d.RecommendedStations {
		out.Stations = append(out.Stations, domain.RecommendedStation{
			StationID: s.ID,
			Name:      s.Name,
			Frequency: s.Freq,
			Reason:    s.Reason,
		})
	}
	for _, i := range d.SlotIndices {
		out.SlotIndices = append(out.SlotIndices, int(i))
	}
	for _, s := range d.Scripts {
		out.Scripts = append(out.Scripts, domain.Script{Title: s.Title, DurationSeconds: int(s.Duration), Text: s.Text})
	}
	if c := d.Calculation; c != nil {
		out.Reported = &domain.Calculation{
			StationsCount:  int(math.Round(c.StationsCount)),
			SpotsPerDay:    int64(math.Round(c.SpotsPerDay)),
			CampaignDays:   int(math.Round(c.CampaignDays)),
			TotalSpots:     int64(math.Round(c.TotalSpots)),
			EstimatedReach: int64(math.Round(c.EstimatedReach)),
			EstimatedCost:  int64(math.Round(c.EstimatedCost)),
			CostPerContact: domain.NewFixed2(decimal.NewFromFloat(c.CostPerContact)),
		}
	}
	return out
}

var leadingInt = regexp.MustCompile(`-?\d+`)

// flexInt accepts a JSON number, a numeric string or a string starting with
// a number ("20 сек"). Anything else decodes to zero.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		m := leadingInt.FindString(s)
		if m == "" {
			*f = 0
			return nil
		}
		n, err := strconv.Atoi(m)
		if err != nil {
			return fmt.Errorf("decode %q: %w", s, err)
		}
		*f = flexInt(n)
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexInt(math.Round(n))
	return nil
}
