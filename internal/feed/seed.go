package feed

import (
	"errors"
	"os"
	"strings"

	"github.com/jimezsa/zupro/internal/models"
	"github.com/yosuke-furukawa/json5/encoding/json5"
)

var ErrEmptyPath = errors.New("path is required")

// DefaultSeed is the built-in feed used when no seed file is configured.
func DefaultSeed() []models.Job {
	return []models.Job{
		{
			ID:          "1",
			Title:       "Tile Mason",
			Location:    "Andheri East, Mumbai",
			JoiningDate: "26 Feb 2026, 7:00 AM",
			MapURL:      "https://maps.google.com/?q=Andheri+East+Mumbai",
			PayLabel:    "₹1,200/day",
		},
		{
			ID:          "2",
			Title:       "Warehouse Helper",
			Location:    "Bhiwandi, Thane",
			JoiningDate: "26 Feb 2026, 2:30 PM",
			MapURL:      "https://maps.google.com/?q=Bhiwandi+Thane",
			PayLabel:    "₹18,000/month",
		},
		{
			ID:          "3",
			Title:       "House Painter",
			Location:    "Whitefield, Bengaluru",
			JoiningDate: "27 Feb 2026, 8:00 AM",
			MapURL:      "https://maps.google.com/?q=Whitefield+Bengaluru",
			PayLabel:    "Starts at ₹900/day",
		},
	}
}

// seedRecord accepts both snake_case and camelCase spellings, and
// start_date as an alias of joining_date.
type seedRecord struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Location         string `json:"location"`
	JoiningDate      string `json:"joining_date"`
	JoiningDateCamel string `json:"joiningDate"`
	StartDate        string `json:"start_date"`
	StartDateCamel   string `json:"startDate"`
	MapURL           string `json:"map_url"`
	MapURLCamel      string `json:"mapUrl"`
	PayLabel         string `json:"pay_label"`
	PayLabelCamel    string `json:"payLabel"`
}

func (r seedRecord) job() models.Job {
	return models.Job{
		ID:          strings.TrimSpace(r.ID),
		Title:       strings.TrimSpace(r.Title),
		Location:    strings.TrimSpace(r.Location),
		JoiningDate: firstNonEmpty(r.JoiningDate, r.JoiningDateCamel, r.StartDate, r.StartDateCamel),
		MapURL:      firstNonEmpty(r.MapURL, r.MapURLCamel),
		PayLabel:    firstNonEmpty(r.PayLabel, r.PayLabelCamel),
	}
}

// LoadSeed reads a JSON5 array of jobs, or an object with a "jobs" array.
func LoadSeed(path string) ([]models.Job, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSeed(data)
}

func ParseSeed(data []byte) ([]models.Job, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return []models.Job{}, nil
	}

	var records []seedRecord
	if err := json5.Unmarshal(data, &records); err != nil {
		var wrapped struct {
			Jobs []seedRecord `json:"jobs"`
		}
		if wrappedErr := json5.Unmarshal(data, &wrapped); wrappedErr != nil {
			return nil, err
		}
		records = wrapped.Jobs
	}

	jobs := make([]models.Job, 0, len(records))
	for _, record := range records {
		jobs = append(jobs, record.job())
	}
	return jobs, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			return value
		}
	}
	return ""
}
