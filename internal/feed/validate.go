package feed

import "github.com/jimezsa/zupro/internal/models"

// SeedStats captures what ValidateSeed dropped.
type SeedStats struct {
	Total     int
	MissingID int
	Duplicate int
	Kept      int
}

// Dropped returns the total records removed during validation.
func (s SeedStats) Dropped() int {
	return s.MissingID + s.Duplicate
}

// ValidateSeed keeps ids unique within the feed. Records without an id are
// dropped and the first occurrence of a repeated id wins. Order is kept.
func ValidateSeed(jobs []models.Job) ([]models.Job, SeedStats) {
	stats := SeedStats{Total: len(jobs)}

	ids := make(map[string]struct{}, len(jobs))
	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if job.ID == "" {
			stats.MissingID++
			continue
		}
		if _, exists := ids[job.ID]; exists {
			stats.Duplicate++
			continue
		}
		ids[job.ID] = struct{}{}
		out = append(out, job)
	}

	stats.Kept = len(out)
	return out, stats
}
