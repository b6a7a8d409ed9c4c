// Package feed owns the in-memory list of job postings behind the home feed.
package feed

import "github.com/jimezsa/zupro/internal/models"

// Store holds the seed list and the currently visible jobs. Skipping removes
// from the visible list only; Reload always restores the full seed.
type Store struct {
	seed []models.Job
	jobs []models.Job
}

func NewStore(seed []models.Job) *Store {
	s := &Store{seed: clone(seed)}
	s.jobs = clone(s.seed)
	return s
}

// Initialize resets the visible list to the seed and returns a copy of it.
func (s *Store) Initialize() []models.Job {
	s.jobs = clone(s.seed)
	return s.Jobs()
}

// Remove drops the job with id from the visible list. Unknown ids leave the
// list unchanged.
func (s *Store) Remove(id string) []models.Job {
	s.jobs = Remove(s.jobs, id)
	return s.Jobs()
}

// Reload replaces the visible list with a fresh copy of the seed, bringing
// back anything that was skipped.
func (s *Store) Reload() []models.Job {
	s.jobs = clone(s.seed)
	return s.Jobs()
}

func (s *Store) Jobs() []models.Job {
	return clone(s.jobs)
}

func (s *Store) Seed() []models.Job {
	return clone(s.seed)
}

func (s *Store) Len() int {
	return len(s.jobs)
}

// Empty reports whether the "no more jobs" notice should be shown.
func (s *Store) Empty() bool {
	return len(s.jobs) == 0
}

func (s *Store) Find(id string) (models.Job, bool) {
	for _, job := range s.jobs {
		if job.ID == id {
			return job, true
		}
	}
	return models.Job{}, false
}

// Remove returns a new list without the job matching id.
func Remove(jobs []models.Job, id string) []models.Job {
	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if job.ID == id {
			continue
		}
		out = append(out, job)
	}
	return out
}

func clone(jobs []models.Job) []models.Job {
	out := make([]models.Job, len(jobs))
	copy(out, jobs)
	return out
}
