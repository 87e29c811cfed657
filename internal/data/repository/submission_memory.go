package repository

import (
	"context"
	"slices"
	"sync"

	"taxi-dispatch/internal/data/entity"
	"taxi-dispatch/pkg/listing"
)

// memorySubmissionRepository keeps the log in process when no database is
// configured. Entries are lost on restart.
type memorySubmissionRepository struct {
	mu          sync.RWMutex
	submissions []entity.Submission
}

func NewMemorySubmissionRepository() SubmissionRepository {
	return &memorySubmissionRepository{}
}

func (r *memorySubmissionRepository) Create(_ context.Context, submission *entity.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.submissions = append(r.submissions, *submission)
	return nil
}

func (r *memorySubmissionRepository) FindAll(_ context.Context, filter SubmissionFilter, limit, offset int) ([]*entity.Submission, error) {
	matched := r.matching(filter)
	offset = max(offset, 0)
	if offset >= len(matched) {
		return nil, nil
	}
	end := len(matched)
	if limit > 0 {
		end = min(offset+limit, end)
	}

	out := make([]*entity.Submission, 0, end-offset)
	for i := offset; i < end; i++ {
		s := matched[i]
		out = append(out, &s)
	}
	return out, nil
}

func (r *memorySubmissionRepository) Count(_ context.Context, filter SubmissionFilter) (int64, error) {
	return int64(len(r.matching(filter))), nil
}

func (r *memorySubmissionRepository) Stats(_ context.Context) (*entity.SubmissionStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &entity.SubmissionStats{Total: int64(len(r.submissions))}
	for _, s := range r.submissions {
		switch s.Status {
		case entity.SubmissionStatusSuccess:
			stats.Success++
		case entity.SubmissionStatusFailed:
			stats.Failed++
		}
	}
	return stats, nil
}

// matching returns newest-first copies that pass filter. Equal attempt
// times keep the most recent insert first, like seq DESC in Postgres.
func (r *memorySubmissionRepository) matching(filter SubmissionFilter) []entity.Submission {
	r.mu.RLock()
	snapshot := slices.Clone(r.submissions)
	r.mu.RUnlock()

	slices.Reverse(snapshot)

	matched := listing.Filter(snapshot, filter.Search,
		func(s entity.Submission) []string {
			return []string{s.Reference, s.PassengerName, s.DriverName, s.VehicleReg, s.Message}
		},
		listing.Equals(func(s entity.Submission) entity.SubmissionStatus { return s.Status }, string(filter.Status)),
	)

	listing.SortStable(matched, func(a, b entity.Submission) int {
		return -a.AttemptedAt.Compare(b.AttemptedAt)
	}, false)
	return matched
}
