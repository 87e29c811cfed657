package repository

import (
	"taxi-dispatch/pkg/database"

	"go.uber.org/zap"
)

// Repository groups the stores the gateway owns. Bookings, vehicles and
// drivers live in the backend and are reached through pkg/backend.
type Repository struct {
	Submission SubmissionRepository
}

// NewRepository uses Postgres when db is non-nil, memory otherwise.
func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	if db == nil {
		log.Warn("No database configured, submission log kept in memory")
		return &Repository{
			Submission: NewMemorySubmissionRepository(),
		}
	}

	return &Repository{
		Submission: NewSubmissionRepository(db, log),
	}
}
