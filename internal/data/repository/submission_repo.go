package repository

import (
	"context"
	"fmt"
	"strings"

	"taxi-dispatch/internal/data/entity"
	"taxi-dispatch/pkg/database"

	"go.uber.org/zap"
)

// SubmissionFilter narrows the submission log. Zero values match everything.
type SubmissionFilter struct {
	Status entity.SubmissionStatus
	Search string
}

type SubmissionRepository interface {
	Create(ctx context.Context, submission *entity.Submission) error
	FindAll(ctx context.Context, filter SubmissionFilter, limit, offset int) ([]*entity.Submission, error)
	Count(ctx context.Context, filter SubmissionFilter) (int64, error)
	Stats(ctx context.Context) (*entity.SubmissionStats, error)
}

const submissionSchema = `
	CREATE TABLE IF NOT EXISTS holidaytaxis_submissions (
		id               UUID PRIMARY KEY,
		booking_id       TEXT NOT NULL,
		passenger_name   TEXT NOT NULL DEFAULT '',
		reference        TEXT NOT NULL,
		driver_name      TEXT NOT NULL DEFAULT '',
		vehicle_reg      TEXT NOT NULL DEFAULT '',
		status           TEXT NOT NULL,
		message          TEXT NOT NULL DEFAULT '',
		http_status_code INTEGER NOT NULL DEFAULT 0,
		submitted_by     TEXT NOT NULL DEFAULT '',
		attempted_at     TIMESTAMPTZ NOT NULL
	);
	ALTER TABLE holidaytaxis_submissions ADD COLUMN IF NOT EXISTS seq BIGSERIAL;
	CREATE INDEX IF NOT EXISTS idx_holidaytaxis_submissions_attempted_at
		ON holidaytaxis_submissions (attempted_at DESC, seq DESC);
`

type submissionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSubmissionRepository(db database.PgxIface, log *zap.Logger) SubmissionRepository {
	return &submissionRepository{
		db:  db,
		log: log.With(zap.String("repository", "submission")),
	}
}

// EnsureSubmissionSchema creates the submission table when missing.
func EnsureSubmissionSchema(ctx context.Context, db database.PgxIface) error {
	if _, err := db.Exec(ctx, submissionSchema); err != nil {
		return fmt.Errorf("create submission schema: %w", err)
	}
	return nil
}

func (r *submissionRepository) Create(ctx context.Context, submission *entity.Submission) error {
	query := `
		INSERT INTO holidaytaxis_submissions (id, booking_id, passenger_name, reference, driver_name,
		                                      vehicle_reg, status, message, http_status_code,
		                                      submitted_by, attempted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		submission.ID,
		submission.BookingID,
		submission.PassengerName,
		submission.Reference,
		submission.DriverName,
		submission.VehicleReg,
		submission.Status,
		submission.Message,
		submission.HTTPStatusCode,
		submission.SubmittedBy,
		submission.AttemptedAt,
	)

	if err != nil {
		r.log.Error("Failed to create submission",
			zap.Error(err),
			zap.String("booking_id", submission.BookingID),
			zap.String("reference", submission.Reference),
		)
		return fmt.Errorf("create submission for booking %s: %w", submission.BookingID, err)
	}

	return nil
}

func (r *submissionRepository) FindAll(ctx context.Context, filter SubmissionFilter, limit, offset int) ([]*entity.Submission, error) {
	where, args := submissionWhere(filter)
	args = append(args, limit, offset)

	query := fmt.Sprintf(`
		SELECT id, booking_id, passenger_name, reference, driver_name, vehicle_reg,
		       status, message, http_status_code, submitted_by, attempted_at
		FROM holidaytaxis_submissions
		%s
		ORDER BY attempted_at DESC, seq DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list submissions", zap.Error(err))
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	var submissions []*entity.Submission
	for rows.Next() {
		var s entity.Submission
		if err := rows.Scan(
			&s.ID,
			&s.BookingID,
			&s.PassengerName,
			&s.Reference,
			&s.DriverName,
			&s.VehicleReg,
			&s.Status,
			&s.Message,
			&s.HTTPStatusCode,
			&s.SubmittedBy,
			&s.AttemptedAt,
		); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		submissions = append(submissions, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submissions: %w", err)
	}

	return submissions, nil
}

func (r *submissionRepository) Count(ctx context.Context, filter SubmissionFilter) (int64, error) {
	where, args := submissionWhere(filter)
	query := "SELECT COUNT(*) FROM holidaytaxis_submissions " + where

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count submissions", zap.Error(err))
		return 0, fmt.Errorf("count submissions: %w", err)
	}
	return total, nil
}

func (r *submissionRepository) Stats(ctx context.Context) (*entity.SubmissionStats, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'success'),
		       COUNT(*) FILTER (WHERE status = 'failed')
		FROM holidaytaxis_submissions
	`

	var stats entity.SubmissionStats
	if err := r.db.QueryRow(ctx, query).Scan(&stats.Total, &stats.Success, &stats.Failed); err != nil {
		r.log.Error("Failed to get submission stats", zap.Error(err))
		return nil, fmt.Errorf("submission stats: %w", err)
	}
	return &stats, nil
}

// likeEscaper makes ILIKE match the search term literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func submissionWhere(filter SubmissionFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+likeEscaper.Replace(search)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(reference ILIKE $%d OR passenger_name ILIKE $%d OR driver_name ILIKE $%d OR vehicle_reg ILIKE $%d OR message ILIKE $%d)",
			n, n, n, n, n))
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}
