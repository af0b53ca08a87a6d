package repository

import (
	"context"
	"database/sql"
	"fmt"

	"coursecatalog/internal/model"

	"github.com/rs/zerolog"
)

// OfferingRepository defines the interface for reading timetable data
type OfferingRepository interface {
	// ListOfferings returns every row of the timetable table
	ListOfferings(ctx context.Context) ([]model.Offering, error)
}

type offeringRepo struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewOfferingRepo creates a new OfferingRepository
func NewOfferingRepo(db *sql.DB, logger zerolog.Logger) OfferingRepository {
	return &offeringRepo{db: db, logger: logger.With().Str("repository", "offering").Logger()}
}

func (r *offeringRepo) ListOfferings(ctx context.Context) ([]model.Offering, error) {
	query := `
		SELECT code, term, name, section, waitlist, time, location, instructor,
		       EnrollmentCode, EnrollmentControlLink
		FROM timetable
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query timetable: %w", err)
	}
	defer rows.Close()

	offerings := []model.Offering{}
	for rows.Next() {
		var o model.Offering
		if err := rows.Scan(
			&o.Code,
			&o.Term,
			&o.Name,
			&o.Section,
			&o.Waitlist,
			&o.Time,
			&o.Location,
			&o.Instructor,
			&o.EnrollmentCode,
			&o.EnrollmentControlLink,
		); err != nil {
			return nil, fmt.Errorf("failed to scan timetable row: %w", err)
		}
		offerings = append(offerings, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate timetable rows: %w", err)
	}

	r.logger.Debug().Int("count", len(offerings)).Msg("Loaded offerings")
	return offerings, nil
}
