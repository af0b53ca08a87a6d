package repository

import (
	"context"
	"database/sql"
	"fmt"

	"coursecatalog/internal/model"

	"github.com/rs/zerolog"
)

// CourseRepository defines the interface for reading course data
type CourseRepository interface {
	// ListCourses returns every row of the courses table
	ListCourses(ctx context.Context) ([]model.Course, error)
}

type courseRepo struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewCourseRepo creates a new CourseRepository
func NewCourseRepo(db *sql.DB, logger zerolog.Logger) CourseRepository {
	return &courseRepo{db: db, logger: logger.With().Str("repository", "course").Logger()}
}

// ListCourses retrieves all courses, unfiltered and in storage order
func (r *courseRepo) ListCourses(ctx context.Context) ([]model.Course, error) {
	query := `
		SELECT code, name, "desc", Prerequisite, Corequisite, RecommendedPreparation,
		       DistributionRequirementStatus, BreadthRequirement, Exclusion, lectimes
		FROM courses
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(
			&c.Code,
			&c.Name,
			&c.Description,
			&c.Prerequisite,
			&c.Corequisite,
			&c.RecommendedPreparation,
			&c.DistributionRequirementStatus,
			&c.BreadthRequirement,
			&c.Exclusion,
			&c.LectureTimes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan course row: %w", err)
		}
		courses = append(courses, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate course rows: %w", err)
	}

	// If no courses found, return an empty slice, not nil
	if len(courses) == 0 {
		return []model.Course{}, nil
	}

	r.logger.Debug().Int("count", len(courses)).Msg("Loaded courses")
	return courses, nil
}
