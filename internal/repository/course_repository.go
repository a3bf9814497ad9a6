package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yourusername/fairway-ledger/internal/database"
	"github.com/yourusername/fairway-ledger/internal/models"
)

const errScanCourse = "failed to scan course: %w"

// PostgresCourseRepository implements CourseRepository for PostgreSQL.
// Hole lists are stored as JSONB alongside the course row.
type PostgresCourseRepository struct {
	db *database.DB
}

// NewPostgresCourseRepository creates a new course repository
func NewPostgresCourseRepository(db *database.DB) CourseRepository {
	return &PostgresCourseRepository{db: db}
}

// Create inserts a new course
func (r *PostgresCourseRepository) Create(ctx context.Context, course *models.Course) error {
	holes, err := json.Marshal(course.Holes)
	if err != nil {
		return fmt.Errorf("failed to marshal holes: %w", err)
	}

	query := `
		INSERT INTO courses (id, name, holes, rating, slope)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err = r.db.GetPool().Exec(ctx, query,
		course.ID, course.Name, holes, course.Rating, course.Slope,
	)
	if err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *PostgresCourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	query := `
		SELECT id, name, holes, rating, slope
		FROM courses WHERE id = $1
	`

	course, err := scanCourse(r.db.GetPool().QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	return course, nil
}

// GetByIDs retrieves the resolvable subset of the given course IDs,
// keyed by ID. Missing courses produce no entry rather than an error;
// the computation layer skips rounds whose course does not resolve.
func (r *PostgresCourseRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Course, error) {
	courses := make(map[uuid.UUID]*models.Course, len(ids))
	if len(ids) == 0 {
		return courses, nil
	}

	query := `
		SELECT id, name, holes, rating, slope
		FROM courses WHERE id = ANY($1)
	`

	rows, err := r.db.GetPool().Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf(errScanCourse, err)
		}
		courses[course.ID] = course
	}

	return courses, rows.Err()
}

// List retrieves courses ordered by name
func (r *PostgresCourseRepository) List(ctx context.Context, limit int) ([]*models.Course, error) {
	query := `
		SELECT id, name, holes, rating, slope
		FROM courses
		ORDER BY name ASC
		LIMIT $1
	`

	rows, err := r.db.GetPool().Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := make([]*models.Course, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf(errScanCourse, err)
		}
		courses = append(courses, course)
	}

	return courses, rows.Err()
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	course := &models.Course{}
	var holes []byte
	if err := row.Scan(&course.ID, &course.Name, &holes, &course.Rating, &course.Slope); err != nil {
		return nil, err
	}
	if len(holes) > 0 {
		if err := json.Unmarshal(holes, &course.Holes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal holes: %w", err)
		}
	}
	return course, nil
}
