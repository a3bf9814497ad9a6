package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"
	"github.com/yourusername/fairway-ledger/internal/models"
)

// CachedCourseRepository decorates a CourseRepository with a
// read-through TTL cache. Course records are immutable once a round
// references them, so a short TTL is only needed to pick up newly
// created courses.
type CachedCourseRepository struct {
	inner      CourseRepository
	cache      *cache.Cache
	maxEntries int
}

// NewCachedCourseRepository wraps the given repository with caching
func NewCachedCourseRepository(inner CourseRepository, ttl time.Duration, maxEntries int) *CachedCourseRepository {
	return &CachedCourseRepository{
		inner:      inner,
		cache:      cache.New(ttl, ttl*2),
		maxEntries: maxEntries,
	}
}

// Create inserts a new course and primes the cache
func (r *CachedCourseRepository) Create(ctx context.Context, course *models.Course) error {
	if err := r.inner.Create(ctx, course); err != nil {
		return err
	}
	r.put(course)
	return nil
}

// GetByID retrieves a course, serving from cache when possible
func (r *CachedCourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	if cached, found := r.cache.Get(id.String()); found {
		if course, ok := cached.(*models.Course); ok {
			return course, nil
		}
	}

	course, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.put(course)
	return course, nil
}

// GetByIDs retrieves courses by ID, fetching only cache misses from
// the inner repository.
func (r *CachedCourseRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*models.Course, error) {
	courses := make(map[uuid.UUID]*models.Course, len(ids))
	missing := make([]uuid.UUID, 0, len(ids))

	for _, id := range ids {
		if cached, found := r.cache.Get(id.String()); found {
			if course, ok := cached.(*models.Course); ok {
				courses[id] = course
				continue
			}
		}
		missing = append(missing, id)
	}

	if len(missing) == 0 {
		return courses, nil
	}

	fetched, err := r.inner.GetByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	for id, course := range fetched {
		courses[id] = course
		r.put(course)
	}

	return courses, nil
}

// List delegates to the inner repository; listings are not cached.
func (r *CachedCourseRepository) List(ctx context.Context, limit int) ([]*models.Course, error) {
	return r.inner.List(ctx, limit)
}

func (r *CachedCourseRepository) put(course *models.Course) {
	if r.cache.ItemCount() >= r.maxEntries {
		return
	}
	r.cache.SetDefault(course.ID.String(), course)
}
