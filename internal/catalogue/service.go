package catalogue

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"offr-backend/internal/shared/metrics"
)

const maxAlternatives = 3

// Service wraps the catalogue repo with a read-through course cache.
type Service struct {
	repo  Repo
	cache Cache
}

// NewService builds a catalogue service. cache may be NoopCache.
func NewService(repo Repo, cache Cache) *Service {
	if cache == nil {
		cache = NoopCache{}
	}
	return &Service{repo: repo, cache: cache}
}

// GetCourse fetches a course, serving from cache when possible.
func (s *Service) GetCourse(ctx context.Context, id string) (Course, error) {
	key := "course:" + id
	if cached, ok := s.cache.Get(ctx, key); ok {
		var course Course
		if err := json.Unmarshal(cached, &course); err == nil {
			metrics.RecordCacheHit()
			return course, nil
		}
	}
	metrics.RecordCacheMiss()

	course, err := s.repo.GetCourse(ctx, id)
	if err != nil {
		return Course{}, err
	}
	if encoded, err := json.Marshal(course); err == nil {
		s.cache.Set(ctx, key, encoded)
	}
	return course, nil
}

// ListCourses returns courses matching the filter.
func (s *Service) ListCourses(ctx context.Context, filter CourseFilter) ([]Course, error) {
	return s.repo.ListCourses(ctx, filter)
}

// ListUniversities returns all universities.
func (s *Service) ListUniversities(ctx context.Context) ([]University, error) {
	return s.repo.ListUniversities(ctx)
}

// GetPoolStat returns the historical pool for a course, or ErrNotFound.
func (s *Service) GetPoolStat(ctx context.Context, courseID string) (PoolStat, error) {
	return s.repo.GetPoolStat(ctx, courseID)
}

// Alternatives suggests up to three same-faculty courses whose threshold on
// the applicant's curriculum is at or below the target, ordered by
// threshold then name.
func (s *Service) Alternatives(ctx context.Context, course Course, curriculum string, maxTarget *int) ([]Course, error) {
	pool, err := s.repo.ListByFaculty(ctx, course.Faculty, course.ID)
	if err != nil {
		return nil, err
	}

	var candidates []Course
	for _, candidate := range pool {
		threshold := candidate.ThresholdFor(curriculum)
		if threshold == nil {
			continue
		}
		if maxTarget != nil && *threshold > *maxTarget {
			continue
		}
		candidates = append(candidates, candidate)
	}

	sort.Slice(candidates, func(i, j int) bool {
		ti := *candidates[i].ThresholdFor(curriculum)
		tj := *candidates[j].ThresholdFor(curriculum)
		if ti != tj {
			return ti < tj
		}
		return candidates[i].Name < candidates[j].Name
	})

	if len(candidates) > maxAlternatives {
		candidates = candidates[:maxAlternatives]
	}
	return candidates, nil
}

// IsNotFound reports whether err is the catalogue's missing-row sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
