package catalogue

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryRepo is an in-memory Repo preloaded with the seed dataset. Used in
// development when no database is configured, and in tests.
type MemoryRepo struct {
	mu           sync.RWMutex
	courses      map[string]Course
	universities map[string]University
	poolStats    map[string]PoolStat
}

// NewMemoryRepo constructs a MemoryRepo with the built-in dataset.
func NewMemoryRepo() *MemoryRepo {
	repo := &MemoryRepo{
		courses:      make(map[string]Course),
		universities: make(map[string]University),
		poolStats:    make(map[string]PoolStat),
	}
	for _, u := range SeedUniversities() {
		repo.universities[u.ID] = u
	}
	for _, c := range SeedCourses() {
		repo.courses[c.ID] = c
	}
	for _, p := range SeedPoolStats() {
		repo.poolStats[p.CourseID] = p
	}
	return repo
}

// PutCourse inserts or replaces a course. Test helper.
func (r *MemoryRepo) PutCourse(course Course) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.courses[course.ID] = course
}

// GetCourse returns one course by ID.
func (r *MemoryRepo) GetCourse(ctx context.Context, id string) (Course, error) {
	if err := ctx.Err(); err != nil {
		return Course{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	course, ok := r.courses[id]
	if !ok {
		return Course{}, ErrNotFound
	}
	return course, nil
}

// ListCourses returns courses matching the filter, ordered by name.
func (r *MemoryRepo) ListCourses(ctx context.Context, filter CourseFilter) ([]Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	var courses []Course
	for _, course := range r.courses {
		if filter.UniversityID != "" && course.UniversityID != filter.UniversityID {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(course.Name), query) &&
			!strings.Contains(strings.ToLower(course.Faculty), query) {
			continue
		}
		courses = append(courses, course)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].Name < courses[j].Name })
	return courses, nil
}

// ListByFaculty returns all courses in a faculty except the given one.
func (r *MemoryRepo) ListByFaculty(ctx context.Context, faculty, excludeCourseID string) ([]Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var courses []Course
	for _, course := range r.courses {
		if course.Faculty != faculty || course.ID == excludeCourseID {
			continue
		}
		courses = append(courses, course)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].Name < courses[j].Name })
	return courses, nil
}

// ListUniversities returns all universities ordered by name.
func (r *MemoryRepo) ListUniversities(ctx context.Context) ([]University, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	unis := make([]University, 0, len(r.universities))
	for _, u := range r.universities {
		unis = append(unis, u)
	}
	sort.Slice(unis, func(i, j int) bool { return unis[i].Name < unis[j].Name })
	return unis, nil
}

// GetPoolStat returns the historical pool for a course.
func (r *MemoryRepo) GetPoolStat(ctx context.Context, courseID string) (PoolStat, error) {
	if err := ctx.Err(); err != nil {
		return PoolStat{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	stat, ok := r.poolStats[courseID]
	if !ok {
		return PoolStat{}, ErrNotFound
	}
	return stat, nil
}
