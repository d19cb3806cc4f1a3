package catalogue

import "context"

// Repo defines read operations over the course catalogue.
type Repo interface {
	GetCourse(ctx context.Context, id string) (Course, error)
	ListCourses(ctx context.Context, filter CourseFilter) ([]Course, error)
	ListByFaculty(ctx context.Context, faculty, excludeCourseID string) ([]Course, error)
	ListUniversities(ctx context.Context) ([]University, error)
	GetPoolStat(ctx context.Context, courseID string) (PoolStat, error)
}
