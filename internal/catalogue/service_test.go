package catalogue

import (
	"context"
	"testing"
)

func TestAlternativesSameFacultyWithinTarget(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo, NoopCache{})
	ctx := context.Background()

	course, err := svc.GetCourse(ctx, "imperial-computing")
	if err != nil {
		t.Fatalf("GetCourse: %v", err)
	}

	target := 38
	alternatives, err := svc.Alternatives(ctx, course, "IB", &target)
	if err != nil {
		t.Fatalf("Alternatives: %v", err)
	}
	if len(alternatives) == 0 || len(alternatives) > 3 {
		t.Fatalf("expected 1..3 alternatives, got %d", len(alternatives))
	}
	for _, alt := range alternatives {
		if alt.Faculty != course.Faculty {
			t.Fatalf("alternative %s is outside faculty %s", alt.ID, course.Faculty)
		}
		if alt.ID == course.ID {
			t.Fatalf("course suggested as its own alternative")
		}
		if threshold := alt.ThresholdFor("IB"); threshold == nil || *threshold > target {
			t.Fatalf("alternative %s exceeds target threshold: %v", alt.ID, threshold)
		}
	}
	for i := 1; i < len(alternatives); i++ {
		prev := *alternatives[i-1].ThresholdFor("IB")
		cur := *alternatives[i].ThresholdFor("IB")
		if prev > cur {
			t.Fatalf("alternatives not ordered by threshold: %d before %d", prev, cur)
		}
	}
}

func TestAlternativesNoTargetReturnsFacultyPeers(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo, NoopCache{})

	course, err := svc.GetCourse(context.Background(), "durham-history")
	if err != nil {
		t.Fatalf("GetCourse: %v", err)
	}
	alternatives, err := svc.Alternatives(context.Background(), course, "IB", nil)
	if err != nil {
		t.Fatalf("Alternatives: %v", err)
	}
	if len(alternatives) == 0 {
		t.Fatalf("expected at least one same-faculty alternative")
	}
}

func TestListCoursesFilterByQuery(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo, NoopCache{})

	courses, err := svc.ListCourses(context.Background(), CourseFilter{Query: "economics"})
	if err != nil {
		t.Fatalf("ListCourses: %v", err)
	}
	// Economics BSc at LSE and Warwick, plus PPE at Oxford
	if len(courses) != 3 {
		t.Fatalf("expected 3 matches for economics, got %d", len(courses))
	}

	courses, err = svc.ListCourses(context.Background(), CourseFilter{UniversityID: "exeter"})
	if err != nil {
		t.Fatalf("ListCourses: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("expected 2 exeter courses, got %d", len(courses))
	}
}

func TestMemoryRepoSeedIntegrity(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	unis, err := repo.ListUniversities(ctx)
	if err != nil {
		t.Fatalf("ListUniversities: %v", err)
	}
	if len(unis) != 14 {
		t.Fatalf("expected 14 universities, got %d", len(unis))
	}

	courses, err := repo.ListCourses(ctx, CourseFilter{})
	if err != nil {
		t.Fatalf("ListCourses: %v", err)
	}
	uniIDs := make(map[string]bool)
	for _, u := range unis {
		uniIDs[u.ID] = true
	}
	for _, course := range courses {
		if !uniIDs[course.UniversityID] {
			t.Fatalf("course %s references unknown university %s", course.ID, course.UniversityID)
		}
	}

	for _, stat := range SeedPoolStats() {
		if _, err := repo.GetCourse(ctx, stat.CourseID); err != nil {
			t.Fatalf("pool stat references unknown course %s", stat.CourseID)
		}
		if stat.SampleSize != len(stat.Distribution) {
			t.Fatalf("pool stat %s sample size %d != distribution length %d", stat.CourseID, stat.SampleSize, len(stat.Distribution))
		}
	}
}
