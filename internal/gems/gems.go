// Package gems ranks catalogue courses against a student's declared
// interests. It is a deterministic keyword matcher with no AI calls, usable
// offline and as a fallback when the narrative provider is unavailable.
package gems

import (
	"fmt"
	"sort"
	"strings"
)

// Course is the catalogue view the matcher scores against.
type Course struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	University string `json:"university"`
	Faculty    string `json:"faculty"`
}

// Match pairs a recommended course with the reason it was picked.
type Match struct {
	Course Course `json:"course"`
	Reason string `json:"reason"`
}

type scored struct {
	course  Course
	count   int
	longest string
}

// Recommend scores every course by how many interest keywords appear as
// substrings of its name and faculty, drops zero-match courses, sorts by
// match count descending with course name as the tie-break, and returns at
// most maxResults entries. Empty interests yield an empty result.
func Recommend(interests []string, courses []Course, maxResults int) []Match {
	if maxResults <= 0 {
		maxResults = 3
	}

	keywords := expandInterests(interests)
	if len(keywords) == 0 {
		return []Match{}
	}

	var candidates []scored
	for _, course := range courses {
		haystack := strings.ToLower(course.Name + " " + course.Faculty)
		count := 0
		longest := ""
		for _, kw := range keywords {
			if strings.Contains(haystack, kw) {
				count++
				if len(kw) > len(longest) {
					longest = kw
				}
			}
		}
		if count > 0 {
			candidates = append(candidates, scored{course: course, count: count, longest: longest})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].count != candidates[j].count {
			return candidates[i].count > candidates[j].count
		}
		return candidates[i].course.Name < candidates[j].course.Name
	})

	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}

	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		matches = append(matches, Match{
			Course: c.course,
			Reason: fmt.Sprintf("Strong match for your interest in %s", c.longest),
		})
	}
	return matches
}

// expandInterests flattens all interests into a deduplicated keyword list,
// preserving first-seen order.
func expandInterests(interests []string) []string {
	seen := make(map[string]struct{})
	var keywords []string
	for _, interest := range interests {
		for _, kw := range keywordsFor(interest) {
			if _, ok := seen[kw]; ok {
				continue
			}
			seen[kw] = struct{}{}
			keywords = append(keywords, kw)
		}
	}
	return keywords
}
