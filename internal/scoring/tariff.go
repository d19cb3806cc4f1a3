package scoring

import (
	"fmt"
	"sort"
	"strings"
)

// UCAS-style tariff points per A-level letter grade. One letter grade step
// is worth 8 points on this scale.
var aLevelTariff = map[string]int{
	"A*": 56,
	"A":  48,
	"B":  40,
	"C":  32,
	"D":  24,
	"E":  16,
}

const tariffPointsPerGradeStep = 8

func normalizeLetterGrade(grade string) string {
	return strings.ToUpper(strings.TrimSpace(grade))
}

// normalizeIB sums HL and SL predicted grades plus core points (0-45).
func normalizeIB(grades *IBGrades) (int, error) {
	if grades.CorePoints < 0 || grades.CorePoints > 3 {
		return 0, fmt.Errorf("%w: core_points must be 0..3, got %d", ErrValidation, grades.CorePoints)
	}
	total := grades.CorePoints
	for _, g := range append(append([]IBGrade{}, grades.HL...), grades.SL...) {
		if g.Grade < 1 || g.Grade > 7 {
			return 0, fmt.Errorf("%w: IB grade for %q must be 1..7, got %d", ErrValidation, g.Subject, g.Grade)
		}
		total += g.Grade
	}
	return total, nil
}

// normalizeALevels maps letter grades to tariff points and sums the top N,
// where N is the number of required subjects, or all grades if unspecified.
func normalizeALevels(grades *ALevelGrades, requiredCount int) (int, error) {
	points := make([]int, 0, len(grades.Predicted))
	for _, g := range grades.Predicted {
		p, ok := aLevelTariff[normalizeLetterGrade(g.Grade)]
		if !ok {
			return 0, fmt.Errorf("%w: unknown A-level grade %q for %q", ErrValidation, g.Grade, g.Subject)
		}
		points = append(points, p)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(points)))

	count := len(points)
	if requiredCount > 0 && requiredCount < count {
		count = requiredCount
	}
	total := 0
	for _, p := range points[:count] {
		total += p
	}
	return total, nil
}
