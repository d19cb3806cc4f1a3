package statements

import "math"

// RubricCell is one scored rubric dimension.
type RubricCell struct {
	Score            int      `json:"score"`
	Why              []string `json:"why"`
	EvidenceSnippets []string `json:"evidence_snippets"`
}

// rubricWeights sums to 100. The three question dimensions carry most of
// the weight, mirroring how UCAS reviewers read the new format.
var rubricWeights = []struct {
	key    string
	weight int
}{
	{"q1_motivation_course_fit", 18},
	{"q2_academic_preparation", 18},
	{"q3_supercurricular_value", 18},
	{"specificity_evidence_density", 14},
	{"reflection_intellectual_maturity", 14},
	{"structure_coherence", 10},
	{"writing_clarity_tone", 8},
}

// RubricKeys returns the dimension keys in weight order.
func RubricKeys() []string {
	keys := make([]string, 0, len(rubricWeights))
	for _, w := range rubricWeights {
		keys = append(keys, w.key)
	}
	return keys
}

// WeightedScore converts per-dimension 0-10 scores into a 0-100 total.
func WeightedScore(rubric map[string]RubricCell) int {
	total := 0.0
	for _, w := range rubricWeights {
		cell, ok := rubric[w.key]
		if !ok {
			continue
		}
		total += float64(cell.Score) / 10.0 * float64(w.weight)
	}
	return int(math.Round(total))
}

// BandFor buckets a weighted total into the published statement bands.
func BandFor(total int) string {
	switch {
	case total <= 39:
		return "Weak"
	case total <= 64:
		return "OK"
	case total <= 84:
		return "Strong"
	default:
		return "Exceptional"
	}
}

// SanitizeRubric fills missing dimensions with a neutral score and clamps
// model-supplied scores to 0-10. Model output is never trusted as-is.
func SanitizeRubric(rubric map[string]RubricCell) map[string]RubricCell {
	clean := make(map[string]RubricCell, len(rubricWeights))
	for _, w := range rubricWeights {
		cell, ok := rubric[w.key]
		if !ok {
			clean[w.key] = RubricCell{Score: 5, Why: []string{}, EvidenceSnippets: []string{}}
			continue
		}
		if cell.Score < 0 {
			cell.Score = 0
		}
		if cell.Score > 10 {
			cell.Score = 10
		}
		if cell.Why == nil {
			cell.Why = []string{}
		}
		if cell.EvidenceSnippets == nil {
			cell.EvidenceSnippets = []string{}
		}
		clean[w.key] = cell
	}
	return clean
}
