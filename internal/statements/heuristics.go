package statements

import (
	"regexp"
	"strings"
)

// Format values for a personal statement submission.
const (
	FormatUCAS3Q = "UCAS_3Q"
	FormatSingle = "SINGLE"
)

const (
	minQuestionChars = 350
	maxTotalChars    = 4000
)

// Input is a personal statement as submitted. UCAS_3Q uses the three
// question fields; SINGLE uses Statement.
type Input struct {
	Format      string `json:"format"`
	Q1          string `json:"q1"`
	Q2          string `json:"q2"`
	Q3          string `json:"q3"`
	Statement   string `json:"statement"`
	RewriteMode bool   `json:"rewrite_mode"`
}

// FullText concatenates the statement text regardless of format.
func (in Input) FullText() string {
	if in.Format == FormatUCAS3Q {
		return strings.TrimSpace(in.Q1 + "\n" + in.Q2 + "\n" + in.Q3)
	}
	return strings.TrimSpace(in.Statement)
}

// Present reports whether any statement field carries text.
func (in Input) Present() bool {
	return in.FullText() != ""
}

// Constraints reports UCAS character-limit compliance.
type Constraints struct {
	Q1Chars    int      `json:"q1_chars"`
	Q2Chars    int      `json:"q2_chars"`
	Q3Chars    int      `json:"q3_chars"`
	TotalChars int      `json:"total_chars"`
	Warnings   []string `json:"warnings"`
}

// ComputeConstraints checks the statement against UCAS limits: each of the
// three questions should reach 350 characters and the total must stay
// within 4,000.
func ComputeConstraints(in Input) Constraints {
	warnings := []string{}
	if in.Format == FormatUCAS3Q {
		q1, q2, q3 := len(in.Q1), len(in.Q2), len(in.Q3)
		total := q1 + q2 + q3
		if q1 > 0 && q1 < minQuestionChars {
			warnings = append(warnings, "Q1 below 350 characters.")
		}
		if q2 > 0 && q2 < minQuestionChars {
			warnings = append(warnings, "Q2 below 350 characters.")
		}
		if q3 > 0 && q3 < minQuestionChars {
			warnings = append(warnings, "Q3 below 350 characters.")
		}
		if total > maxTotalChars {
			warnings = append(warnings, "Total above 4,000 characters.")
		}
		return Constraints{Q1Chars: q1, Q2Chars: q2, Q3Chars: q3, TotalChars: total, Warnings: warnings}
	}
	total := len(in.Statement)
	if total > maxTotalChars {
		warnings = append(warnings, "Total above 4,000 characters.")
	}
	return Constraints{TotalChars: total, Warnings: warnings}
}

// Heuristics are cheap deterministic signals computed before any AI call.
type Heuristics struct {
	EvidenceMarkersCount    int      `json:"evidence_markers_count"`
	ClicheFlags             []string `json:"cliche_flags"`
	SpecificityEstimate     int      `json:"specificity_estimate"`
	RepetitionNgramClusters int      `json:"repetition_ngram_clusters"`
}

var evidenceMarkers = []string{
	"i learned", "i realised", "i realized", "this led me",
	"i investigated", "i analysed", "i analyzed", "which showed", "because",
}

var clichePhrases = []string{
	"since i was young", "from a young age", "always been fascinated",
	"i am passionate", "i've always been passionate", "dream to", "ever since",
}

var (
	properNounRe = regexp.MustCompile(`\b[A-Z][a-z]{2,}\b`)
	wordRe       = regexp.MustCompile(`[A-Za-z']+`)
)

// ComputeHeuristics counts evidence markers and cliches, estimates
// specificity via proper nouns, and flags 4-gram clusters repeated three
// or more times.
func ComputeHeuristics(text string) Heuristics {
	lower := strings.ToLower(text)

	evidence := 0
	for _, marker := range evidenceMarkers {
		evidence += strings.Count(lower, marker)
	}

	cliches := []string{}
	for _, phrase := range clichePhrases {
		if strings.Contains(lower, phrase) {
			cliches = append(cliches, phrase)
		}
	}

	properNouns := len(properNounRe.FindAllString(text, -1))

	words := wordRe.FindAllString(lower, -1)
	freq := make(map[string]int)
	for i := 0; i+4 <= len(words); i++ {
		freq[strings.Join(words[i:i+4], " ")]++
	}
	repeated := 0
	for _, count := range freq {
		if count >= 3 {
			repeated++
		}
	}

	return Heuristics{
		EvidenceMarkersCount:    evidence,
		ClicheFlags:             cliches,
		SpecificityEstimate:     properNouns,
		RepetitionNgramClusters: repeated,
	}
}
