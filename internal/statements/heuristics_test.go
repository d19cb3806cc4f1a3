package statements

import (
	"strings"
	"testing"
)

func TestComputeConstraintsUCAS3Q(t *testing.T) {
	in := Input{
		Format: FormatUCAS3Q,
		Q1:     strings.Repeat("a", 400),
		Q2:     strings.Repeat("b", 200),
		Q3:     "",
	}
	constraints := ComputeConstraints(in)
	if constraints.Q1Chars != 400 || constraints.Q2Chars != 200 || constraints.Q3Chars != 0 {
		t.Fatalf("unexpected counts: %+v", constraints)
	}
	if len(constraints.Warnings) != 1 || !strings.Contains(constraints.Warnings[0], "Q2") {
		t.Fatalf("expected a single Q2 warning, got %v", constraints.Warnings)
	}
}

func TestComputeConstraintsTotalLimit(t *testing.T) {
	in := Input{Format: FormatSingle, Statement: strings.Repeat("x", 4100)}
	constraints := ComputeConstraints(in)
	if constraints.TotalChars != 4100 {
		t.Fatalf("expected 4100 chars, got %d", constraints.TotalChars)
	}
	if len(constraints.Warnings) != 1 {
		t.Fatalf("expected total-limit warning, got %v", constraints.Warnings)
	}
}

func TestComputeHeuristicsEvidenceAndCliches(t *testing.T) {
	text := "From a young age I wanted this. I learned about circuits because I investigated Ohm's law at Imperial."
	h := ComputeHeuristics(text)
	// "i learned", "i investigated" and "because"
	if h.EvidenceMarkersCount != 3 {
		t.Fatalf("expected 3 evidence markers, got %d", h.EvidenceMarkersCount)
	}
	if len(h.ClicheFlags) != 1 || h.ClicheFlags[0] != "from a young age" {
		t.Fatalf("expected one cliche flag, got %v", h.ClicheFlags)
	}
	if h.SpecificityEstimate == 0 {
		t.Fatalf("expected proper nouns to count toward specificity")
	}
}

func TestComputeHeuristicsRepetition(t *testing.T) {
	phrase := "the quick brown fox "
	h := ComputeHeuristics(strings.Repeat(phrase, 3))
	if h.RepetitionNgramClusters == 0 {
		t.Fatalf("expected repeated 4-gram cluster to be flagged")
	}

	h = ComputeHeuristics("a single sentence with no repeats at all")
	if h.RepetitionNgramClusters != 0 {
		t.Fatalf("expected no clusters, got %d", h.RepetitionNgramClusters)
	}
}

func TestFullTextByFormat(t *testing.T) {
	threeQ := Input{Format: FormatUCAS3Q, Q1: "one", Q2: "two", Q3: "three"}
	if got := threeQ.FullText(); got != "one\ntwo\nthree" {
		t.Fatalf("unexpected full text: %q", got)
	}
	single := Input{Format: FormatSingle, Statement: " body "}
	if got := single.FullText(); got != "body" {
		t.Fatalf("unexpected full text: %q", got)
	}
	if (Input{Format: FormatSingle}).Present() {
		t.Fatalf("empty input must not be present")
	}
}
