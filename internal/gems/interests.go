package gems

import (
	"sort"
	"strings"
)

// interestKeywords expands a declared interest into catalogue search
// keywords. Matching against table keys is by substring, so "machine
// learning and ai" picks up the "machine learning" row.
var interestKeywords = map[string][]string{
	"machine learning": {"computer science", "artificial intelligence", "data science", "mathematics"},
	"artificial intelligence": {"computer science", "artificial intelligence", "data science", "robotics"},
	"coding":      {"computer science", "software engineering", "computing"},
	"robotics":    {"robotics", "mechanical engineering", "electronic engineering", "computer science"},
	"medicine":    {"medicine", "biomedical science", "pharmacology", "nursing"},
	"biology":     {"biology", "biochemistry", "biomedical science", "natural sciences"},
	"chemistry":   {"chemistry", "chemical engineering", "biochemistry", "natural sciences"},
	"physics":     {"physics", "astrophysics", "natural sciences", "engineering"},
	"space":       {"astrophysics", "physics", "aerospace engineering"},
	"engineering": {"engineering", "mechanical engineering", "civil engineering", "electronic engineering"},
	"maths":       {"mathematics", "statistics", "actuarial science", "physics"},
	"mathematics": {"mathematics", "statistics", "actuarial science", "physics"},
	"economics":   {"economics", "finance", "accounting", "business"},
	"business":    {"business", "management", "marketing", "economics"},
	"finance":     {"finance", "economics", "accounting", "actuarial science"},
	"law":         {"law", "criminology", "politics"},
	"politics":    {"politics", "international relations", "philosophy", "economics"},
	"history":     {"history", "archaeology", "classics", "politics"},
	"writing":     {"english", "creative writing", "journalism", "literature"},
	"literature":  {"english", "literature", "classics", "creative writing"},
	"languages":   {"languages", "linguistics", "french", "spanish", "german"},
	"psychology":  {"psychology", "neuroscience", "cognitive science"},
	"art":         {"art", "design", "fine art", "architecture"},
	"design":      {"design", "architecture", "product design", "art"},
	"music":       {"music", "music technology", "performing arts"},
	"film":        {"film", "media", "television", "drama"},
	"sport":       {"sport", "physiotherapy", "exercise science"},
	"environment": {"environmental science", "geography", "ecology", "earth sciences"},
	"geography":   {"geography", "environmental science", "earth sciences", "urban planning"},
	"teaching":    {"education", "teaching", "childhood studies"},
	"games":       {"game design", "computer science", "software engineering"},
}

var sortedInterestKeys = func() []string {
	keys := make([]string, 0, len(interestKeywords))
	for key := range interestKeywords {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}()

// keywordsFor expands one interest. Multiple matching table rows contribute
// their keywords in key order; unrecognized interests fall back to the raw
// lowercased string as a single keyword.
func keywordsFor(interest string) []string {
	needle := strings.ToLower(strings.TrimSpace(interest))
	if needle == "" {
		return nil
	}
	var words []string
	for _, key := range sortedInterestKeys {
		if strings.Contains(needle, key) || strings.Contains(key, needle) {
			words = append(words, interestKeywords[key]...)
		}
	}
	if len(words) == 0 {
		return []string{needle}
	}
	return words
}
