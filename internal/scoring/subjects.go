package scoring

import "strings"

// normalizeSubject lowercases, trims and collapses internal whitespace so
// "Further  Mathematics " matches "further mathematics".
func normalizeSubject(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

func (p *ApplicantProfile) subjectSet() map[string]struct{} {
	subjects := make(map[string]struct{})
	add := func(name string) {
		if n := normalizeSubject(name); n != "" {
			subjects[n] = struct{}{}
		}
	}
	if p.IB != nil {
		for _, g := range p.IB.HL {
			add(g.Subject)
		}
		for _, g := range p.IB.SL {
			add(g.Subject)
		}
	}
	if p.ALevels != nil {
		for _, g := range p.ALevels.Predicted {
			add(g.Subject)
		}
	}
	return subjects
}
