package scoring

import "math"

// chancePercent maps a margin, measured in grade steps, to a 0-100
// percentage. The mapping is piecewise linear and continuous at zero:
//
//	percent(m) = 38 + 6m  for m <= 0
//	percent(m) = 38 + 9m  for m > 0
//
// rounded half away from zero and clamped to [0, 100]. Any non-positive
// margin lands below 40 (Reach), and roughly three and a half grade steps
// of headroom clear 70 (Safe). More margin never yields a lower percentage.
func chancePercent(marginSteps float64) int {
	var raw float64
	if marginSteps <= 0 {
		raw = 38 + 6*marginSteps
	} else {
		raw = 38 + 9*marginSteps
	}
	pct := int(math.Round(raw))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// bandFor partitions percentages into the three published bands:
// Reach below 40, Target from 40 through 70, Safe above 70.
func bandFor(percent int) Band {
	switch {
	case percent < 40:
		return BandReach
	case percent > 70:
		return BandSafe
	default:
		return BandTarget
	}
}

// marginInGradeSteps converts a raw margin to grade steps. One IB point is
// one step; one A-level letter grade is 8 tariff points.
func marginInGradeSteps(curriculum Curriculum, margin int) float64 {
	if curriculum == CurriculumALevels {
		return float64(margin) / tariffPointsPerGradeStep
	}
	return float64(margin)
}
