package usage

import (
	"errors"
	"time"
)

// Usage is a user's AI-assessment consumption for the current period.
// Periods are calendar months in UTC.
type Usage struct {
	Plan     string    `json:"plan"`
	Limit    int       `json:"limit"`
	Used     int       `json:"used"`
	Period   string    `json:"period"`
	ResetsAt time.Time `json:"resetsAt"`
}

// Remaining reports how many AI assessments are left this period.
func (u Usage) Remaining() int {
	if u.Used >= u.Limit {
		return 0
	}
	return u.Limit - u.Used
}

// ErrLimitReached indicates the user exhausted their quota for the period.
var ErrLimitReached = errors.New("limit reached")

const freeTierLimit = 30

func currentPeriod(now time.Time) string {
	return now.UTC().Format("2006-01")
}

func periodReset(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
}

func defaultUsage(now time.Time) Usage {
	return Usage{
		Plan:     "Free",
		Limit:    freeTierLimit,
		Used:     0,
		Period:   currentPeriod(now),
		ResetsAt: periodReset(now),
	}
}
