package analytics

import (
	"errors"
	"fmt"
	"time"

	"github.com/examprep/backend/internal/domain/answer"
)

// ErrInvalidWindow is returned for a timeline window outside 1..MaxWindow days.
var ErrInvalidWindow = errors.New("invalid timeline window")

// Window presets offered by the dashboards. Any value in 1..MaxWindow is accepted.
var WindowPresets = []int{7, 30, 90}

const (
	// DefaultWindow is used when the caller does not ask for a window.
	DefaultWindow = 30
	// MaxWindow bounds the timeline at ten years of daily buckets.
	MaxWindow = 3660
)

// DayBucket is one calendar day of the performance timeline.
type DayBucket struct {
	Date         string   `json:"date"`
	AnswersCount int      `json:"answers_count"`
	PendingCount int      `json:"pending_count"`
	MeanScore    *float64 `json:"mean_score"`
}

// civilDay truncates t to midnight of its calendar day in loc.
func civilDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// ValidateWindow rejects windows outside 1..MaxWindow days.
func ValidateWindow(days int) error {
	if days <= 0 || days > MaxWindow {
		return fmt.Errorf("%w: got %d days, want 1..%d", ErrInvalidWindow, days, MaxWindow)
	}
	return nil
}

// BuildTimeline returns exactly days buckets, oldest first, ending with the
// calendar day of now in loc. Days without evaluated answers have a nil mean.
func BuildTimeline(answers []answer.Answer, days int, now time.Time, loc *time.Location) ([]DayBucket, error) {
	if err := ValidateWindow(days); err != nil {
		return nil, err
	}

	byDay := ByDay(loc)
	evaluated := Aggregate(answers, byDay)
	pending := make(map[string]int)
	for _, a := range answers {
		if !a.Evaluated() {
			k, _ := byDay(a)
			pending[k]++
		}
	}

	start := civilDay(now, loc).AddDate(0, 0, -(days - 1))
	buckets := make([]DayBucket, days)
	for i := range buckets {
		key := start.AddDate(0, 0, i).Format(DayLayout)
		s := evaluated[key]
		buckets[i] = DayBucket{
			Date:         key,
			AnswersCount: s.Count,
			PendingCount: pending[key],
			MeanScore:    roundPtr(s.MeanOverall(), 2),
		}
	}
	return buckets, nil
}
