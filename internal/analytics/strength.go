package analytics

// Level is the mastery classification of a syllabus node.
type Level string

const (
	LevelNotStarted Level = "not_started"
	LevelWeak       Level = "weak"
	LevelModerate   Level = "moderate"
	LevelStrong     Level = "strong"
)

// Score thresholds on the 0-10 overall scale. Lower bounds are inclusive.
const (
	ModerateFrom = 5.0
	StrongFrom   = 7.5
)

// Classify maps a group's answer count and mean overall score to a level.
// The level depends on score only; practice volume is judged separately
// by the recommendation rules.
func Classify(count int, meanOverall *float64) Level {
	if count == 0 || meanOverall == nil {
		return LevelNotStarted
	}
	switch m := *meanOverall; {
	case m >= StrongFrom:
		return LevelStrong
	case m >= ModerateFrom:
		return LevelModerate
	default:
		return LevelWeak
	}
}

// ClassifyStats is Classify applied to an aggregate.
func ClassifyStats(s Stats) Level {
	return Classify(s.Count, s.MeanOverall())
}
