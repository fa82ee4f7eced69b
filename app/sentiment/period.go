package sentiment

import "time"

// Granularity is the bucketing resolution of a sentiment distribution.
type Granularity string

const (
	GranularityMinute     Granularity = "1min"
	GranularityFiveMinute Granularity = "5min"
	GranularityTenMinute  Granularity = "10min"
	GranularityHourly     Granularity = "hourly"
	GranularityDaily      Granularity = "daily"
)

// Canonical fractional-day spans the UI requests for short windows. Matched
// with a small tolerance since the values travel as floats.
const (
	spanFifteenMinutes = 0.0104
	spanThirtyMinutes  = 0.0208
	spanOneHour        = 0.0417
	spanEpsilon        = 0.0001
)

// GranularityFor picks the bucketing resolution for a window of the given
// length in days. The three canonical sub-hour spans get minute-level
// resolution, anything else under six hours gets ten-minute buckets, under
// a day hourly, and a day or more daily.
func GranularityFor(days float64) Granularity {
	switch {
	case closeTo(days, spanFifteenMinutes):
		return GranularityMinute
	case closeTo(days, spanThirtyMinutes):
		return GranularityFiveMinute
	case closeTo(days, spanOneHour):
		return GranularityTenMinute
	case days < 0.25:
		return GranularityTenMinute
	case days < 1:
		return GranularityHourly
	default:
		return GranularityDaily
	}
}

func closeTo(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < spanEpsilon
}

// Interval returns the bucket width for minute-level granularities and zero
// for hourly and daily.
func (g Granularity) Interval() time.Duration {
	switch g {
	case GranularityMinute:
		return time.Minute
	case GranularityFiveMinute:
		return 5 * time.Minute
	case GranularityTenMinute:
		return 10 * time.Minute
	default:
		return 0
	}
}

// AlignPeriod floors a timestamp to its bucket and formats the period key.
// Daily keys are dates, hourly keys are truncated to the hour, and
// minute-level keys are floored to the bucket width.
func AlignPeriod(ts time.Time, g Granularity) string {
	switch g {
	case GranularityDaily:
		return ts.Format("2006-01-02")
	case GranularityHourly:
		return ts.Format("2006-01-02 15:00")
	default:
		interval := g.Interval()
		if interval <= 0 {
			interval = 10 * time.Minute
		}
		minutes := ts.Minute() - ts.Minute()%int(interval.Minutes())
		aligned := time.Date(ts.Year(), ts.Month(), ts.Day(), ts.Hour(), minutes, 0, 0, ts.Location())
		return aligned.Format("2006-01-02 15:04")
	}
}

// ExpectedPeriods enumerates every period key the window should contain,
// oldest first, ending at the bucket containing now. Buckets with no
// observations are later filled with neutral entries so the series has no
// gaps.
func ExpectedPeriods(now time.Time, days float64, g Granularity) []string {
	switch g {
	case GranularityDaily:
		count := int(days)
		if count < 1 {
			count = 1
		}
		periods := make([]string, 0, count)
		for i := count - 1; i >= 0; i-- {
			periods = append(periods, now.AddDate(0, 0, -i).Format("2006-01-02"))
		}
		return periods
	case GranularityHourly:
		count := int(days * 24)
		if count < 1 {
			count = 1
		}
		periods := make([]string, 0, count)
		for i := count - 1; i >= 0; i-- {
			periods = append(periods, now.Add(-time.Duration(i)*time.Hour).Format("2006-01-02 15:00"))
		}
		return periods
	default:
		interval := g.Interval()
		if interval <= 0 {
			interval = 10 * time.Minute
		}
		spanMinutes := int(days*24*60 + 0.5)
		count := spanMinutes/int(interval.Minutes()) + 1
		if count < 1 {
			count = 1
		}
		periods := make([]string, 0, count)
		for i := count - 1; i >= 0; i-- {
			periods = append(periods, AlignPeriod(now.Add(-time.Duration(i)*interval), g))
		}
		return periods
	}
}
