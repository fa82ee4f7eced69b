package sentiment

import (
	"math"
	"time"
)

const (
	LabelPositive = "positive"
	LabelNegative = "negative"

	TrendUp      = "up"
	TrendDown    = "down"
	TrendNeutral = "neutral"

	trendDelta = 5.0
)

// Record is one sentiment observation feeding the distribution.
type Record struct {
	Sentiment  string
	Confidence float64
	Timestamp  time.Time
}

// TimeBucket is one aggregated period of the sentiment distribution.
type TimeBucket struct {
	PeriodKey      string  `json:"period"`
	PositiveCount  int     `json:"positive_count"`
	NegativeCount  int     `json:"negative_count"`
	AvgPositive    float64 `json:"avg_positive_confidence"`
	AvgNegative    float64 `json:"avg_negative_confidence"`
	Total          int     `json:"total"`
	SentimentScore float64 `json:"sentiment_score"`
	Trend          string  `json:"trend"`
}

// Distribution is the full aggregation result for a time window.
type Distribution struct {
	Granularity Granularity  `json:"granularity"`
	Days        float64      `json:"days"`
	Buckets     []TimeBucket `json:"timeline"`
	Total       int          `json:"total_articles"`
}

type accumulator struct {
	positive     int
	negative     int
	positiveConf float64
	negativeConf float64
}

// Aggregate buckets sentiment records into the distribution for a window of
// the given length ending at now. Every expected period appears in the
// result, oldest first; periods with no observations come back as neutral
// zero buckets. Trend compares each bucket's weighted score against its
// predecessor in the filled sequence, with the first bucket neutral.
func Aggregate(records []Record, days float64, now time.Time) Distribution {
	granularity := GranularityFor(days)
	periods := ExpectedPeriods(now, days, granularity)

	acc := make(map[string]*accumulator, len(periods))
	for _, record := range records {
		key := AlignPeriod(record.Timestamp, granularity)
		bucket, ok := acc[key]
		if !ok {
			bucket = &accumulator{}
			acc[key] = bucket
		}
		switch record.Sentiment {
		case LabelPositive:
			bucket.positive++
			bucket.positiveConf += record.Confidence
		case LabelNegative:
			bucket.negative++
			bucket.negativeConf += record.Confidence
		}
	}

	dist := Distribution{
		Granularity: granularity,
		Days:        days,
		Buckets:     make([]TimeBucket, 0, len(periods)),
	}

	previous := 0.0
	for i, key := range periods {
		bucket := TimeBucket{PeriodKey: key, Trend: TrendNeutral}
		if a, ok := acc[key]; ok {
			bucket.PositiveCount = a.positive
			bucket.NegativeCount = a.negative
			bucket.Total = a.positive + a.negative
			if a.positive > 0 {
				bucket.AvgPositive = round2(a.positiveConf / float64(a.positive))
			}
			if a.negative > 0 {
				bucket.AvgNegative = round2(a.negativeConf / float64(a.negative))
			}
			bucket.SentimentScore = weightedScore(a)
		}

		if i > 0 {
			switch {
			case bucket.SentimentScore > previous+trendDelta:
				bucket.Trend = TrendUp
			case bucket.SentimentScore < previous-trendDelta:
				bucket.Trend = TrendDown
			}
		}
		previous = bucket.SentimentScore

		dist.Total += bucket.Total
		dist.Buckets = append(dist.Buckets, bucket)
	}

	return dist
}

// weightedScore maps a bucket onto [-100, 100] by confidence-weighted
// counts. A bucket with no weight is neutral.
func weightedScore(a *accumulator) float64 {
	positive := float64(a.positive) * avg(a.positiveConf, a.positive)
	negative := float64(a.negative) * avg(a.negativeConf, a.negative)
	total := positive + negative
	if total == 0 {
		return 0
	}
	return round2((positive - negative) / total * 100)
}

func avg(sum float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
