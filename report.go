package main

import (
	"strconv"
	"strings"
)

var sentimentLabels = []string{"Positive", "Neutral", "Negative"}

type SentimentRow struct {
	Sentiment       string
	Count           int
	AvgScore        float64
	AvgSubjectivity float64
}

type SentimentSummary struct {
	Rows                   []SentimentRow // always Positive, Neutral, Negative
	EmotionCounts          map[string]int
	EmotionOrder           []string // first-seen order, for stable rendering
	TotalEntries           int
	OverallAvgScore        float64
	OverallAvgSubjectivity float64
}

type RatingBucket struct {
	Label string
	Count int
}

type RatingDistribution struct {
	Buckets []RatingBucket // zero-count buckets omitted
	Average float64
	Highest float64
	Lowest  float64
	Total   int // entries with a parseable numeric rating
}

var ratingBuckets = []struct {
	label    string
	min, max float64
}{
	{"Excellent (9-10)", 9, 10},
	{"Very Good (7-8)", 7, 8},
	{"Good (5-6)", 5, 6},
	{"Fair (3-4)", 3, 4},
	{"Poor (1-2)", 1, 2},
}

// BuildSentimentSummary computes per-label counts and averages, the emotion
// tag frequency, and the overall averages. Averages cover only cells that
// parse as numbers and are 0 when a group has none; unparseable cells are
// skipped silently.
func BuildSentimentSummary(records []FeedbackRecord) SentimentSummary {
	summary := SentimentSummary{
		EmotionCounts: make(map[string]int),
		TotalEntries:  len(records),
	}

	for _, label := range sentimentLabels {
		row := SentimentRow{Sentiment: label}
		var scoreSum, subjSum float64
		var scoreN, subjN int
		for _, r := range records {
			if r.Sentiment != label {
				continue
			}
			row.Count++
			if v, ok := parseCell(r.SentimentScore); ok {
				scoreSum += v
				scoreN++
			}
			if v, ok := parseCell(r.Subjectivity); ok {
				subjSum += v
				subjN++
			}
		}
		if scoreN > 0 {
			row.AvgScore = round2(scoreSum / float64(scoreN))
		}
		if subjN > 0 {
			row.AvgSubjectivity = round2(subjSum / float64(subjN))
		}
		summary.Rows = append(summary.Rows, row)
	}

	// Flatten the comma-joined emotion cells. The literal "None" counts as
	// a tag of its own, matching the persisted representation.
	for _, r := range records {
		for _, tag := range strings.Split(r.Emotions, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			if _, seen := summary.EmotionCounts[tag]; !seen {
				summary.EmotionOrder = append(summary.EmotionOrder, tag)
			}
			summary.EmotionCounts[tag]++
		}
	}

	var scoreSum, subjSum float64
	var scoreN, subjN int
	for _, r := range records {
		if v, ok := parseCell(r.SentimentScore); ok {
			scoreSum += v
			scoreN++
		}
		if v, ok := parseCell(r.Subjectivity); ok {
			subjSum += v
			subjN++
		}
	}
	if scoreN > 0 {
		summary.OverallAvgScore = round2(scoreSum / float64(scoreN))
	}
	if subjN > 0 {
		summary.OverallAvgSubjectivity = round2(subjSum / float64(subjN))
	}

	return summary
}

// BuildRatingDistribution buckets every parseable rating into the five fixed
// inclusive ranges. Entries whose rating does not parse as a number are
// excluded without error.
func BuildRatingDistribution(records []FeedbackRecord) RatingDistribution {
	var ratings []float64
	for _, r := range records {
		if v, ok := parseCell(r.Rating); ok {
			ratings = append(ratings, v)
		}
	}

	dist := RatingDistribution{Total: len(ratings)}
	if len(ratings) == 0 {
		return dist
	}

	sum := 0.0
	dist.Highest, dist.Lowest = ratings[0], ratings[0]
	for _, v := range ratings {
		sum += v
		if v > dist.Highest {
			dist.Highest = v
		}
		if v < dist.Lowest {
			dist.Lowest = v
		}
	}
	dist.Average = round2(sum / float64(len(ratings)))

	for _, b := range ratingBuckets {
		count := 0
		for _, v := range ratings {
			if v >= b.min && v <= b.max {
				count++
			}
		}
		if count > 0 {
			dist.Buckets = append(dist.Buckets, RatingBucket{Label: b.label, Count: count})
		}
	}
	return dist
}

func parseCell(cell string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	return v, err == nil
}
