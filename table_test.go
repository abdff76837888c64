package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestFormatScoreCell(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.5", "0.50"},
		{"-0.3", "-0.30"},
		{" 0.25 ", "0.25"},
		{"", "N/A"},
		{"   ", "N/A"},
		{"garbage", "N/A"},
	}
	for _, tc := range tests {
		if got := formatScoreCell(tc.in); got != tc.want {
			t.Errorf("formatScoreCell(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatRecordRows(t *testing.T) {
	records := []FeedbackRecord{
		{
			RegistrationNo: "101",
			StudentName:    "Alice",
			SentimentScore: "0.5",
			Subjectivity:   "",
			Emotions:       "positive",
			Rating:         "9",
		},
	}

	rows := FormatRecordRows(records)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if len(row) != len(displayHeaders) {
		t.Fatalf("row width %d, want %d", len(row), len(displayHeaders))
	}
	if row[5] != "0.50" {
		t.Fatalf("score cell = %q, want 0.50", row[5])
	}
	if row[6] != "N/A" {
		t.Fatalf("blank subjectivity cell = %q, want N/A", row[6])
	}
}

func TestRenderRecordTable(t *testing.T) {
	var buf bytes.Buffer
	RenderRecordTable(&buf, []FeedbackRecord{
		{RegistrationNo: "101", StudentName: "Alice", Course: "Algorithms", Sentiment: "Positive"},
	})

	out := buf.String()
	for _, want := range []string{"REGISTRATION NO", "Alice", "Positive"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSentimentSummary(t *testing.T) {
	summary := BuildSentimentSummary([]FeedbackRecord{
		{Sentiment: "Positive", SentimentScore: "0.5", Subjectivity: "0.4", Emotions: "positive"},
	})

	var buf bytes.Buffer
	RenderSentimentSummary(&buf, summary)

	out := buf.String()
	for _, want := range []string{
		"Detailed Sentiment Analysis Summary:",
		"Emotion Distribution:",
		"Total Entries: 1",
		"Overall Average Sentiment Score: 0.50",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderRatingChart(t *testing.T) {
	dist := BuildRatingDistribution(recordsWithRatings("9", "7", "5", "2", "10"))

	out := RenderRatingChart(dist)
	for _, want := range []string{
		"Excellent (9-10)",
		"40.0% (2)",
		"Average Rating: 6.60",
		"Highest Rating: 10",
		"Lowest Rating: 2",
		"Total Ratings: 5",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("chart output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Fair (3-4)") {
		t.Fatalf("empty bucket should be omitted:\n%s", out)
	}
}
