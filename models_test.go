package main

import (
	"reflect"
	"testing"
)

func TestFieldsMatchColumnOrder(t *testing.T) {
	r := FeedbackRecord{
		RegistrationNo: "101",
		StudentName:    "Alice",
		Course:         "Algorithms",
		Feedback:       "Good course overall.",
		Sentiment:      "Positive",
		SentimentScore: "0.44",
		Subjectivity:   "0.6",
		Emotions:       "positive",
		KeyPhrases:     "Good course overall",
		Rating:         "8",
		Date:           "2026-08-24 10:00:00",
	}

	fields := r.fields()
	if len(fields) != len(feedbackColumns) {
		t.Fatalf("fields() width %d, want %d", len(fields), len(feedbackColumns))
	}
	if fields[0] != "101" || fields[8] != "Good course overall" || fields[10] != "2026-08-24 10:00:00" {
		t.Fatalf("fields out of column order: %v", fields)
	}

	row := make(map[string]string, len(feedbackColumns))
	for i, col := range feedbackColumns {
		row[col] = fields[i]
	}
	if got := recordFromRow(row); !reflect.DeepEqual(got, r) {
		t.Fatalf("recordFromRow(fields) = %+v, want %+v", got, r)
	}
}

func TestJoinEmotions(t *testing.T) {
	if got := joinEmotions(nil); got != "None" {
		t.Fatalf("empty tags = %q, want None", got)
	}
	if got := joinEmotions([]string{"positive", "negative"}); got != "positive, negative" {
		t.Fatalf("joined tags = %q", got)
	}
}

func TestJoinKeyPhrases(t *testing.T) {
	if got := joinKeyPhrases(nil); got != "None" {
		t.Fatalf("empty phrases = %q, want None", got)
	}
	if got := joinKeyPhrases([]string{"a good start", "a strong finish"}); got != "a good start | a strong finish" {
		t.Fatalf("joined phrases = %q", got)
	}
}

func TestFormatScoreValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.5, "0.5"},
		{0.05, "0.05"},
		{-0.3, "-0.3"},
		{0, "0"},
		{1, "1"},
	}
	for _, tc := range tests {
		if got := formatScoreValue(tc.in); got != tc.want {
			t.Errorf("formatScoreValue(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
