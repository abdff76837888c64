package main

import (
	"strconv"
	"strings"
)

// Column order of the persisted feedback table. Save writes exactly this
// order; Load tolerates files that are missing columns.
var feedbackColumns = []string{
	"Registration_No", "Student_Name", "Course", "Feedback",
	"Sentiment", "Sentiment_Score", "Subjectivity", "Emotions",
	"Key_Phrases", "Rating", "Date",
}

const dateLayout = "2006-01-02 15:04:05"

// FeedbackRecord is one row of the feedback table. Sentiment_Score,
// Subjectivity and Rating stay as strings: Add writes canonical values
// (two-decimal floats, an integer rating), but old files may carry blanks or
// garbage that Load must keep rather than reject. Parsing happens at the
// point of use.
type FeedbackRecord struct {
	RegistrationNo string
	StudentName    string
	Course         string
	Feedback       string
	Sentiment      string // "Positive", "Neutral" or "Negative"
	SentimentScore string
	Subjectivity   string
	Emotions       string // ", "-joined tags, or "None"
	KeyPhrases     string // " | "-joined phrases, or "None"
	Rating         string
	Date           string
}

func (r FeedbackRecord) fields() []string {
	return []string{
		r.RegistrationNo, r.StudentName, r.Course, r.Feedback,
		r.Sentiment, r.SentimentScore, r.Subjectivity, r.Emotions,
		r.KeyPhrases, r.Rating, r.Date,
	}
}

func recordFromRow(row map[string]string) FeedbackRecord {
	return FeedbackRecord{
		RegistrationNo: row["Registration_No"],
		StudentName:    row["Student_Name"],
		Course:         row["Course"],
		Feedback:       row["Feedback"],
		Sentiment:      row["Sentiment"],
		SentimentScore: row["Sentiment_Score"],
		Subjectivity:   row["Subjectivity"],
		Emotions:       row["Emotions"],
		KeyPhrases:     row["Key_Phrases"],
		Rating:         row["Rating"],
		Date:           row["Date"],
	}
}

func joinEmotions(tags []string) string {
	if len(tags) == 0 {
		return "None"
	}
	return strings.Join(tags, ", ")
}

func joinKeyPhrases(phrases []string) string {
	if len(phrases) == 0 {
		return "None"
	}
	return strings.Join(phrases, " | ")
}

// formatScoreValue writes an already-rounded score the way it is persisted:
// shortest decimal form, so 0.5 stays "0.5" rather than "0.50".
func formatScoreValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
