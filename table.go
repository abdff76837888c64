package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

var displayHeaders = []string{
	"Registration No", "Student Name", "Course", "Feedback",
	"Sentiment", "Score", "Subjectivity", "Emotions",
	"Key Phrases", "Rating", "Date",
}

const chartBarWidth = 40

// FormatRecordRows prepares records for the grid: score cells become fixed
// two-decimal strings, or "N/A" when blank or unparseable.
func FormatRecordRows(records []FeedbackRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.RegistrationNo, r.StudentName, r.Course, r.Feedback,
			r.Sentiment, formatScoreCell(r.SentimentScore), formatScoreCell(r.Subjectivity),
			r.Emotions, r.KeyPhrases, r.Rating, r.Date,
		})
	}
	return rows
}

func formatScoreCell(cell string) string {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return "N/A"
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", v)
}

func RenderRecordTable(w io.Writer, records []FeedbackRecord) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(displayHeaders)
	table.SetAutoWrapText(false)
	table.SetRowLine(true)
	table.AppendBulk(FormatRecordRows(records))
	table.Render()
}

func RenderSentimentSummary(w io.Writer, summary SentimentSummary) {
	fmt.Fprintln(w, "\nDetailed Sentiment Analysis Summary:")
	printSeparator(w)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Sentiment", "Count", "Avg Score", "Avg Subjectivity"})
	for _, row := range summary.Rows {
		table.Append([]string{
			row.Sentiment,
			strconv.Itoa(row.Count),
			fmt.Sprintf("%.2f", row.AvgScore),
			fmt.Sprintf("%.2f", row.AvgSubjectivity),
		})
	}
	table.Render()

	fmt.Fprintln(w, "\nEmotion Distribution:")
	printSeparator(w)
	emotions := tablewriter.NewWriter(w)
	emotions.SetHeader([]string{"Emotion", "Count"})
	for _, tag := range summary.EmotionOrder {
		emotions.Append([]string{tag, strconv.Itoa(summary.EmotionCounts[tag])})
	}
	emotions.Render()

	fmt.Fprintln(w, "\nOverall Statistics:")
	fmt.Fprintf(w, "Total Entries: %d\n", summary.TotalEntries)
	fmt.Fprintf(w, "Overall Average Sentiment Score: %.2f\n", summary.OverallAvgScore)
	fmt.Fprintf(w, "Overall Average Subjectivity: %.2f\n", summary.OverallAvgSubjectivity)
	printSeparator(w)
}

// RenderRatingChart draws the bucket distribution as a horizontal bar chart
// with percentage labels and a statistics block.
func RenderRatingChart(dist RatingDistribution) string {
	var b strings.Builder
	b.WriteString("\nDistribution of Ratings:\n")
	for _, bucket := range dist.Buckets {
		share := float64(bucket.Count) / float64(dist.Total)
		bar := strings.Repeat("#", barLength(share))
		fmt.Fprintf(&b, "%-18s %-*s %5.1f%% (%d)\n", bucket.Label, chartBarWidth, bar, share*100, bucket.Count)
	}
	b.WriteString("\nRating Statistics:\n")
	fmt.Fprintf(&b, "Average Rating: %.2f\n", dist.Average)
	fmt.Fprintf(&b, "Highest Rating: %s\n", formatScoreValue(dist.Highest))
	fmt.Fprintf(&b, "Lowest Rating: %s\n", formatScoreValue(dist.Lowest))
	fmt.Fprintf(&b, "Total Ratings: %d\n", dist.Total)
	return b.String()
}

func barLength(share float64) int {
	n := int(share*chartBarWidth + 0.5)
	if n < 1 {
		n = 1 // buckets in the output always have at least one entry
	}
	return n
}

func printSeparator(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("=", 100))
}
