package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Store owns the full feedback collection. The collection is kept sorted by
// registration number (compared as text, so "10" sorts before "2") after
// every mutation, and every successful mutation is written straight back to
// the data file.
type Store struct {
	path    string
	records []FeedbackRecord
}

// OpenStore loads the feedback table at path. A missing, empty or
// unrecognizable file yields an empty store rather than an error.
func OpenStore(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads the pipe-delimited table from disk. Rows missing columns are
// backfilled with empty strings; rows with extra fields (a multi-phrase
// Key_Phrases cell re-split by the delimiter) are healed by rejoining the
// overflow into the Key_Phrases column.
func (s *Store) Load() error {
	s.records = nil

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", s.path, err)
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	header := strings.Split(lines[0], "|")
	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[strings.TrimSpace(name)] = i
	}
	if _, ok := colIndex["Registration_No"]; !ok {
		// Not a feedback table. Treat as corrupt and start empty.
		return nil
	}

	kpIndex, hasKP := colIndex["Key_Phrases"]
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "|")
		if hasKP && len(fields) > len(header) {
			fields = healFieldOverflow(fields, kpIndex, len(header))
		}
		row := make(map[string]string, len(header))
		for name, i := range colIndex {
			if i < len(fields) {
				row[name] = fields[i]
			}
		}
		s.records = append(s.records, recordFromRow(row))
	}

	s.sortRecords()
	return nil
}

// healFieldOverflow merges surplus fields back into the Key_Phrases column.
// The phrase joiner " | " contains the field delimiter, so a row with n
// extra fields had n+1 phrases in that cell.
func healFieldOverflow(fields []string, kpIndex, want int) []string {
	extra := len(fields) - want
	merged := strings.Join(fields[kpIndex:kpIndex+extra+1], "|")
	healed := make([]string, 0, want)
	healed = append(healed, fields[:kpIndex]...)
	healed = append(healed, merged)
	healed = append(healed, fields[kpIndex+extra+1:]...)
	return healed
}

// Save overwrites the data file with the full collection in the fixed
// column order.
func (s *Store) Save() error {
	var b strings.Builder
	b.WriteString(strings.Join(feedbackColumns, "|"))
	b.WriteString("\n")
	for _, r := range s.records {
		b.WriteString(strings.Join(r.fields(), "|"))
		b.WriteString("\n")
	}
	if err := os.WriteFile(s.path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// Add validates, analyzes and inserts a new feedback entry, then persists.
// Validation failures come back as errors carrying the user-facing message;
// nothing is mutated and no analysis runs on a rejected entry.
func (s *Store) Add(regNo, name, course, feedback, rating string) (FeedbackRecord, error) {
	for _, r := range s.records {
		if r.RegistrationNo == regNo {
			return FeedbackRecord{}, fmt.Errorf("registration number %s already exists", regNo)
		}
	}

	value, err := strconv.Atoi(strings.TrimSpace(rating))
	if err != nil {
		return FeedbackRecord{}, fmt.Errorf("rating must be a number between 1 and 10")
	}
	if value < 1 || value > 10 {
		return FeedbackRecord{}, fmt.Errorf("rating must be between 1 and 10")
	}

	analysis := AnalyzeFeedback(feedback)
	record := FeedbackRecord{
		RegistrationNo: regNo,
		StudentName:    name,
		Course:         course,
		Feedback:       feedback,
		Sentiment:      analysis.Sentiment,
		SentimentScore: formatScoreValue(analysis.Score),
		Subjectivity:   formatScoreValue(analysis.Subjectivity),
		Emotions:       joinEmotions(analysis.Emotions),
		KeyPhrases:     joinKeyPhrases(analysis.KeyPhrases),
		Rating:         strconv.Itoa(value),
		Date:           time.Now().Format(dateLayout),
	}

	s.records = append(s.records, record)
	s.sortRecords()
	if err := s.Save(); err != nil {
		return FeedbackRecord{}, err
	}
	return record, nil
}

// Delete removes entries by exact registration number or, failing that, by
// case-insensitive exact student name. A name may match several entries; all
// of them go. Returns how many rows were removed; the file is rewritten only
// when at least one was.
func (s *Store) Delete(regNo, name string) (int, error) {
	if regNo == "" && name == "" {
		return 0, fmt.Errorf("provide either a registration number or a student name")
	}

	kept := make([]FeedbackRecord, 0, len(s.records))
	removed := 0
	for _, r := range s.records {
		if matchesSelector(r, regNo, name) {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	if removed == 0 {
		return 0, nil
	}

	s.records = kept
	if err := s.Save(); err != nil {
		return removed, err
	}
	return removed, nil
}

// Search returns the entries matching the selector, read-only. Matching
// rules are the same as Delete's.
func (s *Store) Search(regNo, name string) ([]FeedbackRecord, error) {
	if regNo == "" && name == "" {
		return nil, fmt.Errorf("provide either a registration number or a student name")
	}
	var matches []FeedbackRecord
	for _, r := range s.records {
		if matchesSelector(r, regNo, name) {
			matches = append(matches, r)
		}
	}
	return matches, nil
}

// All returns a copy of the full sorted collection.
func (s *Store) All() []FeedbackRecord {
	return append([]FeedbackRecord(nil), s.records...)
}

// matchesSelector: registration number wins when both selectors are set.
func matchesSelector(r FeedbackRecord, regNo, name string) bool {
	if regNo != "" {
		return r.RegistrationNo == regNo
	}
	return strings.EqualFold(r.StudentName, name)
}

func (s *Store) sortRecords() {
	sort.SliceStable(s.records, func(i, j int) bool {
		return s.records[i].RegistrationNo < s.records[j].RegistrationNo
	})
}
