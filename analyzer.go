package main

import (
	"math"
	"strings"

	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
)

// Curated keyword lists for coarse emotion tagging. Matching is plain
// substring containment on the lowercased text, so "badminton" matches
// "bad"; kept that way on purpose.
var emotionKeywords = []struct {
	tag      string
	keywords []string
}{
	{"positive", []string{"excellent", "great", "good", "amazing", "wonderful", "helpful", "love", "enjoy", "best"}},
	{"negative", []string{"bad", "terrible", "poor", "worst", "difficult", "hard", "confusing", "boring", "waste"}},
	{"neutral", []string{"okay", "fine", "average", "normal", "regular", "usual", "standard"}},
}

const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
	maxKeyPhrases     = 3
	minPhraseWords    = 3
)

// Analysis is the result of running feedback text through the analyzer.
// Emotion tags are independent of the numeric sentiment label: a text can be
// labelled Positive overall and still carry a "negative" tag.
type Analysis struct {
	Sentiment    string
	Score        float64 // polarity in [-1, 1], rounded to 2 decimals
	Subjectivity float64 // in [0, 1], rounded to 2 decimals
	Emotions     []string
	KeyPhrases   []string
}

// AnalyzeFeedback scores feedback text with the VADER lexicon and derives the
// sentiment label, emotion tags and key phrases. Empty or unscorable text
// comes back Neutral with zero scores.
func AnalyzeFeedback(text string) Analysis {
	score, subjectivity := scoreSentiment(text)
	return Analysis{
		Sentiment:    classifySentiment(score),
		Score:        round2(score),
		Subjectivity: round2(subjectivity),
		Emotions:     extractEmotions(text),
		KeyPhrases:   extractKeyPhrases(text),
	}
}

// scoreSentiment returns the raw VADER compound polarity and a derived
// subjectivity: the proportion of the text's sentiment mass that is
// non-neutral.
func scoreSentiment(text string) (score, subjectivity float64) {
	if strings.TrimSpace(text) == "" {
		return 0, 0
	}
	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	polarity := sentitext.PolarityScore(parsed)

	score = polarity.Compound
	subjectivity = polarity.Positive + polarity.Negative
	if math.IsNaN(score) {
		score = 0
	}
	if math.IsNaN(subjectivity) || subjectivity < 0 {
		subjectivity = 0
	}
	if subjectivity > 1 {
		subjectivity = 1
	}
	return score, subjectivity
}

// classifySentiment applies the label thresholds to a raw polarity score.
// The boundaries themselves are Neutral.
func classifySentiment(score float64) string {
	switch {
	case score > positiveThreshold:
		return "Positive"
	case score < negativeThreshold:
		return "Negative"
	default:
		return "Neutral"
	}
}

func extractEmotions(text string) []string {
	lowered := strings.ToLower(text)
	var tags []string
	for _, category := range emotionKeywords {
		for _, keyword := range category.keywords {
			if strings.Contains(lowered, keyword) {
				tags = append(tags, category.tag)
				break
			}
		}
	}
	return tags
}

// extractKeyPhrases splits on periods and keeps the first three sentences
// with at least three words. No ranking, no deduplication.
func extractKeyPhrases(text string) []string {
	var phrases []string
	for _, sentence := range strings.Split(text, ".") {
		sentence = strings.TrimSpace(sentence)
		if len(strings.Fields(sentence)) < minPhraseWords {
			continue
		}
		phrases = append(phrases, sentence)
		if len(phrases) == maxKeyPhrases {
			break
		}
	}
	return phrases
}

func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0 // normalize -0
	}
	return r
}
