package sentiment

import (
	"math"
	"regexp"
	"strings"
)

// Weighted keyword tables. Weights run 1 (mild) to 3 (strong); matching
// is whole-word and case-insensitive.
var positiveKeywords = map[string]int{
	"surge": 3, "soar": 3, "boom": 3, "skyrocket": 3, "breakthrough": 3,
	"record-high": 3, "exceptional": 3, "outstanding": 3, "tremendous": 3,

	"gain": 2, "profit": 2, "growth": 2, "rise": 2, "rally": 2,
	"strong": 2, "beat": 2, "exceed": 2, "positive": 2, "success": 2,
	"jump": 2, "spike": 2, "advance": 2, "upgrade": 2, "bullish": 2,

	"up": 1, "high": 1, "improve": 1, "optimistic": 1, "confidence": 1,
	"recover": 1, "rebound": 1, "momentum": 1, "opportunity": 1,
}

var negativeKeywords = map[string]int{
	"crash": 3, "plunge": 3, "collapse": 3, "disaster": 3, "crisis": 3,
	"bankruptcy": 3, "fraud": 3, "scandal": 3, "devastate": 3,

	"loss": 2, "fall": 2, "decline": 2, "drop": 2, "weak": 2,
	"miss": 2, "negative": 2, "fail": 2, "concern": 2, "risk": 2,
	"tumble": 2, "slide": 2, "slump": 2, "downgrade": 2, "bearish": 2,

	"down": 1, "low": 1, "worry": 1, "struggle": 1, "challenge": 1,
	"uncertain": 1, "volatile": 1, "pressure": 1, "caution": 1,
}

var wordPatterns = map[string]*regexp.Regexp{}

func init() {
	for word := range positiveKeywords {
		wordPatterns[word] = regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
	}
	for word := range negativeKeywords {
		wordPatterns[word] = regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
	}
}

const (
	Label_Positive = "positive"
	Label_Negative = "negative"
	Label_Neutral  = "neutral"
)

type Result struct {
	Sentiment     string `json:"sentiment"`
	Score         int    `json:"score"`
	Confidence    int    `json:"confidence"`
	PositiveScore int    `json:"positiveScore"`
	NegativeScore int    `json:"negativeScore"`
	TotalMatches  int    `json:"totalMatches"`
}

// Analyze scores free text into positive/negative/neutral. The score is
// the net keyword weight normalized into [-100, 100]; >20 is positive,
// <-20 negative. Confidence grows with keyword density, capped at 100.
func Analyze(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Sentiment: Label_Neutral}
	}

	lower := strings.ToLower(text)

	positiveScore, negativeScore, totalMatches := 0, 0, 0
	for word, weight := range positiveKeywords {
		matches := len(wordPatterns[word].FindAllStringIndex(lower, -1))
		positiveScore += matches * weight
		totalMatches += matches
	}
	for word, weight := range negativeKeywords {
		matches := len(wordPatterns[word].FindAllStringIndex(lower, -1))
		negativeScore += matches * weight
		totalMatches += matches
	}

	netScore := positiveScore - negativeScore
	maxPossible := positiveScore + negativeScore
	if maxPossible < 1 {
		maxPossible = 1
	}
	normalized := int(math.Round(float64(netScore) / float64(maxPossible) * 100))

	label := Label_Neutral
	if normalized > 20 {
		label = Label_Positive
	} else if normalized < -20 {
		label = Label_Negative
	}

	wordCount := len(strings.Fields(text))
	if wordCount < 1 {
		wordCount = 1
	}
	confidence := int(math.Round(float64(totalMatches) / float64(wordCount) * 100))
	if confidence > 100 {
		confidence = 100
	}

	return Result{
		Sentiment:     label,
		Score:         normalized,
		Confidence:    confidence,
		PositiveScore: positiveScore,
		NegativeScore: negativeScore,
		TotalMatches:  totalMatches,
	}
}

type BulkResult struct {
	Sentiment         string         `json:"sentiment"`
	AverageScore      int            `json:"averageScore"`
	AverageConfidence int            `json:"averageConfidence"`
	Distribution      map[string]int `json:"distribution"`
	Count             int            `json:"count"`
}

// AnalyzeBulk aggregates per-text results into an overall read with a
// label distribution.
func AnalyzeBulk(texts []string) BulkResult {
	distribution := map[string]int{
		Label_Positive: 0,
		Label_Negative: 0,
		Label_Neutral:  0,
	}
	if len(texts) == 0 {
		return BulkResult{Sentiment: Label_Neutral, Distribution: distribution}
	}

	totalScore, totalConfidence := 0, 0
	for _, text := range texts {
		r := Analyze(text)
		totalScore += r.Score
		totalConfidence += r.Confidence
		distribution[r.Sentiment]++
	}

	averageScore := int(math.Round(float64(totalScore) / float64(len(texts))))
	label := Label_Neutral
	if averageScore > 20 {
		label = Label_Positive
	} else if averageScore < -20 {
		label = Label_Negative
	}

	return BulkResult{
		Sentiment:         label,
		AverageScore:      averageScore,
		AverageConfidence: int(math.Round(float64(totalConfidence) / float64(len(texts)))),
		Distribution:      distribution,
		Count:             len(texts),
	}
}

// Label maps a score to the descriptive intensity shown next to the
// sentiment gauge.
func Label(score int) string {
	switch {
	case score >= 70:
		return "Very Bullish"
	case score >= 40:
		return "Bullish"
	case score >= 20:
		return "Slightly Bullish"
	case score <= -70:
		return "Very Bearish"
	case score <= -40:
		return "Bearish"
	case score <= -20:
		return "Slightly Bearish"
	default:
		return "Neutral"
	}
}
