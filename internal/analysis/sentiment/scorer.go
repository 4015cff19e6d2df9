package sentiment

import (
	"math"
	"strings"
)

// ------------------------------------------------------------------
// Keyword-based headline scorer (offline, deterministic).
// Used to label news items that arrive without provider sentiment,
// e.g. articles ingested from an RSS feed.
// ------------------------------------------------------------------

type keyword struct {
	term   string
	weight float64
}

// bullish / bearish keyword dictionaries (lowercase). Slices rather than
// maps so that scores are summed in a fixed order.
var bullishWords = []keyword{
	{"bullish", 0.7}, {"rally", 0.6}, {"surge", 0.7}, {"upbeat", 0.5},
	{"positive", 0.4}, {"growth", 0.4}, {"upgrade", 0.6}, {"outperform", 0.6},
	{"buy", 0.5}, {"strong", 0.4}, {"recovery", 0.5}, {"breakout", 0.6},
	{"record high", 0.7}, {"all-time high", 0.7}, {"beat", 0.5},
	{"exceeds", 0.5}, {"beats estimate", 0.6}, {"expansion", 0.4},
	{"profit", 0.3}, {"dividend", 0.4}, {"buyback", 0.5},
}

var bearishWords = []keyword{
	{"bearish", 0.7}, {"crash", 0.8}, {"plunge", 0.7}, {"slump", 0.6},
	{"negative", 0.4}, {"downgrade", 0.6}, {"underperform", 0.6},
	{"sell", 0.5}, {"weak", 0.4}, {"decline", 0.5}, {"loss", 0.4},
	{"selloff", 0.7}, {"fall", 0.4}, {"correction", 0.5},
	{"default", 0.7}, {"fraud", 0.8}, {"lawsuit", 0.6}, {"investigation", 0.5},
	{"cut", 0.3}, {"miss", 0.5}, {"warning", 0.5}, {"concern", 0.3},
}

// Provider label bands on the [-1, 1] sentiment scale.
const (
	bullishBand         = 0.35
	somewhatBullishBand = 0.15
	somewhatBearishBand = -0.15
	bearishBand         = -0.35
)

// ScoreHeadline returns a sentiment score for a single headline.
// Score ranges from -1.0 (very bearish) to +1.0 (very bullish).
func ScoreHeadline(headline string) (score float64, confidence float64) {
	lower := strings.ToLower(headline)

	bullScore := 0.0
	bearScore := 0.0
	matches := 0

	for _, k := range bullishWords {
		if strings.Contains(lower, k.term) {
			bullScore += k.weight
			matches++
		}
	}

	for _, k := range bearishWords {
		if strings.Contains(lower, k.term) {
			bearScore += k.weight
			matches++
		}
	}

	if matches == 0 {
		return 0, 0.1 // no signal
	}

	total := bullScore + bearScore
	if total == 0 {
		return 0, 0.1
	}

	// Net score normalized to -1..+1.
	score = (bullScore - bearScore) / total

	// Confidence based on number of keyword matches.
	confidence = math.Min(float64(matches)*0.15+0.2, 0.85)

	return score, confidence
}

// ScoreText scores free text on the provider's sentiment scale: the
// headline score damped by its confidence.
func ScoreText(text string) float64 {
	score, confidence := ScoreHeadline(text)
	return score * confidence
}

// Label maps a provider-scale score to its sentiment label.
func Label(score float64) string {
	switch {
	case score >= bullishBand:
		return "Bullish"
	case score >= somewhatBullishBand:
		return "Somewhat-Bullish"
	case score <= bearishBand:
		return "Bearish"
	case score <= somewhatBearishBand:
		return "Somewhat-Bearish"
	default:
		return "Neutral"
	}
}
