package phrase

import (
	"math"
	"regexp"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Stats summarizes a transcript's phrase segmentation.
type Stats struct {
	PhraseCount       int      `json:"phraseCount"`
	TotalWords        int      `json:"totalWords"`
	AvgWordsPerPhrase int      `json:"avgWordsPerPhrase"`
	Phrases           []string `json:"phrases"`
}

// GetStats splits a transcript and reports the phrase count, the total word
// count and the rounded average words per phrase.
//
// TotalWords counts the tokens of splitting the original, unnormalized
// transcript on whitespace runs. Leading or trailing whitespace therefore
// contributes an empty edge token, inflating the count by one per side.
func GetStats(transcript string) Stats {
	phrases := Split(transcript)

	totalWords := len(whitespaceRun.Split(transcript, -1))

	avg := 0
	if len(phrases) > 0 {
		avg = int(math.Round(float64(totalWords) / float64(len(phrases))))
	}

	return Stats{
		PhraseCount:       len(phrases),
		TotalWords:        totalWords,
		AvgWordsPerPhrase: avg,
		Phrases:           phrases,
	}
}
