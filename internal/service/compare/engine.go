// Package compare classifies trait-score agreement between two genome
// data sets and renders the result for speech.
package compare

import (
	"github.com/ultradian/alexa-genome-match/internal/locale"
	"github.com/ultradian/alexa-genome-match/internal/model/genome"
)

// Result holds the matching trait phrases, in canonical trait order.
type Result struct {
	High     []string
	Moderate []string
}

// Compare buckets each trait by score agreement. A trait is a high
// match when both scores sit at the same extreme (0/0 or 4/4), a
// moderate match when both fall on the same side of center (<2 or >2)
// without being high, and no match otherwise. Scores of exactly 2 never
// match. Both records are assumed complete.
func Compare(a, b genome.TraitRecord) Result {
	var result Result
	for _, trait := range genome.Traits {
		scoreA, scoreB := a[trait].Score, b[trait].Score
		switch {
		case scoreA == 0 && scoreB == 0 || scoreA == 4 && scoreB == 4:
			result.High = append(result.High, a[trait].Phrase)
		case scoreA < 2 && scoreB < 2 || scoreA > 2 && scoreB > 2:
			result.Moderate = append(result.Moderate, a[trait].Phrase)
		}
	}
	return result
}

// Speak renders a comparison result into spoken output. No matches at
// all yields the no-match message alone; otherwise the intro names both
// subjects, followed by the high block and then the moderate block,
// each with its count and phrase list.
func Speak(result Result, nameA, nameB string, res locale.Resource) string {
	if len(result.High) == 0 && len(result.Moderate) == 0 {
		return res.Text(locale.KeyNoMatch)
	}
	speech := res.Textf(locale.KeyMatchStart, nameA, nameB)
	if len(result.High) != 0 {
		speech += res.Textf(locale.KeyHighMatch, len(result.High))
		speech += locale.SpeakList(res, result.High)
	}
	if len(result.Moderate) != 0 {
		speech += res.Textf(locale.KeyModerateMatch, len(result.Moderate))
		speech += locale.SpeakList(res, result.Moderate)
	}
	return speech
}
