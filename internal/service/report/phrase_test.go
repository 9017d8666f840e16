package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ultradian/alexa-genome-match/internal/service/report"
)

func TestCleanPhraseRewrites(t *testing.T) {
	cases := []struct {
		name   string
		trait  string
		phrase string
		want   string
	}{
		{"weak", "anger", "Weak tendency", "They have low tendency"},
		{"does not show", "anger", "Does not show tendency", "They have low tendency"},
		{"somewhat prone", "depression", "Somewhat prone to depression", "They are somewhat prone to depression"},
		{"not easily", "anger", "Not easily angered", "They are not easily angered"},
		{"easily", "anger", "Easily angered", "They are easily angered"},
		{"stronger tendency", "gambling", "Stronger tendency to gamble", "They have a strong tendency to gamble"},
		{"slight tendency", "gambling", "Slight tendency to gamble", "They have a tendency to gamble"},
		{"strong", "anger", "Strong tendency", "They have high tendency"},
		{"slightly suffix stripped", "gambling", "Stronger tendency to gamble, slightly", "They have a strong tendency to gamble"},
		{"suffix only stripped at end", "anger", "Weak, slightly angered", "They have low, slightly angered"},
		{"no rule matches", "anger", "Average tendency", "They Average tendency"},
		{"rewrite anchored to start", "anger", "A Strong tendency", "They A Strong tendency"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, report.CleanPhrase(tc.trait, tc.phrase))
		})
	}
}

func TestCleanPhraseTendTraits(t *testing.T) {
	got := report.CleanPhrase("body-fat-mass", "higher ")
	assert.Equal(t, "They tend to have a higher body fat mass", got)

	got = report.CleanPhrase("bmi", "lower ")
	assert.Equal(t, "They tend to have a lower bmi", got)
}

// The affirmative openness wording only appears when "not to be" sits
// at the very start of the summary; anything else, including summaries
// with "not to be" in the middle, renders as negated.
func TestCleanPhraseOpenness(t *testing.T) {
	got := report.CleanPhrase("openness", "Tends to be open")
	assert.Equal(t, "They tend not to be open to experience. ", got)

	got = report.CleanPhrase("openness", "Tends not to be open")
	assert.Equal(t, "They tend not to be open to experience. ", got)

	got = report.CleanPhrase("openness", "not to be open")
	assert.Equal(t, "They tend to be open to experience. ", got)
}
