package report

import "strings"

// Traits whose summary text reads better with an explicit "tend to
// have a" lead-in. Some are not in the current report scope but are
// kept for when the scope grows.
var prefixTraits = map[string]bool{
	"bmi":                          true,
	"body-fat-mass":                true,
	"breast-size":                  true,
	"mathematical-ability":         true,
	"hippocampal-volume":           true,
	"reading-and-spelling-ability": true,
}

// prefixRewrites turn the provider's sentence stems into verb phrases
// that follow "They". Applied in order; at most one fires.
var prefixRewrites = []struct{ old, new string }{
	{"Weak", "have low"},
	{"Does not show", "have low"},
	{"Somewhat prone", "are somewhat prone"},
	{"Not easily", "are not easily"},
	{"Easily", "are easily"},
	{"Stronger tendency", "have a strong tendency"},
	{"Slight tendency", "have a tendency"},
	{"Strong", "have high"},
}

// CleanPhrase converts a genome link report summary into a speakable
// clause. Intermediate (score 2) summaries are left as-is since they
// never appear in match output.
//
// Openness collapses to one of two fixed clauses: the affirmative
// wording is chosen only when "not to be" starts the summary, the
// negated wording in every other case.
func CleanPhrase(trait, phrase string) string {
	if prefixTraits[trait] {
		phrase = "tend to have a " + phrase + strings.ReplaceAll(trait, "-", " ")
	}
	if trait == "openness" {
		if strings.Index(phrase, "not to be") != 0 {
			phrase = "tend not to be open to experience. "
		} else {
			phrase = "tend to be open to experience. "
		}
	}
	phrase = strings.TrimSuffix(phrase, ", slightly")
	for _, rule := range prefixRewrites {
		if strings.HasPrefix(phrase, rule.old) {
			phrase = rule.new + strings.TrimPrefix(phrase, rule.old)
			break
		}
	}
	return "They " + phrase
}
