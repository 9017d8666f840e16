package compare_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ultradian/alexa-genome-match/internal/locale"
	"github.com/ultradian/alexa-genome-match/internal/model/genome"
	"github.com/ultradian/alexa-genome-match/internal/service/compare"
)

// uniformRecord scores every trait the same, with the trait name as its
// phrase so matches are attributable.
func uniformRecord(score int) genome.TraitRecord {
	record := make(genome.TraitRecord, len(genome.Traits))
	for _, trait := range genome.Traits {
		record[trait] = genome.TraitValue{Score: score, Phrase: trait}
	}
	return record
}

func TestCompareClassifiesAllScorePairs(t *testing.T) {
	// buckets[a][b]: h = high, m = moderate, - = no match.
	buckets := [5][5]byte{
		{'h', 'm', '-', '-', '-'},
		{'m', 'm', '-', '-', '-'},
		{'-', '-', '-', '-', '-'},
		{'-', '-', '-', 'm', 'm'},
		{'-', '-', '-', 'm', 'h'},
	}

	for a := 0; a <= 4; a++ {
		for b := 0; b <= 4; b++ {
			result := compare.Compare(uniformRecord(a), uniformRecord(b))
			switch buckets[a][b] {
			case 'h':
				assert.Len(t, result.High, len(genome.Traits), "scores %d/%d should be high", a, b)
				assert.Empty(t, result.Moderate, "scores %d/%d", a, b)
			case 'm':
				assert.Empty(t, result.High, "scores %d/%d", a, b)
				assert.Len(t, result.Moderate, len(genome.Traits), "scores %d/%d should be moderate", a, b)
			default:
				assert.Empty(t, result.High, "scores %d/%d", a, b)
				assert.Empty(t, result.Moderate, "scores %d/%d should not match", a, b)
			}
		}
	}
}

func TestCompareIsSymmetric(t *testing.T) {
	a := uniformRecord(0)
	b := uniformRecord(0)
	// Vary per trait so every bucket appears on both sides.
	for i, trait := range genome.Traits {
		a[trait] = genome.TraitValue{Score: i % 5, Phrase: trait}
		b[trait] = genome.TraitValue{Score: (i * 3) % 5, Phrase: trait}
	}

	forward := compare.Compare(a, b)
	backward := compare.Compare(b, a)
	assert.ElementsMatch(t, forward.High, backward.High)
	assert.ElementsMatch(t, forward.Moderate, backward.Moderate)
}

func TestComparePreservesCanonicalTraitOrder(t *testing.T) {
	result := compare.Compare(uniformRecord(4), uniformRecord(4))
	require.Len(t, result.High, len(genome.Traits))
	assert.Equal(t, genome.Traits, result.High)
}

func TestSpeakNoMatches(t *testing.T) {
	res := locale.Resolve(locale.DefaultLocale)
	speech := compare.Speak(compare.Result{}, "Bob", "Sue", res)
	assert.Equal(t, res.Text(locale.KeyNoMatch), speech)
}

func TestSpeakHighAndModerate(t *testing.T) {
	res := locale.Resolve(locale.DefaultLocale)
	result := compare.Result{
		High:     []string{"They have high anger"},
		Moderate: []string{"They are easily depressed", "They have a tendency to gamble"},
	}

	speech := compare.Speak(result, "Bob", "Sue", res)
	want := "For Bob and Sue, " +
		"There was a strong match in 1 traits. " +
		"They have high anger. " +
		"There was a moderately strong match in 2 traits. " +
		"They are easily depressed and They have a tendency to gamble. "
	assert.Equal(t, want, speech)
}

func TestSpeakModerateOnly(t *testing.T) {
	res := locale.Resolve(locale.DefaultLocale)
	result := compare.Result{Moderate: []string{"They are easily depressed"}}

	speech := compare.Speak(result, "Bob", "Sue", res)
	want := "For Bob and Sue, " +
		"There was a moderately strong match in 1 traits. " +
		"They are easily depressed. "
	assert.Equal(t, want, speech)
}
