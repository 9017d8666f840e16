package genome_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ultradian/alexa-genome-match/internal/model/genome"
)

func record(score int) genome.TraitRecord {
	r := make(genome.TraitRecord, len(genome.Traits))
	for _, trait := range genome.Traits {
		r[trait] = genome.TraitValue{Score: score, Phrase: "They " + trait}
	}
	return r
}

func TestDataSetsInsertionOrder(t *testing.T) {
	data := genome.NewDataSets()
	data.Put("Bob", record(1))
	data.Put("Sue", record(2))
	data.Put("mom", record(3))

	assert.Equal(t, []string{"Bob", "Sue", "mom"}, data.Names())

	// Replacing a record keeps its position.
	data.Put("Sue", record(4))
	assert.Equal(t, []string{"Bob", "Sue", "mom"}, data.Names())
	assert.Equal(t, 3, data.Len())
}

func TestDataSetsRename(t *testing.T) {
	data := genome.NewDataSets()
	data.Put(genome.Untitled, record(1))
	data.Put("Bob", record(2))

	assert.False(t, data.Rename(genome.Untitled, "Bob"), "rename onto an existing name must fail")
	assert.True(t, data.Has(genome.Untitled))

	assert.True(t, data.Rename(genome.Untitled, "Sue"))
	assert.False(t, data.Has(genome.Untitled))
	assert.Equal(t, []string{"Bob", "Sue"}, data.Names())

	got, ok := data.Get("Sue")
	require.True(t, ok)
	assert.Equal(t, record(1), got)

	assert.False(t, data.Rename("missing", "other"))
}

func TestDataSetsJSONRoundTripPreservesOrder(t *testing.T) {
	data := genome.NewDataSets()
	data.Put("zed", record(0))
	data.Put("amy", record(4))
	data.Put("mid", record(2))

	raw, err := json.Marshal(data)
	require.NoError(t, err)

	decoded := genome.NewDataSets()
	require.NoError(t, json.Unmarshal(raw, decoded))
	assert.Equal(t, []string{"zed", "amy", "mid"}, decoded.Names())

	got, ok := decoded.Get("amy")
	require.True(t, ok)
	assert.Equal(t, record(4), got)
}

func TestDataSetsClone(t *testing.T) {
	data := genome.NewDataSets()
	data.Put("Bob", record(1))

	copied := data.Clone()
	copied.Put("Sue", record(2))
	bob, _ := copied.Get("Bob")
	bob["anger"] = genome.TraitValue{Score: 4, Phrase: "changed"}

	assert.Equal(t, []string{"Bob"}, data.Names())
	original, _ := data.Get("Bob")
	assert.Equal(t, genome.TraitValue{Score: 1, Phrase: "They anger"}, original["anger"])
}

func TestNilDataSetsAreEmpty(t *testing.T) {
	var data *genome.DataSets
	assert.Equal(t, 0, data.Len())
	assert.Empty(t, data.Names())
	assert.False(t, data.Has("Bob"))
}
