package facet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tableflip.dev/timeline/pkg/entry"
)

func sample() []entry.Entry {
	return []entry.Entry{
		{ID: "1", Place: "Quito", Event: "War", Person: "Bolívar"},
		{ID: "2", Place: "lima", Event: "Treaty"},
		{ID: "3", Place: "Ávila", Event: "War", Person: "Perón"},
		{ID: "4", Place: "Quito", Event: "", Person: "ana"},
		{ID: "5", Place: "Bogotá", Event: "Birth", Person: "Bolívar"},
	}
}

func TestValuesSortedUniqueWithSentinel(t *testing.T) {
	assert.Equal(t, []string{All, "Ávila", "Bogotá", "lima", "Quito"}, Values(sample(), Place))
	assert.Equal(t, []string{All, "Birth", "Treaty", "War"}, Values(sample(), Event))
	assert.Equal(t, []string{All, "ana", "Bolívar", "Perón"}, Values(sample(), Person))
}

func TestValuesEmpty(t *testing.T) {
	assert.Equal(t, []string{All}, Values(nil, Place))
}

func TestSentinelNeverDuplicated(t *testing.T) {
	got := Values([]entry.Entry{{Place: All}, {Place: "Lima"}}, Place)
	assert.Equal(t, []string{All, "Lima"}, got)
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches(All, "Lima"))
	assert.True(t, Matches("", "Lima"))
	assert.True(t, Matches("Lima", "Lima"))
	assert.False(t, Matches("lima", "Lima"))
	assert.False(t, Matches("Lima", ""))
}

func TestIndex(t *testing.T) {
	set := Index(NewCompare("es"), sample())
	assert.Len(t, set.Places, 5)
	assert.Len(t, set.Events, 4)
	assert.Len(t, set.People, 4)
}

func TestNewCompareBadLocale(t *testing.T) {
	cmp := NewCompare("not a locale!!")
	assert.Negative(t, cmp("a", "b"))
}

func TestFieldOf(t *testing.T) {
	e := entry.Entry{Place: "p", Event: "e", Person: "x"}
	assert.Equal(t, "p", Place.Of(e))
	assert.Equal(t, "e", Event.Of(e))
	assert.Equal(t, "x", Person.Of(e))
	assert.Equal(t, "person", Person.String())
}

func TestSentinelValueStaysVisibleUnderAll(t *testing.T) {
	entries := []entry.Entry{{ID: "1", Place: All}, {ID: "2", Place: "Lima"}}
	assert.Equal(t, []string{All, "Lima"}, Values(entries, Place))
	assert.True(t, Matches(All, entries[0].Place))
	assert.False(t, Matches("Lima", entries[0].Place))
}
