package transfer

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/timeline/pkg/entry"
)

var fixedNow = time.Date(2024, 3, 9, 10, 11, 12, 0, time.UTC)

func sample() []entry.Entry {
	return []entry.Entry{
		{ID: "a", Title: "Alpha", Date: "1900-01-01", Place: "Lima", Event: "War", Media: []entry.MediaRef{}},
		{ID: "b", Title: "Beta", Date: "1910", Place: "Quito", Event: "Peace", Person: "Sucre", Description: "two\nlines",
			Media: []entry.MediaRef{{Type: entry.MediaImage, URL: "https://img/1.png", Caption: "one"}, {Type: entry.MediaVideo, URL: "https://youtu.be/x"}}},
		{ID: "c", Title: "Gamma", Date: "1920-02-02", Media: []entry.MediaRef{}},
	}
}

func ids(entries []entry.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestExportIndented(t *testing.T) {
	b, err := Export(sample()[:1])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "[\n  {\n    \"id\": \"a\""), string(b))
	assert.Contains(t, string(b), `"media": []`)
}

func TestExportNil(t *testing.T) {
	b, err := Export(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(b))
}

func TestExportReplaceRoundTrip(t *testing.T) {
	b, err := Export(sample())
	require.NoError(t, err)
	got, err := DecodeAt(b, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, sample(), Reconcile([]entry.Entry{{ID: "zzz"}}, got, Replace))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "timeline-20240309-101112.json", Filename(fixedNow))
}

func TestDecodeInvalidJSON(t *testing.T) {
	_, err := Decode([]byte(`[{"title":`))
	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.NotNil(t, errors.Unwrap(err))
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestDecodeNotArray(t *testing.T) {
	for _, doc := range []string{`{"title":"x"}`, `"x"`, `42`, `null`} {
		_, err := Decode([]byte(doc))
		assert.ErrorIs(t, err, ErrFormat, doc)
	}
}

func TestDecodeNormalizes(t *testing.T) {
	got, err := DecodeAt([]byte(`[{"title":" X ","date":2000,"media":[{"url":""},{"type":"VIDEO","url":"u"}]}, 7, {"id":"keep"}]`), fixedNow)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.True(t, strings.HasPrefix(got[0].ID, "x-1709979072000-"), got[0].ID)
	assert.Equal(t, "X", got[0].Title)
	assert.Equal(t, "2000", got[0].Date)
	assert.Equal(t, []entry.MediaRef{{Type: entry.MediaImage, URL: "u"}}, got[0].Media)

	assert.True(t, strings.HasPrefix(got[1].ID, "entry-"), got[1].ID)
	assert.Equal(t, "keep", got[2].ID)
}

func TestReplaceScenario(t *testing.T) {
	incoming, err := Decode([]byte(`[{"title":"X","date":"2000","place":"P","event":"E"}]`))
	require.NoError(t, err)
	got := Reconcile(sample(), incoming, Replace)
	require.Len(t, got, 1)
	assert.True(t, strings.HasPrefix(got[0].ID, "x-"), got[0].ID)
	assert.Equal(t, "P", got[0].Place)
}

func TestMerge(t *testing.T) {
	incoming := []entry.Entry{
		{ID: "d", Title: "Delta"},
		{ID: "b", Title: "Beta v2"},
		{ID: "e", Title: "Epsilon"},
	}
	got := Reconcile(sample(), incoming, Merge)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(got))
	assert.Equal(t, "Beta v2", got[1].Title)
	assert.Empty(t, got[1].Person, "merge replaces wholesale")
}

func TestMergeLaterDuplicateWins(t *testing.T) {
	incoming := []entry.Entry{{ID: "n", Title: "first"}, {ID: "a", Title: "A1"}, {ID: "n", Title: "second"}, {ID: "a", Title: "A2"}}
	got := Reconcile(sample(), incoming, Merge)
	assert.Equal(t, []string{"a", "b", "c", "n"}, ids(got))
	assert.Equal(t, "A2", got[0].Title)
	assert.Equal(t, "second", got[3].Title)
}

func TestMergeIdempotent(t *testing.T) {
	incoming := []entry.Entry{{ID: "b", Title: "B"}, {ID: "x", Title: "X"}}
	once := Reconcile(sample(), incoming, Merge)
	twice := Reconcile(once, incoming, Merge)
	assert.Equal(t, once, twice)
}

func TestReconcileDoesNotAlias(t *testing.T) {
	existing := sample()
	incoming := []entry.Entry{{ID: "a", Title: "changed"}}
	Reconcile(existing, incoming, Merge)
	assert.Equal(t, "Alpha", existing[0].Title)

	out := Reconcile(existing, incoming, Replace)
	out[0].Title = "mutated"
	assert.Equal(t, "changed", incoming[0].Title)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, Merge, m)
	m, err = ParseMode("Replace")
	require.NoError(t, err)
	assert.Equal(t, Replace, m)
	assert.Equal(t, "replace", m.String())
	_, err = ParseMode("upsert")
	assert.Error(t, err)
}
