package entry

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 9, 10, 11, 12, 0, time.UTC)

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Hello World":          "hello-world",
		"  --Leading & trail--": "leading-trail",
		"Perón's return, 1973": "per-n-s-return-1973",
		"X":                    "x",
		"!!!":                  "",
		"":                     "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slug(in), "slug(%q)", in)
	}
}

func TestNewID(t *testing.T) {
	assert.Equal(t, "first-flight-1709979072000", NewID("First Flight", fixedNow))
	assert.Equal(t, "entry-1709979072000", NewID("???", fixedNow))
}

func TestNewImportIDIsDistinctWithinOneTick(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := NewImportID("Same Title", fixedNow)
		require.True(t, strings.HasPrefix(id, "same-title-1709979072000-"), id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestNew(t *testing.T) {
	e := New("  Moon Landing ", "1969-07-20", "Sea of Tranquility", "Space", fixedNow)
	assert.Equal(t, "moon-landing-1709979072000", e.ID)
	assert.Equal(t, "Moon Landing", e.Title)
	assert.NotNil(t, e.Media)
}

func TestYear(t *testing.T) {
	assert.Equal(t, 1900, Year("1900-01-01", 1800))
	assert.Equal(t, 2000, Year("2000", 1800))
	assert.Equal(t, 1800, Year("circa 1900", 1800))
	assert.Equal(t, 1800, Year("", 1800))
	assert.Equal(t, 1800, Year("19", 1800))
}

func TestParseDateOrdering(t *testing.T) {
	yearOnly := ParseDate("2000", 1800)
	assert.True(t, yearOnly.YearOnly())
	full := ParseDate("2000-01-01", 1800)
	assert.Equal(t, -1, yearOnly.Compare(full))
	assert.Equal(t, 1, ParseDate("2000-12-31", 1800).Compare(full))
	assert.Equal(t, 0, ParseDate("bogus", 1800).Compare(Day{Year: 1800}))
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2000"))
	assert.True(t, ValidDate("2000-02-29"))
	assert.False(t, ValidDate("2001-02-29"))
	assert.False(t, ValidDate("20xx"))
	assert.False(t, ValidDate(""))
}

func TestNormalizeCoercesFields(t *testing.T) {
	raw := map[string]interface{}{
		"title":       "  Treaty  ",
		"date":        2000.0,
		"place":       nil,
		"event":       true,
		"description": map[string]interface{}{"nested": 1},
		"extra":       "ignored",
	}
	e := NormalizeAt(raw, fixedNow)
	assert.Equal(t, "Treaty", e.Title)
	assert.Equal(t, "2000", e.Date)
	assert.Equal(t, "", e.Place)
	assert.Equal(t, "true", e.Event)
	assert.Equal(t, "", e.Description)
	assert.True(t, strings.HasPrefix(e.ID, "treaty-1709979072000-"), e.ID)
	assert.Empty(t, e.Media)
	assert.NotNil(t, e.Media)
}

func TestNormalizeKeepsExistingID(t *testing.T) {
	e := NormalizeAt(map[string]interface{}{"id": "abc", "title": "T"}, fixedNow)
	assert.Equal(t, "abc", e.ID)
}

func TestNormalizeMedia(t *testing.T) {
	raw := map[string]interface{}{
		"title": "m",
		"media": []interface{}{
			map[string]interface{}{"type": "video", "url": "https://youtu.be/abc"},
			map[string]interface{}{"type": "VIDEO", "url": "https://example.com/a.png", "caption": "cap"},
			map[string]interface{}{"type": "image"},
			map[string]interface{}{"url": ""},
			"not an object",
			nil,
		},
	}
	e := NormalizeAt(raw, fixedNow)
	require.Len(t, e.Media, 2)
	assert.Equal(t, MediaRef{Type: MediaVideo, URL: "https://youtu.be/abc"}, e.Media[0])
	assert.Equal(t, MediaRef{Type: MediaImage, URL: "https://example.com/a.png", Caption: "cap"}, e.Media[1])
	assert.Len(t, e.Videos(), 1)
	assert.Len(t, e.Images(), 1)
}

func TestNormalizeMediaNotASlice(t *testing.T) {
	e := NormalizeAt(map[string]interface{}{"media": "nope"}, fixedNow)
	assert.Empty(t, e.Media)
}

func TestNormalizeUnknownInput(t *testing.T) {
	for _, raw := range []interface{}{nil, 42, "text", []interface{}{1}, (*Entry)(nil)} {
		e := NormalizeAt(raw, fixedNow)
		assert.True(t, strings.HasPrefix(e.ID, "entry-1709979072000-"), "%#v -> %s", raw, e.ID)
		assert.Equal(t, "", e.Title)
	}
}

func TestNormalizeRawJSON(t *testing.T) {
	e := NormalizeAt(json.RawMessage(`{"id":"j1","title":"From JSON","media":[{"url":"u"}]}`), fixedNow)
	assert.Equal(t, "j1", e.ID)
	assert.Equal(t, "From JSON", e.Title)
	assert.Equal(t, []MediaRef{{Type: MediaImage, URL: "u"}}, e.Media)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []interface{}{
		map[string]interface{}{"title": " a ", "date": " 1999 ", "person": 7},
		map[string]interface{}{"id": "x", "media": []interface{}{map[string]interface{}{"url": "u", "caption": "c", "type": "video"}}},
		"garbage",
		Entry{ID: "e", Title: "t", Media: []MediaRef{{Type: MediaImage, URL: "u"}}},
	}
	for _, in := range inputs {
		once := NormalizeAt(in, fixedNow)
		twice := NormalizeAt(once, fixedNow.Add(time.Hour))
		assert.Equal(t, once, twice)

		// Through the JSON wire form as well.
		b, err := json.Marshal(once)
		require.NoError(t, err)
		var decoded interface{}
		require.NoError(t, json.Unmarshal(b, &decoded))
		assert.Equal(t, once, NormalizeAt(decoded, fixedNow.Add(time.Hour)))
	}
}

func TestNormalizeAll(t *testing.T) {
	out := NormalizeAll([]interface{}{map[string]interface{}{"id": "a"}, 3}, fixedNow)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID)
}

func TestClone(t *testing.T) {
	e := Entry{ID: "a", Media: []MediaRef{{URL: "u"}}}
	cp := e.Clone()
	cp.Media[0].URL = "changed"
	assert.Equal(t, "u", e.Media[0].URL)
}

func TestIsDataURL(t *testing.T) {
	assert.True(t, MediaRef{URL: "data:image/png;base64,AAAA"}.IsDataURL())
	assert.False(t, MediaRef{URL: "https://x"}.IsDataURL())
}
