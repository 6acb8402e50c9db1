package entry

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Normalize coerces an arbitrary decoded record into a well-formed Entry. It
// accepts decoded JSON objects, raw JSON bytes, and Entry values; anything
// else is treated as an empty record. It never fails, and normalizing an
// already normalized entry returns it unchanged.
func Normalize(raw interface{}) Entry {
	return NormalizeAt(raw, time.Now())
}

// NormalizeAt is Normalize with an explicit clock for synthesized ids.
func NormalizeAt(raw interface{}, now time.Time) Entry {
	fields := asRecord(raw)

	e := Entry{
		ID:          cast.ToString(fields["id"]),
		Title:       strings.TrimSpace(text(fields["title"])),
		Date:        strings.TrimSpace(text(fields["date"])),
		Place:       text(fields["place"]),
		Event:       text(fields["event"]),
		Person:      text(fields["person"]),
		Description: text(fields["description"]),
		Media:       normalizeMedia(fields["media"]),
	}
	if e.ID == "" {
		e.ID = NewImportID(e.Title, now)
	}
	return e
}

// NormalizeAll normalizes every element of a decoded document, in order.
func NormalizeAll(items []interface{}, now time.Time) []Entry {
	out := make([]Entry, 0, len(items))
	for _, item := range items {
		out = append(out, NormalizeAt(item, now))
	}
	return out
}

func asRecord(raw interface{}) map[string]interface{} {
	switch v := raw.(type) {
	case map[string]interface{}:
		return v
	case map[interface{}]interface{}:
		return cast.ToStringMap(v)
	case Entry:
		return v.record()
	case *Entry:
		if v == nil {
			return map[string]interface{}{}
		}
		return v.record()
	case json.RawMessage:
		return decodeRecord(v)
	case []byte:
		return decodeRecord(v)
	default:
		return map[string]interface{}{}
	}
}

func decodeRecord(b []byte) map[string]interface{} {
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil || m == nil {
		return map[string]interface{}{}
	}
	return m
}

func (e Entry) record() map[string]interface{} {
	media := make([]interface{}, 0, len(e.Media))
	for _, m := range e.Media {
		media = append(media, map[string]interface{}{
			"type":    string(m.Type),
			"url":     m.URL,
			"caption": m.Caption,
		})
	}
	return map[string]interface{}{
		"id":          e.ID,
		"title":       e.Title,
		"date":        e.Date,
		"place":       e.Place,
		"event":       e.Event,
		"person":      e.Person,
		"description": e.Description,
		"media":       media,
	}
}

// text coerces scalars to strings; objects and arrays become empty.
func text(v interface{}) string {
	switch v.(type) {
	case map[string]interface{}, map[interface{}]interface{}, []interface{}:
		return ""
	}
	return cast.ToString(v)
}

func normalizeMedia(raw interface{}) []MediaRef {
	items := cast.ToSlice(raw)
	out := make([]MediaRef, 0, len(items))
	for _, item := range items {
		var fields map[string]interface{}
		switch v := item.(type) {
		case map[string]interface{}:
			fields = v
		case MediaRef:
			fields = map[string]interface{}{"type": string(v.Type), "url": v.URL, "caption": v.Caption}
		default:
			continue
		}
		url := text(fields["url"])
		if url == "" {
			continue
		}
		out = append(out, MediaRef{
			Type:    ParseMediaType(text(fields["type"])),
			URL:     url,
			Caption: text(fields["caption"]),
		})
	}
	return out
}
