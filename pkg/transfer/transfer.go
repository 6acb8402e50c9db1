// Package transfer encodes entries for export and reconciles imported
// documents with the existing collection.
package transfer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/timeline/pkg/entry"
)

// ErrFormat is returned when a document parses but its root is not an array.
var ErrFormat = errors.New("transfer: document root must be an array of entries")

// DecodeError wraps invalid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("transfer: invalid JSON: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Mode selects how an import combines with the existing entries.
type Mode int

const (
	Merge Mode = iota
	Replace
)

func (m Mode) String() string {
	if m == Replace {
		return "replace"
	}
	return "merge"
}

// ParseMode reads "merge" or "replace". Empty means merge.
func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "merge":
		return Merge, nil
	case "replace":
		return Replace, nil
	}
	return Merge, fmt.Errorf("transfer: unknown import mode %q", raw)
}

// Export renders entries as an indented JSON array. A nil slice exports as [].
func Export(entries []entry.Entry) ([]byte, error) {
	if entries == nil {
		entries = []entry.Entry{}
	}
	out := make([]entry.Entry, len(entries))
	for i, e := range entries {
		if e.Media == nil {
			e.Media = []entry.MediaRef{}
		}
		out[i] = e
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("transfer: encode: %w", err)
	}
	return append(b, '\n'), nil
}

// Filename is the suggested export file name for t.
func Filename(t time.Time) string {
	return "timeline-" + t.Format("20060102-150405") + ".json"
}

// Decode parses an import document and normalizes every element.
func Decode(data []byte) ([]entry.Entry, error) {
	return DecodeAt(data, time.Now())
}

// DecodeAt is Decode with an explicit clock for generated ids.
func DecodeAt(data []byte, now time.Time) ([]entry.Entry, error) {
	var root interface{}
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, &DecodeError{Err: err}
	}
	items, ok := root.([]interface{})
	if !ok {
		return nil, ErrFormat
	}
	return entry.NormalizeAll(items, now), nil
}

// Reconcile combines existing and incoming entries. Replace yields incoming
// as given. Merge keeps the existing order, swaps same-id records wholesale
// and appends unseen ids in incoming order; when the incoming document
// repeats an id the later record wins.
func Reconcile(existing, incoming []entry.Entry, mode Mode) []entry.Entry {
	if mode == Replace {
		out := make([]entry.Entry, len(incoming))
		copy(out, incoming)
		return out
	}

	pos := make(map[string]int, len(existing)+len(incoming))
	out := make([]entry.Entry, 0, len(existing)+len(incoming))
	for _, e := range existing {
		pos[e.ID] = len(out)
		out = append(out, e)
	}
	for _, e := range incoming {
		if i, ok := pos[e.ID]; ok {
			out[i] = e
			continue
		}
		pos[e.ID] = len(out)
		out = append(out, e)
	}
	return out
}
