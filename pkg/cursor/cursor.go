// Package cursor tracks the selected entry within a filtered view.
package cursor

import "tableflip.dev/timeline/pkg/entry"

// Cursor holds at most one selected id. The zero value selects nothing.
//
// The id may refer to an entry that is no longer visible; Repair brings it
// back in line with the current view.
type Cursor struct {
	id string
}

// Selected returns the selected id, if any.
func (c *Cursor) Selected() (string, bool) {
	return c.id, c.id != ""
}

// Select moves the cursor to id. An empty id clears it.
func (c *Cursor) Select(id string) {
	c.id = id
}

// Clear deselects.
func (c *Cursor) Clear() {
	c.id = ""
}

// Index is the position of the selection in seq, or -1.
func (c *Cursor) Index(seq []entry.Entry) int {
	if c.id == "" {
		return -1
	}
	for i, e := range seq {
		if e.ID == c.id {
			return i
		}
	}
	return -1
}

// Next advances to the following entry, wrapping to the first. With no
// visible selection it lands on the first entry.
func (c *Cursor) Next(seq []entry.Entry) {
	if len(seq) == 0 {
		return
	}
	i := c.Index(seq)
	if i < 0 {
		c.id = seq[0].ID
		return
	}
	c.id = seq[(i+1)%len(seq)].ID
}

// Prev steps back, wrapping to the last. With no visible selection it lands
// on the last entry.
func (c *Cursor) Prev(seq []entry.Entry) {
	if len(seq) == 0 {
		return
	}
	i := c.Index(seq)
	if i < 0 {
		c.id = seq[len(seq)-1].ID
		return
	}
	c.id = seq[(i-1+len(seq))%len(seq)].ID
}

// Repair keeps the selection when it is still in seq. Otherwise it falls
// back to the first entry, or to nothing when seq is empty. It reports
// whether the selection changed.
func (c *Cursor) Repair(seq []entry.Entry) bool {
	if c.Index(seq) >= 0 {
		return false
	}
	before := c.id
	if len(seq) == 0 {
		c.id = ""
	} else {
		c.id = seq[0].ID
	}
	return c.id != before
}
