// Package app is the control layer shared by the CLI and the browser. It owns
// the filter criteria and the selection, and keeps the selection valid after
// every change to the store or the criteria.
package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/timeline/pkg/cursor"
	"tableflip.dev/timeline/pkg/entry"
	"tableflip.dev/timeline/pkg/facet"
	"tableflip.dev/timeline/pkg/store"
	"tableflip.dev/timeline/pkg/timeline"
	"tableflip.dev/timeline/pkg/transfer"
	"tableflip.dev/timeline/pkg/view"
)

var (
	ErrNotFound      = errors.New("app: entry not found")
	ErrTitleRequired = errors.New("app: title is required")
	ErrInvalidDate   = errors.New("app: date must be YYYY or YYYY-MM-DD")
	errNoStore       = errors.New("app: no store configured")
)

// Service provides high-level operations over the entry store.
// It wraps persistence and entry transformations so UIs and CLIs can share logic.
type Service struct {
	Persistence store.Persistence
	Store       *timeline.Store
	Criteria    view.Criteria
	Cursor      cursor.Cursor
	Logger      *zap.SugaredLogger
	// Now is the clock used for ids and export names. Defaults to time.Now.
	Now func() time.Time
}

// New wires a service over p using the year window and locale of cfg.
func New(p store.Persistence, cfg store.Config, log *zap.SugaredLogger) *Service {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	c := view.DefaultCriteria(cfg.StartYear(), cfg.EndYear())
	c.Locale = cfg.Locale()
	return &Service{
		Persistence: p,
		Store:       timeline.New(p, timeline.WithLogger(log)),
		Criteria:    c,
		Logger:      log,
	}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) log() *zap.SugaredLogger {
	if s.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return s.Logger
}

// Load reads the persisted slot and selects the first visible entry.
func (s *Service) Load(ctx context.Context) error {
	if s.Store == nil {
		return errNoStore
	}
	s.Store.Load(ctx)
	s.repair()
	return nil
}

// Reload re-reads the slot, keeping the selection when it is still visible.
func (s *Service) Reload(ctx context.Context) error {
	return s.Load(ctx)
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.Watch(ctx)
}

// View is the filtered, sorted sequence for the current criteria.
func (s *Service) View() []entry.Entry {
	if s.Store == nil {
		return nil
	}
	return view.Apply(s.Store.All(), s.Criteria)
}

// Facets returns the place, event and person menus for the whole store.
func (s *Service) Facets() facet.Set {
	var all []entry.Entry
	if s.Store != nil {
		all = s.Store.All()
	}
	return facet.Index(facet.NewCompare(s.Criteria.Locale), all)
}

// SetCriteria swaps the filter state and repairs the selection.
func (s *Service) SetCriteria(c view.Criteria) {
	s.Criteria = c
	s.repair()
}

// Select points the cursor at id.
func (s *Service) Select(id string) error {
	if s.Store == nil {
		return errNoStore
	}
	if !s.Store.Contains(id) {
		return ErrNotFound
	}
	s.Cursor.Select(id)
	return nil
}

// Next moves to the following visible entry, wrapping around.
func (s *Service) Next() {
	s.Cursor.Next(s.View())
}

// Prev moves to the previous visible entry, wrapping around.
func (s *Service) Prev() {
	s.Cursor.Prev(s.View())
}

// Current resolves the selection against the store.
func (s *Service) Current() (entry.Entry, bool) {
	id, ok := s.Cursor.Selected()
	if !ok || s.Store == nil {
		return entry.Entry{}, false
	}
	return s.Store.Get(id)
}

// Draft carries the fields of a new entry as entered by the user.
type Draft struct {
	Title       string
	Date        string
	Place       string
	Event       string
	Person      string
	Description string
	Media       []entry.MediaRef
}

// Add validates d, stores a new entry and selects it when it is visible.
func (s *Service) Add(ctx context.Context, d Draft) (entry.Entry, error) {
	if s.Store == nil {
		return entry.Entry{}, errNoStore
	}
	if err := validate(d.Title, d.Date); err != nil {
		return entry.Entry{}, err
	}
	e := entry.New(d.Title, d.Date, d.Place, d.Event, s.now())
	e.Person = d.Person
	e.Description = d.Description
	e.Media = append(e.Media, d.Media...)
	e = entry.Normalize(e)
	if err := s.Store.Add(e); err != nil {
		return entry.Entry{}, err
	}
	s.log().Debugw("added entry", "id", e.ID)
	s.Cursor.Select(e.ID)
	s.repair()
	return e, nil
}

// Update replaces the stored record with the same id.
func (s *Service) Update(ctx context.Context, e entry.Entry) (entry.Entry, error) {
	if s.Store == nil {
		return entry.Entry{}, errNoStore
	}
	if err := validate(e.Title, e.Date); err != nil {
		return entry.Entry{}, err
	}
	e = entry.Normalize(e)
	if !s.Store.Update(e) {
		return entry.Entry{}, ErrNotFound
	}
	s.repair()
	return e, nil
}

// Delete removes the entry permanently. Confirmation is the caller's job.
func (s *Service) Delete(ctx context.Context, id string) error {
	if s.Store == nil {
		return errNoStore
	}
	if !s.Store.Remove(id) {
		return ErrNotFound
	}
	s.repair()
	return nil
}

// Import decodes data and combines it with the store. Nothing is touched
// unless the whole document decodes. It returns the number of records read.
func (s *Service) Import(ctx context.Context, data []byte, mode transfer.Mode) (int, error) {
	if s.Store == nil {
		return 0, errNoStore
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	incoming, err := transfer.DecodeAt(data, s.now())
	if err != nil {
		return 0, err
	}
	s.Store.Replace(transfer.Reconcile(s.Store.All(), incoming, mode))
	if mode == transfer.Replace {
		s.Cursor.Clear()
	}
	s.repair()
	s.log().Debugw("imported entries", "mode", mode.String(), "count", len(incoming), "total", s.Store.Len())
	return len(incoming), nil
}

// Export encodes the whole store and suggests a file name.
func (s *Service) Export(ctx context.Context) ([]byte, string, error) {
	if s.Store == nil {
		return nil, "", errNoStore
	}
	b, err := transfer.Export(s.Store.All())
	if err != nil {
		return nil, "", err
	}
	return b, transfer.Filename(s.now()), nil
}

func (s *Service) repair() {
	if s.Cursor.Repair(s.View()) {
		id, _ := s.Cursor.Selected()
		s.log().Debugw("selection repaired", "id", id)
	}
}

func validate(title, date string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleRequired
	}
	if date = strings.TrimSpace(date); date != "" && !entry.ValidDate(date) {
		return ErrInvalidDate
	}
	return nil
}
