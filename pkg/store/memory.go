package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/timeline/pkg/entry"
)

var nowFunc = time.Now

// ErrWriteDisabled is returned by a Memory slot whose writes were switched off.
var ErrWriteDisabled = errors.New("store: writes disabled")

// Memory keeps the slot in a byte buffer. It backs --ephemeral runs and tests.
type Memory struct {
	mu       sync.Mutex
	data     []byte
	failing  bool
	writes   int
	log      *zap.SugaredLogger
	watchers []chan Event
}

// NewMemory returns an empty in-memory slot, optionally seeded with raw slot bytes.
func NewMemory(seed []byte) *Memory {
	return &Memory{data: seed, log: zap.NewNop().Sugar()}
}

// FailWrites makes every subsequent Save fail until called with false.
func (m *Memory) FailWrites(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failing = fail
}

// Writes counts successful saves.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// Raw returns a copy of the slot bytes.
func (m *Memory) Raw() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.data...)
}

func (m *Memory) Path() string {
	return "memory:" + SlotKey
}

func (m *Memory) Load(ctx context.Context) []entry.Entry {
	if err := ctx.Err(); err != nil {
		return []entry.Entry{}
	}
	return decodeSlot(m.Raw(), m.log)
}

func (m *Memory) Save(entries []entry.Entry) error {
	data, err := encodeSlot(entries)
	if err != nil {
		return &PersistenceError{Op: "encode", Err: err}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return &PersistenceError{Op: "write", Err: ErrWriteDisabled}
	}
	m.data = data
	m.writes++
	for _, w := range m.watchers {
		select {
		case w <- Event{Type: EventSlotChanged}:
		default:
		}
	}
	return nil
}

// Watch reports every successful Save until ctx is done.
func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 8)
	m.mu.Lock()
	m.watchers = append(m.watchers, ch)
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, w := range m.watchers {
			if w == ch {
				m.watchers = append(m.watchers[:i], m.watchers[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}
