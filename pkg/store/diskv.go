package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"

	"tableflip.dev/timeline/pkg/entry"
)

// SlotKey names the single slot that holds every entry as one JSON array.
const SlotKey = "timeline-items-v1"

// Persistence is the load/save boundary handed to the entry store by the host.
type Persistence interface {
	// Load never fails: an empty, absent or malformed slot reads as no entries.
	Load(ctx context.Context) []entry.Entry
	// Save rewrites the whole slot. Failures are *PersistenceError.
	Save(entries []entry.Entry) error
	Watch(ctx context.Context) (<-chan Event, error)
	Path() string
}

// Open creates a Persistence backed by diskv using the provided config.
func Open(cfg Config, log *zap.SugaredLogger) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      4 * 1024 * 1024,
	}), basePath: basePath, log: log}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	log      *zap.SugaredLogger
}

func (p *persistence) Path() string {
	return filepath.Join(p.basePath, SlotKey)
}

func (p *persistence) Load(ctx context.Context) []entry.Entry {
	if err := ctx.Err(); err != nil {
		return []entry.Entry{}
	}
	val, err := p.read()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			p.log.Warnw("slot unreadable, starting empty", "path", p.Path(), "error", &PersistenceError{Op: "read", Err: err})
		}
		return []entry.Entry{}
	}
	return decodeSlot(val, p.log)
}

// read bypasses the diskv cache; other processes may have rewritten the slot.
func (p *persistence) read() ([]byte, error) {
	rc, err := p.d.ReadStream(SlotKey, true)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func (p *persistence) Save(entries []entry.Entry) error {
	data, err := encodeSlot(entries)
	if err != nil {
		return &PersistenceError{Op: "encode", Err: err}
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return &PersistenceError{Op: "write", Err: err}
	}
	if err := p.d.Write(SlotKey, data); err != nil {
		return &PersistenceError{Op: "write", Err: err}
	}
	return nil
}

func encodeSlot(entries []entry.Entry) ([]byte, error) {
	if entries == nil {
		entries = []entry.Entry{}
	}
	return json.Marshal(entries)
}

// decodeSlot runs every stored record back through the normalizer so that a
// hand-edited or older slot still yields well-formed entries.
func decodeSlot(data []byte, log *zap.SugaredLogger) []entry.Entry {
	if len(data) == 0 {
		return []entry.Entry{}
	}
	var items []interface{}
	if err := json.Unmarshal(data, &items); err != nil {
		log.Warnw("slot malformed, starting empty", "error", &PersistenceError{Op: "decode", Err: err})
		return []entry.Entry{}
	}
	return entry.NormalizeAll(items, nowFunc())
}

// keyToPathTransform stores every key as a file directly under the base path.
func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: s,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}

func (p *persistence) String() string {
	return fmt.Sprintf("diskv(%s)", p.Path())
}
