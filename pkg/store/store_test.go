package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/timeline/pkg/entry"
)

func openTemp(t *testing.T) (Persistence, string) {
	t.Helper()
	base := t.TempDir()
	p, err := Open(testConfig{path: base}, nil)
	require.NoError(t, err)
	return p, base
}

func TestDiskLoadAbsentSlotIsEmpty(t *testing.T) {
	p, _ := openTemp(t)
	got := p.Load(context.Background())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDiskRoundTrip(t *testing.T) {
	p, base := openTemp(t)
	in := []entry.Entry{
		{ID: "b", Title: "B", Date: "1895-05-01", Place: "Lima", Media: []entry.MediaRef{}},
		{ID: "a", Title: "A", Date: "1900", Person: "Juan", Media: []entry.MediaRef{{Type: entry.MediaVideo, URL: "u", Caption: "c"}}},
	}
	require.NoError(t, p.Save(in))

	_, err := os.Stat(filepath.Join(base, SlotKey))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, SlotKey), p.Path())

	again, err := Open(testConfig{path: base}, nil)
	require.NoError(t, err)
	assert.Equal(t, in, again.Load(context.Background()))
}

func TestDiskLoadMalformedIsEmpty(t *testing.T) {
	for name, content := range map[string]string{
		"not json":   "{{{",
		"not array":  `{"id":"a"}`,
		"empty file": "",
	} {
		t.Run(name, func(t *testing.T) {
			base := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(base, SlotKey), []byte(content), 0o644))
			p, err := Open(testConfig{path: base}, nil)
			require.NoError(t, err)
			assert.Empty(t, p.Load(context.Background()))
		})
	}
}

func TestDiskLoadNormalizesRecords(t *testing.T) {
	base := t.TempDir()
	raw := `[{"title":"  X ","date":2000,"media":[{"url":""},{"url":"u","type":"gif"}]}]`
	require.NoError(t, os.WriteFile(filepath.Join(base, SlotKey), []byte(raw), 0o644))
	p, err := Open(testConfig{path: base}, nil)
	require.NoError(t, err)

	got := p.Load(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, "X", got[0].Title)
	assert.Equal(t, "2000", got[0].Date)
	assert.True(t, strings.HasPrefix(got[0].ID, "x-"))
	assert.Equal(t, []entry.MediaRef{{Type: entry.MediaImage, URL: "u"}}, got[0].Media)
}

func TestDiskSaveFailureIsPersistenceError(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	// A regular file where the base directory should be makes every write fail.
	p, err := Open(testConfig{path: blocker}, nil)
	require.NoError(t, err)
	err = p.Save([]entry.Entry{{ID: "a"}})
	require.Error(t, err)
	var pe *PersistenceError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "write", pe.Op)
}

func TestLoadCancelledContext(t *testing.T) {
	p, _ := openTemp(t)
	require.NoError(t, p.Save([]entry.Entry{{ID: "a"}}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Empty(t, p.Load(ctx))
}

func TestOpenRequiresBasePath(t *testing.T) {
	_, err := Open(testConfig{}, nil)
	assert.Error(t, err)
}

func TestMemorySlot(t *testing.T) {
	m := NewMemory([]byte(`[{"id":"seed","title":"Seed"}]`))
	got := m.Load(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, "seed", got[0].ID)

	require.NoError(t, m.Save(nil))
	assert.Equal(t, "[]", string(m.Raw()))
	assert.Equal(t, 1, m.Writes())

	m.FailWrites(true)
	err := m.Save([]entry.Entry{{ID: "x"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWriteDisabled))
	assert.Equal(t, "[]", string(m.Raw()))
	assert.Equal(t, 1, m.Writes())
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TIMELINE_CONFIG_PATH", dir)
	t.Setenv("TIMELINE_PATH", filepath.Join(dir, "data"))
	t.Setenv("TIMELINE_START_YEAR", "1500")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data"), cfg.BasePath())
	assert.Equal(t, 1500, cfg.StartYear())
	assert.Equal(t, "und", cfg.Locale())
	assert.Equal(t, "warn", cfg.LogLevel())
	assert.GreaterOrEqual(t, cfg.EndYear(), 2024)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TIMELINE_CONFIG_PATH", dir)
	yaml := "path: " + filepath.Join(dir, "slot") + "\nstart_year: 1900\nend_year: 1950\nlocale: es\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".timeline.yaml"), []byte(yaml), 0o644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "slot"), cfg.BasePath())
	assert.Equal(t, 1900, cfg.StartYear())
	assert.Equal(t, 1950, cfg.EndYear())
	assert.Equal(t, "es", cfg.Locale())
}

func TestLoadConfigRejectsInvertedYears(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TIMELINE_CONFIG_PATH", dir)
	t.Setenv("TIMELINE_START_YEAR", "2000")
	t.Setenv("TIMELINE_END_YEAR", "1999")
	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestDiskLoadSeesExternalRewrite(t *testing.T) {
	p, base := openTemp(t)
	require.NoError(t, p.Save([]entry.Entry{{ID: "a", Title: "A", Media: []entry.MediaRef{}}}))
	require.Len(t, p.Load(context.Background()), 1)

	external := `[{"id":"b","title":"B","media":[]},{"id":"c","title":"C","media":[]}]`
	require.NoError(t, os.WriteFile(filepath.Join(base, SlotKey), []byte(external), 0o644))

	got := p.Load(context.Background())
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
}
