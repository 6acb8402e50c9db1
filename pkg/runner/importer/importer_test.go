package importer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/store"
	"tableflip.dev/timeline/pkg/transfer"
)

func newService(t *testing.T, seed string) *app.Service {
	t.Helper()
	svc := app.New(store.NewMemory([]byte(seed)), store.StaticConfig("", 1800, 2100), nil)
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func TestImportFileMerge(t *testing.T) {
	svc := newService(t, `[{"id":"a","title":"A"}]`)
	path := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"a","title":"A2"},{"id":"b","title":"B"}]`), 0o644))

	i := Import{File: path, Mode: transfer.Merge, Service: svc}
	require.NoError(t, i.Do(context.Background()))
	assert.Equal(t, 2, svc.Store.Len())
	got, _ := svc.Store.Get("a")
	assert.Equal(t, "A2", got.Title)
}

func TestImportStdinReplace(t *testing.T) {
	svc := newService(t, `[{"id":"a","title":"A"}]`)
	i := Import{File: "-", Mode: transfer.Replace, Stdin: strings.NewReader(`[{"title":"X"}]`), Service: svc}
	require.NoError(t, i.Do(context.Background()))
	all := svc.Store.All()
	require.Len(t, all, 1)
	assert.True(t, strings.HasPrefix(all[0].ID, "x-"))
}

func TestImportReplaceDeclined(t *testing.T) {
	svc := newService(t, `[{"id":"a","title":"A"}]`)
	asked := 0
	i := Import{
		File: "-", Mode: transfer.Replace, Stdin: strings.NewReader(`[]`), Service: svc,
		Confirm: func(existing int) (bool, error) {
			asked = existing
			return false, nil
		},
	}
	require.NoError(t, i.Do(context.Background()))
	assert.Equal(t, 1, asked)
	assert.Equal(t, 1, svc.Store.Len())
}

func TestImportBadDocument(t *testing.T) {
	svc := newService(t, `[{"id":"a","title":"A"}]`)
	i := Import{File: "-", Mode: transfer.Merge, Stdin: strings.NewReader(`{"id":"b"}`), Service: svc}
	err := i.Do(context.Background())
	assert.True(t, errors.Is(err, transfer.ErrFormat))
	assert.Equal(t, 1, svc.Store.Len())
}

func TestImportMissingFile(t *testing.T) {
	svc := newService(t, `[]`)
	i := Import{File: filepath.Join(t.TempDir(), "nope.json"), Service: svc}
	assert.Error(t, i.Do(context.Background()))
}
