package remove

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/entry"
	"tableflip.dev/timeline/pkg/store"
)

func service(t *testing.T) *app.Service {
	t.Helper()
	seed, err := json.Marshal([]entry.Entry{
		{ID: "a", Title: "Alpha", Date: "1900", Media: []entry.MediaRef{}},
		{ID: "b", Title: "Beta", Date: "1901", Media: []entry.MediaRef{}},
	})
	require.NoError(t, err)
	svc := app.New(store.NewMemory(seed), store.StaticConfig("", 1800, 2100), nil)
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func TestRemoveConfirmed(t *testing.T) {
	svc := service(t)
	var asked string
	r := &Remove{ID: "a", Service: svc, Confirm: func(title string) (bool, error) {
		asked = title
		return true, nil
	}}
	require.NoError(t, r.Do(context.Background()))
	assert.Equal(t, "Alpha", asked)
	assert.False(t, svc.Store.Contains("a"))
}

func TestRemoveDeclined(t *testing.T) {
	svc := service(t)
	r := &Remove{ID: "a", Service: svc, Confirm: func(string) (bool, error) { return false, nil }}
	require.NoError(t, r.Do(context.Background()))
	assert.True(t, svc.Store.Contains("a"))
}

func TestRemovePromptError(t *testing.T) {
	svc := service(t)
	boom := errors.New("boom")
	r := &Remove{ID: "a", Service: svc, Confirm: func(string) (bool, error) { return false, boom }}
	assert.ErrorIs(t, r.Do(context.Background()), boom)
	assert.Equal(t, 2, svc.Store.Len())
}

func TestRemoveUnknown(t *testing.T) {
	r := &Remove{ID: "zzz", Service: service(t)}
	assert.ErrorIs(t, r.Do(context.Background()), app.ErrNotFound)
}
