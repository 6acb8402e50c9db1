package show

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/store"
)

func newService(t *testing.T) *app.Service {
	t.Helper()
	seed := `[{"id":"a","title":"A","date":"1900"},{"id":"b","title":"B","date":"1800"},{"id":"c","title":"C","date":"2000"}]`
	svc := app.New(store.NewMemory([]byte(seed)), store.StaticConfig("", 1800, 2100), nil)
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func current(svc *app.Service) string {
	e, _ := svc.Current()
	return e.ID
}

func TestShowSteps(t *testing.T) {
	svc := newService(t)
	require.NoError(t, (&Show{ID: "a", Step: Next, Service: svc}).Do(context.Background()))
	assert.Equal(t, "c", current(svc))

	require.NoError(t, (&Show{ID: "c", Step: Next, Service: svc}).Do(context.Background()))
	assert.Equal(t, "b", current(svc))

	require.NoError(t, (&Show{ID: "b", Step: Prev, Service: svc}).Do(context.Background()))
	assert.Equal(t, "c", current(svc))
}

func TestShowFirstByDefault(t *testing.T) {
	svc := newService(t)
	require.NoError(t, (&Show{Service: svc}).Do(context.Background()))
	assert.Equal(t, "b", current(svc))
}

func TestShowUnknownID(t *testing.T) {
	svc := newService(t)
	assert.ErrorIs(t, (&Show{ID: "zzz", Service: svc}).Do(context.Background()), app.ErrNotFound)
}
