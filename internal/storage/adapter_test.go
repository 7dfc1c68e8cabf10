package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelbook/internal/database"
)

// exerciseAdapter checks the behaviour every backend must share.
func exerciseAdapter(t *testing.T, a Adapter) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := a.Load(ctx, BookingsKey)
	require.NoError(t, err)
	assert.False(t, ok, "fresh backend should report a miss")

	first := []byte(`{"state":{"bookings":[]},"version":0}`)
	require.NoError(t, a.Save(ctx, BookingsKey, first))

	got, ok, err := a.Load(ctx, BookingsKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, first, got)

	second := []byte(`{"state":{"bookings":[{"id":"b1"}]},"version":0}`)
	require.NoError(t, a.Save(ctx, BookingsKey, second))
	got, _, err = a.Load(ctx, BookingsKey)
	require.NoError(t, err)
	assert.Equal(t, second, got, "save must overwrite")

	_, ok, err = a.Load(ctx, ReviewsKey)
	require.NoError(t, err)
	assert.False(t, ok, "keys are independent namespaces")

	assert.ErrorIs(t, a.Save(ctx, "", first), ErrInvalidKey)
	_, _, err = a.Load(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestMemory(t *testing.T) {
	exerciseAdapter(t, NewMemory())
}

func TestMemory_CopiesValues(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	v := []byte("abc")
	require.NoError(t, m.Save(ctx, "k", v))
	v[0] = 'x'

	got, _, err := m.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)

	got[1] = 'y'
	again, _, _ := m.Load(ctx, "k")
	assert.Equal(t, []byte("abc"), again)
}

func TestFile(t *testing.T) {
	a, err := NewFile(filepath.Join(t.TempDir(), "state"))
	require.NoError(t, err)
	exerciseAdapter(t, a)
}

func TestFile_RejectsPathKeys(t *testing.T) {
	a, err := NewFile(t.TempDir())
	require.NoError(t, err)
	assert.ErrorIs(t, a.Save(context.Background(), "../escape", []byte("x")), ErrInvalidKey)
}

func TestSQL_SQLite(t *testing.T) {
	db, err := database.Connect(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)

	a, err := NewSQL(db)
	require.NoError(t, err)
	exerciseAdapter(t, a)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	a, closeFn, err := Open(ctx, Options{Driver: DriverMemory})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, a)
	assert.NoError(t, closeFn())

	a, closeFn, err = Open(ctx, Options{Driver: DriverFile, Dir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &File{}, a)
	assert.NoError(t, closeFn())

	a, closeFn, err = Open(ctx, Options{Driver: DriverSQL, DatabaseURL: filepath.Join(t.TempDir(), "open.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQL{}, a)
	assert.NoError(t, closeFn())

	_, closeFn, err = Open(ctx, Options{Driver: "etcd"})
	assert.Error(t, err)
	assert.NotNil(t, closeFn)
}
