package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.data[key] = string(value.([]byte))
	f.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func TestRedis(t *testing.T) {
	fake := newFakeRedis()
	exerciseAdapter(t, NewRedis(fake, "travelbook:"))

	_, ok := fake.data["travelbook:"+BookingsKey]
	assert.True(t, ok, "keys are namespaced by prefix")
	assert.Equal(t, time.Duration(0), fake.ttls["travelbook:"+BookingsKey], "values never expire")
}

func TestRedis_BackendErrors(t *testing.T) {
	fake := newFakeRedis()
	fake.getErr = errors.New("connection refused")
	fake.setErr = errors.New("READONLY")
	a := NewRedis(fake, "")

	_, _, err := a.Load(context.Background(), BookingsKey)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBackend)

	err = a.Save(context.Background(), BookingsKey, []byte("{}"))
	assert.ErrorIs(t, err, ErrBackend)
}
