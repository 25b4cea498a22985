package dataset

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomOccupancy/internal/records"
)

type memoryKV struct {
	values map[string]string
	ttls   map[string]time.Duration
	err    error
}

func newMemoryKV() *memoryKV {
	return &memoryKV{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memoryKV) Get(_ context.Context, key string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	v, ok := m.values[key]
	if !ok {
		return "", ErrCacheMiss
	}
	return v, nil
}

func (m *memoryKV) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	if m.err != nil {
		return m.err
	}
	m.values[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *memoryKV) Del(_ context.Context, key string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.values, key)
	return nil
}

func TestCache_RoundTrip(t *testing.T) {
	kv := newMemoryKV()
	cache := NewCache(kv, "occupancy:dataset", time.Minute)
	ctx := context.Background()

	_, err := cache.Get(ctx)
	assert.ErrorIs(t, err, ErrCacheMiss)

	doc := &records.Document{
		Rooms: []records.RoomRow{{
			RoomID:     records.Int(1),
			RoomNumber: records.Text("101"),
			RoomFloor:  records.Int(1),
		}},
		Schedules: []records.ScheduleRow{{
			ScheduleID: records.Int(5),
			Day:        records.Text("Mon"),
			Period:     records.Text("1"),
			RoomID:     records.Int(1),
		}},
	}
	require.NoError(t, cache.Set(ctx, doc))
	assert.Equal(t, time.Minute, kv.ttls["occupancy:dataset"])

	got, err := cache.Get(ctx)
	require.NoError(t, err)
	require.Len(t, got.Rooms, 1)
	assert.Equal(t, "101", got.Rooms[0].RoomNumber.String())
	assert.False(t, got.Rooms[0].RoomType.Valid, "null survives the cache")
	assert.Equal(t, "Mon", got.Schedules[0].Day.String())

	require.NoError(t, cache.Invalidate(ctx))
	_, err = cache.Get(ctx)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCache_Errors(t *testing.T) {
	ctx := context.Background()

	kv := newMemoryKV()
	kv.values["k"] = "{not json"
	_, err := NewCache(kv, "k", 0).Get(ctx)
	assert.ErrorIs(t, err, ErrDecode)

	broken := newMemoryKV()
	broken.err = errors.New("dial tcp: connection refused")
	cache := NewCache(broken, "k", 0)

	_, err = cache.Get(ctx)
	assert.ErrorIs(t, err, ErrCache)
	assert.ErrorIs(t, cache.Set(ctx, &records.Document{}), ErrCache)
	assert.ErrorIs(t, cache.Invalidate(ctx), ErrCache)
}

func TestRedisKV_Unreachable(t *testing.T) {
	client := NewRedisClient("127.0.0.1:1", "", 0)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := NewRedisKV(client).Get(ctx, "missing")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}
