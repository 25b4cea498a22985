package load_dataset

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomOccupancy/internal/domain"
	cacheDataset "github.com/m04kA/SMC-RoomOccupancy/internal/infra/cache/dataset"
	"github.com/m04kA/SMC-RoomOccupancy/internal/occupancy"
	"github.com/m04kA/SMC-RoomOccupancy/internal/records"
	"github.com/m04kA/SMC-RoomOccupancy/pkg/logger"
)

type fakeSource struct {
	doc   *records.Document
	err   error
	calls int
}

func (s *fakeSource) LoadDocument(context.Context) (*records.Document, error) {
	s.calls++
	return s.doc, s.err
}

type fakeCache struct {
	doc    *records.Document
	getErr error
	setErr error
	sets   int
	resets int
}

func (c *fakeCache) Get(context.Context) (*records.Document, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	if c.doc == nil {
		return nil, cacheDataset.ErrCacheMiss
	}
	return c.doc, nil
}

func (c *fakeCache) Set(_ context.Context, doc *records.Document) error {
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	c.doc = doc
	return nil
}

func (c *fakeCache) Invalidate(context.Context) error {
	c.resets++
	c.doc = nil
	return nil
}

type fakeRecorder struct {
	loads    map[string]int
	records  map[string]int
	rejected map[string]int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{loads: map[string]int{}, records: map[string]int{}, rejected: map[string]int{}}
}

func (r *fakeRecorder) ObserveDatasetLoad(source, status string) { r.loads[source+"/"+status]++ }
func (r *fakeRecorder) SetDatasetRecords(table string, count int) { r.records[table] = count }
func (r *fakeRecorder) AddRejectedRows(table string, count int)   { r.rejected[table] += count }

func sampleDocument() *records.Document {
	return &records.Document{
		Rooms: []records.RoomRow{
			{RoomID: records.Int(1), RoomNumber: records.Text("101"), RoomFloor: records.Int(1)},
			{RoomID: records.Int(2), RoomNumber: records.Text("201"), RoomFloor: records.Int(2)},
			{RoomID: records.Text("abc"), RoomNumber: records.Text("bad"), RoomFloor: records.Int(1)},
		},
		ClassInfo: []records.ClassInfoRow{
			{ScheduleID: records.Int(10), TeacherName: records.Text("Smith"), ClassName: records.Text("Math")},
		},
		Schedules: []records.ScheduleRow{
			{ScheduleID: records.Int(10), Day: records.Text("Tue"), Period: records.Text("2"), RoomID: records.Int(1)},
			{ScheduleID: records.Int(11), Day: records.Text("Mon"), Period: records.Text("1"), RoomID: records.Int(2)},
		},
	}
}

func TestUseCase_Execute_FromSource(t *testing.T) {
	source := &fakeSource{doc: sampleDocument()}
	cache := &fakeCache{}
	store := occupancy.NewStore()
	recorder := newFakeRecorder()

	uc := NewUseCase("postgres", source, cache, store, recorder, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.False(t, resp.FromCache)
	assert.Equal(t, 2, resp.Rooms)
	assert.Equal(t, 1, resp.ClassInfo)
	assert.Equal(t, 2, resp.Schedules)
	require.Len(t, resp.Rejected, 1)
	assert.ErrorIs(t, resp.Rejected[0], records.ErrMalformedRow)
	assert.Equal(t, []string{"Mon", "Tue"}, resp.Days)
	assert.Equal(t, []string{"1", "2"}, resp.Periods)
	assert.Equal(t, []int{1, 2}, resp.Floors)

	assert.Equal(t, 1, cache.sets, "fresh document is cached")
	assert.Equal(t, 1, recorder.loads["postgres/success"])
	assert.Equal(t, 2, recorder.records[domain.TableRoomInfo])
	assert.Equal(t, 1, recorder.rejected[domain.TableRoomInfo])

	snapshot, err := store.Snapshot()
	require.NoError(t, err)
	assert.Contains(t, snapshot.Floors(), 2)
}

func TestUseCase_Execute_CacheHit(t *testing.T) {
	source := &fakeSource{err: errors.New("must not be called")}
	cache := &fakeCache{doc: sampleDocument()}

	uc := NewUseCase("remote", source, cache, occupancy.NewStore(), nil, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.True(t, resp.FromCache)
	assert.Equal(t, 0, source.calls)
	assert.Equal(t, 0, cache.sets)
}

func TestUseCase_Execute_ForceBypassesCache(t *testing.T) {
	source := &fakeSource{doc: sampleDocument()}
	cache := &fakeCache{doc: &records.Document{}}

	uc := NewUseCase("postgres", source, cache, occupancy.NewStore(), nil, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Force: true})
	require.NoError(t, err)
	assert.False(t, resp.FromCache)
	assert.Equal(t, 1, source.calls)
	assert.Equal(t, 2, resp.Rooms)
	assert.Equal(t, 1, cache.resets, "forced reload drops the cached document")
	assert.Equal(t, 1, cache.sets)
	assert.Same(t, source.doc, cache.doc)
}

func TestUseCase_Execute_EmptyDatasetIsNotCached(t *testing.T) {
	source := &fakeSource{doc: &records.Document{}}
	cache := &fakeCache{}

	uc := NewUseCase("remote", source, cache, occupancy.NewStore(), nil, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Rooms)
	assert.Equal(t, 0, cache.sets)
	assert.Equal(t, 0, cache.resets)
}

func TestUseCase_Execute_CacheErrorsAreNotFatal(t *testing.T) {
	source := &fakeSource{doc: sampleDocument()}
	cache := &fakeCache{getErr: cacheDataset.ErrCache, setErr: cacheDataset.ErrCache}

	uc := NewUseCase("postgres", source, cache, occupancy.NewStore(), nil, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Equal(t, 1, source.calls)
	assert.Equal(t, 2, resp.Rooms)
}

func TestUseCase_Execute_SourceFailureKeepsSnapshot(t *testing.T) {
	store := occupancy.NewStore()
	previous := store.Rebuild(domain.Dataset{Rooms: []domain.Room{{ID: 9, Number: "900", Floor: 9}}})

	recorder := newFakeRecorder()
	source := &fakeSource{err: errors.New("connection refused")}
	uc := NewUseCase("postgres", source, nil, store, recorder, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.Equal(t, 1, recorder.loads["postgres/failure"])

	current, err := store.Snapshot()
	require.NoError(t, err)
	assert.Same(t, previous, current)
}

func TestSourceFunc(t *testing.T) {
	var src Source = SourceFunc(func(context.Context) (*records.Document, error) {
		return sampleDocument(), nil
	})

	doc, err := src.LoadDocument(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, doc.Len())
}
