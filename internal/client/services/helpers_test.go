package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophtodo/internal/client/models"
	"github.com/dmitrijs2005/gophtodo/internal/client/repositories/kv"
)

// countingRepo wraps the in-memory backend, counts calls per key and can be
// told to fail.
type countingRepo struct {
	inner *kv.MemoryRepository

	gets map[string]int
	sets map[string]int

	getErr error
	setErr error
}

func newCountingRepo() *countingRepo {
	return &countingRepo{inner: kv.NewMemoryRepository(), gets: map[string]int{}, sets: map[string]int{}}
}

func (r *countingRepo) Get(ctx context.Context, key string) (string, bool, error) {
	r.gets[key]++
	if r.getErr != nil {
		return "", false, r.getErr
	}
	return r.inner.Get(ctx, key)
}

func (r *countingRepo) Set(ctx context.Context, key, value string) error {
	r.sets[key]++
	if r.setErr != nil {
		return r.setErr
	}
	return r.inner.Set(ctx, key, value)
}

func (r *countingRepo) raw(key string) string {
	v, _, _ := r.inner.Get(context.Background(), key)
	return v
}

// fakeSource returns a fixed list and counts fetches.
type fakeSource struct {
	tasks []models.Task
	err   error

	calls     int
	lastLimit int
}

func (f *fakeSource) Fetch(_ context.Context, limit int) ([]models.Task, error) {
	f.calls++
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Task(nil), f.tasks...), nil
}

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func fiveDefaults() []models.Task {
	return []models.Task{
		{ID: "1", Title: "delectus aut autem"},
		{ID: "2", Title: "quis ut nam facilis et officia qui"},
		{ID: "3", Title: "fugiat veniam minus"},
		{ID: "4", Title: "et porro tempora", Completed: true},
		{ID: "5", Title: "laboriosam mollitia et enim quasi adipisci quia provident illum"},
	}
}
