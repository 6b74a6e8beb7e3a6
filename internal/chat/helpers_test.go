package chat_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"batepapo/backend/internal/chat"
	"batepapo/backend/internal/database/memstore"
	"batepapo/backend/internal/models"
)

var errBoom = errors.New("boom")

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 23, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// flakyStore wraps the in-memory store and fails selected operations.
type flakyStore struct {
	*memstore.Store
	failInsertMessage func(m *models.Message) bool
	failDelete        func(name string) bool
	failList          bool
}

func (s *flakyStore) InsertMessage(ctx context.Context, m *models.Message) error {
	if s.failInsertMessage != nil && s.failInsertMessage(m) {
		return errBoom
	}
	return s.Store.InsertMessage(ctx, m)
}

func (s *flakyStore) DeleteParticipant(ctx context.Context, name string) error {
	if s.failDelete != nil && s.failDelete(name) {
		return errBoom
	}
	return s.Store.DeleteParticipant(ctx, name)
}

func (s *flakyStore) ListParticipants(ctx context.Context) ([]models.Participant, error) {
	if s.failList {
		return nil, errBoom
	}
	return s.Store.ListParticipants(ctx)
}

type fixture struct {
	store    *flakyStore
	clock    *fakeClock
	log      *chat.Log
	registry *chat.Registry
}

func newFixture() *fixture {
	store := &flakyStore{Store: memstore.New()}
	clock := newFakeClock()
	msgLog := chat.NewLog(store, store, clock.Now)
	return &fixture{
		store:    store,
		clock:    clock,
		log:      msgLog,
		registry: chat.NewRegistry(store, msgLog, clock.Now),
	}
}

func (f *fixture) messages() []models.Message {
	list, _ := f.store.ListMessages(context.Background())
	return list
}

func (f *fixture) names() []string {
	list, _ := f.store.ListParticipants(context.Background())
	var names []string
	for _, p := range list {
		names = append(names, p.Name)
	}
	return names
}
