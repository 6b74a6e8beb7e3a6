// Package memstore is an in-process document store. It keeps both
// collections in insertion order behind a single mutex.
package memstore

import (
	"context"
	"slices"
	"sync"

	"batepapo/backend/internal/chat"
	"batepapo/backend/internal/models"
)

// Store implements chat.Store in memory.
type Store struct {
	mu           sync.RWMutex
	nextID       uint
	participants []models.Participant
	messages     []models.Message
}

var _ chat.Store = (*Store)(nil)

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

func (s *Store) participantIndex(name string) int {
	return slices.IndexFunc(s.participants, func(p models.Participant) bool { return p.Name == name })
}

func (s *Store) messageIndex(id string) int {
	return slices.IndexFunc(s.messages, func(m models.Message) bool { return m.ID == id })
}

func (s *Store) InsertParticipant(ctx context.Context, p *models.Participant) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.participantIndex(p.Name) >= 0 {
		return chat.ErrDuplicate
	}
	s.nextID++
	p.ID = s.nextID
	s.participants = append(s.participants, *p)
	return nil
}

func (s *Store) FindParticipant(ctx context.Context, name string) (models.Participant, error) {
	if err := ctx.Err(); err != nil {
		return models.Participant{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.participantIndex(name)
	if i < 0 {
		return models.Participant{}, chat.ErrNoRecord
	}
	return s.participants[i], nil
}

func (s *Store) TouchParticipant(ctx context.Context, name string, lastStatus int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.participantIndex(name)
	if i < 0 {
		return chat.ErrNoRecord
	}
	s.participants[i].LastStatus = lastStatus
	return nil
}

func (s *Store) DeleteParticipant(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.participantIndex(name)
	if i < 0 {
		return chat.ErrNoRecord
	}
	s.participants = slices.Delete(s.participants, i, i+1)
	return nil
}

func (s *Store) ListParticipants(ctx context.Context) ([]models.Participant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.participants), nil
}

func (s *Store) InsertMessage(ctx context.Context, m *models.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.ID == "" {
		id, err := models.NewMessageID()
		if err != nil {
			return err
		}
		m.ID = id
	}
	if s.messageIndex(m.ID) >= 0 {
		return chat.ErrDuplicate
	}
	s.messages = append(s.messages, *m)
	return nil
}

func (s *Store) FindMessage(ctx context.Context, id string) (models.Message, error) {
	if err := ctx.Err(); err != nil {
		return models.Message{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.messageIndex(id)
	if i < 0 {
		return models.Message{}, chat.ErrNoRecord
	}
	return s.messages[i], nil
}

func (s *Store) UpdateMessage(ctx context.Context, id, to, text string, typ models.MessageType) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.messageIndex(id)
	if i < 0 {
		return chat.ErrNoRecord
	}
	s.messages[i].To = to
	s.messages[i].Text = text
	s.messages[i].Type = typ
	return nil
}

func (s *Store) DeleteMessage(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.messageIndex(id)
	if i < 0 {
		return chat.ErrNoRecord
	}
	s.messages = slices.Delete(s.messages, i, i+1)
	return nil
}

func (s *Store) ListMessages(ctx context.Context) ([]models.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.messages), nil
}
