package chat

import (
	"context"

	"batepapo/backend/internal/models"
)

// ParticipantStore persists the participants collection.
// InsertParticipant must fail with ErrDuplicate when the name is taken;
// lookups and mutations of an unknown name fail with ErrNoRecord.
type ParticipantStore interface {
	InsertParticipant(ctx context.Context, p *models.Participant) error
	FindParticipant(ctx context.Context, name string) (models.Participant, error)
	TouchParticipant(ctx context.Context, name string, lastStatus int64) error
	DeleteParticipant(ctx context.Context, name string) error
	// ListParticipants returns every participant in insertion order.
	ListParticipants(ctx context.Context) ([]models.Participant, error)
}

// MessageStore persists the messages collection. InsertMessage assigns the ID.
type MessageStore interface {
	InsertMessage(ctx context.Context, m *models.Message) error
	FindMessage(ctx context.Context, id string) (models.Message, error)
	UpdateMessage(ctx context.Context, id, to, text string, typ models.MessageType) error
	DeleteMessage(ctx context.Context, id string) error
	// ListMessages returns every message oldest first.
	ListMessages(ctx context.Context) ([]models.Message, error)
}

// Store is the document store holding both collections.
type Store interface {
	ParticipantStore
	MessageStore
}
