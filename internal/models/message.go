package models

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageType is the kind of a chat event.
type MessageType string

const (
	MessageTypeStatus  MessageType = "status"
	MessageTypePublic  MessageType = "message"
	MessageTypePrivate MessageType = "private_message"
)

// BroadcastTarget is the recipient used by public and status messages.
const BroadcastTarget = "Todos"

// TimeLayout is the wall-clock format stored in Message.Time.
const TimeLayout = "15:04:05"

// UserAuthored reports whether a participant may post or edit a message of this kind.
func (t MessageType) UserAuthored() bool {
	return t == MessageTypePublic || t == MessageTypePrivate
}

// Message represents a chat event: a join/leave status, a public message or a private one.
// IDs are UUIDv7, so ordering by ID is insertion order.
type Message struct {
	ID   string      `gorm:"size:36;primaryKey" json:"_id"`
	From string      `gorm:"size:255;not null;index" json:"from"`
	To   string      `gorm:"size:255;not null;index" json:"to"`
	Text string      `gorm:"not null" json:"text"`
	Type MessageType `gorm:"size:50;not null;index" json:"type"`
	Time string      `gorm:"size:8;not null" json:"time"`
}

// NewMessageID returns a time-ordered identifier for a new message.
func NewMessageID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate message id: %w", err)
	}
	return id.String(), nil
}

// BeforeCreate assigns an ID when the caller left it empty.
func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID != "" {
		return nil
	}
	id, err := NewMessageID()
	if err != nil {
		return err
	}
	m.ID = id
	return nil
}
