package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"batepapo/backend/internal/models"
)

// Log is the append-only chat history. It decides which messages each
// viewer may read and who may edit or delete a message.
type Log struct {
	messages     MessageStore
	participants ParticipantStore
	clock        Clock
}

// NewLog creates a Log. participants is consulted to check that a sender is active.
func NewLog(messages MessageStore, participants ParticipantStore, clock Clock) *Log {
	return &Log{messages: messages, participants: participants, clock: clock}
}

// Content is the user-editable part of a message.
type Content struct {
	To   string
	Text string
	Type models.MessageType
}

func (c Content) normalize() (Content, error) {
	c.To = strings.TrimSpace(c.To)
	c.Text = strings.TrimSpace(c.Text)
	c.Type = models.MessageType(strings.TrimSpace(string(c.Type)))

	if c.To == "" {
		return c, fmt.Errorf("%w: to is required", ErrInvalidInput)
	}
	if c.Text == "" {
		return c, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}
	if !c.Type.UserAuthored() {
		return c, fmt.Errorf("%w: type must be %q or %q, got %q",
			ErrInvalidInput, models.MessageTypePublic, models.MessageTypePrivate, c.Type)
	}
	return c, nil
}

// Post appends a message authored by from, who must be an active participant.
func (l *Log) Post(ctx context.Context, from string, content Content) (models.Message, error) {
	content, err := content.normalize()
	if err != nil {
		return models.Message{}, err
	}

	from = strings.TrimSpace(from)
	ok, err := participantExists(ctx, l.participants, from)
	if err != nil {
		return models.Message{}, err
	}
	if !ok {
		return models.Message{}, fmt.Errorf("%w: %q", ErrUnauthenticated, from)
	}

	msg := models.Message{
		From: from,
		To:   content.To,
		Text: content.Text,
		Type: content.Type,
		Time: l.clock.now().Format(models.TimeLayout),
	}
	if err := l.messages.InsertMessage(ctx, &msg); err != nil {
		return models.Message{}, storeFailure(err)
	}
	return msg, nil
}

// ListVisibleTo returns the messages viewer may read, oldest first.
// A positive limit keeps only the most recent limit of them.
func (l *Log) ListVisibleTo(ctx context.Context, viewer string, limit int) ([]models.Message, error) {
	all, err := l.messages.ListMessages(ctx)
	if err != nil {
		return nil, storeFailure(err)
	}

	viewer = strings.TrimSpace(viewer)
	visible := make([]models.Message, 0, len(all))
	for _, m := range all {
		if Visible(m, viewer) {
			visible = append(visible, m)
		}
	}
	return lastN(visible, limit), nil
}

// Edit replaces the recipient, text and type of message id. Only its author may edit it.
func (l *Log) Edit(ctx context.Context, id, editor string, content Content) error {
	content, err := content.normalize()
	if err != nil {
		return err
	}

	if err := l.authorize(ctx, id, editor); err != nil {
		return err
	}

	err = l.messages.UpdateMessage(ctx, id, content.To, content.Text, content.Type)
	if errors.Is(err, ErrNoRecord) {
		return fmt.Errorf("%w: message %q", ErrNotFound, id)
	}
	if err != nil {
		return storeFailure(err)
	}
	return nil
}

// Delete removes message id. Only its author may delete it.
func (l *Log) Delete(ctx context.Context, id, requester string) error {
	if err := l.authorize(ctx, id, requester); err != nil {
		return err
	}

	err := l.messages.DeleteMessage(ctx, id)
	if errors.Is(err, ErrNoRecord) {
		return fmt.Errorf("%w: message %q", ErrNotFound, id)
	}
	if err != nil {
		return storeFailure(err)
	}
	return nil
}

// authorize checks that message id exists and was sent by actor.
func (l *Log) authorize(ctx context.Context, id, actor string) error {
	msg, err := l.messages.FindMessage(ctx, id)
	if errors.Is(err, ErrNoRecord) {
		return fmt.Errorf("%w: message %q", ErrNotFound, id)
	}
	if err != nil {
		return storeFailure(err)
	}
	if msg.From != strings.TrimSpace(actor) {
		return fmt.Errorf("%w: %q is not the author of message %q", ErrForbidden, actor, id)
	}
	return nil
}

// announce appends a system status message about name.
func (l *Log) announce(ctx context.Context, name, text string, at time.Time) error {
	msg := models.Message{
		From: name,
		To:   models.BroadcastTarget,
		Text: text,
		Type: models.MessageTypeStatus,
		Time: at.Format(models.TimeLayout),
	}
	if err := l.messages.InsertMessage(ctx, &msg); err != nil {
		return storeFailure(err)
	}
	return nil
}
