package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"batepapo/backend/internal/models"
)

const (
	joinText  = "entra na sala..."
	leaveText = "sai da sala..."
)

// DefaultInactivityThreshold is how long a participant may go without a
// heartbeat before the reaper evicts them.
const DefaultInactivityThreshold = 10 * time.Second

// Registry tracks which names are active participants and announces
// joins and evictions in the message log.
type Registry struct {
	participants ParticipantStore
	log          *Log
	clock        Clock
}

// NewRegistry creates a Registry. Announcements go through msgLog.
func NewRegistry(participants ParticipantStore, msgLog *Log, clock Clock) *Registry {
	return &Registry{participants: participants, log: msgLog, clock: clock}
}

// Join admits name as a participant and appends its join status message.
// The participant record is not rolled back when the announcement fails;
// in that case Join returns a store failure for a participant that exists.
func (r *Registry) Join(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	now := r.clock.now()
	p := models.Participant{Name: name, LastStatus: now.UnixMilli()}
	if err := r.participants.InsertParticipant(ctx, &p); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return fmt.Errorf("%w: participant %q already exists", ErrConflict, name)
		}
		return storeFailure(err)
	}

	if err := r.log.announce(ctx, name, joinText, now); err != nil {
		return fmt.Errorf("announce join of %q: %w", name, err)
	}
	return nil
}

// Exists reports whether name is an active participant.
func (r *Registry) Exists(ctx context.Context, name string) (bool, error) {
	return participantExists(ctx, r.participants, name)
}

// Heartbeat refreshes the participant's last-seen time.
func (r *Registry) Heartbeat(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: participant %q", ErrNotFound, name)
	}
	err := r.participants.TouchParticipant(ctx, name, r.clock.now().UnixMilli())
	if errors.Is(err, ErrNoRecord) {
		return fmt.Errorf("%w: participant %q", ErrNotFound, name)
	}
	if err != nil {
		return storeFailure(err)
	}
	return nil
}

// ListActive returns the current participants in the order they joined.
func (r *Registry) ListActive(ctx context.Context) ([]models.Participant, error) {
	participants, err := r.participants.ListParticipants(ctx)
	if err != nil {
		return nil, storeFailure(err)
	}
	return participants, nil
}

// EvictStale removes every participant whose last heartbeat is more than
// threshold before now and appends a leave status message for each.
// A failure for one participant is logged and does not stop the others;
// a participant left behind is picked up by the next call.
func (r *Registry) EvictStale(ctx context.Context, now time.Time, threshold time.Duration) ([]string, error) {
	participants, err := r.participants.ListParticipants(ctx)
	if err != nil {
		return nil, storeFailure(err)
	}

	var evicted []string
	for _, p := range participants {
		if !p.IsStale(now, threshold) {
			continue
		}
		if err := r.participants.DeleteParticipant(ctx, p.Name); err != nil {
			if !errors.Is(err, ErrNoRecord) {
				log.Printf("reaper: failed to evict %q: %v", p.Name, err)
			}
			continue
		}
		evicted = append(evicted, p.Name)

		if err := r.log.announce(ctx, p.Name, leaveText, now); err != nil {
			log.Printf("reaper: evicted %q but failed to announce it: %v", p.Name, err)
		}
	}
	return evicted, nil
}

func participantExists(ctx context.Context, participants ParticipantStore, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, nil
	}
	_, err := participants.FindParticipant(ctx, name)
	if errors.Is(err, ErrNoRecord) {
		return false, nil
	}
	if err != nil {
		return false, storeFailure(err)
	}
	return true, nil
}
