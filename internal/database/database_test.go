package database

import (
	"context"
	"errors"
	"testing"

	"batepapo/backend/internal/chat"
	"batepapo/backend/internal/models"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Connect(DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestConnectRejectsUnknownDriver(t *testing.T) {
	if _, err := Connect("mongo", "mongodb://localhost"); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestConnectPostgresRequiresDSN(t *testing.T) {
	if _, err := Connect(DriverPostgres, ""); err == nil {
		t.Fatal("expected error for empty postgres DSN")
	}
}

func TestParticipantLifecycle(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	for _, name := range []string{"Ana", "Bob"} {
		if err := db.InsertParticipant(ctx, &models.Participant{Name: name, LastStatus: 1000}); err != nil {
			t.Fatalf("insert %s: %v", name, err)
		}
	}

	err := db.InsertParticipant(ctx, &models.Participant{Name: "Ana", LastStatus: 2000})
	if !errors.Is(err, chat.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	if err := db.TouchParticipant(ctx, "Ana", 5000); err != nil {
		t.Fatalf("touch: %v", err)
	}
	p, err := db.FindParticipant(ctx, "Ana")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if p.LastStatus != 5000 {
		t.Errorf("expected lastStatus 5000, got %d", p.LastStatus)
	}

	if err := db.TouchParticipant(ctx, "Nobody", 5000); !errors.Is(err, chat.ErrNoRecord) {
		t.Errorf("expected ErrNoRecord touching unknown name, got %v", err)
	}
	if _, err := db.FindParticipant(ctx, "Nobody"); !errors.Is(err, chat.ErrNoRecord) {
		t.Errorf("expected ErrNoRecord finding unknown name, got %v", err)
	}

	list, err := db.ListParticipants(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Name != "Ana" || list[1].Name != "Bob" {
		t.Fatalf("expected [Ana Bob] in join order, got %+v", list)
	}

	if err := db.DeleteParticipant(ctx, "Ana"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := db.DeleteParticipant(ctx, "Ana"); !errors.Is(err, chat.ErrNoRecord) {
		t.Errorf("expected ErrNoRecord on second delete, got %v", err)
	}
	if err := db.InsertParticipant(ctx, &models.Participant{Name: "Ana", LastStatus: 6000}); err != nil {
		t.Errorf("rejoin after delete: %v", err)
	}
}

func TestMessageLifecycle(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	texts := []string{"first", "second", "third"}
	var ids []string
	for _, text := range texts {
		m := models.Message{From: "Ana", To: models.BroadcastTarget, Text: text, Type: models.MessageTypePublic, Time: "10:00:00"}
		if err := db.InsertMessage(ctx, &m); err != nil {
			t.Fatalf("insert: %v", err)
		}
		if m.ID == "" {
			t.Fatal("expected store to assign an id")
		}
		ids = append(ids, m.ID)
	}

	list, err := db.ListMessages(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(list))
	}
	for i, m := range list {
		if m.Text != texts[i] {
			t.Errorf("position %d: expected %q, got %q", i, texts[i], m.Text)
		}
	}

	if err := db.UpdateMessage(ctx, ids[0], "Bob", "edited", models.MessageTypePrivate); err != nil {
		t.Fatalf("update: %v", err)
	}
	m, err := db.FindMessage(ctx, ids[0])
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if m.To != "Bob" || m.Text != "edited" || m.Type != models.MessageTypePrivate || m.From != "Ana" {
		t.Errorf("unexpected message after update: %+v", m)
	}

	if err := db.UpdateMessage(ctx, "missing", "Bob", "x", models.MessageTypePublic); !errors.Is(err, chat.ErrNoRecord) {
		t.Errorf("expected ErrNoRecord updating missing message, got %v", err)
	}
	if err := db.DeleteMessage(ctx, ids[1]); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := db.FindMessage(ctx, ids[1]); !errors.Is(err, chat.ErrNoRecord) {
		t.Errorf("expected ErrNoRecord after delete, got %v", err)
	}
	if err := db.DeleteMessage(ctx, ids[1]); !errors.Is(err, chat.ErrNoRecord) {
		t.Errorf("expected ErrNoRecord on second delete, got %v", err)
	}
}
