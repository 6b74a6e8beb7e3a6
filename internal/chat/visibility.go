package chat

import "batepapo/backend/internal/models"

// Visible reports whether viewer may read m. Status and public messages
// are broadcast; a private message is visible to its sender and recipient.
func Visible(m models.Message, viewer string) bool {
	switch m.Type {
	case models.MessageTypeStatus, models.MessageTypePublic:
		return true
	}
	return m.To == viewer || m.From == viewer
}

func lastN[T any](items []T, n int) []T {
	if n <= 0 || n >= len(items) {
		return items
	}
	return items[len(items)-n:]
}
