package database

import (
	"context"
	"errors"

	"batepapo/backend/internal/chat"
	"batepapo/backend/internal/models"

	"gorm.io/gorm"
)

func (db *DB) InsertMessage(ctx context.Context, m *models.Message) error {
	err := db.WithContext(ctx).Create(m).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return chat.ErrDuplicate
	}
	return err
}

func (db *DB) FindMessage(ctx context.Context, id string) (models.Message, error) {
	var m models.Message
	err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return m, chat.ErrNoRecord
	}
	return m, err
}

func (db *DB) UpdateMessage(ctx context.Context, id, to, text string, typ models.MessageType) error {
	res := db.WithContext(ctx).Model(&models.Message{}).
		Where("id = ?", id).
		Updates(map[string]any{"to": to, "text": text, "type": typ})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return chat.ErrNoRecord
	}
	return nil
}

func (db *DB) DeleteMessage(ctx context.Context, id string) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&models.Message{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return chat.ErrNoRecord
	}
	return nil
}

// ListMessages orders by the UUIDv7 primary key, which sorts by creation time.
func (db *DB) ListMessages(ctx context.Context) ([]models.Message, error) {
	var messages []models.Message
	if err := db.WithContext(ctx).Order("id").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
