package database

import (
	"context"
	"errors"

	"batepapo/backend/internal/chat"
	"batepapo/backend/internal/models"

	"gorm.io/gorm"
)

var _ chat.Store = (*DB)(nil)

// The unique index on participants.name is what keeps two concurrent
// joins for one name from both succeeding.
func (db *DB) InsertParticipant(ctx context.Context, p *models.Participant) error {
	err := db.WithContext(ctx).Create(p).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return chat.ErrDuplicate
	}
	return err
}

func (db *DB) FindParticipant(ctx context.Context, name string) (models.Participant, error) {
	var p models.Participant
	err := db.WithContext(ctx).Where("name = ?", name).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return p, chat.ErrNoRecord
	}
	return p, err
}

func (db *DB) TouchParticipant(ctx context.Context, name string, lastStatus int64) error {
	res := db.WithContext(ctx).Model(&models.Participant{}).
		Where("name = ?", name).
		Update("last_status", lastStatus)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return chat.ErrNoRecord
	}
	return nil
}

func (db *DB) DeleteParticipant(ctx context.Context, name string) error {
	res := db.WithContext(ctx).Where("name = ?", name).Delete(&models.Participant{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return chat.ErrNoRecord
	}
	return nil
}

func (db *DB) ListParticipants(ctx context.Context) ([]models.Participant, error) {
	var participants []models.Participant
	if err := db.WithContext(ctx).Order("id").Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}
