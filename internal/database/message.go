package database

import (
	"agora/internal/models"
)

func (d *Database) CreateMessage(msg *models.Message) error {
	return d.db.Create(msg).Error
}

func (d *Database) GetMessage(id uint) (*models.Message, error) {
	var msg models.Message
	if err := d.db.First(&msg, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

func (d *Database) CountTopLevelMessages(roomID uint) (int64, error) {
	var count int64
	err := d.db.Model(&models.Message{}).
		Where("room_id = ? AND parent_id IS NULL", roomID).
		Count(&count).Error
	return count, err
}

// GetTopLevelMessages returns the room's parentless messages newest
// first. A limit <= 0 means no limit, the slice runs to the end.
func (d *Database) GetTopLevelMessages(roomID uint, offset, limit int) ([]models.Message, error) {
	if limit <= 0 {
		limit = -1
	}

	var messages []models.Message
	err := d.db.
		Where("room_id = ? AND parent_id IS NULL", roomID).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Preload("User").
		Preload("Pluses").
		Preload("Minuses").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (d *Database) GetReplies(parentIDs []uint) ([]models.Message, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}

	var replies []models.Message
	err := d.db.
		Where("parent_id IN ?", parentIDs).
		Order("created_at asc").
		Preload("User").
		Preload("Pluses").
		Preload("Minuses").
		Find(&replies).Error
	if err != nil {
		return nil, err
	}
	return replies, nil
}
