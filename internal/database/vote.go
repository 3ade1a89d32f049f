package database

import (
	"agora/internal/models"
)

func (d *Database) HasPlusVote(messageID, userID uint) (bool, error) {
	var count int64
	err := d.db.Table("message_pluses").
		Where("message_id = ? AND user_id = ?", messageID, userID).
		Count(&count).Error
	return count > 0, err
}

func (d *Database) HasMinusVote(messageID, userID uint) (bool, error) {
	var count int64
	err := d.db.Table("message_minuses").
		Where("message_id = ? AND user_id = ?", messageID, userID).
		Count(&count).Error
	return count > 0, err
}

func (d *Database) AddPlusVote(messageID, userID uint) error {
	msg := models.Message{ID: messageID}
	return d.db.Model(&msg).Association("Pluses").Append(&models.User{ID: userID})
}

func (d *Database) RemovePlusVote(messageID, userID uint) error {
	msg := models.Message{ID: messageID}
	return d.db.Model(&msg).Association("Pluses").Delete(&models.User{ID: userID})
}

func (d *Database) AddMinusVote(messageID, userID uint) error {
	msg := models.Message{ID: messageID}
	return d.db.Model(&msg).Association("Minuses").Append(&models.User{ID: userID})
}

func (d *Database) RemoveMinusVote(messageID, userID uint) error {
	msg := models.Message{ID: messageID}
	return d.db.Model(&msg).Association("Minuses").Delete(&models.User{ID: userID})
}
