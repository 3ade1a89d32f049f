package database

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"agora/internal/models"
)

func (d *Database) CreateRoom(room *models.Room) error {
	return d.db.Create(room).Error
}

func (d *Database) GetRoom(id uint) (*models.Room, error) {
	var room models.Room
	err := d.db.
		Preload("Host").
		Preload("Topic").
		Preload("Viewers").
		Preload("Participants").
		First(&room, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (d *Database) ListRoomsByTopic(topicID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := d.db.
		Preload("Host").
		Where("topic_id = ?", topicID).
		Order("updated_at desc").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (d *Database) CountRooms() (int64, error) {
	var count int64
	err := d.db.Model(&models.Room{}).Count(&count).Error
	return count, err
}

// PopularRooms returns the limit rooms with the largest participant sets,
// ties broken by room id ascending.
func (d *Database) PopularRooms(limit int) ([]RoomWithParticipants, error) {
	var rows []RoomWithParticipants
	err := d.db.Model(&models.Room{}).
		Select("rooms.*, count(rp.user_id) as participant_count").
		Joins("left join room_participants rp on rp.room_id = rooms.id").
		Group("rooms.id").
		Order("participant_count desc, rooms.id asc").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (d *Database) UpdateRoom(room *models.Room) error {
	return d.db.Omit(clause.Associations).Save(room).Error
}

// TouchRoom refreshes the room's updated timestamp.
func (d *Database) TouchRoom(id uint) error {
	return d.db.Model(&models.Room{}).
		Where("id = ?", id).
		Update("updated_at", time.Now()).Error
}

// DeleteRoom removes the room together with its messages, their vote
// rows and the room's membership sets, all in one transaction.
func (d *Database) DeleteRoom(id uint) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM message_pluses WHERE message_id IN (SELECT id FROM messages WHERE room_id = ?)", id,
		).Error; err != nil {
			return err
		}
		if err := tx.Exec(
			"DELETE FROM message_minuses WHERE message_id IN (SELECT id FROM messages WHERE room_id = ?)", id,
		).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Message{}, "room_id = ?", id).Error; err != nil {
			return err
		}

		var room models.Room
		if err := tx.First(&room, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&room).Association("Viewers").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&room).Association("Participants").Clear(); err != nil {
			return err
		}

		return tx.Delete(&room).Error
	})
}

// AddViewer is idempotent, the join table upsert does nothing on conflict.
func (d *Database) AddViewer(roomID, userID uint) error {
	room := models.Room{ID: roomID}
	return d.db.Model(&room).Association("Viewers").Append(&models.User{ID: userID})
}

func (d *Database) AddParticipant(roomID, userID uint) error {
	room := models.Room{ID: roomID}
	return d.db.Model(&room).Association("Participants").Append(&models.User{ID: userID})
}
