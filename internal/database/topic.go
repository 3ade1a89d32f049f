package database

import (
	"agora/internal/models"
)

func (d *Database) CreateTopic(topic *models.Topic) error {
	return d.db.Create(topic).Error
}

func (d *Database) ListTopics() ([]models.Topic, error) {
	var topics []models.Topic
	if err := d.db.Order("name asc").Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func (d *Database) GetTopic(id uint) (*models.Topic, error) {
	topic := models.Topic{}
	if err := d.db.First(&topic, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

func (d *Database) TopicAllowsUser(topicID, userID uint) (bool, error) {
	var count int64
	err := d.db.Table("topic_allowed_users").
		Where("topic_id = ? AND user_id = ?", topicID, userID).
		Count(&count).Error
	return count > 0, err
}
