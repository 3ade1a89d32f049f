package database

import "agora/internal/models"

// RoomWithParticipants is a room annotated with the size of its
// participant set, as returned by the popular-rooms query.
type RoomWithParticipants struct {
	models.Room
	ParticipantCount int `json:"participant_count"`
}

type Repository interface {
	Ping() error

	CreateUser(user *models.User) error
	GetUser(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(user *models.User) error
	UsernameTaken(username string, excludeID uint) (bool, error)

	CreateTopic(topic *models.Topic) error
	ListTopics() ([]models.Topic, error)
	GetTopic(id uint) (*models.Topic, error)
	TopicAllowsUser(topicID, userID uint) (bool, error)

	CreateRoom(room *models.Room) error
	GetRoom(id uint) (*models.Room, error)
	ListRoomsByTopic(topicID uint) ([]models.Room, error)
	CountRooms() (int64, error)
	PopularRooms(limit int) ([]RoomWithParticipants, error)
	UpdateRoom(room *models.Room) error
	TouchRoom(id uint) error
	DeleteRoom(id uint) error
	AddViewer(roomID, userID uint) error
	AddParticipant(roomID, userID uint) error

	CreateMessage(msg *models.Message) error
	GetMessage(id uint) (*models.Message, error)
	CountTopLevelMessages(roomID uint) (int64, error)
	GetTopLevelMessages(roomID uint, offset, limit int) ([]models.Message, error)
	GetReplies(parentIDs []uint) ([]models.Message, error)

	HasPlusVote(messageID, userID uint) (bool, error)
	HasMinusVote(messageID, userID uint) (bool, error)
	AddPlusVote(messageID, userID uint) error
	RemovePlusVote(messageID, userID uint) error
	AddMinusVote(messageID, userID uint) error
	RemoveMinusVote(messageID, userID uint) error
}
