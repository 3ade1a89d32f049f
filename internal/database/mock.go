package database

import (
	"github.com/stretchr/testify/mock"

	"agora/internal/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Ping() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockRepository) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockRepository) GetUser(id uint) (*models.User, error) {
	args := m.Called(id)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) UpdateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockRepository) UsernameTaken(username string, excludeID uint) (bool, error) {
	args := m.Called(username, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) CreateTopic(topic *models.Topic) error {
	args := m.Called(topic)
	return args.Error(0)
}

func (m *MockRepository) ListTopics() ([]models.Topic, error) {
	args := m.Called()
	if topics, ok := args.Get(0).([]models.Topic); ok {
		return topics, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) GetTopic(id uint) (*models.Topic, error) {
	args := m.Called(id)
	if topic, ok := args.Get(0).(*models.Topic); ok {
		return topic, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) TopicAllowsUser(topicID, userID uint) (bool, error) {
	args := m.Called(topicID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) CreateRoom(room *models.Room) error {
	args := m.Called(room)
	return args.Error(0)
}

func (m *MockRepository) GetRoom(id uint) (*models.Room, error) {
	args := m.Called(id)
	if room, ok := args.Get(0).(*models.Room); ok {
		return room, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) ListRoomsByTopic(topicID uint) ([]models.Room, error) {
	args := m.Called(topicID)
	if rooms, ok := args.Get(0).([]models.Room); ok {
		return rooms, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) CountRooms() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) PopularRooms(limit int) ([]RoomWithParticipants, error) {
	args := m.Called(limit)
	if rooms, ok := args.Get(0).([]RoomWithParticipants); ok {
		return rooms, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) UpdateRoom(room *models.Room) error {
	args := m.Called(room)
	return args.Error(0)
}

func (m *MockRepository) TouchRoom(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRepository) DeleteRoom(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRepository) AddViewer(roomID, userID uint) error {
	args := m.Called(roomID, userID)
	return args.Error(0)
}

func (m *MockRepository) AddParticipant(roomID, userID uint) error {
	args := m.Called(roomID, userID)
	return args.Error(0)
}

func (m *MockRepository) CreateMessage(msg *models.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockRepository) GetMessage(id uint) (*models.Message, error) {
	args := m.Called(id)
	if msg, ok := args.Get(0).(*models.Message); ok {
		return msg, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) CountTopLevelMessages(roomID uint) (int64, error) {
	args := m.Called(roomID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) GetTopLevelMessages(roomID uint, offset, limit int) ([]models.Message, error) {
	args := m.Called(roomID, offset, limit)
	if messages, ok := args.Get(0).([]models.Message); ok {
		return messages, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) GetReplies(parentIDs []uint) ([]models.Message, error) {
	args := m.Called(parentIDs)
	if replies, ok := args.Get(0).([]models.Message); ok {
		return replies, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) HasPlusVote(messageID, userID uint) (bool, error) {
	args := m.Called(messageID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) HasMinusVote(messageID, userID uint) (bool, error) {
	args := m.Called(messageID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) AddPlusVote(messageID, userID uint) error {
	args := m.Called(messageID, userID)
	return args.Error(0)
}

func (m *MockRepository) RemovePlusVote(messageID, userID uint) error {
	args := m.Called(messageID, userID)
	return args.Error(0)
}

func (m *MockRepository) AddMinusVote(messageID, userID uint) error {
	args := m.Called(messageID, userID)
	return args.Error(0)
}

func (m *MockRepository) RemoveMinusVote(messageID, userID uint) error {
	args := m.Called(messageID, userID)
	return args.Error(0)
}
