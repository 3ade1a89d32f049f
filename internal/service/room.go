package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"agora/internal/database"
	"agora/internal/models"
)

const (
	popularLimit = 5

	// The ranking is considered meaningless below this many rooms.
	popularMinRooms = 6

	popularCacheKey = "popular_rooms"
	popularCacheTTL = 30 * time.Second
)

type RoomService struct {
	repo  database.Repository
	redis *redis.Client
}

// NewRoomService builds a RoomService. rdb may be nil, in which case
// the popular-rooms cache is skipped.
func NewRoomService(repo database.Repository, rdb *redis.Client) *RoomService {
	return &RoomService{repo: repo, redis: rdb}
}

// Popular returns the five rooms with the largest participant sets,
// or an empty list while fewer than six rooms exist. Ties are broken
// by room id ascending.
func (s *RoomService) Popular(ctx context.Context) ([]database.RoomWithParticipants, error) {
	if s.redis != nil {
		if data, err := s.redis.Get(ctx, popularCacheKey).Bytes(); err == nil {
			var cached []database.RoomWithParticipants
			if json.Unmarshal(data, &cached) == nil {
				return cached, nil
			}
		}
	}

	total, err := s.repo.CountRooms()
	if err != nil {
		return nil, err
	}

	rooms := []database.RoomWithParticipants{}
	if total >= popularMinRooms {
		rooms, err = s.repo.PopularRooms(popularLimit)
		if err != nil {
			return nil, err
		}
	}

	if s.redis != nil {
		if data, err := json.Marshal(rooms); err == nil {
			s.redis.Set(ctx, popularCacheKey, data, popularCacheTTL)
		}
	}
	return rooms, nil
}

// Create opens a room under a topic with the caller as host. Restricted
// topics only accept whitelisted hosts.
func (s *RoomService) Create(topicID, hostID uint, name, description string) (*models.Room, error) {
	topic, err := s.repo.GetTopic(topicID)
	if err != nil {
		return nil, err
	}

	if topic.IsRestricted {
		allowed, err := s.repo.TopicAllowsUser(topicID, hostID)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, ErrTopicRestricted
		}
	}

	room := &models.Room{
		Name:        name,
		Description: description,
		HostID:      &hostID,
		TopicID:     &topic.ID,
	}
	if err := s.repo.CreateRoom(room); err != nil {
		return nil, err
	}
	return room, nil
}

// RecordVisit adds the user to the room's viewer set. Set semantics,
// repeat visits are no-ops.
func (s *RoomService) RecordVisit(roomID, userID uint) error {
	return s.repo.AddViewer(roomID, userID)
}

// ToggleClosed flips the room's closed flag. Callers other than the
// host change nothing and still get the room back without error.
func (s *RoomService) ToggleClosed(roomID, userID uint) (*models.Room, error) {
	room, err := s.repo.GetRoom(roomID)
	if err != nil {
		return nil, err
	}

	if room.HostID == nil || *room.HostID != userID {
		return room, nil
	}

	room.IsClosed = !room.IsClosed
	if room.IsClosed {
		now := time.Now()
		room.ClosedAt = &now
	} else {
		room.ClosedAt = nil
	}

	if err := s.repo.UpdateRoom(room); err != nil {
		return nil, err
	}
	return room, nil
}

// Delete removes the room and everything in it. Callers other than the
// host change nothing and get no error.
func (s *RoomService) Delete(roomID, userID uint) error {
	room, err := s.repo.GetRoom(roomID)
	if err != nil {
		return err
	}

	if room.HostID == nil || *room.HostID != userID {
		return nil
	}
	return s.repo.DeleteRoom(roomID)
}
