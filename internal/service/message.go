package service

import (
	"strings"

	"agora/internal/database"
	"agora/internal/models"
)

const DefaultPageSize = 15

type MessagePage struct {
	Messages    []models.Message
	TotalPages  int
	CurrentPage int
}

type MessageService struct {
	repo     database.Repository
	pageSize int
}

func NewMessageService(repo database.Repository, pageSize int) *MessageService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &MessageService{repo: repo, pageSize: pageSize}
}

// Page slices the room's top-level messages, newest first. Requests
// outside [1, totalPages] clamp to page 1. The final page runs to the
// end so inserts between the count and the fetch are not cut off.
func (s *MessageService) Page(roomID uint, requested int) (*MessagePage, error) {
	total, err := s.repo.CountTopLevelMessages(roomID)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(s.pageSize) - 1) / int64(s.pageSize))
	if totalPages == 0 {
		return &MessagePage{Messages: []models.Message{}, TotalPages: 0, CurrentPage: 1}, nil
	}

	page := requested
	if page < 1 || page > totalPages {
		page = 1
	}

	offset := (page - 1) * s.pageSize
	limit := s.pageSize
	if page == totalPages {
		limit = 0
	}

	messages, err := s.repo.GetTopLevelMessages(roomID, offset, limit)
	if err != nil {
		return nil, err
	}

	return &MessagePage{
		Messages:    messages,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}

// Replies fetches the replies of the given top-level messages, grouped
// by parent id.
func (s *MessageService) Replies(messages []models.Message) (map[uint][]models.Message, error) {
	if len(messages) == 0 {
		return map[uint][]models.Message{}, nil
	}

	ids := make([]uint, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.ID)
	}

	replies, err := s.repo.GetReplies(ids)
	if err != nil {
		return nil, err
	}

	grouped := make(map[uint][]models.Message, len(ids))
	for _, r := range replies {
		if r.ParentID == nil {
			continue
		}
		grouped[*r.ParentID] = append(grouped[*r.ParentID], r)
	}
	return grouped, nil
}

// Post creates a message in a room, adds the author to the participant
// set and refreshes the room's updated time. A replyTo that does not
// name a top-level message in the same room is silently ignored and
// the message becomes top-level itself.
func (s *MessageService) Post(roomID, userID uint, content string, replyTo *uint) (*models.Message, error) {
	room, err := s.repo.GetRoom(roomID)
	if err != nil {
		return nil, err
	}
	if room.IsClosed {
		return nil, ErrRoomClosed
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	var parentID *uint
	if replyTo != nil {
		if parent, err := s.repo.GetMessage(*replyTo); err == nil &&
			parent.RoomID == roomID && parent.ParentID == nil {
			parentID = &parent.ID
		}
	}

	msg := &models.Message{
		Content:  content,
		UserID:   userID,
		RoomID:   roomID,
		ParentID: parentID,
	}
	if err := s.repo.CreateMessage(msg); err != nil {
		return nil, err
	}
	if err := s.repo.AddParticipant(roomID, userID); err != nil {
		return nil, err
	}
	if err := s.repo.TouchRoom(roomID); err != nil {
		return nil, err
	}
	return msg, nil
}
