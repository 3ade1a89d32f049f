package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"agora/internal/database"
	"agora/internal/models"
)

func makeMessages(n int) []models.Message {
	msgs := make([]models.Message, n)
	for i := range msgs {
		msgs[i] = models.Message{
			ID:        uint(i + 1),
			Content:   "hello",
			RoomID:    1,
			UserID:    1,
			CreatedAt: time.Now().Add(-time.Duration(i) * time.Minute),
		}
	}
	return msgs
}

func TestMessageService_Page(t *testing.T) {
	const roomID uint = 1

	tcases := []struct {
		name          string
		total         int64
		requested     int
		wantOffset    int
		wantLimit     int
		wantFetched   int
		wantTotal     int
		wantCurrent   int
		expectNoFetch bool
	}{
		{
			name:        "second page of twenty messages holds the last five",
			total:       20,
			requested:   2,
			wantOffset:  15,
			wantLimit:   0, // final page runs to the end
			wantFetched: 5,
			wantTotal:   2,
			wantCurrent: 2,
		},
		{
			name:        "page beyond the last clamps to one",
			total:       20,
			requested:   999,
			wantOffset:  0,
			wantLimit:   15,
			wantFetched: 15,
			wantTotal:   2,
			wantCurrent: 1,
		},
		{
			name:        "zero page clamps to one",
			total:       20,
			requested:   0,
			wantOffset:  0,
			wantLimit:   15,
			wantFetched: 15,
			wantTotal:   2,
			wantCurrent: 1,
		},
		{
			name:        "negative page clamps to one",
			total:       3,
			requested:   -4,
			wantOffset:  0,
			wantLimit:   0,
			wantFetched: 3,
			wantTotal:   1,
			wantCurrent: 1,
		},
		{
			name:        "exact multiple still pages cleanly",
			total:       30,
			requested:   2,
			wantOffset:  15,
			wantLimit:   0,
			wantFetched: 15,
			wantTotal:   2,
			wantCurrent: 2,
		},
		{
			name:          "empty room yields an empty first page",
			total:         0,
			requested:     1,
			wantTotal:     0,
			wantCurrent:   1,
			expectNoFetch: true,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &database.MockRepository{}
			repo.On("CountTopLevelMessages", roomID).Return(tc.total, nil).Once()
			if !tc.expectNoFetch {
				repo.On("GetTopLevelMessages", roomID, tc.wantOffset, tc.wantLimit).
					Return(makeMessages(tc.wantFetched), nil).Once()
			}

			svc := NewMessageService(repo, DefaultPageSize)
			page, err := svc.Page(roomID, tc.requested)

			assert.NoError(t, err)
			assert.Len(t, page.Messages, tc.wantFetched)
			assert.Equal(t, tc.wantTotal, page.TotalPages)
			assert.Equal(t, tc.wantCurrent, page.CurrentPage)
			assert.LessOrEqual(t, len(page.Messages), DefaultPageSize)
			repo.AssertExpectations(t)
		})
	}
}

func TestMessageService_Post(t *testing.T) {
	const (
		roomID uint = 5
		userID uint = 2
	)
	hostID := uint(9)
	openRoom := &models.Room{ID: roomID, Name: "general", HostID: &hostID}

	t.Run("posting to an open room records the message", func(t *testing.T) {
		repo := &database.MockRepository{}
		repo.On("GetRoom", roomID).Return(openRoom, nil).Once()
		repo.On("CreateMessage", mockMessageMatcher(t, roomID, userID, nil)).Return(nil).Once()
		repo.On("AddParticipant", roomID, userID).Return(nil).Once()
		repo.On("TouchRoom", roomID).Return(nil).Once()

		svc := NewMessageService(repo, DefaultPageSize)
		msg, err := svc.Post(roomID, userID, "first post", nil)

		assert.NoError(t, err)
		assert.Equal(t, "first post", msg.Content)
		assert.Nil(t, msg.ParentID)
		repo.AssertExpectations(t)
	})

	t.Run("closed room rejects the post", func(t *testing.T) {
		closed := &models.Room{ID: roomID, IsClosed: true}
		repo := &database.MockRepository{}
		repo.On("GetRoom", roomID).Return(closed, nil).Once()

		svc := NewMessageService(repo, DefaultPageSize)
		_, err := svc.Post(roomID, userID, "too late", nil)

		assert.ErrorIs(t, err, ErrRoomClosed)
		repo.AssertNotCalled(t, "CreateMessage")
	})

	t.Run("whitespace content is a validation failure", func(t *testing.T) {
		repo := &database.MockRepository{}
		repo.On("GetRoom", roomID).Return(openRoom, nil).Once()

		svc := NewMessageService(repo, DefaultPageSize)
		_, err := svc.Post(roomID, userID, "   \t\n", nil)

		assert.ErrorIs(t, err, ErrEmptyContent)
		repo.AssertNotCalled(t, "CreateMessage")
	})

	t.Run("missing room propagates not found", func(t *testing.T) {
		repo := &database.MockRepository{}
		repo.On("GetRoom", roomID).Return(nil, gorm.ErrRecordNotFound).Once()

		svc := NewMessageService(repo, DefaultPageSize)
		_, err := svc.Post(roomID, userID, "hello", nil)

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestMessageService_Post_threading(t *testing.T) {
	const (
		roomID uint = 5
		userID uint = 2
	)
	openRoom := &models.Room{ID: roomID, Name: "general"}
	parentID := uint(40)
	grandparent := uint(11)

	tcases := []struct {
		name       string
		replyTo    uint
		parent     *models.Message
		parentErr  error
		wantParent *uint
	}{
		{
			name:       "reply to a top-level message in the same room nests",
			replyTo:    parentID,
			parent:     &models.Message{ID: parentID, RoomID: roomID},
			wantParent: &parentID,
		},
		{
			name:       "reply to a reply falls back to top-level",
			replyTo:    parentID,
			parent:     &models.Message{ID: parentID, RoomID: roomID, ParentID: &grandparent},
			wantParent: nil,
		},
		{
			name:       "reply to a message in another room falls back to top-level",
			replyTo:    parentID,
			parent:     &models.Message{ID: parentID, RoomID: roomID + 1},
			wantParent: nil,
		},
		{
			name:       "reply to a missing message falls back to top-level",
			replyTo:    parentID,
			parentErr:  gorm.ErrRecordNotFound,
			wantParent: nil,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &database.MockRepository{}
			repo.On("GetRoom", roomID).Return(openRoom, nil).Once()
			repo.On("GetMessage", tc.replyTo).Return(tc.parent, tc.parentErr).Once()
			repo.On("CreateMessage", mockMessageMatcher(t, roomID, userID, tc.wantParent)).Return(nil).Once()
			repo.On("AddParticipant", roomID, userID).Return(nil).Once()
			repo.On("TouchRoom", roomID).Return(nil).Once()

			svc := NewMessageService(repo, DefaultPageSize)
			msg, err := svc.Post(roomID, userID, "a reply", &tc.replyTo)

			assert.NoError(t, err)
			if tc.wantParent == nil {
				assert.Nil(t, msg.ParentID)
			} else {
				assert.NotNil(t, msg.ParentID)
				assert.Equal(t, *tc.wantParent, *msg.ParentID)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestMessageService_Replies(t *testing.T) {
	parentA, parentB := uint(1), uint(2)
	parents := []models.Message{{ID: parentA}, {ID: parentB}}
	replies := []models.Message{
		{ID: 10, ParentID: &parentA},
		{ID: 11, ParentID: &parentA},
		{ID: 12, ParentID: &parentB},
	}

	repo := &database.MockRepository{}
	repo.On("GetReplies", []uint{parentA, parentB}).Return(replies, nil).Once()

	svc := NewMessageService(repo, DefaultPageSize)
	grouped, err := svc.Replies(parents)

	assert.NoError(t, err)
	assert.Len(t, grouped[parentA], 2)
	assert.Len(t, grouped[parentB], 1)
	repo.AssertExpectations(t)
}

// mockMessageMatcher matches a CreateMessage argument against the
// expected room, author and parent.
func mockMessageMatcher(t *testing.T, roomID, userID uint, parentID *uint) interface{} {
	t.Helper()
	return mock.MatchedBy(func(msg *models.Message) bool {
		if msg.RoomID != roomID || msg.UserID != userID {
			return false
		}
		if parentID == nil {
			return msg.ParentID == nil
		}
		return msg.ParentID != nil && *msg.ParentID == *parentID
	})
}
