package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"agora/internal/database"
	"agora/internal/handlers/dto"
	"agora/internal/metrics"
	"agora/internal/middleware"
	"agora/internal/models"
	"agora/internal/service"
	"agora/internal/websocket"
)

type RoomHandler struct {
	repo     database.Repository
	rooms    *service.RoomService
	messages *service.MessageService
	hub      *websocket.Hub
}

func NewRoomHandler(repo database.Repository, rooms *service.RoomService, messages *service.MessageService, hub *websocket.Hub) *RoomHandler {
	return &RoomHandler{repo: repo, rooms: rooms, messages: messages, hub: hub}
}

// GetRoom returns the room together with one page of its top-level
// messages and their replies. Authenticated visitors are added to the
// viewer set.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	roomID, ok := paramID(c, "id")
	if !ok {
		return
	}

	room, err := h.repo.GetRoom(roomID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	if userID, ok := middleware.UserID(c); ok {
		if err := h.rooms.RecordVisit(roomID, userID); err != nil {
			log.Error().Err(err).Uint("room", roomID).Msg("record visit")
		}
	}

	// Anything that does not parse as a page number clamps to page 1
	// inside the pagination logic.
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	msgPage, err := h.messages.Page(roomID, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load messages"})
		return
	}

	replies, err := h.messages.Replies(msgPage.Messages)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load replies"})
		return
	}

	messageList := make([]gin.H, len(msgPage.Messages))
	for i := range msgPage.Messages {
		msg := &msgPage.Messages[i]
		entry := formatMessageResponse(msg)

		children := replies[msg.ID]
		replyList := make([]gin.H, len(children))
		for j := range children {
			replyList[j] = formatMessageResponse(&children[j])
		}
		entry["replies"] = replyList

		messageList[i] = entry
	}

	popular, err := h.rooms.Popular(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rank rooms"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"room":     formatRoomResponse(room),
		"messages": messageList,
		"pagination": gin.H{
			"current_page": msgPage.CurrentPage,
			"total_pages":  msgPage.TotalPages,
		},
		"popular_rooms": formatPopularRooms(popular),
	})
}

// PostMessage adds a message (optionally a reply) to the room.
func (h *RoomHandler) PostMessage(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	roomID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.messages.Post(roomID, userID, req.Content, req.ReplyTo)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	case errors.Is(err, service.ErrRoomClosed):
		c.JSON(http.StatusForbidden, gin.H{"error": "room is closed"})
		return
	case errors.Is(err, service.ErrEmptyContent):
		c.JSON(http.StatusBadRequest, gin.H{"error": "message content is empty"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to post message"})
		return
	}

	metrics.MessagesPosted.Inc()
	h.broadcast(websocket.EventMessage, roomID, gin.H{
		"message_id": msg.ID,
		"user_id":    msg.UserID,
		"parent_id":  msg.ParentID,
		"content":    msg.Content,
		"created_at": msg.CreatedAt,
	})

	c.JSON(http.StatusCreated, formatMessageResponse(msg))
}

// ToggleStatus closes or reopens the room. Non-host calls change
// nothing but still answer 200.
func (h *RoomHandler) ToggleStatus(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	roomID, ok := paramID(c, "id")
	if !ok {
		return
	}

	room, err := h.rooms.ToggleClosed(roomID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	if room.HostID != nil && *room.HostID == userID {
		h.broadcast(websocket.EventRoomStatus, roomID, gin.H{"is_closed": room.IsClosed})
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        room.ID,
		"is_closed": room.IsClosed,
		"closed_at": room.ClosedAt,
	})
}

// DeleteRoom removes the room and its messages. Non-host calls change
// nothing but still answer 200.
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	roomID, ok := paramID(c, "id")
	if !ok {
		return
	}

	room, err := h.repo.GetRoom(roomID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	isHost := room.HostID != nil && *room.HostID == userID
	if err := h.rooms.Delete(roomID, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete room"})
		return
	}

	if isHost {
		h.broadcast(websocket.EventRoomGone, roomID, nil)
	}

	c.JSON(http.StatusOK, gin.H{"message": "room deleted"})
}

func (h *RoomHandler) broadcast(eventType websocket.EventType, roomID uint, payload interface{}) {
	if h.hub == nil {
		return
	}
	evt, err := websocket.NewEvent(eventType, roomID, payload)
	if err != nil {
		log.Error().Err(err).Uint("room", roomID).Msg("build room event")
		return
	}
	if err := h.hub.Broadcast(evt); err != nil {
		log.Debug().Err(err).Uint("room", roomID).Msg("broadcast room event")
	}
}

func formatRoomResponse(room *models.Room) gin.H {
	resp := formatRoomSummary(room)
	resp["viewer_count"] = len(room.Viewers)
	resp["participant_count"] = len(room.Participants)

	if room.Host != nil {
		resp["host"] = gin.H{
			"id":       room.Host.ID,
			"username": room.Host.Username,
		}
	}
	if room.Topic != nil {
		resp["topic"] = gin.H{
			"id":   room.Topic.ID,
			"name": room.Topic.Name,
		}
	}
	return resp
}

func formatRoomSummary(room *models.Room) gin.H {
	return gin.H{
		"id":          room.ID,
		"name":        room.Name,
		"description": room.Description,
		"host_id":     room.HostID,
		"topic_id":    room.TopicID,
		"is_closed":   room.IsClosed,
		"created_at":  room.CreatedAt,
		"updated_at":  room.UpdatedAt,
		"closed_at":   room.ClosedAt,
	}
}

func formatPopularRooms(popular []database.RoomWithParticipants) []gin.H {
	out := make([]gin.H, len(popular))
	for i := range popular {
		entry := formatRoomSummary(&popular[i].Room)
		entry["participant_count"] = popular[i].ParticipantCount
		out[i] = entry
	}
	return out
}

func formatMessageResponse(msg *models.Message) gin.H {
	resp := gin.H{
		"id":          msg.ID,
		"room_id":     msg.RoomID,
		"user_id":     msg.UserID,
		"parent_id":   msg.ParentID,
		"content":     msg.Content,
		"created_at":  msg.CreatedAt,
		"plus_count":  len(msg.Pluses),
		"minus_count": len(msg.Minuses),
	}

	if msg.User.ID != 0 {
		resp["user"] = gin.H{
			"id":       msg.User.ID,
			"username": msg.User.Username,
		}
	}
	return resp
}
