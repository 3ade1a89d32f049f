package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"agora/internal/database"
	"agora/internal/handlers/dto"
	"agora/internal/middleware"
	"agora/internal/service"
)

type TopicHandler struct {
	repo  database.Repository
	rooms *service.RoomService
}

func NewTopicHandler(repo database.Repository, rooms *service.RoomService) *TopicHandler {
	return &TopicHandler{repo: repo, rooms: rooms}
}

// Home lists all topics plus the popular-rooms ranking for the
// landing page.
func (h *TopicHandler) Home(c *gin.Context) {
	topics, err := h.repo.ListTopics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list topics"})
		return
	}

	popular, err := h.rooms.Popular(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rank rooms"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"topics":        topics,
		"popular_rooms": formatPopularRooms(popular),
	})
}

// GetTopic returns the topic and its rooms.
func (h *TopicHandler) GetTopic(c *gin.Context) {
	topicID, ok := paramID(c, "id")
	if !ok {
		return
	}

	topic, err := h.repo.GetTopic(topicID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "topic not found"})
		return
	}

	rooms, err := h.repo.ListRoomsByTopic(topicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list rooms"})
		return
	}

	popular, err := h.rooms.Popular(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rank rooms"})
		return
	}

	roomList := make([]gin.H, len(rooms))
	for i := range rooms {
		roomList[i] = formatRoomSummary(&rooms[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"topic": gin.H{
			"id":            topic.ID,
			"name":          topic.Name,
			"description":   topic.Description,
			"is_restricted": topic.IsRestricted,
		},
		"rooms":         roomList,
		"popular_rooms": formatPopularRooms(popular),
	})
}

// CreateRoom opens a room under the topic with the caller as host.
func (h *TopicHandler) CreateRoom(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	topicID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.rooms.Create(topicID, userID, req.Name, req.Description)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "topic not found"})
		return
	case errors.Is(err, service.ErrTopicRestricted):
		c.JSON(http.StatusForbidden, gin.H{"error": "topic is restricted"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create room"})
		return
	}

	c.JSON(http.StatusCreated, formatRoomSummary(room))
}

// paramID parses an integer id path parameter, answering 404 on
// garbage the way a missing entity would.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return uint(id), true
}
