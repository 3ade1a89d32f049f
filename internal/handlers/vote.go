package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"agora/internal/database"
	"agora/internal/metrics"
	"agora/internal/middleware"
	"agora/internal/service"
	"agora/internal/websocket"
)

type VoteHandler struct {
	repo  database.Repository
	votes *service.VoteService
	hub   *websocket.Hub
}

func NewVoteHandler(repo database.Repository, votes *service.VoteService, hub *websocket.Hub) *VoteHandler {
	return &VoteHandler{repo: repo, votes: votes, hub: hub}
}

// RateMessage toggles the caller's vote on a message. The action
// query parameter is "p" or "m", anything else is a no-op, matching
// the vote links the client renders.
func (h *VoteHandler) RateMessage(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	messageID, ok := paramID(c, "id")
	if !ok {
		return
	}

	msg, err := h.repo.GetMessage(messageID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
		return
	}

	action := service.VoteAction(c.Query("action"))
	if err := h.votes.Apply(messageID, userID, action); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to apply vote"})
		return
	}

	if action == service.VotePlus || action == service.VoteMinus {
		metrics.VotesCast.WithLabelValues(string(action)).Inc()
		h.broadcastVote(msg.RoomID, messageID, userID)
	}

	c.JSON(http.StatusOK, gin.H{"message_id": messageID, "room_id": msg.RoomID})
}

func (h *VoteHandler) broadcastVote(roomID, messageID, userID uint) {
	if h.hub == nil {
		return
	}
	evt, err := websocket.NewEvent(websocket.EventVote, roomID, gin.H{
		"message_id": messageID,
		"user_id":    userID,
	})
	if err != nil {
		log.Error().Err(err).Uint("message", messageID).Msg("build vote event")
		return
	}
	if err := h.hub.Broadcast(evt); err != nil {
		log.Debug().Err(err).Uint("message", messageID).Msg("broadcast vote event")
	}
}
