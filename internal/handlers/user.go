package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"agora/internal/database"
	"agora/internal/handlers/dto"
	"agora/internal/middleware"
	"agora/internal/service"
)

type UserHandler struct {
	repo  database.Repository
	users *service.UserService
	rooms *service.RoomService
}

func NewUserHandler(repo database.Repository, users *service.UserService, rooms *service.RoomService) *UserHandler {
	return &UserHandler{repo: repo, users: users, rooms: rooms}
}

// GetProfile returns a user's public profile.
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}

	user, err := h.repo.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	popular, err := h.rooms.Popular(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rank rooms"})
		return
	}

	callerID, _ := middleware.UserID(c)
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"created_at": user.CreatedAt,
		},
		"is_own_profile": callerID == user.ID,
		"popular_rooms":  formatPopularRooms(popular),
	})
}

// UpdateProfile edits the caller's own profile. Editing someone
// else's is forbidden.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	callerID, _ := middleware.UserID(c)

	userID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if callerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "users can only modify their own profiles"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.UpdateProfile(userID, req.Username, req.FirstName, req.LastName)
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": "user with that username already exists"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, formatUserResponse(user))
}
