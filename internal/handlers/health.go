package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agora/internal/database"
)

type HealthHandler struct {
	repo database.Repository
}

func NewHealthHandler(repo database.Repository) *HealthHandler {
	return &HealthHandler{repo: repo}
}

func (h *HealthHandler) Healthz(c *gin.Context) {
	if err := h.repo.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
