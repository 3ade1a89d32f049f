package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"agora/internal/handlers"
	"agora/internal/middleware"
	"agora/pkg/auth"
)

type routeDeps struct {
	auth   *handlers.AuthHandler
	topics *handlers.TopicHandler
	rooms  *handlers.RoomHandler
	votes  *handlers.VoteHandler
	users  *handlers.UserHandler
	ws     *handlers.WebSocketHandler
	health *handlers.HealthHandler

	jwtMgr    *auth.JWTManager
	blacklist auth.Blacklist
}

func registerRoutes(r *gin.Engine, deps routeDeps) {
	requireAuth := middleware.RequireAuth(deps.jwtMgr, deps.blacklist)
	optionalAuth := middleware.OptionalAuth(deps.jwtMgr, deps.blacklist)
	wsAuth := middleware.WSAuth(deps.jwtMgr, deps.blacklist)

	r.GET("/healthz", deps.health.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", deps.auth.Register)
		authGroup.POST("/login", deps.auth.Login)
		authGroup.POST("/logout", requireAuth, deps.auth.Logout)
	}

	api := r.Group("/api")
	{
		api.GET("/home", deps.topics.Home)
		api.GET("/topics/:id", deps.topics.GetTopic)
		api.POST("/topics/:id/rooms", requireAuth, deps.topics.CreateRoom)

		api.GET("/rooms/:id", optionalAuth, deps.rooms.GetRoom)
		api.POST("/rooms/:id/messages", requireAuth, deps.rooms.PostMessage)
		api.POST("/rooms/:id/status", requireAuth, deps.rooms.ToggleStatus)
		api.DELETE("/rooms/:id", requireAuth, deps.rooms.DeleteRoom)

		api.POST("/messages/:id/vote", requireAuth, deps.votes.RateMessage)

		api.GET("/users/:id", optionalAuth, deps.users.GetProfile)
		api.PUT("/users/:id", requireAuth, deps.users.UpdateProfile)
	}

	r.GET("/ws/rooms/:id", wsAuth, deps.ws.RoomFeed)
}
