package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"agora/internal/config"
	"agora/internal/database"
	"agora/internal/handlers"
	"agora/internal/metrics"
	"agora/internal/service"
	"agora/internal/websocket"
	"agora/pkg/auth"
)

type Server struct {
	Router *gin.Engine
	Hub    *websocket.Hub

	cfg *config.Config
}

func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	jwtMgr := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	blacklist := auth.NewRedisBlacklist(rdb)

	hub := websocket.NewHub()

	roomSvc := service.NewRoomService(db, rdb)
	messageSvc := service.NewMessageService(db, cfg.PageSize)
	voteSvc := service.NewVoteService(db)
	userSvc := service.NewUserService(db)

	router := gin.Default()
	router.Use(metrics.GinMiddleware())

	registerRoutes(router, routeDeps{
		auth:      handlers.NewAuthHandler(db, jwtMgr, blacklist),
		topics:    handlers.NewTopicHandler(db, roomSvc),
		rooms:     handlers.NewRoomHandler(db, roomSvc, messageSvc, hub),
		votes:     handlers.NewVoteHandler(db, voteSvc, hub),
		users:     handlers.NewUserHandler(db, userSvc, roomSvc),
		ws:        handlers.NewWebSocketHandler(db, hub),
		health:    handlers.NewHealthHandler(db),
		jwtMgr:    jwtMgr,
		blacklist: blacklist,
	})

	return &Server{
		Router: router,
		Hub:    hub,
		cfg:    cfg,
	}, nil
}

func (s *Server) Run() error {
	go s.Hub.Run()
	defer s.Hub.Stop()

	log.Info().Str("addr", s.cfg.Addr).Msg("server starting")
	return s.Router.Run(s.cfg.Addr)
}
