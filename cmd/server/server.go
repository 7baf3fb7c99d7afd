package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/thereayou/prochat/internal/database"
	"github.com/thereayou/prochat/internal/handlers"
	"github.com/thereayou/prochat/internal/services"
	"github.com/thereayou/prochat/internal/sessions"
	"github.com/thereayou/prochat/pkg/auth"
)

const (
	sessionTTL   = 24 * time.Hour
	maxBodyBytes = 10 << 10
)

type Server struct {
	Router     *gin.Engine
	DB         *database.Database
	Redis      *redis.Client
	JWTManager *auth.JWTManager
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	dbConn, err := database.Connect()
	if err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	redisOpts, err := redis.ParseURL(os.Getenv("REDIS_URL"))
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Redis connect failed: %v", err)
	}

	jwtMgr := auth.NewJWTManager(
		os.Getenv("JWT_SECRET"),
		sessionTTL,
	)

	sessionStore := sessions.NewStore(rdb)
	authService := services.NewAuthService(dbConn, sessionStore, dbConn, jwtMgr)
	chatService := services.NewChatService(dbConn, dbConn)

	secureCookie := os.Getenv("GIN_MODE") == "release"
	authH := handlers.NewAuthHandler(authService, secureCookie)
	userH := handlers.NewUserHandler(chatService)
	chatH := handlers.NewChatHandler(chatService)

	router := gin.Default()
	APIEndpoints(router, authH, userH, chatH, authService)

	return &Server{
		Router:     router,
		DB:         dbConn,
		Redis:      rdb,
		JWTManager: jwtMgr,
	}
}

func (s *Server) Run() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: s.Router,
	}

	go func() {
		log.Printf("Server starting on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server run error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}

	if err := s.Redis.Close(); err != nil {
		log.Printf("Redis close error: %v", err)
	}
	if err := s.DB.Close(); err != nil {
		log.Printf("Postgres close error: %v", err)
	}
}
