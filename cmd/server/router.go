package main

import (
	"github.com/gin-gonic/gin"
	"github.com/thereayou/prochat/internal/handlers"
	"github.com/thereayou/prochat/internal/middleware"
)

func APIEndpoints(r *gin.Engine, authH *handlers.AuthHandler, userH *handlers.UserHandler, chatH *handlers.ChatHandler, resolver middleware.SessionResolver) {
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// Auth endpoints
	r.POST("/signup", authH.Signup)
	r.POST("/login", authH.Login)
	r.POST("/logout", authH.Logout)
	r.GET("/session", authH.Session)

	// API endpoints
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(resolver))
	{
		api.GET("/students", userH.ListStudents)
		api.GET("/chat/:user1/:user2", chatH.GetConversation)
		api.POST("/chat/send", chatH.SendMessage)
	}
}
