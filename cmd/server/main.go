package main

import (
	"flag"
	"net/http"
	"os"

	"mindlift/internal/config"
	"mindlift/internal/handler"
	"mindlift/internal/logger"
	"mindlift/internal/middleware"
	"mindlift/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	if cfg.OpenAI.APIKey == "" {
		logger.Error("OPENAI_API_KEY is required")
		os.Exit(1)
	}

	authSvc := service.NewAuthService(cfg.Auth.JWTSecret)
	moodSvc := service.NewMoodService()
	contentSvc := service.NewContentService()
	emergencySvc := service.NewEmergencyService()
	sessionSvc := service.NewSessionService()
	aiSvc := service.NewAIService(cfg.OpenAI)
	assistant := service.NewAssistant(aiSvc, aiSvc)

	authH := handler.NewAuthHandler(authSvc, cfg.Auth.CookieSecure)
	moodH := handler.NewMoodHandler(moodSvc)
	contentH := handler.NewContentHandler(contentSvc)
	emergencyH := handler.NewEmergencyHandler(emergencySvc)
	sessionH := handler.NewSessionHandler(sessionSvc)
	chatH := handler.NewChatHandler(assistant, sessionSvc)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/api/auth/signup", authH.Signup)
	r.POST("/api/auth/login", authH.Login)
	r.POST("/api/auth/logout", authH.Logout)

	r.GET("/api/content", contentH.List)
	r.GET("/api/emergency/contacts", emergencyH.Contacts)
	r.GET("/api/emergency/resources", emergencyH.Resources)
	r.GET("/api/emergency/stats", emergencyH.Stats)

	api := r.Group("/api", middleware.Auth(authSvc))
	api.GET("/auth/me", authH.Me)

	api.GET("/mood", moodH.List)
	api.POST("/mood", moodH.Record)
	api.GET("/mood/stats", moodH.Stats)
	api.GET("/mood/:entryId", moodH.Get)
	api.DELETE("/mood/:entryId", moodH.Delete)

	// static /content/progress takes precedence over the :articleId param
	api.GET("/content/progress", contentH.GetProgress)
	api.POST("/content/progress", contentH.UpdateProgress)
	r.GET("/api/content/:articleId", contentH.Get)

	api.GET("/emergency/log", emergencyH.Logs)
	api.POST("/emergency/log", emergencyH.LogContact)

	api.GET("/chat/sessions", sessionH.List)
	api.POST("/chat/sessions", sessionH.Create)
	api.GET("/chat/sessions/:sessionId", sessionH.Get)
	api.PUT("/chat/sessions/:sessionId", sessionH.Rename)
	api.DELETE("/chat/sessions/:sessionId", sessionH.Delete)
	api.POST("/chat/sessions/:sessionId/messages", sessionH.AppendMessage)
	api.POST("/chat", chatH.Chat)

	logger.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}
}
