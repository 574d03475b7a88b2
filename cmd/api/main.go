package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/faresFatooh/media-platform/db"
	"github.com/faresFatooh/media-platform/internal/config"
	"github.com/faresFatooh/media-platform/internal/handler"
	"github.com/faresFatooh/media-platform/internal/repository"
	"github.com/faresFatooh/media-platform/internal/service"
	"github.com/faresFatooh/media-platform/pkg/llm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	conn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer conn.Close()

	var quotaStore handler.QuotaStore
	if cfg.RedisURL != "" {
		redisClient, err := db.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer redisClient.Close()
		quotaStore = db.NewQuotaCounter(redisClient)
	} else {
		slog.Warn("REDIS_URL not set, generation quota disabled")
	}

	apiKey, err := cfg.ProviderAPIKey()
	if err != nil {
		log.Fatalf("error configuring LLM provider: %v", err)
	}

	gateway, err := llm.New(context.Background(), cfg.LLMProvider, apiKey)
	if err != nil {
		log.Fatalf("error building LLM client: %v", err)
	}
	limited := llm.NewLimitedClient(gateway, cfg.MaxConcurrentGenerations)

	articleRepo := repository.NewArticleRepository(conn)
	styleRepo := repository.NewStyleRepository(conn)
	taskRepo := repository.NewTaskRepository(conn)
	applicationRepo := repository.NewApplicationRepository(conn)

	contentService := service.NewContentService(limited, articleRepo)
	styleService := service.NewStyleService(limited, styleRepo)

	articleHandler := handler.NewArticleHandler(articleRepo, contentService)
	styleHandler := handler.NewStyleHandler(styleRepo, styleService)
	taskHandler := handler.NewTaskHandler(taskRepo)
	applicationHandler := handler.NewApplicationHandler(applicationRepo)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	r.GET("/health", func(c *gin.Context) {
		if err := conn.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "disconnected",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"database": "connected",
		})
	})

	api := r.Group("/api", handler.Auth([]byte(cfg.JWTSecret)))
	quota := handler.Quota(quotaStore, cfg.DailyGenerationQuota)

	api.POST("/articles/process-and-generate", quota, articleHandler.ProcessAndGenerate)
	api.GET("/articles", articleHandler.ListArticles)
	api.POST("/articles", articleHandler.CreateArticle)
	api.GET("/articles/:id", articleHandler.GetArticle)
	api.DELETE("/articles/:id", articleHandler.DeleteArticle)
	api.GET("/articles/:id/posts", articleHandler.ListPosts)

	api.POST("/predict", quota, styleHandler.Predict)
	api.GET("/style-examples", styleHandler.ListExamples)
	api.POST("/style-examples", styleHandler.CreateExample)
	api.GET("/style-examples/:id", styleHandler.GetExample)
	api.PUT("/style-examples/:id", styleHandler.UpdateExample)
	api.DELETE("/style-examples/:id", styleHandler.DeleteExample)

	api.GET("/tasks", taskHandler.ListTasks)
	api.POST("/tasks", taskHandler.CreateTask)
	api.GET("/tasks/:id", taskHandler.GetTask)
	api.PUT("/tasks/:id", taskHandler.UpdateTask)
	api.DELETE("/tasks/:id", taskHandler.DeleteTask)

	api.GET("/applications", applicationHandler.ListApplications)
	api.GET("/applications/:id", applicationHandler.GetApplication)

	slog.Info("starting API server", "port", cfg.Port, "llm_provider", cfg.LLMProvider)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
