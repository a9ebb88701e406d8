package main

import (
	"log"
	"net/http"
	"time"

	"wellness-service/internal/ai"
	"wellness-service/internal/config"
	"wellness-service/internal/db"
	"wellness-service/internal/event"
	"wellness-service/internal/graph"
	"wellness-service/internal/handlers"
	"wellness-service/internal/repository"
	"wellness-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	// The question table is static configuration; a broken table must stop
	// the service before it answers a single request.
	if err := graph.Wellness.Validate(); err != nil {
		log.Fatalf("question graph is invalid: %v", err)
	}

	db.InitMongo(cfg.MongoURI)
	database := db.Client.Database(cfg.MongoDatabase)

	var publisher *event.EventPublisher
	if cfg.RabbitMQURI != "" && cfg.RabbitMQExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	llm := ai.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)

	sessionRepo := repository.NewSessionRepository(database)
	sessionService := service.NewSessionService(sessionRepo, llm)
	sessionHandler := handlers.NewSessionHandler(sessionService)

	chatService := service.NewChatService(llm)
	chatHandler := handlers.NewChatHandler(chatService)

	moderationRepo := repository.NewModerationRepository(database)
	moderationService := service.NewModerationService(moderationRepo)
	moderationHandler := handlers.NewModerationHandler(moderationService)

	resourceHandler := handlers.NewResourceHandler()

	gin.SetMode(cfg.GinMode)
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	setupSessionRoutes(r, sessionHandler, publisher)
	setupChatRoutes(r, chatHandler, publisher)
	setupModerationRoutes(r, moderationHandler, publisher)

	r.GET("/public/wellness/resources", resourceHandler.ListResources)

	r.Run(":" + cfg.Port)
}

func setupSessionRoutes(r *gin.Engine, h *handlers.SessionHandler, publisher *event.EventPublisher) {
	session := r.Group("/public/wellness/session")
	{
		session.POST("/", func(c *gin.Context) {
			h.CreateSession(c)
			publish(publisher, event.SessionCreated, gin.H{
				"user_id":   c.GetHeader("X-User-ID"),
				"timestamp": time.Now(),
			})
		})

		session.GET("/", h.ListSessions)
		session.GET("/:id", h.GetSession)
		session.GET("/:id/question", h.CurrentQuestion)

		session.POST("/:id/answer", func(c *gin.Context) {
			h.SubmitAnswer(c)
			publish(publisher, event.AnswerSubmitted, gin.H{
				"session_id": c.Param("id"),
				"timestamp":  time.Now(),
			})
			if c.Writer.Status() == http.StatusOK {
				publishCompletionIfAny(c, publisher)
			}
		})

		session.POST("/:id/reset", func(c *gin.Context) {
			h.ResetSession(c)
			publish(publisher, event.SessionReset, gin.H{
				"session_id": c.Param("id"),
				"timestamp":  time.Now(),
			})
		})

		session.GET("/:id/plan", func(c *gin.Context) {
			h.GetPlan(c)
			publish(publisher, event.PlanRequested, gin.H{
				"session_id": c.Param("id"),
				"timestamp":  time.Now(),
			})
		})

		session.GET("/:id/plan/text", h.GetWellnessPlanText)

		session.POST("/:id/counselors", func(c *gin.Context) {
			h.FindCounselors(c)
			publish(publisher, event.CounselorsRequested, gin.H{
				"session_id": c.Param("id"),
				"timestamp":  time.Now(),
			})
		})

		session.GET("/:id/counselors/status", h.CounselorLookupStatus)
	}
}

func setupChatRoutes(r *gin.Engine, h *handlers.ChatHandler, publisher *event.EventPublisher) {
	chat := r.Group("/public/wellness/chat")
	{
		chat.POST("/", func(c *gin.Context) {
			h.Chat(c)
			publish(publisher, event.ChatMessageSent, gin.H{"timestamp": time.Now()})
		})
		chat.POST("/mood", h.MoodInsight)
		chat.POST("/journal", h.JournalReflection)
	}
}

func setupModerationRoutes(r *gin.Engine, h *handlers.ModerationHandler, publisher *event.EventPublisher) {
	public := r.Group("/public/wellness/wall")
	{
		public.GET("/", h.ListPublished)
		public.POST("/", func(c *gin.Context) {
			h.SubmitContribution(c)
			publish(publisher, event.ContributionReceived, gin.H{"timestamp": time.Now()})
		})
	}

	r.POST("/public/wellness/feedback", func(c *gin.Context) {
		h.SubmitFeedback(c)
		publish(publisher, event.FeedbackReceived, gin.H{"timestamp": time.Now()})
	})

	protected := r.Group("/protected/wellness/moderation")
	protected.Use(requireUserID())
	{
		protected.GET("/contributions", h.ListContributions)
		protected.POST("/contributions/:id/publish", func(c *gin.Context) {
			h.PublishContribution(c)
			publish(publisher, event.ContributionReviewed, gin.H{
				"contribution_id": c.Param("id"),
				"reviewer":        c.GetHeader("X-User-ID"),
				"timestamp":       time.Now(),
			})
		})
		protected.DELETE("/contributions/:id", func(c *gin.Context) {
			h.DeleteContribution(c)
			publish(publisher, event.ContributionReviewed, gin.H{
				"contribution_id": c.Param("id"),
				"reviewer":        c.GetHeader("X-User-ID"),
				"timestamp":       time.Now(),
			})
		})
		protected.GET("/feedback", h.ListFeedback)
	}
}

// requireUserID gates moderation routes on the X-User-ID header set by the
// gateway. This is a session flag, not real authentication.
func requireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-User-ID") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func publish(publisher *event.EventPublisher, eventType string, payload interface{}) {
	if publisher != nil {
		publisher.Publish(eventType, payload)
	}
}

// publishCompletionIfAny emits the completion event when an answer finished
// the questionnaire.
func publishCompletionIfAny(c *gin.Context, publisher *event.EventPublisher) {
	if complete, ok := c.Get("session_completed"); ok && complete == true {
		publish(publisher, event.SessionCompleted, gin.H{
			"session_id": c.Param("id"),
			"timestamp":  time.Now(),
		})
	}
}
