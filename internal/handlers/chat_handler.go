package handlers

import (
	"net/http"

	"wellness-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	Service *service.ChatService
}

func NewChatHandler(s *service.ChatService) *ChatHandler {
	return &ChatHandler{Service: s}
}

// Chat proxies one companion message to the AI collaborator.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": h.Service.Chat(c.Request.Context(), req.Message)})
}

// MoodInsight returns a short validation for a mood check-in.
func (h *ChatHandler) MoodInsight(c *gin.Context) {
	var req struct {
		Mood string   `json:"mood" binding:"required"`
		Tags []string `json:"tags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insight": h.Service.MoodInsight(c.Request.Context(), req.Mood, req.Tags)})
}

// JournalReflection returns one reflection question for a journal entry.
func (h *ChatHandler) JournalReflection(c *gin.Context) {
	var req struct {
		Entry string `json:"entry" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reflection": h.Service.JournalReflection(c.Request.Context(), req.Entry)})
}
