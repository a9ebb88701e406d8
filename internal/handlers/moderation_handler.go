package handlers

import (
	"context"
	"net/http"

	"wellness-service/internal/models"
	"wellness-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	Service *service.ModerationService
}

func NewModerationHandler(s *service.ModerationService) *ModerationHandler {
	return &ModerationHandler{Service: s}
}

// SubmitContribution accepts a quote or story for the positivity wall.
func (h *ModerationHandler) SubmitContribution(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Content string `json:"content" binding:"required"`
		Type    string `json:"type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	contribution, err := h.Service.SubmitContribution(context.Background(), req.Name, req.Content, req.Type)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to submit contribution",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, contribution)
}

// ListPublished returns the public positivity wall.
func (h *ModerationHandler) ListPublished(c *gin.Context) {
	out, err := h.Service.ListContributions(context.Background(), models.ContributionPublished)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListContributions returns the moderation queue, optionally filtered.
func (h *ModerationHandler) ListContributions(c *gin.Context) {
	out, err := h.Service.ListContributions(context.Background(), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// PublishContribution approves a pending contribution.
func (h *ModerationHandler) PublishContribution(c *gin.Context) {
	if err := h.Service.Publish(context.Background(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contribution published"})
}

// DeleteContribution rejects and removes a contribution.
func (h *ModerationHandler) DeleteContribution(c *gin.Context) {
	if err := h.Service.Delete(context.Background(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contribution deleted"})
}

// SubmitFeedback stores a user feedback record.
func (h *ModerationHandler) SubmitFeedback(c *gin.Context) {
	var req struct {
		Content string `json:"content" binding:"required"`
		Type    string `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}
	if req.Type == "" {
		req.Type = "general"
	}

	feedback, err := h.Service.SubmitFeedback(context.Background(), req.Content, req.Type)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, feedback)
}

// ListFeedback returns all feedback records for the console.
func (h *ModerationHandler) ListFeedback(c *gin.Context) {
	out, err := h.Service.ListFeedback(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}
