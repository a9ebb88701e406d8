package handlers

import (
	"context"
	"errors"
	"net/http"

	"wellness-service/internal/engine"
	"wellness-service/internal/plan"
	"wellness-service/internal/service"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	Service *service.SessionService
}

func NewSessionHandler(s *service.SessionService) *SessionHandler {
	return &SessionHandler{Service: s}
}

// CreateSession starts a new questionnaire session.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		userID = "anonymous"
	}

	session, err := h.Service.CreateSession(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create session",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session":   session,
		"next_step": "Call /question endpoint to get the first question",
	})
}

// ListSessions returns the calling user's questionnaire history.
func (h *SessionHandler) ListSessions(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		userID = "anonymous"
	}

	sessions, err := h.Service.ListUserSessions(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to list sessions",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// GetSession retrieves session information.
func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// CurrentQuestion returns the question the session is waiting on.
func (h *SessionHandler) CurrentQuestion(c *gin.Context) {
	question, err := h.Service.CurrentQuestion(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	if question == nil {
		c.JSON(http.StatusOK, gin.H{
			"is_complete": true,
			"next_step":   "Call /plan endpoint for your results",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"question": question, "is_complete": false})
}

// SubmitAnswer records the chosen option and advances the session.
func (h *SessionHandler) SubmitAnswer(c *gin.Context) {
	var req struct {
		Option string `json:"option" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid answer format",
			"details": err.Error(),
		})
		return
	}

	result, next, err := h.Service.SubmitAnswer(context.Background(), c.Param("id"), req.Option)
	switch {
	case errors.Is(err, engine.ErrInvalidOption):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Option is not valid for the current question",
			"details": err.Error(),
		})
		return
	case errors.Is(err, engine.ErrSessionComplete):
		c.JSON(http.StatusConflict, gin.H{"error": "Session is already complete"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to process answer",
			"details": err.Error(),
		})
		return
	}

	response := gin.H{
		"answer_recorded": true,
		"is_complete":     result.IsComplete,
	}
	if result.IsComplete {
		response["next_step"] = "Call /plan endpoint for your results"
		c.Set("session_completed", true)
	} else {
		response["question"] = next
	}
	c.JSON(http.StatusOK, response)
}

// ResetSession restarts the questionnaire from the entry question.
func (h *SessionHandler) ResetSession(c *gin.Context) {
	session, err := h.Service.ResetSession(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "message": "Session reset"})
}

// GetPlan returns the assembled plan for a completed session.
func (h *SessionHandler) GetPlan(c *gin.Context) {
	p, err := h.Service.GetPlan(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{
			"error":   "Plan not available",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetWellnessPlanText returns the AI-elaborated wellness plan.
func (h *SessionHandler) GetWellnessPlanText(c *gin.Context) {
	text, err := h.Service.WellnessPlanText(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{
			"error":   "Plan not available",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": text})
}

// FindCounselors starts a counselor lookup with the coordinates the browser
// obtained, or records a geolocation denial.
func (h *SessionHandler) FindCounselors(c *gin.Context) {
	var req struct {
		Latitude       float64 `json:"latitude"`
		Longitude      float64 `json:"longitude"`
		LocationDenied bool    `json:"location_denied"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	sessionID := c.Param("id")
	var err error
	if req.LocationDenied {
		err = h.Service.ReportLocationDenied(sessionID)
	} else {
		err = h.Service.FindCounselors(sessionID, req.Latitude, req.Longitude)
	}
	if errors.Is(err, plan.ErrLookupInFlight) {
		c.JSON(http.StatusConflict, gin.H{"error": "A lookup is already in progress"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to start lookup",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message":   "Lookup started",
		"next_step": "Poll /counselors/status for results",
		"hotlines":  plan.CrisisHotlines,
	})
}

// CounselorLookupStatus reports the lookup state machine. The static crisis
// hotlines ride along on every response so they render no matter what.
func (h *SessionHandler) CounselorLookupStatus(c *gin.Context) {
	state, counselors, message := h.Service.CounselorLookupStatus(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"state":      state,
		"counselors": counselors,
		"message":    message,
		"hotlines":   plan.CrisisHotlines,
	})
}
