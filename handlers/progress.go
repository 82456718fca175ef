package handlers

import (
	"net/http"

	"xray-education-service/education"
	"xray-education-service/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateSessionRequest optionally names the learner session
type CreateSessionRequest struct {
	DisplayName string `json:"display_name"`
}

// CreateSession starts an anonymous learner session and returns its token.
// The session exists so quiz attempts and checklist state can be tied
// together; no account and no personal data are involved.
func (h *Handlers) CreateSession(c *gin.Context) {
	store := h.service.Progress()
	if store == nil || !h.config.SessionsEnabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Progress tracking is not configured"})
		return
	}

	var req CreateSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
	}

	sessionID := uuid.New().String()

	if err := store.CreateSession(sessionID, req.DisplayName); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	token, err := h.tokens.Issue(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue session token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id": sessionID,
		"token":      token,
		"expires_in": int(h.config.TokenTTL.Seconds()),
	})
}

// GetProgress returns the session's checklist state, quiz history and
// analysis count
func (h *Handlers) GetProgress(c *gin.Context) {
	store := h.service.Progress()
	if store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Progress tracking is not configured"})
		return
	}

	sessionID := middleware.SessionID(c)

	exists, err := store.SessionExists(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load progress"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	summary, err := store.GetProgress(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load progress"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// UpdateModuleRequest marks one review checklist module
type UpdateModuleRequest struct {
	Module    string `json:"module"`
	Completed bool   `json:"completed"`
}

// UpdateModuleProgress marks a review checklist module complete or
// incomplete and returns the updated checklist
func (h *Handlers) UpdateModuleProgress(c *gin.Context) {
	store := h.service.Progress()
	if store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Progress tracking is not configured"})
		return
	}

	var req UpdateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	known := false
	for _, module := range education.ChecklistItems() {
		if module == req.Module {
			known = true
			break
		}
	}
	if !known {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Unknown module",
			"modules": education.ChecklistItems(),
		})
		return
	}

	sessionID := middleware.SessionID(c)

	if err := store.UpsertModuleProgress(sessionID, req.Module, req.Completed); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update module progress"})
		return
	}
	// last_seen_at refresh is best effort
	_ = store.TouchSession(sessionID)

	checklist, err := store.GetModuleProgress(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load checklist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"checklist": checklist,
	})
}
