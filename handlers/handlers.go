package handlers

import (
	"net/http"

	"xray-education-service/auth"
	"xray-education-service/config"
	"xray-education-service/email"
	"xray-education-service/service"

	"github.com/gin-gonic/gin"
)

// Handlers represents the HTTP handlers
type Handlers struct {
	config  *config.Config
	service *service.Service
	tokens  *auth.TokenService
	sender  *email.Sender
}

// NewHandlers creates new HTTP handlers. The email sender may be nil when
// report delivery is not configured.
func NewHandlers(cfg *config.Config, svc *service.Service, tokens *auth.TokenService, sender *email.Sender) *Handlers {
	return &Handlers{
		config:  cfg,
		service: svc,
		tokens:  tokens,
		sender:  sender,
	}
}

// HealthCheck handles health check requests
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "xray-education-service",
	})
}
