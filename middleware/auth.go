package middleware

import (
	"net/http"
	"strings"

	"xray-education-service/auth"

	"github.com/gin-gonic/gin"
)

// SessionKey is the gin context key the session middleware stores the
// learner session ID under.
const SessionKey = "session_id"

// SessionRequired validates the session token for routes that read or
// write learner progress
func SessionRequired(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		tokenString := extractToken(authHeader)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			c.Abort()
			return
		}

		sessionID, err := tokens.Validate(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(SessionKey, sessionID)
		c.Next()
	}
}

// SessionOptional attaches the session ID when a valid token is sent but
// lets anonymous requests through. A token that is present and invalid is
// still rejected so broken clients surface instead of silently losing
// their progress attribution.
func SessionOptional(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString := extractToken(authHeader)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			c.Abort()
			return
		}

		sessionID, err := tokens.Validate(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(SessionKey, sessionID)
		c.Next()
	}
}

// SessionID returns the session ID set by the session middleware, or ""
// for anonymous requests.
func SessionID(c *gin.Context) string {
	id, ok := c.Get(SessionKey)
	if !ok {
		return ""
	}
	s, _ := id.(string)
	return s
}

// extractToken extracts the token from the Authorization header
func extractToken(authHeader string) string {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
