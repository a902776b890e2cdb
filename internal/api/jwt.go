package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework

	"bistro_backend/internal/utils" // JWT utility functions
)

// TokenRequest carries the identity claim a token is issued for
type TokenRequest struct {
	Email string `json:"email" binding:"required"` // Subject email
	Name  string `json:"name"`
}

// TokenResponse carries the issued session token
type TokenResponse struct {
	Token string `json:"token"`
}

// IssueTokenHandler issues a 1-hour session token for the supplied identity
// claim. Identity is asserted by the caller; this service performs no
// credential check of its own.
func IssueTokenHandler(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		token, err := utils.GenerateJWT(req.Email, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, TokenResponse{Token: token})
	}
}
