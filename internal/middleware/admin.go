package middleware

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework

	"bistro_backend/internal/repository"
)

// AdminOnlyMiddleware checks the user's role in the store on each request.
// Must run after JWTAuthMiddleware; role changes take effect on the very
// next request because nothing is cached.
func AdminOnlyMiddleware(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, exists := c.Get(ContextEmailKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		user, err := users.FindByEmail(c.Request.Context(), email.(string))
		if err != nil {
			// Unknown user or store failure: either way, not an admin
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
