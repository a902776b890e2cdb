package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro_backend/internal/domain"
	"bistro_backend/internal/middleware"
	"bistro_backend/internal/repository"
)

// ListUsersHandler returns every user record (admin only)
func ListUsersHandler(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := users.List(c.Request.Context())
		if err != nil {
			logrus.WithField("error", err).Error("failed to list users")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// CheckAdminHandler reports whether the caller's own account has the admin
// role. The path email must match the token's email claim.
func CheckAdminHandler(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		claimEmail, _ := c.Get(middleware.ContextEmailKey)
		if email != claimEmail {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
			return
		}
		user, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				// Unknown user is simply not an admin
				c.JSON(http.StatusOK, gin.H{"admin": false})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"admin": user.IsAdmin()})
	}
}

// RegisterUserHandler inserts a user unless one with the same email already
// exists. Registration is idempotent by email; there is no unique index, the
// check happens here.
func RegisterUserHandler(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user domain.User
		if err := c.ShouldBindJSON(&user); err != nil || user.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		_, err := users.FindByEmail(c.Request.Context(), user.Email)
		if err == nil {
			c.JSON(http.StatusOK, gin.H{"message": "user already exists", "insertedId": nil})
			return
		}
		if err != mongo.ErrNoDocuments {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing user"})
			return
		}
		result, err := users.Insert(c.Request.Context(), &user)
		if err != nil {
			logrus.WithFields(logrus.Fields{"email": user.Email, "error": err}).Error("failed to insert user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to insert user"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// PromoteUserHandler sets the admin role on a user by id (admin only)
func PromoteUserHandler(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		result, err := users.SetRole(c.Request.Context(), id, domain.RoleAdmin)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// DeleteUserHandler removes a user by id (admin only)
func DeleteUserHandler(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		result, err := users.DeleteByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
