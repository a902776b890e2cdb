package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bistro_backend/internal/domain"
	"bistro_backend/internal/repository"
)

// ListCartsHandler returns the cart items owned by the email query parameter
func ListCartsHandler(carts repository.CartRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		result, err := carts.ListByEmail(c.Request.Context(), email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart items"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// AddCartHandler inserts a cart item with a price snapshot taken client-side
func AddCartHandler(carts repository.CartRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item domain.CartItem
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		result, err := carts.Insert(c.Request.Context(), &item)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add cart item"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// DeleteCartHandler removes a single cart item by id
func DeleteCartHandler(carts repository.CartRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart id"})
			return
		}
		result, err := carts.DeleteByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cart item"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
