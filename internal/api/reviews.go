package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bistro_backend/internal/repository"
)

// ListReviewsHandler returns every review
func ListReviewsHandler(reviews repository.ReviewRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := reviews.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
