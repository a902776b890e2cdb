package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bistro_backend/internal/domain"
	"bistro_backend/internal/repository"
)

// AdminStatusHandler returns estimated collection counts plus total revenue
// (admin only). Counts are approximate by design.
func AdminStatusHandler(users repository.UserRepository, menu repository.MenuRepository, paymentRepo repository.PaymentRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userCount, err := users.EstimatedCount(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count users"})
			return
		}
		menuCount, err := menu.EstimatedCount(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count menu items"})
			return
		}
		orderCount, err := paymentRepo.EstimatedCount(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count payments"})
			return
		}
		revenue, err := paymentRepo.TotalRevenue(ctx)
		if err != nil {
			logrus.WithField("error", err).Error("revenue aggregation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute revenue"})
			return
		}
		c.JSON(http.StatusOK, domain.AdminStats{
			Users:     userCount,
			MenuItems: menuCount,
			Orders:    orderCount,
			Revenue:   revenue,
		})
	}
}

// OrderStatusHandler returns the per-category quantity and revenue
// breakdown across all payments (admin only)
func OrderStatusHandler(paymentRepo repository.PaymentRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := paymentRepo.CategoryBreakdown(c.Request.Context())
		if err != nil {
			logrus.WithField("error", err).Error("category breakdown aggregation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute order status"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
