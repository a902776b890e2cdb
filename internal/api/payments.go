package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bistro_backend/internal/domain"
	"bistro_backend/internal/middleware"
	"bistro_backend/internal/payments"
	"bistro_backend/internal/repository"
)

// PaymentIntentRequest carries the decimal price to charge
type PaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// CreatePaymentIntentHandler requests a card payment intent from the
// processor and returns only the client secret. Recording the payment is a
// separate call the client makes after external confirmation.
func CreatePaymentIntentHandler(intents payments.IntentCreator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PaymentIntentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		secret, err := intents.CreateIntent(c.Request.Context(), payments.MinorUnits(req.Price))
		if err != nil {
			logrus.WithField("error", err).Error("payment intent creation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
	}
}

// ListPaymentsHandler returns every payment record
func ListPaymentsHandler(paymentRepo repository.PaymentRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := paymentRepo.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// ListPaymentsByEmailHandler returns the caller's own payment history. The
// path email must match the token's email claim.
func ListPaymentsByEmailHandler(paymentRepo repository.PaymentRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		claimEmail, _ := c.Get(middleware.ContextEmailKey)
		if email != claimEmail {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
			return
		}
		result, err := paymentRepo.ListByEmail(c.Request.Context(), email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// RecordPaymentHandler inserts the payment record, then bulk-deletes the
// cart items it cleared. The two writes are not transactional: a failed
// cleanup leaves the payment recorded and returns the partial outcome.
func RecordPaymentHandler(paymentRepo repository.PaymentRepository, carts repository.CartRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payment domain.Payment
		if err := c.ShouldBindJSON(&payment); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if payment.Date.IsZero() {
			payment.Date = time.Now()
		}
		paymentResult, err := paymentRepo.Insert(c.Request.Context(), &payment)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
			return
		}
		deleteResult, err := carts.DeleteMany(c.Request.Context(), payment.CartIDs)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"email": payment.Email,
				"error": err,
			}).Error("cart cleanup failed after payment insert")
			c.JSON(http.StatusInternalServerError, gin.H{
				"paymentResult": paymentResult,
				"error":         "Failed to clear cart items",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"paymentResult": paymentResult,
			"deleteResult":  deleteResult,
		})
	}
}
