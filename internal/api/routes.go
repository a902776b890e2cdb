package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"bistro_backend/internal/middleware"
	"bistro_backend/internal/payments"
	"bistro_backend/internal/repository"
)

// Deps bundles everything the route table needs
type Deps struct {
	Users     repository.UserRepository
	Menu      repository.MenuRepository
	Reviews   repository.ReviewRepository
	Carts     repository.CartRepository
	Payments  repository.PaymentRepository
	Intents   payments.IntentCreator
	RDB       *redis.Client
	JWTSecret string
}

// RegisterRoutes wires every endpoint onto the router. Admin-gated routes
// run the token check before the role check; the role check reads the user
// record on every request.
func RegisterRoutes(r *gin.Engine, deps Deps) {
	requireToken := middleware.JWTAuthMiddleware(deps.JWTSecret)
	requireAdmin := middleware.AdminOnlyMiddleware(deps.Users)

	// Liveness
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Bistro backend is running")
	})

	// Token issuance
	r.POST("/jwt", IssueTokenHandler(deps.JWTSecret))

	// Users
	r.GET("/users", requireToken, requireAdmin, ListUsersHandler(deps.Users))
	r.GET("/users/admin/:email", requireToken, CheckAdminHandler(deps.Users))
	r.POST("/users", RegisterUserHandler(deps.Users))
	r.PATCH("/users/admin/:id", requireToken, requireAdmin, PromoteUserHandler(deps.Users))
	r.DELETE("/users/:id", requireToken, requireAdmin, DeleteUserHandler(deps.Users))

	// Menu (public reads, admin-gated mutations)
	r.GET("/menu", ListMenuHandler(deps.Menu, deps.RDB))
	r.GET("/menu/:id", GetMenuItemHandler(deps.Menu))
	r.POST("/menu", requireToken, requireAdmin, CreateMenuItemHandler(deps.Menu, deps.RDB))
	r.PATCH("/menu/:id", requireToken, requireAdmin, UpdateMenuItemHandler(deps.Menu, deps.RDB))
	r.DELETE("/menu/:id", requireToken, requireAdmin, DeleteMenuItemHandler(deps.Menu, deps.RDB))

	// Reviews
	r.GET("/reviews", ListReviewsHandler(deps.Reviews))

	// Carts (owner email passed as query parameter, no token required)
	r.GET("/carts", ListCartsHandler(deps.Carts))
	r.POST("/carts", AddCartHandler(deps.Carts))
	r.DELETE("/carts/:id", DeleteCartHandler(deps.Carts))

	// Payments
	r.POST("/create-payment-intent", CreatePaymentIntentHandler(deps.Intents))
	r.GET("/payments", ListPaymentsHandler(deps.Payments))
	r.GET("/payments/:email", requireToken, ListPaymentsByEmailHandler(deps.Payments))
	r.POST("/payments", RecordPaymentHandler(deps.Payments, deps.Carts))

	// Reporting
	r.GET("/admin-status", requireToken, requireAdmin, AdminStatusHandler(deps.Users, deps.Menu, deps.Payments))
	r.GET("/order-status", requireToken, requireAdmin, OrderStatusHandler(deps.Payments))
}
