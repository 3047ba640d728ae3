package routes

import (
	calculateapi "stash-api/internal/api/calculate"
	debugapi "stash-api/internal/api/debug"
	healthapi "stash-api/internal/api/health"
	optionsapi "stash-api/internal/api/options"
	plansapi "stash-api/internal/api/plans"
	subscriptionsapi "stash-api/internal/api/subscriptions"
	usersapi "stash-api/internal/api/users"
	"stash-api/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers carries the constructed feature handlers into route registration.
type Handlers struct {
	Health        *healthapi.Handler
	Users         *usersapi.Handler
	Plans         *plansapi.Handler
	Options       *optionsapi.Handler
	Subscriptions *subscriptionsapi.Handler
	Calculate     *calculateapi.Handler
	Debug         *debugapi.Handler
}

func RegisterRoutes(r *gin.Engine, apiVersion string, h Handlers) {
	r.GET("/health", h.Health.Check)

	api := r.Group("/api/" + apiVersion)
	api.Use(middleware.SanitizeInputMiddleware())

	api.POST("/users", h.Users.Register)

	api.GET("/plans", h.Plans.ListPlans)
	api.GET("/options", h.Options.ListOptions)

	api.GET("/calculate", h.Calculate.Calculate)

	api.POST("/subscriptions", h.Subscriptions.CreateSubscription)
	api.GET("/subscriptions/:id/breakdown", h.Subscriptions.GetBreakdown)

	api.POST("/subscriptions/:id/options", h.Subscriptions.AttachOption)
	api.GET("/subscriptions/:id/options", h.Subscriptions.ListOptions)
	api.PUT("/subscriptions/:id/options/:optionId", h.Subscriptions.UpdateOptionQuantity)
	api.DELETE("/subscriptions/:id/options/:optionId", h.Subscriptions.RemoveOption)

	api.GET("/debug/users", h.Debug.ListUsers)
	api.GET("/debug/subscriptions", h.Debug.ListSubscriptions)
}
