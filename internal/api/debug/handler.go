// Package debug exposes unauthenticated listings for development. Keep these
// off any production route table that faces the public internet.
package debug

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"stash-api/internal/api/response"
	"stash-api/internal/domain/subscriptions"
	"stash-api/internal/domain/users"
)

type UserRepository interface {
	List() ([]users.User, error)
}

type SubscriptionRepository interface {
	List() ([]subscriptions.Subscription, error)
}

type Handler struct {
	users         UserRepository
	subscriptions SubscriptionRepository
}

func NewHandler(userRepo UserRepository, subscriptionRepo SubscriptionRepository) *Handler {
	return &Handler{users: userRepo, subscriptions: subscriptionRepo}
}

// ListUsers handles GET /api/v1/debug/users.
func (h *Handler) ListUsers(c *gin.Context) {
	all, err := h.users.List()
	if err != nil {
		log.Println("failed to fetch users:", err)
		response.InternalError(c, "Failed to fetch users")
		return
	}
	response.Success(c, http.StatusOK, all, "Users fetched successfully")
}

// ListSubscriptions handles GET /api/v1/debug/subscriptions.
func (h *Handler) ListSubscriptions(c *gin.Context) {
	all, err := h.subscriptions.List()
	if err != nil {
		log.Println("failed to fetch subscriptions:", err)
		response.InternalError(c, "Failed to fetch subscriptions")
		return
	}
	response.Success(c, http.StatusOK, all, "Subscriptions fetched successfully")
}
