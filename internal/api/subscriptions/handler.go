package subscriptions

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"stash-api/internal/api/response"
	"stash-api/internal/domain/options"
	"stash-api/internal/domain/plans"
	"stash-api/internal/domain/pricing"
	"stash-api/internal/domain/subscriptions"
	"stash-api/internal/domain/users"
)

type SubscriptionRepository interface {
	Create(sub *subscriptions.Subscription) error
	FindByID(id uint) (*subscriptions.Subscription, error)
	FindByIDWithDetails(id uint) (*subscriptions.Subscription, error)
}

type SubscriptionOptionRepository interface {
	Create(subOpt *subscriptions.SubscriptionOption) error
	ListBySubscription(subscriptionID uint) ([]subscriptions.SubscriptionOption, error)
	FindByPair(subscriptionID, optionID uint) (*subscriptions.SubscriptionOption, error)
	UpdateQuantityAndPrice(id uint, quantity int, price decimal.Decimal) error
	Delete(id uint) error
}

type UserRepository interface {
	FindByID(id uint) (*users.User, error)
}

type PlanRepository interface {
	FindByID(id uint) (*plans.Plan, error)
}

type OptionRepository interface {
	FindByID(id uint) (*options.Option, error)
}

type Handler struct {
	subscriptions SubscriptionRepository
	subOptions    SubscriptionOptionRepository
	users         UserRepository
	plans         PlanRepository
	options       OptionRepository
}

func NewHandler(
	subscriptionRepo SubscriptionRepository,
	subOptionRepo SubscriptionOptionRepository,
	userRepo UserRepository,
	planRepo PlanRepository,
	optionRepo OptionRepository,
) *Handler {
	return &Handler{
		subscriptions: subscriptionRepo,
		subOptions:    subOptionRepo,
		users:         userRepo,
		plans:         planRepo,
		options:       optionRepo,
	}
}

type createSubscriptionRequest struct {
	UserID      uint `json:"user_id"      binding:"required,gt=0"`
	PlanID      uint `json:"plan_id"      binding:"required,gt=0"`
	StorageSize int  `json:"storage_size" binding:"required,gte=1,lte=10000"`
}

// CreateSubscription handles POST /api/v1/subscriptions.
func (h *Handler) CreateSubscription(c *gin.Context) {
	var input createSubscriptionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, "Invalid request data")
		return
	}

	user, err := h.users.FindByID(input.UserID)
	if err != nil {
		log.Println("failed to fetch user:", err)
		response.InternalError(c, "Failed to create subscription")
		return
	}
	if user == nil {
		response.NotFound(c, "User not found")
		return
	}

	plan, err := h.plans.FindByID(input.PlanID)
	if err != nil {
		log.Println("failed to fetch plan:", err)
		response.InternalError(c, "Failed to create subscription")
		return
	}
	if plan == nil {
		response.NotFound(c, "Plan not found")
		return
	}

	sub := subscriptions.Subscription{
		UserID:      input.UserID,
		PlanID:      input.PlanID,
		StorageSize: input.StorageSize,
		Status:      subscriptions.StatusPending,
	}

	if err := h.subscriptions.Create(&sub); err != nil {
		log.Println("failed to create subscription:", err)
		response.InternalError(c, "Failed to create subscription")
		return
	}

	response.Success(c, http.StatusCreated, sub, "Subscription created successfully")
}

// GetBreakdown handles GET /api/v1/subscriptions/:id/breakdown.
func (h *Handler) GetBreakdown(c *gin.Context) {
	subscriptionID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sub, err := h.subscriptions.FindByIDWithDetails(subscriptionID)
	if err != nil {
		log.Println("failed to fetch subscription:", err)
		response.InternalError(c, "Failed to fetch price breakdown")
		return
	}
	if sub == nil {
		response.NotFound(c, "Subscription not found")
		return
	}

	subOpts, err := h.subOptions.ListBySubscription(subscriptionID)
	if err != nil {
		log.Println("failed to fetch subscription options:", err)
		response.InternalError(c, "Failed to fetch price breakdown")
		return
	}

	breakdown := pricing.SubscriptionBreakdown(sub, sub.Plan, subOpts)
	response.Success(c, http.StatusOK, breakdown, "Price breakdown calculated successfully")
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.ValidationError(c, "Invalid request data")
		return 0, false
	}
	return uint(id), true
}
