package calculate

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"stash-api/internal/api/response"
	"stash-api/internal/domain/plans"
	"stash-api/internal/domain/pricing"
)

type PlanRepository interface {
	FindByID(id uint) (*plans.Plan, error)
}

type Handler struct {
	plans PlanRepository
}

func NewHandler(planRepo PlanRepository) *Handler {
	return &Handler{plans: planRepo}
}

// Query parameters arrive as strings; gin coerces them during binding.
type calculateQuery struct {
	PlanID      uint `form:"planId"      binding:"required,gt=0"`
	StorageSize int  `form:"storageSize" binding:"required,gte=1,lte=10000"`
}

// Calculate handles GET /api/v1/calculate?planId=&storageSize=.
func (h *Handler) Calculate(c *gin.Context) {
	var query calculateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ValidationError(c, "Invalid request data")
		return
	}

	plan, err := h.plans.FindByID(query.PlanID)
	if err != nil {
		log.Println("failed to fetch plan:", err)
		response.InternalError(c, "Failed to calculate price")
		return
	}
	if plan == nil {
		response.NotFound(c, "Plan not found")
		return
	}

	quote := pricing.PlanQuote(plan, query.StorageSize)
	response.Success(c, http.StatusOK, quote, "Price calculated successfully")
}
