package plans

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"stash-api/internal/api/response"
	"stash-api/internal/domain/plans"
)

type PlanRepository interface {
	List() ([]plans.Plan, error)
}

type Handler struct {
	plans PlanRepository
}

func NewHandler(planRepo PlanRepository) *Handler {
	return &Handler{plans: planRepo}
}

// ListPlans handles GET /api/v1/plans.
func (h *Handler) ListPlans(c *gin.Context) {
	all, err := h.plans.List()
	if err != nil {
		log.Println("failed to fetch plans:", err)
		response.InternalError(c, "Failed to fetch plans")
		return
	}
	response.Success(c, http.StatusOK, all, "Plans fetched successfully")
}
