package options

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"stash-api/internal/api/response"
	"stash-api/internal/domain/options"
)

type OptionRepository interface {
	List() ([]options.Option, error)
}

type Handler struct {
	options OptionRepository
}

func NewHandler(optionRepo OptionRepository) *Handler {
	return &Handler{options: optionRepo}
}

// ListOptions handles GET /api/v1/options.
func (h *Handler) ListOptions(c *gin.Context) {
	all, err := h.options.List()
	if err != nil {
		log.Println("failed to fetch options:", err)
		response.InternalError(c, "Failed to fetch options")
		return
	}
	response.Success(c, http.StatusOK, all, "Options fetched successfully")
}
