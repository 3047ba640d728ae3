package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"stash-api/internal/api/response"
)

const serviceName = "Stash API"

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

type healthData struct {
	Service                string `json:"service"`
	Status                 string `json:"status"`
	Timestamp              string `json:"timestamp"`
	Database               string `json:"database"`
	DatabaseResponseTimeMs int64  `json:"databaseResponseTime"`
}

// Check handles GET /health: pings the database and reports 503 when it is
// unreachable.
func (h *Handler) Check(c *gin.Context) {
	data := healthData{
		Service:   serviceName,
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database:  "healthy",
	}

	start := time.Now()
	if err := h.pingDatabase(); err != nil {
		data.Status = "degraded"
		data.Database = "unhealthy"
	}
	data.DatabaseResponseTimeMs = time.Since(start).Milliseconds()

	if data.Database != "healthy" {
		c.JSON(http.StatusServiceUnavailable, response.Envelope{
			Success: false,
			Data:    data,
			Message: "Service is degraded",
		})
		return
	}

	response.Success(c, http.StatusOK, data, "Service is healthy")
}

func (h *Handler) pingDatabase() error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
