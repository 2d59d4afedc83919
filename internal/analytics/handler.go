package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtrack-backend/internal/jobs"
	"jobtrack-backend/internal/shared/server/middleware"
	"jobtrack-backend/internal/shared/server/respond"
)

// Handler serves derived analytics over the caller's current record set.
type Handler struct {
	Jobs *jobs.Service
}

// NewHandler constructs a Handler.
func NewHandler(jobsSvc *jobs.Service) *Handler {
	return &Handler{Jobs: jobsSvc}
}

// RegisterRoutes attaches analytics routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/analytics/summary", h.summary)
}

func (h *Handler) summary(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	snapshot, err := h.Jobs.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load records", nil)
		return
	}

	respond.OK(c, Compute(snapshot))
}
