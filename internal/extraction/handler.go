package extraction

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtrack-backend/internal/llm"
	"jobtrack-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches extraction routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/jobs/parse", h.parse)
}

type parseRequest struct {
	Text string `json:"text"`
}

func (h *Handler) parse(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	posting, err := h.Svc.ParsePosting(c.Request.Context(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyText):
			respond.Error(c, http.StatusBadRequest, "validation_error", "text is required", nil)
		case errors.Is(err, llm.ErrMalformedOutput):
			respond.Error(c, http.StatusBadGateway, "extraction_error", "failed to parse job posting", nil)
		case errors.Is(err, llm.ErrNotConfigured):
			respond.Error(c, http.StatusServiceUnavailable, "extraction_error", "extraction is not configured", nil)
		default:
			respond.Error(c, http.StatusBadGateway, "extraction_error", "failed to parse job posting", nil)
		}
		return
	}

	respond.OK(c, posting)
}
