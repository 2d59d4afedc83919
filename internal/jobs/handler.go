package jobs

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jobtrack-backend/internal/shared/server/middleware"
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

// RegisterRoutes attaches job routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/jobs", h.create)
	rg.GET("/jobs", h.list)
	rg.GET("/jobs/:id", h.get)
	rg.PATCH("/jobs/:id", h.patch)
	rg.DELETE("/jobs/:id", h.remove)
}

type createRequest struct {
	Company         string `json:"company"`
	Role            string `json:"role"`
	Status          string `json:"status"`
	URL             string `json:"url"`
	Salary          string `json:"salary"`
	Notes           string `json:"notes"`
	ExperienceYears string `json:"experienceYears"`
	Field           string `json:"field"`
}

// patchRequest deliberately omits id, ownerId, and appliedDate; clients
// sending them have no effect.
type patchRequest struct {
	Company         *string `json:"company"`
	Role            *string `json:"role"`
	Status          *Status `json:"status"`
	URL             *string `json:"url"`
	Salary          *string `json:"salary"`
	Notes           *string `json:"notes"`
	ExperienceYears *string `json:"experienceYears"`
	Field           *string `json:"field"`
}

type jobResponse struct {
	ID              string    `json:"id"`
	Company         string    `json:"company"`
	Role            string    `json:"role"`
	Status          Status    `json:"status"`
	URL             string    `json:"url"`
	Salary          string    `json:"salary"`
	Notes           string    `json:"notes"`
	ExperienceYears string    `json:"experienceYears"`
	Field           string    `json:"field"`
	AppliedDate     time.Time `json:"appliedDate"`
	UpdatedDate     time.Time `json:"updatedDate"`
}

func toResponse(job Job) jobResponse {
	return jobResponse{
		ID:              job.ID,
		Company:         job.Company,
		Role:            job.Role,
		Status:          job.Status,
		URL:             job.URL,
		Salary:          job.Salary,
		Notes:           job.Notes,
		ExperienceYears: job.ExperienceYears,
		Field:           job.Field,
		AppliedDate:     job.AppliedDate,
		UpdatedDate:     job.UpdatedDate,
	}
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	job, err := h.Svc.Create(c.Request.Context(), userID, CreateInput{
		Company:         req.Company,
		Role:            req.Role,
		Status:          Status(req.Status),
		URL:             req.URL,
		Salary:          req.Salary,
		Notes:           req.Notes,
		ExperienceYears: req.ExperienceYears,
		Field:           req.Field,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create job", nil)
		}
		return
	}

	c.Set("jobId", job.ID)
	respond.JSON(c, http.StatusCreated, toResponse(job))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	items, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list jobs", nil)
		return
	}

	resp := make([]jobResponse, 0, len(items))
	for _, job := range items {
		resp = append(resp, toResponse(job))
	}
	respond.OK(c, resp)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	c.Set("jobId", id)

	job, err := h.Svc.Get(c.Request.Context(), userID, id)
	if err != nil {
		h.respondError(c, err, "failed to fetch job")
		return
	}
	respond.OK(c, toResponse(job))
}

func (h *Handler) patch(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	c.Set("jobId", id)

	var req patchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	job, err := h.Svc.Patch(c.Request.Context(), userID, id, PatchInput{
		Company:         req.Company,
		Role:            req.Role,
		Status:          req.Status,
		URL:             req.URL,
		Salary:          req.Salary,
		Notes:           req.Notes,
		ExperienceYears: req.ExperienceYears,
		Field:           req.Field,
	})
	if err != nil {
		h.respondError(c, err, "failed to update job")
		return
	}
	respond.OK(c, toResponse(job))
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")
	c.Set("jobId", id)

	if err := h.Svc.Delete(c.Request.Context(), userID, id); err != nil {
		h.respondError(c, err, "failed to delete job")
		return
	}
	respond.OK(c, gin.H{"deleted": true})
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "job belongs to another user", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
