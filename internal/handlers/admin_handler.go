package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hirelane_backend/internal/services"
	"hirelane_backend/internal/services/dto"
)

// AdminHandler covers the moderation surface. Route-level role checks keep
// non-admins out before any of these run.
type AdminHandler struct {
	*BaseHandler
	jobService *services.JobService
}

func NewAdminHandler(base *BaseHandler, jobService *services.JobService) *AdminHandler {
	return &AdminHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *AdminHandler) PendingJobs(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	jobs, total, err := h.jobService.ListPendingJobs(pageSize, (page-1)*pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"total": total,
		"page":  page,
	})
}

func (h *AdminHandler) ApproveJob(c *gin.Context) {
	if err := h.jobService.ApproveJob(c.Param("jobId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job approved"})
}

func (h *AdminHandler) RejectJob(c *gin.Context) {
	var req dto.RejectJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.jobService.RejectJob(c.Param("jobId"), req.Reason); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job rejected"})
}
