package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hirelane_backend/internal/services"
	"hirelane_backend/internal/services/dto"
	"hirelane_backend/pkg/contextkeys"
)

type JobHandler struct {
	*BaseHandler
	jobService *services.JobService
}

func NewJobHandler(base *BaseHandler, jobService *services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

// Search is the public listing. Only active jobs are visible here.
func (h *JobHandler) Search(c *gin.Context) {
	var req dto.SearchJobsRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}

	req.Page, req.PageSize = ParsePagination(c)

	jobs, total, err := h.jobService.SearchJobs(req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"total": total,
		"page":  req.Page,
	})
}

// Get serves both the public detail view and the owner's own view. The
// requester id is empty for anonymous visitors; the service decides what a
// non-owner may see.
func (h *JobHandler) Get(c *gin.Context) {
	requesterID := ""
	if val, exists := c.Get(string(contextkeys.EmployerIDKey)); exists {
		if id, ok := val.(string); ok {
			requesterID = id
		}
	}

	job, err := h.jobService.GetJob(c.Param("jobId"), requesterID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Create(c *gin.Context) {
	employerID, ok := h.GetActorID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(employerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	employerID, ok := h.GetActorID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJob(c.Param("jobId"), employerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Close(c *gin.Context) {
	employerID, ok := h.GetActorID(c)
	if !ok {
		return
	}

	if err := h.jobService.CloseJob(c.Param("jobId"), employerID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job closed"})
}

func (h *JobHandler) Delete(c *gin.Context) {
	employerID, ok := h.GetActorID(c)
	if !ok {
		return
	}

	if err := h.jobService.DeleteJob(c.Param("jobId"), employerID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

func (h *JobHandler) My(c *gin.Context) {
	employerID, ok := h.GetActorID(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.GetEmployerJobs(employerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}
