package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hirelane_backend/internal/logger"
	"hirelane_backend/internal/services"
	"hirelane_backend/internal/services/dto"
	"hirelane_backend/pkg/apperrors"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService *services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

// Submit is the public candidate submission endpoint. The form fields and
// the optional resume arrive as one multipart request.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req dto.SubmitApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	var resume *dto.ResumeFile
	fileHeader, err := c.FormFile("resume")
	if err == nil && fileHeader != nil {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			logger.CtxWithError(c.Request.Context(), "Failed to open uploaded resume", openErr)
			apperrors.HandleError(c, apperrors.NewBadRequestError("Could not read uploaded file"))
			return
		}
		defer file.Close()

		resume = &dto.ResumeFile{
			Filename:    fileHeader.Filename,
			Size:        fileHeader.Size,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Content:     file,
		}
	}

	application, err := h.applicationService.SubmitApplication(c.Request.Context(), c.Param("jobId"), &req, resume)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

// Add is the employer's manual candidate entry.
func (h *ApplicationHandler) Add(c *gin.Context) {
	employerID, ok := h.GetActorID(c)
	if !ok {
		return
	}

	var req dto.AddApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, err := h.applicationService.AddApplication(c.Param("jobId"), employerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	employerID, ok := h.GetActorID(c)
	if !ok {
		return
	}

	application, err := h.applicationService.GetApplication(c.Param("applicationId"), employerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}

// Board serves the kanban view of one job's applications.
func (h *ApplicationHandler) Board(c *gin.Context) {
	employerID, ok := h.GetActorID(c)
	if !ok {
		return
	}

	board, err := h.applicationService.GetBoard(c.Param("jobId"), employerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	employerID, ok := h.GetActorID(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.ListByJob(c.Param("jobId"), employerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": applications,
		"total":        len(applications),
	})
}

func (h *ApplicationHandler) Stats(c *gin.Context) {
	employerID, ok := h.GetActorID(c)
	if !ok {
		return
	}

	stats, err := h.applicationService.GetStats(c.Param("jobId"), employerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// UpdateStage applies a stage transition. A repeat of the current stage
// still returns 200 so clients can retry safely.
func (h *ApplicationHandler) UpdateStage(c *gin.Context) {
	employerID, ok := h.GetActorID(c)
	if !ok {
		return
	}

	var req dto.UpdateStageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.applicationService.UpdateStage(c.Param("applicationId"), req.Stage, employerID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stage updated"})
}

func (h *ApplicationHandler) UpdateNotes(c *gin.Context) {
	employerID, ok := h.GetActorID(c)
	if !ok {
		return
	}

	var req dto.UpdateNotesRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.applicationService.UpdateNotes(c.Param("applicationId"), req.Notes, employerID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notes updated"})
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	employerID, ok := h.GetActorID(c)
	if !ok {
		return
	}

	if err := h.applicationService.DeleteApplication(c.Request.Context(), c.Param("applicationId"), employerID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application deleted"})
}

func (h *ApplicationHandler) History(c *gin.Context) {
	employerID, ok := h.GetActorID(c)
	if !ok {
		return
	}

	history, err := h.applicationService.GetHistory(c.Param("applicationId"), employerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}
