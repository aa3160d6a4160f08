package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"hirelane_backend/internal/logger"
	"hirelane_backend/internal/services"
)

// FileHandler streams stored resumes to the owning employer. Files are never
// served by raw storage path; access always goes through the application's
// ownership check.
type FileHandler struct {
	*BaseHandler
	applicationService *services.ApplicationService
}

func NewFileHandler(base *BaseHandler, applicationService *services.ApplicationService) *FileHandler {
	return &FileHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *FileHandler) DownloadResume(c *gin.Context) {
	employerID, ok := h.GetActorID(c)
	if !ok {
		return
	}

	reader, filename, err := h.applicationService.GetResume(c.Request.Context(), c.Param("applicationId"), employerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, reader); err != nil {
		logger.CtxWithError(c.Request.Context(), "Failed to stream resume", err)
	}
}
