package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"hirelane_backend/internal/logger"
	"hirelane_backend/internal/models"
	"hirelane_backend/internal/repositories"
	"hirelane_backend/internal/services/dto"
	"hirelane_backend/internal/storage"
	"hirelane_backend/internal/utils"
	"hirelane_backend/pkg/apperrors"
)

// UploadConfig caps resume uploads.
type UploadConfig struct {
	MaxSize      int64
	AllowedTypes []string
}

// ApplicationService is the pipeline stage engine. Every mutation takes the
// acting employer's identity explicitly; ownership of the parent job is the
// single access-control gate, checked per operation.
//
// Concurrent stage changes on the same application race with last-write-wins
// semantics; the single UPDATE keeps stage and stage_changed_at consistent.
type ApplicationService struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	notifications   *NotificationService
	fileStore       storage.Storage
	uploadConfig    UploadConfig
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	notifications *NotificationService,
	fileStore storage.Storage,
	uploadConfig UploadConfig,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		notifications:   notifications,
		fileStore:       fileStore,
		uploadConfig:    uploadConfig,
	}
}

// Creation paths

// SubmitApplication is the public candidate-facing path. The job must be
// active, the (job, candidate email) pair must be new, and a resume, when
// present, must be a PDF/Word file within the size cap.
func (s *ApplicationService) SubmitApplication(ctx context.Context, jobID string, req *dto.SubmitApplicationRequest, resume *dto.ResumeFile) (*models.Application, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}

	if job.Status != models.JobStatusActive {
		return nil, apperrors.ErrJobNotActive
	}

	candidateEmail := strings.ToLower(strings.TrimSpace(req.CandidateEmail))

	exists, err := s.applicationRepo.ExistsByJobAndEmail(jobID, candidateEmail)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDuplicateApplication
	}

	application := &models.Application{
		JobID:          jobID,
		CandidateName:  req.CandidateName,
		CandidateEmail: candidateEmail,
		LinkedInURL:    req.LinkedInURL,
		CoverLetter:    req.CoverLetter,
	}

	if resume != nil {
		path, err := s.storeResume(ctx, resume)
		if err != nil {
			return nil, err
		}
		application.ResumePath = &path
		application.ResumeFilename = &resume.Filename
	}

	if err := s.create(application); err != nil {
		return nil, err
	}

	go s.notifications.NewApplication(job, application)

	return application, nil
}

// AddApplication is the employer-initiated manual candidate entry. Unlike
// the public path it performs no duplicate check: an employer may knowingly
// re-add a returning candidate.
func (s *ApplicationService) AddApplication(jobID string, actorEmployerID string, req *dto.AddApplicationRequest) (*models.Application, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}

	if job.EmployerID != actorEmployerID {
		return nil, apperrors.ErrNotJobOwner
	}

	application := &models.Application{
		JobID:          jobID,
		CandidateName:  req.CandidateName,
		CandidateEmail: strings.ToLower(strings.TrimSpace(req.CandidateEmail)),
		LinkedInURL:    req.LinkedInURL,
		CoverLetter:    req.CoverLetter,
		Notes:          req.Notes,
	}

	if err := s.create(application); err != nil {
		return nil, err
	}

	return application, nil
}

// Stage transitions

// UpdateStage validates and applies a stage transition. Transitions are not
// constrained to a linear order: any stage may move to any other stage.
// Repeating the current stage is an idempotent no-op that leaves
// stage_changed_at untouched, so a retried identical request cannot skew the
// time-in-stage display.
func (s *ApplicationService) UpdateStage(applicationID string, newStage string, actorEmployerID string) error {
	stage := models.Stage(newStage)
	if !stage.Valid() {
		return apperrors.ErrInvalidStage
	}

	application, err := s.authorize(applicationID, actorEmployerID)
	if err != nil {
		return err
	}

	if application.Stage == stage {
		return nil
	}

	changedAt := time.Now()
	if err := s.applicationRepo.UpdateStage(applicationID, stage, changedAt); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return err
	}

	// Audit trail is best-effort and outside the mutation's atomicity.
	go func() {
		entry := &models.StageHistory{
			ApplicationID: applicationID,
			FromStage:     application.Stage,
			ToStage:       stage,
			ActorID:       actorEmployerID,
		}
		if err := s.applicationRepo.AddHistory(entry); err != nil {
			logger.WithError(err).Warn("failed to record stage history", "application_id", applicationID)
		}
	}()

	return nil
}

// UpdateNotes edits the free-text notes, nothing else.
func (s *ApplicationService) UpdateNotes(applicationID string, notes *string, actorEmployerID string) error {
	if _, err := s.authorize(applicationID, actorEmployerID); err != nil {
		return err
	}

	if err := s.applicationRepo.UpdateNotes(applicationID, notes); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return err
	}
	return nil
}

// DeleteApplication performs the irreversible hard delete. The stored
// resume, if any, goes with it best-effort.
func (s *ApplicationService) DeleteApplication(ctx context.Context, applicationID string, actorEmployerID string) error {
	application, err := s.authorize(applicationID, actorEmployerID)
	if err != nil {
		return err
	}

	if err := s.applicationRepo.Delete(applicationID); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return err
	}

	if application.ResumePath != nil {
		if err := s.fileStore.Delete(ctx, *application.ResumePath); err != nil {
			logger.WithError(err).Warn("failed to delete resume file", "application_id", applicationID)
		}
	}

	return nil
}

// Read side

// GetApplication returns one application after the ownership check.
func (s *ApplicationService) GetApplication(applicationID string, actorEmployerID string) (*models.Application, error) {
	return s.authorize(applicationID, actorEmployerID)
}

// GetBoard groups a job's applications into kanban columns. Applications in
// the implicit initial stage land in the screening column. TimeInStage is
// recomputed on every call, never cached.
func (s *ApplicationService) GetBoard(jobID string, actorEmployerID string) (*dto.BoardResponse, error) {
	applications, err := s.listOwned(jobID, actorEmployerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	columns := make(map[models.Stage][]dto.ApplicationCard, len(models.BoardStages))
	for _, application := range applications {
		column := application.Stage.BoardColumn()
		columns[column] = append(columns[column], buildCard(&application, now))
	}

	board := &dto.BoardResponse{JobID: jobID}
	for _, stage := range models.BoardStages {
		cards := columns[stage]
		if cards == nil {
			cards = []dto.ApplicationCard{}
		}
		board.Columns = append(board.Columns, dto.BoardColumn{
			Stage:        stage,
			Applications: cards,
		})
	}
	return board, nil
}

// ListByJob returns all of a job's applications as flat cards.
func (s *ApplicationService) ListByJob(jobID string, actorEmployerID string) ([]dto.ApplicationCard, error) {
	applications, err := s.listOwned(jobID, actorEmployerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	cards := make([]dto.ApplicationCard, 0, len(applications))
	for i := range applications {
		cards = append(cards, buildCard(&applications[i], now))
	}
	return cards, nil
}

// GetStats returns the per-stage application counts for one job.
func (s *ApplicationService) GetStats(jobID string, actorEmployerID string) (*repositories.ApplicationStats, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}
	if job.EmployerID != actorEmployerID {
		return nil, apperrors.ErrNotJobOwner
	}
	return s.applicationRepo.GetStats(jobID)
}

// GetHistory returns the stage-change audit trail of one application.
func (s *ApplicationService) GetHistory(applicationID string, actorEmployerID string) ([]models.StageHistory, error) {
	if _, err := s.authorize(applicationID, actorEmployerID); err != nil {
		return nil, err
	}
	return s.applicationRepo.ListHistory(applicationID)
}

// GetResume opens the stored resume of an application for download.
func (s *ApplicationService) GetResume(ctx context.Context, applicationID string, actorEmployerID string) (io.ReadCloser, string, error) {
	application, err := s.authorize(applicationID, actorEmployerID)
	if err != nil {
		return nil, "", err
	}

	if application.ResumePath == nil {
		return nil, "", apperrors.ErrNotFound(errors.New("no resume on file"))
	}

	reader, err := s.fileStore.Get(ctx, *application.ResumePath)
	if err != nil {
		return nil, "", apperrors.ErrNotFound(err)
	}

	filename := "resume"
	if application.ResumeFilename != nil {
		filename = *application.ResumeFilename
	}
	return reader, filename, nil
}

// Helpers

// authorize loads the application and its parent job and verifies the actor
// owns the job. Failures mutate nothing.
func (s *ApplicationService) authorize(applicationID string, actorEmployerID string) (*models.Application, error) {
	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, err
	}

	job, err := s.findJob(application.JobID)
	if err != nil {
		return nil, err
	}

	if job.EmployerID != actorEmployerID {
		return nil, apperrors.ErrNotJobOwner
	}

	return application, nil
}

func (s *ApplicationService) listOwned(jobID string, actorEmployerID string) ([]models.Application, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}
	if job.EmployerID != actorEmployerID {
		return nil, apperrors.ErrNotJobOwner
	}
	return s.applicationRepo.ListByJob(jobID)
}

func (s *ApplicationService) findJob(jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

// create stamps the creation timestamps: applied_at is written once here and
// never mutated, stage_changed_at starts equal to it.
func (s *ApplicationService) create(application *models.Application) error {
	now := time.Now()
	application.Stage = models.StageNew
	application.AppliedAt = now
	application.StageChangedAt = now
	return s.applicationRepo.Create(application)
}

func (s *ApplicationService) storeResume(ctx context.Context, resume *dto.ResumeFile) (string, error) {
	if resume.Size > s.uploadConfig.MaxSize {
		return "", apperrors.ErrFileTooLarge
	}

	allowed := false
	for _, contentType := range s.uploadConfig.AllowedTypes {
		if resume.ContentType == contentType {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", apperrors.ErrInvalidFileType
	}

	path := fmt.Sprintf("resumes/%s%s", uuid.NewString(), filepath.Ext(resume.Filename))
	if err := s.fileStore.Save(ctx, path, resume.Content); err != nil {
		return "", fmt.Errorf("failed to store resume: %w", err)
	}
	return path, nil
}

func buildCard(application *models.Application, now time.Time) dto.ApplicationCard {
	return dto.ApplicationCard{
		ID:             application.ID,
		CandidateName:  application.CandidateName,
		CandidateEmail: application.CandidateEmail,
		LinkedInURL:    application.LinkedInURL,
		ResumeFilename: application.ResumeFilename,
		Notes:          application.Notes,
		Stage:          application.Stage,
		TimeInStage:    utils.TimeInStage(application.StageChangedAt, now),
		StageChangedAt: application.StageChangedAt,
		AppliedAt:      application.AppliedAt,
	}
}
