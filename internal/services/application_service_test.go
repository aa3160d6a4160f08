package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirelane_backend/internal/models"
	"hirelane_backend/internal/services/dto"
	"hirelane_backend/pkg/apperrors"
)

func newTestApplicationService() (*ApplicationService, *fakeApplicationRepo, *fakeJobRepo, *memStorage) {
	applicationRepo := newFakeApplicationRepo()
	jobRepo := newFakeJobRepo()
	notifications, _ := newTestNotificationService()
	store := newMemStorage()

	svc := NewApplicationService(applicationRepo, jobRepo, notifications, store, UploadConfig{
		MaxSize:      1024 * 1024,
		AllowedTypes: []string{"application/pdf"},
	})
	return svc, applicationRepo, jobRepo, store
}

func seedJob(t *testing.T, jobRepo *fakeJobRepo, employerID string, status models.JobStatus) *models.Job {
	t.Helper()
	job := &models.Job{
		EmployerID:     employerID,
		Title:          "Backend Engineer",
		Description:    "Go services and data plumbing",
		Location:       "Berlin",
		EmploymentType: models.EmploymentFullTime,
		Status:         status,
	}
	require.NoError(t, jobRepo.Create(job))
	return job
}

func seedApplication(t *testing.T, svc *ApplicationService, jobID, employerID string) *models.Application {
	t.Helper()
	application, err := svc.AddApplication(jobID, employerID, &dto.AddApplicationRequest{
		CandidateName:  "Dana Fields",
		CandidateEmail: "dana@example.com",
	})
	require.NoError(t, err)
	return application
}

func TestUpdateStage_MovesThroughPipeline(t *testing.T) {
	svc, _, jobRepo, _ := newTestApplicationService()
	job := seedJob(t, jobRepo, "employer-1", models.JobStatusActive)
	application := seedApplication(t, svc, job.ID, "employer-1")

	for _, stage := range []models.Stage{
		models.StageScreening,
		models.StageInterview,
		models.StageOffer,
		models.StageRejected,
	} {
		before := time.Now()
		err := svc.UpdateStage(application.ID, string(stage), "employer-1")
		require.NoError(t, err)

		stored, err := svc.GetApplication(application.ID, "employer-1")
		require.NoError(t, err)
		assert.Equal(t, stage, stored.Stage)
		assert.False(t, stored.StageChangedAt.Before(before), "stage_changed_at must move with the transition")
	}
}

func TestUpdateStage_BackwardsTransitionAllowed(t *testing.T) {
	svc, _, jobRepo, _ := newTestApplicationService()
	job := seedJob(t, jobRepo, "employer-1", models.JobStatusActive)
	application := seedApplication(t, svc, job.ID, "employer-1")

	require.NoError(t, svc.UpdateStage(application.ID, string(models.StageOffer), "employer-1"))
	require.NoError(t, svc.UpdateStage(application.ID, string(models.StageScreening), "employer-1"))

	stored, err := svc.GetApplication(application.ID, "employer-1")
	require.NoError(t, err)
	assert.Equal(t, models.StageScreening, stored.Stage)
}

func TestUpdateStage_SameStageIsNoOp(t *testing.T) {
	svc, _, jobRepo, _ := newTestApplicationService()
	job := seedJob(t, jobRepo, "employer-1", models.JobStatusActive)
	application := seedApplication(t, svc, job.ID, "employer-1")

	require.NoError(t, svc.UpdateStage(application.ID, string(models.StageInterview), "employer-1"))
	stored, err := svc.GetApplication(application.ID, "employer-1")
	require.NoError(t, err)
	firstChange := stored.StageChangedAt

	time.Sleep(5 * time.Millisecond)

	// A retried identical request succeeds without touching the timestamp.
	require.NoError(t, svc.UpdateStage(application.ID, string(models.StageInterview), "employer-1"))
	stored, err = svc.GetApplication(application.ID, "employer-1")
	require.NoError(t, err)
	assert.True(t, stored.StageChangedAt.Equal(firstChange), "no-op must not move stage_changed_at")
}

func TestUpdateStage_InvalidStageRejected(t *testing.T) {
	svc, _, jobRepo, _ := newTestApplicationService()
	job := seedJob(t, jobRepo, "employer-1", models.JobStatusActive)
	application := seedApplication(t, svc, job.ID, "employer-1")

	err := svc.UpdateStage(application.ID, "archived", "employer-1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStage)

	stored, getErr := svc.GetApplication(application.ID, "employer-1")
	require.NoError(t, getErr)
	assert.Equal(t, models.StageNew, stored.Stage, "rejected transition must not mutate")
}

func TestUpdateStage_NotOwnerForbidden(t *testing.T) {
	svc, _, jobRepo, _ := newTestApplicationService()
	job := seedJob(t, jobRepo, "employer-1", models.JobStatusActive)
	application := seedApplication(t, svc, job.ID, "employer-1")

	err := svc.UpdateStage(application.ID, string(models.StageOffer), "employer-2")
	assert.ErrorIs(t, err, apperrors.ErrNotJobOwner)

	stored, getErr := svc.GetApplication(application.ID, "employer-1")
	require.NoError(t, getErr)
	assert.Equal(t, models.StageNew, stored.Stage)
}

func TestUpdateStage_UnknownApplication(t *testing.T) {
	svc, _, _, _ := newTestApplicationService()

	err := svc.UpdateStage("no-such-id", string(models.StageOffer), "employer-1")
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
}

func TestUpdateStage_RecordsHistory(t *testing.T) {
	svc, applicationRepo, jobRepo, _ := newTestApplicationService()
	job := seedJob(t, jobRepo, "employer-1", models.JobStatusActive)
	application := seedApplication(t, svc, job.ID, "employer-1")

	require.NoError(t, svc.UpdateStage(application.ID, string(models.StageScreening), "employer-1"))

	// History is written asynchronously.
	assert.Eventually(t, func() bool {
		history, err := applicationRepo.ListHistory(application.ID)
		return err == nil && len(history) == 1
	}, time.Second, 10*time.Millisecond)

	history, err := applicationRepo.ListHistory(application.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageNew, history[0].FromStage)
	assert.Equal(t, models.StageScreening, history[0].ToStage)
	assert.Equal(t, "employer-1", history[0].ActorID)
}

func TestSubmitApplication_HappyPath(t *testing.T) {
	svc, _, jobRepo, store := newTestApplicationService()
	job := seedJob(t, jobRepo, "employer-1", models.JobStatusActive)

	application, err := svc.SubmitApplication(context.Background(), job.ID, &dto.SubmitApplicationRequest{
		CandidateName:  "Noor Haddad",
		CandidateEmail: "Noor@Example.com",
	}, &dto.ResumeFile{
		Filename:    "cv.pdf",
		Size:        128,
		ContentType: "application/pdf",
		Content:     strings.NewReader("%PDF-1.4 fake"),
	})
	require.NoError(t, err)

	assert.Equal(t, models.StageNew, application.Stage)
	assert.Equal(t, "noor@example.com", application.CandidateEmail, "email is stored lowercased")
	assert.True(t, application.StageChangedAt.Equal(application.AppliedAt))
	require.NotNil(t, application.ResumePath)

	exists, err := store.Exists(context.Background(), *application.ResumePath)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestSubmitApplication_DuplicateRejected(t *testing.T) {
	svc, applicationRepo, jobRepo, _ := newTestApplicationService()
	job := seedJob(t, jobRepo, "employer-1", models.JobStatusActive)

	req := &dto.SubmitApplicationRequest{
		CandidateName:  "Noor Haddad",
		CandidateEmail: "noor@example.com",
	}
	_, err := svc.SubmitApplication(context.Background(), job.ID, req, nil)
	require.NoError(t, err)

	_, err = svc.SubmitApplication(context.Background(), job.ID, req, nil)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateApplication)

	count, err := applicationRepo.CountByJob(job.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count, "duplicate submission must not create a second row")
}

func TestSubmitApplication_InactiveJobRejected(t *testing.T) {
	svc, _, jobRepo, _ := newTestApplicationService()

	for _, status := range []models.JobStatus{models.JobStatusPending, models.JobStatusClosed, models.JobStatusRejected} {
		job := seedJob(t, jobRepo, "employer-1", status)
		_, err := svc.SubmitApplication(context.Background(), job.ID, &dto.SubmitApplicationRequest{
			CandidateName:  "Noor Haddad",
			CandidateEmail: "noor@example.com",
		}, nil)
		assert.ErrorIs(t, err, apperrors.ErrJobNotActive, "status %s must not accept submissions", status)
	}
}

func TestSubmitApplication_ResumeValidation(t *testing.T) {
	svc, _, jobRepo, _ := newTestApplicationService()
	job := seedJob(t, jobRepo, "employer-1", models.JobStatusActive)

	req := &dto.SubmitApplicationRequest{
		CandidateName:  "Noor Haddad",
		CandidateEmail: "noor@example.com",
	}

	_, err := svc.SubmitApplication(context.Background(), job.ID, req, &dto.ResumeFile{
		Filename:    "cv.pdf",
		Size:        10 * 1024 * 1024,
		ContentType: "application/pdf",
		Content:     strings.NewReader("big"),
	})
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)

	_, err = svc.SubmitApplication(context.Background(), job.ID, req, &dto.ResumeFile{
		Filename:    "cv.exe",
		Size:        128,
		ContentType: "application/octet-stream",
		Content:     strings.NewReader("MZ"),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)
}

func TestAddApplication_SkipsDuplicateCheck(t *testing.T) {
	svc, applicationRepo, jobRepo, _ := newTestApplicationService()
	job := seedJob(t, jobRepo, "employer-1", models.JobStatusActive)

	req := &dto.AddApplicationRequest{
		CandidateName:  "Dana Fields",
		CandidateEmail: "dana@example.com",
	}
	_, err := svc.AddApplication(job.ID, "employer-1", req)
	require.NoError(t, err)

	// The manual path deliberately allows re-adding a known candidate.
	_, err = svc.AddApplication(job.ID, "employer-1", req)
	require.NoError(t, err)

	count, err := applicationRepo.CountByJob(job.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestAddApplication_NotOwnerForbidden(t *testing.T) {
	svc, _, jobRepo, _ := newTestApplicationService()
	job := seedJob(t, jobRepo, "employer-1", models.JobStatusActive)

	_, err := svc.AddApplication(job.ID, "employer-2", &dto.AddApplicationRequest{
		CandidateName:  "Dana Fields",
		CandidateEmail: "dana@example.com",
	})
	assert.ErrorIs(t, err, apperrors.ErrNotJobOwner)
}

func TestDeleteApplication_HardDelete(t *testing.T) {
	svc, _, jobRepo, _ := newTestApplicationService()
	job := seedJob(t, jobRepo, "employer-1", models.JobStatusActive)
	application := seedApplication(t, svc, job.ID, "employer-1")

	require.NoError(t, svc.DeleteApplication(context.Background(), application.ID, "employer-1"))

	_, err := svc.GetApplication(application.ID, "employer-1")
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)

	err = svc.DeleteApplication(context.Background(), application.ID, "employer-1")
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
}

func TestDeleteApplication_RemovesStoredResume(t *testing.T) {
	svc, _, jobRepo, store := newTestApplicationService()
	job := seedJob(t, jobRepo, "employer-1", models.JobStatusActive)

	application, err := svc.SubmitApplication(context.Background(), job.ID, &dto.SubmitApplicationRequest{
		CandidateName:  "Noor Haddad",
		CandidateEmail: "noor@example.com",
	}, &dto.ResumeFile{
		Filename:    "cv.pdf",
		Size:        128,
		ContentType: "application/pdf",
		Content:     strings.NewReader("%PDF-1.4 fake"),
	})
	require.NoError(t, err)
	resumePath := *application.ResumePath

	require.NoError(t, svc.DeleteApplication(context.Background(), application.ID, "employer-1"))

	exists, err := store.Exists(context.Background(), resumePath)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGetBoard_GroupsNewIntoScreening(t *testing.T) {
	svc, _, jobRepo, _ := newTestApplicationService()
	job := seedJob(t, jobRepo, "employer-1", models.JobStatusActive)

	fresh := seedApplication(t, svc, job.ID, "employer-1")

	interviewing, err := svc.AddApplication(job.ID, "employer-1", &dto.AddApplicationRequest{
		CandidateName:  "Ira Sokolov",
		CandidateEmail: "ira@example.com",
	})
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStage(interviewing.ID, string(models.StageInterview), "employer-1"))

	board, err := svc.GetBoard(job.ID, "employer-1")
	require.NoError(t, err)

	require.Len(t, board.Columns, len(models.BoardStages))
	columns := make(map[models.Stage][]dto.ApplicationCard)
	for _, column := range board.Columns {
		columns[column.Stage] = column.Applications
	}

	require.Len(t, columns[models.StageScreening], 1)
	assert.Equal(t, fresh.ID, columns[models.StageScreening][0].ID)
	assert.Equal(t, models.StageNew, columns[models.StageScreening][0].Stage, "card keeps its real stage")

	require.Len(t, columns[models.StageInterview], 1)
	assert.Equal(t, interviewing.ID, columns[models.StageInterview][0].ID)

	assert.Empty(t, columns[models.StageOffer])
	assert.Empty(t, columns[models.StageRejected])
}

func TestGetBoard_NotOwnerForbidden(t *testing.T) {
	svc, _, jobRepo, _ := newTestApplicationService()
	job := seedJob(t, jobRepo, "employer-1", models.JobStatusActive)

	_, err := svc.GetBoard(job.ID, "employer-2")
	assert.ErrorIs(t, err, apperrors.ErrNotJobOwner)
}

func TestGetStats_CountsPerStage(t *testing.T) {
	svc, _, jobRepo, _ := newTestApplicationService()
	job := seedJob(t, jobRepo, "employer-1", models.JobStatusActive)

	seedApplication(t, svc, job.ID, "employer-1")
	offered, err := svc.AddApplication(job.ID, "employer-1", &dto.AddApplicationRequest{
		CandidateName:  "Ira Sokolov",
		CandidateEmail: "ira@example.com",
	})
	require.NoError(t, err)
	require.NoError(t, svc.UpdateStage(offered.ID, string(models.StageOffer), "employer-1"))

	stats, err := svc.GetStats(job.ID, "employer-1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Total)
	assert.EqualValues(t, 1, stats.New)
	assert.EqualValues(t, 1, stats.Offer)
}

func TestUpdateNotes_OwnerOnly(t *testing.T) {
	svc, _, jobRepo, _ := newTestApplicationService()
	job := seedJob(t, jobRepo, "employer-1", models.JobStatusActive)
	application := seedApplication(t, svc, job.ID, "employer-1")

	notes := "strong take-home, move fast"
	require.NoError(t, svc.UpdateNotes(application.ID, &notes, "employer-1"))

	stored, err := svc.GetApplication(application.ID, "employer-1")
	require.NoError(t, err)
	require.NotNil(t, stored.Notes)
	assert.Equal(t, notes, *stored.Notes)

	err = svc.UpdateNotes(application.ID, &notes, "employer-2")
	assert.ErrorIs(t, err, apperrors.ErrNotJobOwner)
}
