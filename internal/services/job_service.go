package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"

	"hirelane_backend/internal/models"
	"hirelane_backend/internal/repositories"
	"hirelane_backend/internal/services/dto"
	"hirelane_backend/pkg/apperrors"
)

type JobService struct {
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository
	notifications   *NotificationService
}

func NewJobService(
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
	notifications *NotificationService,
) *JobService {
	return &JobService{
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		notifications:   notifications,
	}
}

// Job operations

// CreateJob creates a posting in pending status, awaiting admin approval.
func (s *JobService) CreateJob(employerID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	if req.SalaryMin != nil && req.SalaryMax != nil && *req.SalaryMax < *req.SalaryMin {
		return nil, apperrors.NewBadRequestError("maximum salary cannot be less than minimum salary")
	}

	tagsJSON, err := json.Marshal(req.Tags)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tags: %w", err)
	}

	job := &models.Job{
		EmployerID:     employerID,
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		EmploymentType: models.EmploymentType(req.EmploymentType),
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		Tags:           datatypes.JSON(tagsJSON),
		Status:         models.JobStatusPending,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, err
	}

	return s.buildJobResponse(job), nil
}

// GetJob returns a single posting. Non-active postings are visible to their
// owner only. Views are counted for non-owner reads.
func (s *JobService) GetJob(jobID string, requesterID string) (*dto.JobResponse, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}

	isOwner := requesterID != "" && requesterID == job.EmployerID

	if job.Status != models.JobStatusActive && !isOwner {
		return nil, apperrors.ErrJobNotFound
	}

	if !isOwner {
		go s.jobRepo.IncrementViews(jobID)
	}

	return s.buildJobResponse(job), nil
}

// UpdateJob applies a partial update. Allowed while the posting is pending
// or active; ownership is required.
func (s *JobService) UpdateJob(jobID string, requesterID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}

	if job.EmployerID != requesterID {
		return nil, apperrors.ErrNotJobOwner
	}

	if job.Status != models.JobStatusPending && job.Status != models.JobStatusActive {
		return nil, apperrors.ErrInvalidJobStatus
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.EmploymentType != nil {
		job.EmploymentType = models.EmploymentType(*req.EmploymentType)
	}
	if req.SalaryMin != nil {
		job.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = req.SalaryMax
	}
	if req.Tags != nil {
		tagsJSON, err := json.Marshal(req.Tags)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal tags: %w", err)
		}
		job.Tags = datatypes.JSON(tagsJSON)
	}

	if job.SalaryMin != nil && job.SalaryMax != nil && *job.SalaryMax < *job.SalaryMin {
		return nil, apperrors.NewBadRequestError("maximum salary cannot be less than minimum salary")
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, err
	}

	return s.buildJobResponse(job), nil
}

// CloseJob moves an active posting to closed.
func (s *JobService) CloseJob(jobID string, requesterID string) error {
	job, err := s.findJob(jobID)
	if err != nil {
		return err
	}

	if job.EmployerID != requesterID {
		return apperrors.ErrNotJobOwner
	}

	if job.Status != models.JobStatusActive {
		return apperrors.ErrInvalidJobStatus
	}

	return s.jobRepo.UpdateStatus(jobID, models.JobStatusClosed)
}

// DeleteJob removes a posting that never went live.
func (s *JobService) DeleteJob(jobID string, requesterID string) error {
	job, err := s.findJob(jobID)
	if err != nil {
		return err
	}

	if job.EmployerID != requesterID {
		return apperrors.ErrNotJobOwner
	}

	if job.Status != models.JobStatusPending {
		return apperrors.ErrInvalidJobStatus
	}

	return s.jobRepo.Delete(jobID)
}

// GetEmployerJobs lists the employer's own postings with application counts.
func (s *JobService) GetEmployerJobs(employerID string) ([]*dto.JobResponse, error) {
	jobs, err := s.jobRepo.ListByEmployer(employerID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		response := s.buildJobResponse(&jobs[i])
		if count, err := s.applicationRepo.CountByJob(jobs[i].ID); err == nil {
			response.ApplicationCount = &count
		}
		responses = append(responses, response)
	}
	return responses, nil
}

// SearchJobs lists active postings for the public board.
func (s *JobService) SearchJobs(criteria dto.SearchJobsRequest) ([]*dto.JobResponse, int64, error) {
	jobs, total, err := s.jobRepo.SearchActive(repositories.JobFilter{
		Query:          criteria.Query,
		Location:       criteria.Location,
		EmploymentType: models.EmploymentType(criteria.EmploymentType),
		Page:           criteria.Page,
		PageSize:       criteria.PageSize,
	})
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, s.buildJobResponse(&jobs[i]))
	}
	return responses, total, nil
}

// Admin operations

// ListPendingJobs returns postings awaiting moderation, oldest first.
func (s *JobService) ListPendingJobs(limit, offset int) ([]*dto.JobResponse, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	jobs, total, err := s.jobRepo.ListByStatus(models.JobStatusPending, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, s.buildJobResponse(&jobs[i]))
	}
	return responses, total, nil
}

// ApproveJob moves a pending posting to active and notifies the employer.
func (s *JobService) ApproveJob(jobID string) error {
	job, err := s.findJob(jobID)
	if err != nil {
		return err
	}

	if job.Status != models.JobStatusPending {
		return apperrors.ErrInvalidJobStatus
	}

	if err := s.jobRepo.UpdateStatus(jobID, models.JobStatusActive); err != nil {
		return err
	}

	go s.notifications.JobDecision(job, true, "")

	return nil
}

// RejectJob moves a pending posting to rejected and notifies the employer.
func (s *JobService) RejectJob(jobID string, reason string) error {
	job, err := s.findJob(jobID)
	if err != nil {
		return err
	}

	if job.Status != models.JobStatusPending {
		return apperrors.ErrInvalidJobStatus
	}

	if err := s.jobRepo.UpdateStatus(jobID, models.JobStatusRejected); err != nil {
		return err
	}

	go s.notifications.JobDecision(job, false, reason)

	return nil
}

// Helpers

func (s *JobService) findJob(jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

func (s *JobService) buildJobResponse(job *models.Job) *dto.JobResponse {
	var tags []string
	if len(job.Tags) > 0 {
		_ = json.Unmarshal(job.Tags, &tags)
	}

	response := &dto.JobResponse{
		ID:             job.ID,
		EmployerID:     job.EmployerID,
		Title:          job.Title,
		Description:    job.Description,
		Location:       job.Location,
		EmploymentType: job.EmploymentType,
		SalaryMin:      job.SalaryMin,
		SalaryMax:      job.SalaryMax,
		Tags:           tags,
		Status:         job.Status,
		Views:          job.Views,
		CreatedAt:      job.CreatedAt,
		UpdatedAt:      job.UpdatedAt,
	}

	if job.Employer != nil {
		response.CompanyName = job.Employer.CompanyName
	}

	return response
}
