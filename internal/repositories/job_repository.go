package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"hirelane_backend/internal/models"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter narrows the public job listing.
type JobFilter struct {
	Query          string
	Location       string
	EmploymentType models.EmploymentType
	Page           int
	PageSize       int
}

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	Update(job *models.Job) error
	UpdateStatus(jobID string, status models.JobStatus) error
	Delete(jobID string) error
	ListByEmployer(employerID string) ([]models.Job, error)
	ListByStatus(status models.JobStatus, limit, offset int) ([]models.Job, int64, error)
	SearchActive(filter JobFilter) ([]models.Job, int64, error)
	IncrementViews(jobID string) error
	CloseOlderThan(cutoff time.Time) (int64, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.Preload("Employer").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(job *models.Job) error {
	return r.db.Save(job).Error
}

func (r *JobRepositoryImpl) UpdateStatus(jobID string, status models.JobStatus) error {
	result := r.db.Model(&models.Job{}).
		Where("id = ?", jobID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(jobID string) error {
	result := r.db.Delete(&models.Job{}, "id = ?", jobID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) ListByEmployer(employerID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) ListByStatus(status models.JobStatus, limit, offset int) ([]models.Job, int64, error) {
	var jobs []models.Job
	var total int64

	query := r.db.Model(&models.Job{}).Where("status = ?", status)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Employer").
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&jobs).Error
	return jobs, total, err
}

func (r *JobRepositoryImpl) SearchActive(filter JobFilter) ([]models.Job, int64, error) {
	query := r.db.Model(&models.Job{}).Where("status = ?", models.JobStatusActive)

	if filter.Query != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Query+"%")
	}
	if filter.Location != "" {
		query = query.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.EmploymentType != "" {
		query = query.Where("employment_type = ?", filter.EmploymentType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var jobs []models.Job
	err := query.
		Preload("Employer").
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&jobs).Error
	return jobs, total, err
}

func (r *JobRepositoryImpl) IncrementViews(jobID string) error {
	return r.db.Model(&models.Job{}).
		Where("id = ?", jobID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// CloseOlderThan closes active jobs created before the cutoff. Used by the
// background worker.
func (r *JobRepositoryImpl) CloseOlderThan(cutoff time.Time) (int64, error) {
	result := r.db.Model(&models.Job{}).
		Where("status = ? AND created_at < ?", models.JobStatusActive, cutoff).
		Updates(map[string]interface{}{
			"status":     models.JobStatusClosed,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}
