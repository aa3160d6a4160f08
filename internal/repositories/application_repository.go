package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"hirelane_backend/internal/models"
)

var ErrApplicationNotFound = errors.New("application not found")

// ApplicationStats holds the per-stage counts for one job.
type ApplicationStats struct {
	Total     int64 `json:"total"`
	New       int64 `json:"new"`
	Screening int64 `json:"screening"`
	Interview int64 `json:"interview"`
	Offer     int64 `json:"offer"`
	Rejected  int64 `json:"rejected"`
}

type ApplicationRepository interface {
	Create(application *models.Application) error
	FindByID(id string) (*models.Application, error)
	ListByJob(jobID string) ([]models.Application, error)
	UpdateStage(id string, stage models.Stage, changedAt time.Time) error
	UpdateNotes(id string, notes *string) error
	Delete(id string) error
	ExistsByJobAndEmail(jobID, candidateEmail string) (bool, error)
	CountByJob(jobID string) (int64, error)
	GetStats(jobID string) (*ApplicationStats, error)

	AddHistory(entry *models.StageHistory) error
	ListHistory(applicationID string) ([]models.StageHistory, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(application *models.Application) error {
	return r.db.Create(application).Error
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var application models.Application
	err := r.db.First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) ListByJob(jobID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.
		Where("job_id = ?", jobID).
		Order("applied_at DESC").
		Find(&applications).Error
	return applications, err
}

// UpdateStage sets the stage and its timestamp in a single UPDATE so the
// pair can never diverge under concurrent writes.
func (r *ApplicationRepositoryImpl) UpdateStage(id string, stage models.Stage, changedAt time.Time) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"stage":            stage,
			"stage_changed_at": changedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) UpdateNotes(id string, notes *string) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Update("notes", notes)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Application{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) ExistsByJobAndEmail(jobID, candidateEmail string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("job_id = ? AND candidate_email = ?", jobID, candidateEmail).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) CountByJob(jobID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("job_id = ?", jobID).
		Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) GetStats(jobID string) (*ApplicationStats, error) {
	rows, err := r.db.Model(&models.Application{}).
		Select("stage, count(*) as count").
		Where("job_id = ?", jobID).
		Group("stage").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := &ApplicationStats{}
	for rows.Next() {
		var stage models.Stage
		var count int64
		if err := rows.Scan(&stage, &count); err != nil {
			return nil, err
		}
		stats.Total += count
		switch stage {
		case models.StageNew:
			stats.New += count
		case models.StageScreening:
			stats.Screening += count
		case models.StageInterview:
			stats.Interview += count
		case models.StageOffer:
			stats.Offer += count
		case models.StageRejected:
			stats.Rejected += count
		}
	}
	return stats, rows.Err()
}

func (r *ApplicationRepositoryImpl) AddHistory(entry *models.StageHistory) error {
	return r.db.Create(entry).Error
}

func (r *ApplicationRepositoryImpl) ListHistory(applicationID string) ([]models.StageHistory, error) {
	var entries []models.StageHistory
	err := r.db.
		Where("application_id = ?", applicationID).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}
