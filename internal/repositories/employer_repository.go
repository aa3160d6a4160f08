package repositories

import (
	"errors"

	"gorm.io/gorm"

	"hirelane_backend/internal/models"
)

var (
	ErrEmployerNotFound      = errors.New("employer not found")
	ErrEmployerAlreadyExists = errors.New("employer already exists")
)

type EmployerRepository interface {
	Create(employer *models.Employer) error
	FindByID(id string) (*models.Employer, error)
	FindByEmail(email string) (*models.Employer, error)
	Update(employer *models.Employer) error
	UpdateStatus(employerID string, status models.EmployerStatus) error
	CountByRole(role models.EmployerRole) (int64, error)
}

type EmployerRepositoryImpl struct {
	db *gorm.DB
}

func NewEmployerRepository(db *gorm.DB) EmployerRepository {
	return &EmployerRepositoryImpl{db: db}
}

func (r *EmployerRepositoryImpl) Create(employer *models.Employer) error {
	err := r.db.Create(employer).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrEmployerAlreadyExists
	}
	return err
}

func (r *EmployerRepositoryImpl) FindByID(id string) (*models.Employer, error) {
	var employer models.Employer
	err := r.db.First(&employer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployerNotFound
		}
		return nil, err
	}
	return &employer, nil
}

func (r *EmployerRepositoryImpl) FindByEmail(email string) (*models.Employer, error) {
	var employer models.Employer
	err := r.db.First(&employer, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployerNotFound
		}
		return nil, err
	}
	return &employer, nil
}

func (r *EmployerRepositoryImpl) Update(employer *models.Employer) error {
	return r.db.Save(employer).Error
}

func (r *EmployerRepositoryImpl) UpdateStatus(employerID string, status models.EmployerStatus) error {
	result := r.db.Model(&models.Employer{}).
		Where("id = ?", employerID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEmployerNotFound
	}
	return nil
}

func (r *EmployerRepositoryImpl) CountByRole(role models.EmployerRole) (int64, error) {
	var count int64
	err := r.db.Model(&models.Employer{}).Where("role = ?", role).Count(&count).Error
	return count, err
}
