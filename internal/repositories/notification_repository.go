package repositories

import (
	"errors"

	"gorm.io/gorm"

	"hirelane_backend/internal/models"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository interface {
	Create(notification *models.Notification) error
	ListByEmployer(employerID string, limit int) ([]models.Notification, error)
	CountUnread(employerID string) (int64, error)
	MarkRead(notificationID, employerID string) error
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) ListByEmployer(employerID string, limit int) ([]models.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var notifications []models.Notification
	err := r.db.
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepositoryImpl) CountUnread(employerID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("employer_id = ? AND is_read = false", employerID).
		Count(&count).Error
	return count, err
}

// MarkRead scopes by employer so one account cannot touch another's rows.
func (r *NotificationRepositoryImpl) MarkRead(notificationID, employerID string) error {
	result := r.db.Model(&models.Notification{}).
		Where("id = ? AND employer_id = ?", notificationID, employerID).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
