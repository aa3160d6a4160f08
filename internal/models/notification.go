package models

import "time"

type Notification struct {
	ID         string           `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	EmployerID string           `gorm:"type:uuid;index" json:"employer_id"`
	Type       NotificationType `gorm:"type:varchar(30)" json:"type"`
	Title      string           `json:"title"`
	Message    string           `json:"message"`
	IsRead     bool             `gorm:"default:false" json:"is_read"`
	CreatedAt  time.Time        `json:"created_at"`
}
