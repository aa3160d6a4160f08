package models

import "time"

type RefreshToken struct {
	Token      string    `gorm:"primaryKey" json:"token"`
	EmployerID string    `gorm:"type:uuid;index" json:"employer_id"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
}
