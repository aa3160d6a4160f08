package models

import "time"

type Employer struct {
	ID           string         `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	CompanyName  string         `json:"company_name"`
	ContactName  string         `json:"contact_name"`
	Email        string         `gorm:"uniqueIndex" json:"email"`
	PasswordHash string         `json:"-"`
	Website      *string        `json:"website,omitempty"`
	City         *string        `json:"city,omitempty"`
	Role         EmployerRole   `gorm:"type:varchar(20);default:'employer'" json:"role"`
	Status       EmployerStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
