package models

import (
	"time"

	"gorm.io/datatypes"
)

type Job struct {
	ID             string         `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	EmployerID     string         `gorm:"type:uuid;index" json:"employer_id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Location       string         `json:"location"`
	EmploymentType EmploymentType `gorm:"type:varchar(20)" json:"employment_type"`
	SalaryMin      *float64       `json:"salary_min,omitempty"`
	SalaryMax      *float64       `json:"salary_max,omitempty"`
	Tags           datatypes.JSON `gorm:"type:jsonb" json:"tags,omitempty"`
	Status         JobStatus      `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Views          int            `json:"views"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	Employer *Employer `gorm:"foreignKey:EmployerID" json:"employer,omitempty"`
}
