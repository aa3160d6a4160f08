package dto

import (
	"time"

	"hirelane_backend/internal/models"
)

type CreateJobRequest struct {
	Title          string   `json:"title" validate:"required,min=3,max=200"`
	Description    string   `json:"description" validate:"required,min=10"`
	Location       string   `json:"location" validate:"required,max=200"`
	EmploymentType string   `json:"employment_type" validate:"required,is-employment-type"`
	SalaryMin      *float64 `json:"salary_min,omitempty" validate:"omitempty,gte=0"`
	SalaryMax      *float64 `json:"salary_max,omitempty" validate:"omitempty,gte=0"`
	Tags           []string `json:"tags,omitempty" validate:"omitempty,max=20,dive,max=50"`
}

type UpdateJobRequest struct {
	Title          *string  `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description    *string  `json:"description,omitempty" validate:"omitempty,min=10"`
	Location       *string  `json:"location,omitempty" validate:"omitempty,max=200"`
	EmploymentType *string  `json:"employment_type,omitempty" validate:"omitempty,is-employment-type"`
	SalaryMin      *float64 `json:"salary_min,omitempty" validate:"omitempty,gte=0"`
	SalaryMax      *float64 `json:"salary_max,omitempty" validate:"omitempty,gte=0"`
	Tags           []string `json:"tags,omitempty" validate:"omitempty,max=20,dive,max=50"`
}

type SearchJobsRequest struct {
	Query          string `form:"q" json:"q,omitempty"`
	Location       string `form:"location" json:"location,omitempty"`
	EmploymentType string `form:"employment_type" json:"employment_type,omitempty" validate:"omitempty,is-employment-type"`
	Page           int    `form:"page" json:"page,omitempty"`
	PageSize       int    `form:"page_size" json:"page_size,omitempty"`
}

type RejectJobRequest struct {
	Reason string `json:"reason,omitempty" validate:"max=500"`
}

// JobResponse is the outward shape of a job posting. Tags are unpacked from
// the jsonb column; ApplicationCount is filled for the owner's listings only.
type JobResponse struct {
	ID               string                `json:"id"`
	EmployerID       string                `json:"employer_id"`
	CompanyName      string                `json:"company_name,omitempty"`
	Title            string                `json:"title"`
	Description      string                `json:"description"`
	Location         string                `json:"location"`
	EmploymentType   models.EmploymentType `json:"employment_type"`
	SalaryMin        *float64              `json:"salary_min,omitempty"`
	SalaryMax        *float64              `json:"salary_max,omitempty"`
	Tags             []string              `json:"tags,omitempty"`
	Status           models.JobStatus      `json:"status"`
	Views            int                   `json:"views"`
	ApplicationCount *int64                `json:"application_count,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}
