package dto

import (
	"io"
	"time"

	"hirelane_backend/internal/models"
)

// SubmitApplicationRequest is the public candidate-facing submission form
// (multipart; the resume part is carried separately as ResumeFile).
type SubmitApplicationRequest struct {
	CandidateName  string  `form:"candidate_name" json:"candidate_name" validate:"required,min=2,max=200"`
	CandidateEmail string  `form:"candidate_email" json:"candidate_email" validate:"required,email"`
	LinkedInURL    *string `form:"linkedin_url" json:"linkedin_url,omitempty" validate:"omitempty,url"`
	CoverLetter    *string `form:"cover_letter" json:"cover_letter,omitempty" validate:"omitempty,max=10000"`
}

// ResumeFile is an uploaded resume, decoupled from multipart plumbing.
type ResumeFile struct {
	Filename    string
	Size        int64
	ContentType string
	Content     io.Reader
}

// AddApplicationRequest is the employer-initiated manual candidate entry.
type AddApplicationRequest struct {
	CandidateName  string  `json:"candidate_name" validate:"required,min=2,max=200"`
	CandidateEmail string  `json:"candidate_email" validate:"required,email"`
	LinkedInURL    *string `json:"linkedin_url,omitempty" validate:"omitempty,url"`
	CoverLetter    *string `json:"cover_letter,omitempty" validate:"omitempty,max=10000"`
	Notes          *string `json:"notes,omitempty" validate:"omitempty,max=10000"`
}

type UpdateStageRequest struct {
	Stage string `json:"stage" validate:"required,is-stage"`
}

type UpdateNotesRequest struct {
	Notes *string `json:"notes" validate:"omitempty,max=10000"`
}

// ApplicationCard is one card on the kanban board. TimeInStage is computed
// at read time from StageChangedAt and never persisted.
type ApplicationCard struct {
	ID             string       `json:"id"`
	CandidateName  string       `json:"candidate_name"`
	CandidateEmail string       `json:"candidate_email"`
	LinkedInURL    *string      `json:"linkedin_url,omitempty"`
	ResumeFilename *string      `json:"resume_filename,omitempty"`
	Notes          *string      `json:"notes,omitempty"`
	Stage          models.Stage `json:"stage"`
	TimeInStage    string       `json:"time_in_stage"`
	StageChangedAt time.Time    `json:"stage_changed_at"`
	AppliedAt      time.Time    `json:"applied_at"`
}

type BoardColumn struct {
	Stage        models.Stage      `json:"stage"`
	Applications []ApplicationCard `json:"applications"`
}

type BoardResponse struct {
	JobID   string        `json:"job_id"`
	Columns []BoardColumn `json:"columns"`
}
