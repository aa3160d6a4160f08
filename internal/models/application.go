package models

import "time"

// Application is a candidate's submission against one job posting.
//
// Stage is always one of the Stage enum values. StageChangedAt moves only on
// a successful stage transition. AppliedAt is set once at creation and never
// mutated afterwards.
type Application struct {
	ID             string    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	JobID          string    `gorm:"type:uuid;index" json:"job_id"`
	CandidateName  string    `json:"candidate_name"`
	CandidateEmail string    `gorm:"index" json:"candidate_email"`
	LinkedInURL    *string   `json:"linkedin_url,omitempty"`
	ResumePath     *string   `json:"-"`
	ResumeFilename *string   `json:"resume_filename,omitempty"`
	CoverLetter    *string   `json:"cover_letter,omitempty"`
	Notes          *string   `json:"notes,omitempty"`
	Stage          Stage     `gorm:"type:varchar(20);default:'new'" json:"stage"`
	StageChangedAt time.Time `json:"stage_changed_at"`
	AppliedAt      time.Time `json:"applied_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Job *Job `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"job,omitempty"`
}

// StageHistory is an append-only audit row written on every stage
// transition. ActorID is empty for rows written by the system (creation).
type StageHistory struct {
	ID            string    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	ApplicationID string    `gorm:"type:uuid;index" json:"application_id"`
	FromStage     Stage     `gorm:"type:varchar(20)" json:"from_stage"`
	ToStage       Stage     `gorm:"type:varchar(20)" json:"to_stage"`
	ActorID       string    `gorm:"type:uuid" json:"actor_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
