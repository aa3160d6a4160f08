package models

type EmployerStatus string
type EmployerRole string
type JobStatus string
type EmploymentType string
type Stage string
type NotificationType string

const (
	EmployerStatusActive    EmployerStatus = "active"
	EmployerStatusSuspended EmployerStatus = "suspended"

	EmployerRoleEmployer EmployerRole = "employer"
	EmployerRoleAdmin    EmployerRole = "admin"

	JobStatusPending  JobStatus = "pending"
	JobStatusActive   JobStatus = "active"
	JobStatusRejected JobStatus = "rejected"
	JobStatusClosed   JobStatus = "closed"

	EmploymentFullTime   EmploymentType = "full_time"
	EmploymentPartTime   EmploymentType = "part_time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"

	// Pipeline stages. StageNew is the implicit initial state set at
	// creation; the board groups it into the screening column.
	StageNew       Stage = "new"
	StageScreening Stage = "screening"
	StageInterview Stage = "interview"
	StageOffer     Stage = "offer"
	StageRejected  Stage = "rejected"

	NotificationNewApplication NotificationType = "new_application"
	NotificationJobApproved    NotificationType = "job_approved"
	NotificationJobRejected    NotificationType = "job_rejected"
)

// AllStages lists every valid stage value, board order.
var AllStages = []Stage{StageNew, StageScreening, StageInterview, StageOffer, StageRejected}

// BoardStages lists the stages rendered as kanban columns.
var BoardStages = []Stage{StageScreening, StageInterview, StageOffer, StageRejected}

// Valid reports whether s is a member of the stage enum.
func (s Stage) Valid() bool {
	switch s {
	case StageNew, StageScreening, StageInterview, StageOffer, StageRejected:
		return true
	}
	return false
}

// BoardColumn returns the kanban column a stage is displayed in.
// Fresh applications land in the screening column.
func (s Stage) BoardColumn() Stage {
	if s == StageNew {
		return StageScreening
	}
	return s
}

// Valid reports whether s is a member of the job status enum.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusPending, JobStatusActive, JobStatusRejected, JobStatusClosed:
		return true
	}
	return false
}

// Valid reports whether t is a member of the employment type enum.
func (t EmploymentType) Valid() bool {
	switch t {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentInternship:
		return true
	}
	return false
}
