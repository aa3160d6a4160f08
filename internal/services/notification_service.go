package services

import (
	"errors"
	"fmt"

	"hirelane_backend/internal/email"
	"hirelane_backend/internal/logger"
	"hirelane_backend/internal/models"
	"hirelane_backend/internal/repositories"
	"hirelane_backend/pkg/apperrors"
)

// NotificationService persists in-app notification rows and dispatches the
// matching email. Every method is best-effort: callers invoke them from
// goroutines and a failure only gets logged.
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	emailProvider    email.Provider
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	emailProvider email.Provider,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		emailProvider:    emailProvider,
	}
}

// NewApplication notifies the job owner that a candidate applied.
func (s *NotificationService) NewApplication(job *models.Job, application *models.Application) {
	notification := &models.Notification{
		EmployerID: job.EmployerID,
		Type:       models.NotificationNewApplication,
		Title:      "New application",
		Message:    fmt.Sprintf("%s applied to %s", application.CandidateName, job.Title),
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		logger.WithError(err).Warn("failed to store notification", "type", notification.Type, "employer_id", job.EmployerID)
	}

	if job.Employer == nil {
		return
	}

	body, err := email.RenderApplicationReceived(email.ApplicationReceivedData{
		CompanyName:    job.Employer.CompanyName,
		JobTitle:       job.Title,
		CandidateName:  application.CandidateName,
		CandidateEmail: application.CandidateEmail,
	})
	if err != nil {
		logger.WithError(err).Warn("failed to render application email")
		return
	}

	s.send(&email.Message{
		To:       []string{job.Employer.Email},
		Subject:  fmt.Sprintf("New application for %s", job.Title),
		HTMLBody: body,
	})
}

// JobDecision notifies the job owner about an admin approve/reject decision.
func (s *NotificationService) JobDecision(job *models.Job, approved bool, reason string) {
	notificationType := models.NotificationJobApproved
	title := "Job approved"
	message := fmt.Sprintf("Your posting %q is now live", job.Title)
	if !approved {
		notificationType = models.NotificationJobRejected
		title = "Job rejected"
		message = fmt.Sprintf("Your posting %q was rejected", job.Title)
	}

	notification := &models.Notification{
		EmployerID: job.EmployerID,
		Type:       notificationType,
		Title:      title,
		Message:    message,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		logger.WithError(err).Warn("failed to store notification", "type", notificationType, "employer_id", job.EmployerID)
	}

	if job.Employer == nil {
		return
	}

	body, err := email.RenderJobDecision(email.JobDecisionData{
		CompanyName: job.Employer.CompanyName,
		JobTitle:    job.Title,
		Approved:    approved,
		Reason:      reason,
	})
	if err != nil {
		logger.WithError(err).Warn("failed to render decision email")
		return
	}

	s.send(&email.Message{
		To:       []string{job.Employer.Email},
		Subject:  title,
		HTMLBody: body,
	})
}

// List returns the employer's latest notifications.
func (s *NotificationService) List(employerID string, limit int) ([]models.Notification, int64, error) {
	notifications, err := s.notificationRepo.ListByEmployer(employerID, limit)
	if err != nil {
		return nil, 0, err
	}
	unread, err := s.notificationRepo.CountUnread(employerID)
	if err != nil {
		return nil, 0, err
	}
	return notifications, unread, nil
}

// MarkRead marks one of the employer's notifications as read.
func (s *NotificationService) MarkRead(notificationID, employerID string) error {
	err := s.notificationRepo.MarkRead(notificationID, employerID)
	if errors.Is(err, repositories.ErrNotificationNotFound) {
		return apperrors.ErrNotFound(err)
	}
	return err
}

func (s *NotificationService) send(msg *email.Message) {
	if err := s.emailProvider.Send(msg); err != nil {
		logger.WithError(err).Warn("failed to send email", "subject", msg.Subject)
	}
}
