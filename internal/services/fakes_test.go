package services

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"hirelane_backend/internal/email"
	"hirelane_backend/internal/models"
	"hirelane_backend/internal/repositories"
)

// In-memory repository fakes. They implement the same sentinel-error
// contracts as the postgres implementations so the services cannot tell
// them apart. A mutex guards every map because the services fire some
// side effects from goroutines.

type fakeApplicationRepo struct {
	mu           sync.Mutex
	applications map[string]*models.Application
	history      []models.StageHistory
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[string]*models.Application)}
}

func (f *fakeApplicationRepo) Create(application *models.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if application.ID == "" {
		application.ID = uuid.NewString()
	}
	clone := *application
	f.applications[application.ID] = &clone
	return nil
}

func (f *fakeApplicationRepo) FindByID(id string) (*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	application, ok := f.applications[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	clone := *application
	return &clone, nil
}

func (f *fakeApplicationRepo) ListByJob(jobID string) ([]models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Application
	for _, application := range f.applications {
		if application.JobID == jobID {
			out = append(out, *application)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) UpdateStage(id string, stage models.Stage, changedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	application, ok := f.applications[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	application.Stage = stage
	application.StageChangedAt = changedAt
	return nil
}

func (f *fakeApplicationRepo) UpdateNotes(id string, notes *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	application, ok := f.applications[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	application.Notes = notes
	return nil
}

func (f *fakeApplicationRepo) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.applications[id]; !ok {
		return repositories.ErrApplicationNotFound
	}
	delete(f.applications, id)
	return nil
}

func (f *fakeApplicationRepo) ExistsByJobAndEmail(jobID, candidateEmail string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, application := range f.applications {
		if application.JobID == jobID && strings.EqualFold(application.CandidateEmail, candidateEmail) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicationRepo) CountByJob(jobID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, application := range f.applications {
		if application.JobID == jobID {
			count++
		}
	}
	return count, nil
}

func (f *fakeApplicationRepo) GetStats(jobID string) (*repositories.ApplicationStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stats := &repositories.ApplicationStats{}
	for _, application := range f.applications {
		if application.JobID != jobID {
			continue
		}
		stats.Total++
		switch application.Stage {
		case models.StageNew:
			stats.New++
		case models.StageScreening:
			stats.Screening++
		case models.StageInterview:
			stats.Interview++
		case models.StageOffer:
			stats.Offer++
		case models.StageRejected:
			stats.Rejected++
		}
	}
	return stats, nil
}

func (f *fakeApplicationRepo) AddHistory(entry *models.StageHistory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	f.history = append(f.history, *entry)
	return nil
}

func (f *fakeApplicationRepo) ListHistory(applicationID string) ([]models.StageHistory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.StageHistory
	for _, entry := range f.history {
		if entry.ApplicationID == applicationID {
			out = append(out, entry)
		}
	}
	return out, nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[string]*models.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*models.Job)}
}

func (f *fakeJobRepo) Create(job *models.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	clone := *job
	f.jobs[job.ID] = &clone
	return nil
}

func (f *fakeJobRepo) FindByID(id string) (*models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	job, ok := f.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	clone := *job
	return &clone, nil
}

func (f *fakeJobRepo) Update(job *models.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.jobs[job.ID]; !ok {
		return repositories.ErrJobNotFound
	}
	clone := *job
	f.jobs[job.ID] = &clone
	return nil
}

func (f *fakeJobRepo) UpdateStatus(jobID string, status models.JobStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	job, ok := f.jobs[jobID]
	if !ok {
		return repositories.ErrJobNotFound
	}
	job.Status = status
	return nil
}

func (f *fakeJobRepo) Delete(jobID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.jobs[jobID]; !ok {
		return repositories.ErrJobNotFound
	}
	delete(f.jobs, jobID)
	return nil
}

func (f *fakeJobRepo) ListByEmployer(employerID string) ([]models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Job
	for _, job := range f.jobs {
		if job.EmployerID == employerID {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) ListByStatus(status models.JobStatus, limit, offset int) ([]models.Job, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Job
	for _, job := range f.jobs {
		if job.Status == status {
			out = append(out, *job)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeJobRepo) SearchActive(filter repositories.JobFilter) ([]models.Job, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Job
	for _, job := range f.jobs {
		if job.Status != models.JobStatusActive {
			continue
		}
		if filter.Query != "" && !strings.Contains(strings.ToLower(job.Title), strings.ToLower(filter.Query)) {
			continue
		}
		if filter.Location != "" && !strings.EqualFold(job.Location, filter.Location) {
			continue
		}
		if filter.EmploymentType != "" && job.EmploymentType != filter.EmploymentType {
			continue
		}
		out = append(out, *job)
	}
	return out, int64(len(out)), nil
}

func (f *fakeJobRepo) IncrementViews(jobID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	job, ok := f.jobs[jobID]
	if !ok {
		return repositories.ErrJobNotFound
	}
	job.Views++
	return nil
}

func (f *fakeJobRepo) CloseOlderThan(cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var closed int64
	for _, job := range f.jobs {
		if job.Status == models.JobStatusActive && job.CreatedAt.Before(cutoff) {
			job.Status = models.JobStatusClosed
			closed++
		}
	}
	return closed, nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []models.Notification
}

func (f *fakeNotificationRepo) Create(notification *models.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	f.notifications = append(f.notifications, *notification)
	return nil
}

func (f *fakeNotificationRepo) ListByEmployer(employerID string, limit int) ([]models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Notification
	for _, n := range f.notifications {
		if n.EmployerID == employerID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) CountUnread(employerID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, n := range f.notifications {
		if n.EmployerID == employerID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) MarkRead(notificationID, employerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, n := range f.notifications {
		if n.ID == notificationID && n.EmployerID == employerID {
			f.notifications[i].IsRead = true
			return nil
		}
	}
	return repositories.ErrNotificationNotFound
}

type fakeEmployerRepo struct {
	mu        sync.Mutex
	employers map[string]*models.Employer
}

func newFakeEmployerRepo() *fakeEmployerRepo {
	return &fakeEmployerRepo{employers: make(map[string]*models.Employer)}
}

func (f *fakeEmployerRepo) Create(employer *models.Employer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.employers {
		if strings.EqualFold(existing.Email, employer.Email) {
			return repositories.ErrEmployerAlreadyExists
		}
	}
	if employer.ID == "" {
		employer.ID = uuid.NewString()
	}
	clone := *employer
	f.employers[employer.ID] = &clone
	return nil
}

func (f *fakeEmployerRepo) FindByID(id string) (*models.Employer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	employer, ok := f.employers[id]
	if !ok {
		return nil, repositories.ErrEmployerNotFound
	}
	clone := *employer
	return &clone, nil
}

func (f *fakeEmployerRepo) FindByEmail(email string) (*models.Employer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, employer := range f.employers {
		if strings.EqualFold(employer.Email, email) {
			clone := *employer
			return &clone, nil
		}
	}
	return nil, repositories.ErrEmployerNotFound
}

func (f *fakeEmployerRepo) Update(employer *models.Employer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.employers[employer.ID]; !ok {
		return repositories.ErrEmployerNotFound
	}
	clone := *employer
	f.employers[employer.ID] = &clone
	return nil
}

func (f *fakeEmployerRepo) UpdateStatus(employerID string, status models.EmployerStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	employer, ok := f.employers[employerID]
	if !ok {
		return repositories.ErrEmployerNotFound
	}
	employer.Status = status
	return nil
}

func (f *fakeEmployerRepo) CountByRole(role models.EmployerRole) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, employer := range f.employers {
		if employer.Role == role {
			count++
		}
	}
	return count, nil
}

type fakeRefreshTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*models.RefreshToken
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: make(map[string]*models.RefreshToken)}
}

func (f *fakeRefreshTokenRepo) Create(token *models.RefreshToken) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *token
	f.tokens[token.Token] = &clone
	return nil
}

func (f *fakeRefreshTokenRepo) Find(token string) (*models.RefreshToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	found, ok := f.tokens[token]
	if !ok {
		return nil, repositories.ErrRefreshTokenNotFound
	}
	clone := *found
	return &clone, nil
}

func (f *fakeRefreshTokenRepo) Delete(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tokens[token]; !ok {
		return repositories.ErrRefreshTokenNotFound
	}
	delete(f.tokens, token)
	return nil
}

func (f *fakeRefreshTokenRepo) DeleteByEmployer(employerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for token, stored := range f.tokens {
		if stored.EmployerID == employerID {
			delete(f.tokens, token)
		}
	}
	return nil
}

func (f *fakeRefreshTokenRepo) DeleteExpired() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var deleted int64
	now := time.Now()
	for token, stored := range f.tokens {
		if stored.ExpiresAt.Before(now) {
			delete(f.tokens, token)
			deleted++
		}
	}
	return deleted, nil
}

// memStorage keeps stored files in a map.
type memStorage struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{files: make(map[string][]byte)}
}

func (m *memStorage) Save(ctx context.Context, path string, content io.Reader) error {
	data, err := io.ReadAll(content)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = data
	return nil
}

func (m *memStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[path]
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memStorage) Delete(ctx context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, path)
	return nil
}

func (m *memStorage) Exists(ctx context.Context, path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[path]
	return ok, nil
}

func newTestNotificationService() (*NotificationService, *fakeNotificationRepo) {
	repo := &fakeNotificationRepo{}
	return NewNotificationService(repo, &email.NoopProvider{}), repo
}
