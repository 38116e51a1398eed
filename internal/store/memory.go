package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dhasan111-hiringdock/FIrstconnect/internal/model"
)

// Memory keeps both collections in process memory for the lifetime of the
// server, which is the portal's default storage model. A single mutex
// serializes mutations so concurrent requests never observe a torn record;
// reads copy matching records out under the lock.
type Memory struct {
	mu                sync.Mutex
	jobs              []model.Job
	applications      []model.Application
	nextJobID         uint
	nextApplicationID uint
}

// NewMemory returns an empty in-memory store. Ids start at 1 and are never
// reused, even after deletes.
func NewMemory() *Memory {
	return &Memory{
		nextJobID:         1,
		nextApplicationID: 1,
	}
}

func (m *Memory) CreateJob(_ context.Context, fields model.JobFields) (model.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job := model.Job{
		ID:        m.nextJobID,
		JobFields: fields.Normalized(),
		Status:    model.JobStatusActive,
	}
	m.nextJobID++
	m.jobs = append(m.jobs, job)
	return job, nil
}

func (m *Memory) Jobs(_ context.Context, status model.JobStatus) ([]model.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []model.Job{}
	for _, job := range m.jobs {
		if job.Status == status {
			out = append(out, job)
		}
	}
	return out, nil
}

func (m *Memory) ActiveJobs(_ context.Context, filter JobFilter) ([]model.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []model.Job{}
	for _, job := range m.jobs {
		if job.Status != model.JobStatusActive {
			continue
		}
		if matchesJobFilter(job, filter) {
			out = append(out, job)
		}
	}
	return out, nil
}

func matchesJobFilter(job model.Job, filter JobFilter) bool {
	if q := strings.TrimSpace(filter.Query); q != "" {
		haystack := strings.ToLower(job.Title + " " + job.Company + " " + job.Location + " " + job.Description)
		if !strings.Contains(haystack, strings.ToLower(q)) {
			return false
		}
	}
	if loc := strings.TrimSpace(filter.Location); loc != "" {
		if !strings.Contains(strings.ToLower(job.Location), strings.ToLower(loc)) {
			return false
		}
	}
	if typ := strings.TrimSpace(filter.Type); typ != "" {
		if !strings.EqualFold(job.Type, typ) {
			return false
		}
	}
	return true
}

func (m *Memory) Job(_ context.Context, id uint) (model.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, _, ok := m.findJob(id)
	if !ok {
		return model.Job{}, ErrNotFound
	}
	return job, nil
}

func (m *Memory) UpdateJob(_ context.Context, id uint, fields model.JobFields) (model.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, i, ok := m.findJob(id)
	if !ok {
		return model.Job{}, ErrNotFound
	}
	m.jobs[i].JobFields = fields.Normalized()
	return m.jobs[i], nil
}

func (m *Memory) SetJobStatus(_ context.Context, id uint, status model.JobStatus) (model.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, i, ok := m.findJob(id)
	if !ok {
		return model.Job{}, ErrNotFound
	}
	m.jobs[i].Status = status
	return m.jobs[i], nil
}

func (m *Memory) DeleteJob(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.jobs[:0]
	for _, job := range m.jobs {
		if job.ID != id {
			kept = append(kept, job)
		}
	}
	m.jobs = kept
	return nil
}

func (m *Memory) CountJobs(_ context.Context) (JobCounts, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	counts := JobCounts{Total: len(m.jobs)}
	for _, job := range m.jobs {
		if job.Status == model.JobStatusActive {
			counts.Active++
		} else {
			counts.Archived++
		}
	}
	return counts, nil
}

func (m *Memory) CreateApplication(_ context.Context, jobID uint, fields model.ApplicantFields, cv *StoredCV) (model.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, _, ok := m.findJob(jobID)
	if !ok {
		return model.Application{}, ErrNotFound
	}

	app := model.Application{
		ID:              m.nextApplicationID,
		JobID:           job.ID,
		JobTitle:        job.Title,
		ApplicantFields: fields,
		CreatedAt:       time.Now(),
		Status:          model.ApplicationStatusNew,
	}
	if cv != nil {
		app.CVFileURL = cv.URL
		app.CVOriginalName = cv.OriginalName
	}
	m.nextApplicationID++
	m.applications = append(m.applications, app)
	return app, nil
}

func (m *Memory) Applications(_ context.Context, filter ApplicationFilter) ([]model.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []model.Application{}
	for _, app := range m.applications {
		if filter.Status != "" && filter.Status != "all" &&
			app.Status != model.ApplicationStatus(filter.Status) {
			continue
		}
		if filter.JobID != 0 && app.JobID != filter.JobID {
			continue
		}
		out = append(out, app)
	}
	return out, nil
}

func (m *Memory) Application(_ context.Context, id uint) (model.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, i, ok := m.findApplication(id)
	if !ok {
		return model.Application{}, ErrNotFound
	}
	return m.applications[i], nil
}

func (m *Memory) SetApplicationStatus(_ context.Context, id uint, status string) (model.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, i, ok := m.findApplication(id)
	if !ok {
		return model.Application{}, ErrNotFound
	}
	if status == "" {
		return m.applications[i], nil
	}
	next := model.ApplicationStatus(status)
	if !next.Valid() {
		return model.Application{}, ErrInvalidStatus
	}
	m.applications[i].Status = next
	return m.applications[i], nil
}

func (m *Memory) CountApplicationsByJob(_ context.Context) (map[uint]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	counts := map[uint]int{}
	for _, app := range m.applications {
		counts[app.JobID]++
	}
	return counts, nil
}

func (m *Memory) CountApplicationsByStatus(_ context.Context) (map[model.ApplicationStatus]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	counts := map[model.ApplicationStatus]int{}
	for _, status := range model.ApplicationStatuses {
		counts[status] = 0
	}
	for _, app := range m.applications {
		counts[app.Status]++
	}
	return counts, nil
}

func (m *Memory) SeedJobs(ctx context.Context, fields []model.JobFields) error {
	m.mu.Lock()
	empty := len(m.jobs) == 0
	m.mu.Unlock()
	if !empty {
		return nil
	}
	for _, f := range fields {
		if _, err := m.CreateJob(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

func (m *Memory) Health(_ context.Context) map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return map[string]string{
		"status":  "up",
		"backend": "memory",
	}
}

func (m *Memory) Close() error { return nil }

// callers hold m.mu
func (m *Memory) findJob(id uint) (model.Job, int, bool) {
	for i, job := range m.jobs {
		if job.ID == id {
			return job, i, true
		}
	}
	return model.Job{}, -1, false
}

func (m *Memory) findApplication(id uint) (model.Application, int, bool) {
	for i, app := range m.applications {
		if app.ID == id {
			return app, i, true
		}
	}
	return model.Application{}, -1, false
}
