// Package store owns the job and application collections behind a single
// port, so handlers never touch a concrete backend and tests can swap one in.
package store

import (
	"context"
	"errors"

	"github.com/dhasan111-hiringdock/FIrstconnect/internal/model"
)

var (
	// ErrNotFound is returned when a job or application id does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidStatus is returned when a non-empty application status value
	// is outside the workflow enum.
	ErrInvalidStatus = errors.New("invalid application status")
)

// JobFilter narrows the public board listing. Empty fields do not constrain.
// Query is a case-insensitive substring match over title, company, location
// and description together; Location a substring match over location alone;
// Type a case-insensitive exact match. Filters compose with AND.
type JobFilter struct {
	Query    string
	Location string
	Type     string
}

// ApplicationFilter narrows the admin review listing. Status "" or "all"
// means any status; JobID 0 means any job.
type ApplicationFilter struct {
	Status string
	JobID  uint
}

// StoredCV carries the result of a successful upload into the application
// record. A nil *StoredCV means the candidate attached no file.
type StoredCV struct {
	URL          string
	OriginalName string
}

// JobCounts summarizes the catalog for the admin dashboard header.
type JobCounts struct {
	Total    int
	Active   int
	Archived int
}

// Store is the portal's repository port. Memory is the default backend;
// Gorm persists to Postgres when DB_ENABLED is set.
type Store interface {
	// CreateJob assigns the next sequential id and status active. An empty
	// Type falls back to model.DefaultJobType. It never fails validation.
	CreateJob(ctx context.Context, fields model.JobFields) (model.Job, error)
	// Jobs returns listings with exactly the given status, in insertion order.
	Jobs(ctx context.Context, status model.JobStatus) ([]model.Job, error)
	// ActiveJobs returns active listings matching the filter.
	ActiveJobs(ctx context.Context, filter JobFilter) ([]model.Job, error)
	Job(ctx context.Context, id uint) (model.Job, error)
	// UpdateJob replaces every text field with the given value, empty strings
	// included (the edit form is a full overwrite, not a patch). Status is
	// untouched.
	UpdateJob(ctx context.Context, id uint, fields model.JobFields) (model.Job, error)
	SetJobStatus(ctx context.Context, id uint, status model.JobStatus) (model.Job, error)
	// DeleteJob removes the listing; a missing id is a no-op. Applications
	// referencing the job are kept untouched.
	DeleteJob(ctx context.Context, id uint) error
	CountJobs(ctx context.Context) (JobCounts, error)

	// CreateApplication requires the job to exist right now and snapshots its
	// title onto the new record. Status starts at new.
	CreateApplication(ctx context.Context, jobID uint, fields model.ApplicantFields, cv *StoredCV) (model.Application, error)
	Applications(ctx context.Context, filter ApplicationFilter) ([]model.Application, error)
	Application(ctx context.Context, id uint) (model.Application, error)
	// SetApplicationStatus overwrites the workflow state. An empty status is
	// a successful no-op; a non-empty value outside the enum is rejected with
	// ErrInvalidStatus.
	SetApplicationStatus(ctx context.Context, id uint, status string) (model.Application, error)
	CountApplicationsByJob(ctx context.Context) (map[uint]int, error)
	CountApplicationsByStatus(ctx context.Context) (map[model.ApplicationStatus]int, error)

	// SeedJobs installs the given listings when the catalog is empty.
	SeedJobs(ctx context.Context, fields []model.JobFields) error

	Health(ctx context.Context) map[string]string
	Close() error
}
