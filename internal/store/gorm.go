package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/dhasan111-hiringdock/FIrstconnect/internal/database"
	"github.com/dhasan111-hiringdock/FIrstconnect/internal/model"
)

// jobFieldColumns are forced on updates so empty strings overwrite.
var jobFieldColumns = []string{"title", "company", "location", "type", "rate", "deadline", "description"}

// Gorm is the Postgres-backed store, selected with DB_ENABLED=true. Row ids
// come from the sequence, so they stay unique and increasing across deletes
// just like the in-memory counter.
type Gorm struct {
	db *database.DBinstanceStruct
}

// NewGorm wraps an initialized database instance.
func NewGorm(db *database.DBinstanceStruct) *Gorm {
	return &Gorm{db: db}
}

func (g *Gorm) CreateJob(ctx context.Context, fields model.JobFields) (model.Job, error) {
	job := model.Job{
		JobFields: fields.Normalized(),
		Status:    model.JobStatusActive,
	}
	if err := g.db.WithContext(ctx).Create(&job).Error; err != nil {
		return model.Job{}, err
	}
	return job, nil
}

func (g *Gorm) Jobs(ctx context.Context, status model.JobStatus) ([]model.Job, error) {
	jobs := []model.Job{}
	err := g.db.WithContext(ctx).
		Where("status = ?", status).
		Order("id").
		Find(&jobs).Error
	return jobs, err
}

func (g *Gorm) ActiveJobs(ctx context.Context, filter JobFilter) ([]model.Job, error) {
	q := g.db.WithContext(ctx).Where("status = ?", model.JobStatusActive)

	if filter.Query != "" {
		q = q.Where(
			"(title || ' ' || company || ' ' || location || ' ' || description) ILIKE ?",
			"%"+filter.Query+"%",
		)
	}
	if filter.Location != "" {
		q = q.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.Type != "" {
		q = q.Where("LOWER(type) = LOWER(?)", filter.Type)
	}

	jobs := []model.Job{}
	err := q.Order("id").Find(&jobs).Error
	return jobs, err
}

func (g *Gorm) Job(ctx context.Context, id uint) (model.Job, error) {
	job := model.Job{}
	if err := g.db.WithContext(ctx).First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Job{}, ErrNotFound
		}
		return model.Job{}, err
	}
	return job, nil
}

func (g *Gorm) UpdateJob(ctx context.Context, id uint, fields model.JobFields) (model.Job, error) {
	job, err := g.Job(ctx, id)
	if err != nil {
		return model.Job{}, err
	}

	err = g.db.WithContext(ctx).
		Model(&job).
		Select(jobFieldColumns).
		Updates(model.Job{JobFields: fields.Normalized()}).Error
	if err != nil {
		return model.Job{}, err
	}
	return g.Job(ctx, id)
}

func (g *Gorm) SetJobStatus(ctx context.Context, id uint, status model.JobStatus) (model.Job, error) {
	job, err := g.Job(ctx, id)
	if err != nil {
		return model.Job{}, err
	}
	if err := g.db.WithContext(ctx).Model(&job).Update("status", status).Error; err != nil {
		return model.Job{}, err
	}
	job.Status = status
	return job, nil
}

func (g *Gorm) DeleteJob(ctx context.Context, id uint) error {
	// Missing rows delete zero rows, which keeps the operation idempotent.
	return g.db.WithContext(ctx).Delete(&model.Job{}, id).Error
}

func (g *Gorm) CountJobs(ctx context.Context) (JobCounts, error) {
	var total, active int64
	if err := g.db.WithContext(ctx).Model(&model.Job{}).Count(&total).Error; err != nil {
		return JobCounts{}, err
	}
	err := g.db.WithContext(ctx).Model(&model.Job{}).
		Where("status = ?", model.JobStatusActive).
		Count(&active).Error
	if err != nil {
		return JobCounts{}, err
	}
	return JobCounts{
		Total:    int(total),
		Active:   int(active),
		Archived: int(total - active),
	}, nil
}

func (g *Gorm) CreateApplication(ctx context.Context, jobID uint, fields model.ApplicantFields, cv *StoredCV) (model.Application, error) {
	app := model.Application{}
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		job := model.Job{}
		if err := tx.First(&job, jobID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		app = model.Application{
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
		return tx.Create(&app).Error
	})
	if err != nil {
		return model.Application{}, err
	}
	return app, nil
}

func (g *Gorm) Applications(ctx context.Context, filter ApplicationFilter) ([]model.Application, error) {
	q := g.db.WithContext(ctx).Model(&model.Application{})

	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.JobID != 0 {
		q = q.Where("job_id = ?", filter.JobID)
	}

	apps := []model.Application{}
	err := q.Order("id").Find(&apps).Error
	return apps, err
}

func (g *Gorm) Application(ctx context.Context, id uint) (model.Application, error) {
	app := model.Application{}
	if err := g.db.WithContext(ctx).First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Application{}, ErrNotFound
		}
		return model.Application{}, err
	}
	return app, nil
}

func (g *Gorm) SetApplicationStatus(ctx context.Context, id uint, status string) (model.Application, error) {
	app, err := g.Application(ctx, id)
	if err != nil {
		return model.Application{}, err
	}
	if status == "" {
		return app, nil
	}
	next := model.ApplicationStatus(status)
	if !next.Valid() {
		return model.Application{}, ErrInvalidStatus
	}
	if err := g.db.WithContext(ctx).Model(&app).Update("status", next).Error; err != nil {
		return model.Application{}, err
	}
	app.Status = next
	return app, nil
}

func (g *Gorm) CountApplicationsByJob(ctx context.Context) (map[uint]int, error) {
	rows := []struct {
		JobID uint
		N     int
	}{}
	err := g.db.WithContext(ctx).Model(&model.Application{}).
		Select("job_id, count(*) as n").
		Group("job_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := map[uint]int{}
	for _, row := range rows {
		counts[row.JobID] = row.N
	}
	return counts, nil
}

func (g *Gorm) CountApplicationsByStatus(ctx context.Context) (map[model.ApplicationStatus]int, error) {
	rows := []struct {
		Status model.ApplicationStatus
		N      int
	}{}
	err := g.db.WithContext(ctx).Model(&model.Application{}).
		Select("status, count(*) as n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := map[model.ApplicationStatus]int{}
	for _, status := range model.ApplicationStatuses {
		counts[status] = 0
	}
	for _, row := range rows {
		counts[row.Status] = row.N
	}
	return counts, nil
}

func (g *Gorm) SeedJobs(ctx context.Context, fields []model.JobFields) error {
	var count int64
	if err := g.db.WithContext(ctx).Model(&model.Job{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, f := range fields {
		if _, err := g.CreateJob(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

func (g *Gorm) Health(_ context.Context) map[string]string {
	stats := g.db.Health()
	stats["backend"] = "postgres"
	return stats
}

func (g *Gorm) Close() error {
	return g.db.Close()
}
