// Package jobs provides HTTP handlers for the public board and the admin
// catalog.
package jobs

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dhasan111-hiringdock/FIrstconnect/internal/model"
	"github.com/dhasan111-hiringdock/FIrstconnect/internal/store"
)

// Controller handles job catalog related endpoints.
type Controller struct {
	Store store.Store
}

// NewController creates a new instance of Controller.
func NewController(s store.Store) *Controller {
	return &Controller{Store: s}
}

// Board renders the public listing of active jobs, narrowed by the q,
// location and type query params.
func (jc *Controller) Board(c *gin.Context) {
	filter := store.JobFilter{
		Query:    c.Query("q"),
		Location: c.Query("location"),
		Type:     c.Query("type"),
	}

	jobs, err := jc.Store.ActiveJobs(c.Request.Context(), filter)
	if err != nil {
		log.Println("failed to list active jobs:", err)
		c.String(http.StatusInternalServerError, "Failed to load the job board")
		return
	}
	counts, err := jc.Store.CountJobs(c.Request.Context())
	if err != nil {
		log.Println("failed to count jobs:", err)
		c.String(http.StatusInternalServerError, "Failed to load the job board")
		return
	}

	hasFilters := filter.Query != "" || filter.Location != "" || filter.Type != ""
	c.HTML(http.StatusOK, "jobs.tmpl", gin.H{
		"Jobs":        jobs,
		"Query":       filter.Query,
		"Location":    filter.Location,
		"Type":        filter.Type,
		"HasFilters":  hasFilters,
		"ResultCount": len(jobs),
		"TotalActive": counts.Active,
	})
}

// Detail renders one job page; archived jobs stay reachable by direct link.
func (jc *Controller) Detail(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	job, err := jc.Store.Job(c.Request.Context(), id)
	if err != nil {
		jobError(c, err)
		return
	}
	c.HTML(http.StatusOK, "job_detail.tmpl", gin.H{"Job": job})
}

// Dashboard renders the admin jobs page: a view tab listing jobs by status
// and a create tab with the posting form.
func (jc *Controller) Dashboard(c *gin.Context) {
	tab := "view"
	if c.Query("tab") == "create" {
		tab = "create"
	}
	viewStatus := model.JobStatusActive
	if c.Query("status") == string(model.JobStatusArchived) {
		viewStatus = model.JobStatusArchived
	}

	jobs, err := jc.Store.Jobs(c.Request.Context(), viewStatus)
	if err != nil {
		log.Println("failed to list jobs:", err)
		c.String(http.StatusInternalServerError, "Failed to load the dashboard")
		return
	}
	counts, err := jc.Store.CountJobs(c.Request.Context())
	if err != nil {
		log.Println("failed to count jobs:", err)
		c.String(http.StatusInternalServerError, "Failed to load the dashboard")
		return
	}
	appCounts, err := jc.Store.CountApplicationsByJob(c.Request.Context())
	if err != nil {
		log.Println("failed to count applications:", err)
		c.String(http.StatusInternalServerError, "Failed to load the dashboard")
		return
	}

	c.HTML(http.StatusOK, "admin_jobs.tmpl", gin.H{
		"Tab":               tab,
		"ViewStatus":        viewStatus,
		"Jobs":              jobs,
		"Counts":            counts,
		"ApplicationCounts": appCounts,
	})
}

// Create posts a new listing from the dashboard form and redirects back.
// Creation never fails validation; every field is optional.
func (jc *Controller) Create(c *gin.Context) {
	fields := model.JobFields{}
	if err := c.ShouldBind(&fields); err != nil {
		c.String(http.StatusBadRequest, "Invalid form submission")
		return
	}
	if _, err := jc.Store.CreateJob(c.Request.Context(), fields); err != nil {
		log.Println("failed to create job:", err)
		c.String(http.StatusInternalServerError, "Failed to create job")
		return
	}
	c.Redirect(http.StatusFound, "/admin/jobs")
}

// EditForm renders the edit page pre-filled with the current fields.
func (jc *Controller) EditForm(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	job, err := jc.Store.Job(c.Request.Context(), id)
	if err != nil {
		jobError(c, err)
		return
	}
	c.HTML(http.StatusOK, "admin_job_edit.tmpl", gin.H{"Job": job})
}

// Update replaces every text field with the submitted value. An unchecked
// field comes through empty and overwrites; the form always submits the full
// set, so nothing is lost by accident.
func (jc *Controller) Update(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	fields := model.JobFields{}
	if err := c.ShouldBind(&fields); err != nil {
		c.String(http.StatusBadRequest, "Invalid form submission")
		return
	}
	if _, err := jc.Store.UpdateJob(c.Request.Context(), id, fields); err != nil {
		jobError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/jobs")
}

// Archive hides the listing from the public board.
func (jc *Controller) Archive(c *gin.Context) {
	jc.setStatus(c, model.JobStatusArchived)
}

// Activate puts the listing back on the public board.
func (jc *Controller) Activate(c *gin.Context) {
	jc.setStatus(c, model.JobStatusActive)
}

func (jc *Controller) setStatus(c *gin.Context, status model.JobStatus) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	if _, err := jc.Store.SetJobStatus(c.Request.Context(), id, status); err != nil {
		jobError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/jobs")
}

// Delete removes the listing; applications keep their title snapshots.
// Deleting an id that is already gone still redirects.
func (jc *Controller) Delete(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	if err := jc.Store.DeleteJob(c.Request.Context(), id); err != nil {
		log.Println("failed to delete job:", err)
		c.String(http.StatusInternalServerError, "Failed to delete job")
		return
	}
	c.Redirect(http.StatusFound, "/admin/jobs")
}

// jobID parses the path id; a malformed id reads as a missing job.
func jobID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusNotFound, "Job not found")
		return 0, false
	}
	return uint(id), true
}

func jobError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.String(http.StatusNotFound, "Job not found")
		return
	}
	log.Println("job catalog error:", err)
	c.String(http.StatusInternalServerError, "Failed to process job")
}
