// Package applicants provides HTTP handlers for application intake and the
// admin review workflow.
package applicants

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dhasan111-hiringdock/FIrstconnect/internal/model"
	"github.com/dhasan111-hiringdock/FIrstconnect/internal/store"
	"github.com/dhasan111-hiringdock/FIrstconnect/internal/upload"
)

// Controller handles application related endpoints.
type Controller struct {
	Store   store.Store
	Uploads *upload.Store
}

// NewController creates a new instance of Controller.
func NewController(s store.Store, uploads *upload.Store) *Controller {
	return &Controller{Store: s, Uploads: uploads}
}

// applicationRow pairs an application with whether its job still exists, so
// the admin pages only link to jobs that can be opened.
type applicationRow struct {
	model.Application
	HasJob bool
}

// Apply accepts the public multipart apply form. The optional cvFile must
// pass the upload checks before any record is created; a rejected file fails
// the whole submission.
func (ac *Controller) Apply(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusNotFound, "Job not found")
		return
	}

	fields := model.ApplicantFields{}
	if bindErr := c.ShouldBind(&fields); bindErr != nil {
		var maxBytesError *http.MaxBytesError
		if errors.As(bindErr, &maxBytesError) {
			c.String(http.StatusRequestEntityTooLarge, "CV file is too large")
			return
		}
		c.String(http.StatusBadRequest, "Invalid form submission")
		return
	}

	var cv *store.StoredCV
	fileHeader, fileErr := c.FormFile("cvFile")
	switch {
	case fileErr == nil:
		stored, acceptErr := ac.Uploads.Accept(fileHeader)
		if acceptErr != nil {
			if errors.Is(acceptErr, upload.ErrFileTooLarge) || errors.Is(acceptErr, upload.ErrUnsupportedType) {
				c.String(http.StatusBadRequest, acceptErr.Error())
				return
			}
			log.Println("failed to store cv upload:", acceptErr)
			c.String(http.StatusInternalServerError, "Failed to store CV file")
			return
		}
		cv = &store.StoredCV{URL: stored.URL, OriginalName: stored.OriginalName}
	case errors.Is(fileErr, http.ErrMissingFile):
		// no attachment, nothing to validate
	default:
		c.String(http.StatusBadRequest, "Invalid form submission")
		return
	}

	app, err := ac.Store.CreateApplication(c.Request.Context(), uint(id), fields, cv)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.String(http.StatusNotFound, "Job not found")
			return
		}
		log.Println("failed to create application:", err)
		c.String(http.StatusInternalServerError, "Failed to submit application")
		return
	}

	c.HTML(http.StatusOK, "apply_thanks.tmpl", gin.H{
		"JobTitle": app.JobTitle,
		"JobID":    app.JobID,
	})
}

// List renders the admin review page, filtered by status and job id. A
// non-numeric jobId param is ignored rather than rejected.
func (ac *Controller) List(c *gin.Context) {
	filter := store.ApplicationFilter{
		Status: c.DefaultQuery("status", "all"),
	}
	if raw := c.Query("jobId"); raw != "" {
		if jobID, err := strconv.ParseUint(raw, 10, 32); err == nil {
			filter.JobID = uint(jobID)
		}
	}

	apps, err := ac.Store.Applications(c.Request.Context(), filter)
	if err != nil {
		log.Println("failed to list applications:", err)
		c.String(http.StatusInternalServerError, "Failed to load applicants")
		return
	}
	statusCounts, err := ac.Store.CountApplicationsByStatus(c.Request.Context())
	if err != nil {
		log.Println("failed to count applications:", err)
		c.String(http.StatusInternalServerError, "Failed to load applicants")
		return
	}

	rows := make([]applicationRow, 0, len(apps))
	total := 0
	for _, app := range apps {
		_, jobErr := ac.Store.Job(c.Request.Context(), app.JobID)
		rows = append(rows, applicationRow{Application: app, HasJob: jobErr == nil})
	}
	for _, n := range statusCounts {
		total += n
	}

	c.HTML(http.StatusOK, "admin_applicants.tmpl", gin.H{
		"Applications": rows,
		"Statuses":     model.ApplicationStatuses,
		"StatusCounts": statusCounts,
		"StatusFilter": filter.Status,
		"JobIDFilter":  filter.JobID,
		"Total":        total,
	})
}

// Detail renders one application for review.
func (ac *Controller) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusNotFound, "Application not found")
		return
	}
	app, err := ac.Store.Application(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.String(http.StatusNotFound, "Application not found")
			return
		}
		log.Println("failed to load application:", err)
		c.String(http.StatusInternalServerError, "Failed to load application")
		return
	}

	_, jobErr := ac.Store.Job(c.Request.Context(), app.JobID)
	c.HTML(http.StatusOK, "admin_applicant_detail.tmpl", gin.H{
		"Application": app,
		"HasJob":      jobErr == nil,
		"Statuses":    model.ApplicationStatuses,
	})
}

// UpdateStatus moves an application through the review workflow. An empty
// status is a no-op that still redirects; a value outside the enum is a 400.
func (ac *Controller) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusNotFound, "Application not found")
		return
	}

	_, err = ac.Store.SetApplicationStatus(c.Request.Context(), uint(id), c.PostForm("status"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.String(http.StatusNotFound, "Application not found")
	case errors.Is(err, store.ErrInvalidStatus):
		c.String(http.StatusBadRequest, "Unknown application status")
	case err != nil:
		log.Println("failed to update application status:", err)
		c.String(http.StatusInternalServerError, "Failed to update status")
	default:
		c.Redirect(http.StatusFound, "/admin/applicants")
	}
}
