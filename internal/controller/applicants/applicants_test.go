package applicants_test

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhasan111-hiringdock/FIrstconnect/internal/auth"
	"github.com/dhasan111-hiringdock/FIrstconnect/internal/controller/applicants"
	"github.com/dhasan111-hiringdock/FIrstconnect/internal/middleware"
	"github.com/dhasan111-hiringdock/FIrstconnect/internal/model"
	"github.com/dhasan111-hiringdock/FIrstconnect/internal/store"
	"github.com/dhasan111-hiringdock/FIrstconnect/internal/testutil"
	"github.com/dhasan111-hiringdock/FIrstconnect/internal/upload"
	"github.com/dhasan111-hiringdock/FIrstconnect/internal/view"
)

func applicantsRouter(t *testing.T) (*gin.Engine, *store.Memory) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.NewMemory()
	uploads, err := upload.New(t.TempDir())
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(view.Templates())

	ac := applicants.NewController(s, uploads)
	r.POST("/jobs/:id/apply", ac.Apply)

	admin := r.Group("/admin", middleware.RequireAdmin(auth.NewCookieGate()))
	admin.GET("/applicants", ac.List)
	admin.GET("/applicants/:id", ac.Detail)
	admin.POST("/applicants/:id/status", ac.UpdateStatus)
	return r, s
}

func seedJob(t *testing.T, s *store.Memory, title string) model.Job {
	t.Helper()
	job, err := s.CreateJob(context.Background(), model.JobFields{Title: title})
	require.NoError(t, err)
	return job
}

func TestApply_withCV(t *testing.T) {
	r, s := applicantsRouter(t)
	job := seedJob(t, s, "Head of Growth")

	w := testutil.MakeMultipartRequest(t, r, "/jobs/1/apply", map[string]string{
		"name":  "Asha",
		"email": "asha@example.com",
	}, &testutil.FilePart{
		Field:       "cvFile",
		Name:        "asha-cv.pdf",
		ContentType: "application/pdf",
		Content:     []byte("%PDF-1.4"),
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Head of Growth")

	apps, err := s.Applications(context.Background(), store.ApplicationFilter{JobID: job.ID})
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "Asha", apps[0].Name)
	assert.Equal(t, model.ApplicationStatusNew, apps[0].Status)
	assert.Equal(t, "asha-cv.pdf", apps[0].CVOriginalName)
	assert.Contains(t, apps[0].CVFileURL, upload.URLPrefix+"/")
}

func TestApply_withoutCV(t *testing.T) {
	r, s := applicantsRouter(t)
	seedJob(t, s, "Head of Growth")

	w := testutil.MakeMultipartRequest(t, r, "/jobs/1/apply", map[string]string{
		"name": "Botan",
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)
	apps, err := s.Applications(context.Background(), store.ApplicationFilter{})
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Empty(t, apps[0].CVFileURL)
}

func TestApply_missingJob(t *testing.T) {
	r, s := applicantsRouter(t)

	w := testutil.MakeMultipartRequest(t, r, "/jobs/42/apply", map[string]string{
		"name": "Asha",
	}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	apps, err := s.Applications(context.Background(), store.ApplicationFilter{})
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestApply_rejectedFileBlocksSubmission(t *testing.T) {
	r, s := applicantsRouter(t)
	seedJob(t, s, "Head of Growth")

	w := testutil.MakeMultipartRequest(t, r, "/jobs/1/apply", map[string]string{
		"name": "Asha",
	}, &testutil.FilePart{
		Field:       "cvFile",
		Name:        "malware.exe",
		ContentType: "application/octet-stream",
		Content:     []byte("MZ"),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The record is never created when the file fails validation.
	apps, err := s.Applications(context.Background(), store.ApplicationFilter{})
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestApply_oversizedFile(t *testing.T) {
	r, s := applicantsRouter(t)
	seedJob(t, s, "Head of Growth")

	w := testutil.MakeMultipartRequest(t, r, "/jobs/1/apply", map[string]string{
		"name": "Asha",
	}, &testutil.FilePart{
		Field:       "cvFile",
		Name:        "huge.pdf",
		ContentType: "application/pdf",
		Content:     bytes.Repeat([]byte("a"), 6<<20),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	apps, err := s.Applications(context.Background(), store.ApplicationFilter{})
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestList_filters(t *testing.T) {
	r, s := applicantsRouter(t)
	jobA := seedJob(t, s, "Head of Growth")
	jobB := seedJob(t, s, "Data Analyst")

	asha, err := s.CreateApplication(context.Background(), jobA.ID, model.ApplicantFields{Name: "Asha"}, nil)
	require.NoError(t, err)
	_, err = s.CreateApplication(context.Background(), jobB.ID, model.ApplicantFields{Name: "Botan"}, nil)
	require.NoError(t, err)
	_, err = s.SetApplicationStatus(context.Background(), asha.ID, "shortlisted")
	require.NoError(t, err)

	w := testutil.MakeFormRequest(r, http.MethodGet, "/admin/applicants", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Asha")
	assert.Contains(t, w.Body.String(), "Botan")

	w = testutil.MakeFormRequest(r, http.MethodGet, "/admin/applicants?status=shortlisted", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Asha")
	assert.NotContains(t, w.Body.String(), "Botan")

	w = testutil.MakeFormRequest(r, http.MethodGet, "/admin/applicants?jobId=2", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Botan")
	assert.NotContains(t, w.Body.String(), "Asha")

	// A non-numeric jobId is ignored, not an error.
	w = testutil.MakeFormRequest(r, http.MethodGet, "/admin/applicants?jobId=bogus", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Asha")
}

func TestList_requiresAdmin(t *testing.T) {
	r, _ := applicantsRouter(t)

	w := testutil.MakeFormRequest(r, http.MethodGet, "/admin/applicants", nil, false)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}

func TestDetail(t *testing.T) {
	r, s := applicantsRouter(t)
	job := seedJob(t, s, "Head of Growth")
	app, err := s.CreateApplication(context.Background(), job.ID, model.ApplicantFields{
		Name:  "Asha",
		Email: "asha@example.com",
	}, nil)
	require.NoError(t, err)

	w := testutil.MakeFormRequest(r, http.MethodGet, "/admin/applicants/1", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), app.Name)
	assert.Contains(t, w.Body.String(), app.Email)

	w = testutil.MakeFormRequest(r, http.MethodGet, "/admin/applicants/99", nil, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateStatus(t *testing.T) {
	r, s := applicantsRouter(t)
	job := seedJob(t, s, "Head of Growth")
	app, err := s.CreateApplication(context.Background(), job.ID, model.ApplicantFields{Name: "Asha"}, nil)
	require.NoError(t, err)

	w := testutil.MakeFormRequest(r, http.MethodPost, "/admin/applicants/1/status", url.Values{
		"status": {"review"},
	}, true)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/applicants", w.Header().Get("Location"))

	updated, err := s.Application(context.Background(), app.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusReview, updated.Status)

	// An empty value still redirects and changes nothing.
	w = testutil.MakeFormRequest(r, http.MethodPost, "/admin/applicants/1/status", url.Values{
		"status": {""},
	}, true)
	require.Equal(t, http.StatusFound, w.Code)
	unchanged, err := s.Application(context.Background(), app.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusReview, unchanged.Status)

	// Values outside the workflow enum are rejected.
	w = testutil.MakeFormRequest(r, http.MethodPost, "/admin/applicants/1/status", url.Values{
		"status": {"hired"},
	}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = testutil.MakeFormRequest(r, http.MethodPost, "/admin/applicants/99/status", url.Values{
		"status": {"review"},
	}, true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
