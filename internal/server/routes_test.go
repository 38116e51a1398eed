package server

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhasan111-hiringdock/FIrstconnect/internal/auth"
	"github.com/dhasan111-hiringdock/FIrstconnect/internal/model"
	"github.com/dhasan111-hiringdock/FIrstconnect/internal/store"
	"github.com/dhasan111-hiringdock/FIrstconnect/internal/testutil"
	"github.com/dhasan111-hiringdock/FIrstconnect/internal/upload"
)

func testServer(t *testing.T) (*gin.Engine, *store.Memory) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem := store.NewMemory()
	require.NoError(t, mem.SeedJobs(context.Background(), model.StarterJobs))
	uploads, err := upload.New(t.TempDir())
	require.NoError(t, err)

	s := &Server{
		Store:   mem,
		Uploads: uploads,
		Gate:    auth.NewCookieGate(),
	}
	return s.RegisterRoutes().(*gin.Engine), mem
}

func TestRootRedirectsToBoard(t *testing.T) {
	r, _ := testServer(t)

	w := testutil.MakeFormRequest(r, http.MethodGet, "/", nil, false)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/jobs", w.Header().Get("Location"))
}

func TestHealthHandler(t *testing.T) {
	r, _ := testServer(t)

	w := testutil.MakeFormRequest(r, http.MethodGet, "/health", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "status")
}

func TestContactPage(t *testing.T) {
	r, _ := testServer(t)

	w := testutil.MakeFormRequest(r, http.MethodGet, "/contact", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBoardShowsStarterJobs(t *testing.T) {
	r, _ := testServer(t)

	w := testutil.MakeFormRequest(r, http.MethodGet, "/jobs", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	for _, job := range model.StarterJobs {
		assert.Contains(t, w.Body.String(), job.Title)
	}
}

// The whole hiring loop against the mounted routes: sign in, post a job,
// receive a public application, shortlist it.
func TestHiringFlow(t *testing.T) {
	r, mem := testServer(t)

	w := testutil.MakeFormRequest(r, http.MethodPost, "/admin/login", url.Values{
		"email": {auth.DefaultAdminEmail},
	}, false)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin/jobs", w.Header().Get("Location"))

	w = testutil.MakeFormRequest(r, http.MethodPost, "/admin/jobs", url.Values{
		"title":    {"Site Reliability Engineer"},
		"company":  {"FirstConnect"},
		"location": {"Remote"},
	}, true)
	require.Equal(t, http.StatusFound, w.Code)

	active, err := mem.ActiveJobs(context.Background(), store.JobFilter{Query: "Site Reliability"})
	require.NoError(t, err)
	require.Len(t, active, 1)
	jobID := active[0].ID

	w = testutil.MakeMultipartRequest(t, r, "/jobs/"+itoa(jobID)+"/apply", map[string]string{
		"name":  "Asha",
		"email": "asha@example.com",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Site Reliability Engineer")

	apps, err := mem.Applications(context.Background(), store.ApplicationFilter{JobID: jobID})
	require.NoError(t, err)
	require.Len(t, apps, 1)

	w = testutil.MakeFormRequest(r, http.MethodPost, "/admin/applicants/"+itoa(apps[0].ID)+"/status", url.Values{
		"status": {"shortlisted"},
	}, true)
	require.Equal(t, http.StatusFound, w.Code)

	updated, err := mem.Application(context.Background(), apps[0].ID)
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationStatusShortlisted, updated.Status)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
