// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	"github.com/dhasan111-hiringdock/FIrstconnect/internal/auth"
	"github.com/dhasan111-hiringdock/FIrstconnect/internal/controller/applicants"
	"github.com/dhasan111-hiringdock/FIrstconnect/internal/controller/jobs"
	"github.com/dhasan111-hiringdock/FIrstconnect/internal/middleware"
	"github.com/dhasan111-hiringdock/FIrstconnect/internal/view"
)

// applyBodyLimit caps the multipart apply request. Generous enough for the
// 5 MiB CV plus form fields; the upload store enforces the exact file cap.
const applyBodyLimit = 6 << 20

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.Default()

	if allowOrginsStr := os.Getenv("ALLOW_ORIGIN"); allowOrginsStr != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Split(allowOrginsStr, ","),
			AllowMethods:     []string{"GET", "POST"},
			AllowHeaders:     []string{"Accept", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	r.SetHTMLTemplate(view.Templates())
	r.StaticFS("/static", view.StaticFS())
	r.Static("/uploads", s.Uploads.Dir())

	login := auth.NewLoginHandler(s.Gate)
	jobController := jobs.NewController(s.Store)
	applicantController := applicants.NewController(s.Store, s.Uploads)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/jobs")
	})
	r.GET("/health", s.healthHandler)
	r.GET("/contact", s.contactHandler)

	r.GET("/jobs", jobController.Board)
	r.GET("/jobs/:id", jobController.Detail)
	r.POST("/jobs/:id/apply",
		middleware.EnvRateLimitMiddleware(),
		middleware.SizeLimit(applyBodyLimit),
		applicantController.Apply,
	)

	r.GET("/admin/login", login.ShowLogin)
	r.POST("/admin/login", middleware.EnvRateLimitMiddleware(), login.Login)
	r.POST("/admin/logout", login.Logout)

	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdmin(s.Gate))
	{
		admin.GET("/jobs", jobController.Dashboard)
		admin.POST("/jobs", jobController.Create)
		admin.GET("/jobs/:id/edit", jobController.EditForm)
		// Gated like its siblings; the portal this replaced left the update
		// route open.
		admin.POST("/jobs/:id/edit", jobController.Update)
		admin.POST("/jobs/:id/delete", jobController.Delete)
		admin.POST("/jobs/:id/archive", jobController.Archive)
		admin.POST("/jobs/:id/activate", jobController.Activate)

		admin.GET("/applicants", applicantController.List)
		admin.GET("/applicants/:id", applicantController.Detail)
		admin.POST("/applicants/:id/status", applicantController.UpdateStatus)
	}

	return r
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.Store.Health(c.Request.Context()))
}

func (s *Server) contactHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.tmpl", gin.H{})
}
