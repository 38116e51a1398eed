package model

import "time"

// ApplicationStatus is the review-workflow state of an application.
type ApplicationStatus string

const (
	// ApplicationStatusNew indicates that the application has not been looked at yet
	ApplicationStatusNew ApplicationStatus = "new"
	// ApplicationStatusReview indicates that the admin is currently reviewing the application
	ApplicationStatusReview ApplicationStatus = "review"
	// ApplicationStatusShortlisted indicates that the candidate made the shortlist
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	// ApplicationStatusRejected indicates that the application has been rejected
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// ApplicationStatuses lists the workflow states in review order, for filter
// dropdowns and exhaustive rendering.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusNew,
	ApplicationStatusReview,
	ApplicationStatusShortlisted,
	ApplicationStatusRejected,
}

// Valid reports whether s is one of the four workflow states.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusNew, ApplicationStatusReview,
		ApplicationStatusShortlisted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Label is the human-readable form shown on the admin pages.
func (s ApplicationStatus) Label() string {
	switch s {
	case ApplicationStatusNew:
		return "New"
	case ApplicationStatusReview:
		return "In review"
	case ApplicationStatusShortlisted:
		return "Shortlisted"
	case ApplicationStatusRejected:
		return "Rejected"
	}
	return string(s)
}

// ApplicantFields holds everything the candidate types into the apply form.
// All fields are optional free text; CV is a link, not the uploaded file.
type ApplicantFields struct {
	Name       string `gorm:"type:text" form:"name" json:"name"`
	Email      string `gorm:"type:text" form:"email" json:"email"`
	Phone      string `gorm:"type:text" form:"phone" json:"phone"`
	Experience string `gorm:"type:text" form:"experience" json:"experience"`
	CV         string `gorm:"column:cv;type:text" form:"cv" json:"cv"`
	Note       string `gorm:"type:text" form:"note" json:"note"`
}

// Application is the gorm model for one candidate submission against one job.
//
// JobID deliberately carries no foreign key constraint: deleting a job must
// leave its applications behind, displayed through the JobTitle snapshot
// taken at submission time. Only Status is mutable after creation.
type Application struct {
	ID              uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	JobID           uint   `gorm:"index;<-:create" json:"job_id"`
	JobTitle        string `gorm:"type:text;<-:create" json:"job_title"`
	ApplicantFields `gorm:"embedded"`
	CVFileURL       string            `gorm:"type:text;<-:create" json:"cv_file_url"`
	CVOriginalName  string            `gorm:"type:text;<-:create" json:"cv_original_name"`
	CreatedAt       time.Time         `gorm:"type:timestamp;<-:create" json:"created_at"`
	Status          ApplicationStatus `gorm:"type:text" json:"status"`
}
