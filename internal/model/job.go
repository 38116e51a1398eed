package model

// JobStatus is the lifecycle state of a listing on the board.
type JobStatus string

const (
	// JobStatusActive means the listing is visible on the public board
	JobStatusActive JobStatus = "active"
	// JobStatusArchived means the listing is hidden from the public board but kept for the admin
	JobStatusArchived JobStatus = "archived"
)

// Label is the human-readable form shown on the admin dashboard.
func (s JobStatus) Label() string {
	if s == JobStatusActive {
		return "Active"
	}
	return "Archived"
}

// DefaultJobType fills the type field whenever the admin form leaves it blank.
const DefaultJobType = "Full-time"

// JobFields holds every admin-editable field of a listing. Submitting the edit
// form replaces the whole struct, it is never treated as a patch.
type JobFields struct {
	Title       string `gorm:"type:text" form:"title" json:"title"`
	Company     string `gorm:"type:text" form:"company" json:"company"`
	Location    string `gorm:"type:text" form:"location" json:"location"`
	Type        string `gorm:"type:text" form:"type" json:"type"`
	Rate        string `gorm:"type:text" form:"rate" json:"rate"`
	Deadline    string `gorm:"type:text" form:"deadline" json:"deadline"`
	Description string `gorm:"type:text" form:"description" json:"description"`
}

// Normalized returns the fields with the type fallback applied.
func (f JobFields) Normalized() JobFields {
	if f.Type == "" {
		f.Type = DefaultJobType
	}
	return f
}

// Job is the gorm model for a listing posted by the admin.
type Job struct {
	ID        uint `gorm:"primaryKey;autoIncrement;->" json:"id"`
	JobFields `gorm:"embedded"`
	Status    JobStatus `gorm:"type:text" json:"status"`
}
