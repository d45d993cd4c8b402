package models

import "time"

// ReviewStatus defines the moderation state of a review
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

// ServiceCategories lists the services a review can be submitted for.
var ServiceCategories = []string{
	"System Development",
	"Website Development",
	"Database Design",
	"API Integration",
	"Mobile Development",
	"Other",
}

// IsValidService reports whether service is one of the known categories.
func IsValidService(service string) bool {
	for _, s := range ServiceCategories {
		if s == service {
			return true
		}
	}
	return false
}

// IsValidStatus reports whether status is a moderation target an admin may
// set. New reviews always start as pending, so pending is not a valid target.
func IsValidStatus(status ReviewStatus) bool {
	return status == ReviewStatusApproved || status == ReviewStatusRejected
}

// Review is a submitted rating-and-comment record tied to a service category.
// Deletion is a hard delete: a removed review is gone for good, so there is
// no soft-delete column.
type Review struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Service string `gorm:"not null;index" json:"service"`

	// Overall rating is required; the detailed ratings are optional and 0
	// when the submitter skipped them.
	OverallRating int `gorm:"not null;check:overall_rating >= 1 AND overall_rating <= 5" json:"overallRating"`
	Satisfaction  int `json:"satisfaction"`
	Quality       int `json:"quality"`
	Communication int `json:"communication"`
	Timeliness    int `json:"timeliness"`
	Value         int `json:"value"`

	Comments string `gorm:"type:text" json:"comments"`

	// Enhanced form fields
	ProjectType            string `gorm:"default:'Not specified'" json:"projectType"`
	ProjectDuration        string `gorm:"default:'Not specified'" json:"projectDuration"`
	Budget                 string `gorm:"default:'Not specified'" json:"budget"`
	WouldRecommend         bool   `gorm:"default:false" json:"wouldRecommend"`
	ImprovementSuggestions string `gorm:"type:text" json:"improvementSuggestions"`
	ContactPermission      bool   `gorm:"default:false" json:"contactPermission"`

	Status        ReviewStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	AdminResponse string       `gorm:"type:text" json:"adminResponse"`
}
