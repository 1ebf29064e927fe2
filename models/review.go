package models

import "time"

// Review is written by the project's client about the assigned freelancer,
// once per project, only after completion. The unique index backstops the
// once-per-project rule under concurrent submissions.
type Review struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProjectID    uint      `gorm:"not null;uniqueIndex:idx_review_project_reviewer" json:"project_id"`
	ReviewerID   uint      `gorm:"not null;uniqueIndex:idx_review_project_reviewer" json:"reviewer_id"`
	FreelancerID uint      `gorm:"not null;index" json:"freelancer_id"`
	Rating       int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment      string    `gorm:"type:text" json:"comment"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	Reviewer     User      `gorm:"foreignKey:ReviewerID" json:"reviewer"`
}
