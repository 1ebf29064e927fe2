package models

import "time"

type ProjectStatus string

const (
	ProjectStatusOpen       ProjectStatus = "open"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusCancelled  ProjectStatus = "cancelled"
	ProjectStatusHidden     ProjectStatus = "hidden"
)

type Project struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	Slug           string        `gorm:"size:220;not null;uniqueIndex" json:"slug"`
	Title          string        `gorm:"size:200;not null" json:"title"`
	Description    string        `gorm:"type:text;not null" json:"description"`
	Budget         float64       `json:"budget"`
	Category       string        `gorm:"size:100" json:"category"`
	SkillsRequired string        `gorm:"size:500" json:"skills_required"`
	Status         ProjectStatus `gorm:"type:project_status;default:'open';not null" json:"status"`
	ClientID       uint          `gorm:"not null;index" json:"client_id"`
	FreelancerID   *uint         `gorm:"index" json:"freelancer_id"`
	CreatedAt      time.Time     `gorm:"autoCreateTime" json:"created_at"`
	CompletedAt    *time.Time    `json:"completed_at"`
	Client         User          `gorm:"foreignKey:ClientID" json:"client"`
	Freelancer     *User         `gorm:"foreignKey:FreelancerID" json:"freelancer,omitempty"`
}

type ResponseStatus string

const (
	ResponseStatusPending  ResponseStatus = "pending"
	ResponseStatusAccepted ResponseStatus = "accepted"
	ResponseStatusRejected ResponseStatus = "rejected"
)

// ProjectResponse is a freelancer's bid on a project. The composite unique
// index closes the double-submit race at the storage level.
type ProjectResponse struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	ProjectID      uint           `gorm:"not null;uniqueIndex:idx_response_project_freelancer" json:"project_id"`
	FreelancerID   uint           `gorm:"not null;uniqueIndex:idx_response_project_freelancer" json:"freelancer_id"`
	Message        string         `gorm:"type:text" json:"message"`
	ProposedBudget float64        `json:"proposed_budget"`
	Status         ResponseStatus `gorm:"type:response_status;default:'pending';not null" json:"status"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	Project        Project        `gorm:"foreignKey:ProjectID" json:"-"`
	Freelancer     User           `gorm:"foreignKey:FreelancerID" json:"freelancer"`
}

type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_favorite_user_project" json:"user_id"`
	ProjectID uint      `gorm:"not null;uniqueIndex:idx_favorite_user_project" json:"project_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	Project   Project   `gorm:"foreignKey:ProjectID" json:"project"`
}
