package models

import "time"

type NotificationType string

const (
	NotificationTypeSystem           NotificationType = "system"
	NotificationTypeMessage          NotificationType = "message"
	NotificationTypeProjectResponse  NotificationType = "project_response"
	NotificationTypeProjectAccepted  NotificationType = "project_accepted"
	NotificationTypeProjectRejected  NotificationType = "project_rejected"
	NotificationTypeProjectCompleted NotificationType = "project_completed"
	NotificationTypeProjectCancelled NotificationType = "project_cancelled"
	NotificationTypeReview           NotificationType = "review"
	NotificationTypeWarning          NotificationType = "warning"
)

// Notification rows are written only by the dispatcher as a side effect of
// another entity's state change, never directly by end users.
type Notification struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    uint             `gorm:"not null;index" json:"user_id"`
	Title     string           `gorm:"size:200;not null" json:"title"`
	Message   string           `gorm:"type:text;not null" json:"message"`
	Type      NotificationType `gorm:"size:50;column:notification_type" json:"type"`
	IsRead    bool             `gorm:"default:false" json:"is_read"`
	RelatedID *uint            `json:"related_id"`
	CreatedAt time.Time        `gorm:"autoCreateTime" json:"created_at"`
}
