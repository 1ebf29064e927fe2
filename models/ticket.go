package models

import "time"

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusClosed     TicketStatus = "closed"
)

type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
)

type SupportTicket struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Reference   string          `gorm:"size:36;not null;uniqueIndex" json:"reference"`
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Subject     string          `gorm:"size:200;not null" json:"subject"`
	Category    string          `gorm:"size:100" json:"category"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Status      TicketStatus    `gorm:"type:ticket_status;default:'open';not null" json:"status"`
	Priority    TicketPriority  `gorm:"size:20;default:'medium'" json:"priority"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	User        User            `gorm:"foreignKey:UserID" json:"user"`
	Messages    []TicketMessage `gorm:"foreignKey:TicketID" json:"messages,omitempty"`
}

type TicketMessage struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	TicketID        uint      `gorm:"not null;index" json:"ticket_id"`
	UserID          uint      `gorm:"not null" json:"user_id"`
	Content         string    `gorm:"type:text;not null" json:"content"`
	IsAdminResponse bool      `gorm:"default:false" json:"is_admin_response"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	User            User      `gorm:"foreignKey:UserID" json:"user"`
}
