package models

import "time"

// Message is a directed edge between two users. A chat has no entity of its
// own: it is the set of messages whose {sender, receiver} equals the pair.
type Message struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderID   uint      `gorm:"not null;index" json:"sender_id"`
	ReceiverID uint      `gorm:"not null;index" json:"receiver_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	IsRead     bool      `gorm:"default:false" json:"is_read"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	Sender     User      `gorm:"foreignKey:SenderID" json:"-"`
	Receiver   User      `gorm:"foreignKey:ReceiverID" json:"-"`
}

// Chat is the derived chat-list entry for one counterpart.
type Chat struct {
	User        User     `json:"user"`
	LastMessage *Message `json:"last_message"`
	UnreadCount int64    `json:"unread_count"`
}
