package models

import "time"

type UserRole string

const (
	UserRoleClient     UserRole = "client"
	UserRoleFreelancer UserRole = "freelancer"
	UserRoleModerator  UserRole = "moderator"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:64;not null;unique" json:"username"`
	Email     string    `gorm:"size:120;not null;unique" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      UserRole  `gorm:"type:user_role;default:'freelancer';not null" json:"role"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (u *User) IsModerator() bool {
	return u.Role == UserRoleModerator
}

func (u *User) IsClient() bool {
	return u.Role == UserRoleClient
}
