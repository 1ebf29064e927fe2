package models

type Profile struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	UserID      uint    `gorm:"not null;uniqueIndex" json:"user_id"`
	FullName    string  `gorm:"size:100" json:"full_name"`
	Title       string  `gorm:"size:100" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Skills      string  `gorm:"size:500" json:"skills"`
	HourlyRate  float64 `json:"hourly_rate"`
	Experience  string  `gorm:"size:50" json:"experience"`
	User        User    `gorm:"foreignKey:UserID" json:"-"`
}
