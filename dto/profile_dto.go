package dto

type CreateProfileInput struct {
	FullName    string  `json:"full_name" binding:"required"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Skills      string  `json:"skills"`
	HourlyRate  float64 `json:"hourly_rate"`
	Experience  string  `json:"experience"`
}

type UpdateProfileInput struct {
	FullName    *string  `json:"full_name,omitempty"`
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Skills      *string  `json:"skills,omitempty"`
	HourlyRate  *float64 `json:"hourly_rate,omitempty"`
	Experience  *string  `json:"experience,omitempty"`
}
