package dto

type CreateTicketDTO struct {
	Subject     string `json:"subject" binding:"required"`
	Category    string `json:"category"`
	Description string `json:"description" binding:"required"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

type TicketReplyDTO struct {
	Content string `json:"content" binding:"required"`
}
