package models

type AdminStats struct {
	TotalUsers        int64 `json:"total_users"`
	TotalProjects     int64 `json:"total_projects"`
	OpenProjects      int64 `json:"open_projects"`
	CompletedProjects int64 `json:"completed_projects"`
	TotalTickets      int64 `json:"total_tickets"`
	OpenTickets       int64 `json:"open_tickets"`
	ClosedTickets     int64 `json:"closed_tickets"`
}
