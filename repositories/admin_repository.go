package repositories

import (
	"github.com/Krasmol/platform-for-freelancers/models"
	"gorm.io/gorm"
)

type AdminRepo interface {
	Stats() (models.AdminStats, error)
}

type DBAdminRepo struct {
	db *gorm.DB
}

func (r *DBAdminRepo) Stats() (models.AdminStats, error) {
	var stats models.AdminStats

	counts := []struct {
		dest  *int64
		model interface{}
		query string
		args  []interface{}
	}{
		{&stats.TotalUsers, &models.User{}, "", nil},
		{&stats.TotalProjects, &models.Project{}, "", nil},
		{&stats.OpenProjects, &models.Project{}, "status = ?", []interface{}{models.ProjectStatusOpen}},
		{&stats.CompletedProjects, &models.Project{}, "status = ?", []interface{}{models.ProjectStatusCompleted}},
		{&stats.TotalTickets, &models.SupportTicket{}, "", nil},
		{&stats.OpenTickets, &models.SupportTicket{}, "status IN ?", []interface{}{[]models.TicketStatus{models.TicketStatusOpen, models.TicketStatusInProgress}}},
		{&stats.ClosedTickets, &models.SupportTicket{}, "status = ?", []interface{}{models.TicketStatusClosed}},
	}

	for _, c := range counts {
		query := r.db.Model(c.model)
		if c.query != "" {
			query = query.Where(c.query, c.args...)
		}
		if err := query.Count(c.dest).Error; err != nil {
			return models.AdminStats{}, err
		}
	}

	return stats, nil
}
