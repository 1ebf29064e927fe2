package repositories

import (
	"github.com/Krasmol/platform-for-freelancers/models"
	"gorm.io/gorm"
)

type TicketRepo interface {
	Create(ticket *models.SupportTicket) error
	FindByID(id uint) (models.SupportTicket, error)
	ListByUser(userID uint) ([]models.SupportTicket, error)
	ListAll(status string) ([]models.SupportTicket, error)
	Save(ticket *models.SupportTicket) error
	CreateMessage(message *models.TicketMessage) error
	ListMessages(ticketID uint) ([]models.TicketMessage, error)
}

type DBTicketRepo struct {
	db *gorm.DB
}

func (r *DBTicketRepo) Create(ticket *models.SupportTicket) error {
	return r.db.Create(ticket).Error
}

func (r *DBTicketRepo) FindByID(id uint) (models.SupportTicket, error) {
	var ticket models.SupportTicket
	if err := r.db.Preload("User").First(&ticket, id).Error; err != nil {
		return models.SupportTicket{}, err
	}
	return ticket, nil
}

func (r *DBTicketRepo) ListByUser(userID uint) ([]models.SupportTicket, error) {
	var tickets []models.SupportTicket
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&tickets).Error
	return tickets, err
}

// ListAll returns tickets newest-first; status narrows the set, where "open"
// covers both open and in_progress as on the moderator dashboard.
func (r *DBTicketRepo) ListAll(status string) ([]models.SupportTicket, error) {
	query := r.db.Preload("User").Order("created_at desc")

	switch status {
	case "", "all":
	case string(models.TicketStatusOpen):
		query = query.Where("status IN ?", []models.TicketStatus{models.TicketStatusOpen, models.TicketStatusInProgress})
	default:
		query = query.Where("status = ?", status)
	}

	var tickets []models.SupportTicket
	err := query.Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) Save(ticket *models.SupportTicket) error {
	return r.db.Save(ticket).Error
}

func (r *DBTicketRepo) CreateMessage(message *models.TicketMessage) error {
	return r.db.Create(message).Error
}

func (r *DBTicketRepo) ListMessages(ticketID uint) ([]models.TicketMessage, error) {
	var messages []models.TicketMessage
	err := r.db.Preload("User").Where("ticket_id = ?", ticketID).Order("created_at asc").Find(&messages).Error
	return messages, err
}
