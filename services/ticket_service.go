package services

import (
	"errors"

	"github.com/Krasmol/platform-for-freelancers/dto"
	"github.com/Krasmol/platform-for-freelancers/events"
	"github.com/Krasmol/platform-for-freelancers/models"
	"github.com/Krasmol/platform-for-freelancers/repositories"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrTicketNotFound = errors.New("ticket not found")

type TicketService struct {
	repos      *repositories.Repos
	dispatcher *NotificationDispatcher
	pub        events.Publisher
}

func (s *TicketService) Create(actorID uint, input dto.CreateTicketDTO) (models.SupportTicket, error) {
	author, err := s.repos.User.FindByID(actorID)
	if err != nil {
		return models.SupportTicket{}, err
	}

	priority := models.TicketPriority(input.Priority)
	if priority == "" {
		priority = models.TicketPriorityMedium
	}

	ticket := models.SupportTicket{
		Reference:   uuid.NewString(),
		UserID:      actorID,
		Subject:     input.Subject,
		Category:    input.Category,
		Description: input.Description,
		Status:      models.TicketStatusOpen,
		Priority:    priority,
	}

	var created []models.Notification
	err = s.repos.Atomic(func(tx *repositories.Repos) error {
		if err := tx.Ticket.Create(&ticket); err != nil {
			return err
		}

		opening := models.TicketMessage{
			TicketID: ticket.ID,
			UserID:   actorID,
			Content:  input.Description,
		}
		if err := tx.Ticket.CreateMessage(&opening); err != nil {
			return err
		}

		var err error
		created, err = s.dispatcher.Dispatch(tx, events.TicketOpened{Ticket: ticket, Author: author})
		return err
	})
	if err != nil {
		return models.SupportTicket{}, err
	}

	signal(s.pub, created)
	return ticket, nil
}

func (s *TicketService) ListMine(actorID uint) ([]models.SupportTicket, error) {
	return s.repos.Ticket.ListByUser(actorID)
}

func (s *TicketService) ListAll(status string) ([]models.SupportTicket, error) {
	return s.repos.Ticket.ListAll(status)
}

// Find returns the ticket with its thread. Access is restricted to the
// owner and moderators.
func (s *TicketService) Find(actorID uint, actorRole models.UserRole, id uint) (models.SupportTicket, error) {
	ticket, err := s.repos.Ticket.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.SupportTicket{}, ErrTicketNotFound
		}
		return models.SupportTicket{}, err
	}
	if ticket.UserID != actorID && actorRole != models.UserRoleModerator {
		return models.SupportTicket{}, ErrAccessDenied
	}

	messages, err := s.repos.Ticket.ListMessages(id)
	if err != nil {
		return models.SupportTicket{}, err
	}
	ticket.Messages = messages
	return ticket, nil
}

// Reply appends to the thread. A moderator reply on an open ticket moves it
// to in_progress; no other reply changes status.
func (s *TicketService) Reply(actorID uint, actorRole models.UserRole, id uint, input dto.TicketReplyDTO) (models.TicketMessage, error) {
	ticket, err := s.repos.Ticket.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.TicketMessage{}, ErrTicketNotFound
		}
		return models.TicketMessage{}, err
	}

	fromModerator := actorRole == models.UserRoleModerator
	if ticket.UserID != actorID && !fromModerator {
		return models.TicketMessage{}, ErrAccessDenied
	}

	author, err := s.repos.User.FindByID(actorID)
	if err != nil {
		return models.TicketMessage{}, err
	}

	message := models.TicketMessage{
		TicketID:        id,
		UserID:          actorID,
		Content:         input.Content,
		IsAdminResponse: fromModerator,
	}

	var created []models.Notification
	err = s.repos.Atomic(func(tx *repositories.Repos) error {
		if err := tx.Ticket.CreateMessage(&message); err != nil {
			return err
		}

		if fromModerator && ticket.Status == models.TicketStatusOpen {
			ticket.Status = models.TicketStatusInProgress
		}
		if err := tx.Ticket.Save(&ticket); err != nil {
			return err
		}

		var err error
		created, err = s.dispatcher.Dispatch(tx, events.TicketReplied{
			Ticket:        ticket,
			Author:        author,
			FromModerator: fromModerator,
		})
		return err
	})
	if err != nil {
		return models.TicketMessage{}, err
	}

	signal(s.pub, created)
	return message, nil
}

func (s *TicketService) Close(actorID uint, actorRole models.UserRole, id uint) (models.SupportTicket, error) {
	ticket, err := s.repos.Ticket.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.SupportTicket{}, ErrTicketNotFound
		}
		return models.SupportTicket{}, err
	}
	if ticket.UserID != actorID && actorRole != models.UserRoleModerator {
		return models.SupportTicket{}, ErrAccessDenied
	}

	ticket.Status = models.TicketStatusClosed
	if err := s.repos.Ticket.Save(&ticket); err != nil {
		return models.SupportTicket{}, err
	}
	return ticket, nil
}
