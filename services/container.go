package services

import (
	"github.com/Krasmol/platform-for-freelancers/events"
	"github.com/Krasmol/platform-for-freelancers/models"
	"github.com/Krasmol/platform-for-freelancers/repositories"
)

type Services struct {
	User         *UserService
	Profile      *ProfileService
	Project      *ProjectService
	Message      *MessageService
	Notification *NotificationService
	Ticket       *TicketService
	Review       *ReviewService
	Admin        *AdminService
}

func New(repos *repositories.Repos, pub events.Publisher) *Services {
	dispatcher := NewNotificationDispatcher()
	return &Services{
		User:         &UserService{repos: repos, dispatcher: dispatcher, pub: pub},
		Profile:      &ProfileService{repos: repos, dispatcher: dispatcher, pub: pub},
		Project:      &ProjectService{repos: repos, dispatcher: dispatcher, pub: pub},
		Message:      &MessageService{repos: repos, dispatcher: dispatcher, pub: pub},
		Notification: &NotificationService{repos: repos},
		Ticket:       &TicketService{repos: repos, dispatcher: dispatcher, pub: pub},
		Review:       &ReviewService{repos: repos, dispatcher: dispatcher, pub: pub},
		Admin:        &AdminService{repos: repos, dispatcher: dispatcher, pub: pub},
	}
}

// signal pings every notification recipient once the transaction that wrote
// the rows has committed.
func signal(pub events.Publisher, notifications []models.Notification) {
	if pub == nil {
		return
	}
	for _, n := range notifications {
		pub.Publish(n.UserID, "notification")
	}
}
