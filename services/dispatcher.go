package services

import (
	"fmt"

	"github.com/Krasmol/platform-for-freelancers/events"
	"github.com/Krasmol/platform-for-freelancers/models"
	"github.com/Krasmol/platform-for-freelancers/repositories"
)

// NotificationDispatcher turns domain events into notification rows. It is
// invoked with the transaction-scoped container of the operation that
// produced the event, so the rows commit or roll back with their cause.
type NotificationDispatcher struct{}

func NewNotificationDispatcher() *NotificationDispatcher {
	return &NotificationDispatcher{}
}

// Dispatch writes the notifications for ev and returns them so the caller
// can signal connected clients once the transaction has committed.
func (d *NotificationDispatcher) Dispatch(r *repositories.Repos, ev events.Event) ([]models.Notification, error) {
	var rows []models.Notification

	switch ev := ev.(type) {
	case events.UserRegistered:
		rows = append(rows, models.Notification{
			UserID:  ev.User.ID,
			Title:   "Welcome to FreelanceHub!",
			Message: "Thanks for registering. Fill in your profile to get started.",
			Type:    models.NotificationTypeSystem,
		})

	case events.UserBanned:
		rows = append(rows, models.Notification{
			UserID:  ev.User.ID,
			Title:   "Account blocked",
			Message: "Your account has been blocked by a moderator. Contact support for details.",
			Type:    models.NotificationTypeWarning,
		})

	case events.ProfileCreated:
		rows = append(rows, models.Notification{
			UserID:  ev.UserID,
			Title:   "Profile created!",
			Message: "Your profile is ready. You can now browse projects or post your own.",
			Type:    models.NotificationTypeSystem,
		})

	case events.ProjectPublished:
		rows = append(rows, models.Notification{
			UserID:    ev.Project.ClientID,
			Title:     "Project published!",
			Message:   fmt.Sprintf("Your project %q has been published.", ev.Project.Title),
			Type:      models.NotificationTypeSystem,
			RelatedID: &ev.Project.ID,
		})

	case events.ResponseSubmitted:
		rows = append(rows, models.Notification{
			UserID:    ev.Project.ClientID,
			Title:     "New response to your project!",
			Message:   fmt.Sprintf("%s responded to your project %q.", ev.Freelancer.Username, ev.Project.Title),
			Type:      models.NotificationTypeProjectResponse,
			RelatedID: &ev.Project.ID,
		})

	case events.ResponseAccepted:
		rows = append(rows, models.Notification{
			UserID:    ev.Response.FreelancerID,
			Title:     "Your response was accepted!",
			Message:   fmt.Sprintf("You were chosen for the project %q. The client has opened a chat with you.", ev.Project.Title),
			Type:      models.NotificationTypeProjectAccepted,
			RelatedID: &ev.Project.ID,
		})

	case events.ResponseRejected:
		rows = append(rows, models.Notification{
			UserID:    ev.Response.FreelancerID,
			Title:     "Response declined",
			Message:   fmt.Sprintf("Your response to the project %q was declined.", ev.Project.Title),
			Type:      models.NotificationTypeProjectRejected,
			RelatedID: &ev.Project.ID,
		})

	case events.ProjectCompleted:
		other := ev.Project.ClientID
		if ev.ActorID == ev.Project.ClientID && ev.Project.FreelancerID != nil {
			other = *ev.Project.FreelancerID
		}
		rows = append(rows, models.Notification{
			UserID:    other,
			Title:     "Project completed",
			Message:   fmt.Sprintf("The project %q has been marked as completed.", ev.Project.Title),
			Type:      models.NotificationTypeProjectCompleted,
			RelatedID: &ev.Project.ID,
		})

	case events.ProjectCancelled:
		if ev.Project.FreelancerID != nil {
			rows = append(rows, models.Notification{
				UserID:    *ev.Project.FreelancerID,
				Title:     "Project cancelled",
				Message:   fmt.Sprintf("The project %q was cancelled by the client.", ev.Project.Title),
				Type:      models.NotificationTypeProjectCancelled,
				RelatedID: &ev.Project.ID,
			})
		}

	case events.MessageSent:
		rows = append(rows, models.Notification{
			UserID:    ev.Message.ReceiverID,
			Title:     "New message",
			Message:   fmt.Sprintf("%s: %s", ev.Sender.Username, truncate(ev.Message.Content, 50)),
			Type:      models.NotificationTypeMessage,
			RelatedID: &ev.Sender.ID,
		})

	case events.ReviewSubmitted:
		rows = append(rows, models.Notification{
			UserID:    ev.Review.FreelancerID,
			Title:     "New review",
			Message:   fmt.Sprintf("You received a %d-star review for the project %q.", ev.Review.Rating, ev.Project.Title),
			Type:      models.NotificationTypeReview,
			RelatedID: &ev.Project.ID,
		})

	case events.TicketOpened:
		moderators, err := r.User.ListModerators()
		if err != nil {
			return nil, err
		}
		for _, m := range moderators {
			rows = append(rows, models.Notification{
				UserID:    m.ID,
				Title:     "New support ticket",
				Message:   fmt.Sprintf("%s opened a ticket: %s", ev.Author.Username, ev.Ticket.Subject),
				Type:      models.NotificationTypeWarning,
				RelatedID: &ev.Ticket.ID,
			})
		}
		rows = append(rows, models.Notification{
			UserID:    ev.Ticket.UserID,
			Title:     "Support ticket created",
			Message:   fmt.Sprintf("Your ticket %q has been received.", ev.Ticket.Subject),
			Type:      models.NotificationTypeSystem,
			RelatedID: &ev.Ticket.ID,
		})

	case events.TicketReplied:
		if ev.FromModerator {
			rows = append(rows, models.Notification{
				UserID:    ev.Ticket.UserID,
				Title:     "New reply from support",
				Message:   fmt.Sprintf("Your ticket %q has a new reply.", ev.Ticket.Subject),
				Type:      models.NotificationTypeSystem,
				RelatedID: &ev.Ticket.ID,
			})
		} else {
			moderators, err := r.User.ListModerators()
			if err != nil {
				return nil, err
			}
			for _, m := range moderators {
				rows = append(rows, models.Notification{
					UserID:    m.ID,
					Title:     "New reply in ticket",
					Message:   fmt.Sprintf("%s replied in the ticket: %s", ev.Author.Username, ev.Ticket.Subject),
					Type:      models.NotificationTypeWarning,
					RelatedID: &ev.Ticket.ID,
				})
			}
		}
	}

	for i := range rows {
		if err := r.Notification.Create(&rows[i]); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
