// Package events defines the domain events emitted by state transitions.
// The notification dispatcher consumes them inside the same transaction as
// the triggering write, so a notification is durable exactly when its cause
// is.
package events

import "github.com/Krasmol/platform-for-freelancers/models"

type Event interface {
	Kind() string
}

type UserRegistered struct {
	User models.User
}

func (UserRegistered) Kind() string { return "user.registered" }

type UserBanned struct {
	User models.User
}

func (UserBanned) Kind() string { return "user.banned" }

type ProfileCreated struct {
	UserID uint
}

func (ProfileCreated) Kind() string { return "profile.created" }

type ProjectPublished struct {
	Project models.Project
}

func (ProjectPublished) Kind() string { return "project.published" }

type ResponseSubmitted struct {
	Project    models.Project
	Response   models.ProjectResponse
	Freelancer models.User
}

func (ResponseSubmitted) Kind() string { return "response.submitted" }

type ResponseAccepted struct {
	Project  models.Project
	Response models.ProjectResponse
}

func (ResponseAccepted) Kind() string { return "response.accepted" }

type ResponseRejected struct {
	Project  models.Project
	Response models.ProjectResponse
}

func (ResponseRejected) Kind() string { return "response.rejected" }

type ProjectCompleted struct {
	Project models.Project
	// ActorID is whichever of the two parties completed the project; the
	// notification goes to the other one.
	ActorID uint
}

func (ProjectCompleted) Kind() string { return "project.completed" }

type ProjectCancelled struct {
	Project models.Project
}

func (ProjectCancelled) Kind() string { return "project.cancelled" }

type MessageSent struct {
	Message models.Message
	Sender  models.User
}

func (MessageSent) Kind() string { return "message.sent" }

type ReviewSubmitted struct {
	Review  models.Review
	Project models.Project
}

func (ReviewSubmitted) Kind() string { return "review.submitted" }

type TicketOpened struct {
	Ticket models.SupportTicket
	Author models.User
}

func (TicketOpened) Kind() string { return "ticket.opened" }

type TicketReplied struct {
	Ticket models.SupportTicket
	Author models.User
	// FromModerator drives the fan-out direction: moderator replies notify
	// the ticket owner, user replies notify every moderator.
	FromModerator bool
}

func (TicketReplied) Kind() string { return "ticket.replied" }

// Publisher pushes a lightweight signal to connected clients after the
// transaction that produced the event has committed.
type Publisher interface {
	Publish(userID uint, kind string)
}
