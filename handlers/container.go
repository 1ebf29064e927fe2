package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Krasmol/platform-for-freelancers/services"
	"github.com/Krasmol/platform-for-freelancers/websocket"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	User         *UserHandler
	Profile      *ProfileHandler
	Project      *ProjectHandler
	Message      *MessageHandler
	Notification *NotificationHandler
	Ticket       *TicketHandler
	Review       *ReviewHandler
	Admin        *AdminHandler
	WS           *WSHandler
}

func New(svc *services.Services, hub *websocket.Hub) *Handlers {
	return &Handlers{
		User:         &UserHandler{service: svc.User},
		Profile:      &ProfileHandler{service: svc.Profile},
		Project:      &ProjectHandler{service: svc.Project},
		Message:      &MessageHandler{service: svc.Message},
		Notification: &NotificationHandler{service: svc.Notification},
		Ticket:       &TicketHandler{service: svc.Ticket},
		Review:       &ReviewHandler{service: svc.Review},
		Admin:        &AdminHandler{service: svc.Admin},
		WS:           &WSHandler{hub: hub},
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// errStatus maps service sentinel errors onto HTTP status codes.
func errStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrReceiverNotFound),
		errors.Is(err, services.ErrProfileNotFound),
		errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrResponseNotFound),
		errors.Is(err, services.ErrNotificationNotFound),
		errors.Is(err, services.ErrTicketNotFound):
		return http.StatusNotFound

	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, services.ErrAccessDenied),
		errors.Is(err, services.ErrAccountBlocked),
		errors.Is(err, services.ErrClientsOnly),
		errors.Is(err, services.ErrFreelancersOnly),
		errors.Is(err, services.ErrNotProjectClient),
		errors.Is(err, services.ErrCannotBanModerator),
		errors.Is(err, services.ErrCannotDeleteModerator):
		return http.StatusForbidden

	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrProfileExists),
		errors.Is(err, services.ErrProjectNotOpen),
		errors.Is(err, services.ErrAlreadyResponded),
		errors.Is(err, services.ErrResponseNotPending),
		errors.Is(err, services.ErrCannotComplete),
		errors.Is(err, services.ErrCannotCancel),
		errors.Is(err, services.ErrCannotHide),
		errors.Is(err, services.ErrAlreadyFavorited),
		errors.Is(err, services.ErrProjectNotCompleted),
		errors.Is(err, services.ErrAlreadyReviewed):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}
