package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Krasmol/platform-for-freelancers/dto"
	"github.com/Krasmol/platform-for-freelancers/response"
	"github.com/Krasmol/platform-for-freelancers/services"
	"github.com/Krasmol/platform-for-freelancers/utils"
	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	service *services.MessageService
}

func (h *MessageHandler) Send(c *gin.Context) {
	var input dto.SendMessageDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	message, sender, err := h.service.Send(userID, input)
	if err != nil {
		c.JSON(errStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.SendMessageResponse{
		Status:         "success",
		MessageID:      message.ID,
		CreatedAt:      message.CreatedAt.Format("15:04"),
		SenderUsername: sender.Username,
	})
}

func (h *MessageHandler) Chats(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	chats, err := h.service.Chats(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: chats})
}

func (h *MessageHandler) Conversation(c *gin.Context) {
	otherID, ok := parseIDParam(c, "user_id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid user ID"})
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	messages, other, err := h.service.Conversation(userID, otherID)
	if err != nil {
		c.JSON(errStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": other, "messages": messages})
}

// CheckActivity is the polling endpoint. Clients pass the epoch seconds of
// their last check; anything newer counts as fresh activity.
func (h *MessageHandler) CheckActivity(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	since := time.Now().Add(-time.Minute)
	if raw := c.Query("last_check"); raw != "" {
		sec, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid last_check"})
			return
		}
		since = time.Unix(int64(sec), 0)
	}

	activity, err := h.service.CheckActivity(userID, since)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.ActivityResponse{
		HasNewMessages:       activity.NewMessages > 0,
		HasNewNotifications:  activity.NewNotification > 0,
		NewMessagesCount:     activity.NewMessages,
		NewNotificationCount: activity.NewNotification,
		CurrentTime:          float64(time.Now().Unix()),
	})
}
