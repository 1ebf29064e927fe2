package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SuccessResponse struct {
	Data interface{} `json:"data"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UID      uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type SendMessageResponse struct {
	Status         string `json:"status"`
	MessageID      uint   `json:"message_id"`
	CreatedAt      string `json:"created_at"`
	SenderUsername string `json:"sender_username"`
}

type ActivityResponse struct {
	HasNewMessages       bool    `json:"has_new_messages"`
	HasNewNotifications  bool    `json:"has_new_notifications"`
	NewMessagesCount     int64   `json:"new_messages_count"`
	NewNotificationCount int64   `json:"new_notifications_count"`
	CurrentTime          float64 `json:"current_time"`
}
