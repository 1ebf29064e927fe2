//go:build integration
// +build integration

package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Krasmol/platform-for-freelancers/models"
	"github.com/Krasmol/platform-for-freelancers/response"
)

func userID(t *testing.T, token string) uint {
	t.Helper()
	resp := doRequest(t, "GET", "/notifications", token, nil, http.StatusOK)
	var notifications []models.Notification
	decodeData(t, resp, &notifications)
	require.NotEmpty(t, notifications, "expected at least the welcome notification")
	return notifications[0].UserID
}

func TestSendAndReadConversation(t *testing.T) {
	registerUser(t, "msg_anna", "msg_anna@test.com", "client")
	registerUser(t, "msg_boris", "msg_boris@test.com", "freelancer")

	annaToken := loginUser(t, "msg_anna@test.com")
	borisToken := loginUser(t, "msg_boris@test.com")
	borisID := userID(t, borisToken)
	annaID := userID(t, annaToken)

	body := map[string]interface{}{"receiver_id": borisID, "content": "hello boris"}
	resp := doRequest(t, "POST", "/messages", annaToken, body, http.StatusCreated)

	var sent response.SendMessageResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &sent))
	require.Equal(t, "success", sent.Status)
	require.Equal(t, "msg_anna", sent.SenderUsername)
	require.NotZero(t, sent.MessageID)

	// boris got a message notification
	notifications := listNotifications(t, borisToken)
	require.Equal(t, 1, countByType(notifications, models.NotificationTypeMessage))

	// one chat entry with one unread message
	chatsResp := doRequest(t, "GET", "/messages/chats", borisToken, nil, http.StatusOK)
	var chats []models.Chat
	decodeData(t, chatsResp, &chats)
	require.Len(t, chats, 1)
	require.Equal(t, "msg_anna", chats[0].User.Username)
	require.Equal(t, int64(1), chats[0].UnreadCount)

	// opening the conversation marks it read
	doRequest(t, "GET", fmt.Sprintf("/messages/with/%d", annaID), borisToken, nil, http.StatusOK)

	chatsResp = doRequest(t, "GET", "/messages/chats", borisToken, nil, http.StatusOK)
	chats = nil
	decodeData(t, chatsResp, &chats)
	require.Len(t, chats, 1)
	require.Equal(t, int64(0), chats[0].UnreadCount)
}

func TestSendMessage_UnknownReceiver(t *testing.T) {
	registerUser(t, "msg_carla", "msg_carla@test.com", "client")
	token := loginUser(t, "msg_carla@test.com")

	body := map[string]interface{}{"receiver_id": 999999, "content": "anyone there?"}
	doRequest(t, "POST", "/messages", token, body, http.StatusNotFound)
}

func TestActivityPolling(t *testing.T) {
	registerUser(t, "poll_dina", "poll_dina@test.com", "client")
	registerUser(t, "poll_egor", "poll_egor@test.com", "freelancer")

	dinaToken := loginUser(t, "poll_dina@test.com")
	egorToken := loginUser(t, "poll_egor@test.com")
	egorID := userID(t, egorToken)

	since := time.Now().Add(-time.Second).Unix()

	body := map[string]interface{}{"receiver_id": egorID, "content": "ping"}
	doRequest(t, "POST", "/messages", dinaToken, body, http.StatusCreated)

	resp := doRequest(t, "GET", fmt.Sprintf("/activity?last_check=%d", since), egorToken, nil, http.StatusOK)

	var activity response.ActivityResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &activity))
	require.True(t, activity.HasNewMessages)
	require.True(t, activity.HasNewNotifications)
	require.Equal(t, int64(1), activity.NewMessagesCount)
	require.NotZero(t, activity.CurrentTime)
}

func TestMarkAllReadScopedToUser(t *testing.T) {
	registerUser(t, "ntf_pete", "ntf_pete@test.com", "client")
	registerUser(t, "ntf_quinn", "ntf_quinn@test.com", "freelancer")
	peteToken := loginUser(t, "ntf_pete@test.com")
	quinnToken := loginUser(t, "ntf_quinn@test.com")
	peteID := userID(t, peteToken)

	// pete holds two unread rows: the welcome and a message notification
	body := map[string]interface{}{"receiver_id": peteID, "content": "hello pete"}
	doRequest(t, "POST", "/messages", quinnToken, body, http.StatusCreated)

	countResp := doRequest(t, "GET", "/notifications/unread-count", peteToken, nil, http.StatusOK)
	require.Contains(t, countResp.Body.String(), `"unread_count":2`)

	doRequest(t, "POST", "/notifications/read-all", peteToken, nil, http.StatusOK)

	countResp = doRequest(t, "GET", "/notifications/unread-count", peteToken, nil, http.StatusOK)
	require.Contains(t, countResp.Body.String(), `"unread_count":0`)
	for _, n := range listNotifications(t, peteToken) {
		require.True(t, n.IsRead)
	}

	// quinn's welcome notification is untouched
	countResp = doRequest(t, "GET", "/notifications/unread-count", quinnToken, nil, http.StatusOK)
	require.Contains(t, countResp.Body.String(), `"unread_count":1`)
}

func TestNotificationLifecycle(t *testing.T) {
	registerUser(t, "ntf_fiona", "ntf_fiona@test.com", "freelancer")
	token := loginUser(t, "ntf_fiona@test.com")

	notifications := listNotifications(t, token)
	require.NotEmpty(t, notifications)
	target := notifications[0]
	require.False(t, target.IsRead)

	countResp := doRequest(t, "GET", "/notifications/unread-count", token, nil, http.StatusOK)
	require.Contains(t, countResp.Body.String(), `"unread_count":1`)

	// marking read is idempotent
	path := fmt.Sprintf("/notifications/%d/read", target.ID)
	doRequest(t, "POST", path, token, nil, http.StatusOK)
	doRequest(t, "POST", path, token, nil, http.StatusOK)

	countResp = doRequest(t, "GET", "/notifications/unread-count", token, nil, http.StatusOK)
	require.Contains(t, countResp.Body.String(), `"unread_count":0`)

	// another user cannot touch fiona's notification
	registerUser(t, "ntf_greg", "ntf_greg@test.com", "freelancer")
	gregToken := loginUser(t, "ntf_greg@test.com")
	doRequest(t, "POST", path, gregToken, nil, http.StatusForbidden)

	doRequest(t, "DELETE", fmt.Sprintf("/notifications/%d", target.ID), token, nil, http.StatusOK)
	remaining := listNotifications(t, token)
	for _, n := range remaining {
		require.NotEqual(t, target.ID, n.ID)
	}
}
