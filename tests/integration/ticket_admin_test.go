//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Krasmol/platform-for-freelancers/models"
)

func createTicket(t *testing.T, token, subject string) models.SupportTicket {
	t.Helper()
	body := map[string]interface{}{
		"subject":     subject,
		"category":    "billing",
		"description": "Something is wrong",
		"priority":    "high",
	}
	resp := doRequest(t, "POST", "/tickets", token, body, http.StatusCreated)

	var ticket models.SupportTicket
	decodeData(t, resp, &ticket)
	require.NotZero(t, ticket.ID)
	require.NotEmpty(t, ticket.Reference)
	return ticket
}

func TestTicketFlow(t *testing.T) {
	registerUser(t, "tkt_hana", "tkt_hana@test.com", "freelancer")
	hanaToken := loginUser(t, "tkt_hana@test.com")
	modToken := moderatorToken(t)

	ticket := createTicket(t, hanaToken, "Payout has not arrived")
	require.Equal(t, models.TicketStatusOpen, ticket.Status)
	require.Equal(t, models.TicketPriorityHigh, ticket.Priority)

	// the moderator was notified, hana got a confirmation
	modNotifications := listNotifications(t, modToken)
	found := false
	for _, n := range modNotifications {
		if n.Type == models.NotificationTypeWarning && n.RelatedID != nil && *n.RelatedID == ticket.ID {
			found = true
		}
	}
	require.True(t, found, "moderator should be notified about the new ticket")

	hanaNotifications := listNotifications(t, hanaToken)
	require.NotZero(t, countByType(hanaNotifications, models.NotificationTypeSystem))

	// the ticket shows up in the moderator queue
	queue := doRequest(t, "GET", "/admin/tickets?status=open", modToken, nil, http.StatusOK)
	require.Contains(t, queue.Body.String(), "Payout has not arrived")

	// a moderator reply moves the ticket to in_progress
	reply := map[string]interface{}{"content": "We are on it"}
	doRequest(t, "POST", fmt.Sprintf("/tickets/%d/messages", ticket.ID), modToken, reply, http.StatusCreated)

	resp := doRequest(t, "GET", fmt.Sprintf("/tickets/%d", ticket.ID), hanaToken, nil, http.StatusOK)
	var updated models.SupportTicket
	decodeData(t, resp, &updated)
	require.Equal(t, models.TicketStatusInProgress, updated.Status)
	require.Len(t, updated.Messages, 2)
	require.True(t, updated.Messages[1].IsAdminResponse)

	// in_progress tickets still count as open in the queue filter
	queue = doRequest(t, "GET", "/admin/tickets?status=open", modToken, nil, http.StatusOK)
	require.Contains(t, queue.Body.String(), "Payout has not arrived")

	// the owner closes it
	doRequest(t, "POST", fmt.Sprintf("/tickets/%d/close", ticket.ID), hanaToken, nil, http.StatusOK)
	queue = doRequest(t, "GET", "/admin/tickets?status=open", modToken, nil, http.StatusOK)
	require.NotContains(t, queue.Body.String(), "Payout has not arrived")
}

func TestTicketAccessRestricted(t *testing.T) {
	registerUser(t, "tkt_igor", "tkt_igor@test.com", "client")
	registerUser(t, "tkt_jana", "tkt_jana@test.com", "client")
	igorToken := loginUser(t, "tkt_igor@test.com")
	janaToken := loginUser(t, "tkt_jana@test.com")

	ticket := createTicket(t, igorToken, "Private matter")

	doRequest(t, "GET", fmt.Sprintf("/tickets/%d", ticket.ID), janaToken, nil, http.StatusForbidden)
	doRequest(t, "GET", "/admin/tickets", janaToken, nil, http.StatusForbidden)
}

func TestBanBlocksLogin(t *testing.T) {
	registerUser(t, "ban_karl", "ban_karl@test.com", "freelancer")
	karlToken := loginUser(t, "ban_karl@test.com")
	karlID := userID(t, karlToken)
	modToken := moderatorToken(t)

	doRequest(t, "POST", fmt.Sprintf("/admin/users/%d/ban", karlID), modToken, nil, http.StatusOK)

	// banned: warning notification exists, login rejected
	notifications := listNotifications(t, karlToken)
	require.Equal(t, 1, countByType(notifications, models.NotificationTypeWarning))

	body := map[string]string{"email": "ban_karl@test.com", "password": "123456"}
	doRequest(t, "POST", "/login", "", body, http.StatusForbidden)

	// unban restores access
	doRequest(t, "POST", fmt.Sprintf("/admin/users/%d/unban", karlID), modToken, nil, http.StatusOK)
	loginUser(t, "ban_karl@test.com")
}

func TestModeratorCannotBeBanned(t *testing.T) {
	modToken := moderatorToken(t)

	resp := doRequest(t, "GET", "/admin/users", modToken, nil, http.StatusOK)
	var users []models.User
	decodeData(t, resp, &users)

	var modID uint
	for _, u := range users {
		if u.Role == models.UserRoleModerator {
			modID = u.ID
			break
		}
	}
	require.NotZero(t, modID)

	doRequest(t, "POST", fmt.Sprintf("/admin/users/%d/ban", modID), modToken, nil, http.StatusForbidden)
	doRequest(t, "DELETE", fmt.Sprintf("/admin/users/%d", modID), modToken, nil, http.StatusForbidden)
}

func TestAdminStatsAndVisibility(t *testing.T) {
	registerUser(t, "adm_lena", "adm_lena@test.com", "client")
	lenaToken := loginUser(t, "adm_lena@test.com")
	modToken := moderatorToken(t)

	project := createProject(t, lenaToken, "Visibility project")

	stats := doRequest(t, "GET", "/admin/stats", modToken, nil, http.StatusOK)
	require.Contains(t, stats.Body.String(), "total_users")
	require.Contains(t, stats.Body.String(), "open_projects")

	// hide: gone from the public list, visible to moderators asking for hidden
	path := fmt.Sprintf("/admin/projects/%d/visibility", project.ID)
	doRequest(t, "POST", path, modToken, nil, http.StatusOK)

	public := doRequest(t, "GET", "/projects", "", nil, http.StatusOK)
	require.NotContains(t, public.Body.String(), "Visibility project")

	hidden := doRequest(t, "GET", "/projects?status=hidden", modToken, nil, http.StatusOK)
	require.Contains(t, hidden.Body.String(), "Visibility project")

	// anonymous users cannot ask for hidden projects
	anon := doRequest(t, "GET", "/projects?status=hidden", "", nil, http.StatusOK)
	require.NotContains(t, anon.Body.String(), "Visibility project")

	// toggle back
	doRequest(t, "POST", path, modToken, nil, http.StatusOK)
	public = doRequest(t, "GET", "/projects", "", nil, http.StatusOK)
	require.Contains(t, public.Body.String(), "Visibility project")
}

func TestAdminDeleteProjectCascades(t *testing.T) {
	registerUser(t, "adm_mark", "adm_mark@test.com", "client")
	registerUser(t, "adm_nora", "adm_nora@test.com", "freelancer")

	markToken := loginUser(t, "adm_mark@test.com")
	noraToken := loginUser(t, "adm_nora@test.com")
	modToken := moderatorToken(t)

	project := createProject(t, markToken, "Doomed project")
	respondToProject(t, noraToken, project.ID)
	doRequest(t, "POST", fmt.Sprintf("/projects/%d/favorite", project.ID), noraToken, nil, http.StatusCreated)

	doRequest(t, "DELETE", fmt.Sprintf("/admin/projects/%d", project.ID), modToken, nil, http.StatusOK)

	doRequest(t, "GET", fmt.Sprintf("/projects/%d", project.ID), "", nil, http.StatusNotFound)
	favorites := doRequest(t, "GET", "/favorites", noraToken, nil, http.StatusOK)
	require.NotContains(t, favorites.Body.String(), "Doomed project")
}
