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

func createProject(t *testing.T, token, title string) models.Project {
	t.Helper()
	body := map[string]interface{}{
		"title":       title,
		"description": "Integration test project",
		"budget":      500,
		"category":    "web",
	}
	resp := doRequest(t, "POST", "/projects", token, body, http.StatusCreated)

	var project models.Project
	decodeData(t, resp, &project)
	require.NotZero(t, project.ID)
	require.NotEmpty(t, project.Slug)
	return project
}

func respondToProject(t *testing.T, token string, projectID uint) models.ProjectResponse {
	t.Helper()
	body := map[string]interface{}{"message": "I can do this", "proposed_budget": 450}
	resp := doRequest(t, "POST", fmt.Sprintf("/projects/%d/responses", projectID), token, body, http.StatusCreated)

	var r models.ProjectResponse
	decodeData(t, resp, &r)
	return r
}

func listNotifications(t *testing.T, token string) []models.Notification {
	t.Helper()
	resp := doRequest(t, "GET", "/notifications", token, nil, http.StatusOK)
	var notifications []models.Notification
	decodeData(t, resp, &notifications)
	return notifications
}

func countByType(notifications []models.Notification, kind models.NotificationType) int {
	n := 0
	for _, item := range notifications {
		if item.Type == kind {
			n++
		}
	}
	return n
}

// The full happy path: publish, two bids, accept one, complete, review.
func TestProjectLifecycle(t *testing.T) {
	registerUser(t, "flow_client", "flow_client@test.com", "client")
	registerUser(t, "flow_frank", "flow_frank@test.com", "freelancer")
	registerUser(t, "flow_grace", "flow_grace@test.com", "freelancer")

	clientToken := loginUser(t, "flow_client@test.com")
	frankToken := loginUser(t, "flow_frank@test.com")
	graceToken := loginUser(t, "flow_grace@test.com")

	project := createProject(t, clientToken, "Lifecycle project")

	frankResp := respondToProject(t, frankToken, project.ID)
	respondToProject(t, graceToken, project.ID)

	// the client sees one project_response notification per bid
	clientNotifications := listNotifications(t, clientToken)
	require.Equal(t, 2, countByType(clientNotifications, models.NotificationTypeProjectResponse))

	// accept frank's bid
	resp := doRequest(t, "POST", fmt.Sprintf("/responses/%d/accept", frankResp.ID), clientToken, nil, http.StatusOK)
	var accepted models.Project
	decodeData(t, resp, &accepted)
	require.Equal(t, models.ProjectStatusInProgress, accepted.Status)
	require.NotNil(t, accepted.FreelancerID)

	// frank: exactly one acceptance notification, and the opening chat message
	frankNotifications := listNotifications(t, frankToken)
	require.Equal(t, 1, countByType(frankNotifications, models.NotificationTypeProjectAccepted))
	require.Equal(t, 0, countByType(frankNotifications, models.NotificationTypeMessage))

	chats := doRequest(t, "GET", "/messages/chats", frankToken, nil, http.StatusOK)
	require.Contains(t, chats.Body.String(), "accepted your response")

	// grace's sibling bid was auto-rejected
	graceNotifications := listNotifications(t, graceToken)
	require.Equal(t, 1, countByType(graceNotifications, models.NotificationTypeProjectRejected))

	// the rejected freelancer cannot bid again on a non-open project
	body := map[string]interface{}{"message": "second try"}
	doRequest(t, "POST", fmt.Sprintf("/projects/%d/responses", project.ID), graceToken, body, http.StatusConflict)

	// freelancer completes the work
	resp = doRequest(t, "POST", fmt.Sprintf("/projects/%d/complete", project.ID), frankToken, nil, http.StatusOK)
	var completed models.Project
	decodeData(t, resp, &completed)
	require.Equal(t, models.ProjectStatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)

	clientNotifications = listNotifications(t, clientToken)
	require.Equal(t, 1, countByType(clientNotifications, models.NotificationTypeProjectCompleted))

	// client reviews, once
	review := map[string]interface{}{"rating": 5, "comment": "excellent"}
	doRequest(t, "POST", fmt.Sprintf("/projects/%d/reviews", project.ID), clientToken, review, http.StatusCreated)
	doRequest(t, "POST", fmt.Sprintf("/projects/%d/reviews", project.ID), clientToken, review, http.StatusConflict)

	frankNotifications = listNotifications(t, frankToken)
	require.Equal(t, 1, countByType(frankNotifications, models.NotificationTypeReview))

	// public review listing for the freelancer
	var frankID uint = *accepted.FreelancerID
	reviews := doRequest(t, "GET", fmt.Sprintf("/users/%d/reviews", frankID), "", nil, http.StatusOK)
	require.Contains(t, reviews.Body.String(), "excellent")
}

func TestDoubleResponseRejected(t *testing.T) {
	registerUser(t, "dup_client", "dup_client@test.com", "client")
	registerUser(t, "dup_frank", "dup_frank@test.com", "freelancer")

	clientToken := loginUser(t, "dup_client@test.com")
	frankToken := loginUser(t, "dup_frank@test.com")

	project := createProject(t, clientToken, "Double response project")

	respondToProject(t, frankToken, project.ID)
	body := map[string]interface{}{"message": "again"}
	doRequest(t, "POST", fmt.Sprintf("/projects/%d/responses", project.ID), frankToken, body, http.StatusConflict)
}

func TestFreelancerCannotCreateProject(t *testing.T) {
	registerUser(t, "role_frank", "role_frank@test.com", "freelancer")
	token := loginUser(t, "role_frank@test.com")

	body := map[string]interface{}{"title": "Nope", "description": "Nope"}
	doRequest(t, "POST", "/projects", token, body, http.StatusForbidden)
}

func TestClientCannotRespond(t *testing.T) {
	registerUser(t, "role_carl", "role_carl@test.com", "client")
	registerUser(t, "role_dora", "role_dora@test.com", "client")
	carlToken := loginUser(t, "role_carl@test.com")
	doraToken := loginUser(t, "role_dora@test.com")

	project := createProject(t, carlToken, "Client response project")

	body := map[string]interface{}{"message": "me please"}
	doRequest(t, "POST", fmt.Sprintf("/projects/%d/responses", project.ID), doraToken, body, http.StatusForbidden)
}

func TestReviewRequiresCompletion(t *testing.T) {
	registerUser(t, "rev_client", "rev_client@test.com", "client")
	token := loginUser(t, "rev_client@test.com")

	project := createProject(t, token, "Uncompleted project")

	body := map[string]interface{}{"rating": 5}
	doRequest(t, "POST", fmt.Sprintf("/projects/%d/reviews", project.ID), token, body, http.StatusConflict)
}

func TestCancelNotifiesFreelancer(t *testing.T) {
	registerUser(t, "cancel_client", "cancel_client@test.com", "client")
	registerUser(t, "cancel_frank", "cancel_frank@test.com", "freelancer")

	clientToken := loginUser(t, "cancel_client@test.com")
	frankToken := loginUser(t, "cancel_frank@test.com")

	project := createProject(t, clientToken, "Cancelled project")
	r := respondToProject(t, frankToken, project.ID)
	doRequest(t, "POST", fmt.Sprintf("/responses/%d/accept", r.ID), clientToken, nil, http.StatusOK)

	doRequest(t, "POST", fmt.Sprintf("/projects/%d/cancel", project.ID), clientToken, nil, http.StatusOK)

	notifications := listNotifications(t, frankToken)
	require.Equal(t, 1, countByType(notifications, models.NotificationTypeProjectCancelled))
}

func TestFavorites(t *testing.T) {
	registerUser(t, "fav_client", "fav_client@test.com", "client")
	registerUser(t, "fav_frank", "fav_frank@test.com", "freelancer")

	clientToken := loginUser(t, "fav_client@test.com")
	frankToken := loginUser(t, "fav_frank@test.com")

	project := createProject(t, clientToken, "Favorited project")

	path := fmt.Sprintf("/projects/%d/favorite", project.ID)
	doRequest(t, "POST", path, frankToken, nil, http.StatusCreated)
	doRequest(t, "POST", path, frankToken, nil, http.StatusConflict)

	resp := doRequest(t, "GET", "/favorites", frankToken, nil, http.StatusOK)
	require.Contains(t, resp.Body.String(), "Favorited project")

	doRequest(t, "DELETE", path, frankToken, nil, http.StatusOK)
	resp = doRequest(t, "GET", "/favorites", frankToken, nil, http.StatusOK)
	require.NotContains(t, resp.Body.String(), "Favorited project")
}

func TestProjectListFilters(t *testing.T) {
	registerUser(t, "filter_client", "filter_client@test.com", "client")
	token := loginUser(t, "filter_client@test.com")

	createProject(t, token, "Searchable golang backend")

	resp := doRequest(t, "GET", "/projects?search=Searchable+golang", "", nil, http.StatusOK)
	require.Contains(t, resp.Body.String(), "Searchable golang backend")

	resp = doRequest(t, "GET", "/projects?category=missingcat", "", nil, http.StatusOK)
	require.NotContains(t, resp.Body.String(), "Searchable golang backend")
}

func TestProjectLookupBySlug(t *testing.T) {
	registerUser(t, "slug_owen", "slug_owen@test.com", "client")
	token := loginUser(t, "slug_owen@test.com")

	project := createProject(t, token, "Slug lookup project")
	require.NotEmpty(t, project.Slug)

	resp := doRequest(t, "GET", "/projects/"+project.Slug, "", nil, http.StatusOK)
	var fetched models.Project
	decodeData(t, resp, &fetched)
	require.Equal(t, project.ID, fetched.ID)

	doRequest(t, "GET", "/projects/no-such-slug", "", nil, http.StatusNotFound)
}
