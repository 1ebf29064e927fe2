//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Krasmol/platform-for-freelancers/config"
	"github.com/Krasmol/platform-for-freelancers/db"
	"github.com/Krasmol/platform-for-freelancers/internal/testutils"
	"github.com/Krasmol/platform-for-freelancers/middleware"
	"github.com/Krasmol/platform-for-freelancers/response"
	"github.com/Krasmol/platform-for-freelancers/routes"
	"github.com/Krasmol/platform-for-freelancers/websocket"
)

var router *gin.Engine

func TestMain(m *testing.M) {
	_ = os.Setenv("JWT_SECRET", "test-secret-key-for-integration-testing")
	_ = os.Setenv("ISSUER", "freelancehub-test")
	_ = os.Setenv("MODERATOR_EMAIL", "moderator@test.com")
	_ = os.Setenv("MODERATOR_PASSWORD", "modpass123")

	config.LoadConfig()
	middleware.Init()

	dsn, cleanup := testutils.SetupPostgresForIntegration()

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal(err)
	}
	db.InitWithGormDB(gormDB)
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal(err)
	}
	if err := db.SeedModerator(gormDB); err != nil {
		log.Fatal(err)
	}

	gin.SetMode(gin.TestMode)
	router = gin.New()
	router.Use(middleware.CORS())
	routes.RegisterRoutes(router, websocket.NewHub())

	code := m.Run()
	cleanup()
	os.Exit(code)
}

func doRequest(t *testing.T, method, path, token string, body interface{}, expectedStatus int) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, expectedStatus, rec.Code, "unexpected status for %s %s: %s", method, path, rec.Body.String())
	return rec
}

func registerUser(t *testing.T, username, email, role string) {
	t.Helper()
	body := map[string]string{
		"username": username,
		"email":    email,
		"password": "123456",
		"role":     role,
	}
	doRequest(t, "POST", "/register", "", body, http.StatusCreated)
}

func loginUser(t *testing.T, email string) string {
	t.Helper()
	return loginWithPassword(t, email, "123456")
}

func loginWithPassword(t *testing.T, email, password string) string {
	t.Helper()
	body := map[string]string{"email": email, "password": password}
	resp := doRequest(t, "POST", "/login", "", body, http.StatusOK)

	var result response.TokenResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.NotEmpty(t, result.Token)
	return result.Token
}

func moderatorToken(t *testing.T) string {
	t.Helper()
	return loginWithPassword(t, "moderator@test.com", "modpass123")
}

// decodeData unmarshals the "data" envelope of a success response into out.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}
