package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hirelane_backend/database"
	"hirelane_backend/internal/app"
	"hirelane_backend/internal/config"
	"hirelane_backend/internal/logger"
)

// TestServer runs the real router against the test database named by
// DATABASE_URL.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

func NewTestServer(t *testing.T) *TestServer {
	config.LoadConfig()
	cfg := config.GetConfig()
	logger.Init("test")

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database (%s): %v", cfg.Database.DSN, err)
	}

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	return &TestServer{
		Server: server,
		DB:     db,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

// SendRequest fires a JSON request at the test server and returns the
// response along with its body as a string.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()

	bodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}

	return res, string(bodyBytes)
}

// RegisterEmployer creates a fresh employer account through the public API
// and returns its access token and id. Every call uses a unique email so
// tests can share one database.
func RegisterEmployer(t *testing.T, ts *TestServer) (token string, employerID string) {
	t.Helper()

	email := fmt.Sprintf("employer-%s@test.example", uuid.NewString())
	res, body := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"company_name": "Test Company",
		"contact_name": "Test Contact",
		"email":        email,
		"password":     "integration-test-pass",
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("failed to register employer: status %d, body %s", res.StatusCode, body)
	}

	var parsed struct {
		AccessToken string `json:"access_token"`
		Employer    struct {
			ID string `json:"id"`
		} `json:"employer"`
	}
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		t.Fatalf("failed to parse register response: %v", err)
	}
	return parsed.AccessToken, parsed.Employer.ID
}
