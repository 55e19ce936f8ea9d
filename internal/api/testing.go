package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap/zaptest"

	"sitecms/ent"
	"sitecms/internal/config"
	"sitecms/internal/db"

	_ "modernc.org/sqlite"
)

// TestServer holds test server dependencies
type TestServer struct {
	*Server
	DB *db.DB
}

// NewTestServer creates a test server over an in-memory SQLite database.
// name keeps the shared-cache databases of parallel tests apart.
func NewTestServer(t *testing.T, name string) *TestServer {
	t.Helper()

	logger := zaptest.NewLogger(t)

	// modernc registers its driver as "sqlite", so the ent client is built
	// over a plain sql.DB handle the same way New wires production.
	sqlDB, err := sql.Open("sqlite",
		fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, sqlDB)))
	if err := client.Schema.Create(context.Background()); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	database := &db.DB{DB: sqlDB, Client: client}

	testCfg := &config.Config{
		Env:            "test",
		DBQueryTimeout: 5 * time.Second,
	}

	server := NewServer(database, testCfg, logger)

	return &TestServer{
		Server: server,
		DB:     database,
	}
}

// MakeRequest is a helper to make HTTP requests in tests
// Returns both the ResponseRecorder and the Request for testing
func MakeRequest(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()

	var reqBody []byte
	var err error
	if body != nil {
		reqBody, err = json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")

	return httptest.NewRecorder(), req
}

// MakeParamRequest creates an HTTP request carrying chi URL params, for
// calling handlers directly without a router
func MakeParamRequest(t *testing.T, method, path string, body interface{}, urlParams map[string]string) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()

	rec, req := MakeRequest(t, method, path, body)

	if len(urlParams) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range urlParams {
			rctx.URLParams.Add(k, v)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	return rec, req
}

// DecodeJSON decodes a JSON response into the provided interface
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertStatusCode checks if the response status code matches expected
func AssertStatusCode(t *testing.T, got, want int) {
	t.Helper()

	if got != want {
		t.Errorf("Status code mismatch: got %d, want %d", got, want)
	}
}
