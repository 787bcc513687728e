package auth_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/BlueMoonStudio/BM-Backend/internal/auth"
	"github.com/BlueMoonStudio/BM-Backend/internal/db"
	"github.com/BlueMoonStudio/BM-Backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// dbAvailable tracks whether the database connection was established.
var dbAvailable bool

// testServer is the shared httptest server for all integration tests.
var testServer *httptest.Server

func TestMain(m *testing.M) {
	// Load .env.local relative to the repo root (two directories up from internal/auth/).
	_ = godotenv.Load("../../.env.local")

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		// No database available — skip all integration tests gracefully.
		os.Exit(m.Run())
	}

	db.Connect(databaseURL)
	dbAvailable = true

	// Set up tables (idempotent).
	auth.Init()
	services.Init()

	// Mount the routes the way main.go does, with a test secret and
	// non-secure cookies so they travel over httptest's plain HTTP.
	codec := auth.NewCodec("integration-test-secret")
	handler := &auth.Handler{Codec: codec, Cookie: &auth.CookieAdapter{Secure: false}}
	verifier := auth.Verifier{Codec: codec}

	r := chi.NewRouter()
	r.Mount("/api/auth", auth.SetupRoutes(handler))
	r.Get("/api/check", handler.CheckHandler)
	r.Mount("/api/services", services.SetupRoutes(verifier))

	testServer = httptest.NewServer(r)
	defer testServer.Close()

	os.Exit(m.Run())
}

// createTestAdmin inserts a unique admin into the database and registers a
// cleanup function to remove it. Returns the username and plaintext password.
func createTestAdmin(t *testing.T) (username, password string) {
	t.Helper()
	if !dbAvailable {
		t.Skip("skipping integration test (requires DATABASE_URL)")
	}

	username = fmt.Sprintf("testadmin_%s", uuid.New().String()[:8])
	password = "TestPass123!"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}

	admin := auth.Admin{
		Username:       username,
		HashedPassword: string(hashed),
	}
	if err := db.DB.Create(&admin).Error; err != nil {
		t.Fatalf("failed to create test admin: %v", err)
	}

	t.Cleanup(func() {
		db.DB.Where("username = ?", username).Delete(&auth.Admin{})
	})

	return username, password
}

// newClientWithJar returns an http.Client with a fresh cookie jar that
// automatically carries cookies between requests.
func newClientWithJar(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar.New: %v", err)
	}
	return &http.Client{Jar: jar}
}

// loginAdmin posts to /api/auth/login and returns the response. The client's
// cookie jar is populated with the admin-session cookie on success.
func loginAdmin(t *testing.T, client *http.Client, username, password string) *http.Response {
	t.Helper()
	body, _ := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	resp, err := client.Post(testServer.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /api/auth/login: %v", err)
	}
	return resp
}

// readBody reads and returns the response body as a string, draining and closing it.
func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}

// TestLoginReturnsSessionCookie verifies that POST /api/auth/login with valid
// credentials returns 200, a Set-Cookie header containing admin-session, and
// a JSON body with success and the user identity.
func TestLoginReturnsSessionCookie(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test (requires DATABASE_URL)")
	}
	username, password := createTestAdmin(t)
	client := newClientWithJar(t)

	resp := loginAdmin(t, client, username, password)
	body := readBody(t, resp)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d; body: %s", resp.StatusCode, body)
	}

	setCookie := resp.Header.Get("Set-Cookie")
	if !strings.Contains(setCookie, auth.SessionCookieName) {
		t.Errorf("expected Set-Cookie to contain %q, got: %q", auth.SessionCookieName, setCookie)
	}

	var result struct {
		Success bool `json:"success"`
		User    struct {
			ID       int    `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		t.Fatalf("invalid JSON body: %s", body)
	}
	if !result.Success {
		t.Error("expected success:true in response body")
	}
	if result.User.Username != username {
		t.Errorf("expected username %q, got %q", username, result.User.Username)
	}
	if result.User.ID == 0 {
		t.Error("expected non-zero user id in response body")
	}
}

// TestLoginWrongPasswordRejected verifies a wrong password yields 401 and no
// session cookie.
func TestLoginWrongPasswordRejected(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test (requires DATABASE_URL)")
	}
	username, _ := createTestAdmin(t)
	client := newClientWithJar(t)

	resp := loginAdmin(t, client, username, "wrong")
	body := readBody(t, resp)

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d; body: %s", resp.StatusCode, body)
	}
	if setCookie := resp.Header.Get("Set-Cookie"); strings.Contains(setCookie, auth.SessionCookieName) {
		t.Errorf("expected no session cookie on failed login, got: %q", setCookie)
	}
}

// TestCheckReportsAuthenticated verifies GET /api/check flips from 401 to 200
// across a login.
func TestCheckReportsAuthenticated(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test (requires DATABASE_URL)")
	}
	username, password := createTestAdmin(t)
	client := newClientWithJar(t)

	// Before login.
	resp, err := client.Get(testServer.URL + "/api/check")
	if err != nil {
		t.Fatalf("GET /api/check: %v", err)
	}
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 before login, got %d; body: %s", resp.StatusCode, body)
	}
	if !strings.Contains(body, `"authenticated":false`) {
		t.Errorf("expected authenticated:false, got: %s", body)
	}

	// After login.
	loginResp := loginAdmin(t, client, username, password)
	readBody(t, loginResp)
	if loginResp.StatusCode != http.StatusOK {
		t.Fatalf("login failed: %d", loginResp.StatusCode)
	}

	resp, err = client.Get(testServer.URL + "/api/check")
	if err != nil {
		t.Fatalf("GET /api/check: %v", err)
	}
	body = readBody(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 after login, got %d; body: %s", resp.StatusCode, body)
	}
	if !strings.Contains(body, `"authenticated":true`) {
		t.Errorf("expected authenticated:true, got: %s", body)
	}
}

// TestLogoutClearsSession verifies the full logout flow: login, logout, then
// /api/check returns 401 again.
func TestLogoutClearsSession(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test (requires DATABASE_URL)")
	}
	username, password := createTestAdmin(t)
	client := newClientWithJar(t)

	loginResp := loginAdmin(t, client, username, password)
	readBody(t, loginResp)
	if loginResp.StatusCode != http.StatusOK {
		t.Fatalf("login failed: %d", loginResp.StatusCode)
	}

	logoutResp, err := client.Post(testServer.URL+"/api/auth/logout", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /api/auth/logout: %v", err)
	}
	logoutBody := readBody(t, logoutResp)
	if logoutResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from logout, got %d; body: %s", logoutResp.StatusCode, logoutBody)
	}

	checkResp, err := client.Get(testServer.URL + "/api/check")
	if err != nil {
		t.Fatalf("GET /api/check after logout: %v", err)
	}
	checkBody := readBody(t, checkResp)
	if checkResp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d; body: %s", checkResp.StatusCode, checkBody)
	}
}

// TestGuardedCreateRequiresSession verifies mutating catalog endpoints fail
// closed without a session cookie.
func TestGuardedCreateRequiresSession(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test (requires DATABASE_URL)")
	}
	if !dbAvailable {
		t.Skip("skipping integration test (requires DATABASE_URL)")
	}

	payload := bytes.NewReader([]byte(`{"name":"Piercing de prueba","price":25}`))
	resp, err := http.Post(testServer.URL+"/api/services", "application/json", payload)
	if err != nil {
		t.Fatalf("POST /api/services: %v", err)
	}
	body := readBody(t, resp)

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d; body: %s", resp.StatusCode, body)
	}
	if !strings.Contains(body, "No autorizado") {
		t.Errorf("expected body to contain %q, got: %q", "No autorizado", body)
	}
}

// TestServiceCRUDWithSession walks a service through create, update, and
// delete with a logged-in client.
func TestServiceCRUDWithSession(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test (requires DATABASE_URL)")
	}
	username, password := createTestAdmin(t)
	client := newClientWithJar(t)

	loginResp := loginAdmin(t, client, username, password)
	readBody(t, loginResp)
	if loginResp.StatusCode != http.StatusOK {
		t.Fatalf("login failed: %d", loginResp.StatusCode)
	}

	// Create.
	createResp, err := client.Post(testServer.URL+"/api/services", "application/json",
		bytes.NewReader([]byte(`{"name":"Piercing de prueba","price":25,"descripcion":"temp"}`)))
	if err != nil {
		t.Fatalf("POST /api/services: %v", err)
	}
	createBody := readBody(t, createResp)
	if createResp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d; body: %s", createResp.StatusCode, createBody)
	}

	var created services.Service
	if err := json.Unmarshal([]byte(createBody), &created); err != nil {
		t.Fatalf("invalid JSON body: %s", createBody)
	}
	if created.ID == 0 {
		t.Fatal("expected created service to have an id")
	}
	t.Cleanup(func() {
		db.DB.Delete(&services.Service{}, "id = ?", created.ID)
	})

	// Update.
	updateReq, _ := http.NewRequest(http.MethodPut,
		fmt.Sprintf("%s/api/services/%d", testServer.URL, created.ID),
		bytes.NewReader([]byte(`{"price":30}`)))
	updateReq.Header.Set("Content-Type", "application/json")
	updateResp, err := client.Do(updateReq)
	if err != nil {
		t.Fatalf("PUT /api/services/%d: %v", created.ID, err)
	}
	updateBody := readBody(t, updateResp)
	if updateResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d; body: %s", updateResp.StatusCode, updateBody)
	}

	var updated services.Service
	if err := json.Unmarshal([]byte(updateBody), &updated); err != nil {
		t.Fatalf("invalid JSON body: %s", updateBody)
	}
	if updated.Price != 30 {
		t.Errorf("expected updated price 30, got %v", updated.Price)
	}

	// Delete.
	deleteReq, _ := http.NewRequest(http.MethodDelete,
		fmt.Sprintf("%s/api/services/%d", testServer.URL, created.ID), nil)
	deleteResp, err := client.Do(deleteReq)
	if err != nil {
		t.Fatalf("DELETE /api/services/%d: %v", created.ID, err)
	}
	deleteBody := readBody(t, deleteResp)
	if deleteResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d; body: %s", deleteResp.StatusCode, deleteBody)
	}
	if !strings.Contains(deleteBody, `"success":true`) {
		t.Errorf("expected success:true, got: %s", deleteBody)
	}
}
