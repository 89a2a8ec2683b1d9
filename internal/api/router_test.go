package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/dailydone/marketplace-api/internal/core/domain"
	"github.com/dailydone/marketplace-api/internal/infrastructure/db/memory"
	"github.com/dailydone/marketplace-api/internal/infrastructure/token"
	"github.com/dailydone/marketplace-api/internal/pkg/config"
)

// The prometheus request middleware registers collectors with the default
// registry, so the router is built exactly once for the whole package.
func newTestRouter() http.Handler {
	return NewRouter(Deps{
		Config: &config.Config{
			Env:         "test",
			PingMessage: "pong",
			CORSOrigins: []string{"http://localhost:5173"},
		},
		Users: memory.NewUserRepository(),
		Codec: token.NewJWTCodec("secret", time.Hour),
		Log:   zerolog.Nop(),
	})
}

func doJSON(t *testing.T, h http.Handler, method, path, body, bearer string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp map[string]any
	if len(rec.Body.Bytes()) > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s %s: invalid json %q: %v", method, path, rec.Body.String(), err)
		}
	}
	return rec, resp
}

func TestRouter_FullAuthFlow(t *testing.T) {
	h := newTestRouter()

	// register
	rec, resp := doJSON(t, h, http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"alice@x.com","password":"Password1!","name":"Alice"}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	tok, _ := resp["token"].(string)
	if tok == "" {
		t.Fatalf("register: missing token")
	}
	if resp["redirect_url"] != "/dashboard" {
		t.Fatalf("register: unexpected redirect %v", resp["redirect_url"])
	}

	// duplicate email, different case
	rec, _ = doJSON(t, h, http.MethodPost, "/api/auth/register",
		`{"username":"alice2","email":"ALICE@X.COM","password":"Password1!","name":"Alice"}`, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate register: expected 409, got %d", rec.Code)
	}

	// login with wrong password and unknown email produce identical bodies
	recWrong, respWrong := doJSON(t, h, http.MethodPost, "/api/auth/login",
		`{"email":"alice@x.com","password":"wrong-pass"}`, "")
	recGhost, respGhost := doJSON(t, h, http.MethodPost, "/api/auth/login",
		`{"email":"ghost@x.com","password":"Password1!"}`, "")
	if recWrong.Code != http.StatusUnauthorized || recGhost.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401s, got %d and %d", recWrong.Code, recGhost.Code)
	}
	if respWrong["message"] != respGhost["message"] {
		t.Fatalf("enumeration leak: %v vs %v", respWrong["message"], respGhost["message"])
	}

	// login
	rec, resp = doJSON(t, h, http.MethodPost, "/api/auth/login",
		`{"email":"alice@x.com","password":"Password1!"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", rec.Code)
	}
	tok, _ = resp["token"].(string)

	// verify
	rec, resp = doJSON(t, h, http.MethodGet, "/api/auth/verify", "", tok)
	if rec.Code != http.StatusOK || resp["valid"] != true {
		t.Fatalf("verify: expected 200 valid, got %d %v", rec.Code, resp)
	}

	// profile update is reflected on the next verify
	rec, _ = doJSON(t, h, http.MethodPut, "/api/users/me", `{"name":"Alice Cooper","completedTasks":4}`, tok)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	_, resp = doJSON(t, h, http.MethodGet, "/api/auth/verify", "", tok)
	user, _ := resp["user"].(map[string]any)
	if user["name"] != "Alice Cooper" || user["completedTasks"] != 4.0 {
		t.Fatalf("update not reflected: %+v", user)
	}

	// admin listing is role-gated
	rec, _ = doJSON(t, h, http.MethodGet, "/api/admin/users", "", tok)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("admin route: expected 403 for user role, got %d", rec.Code)
	}
	rec, _ = doJSON(t, h, http.MethodGet, "/api/admin/users", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("admin route: expected 401 without token, got %d", rec.Code)
	}

	// verify without a token
	rec, _ = doJSON(t, h, http.MethodGet, "/api/auth/verify", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("verify without token: expected 401, got %d", rec.Code)
	}

	// logout acknowledges statelessly
	rec, resp = doJSON(t, h, http.MethodPost, "/api/auth/logout", "", tok)
	if rec.Code != http.StatusOK || resp["success"] != true {
		t.Fatalf("logout: expected 200 success, got %d %v", rec.Code, resp)
	}

	// ping
	rec, resp = doJSON(t, h, http.MethodGet, "/api/ping", "", "")
	if rec.Code != http.StatusOK || resp["message"] != "pong" {
		t.Fatalf("ping: got %d %v", rec.Code, resp)
	}

	// unmatched API paths return a structured 404 envelope
	rec, resp = doJSON(t, h, http.MethodGet, "/api/nope", "", "")
	if rec.Code != http.StatusNotFound || resp["success"] != false {
		t.Fatalf("catch-all: expected structured 404, got %d %v", rec.Code, resp)
	}

	// liveness
	rec, _ = doJSON(t, h, http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", rec.Code)
	}

	// register with a helper role redirects to the helper dashboard
	rec, resp = doJSON(t, h, http.MethodPost, "/api/auth/register",
		`{"username":"helper1","email":"helper@x.com","password":"Password1!","name":"Helper","role":"helper"}`, "")
	if rec.Code != http.StatusCreated || resp["redirect_url"] != "/helper-dashboard" {
		t.Fatalf("helper register: got %d %v", rec.Code, resp)
	}
	user, _ = resp["user"].(map[string]any)
	if user["role"] != domain.RoleHelper {
		t.Fatalf("helper register: unexpected role %v", user["role"])
	}

	// weak password and malformed email are rejected before any mutation
	rec, _ = doJSON(t, h, http.MethodPost, "/api/auth/register",
		`{"username":"carol","email":"bad-email","password":"Password1!","name":"Carol"}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad email: expected 400, got %d", rec.Code)
	}
	rec, _ = doJSON(t, h, http.MethodPost, "/api/auth/register",
		`{"username":"carol","email":"carol@x.com","password":"short","name":"Carol"}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("weak password: expected 400, got %d", rec.Code)
	}
	rec, _ = doJSON(t, h, http.MethodPost, "/api/auth/login",
		`{"email":"carol@x.com","password":"Password1!"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("rejected registrations must not create accounts, got %d", rec.Code)
	}
}
