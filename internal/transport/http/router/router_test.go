package router

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/finadvise/auth-service/internal/application/auth"
	"github.com/finadvise/auth-service/internal/audit"
	"github.com/finadvise/auth-service/internal/domain"
	"github.com/finadvise/auth-service/internal/infrastructure/memory"
	"github.com/finadvise/auth-service/internal/infrastructure/security"
	"github.com/finadvise/auth-service/internal/logger"
	"github.com/finadvise/auth-service/internal/transport/http/handlers"
	"github.com/finadvise/auth-service/internal/transport/http/middleware"
	"github.com/finadvise/auth-service/internal/transport/http/response"
)

func init() {
	logger.InitWithWriter(&strings.Builder{})
}

const testSecret = "router-test-secret"

// newTestRouter assembles the full stack over the in-memory store: real
// hasher, real signer, real middleware. Only Redis is absent (no login
// rate limit).
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	users := memory.NewUserRepo()
	hasher := security.NewBcryptHasher(4)
	signer := security.NewJWTSigner(testSecret, "auth-service")

	memory.SeedUsers(context.Background(), users, hasher, zerolog.Nop())

	svc := auth.NewService(users, hasher, signer, auth.Config{AccessTTL: time.Minute})
	aud := audit.New(zerolog.Nop())

	requireRoles := func(required domain.RoleSet) func(http.Handler) http.Handler {
		return middleware.RequireRoles(required, aud, response.WriteError)
	}

	h, err := New(Deps{
		Health:       handlers.NewHealthHandler(nil),
		Auth:         handlers.NewAuthHandler(svc, aud),
		Protected:    handlers.NewProtectedHandler(svc),
		RequestIDMW:  middleware.RequestID,
		AuthMW:       middleware.Auth(signer, response.WriteError),
		RequireRoles: requireRoles,
	})
	if err != nil {
		t.Fatalf("router: %v", err)
	}
	return h
}

func doLogin(t *testing.T, h http.Handler, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	body := `{"username":"` + username + `","password":"` + password + `"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func loginToken(t *testing.T, h http.Handler, username, password string) string {
	t.Helper()
	rr := doLogin(t, h, username, password)
	if rr.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d (%s)", username, rr.Code, rr.Body.String())
	}
	var res struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	if res.Token == "" {
		t.Fatalf("empty token for %s", username)
	}
	return res.Token
}

func doGet(h http.Handler, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestLoginThenAccess_AdminPath(t *testing.T) {
	h := newTestRouter(t)

	rr := doLogin(t, h, "admin1", "AdminPass123!")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rr.Code, rr.Body.String())
	}
	var res struct {
		Username string `json:"username"`
		Role     string `json:"role"`
		Token    string `json:"token"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Role != "admin" || res.Username != "admin1" {
		t.Fatalf("unexpected login body: %+v", res)
	}

	got := doGet(h, "/api/admin/users", res.Token)
	if got.Code != http.StatusOK {
		t.Fatalf("admin listing: expected 200, got %d (%s)", got.Code, got.Body.String())
	}
	if !strings.Contains(got.Body.String(), `"username":"user1"`) {
		t.Fatalf("admin listing missing seeded user: %s", got.Body.String())
	}
}

func TestRoleSets_AreMembershipNotHierarchy(t *testing.T) {
	h := newTestRouter(t)

	adminTok := loginToken(t, h, "admin1", "AdminPass123!")
	advisorTok := loginToken(t, h, "advisor1", "AdvisorPass123!")
	userTok := loginToken(t, h, "user1", "UserPass123!")

	cases := []struct {
		name   string
		target string
		token  string
		want   int
	}{
		{"admin on admin route", "/api/admin/users", adminTok, http.StatusOK},
		{"admin on advisor route", "/api/advisor/clients", adminTok, http.StatusForbidden},
		{"advisor on advisor route", "/api/advisor/clients", advisorTok, http.StatusOK},
		{"advisor on admin route", "/api/admin/users", advisorTok, http.StatusForbidden},
		{"user on admin route", "/api/admin/users", userTok, http.StatusForbidden},
		{"user on advisor route", "/api/advisor/clients", userTok, http.StatusForbidden},
		{"admin on me", "/api/me", adminTok, http.StatusOK},
		{"advisor on me", "/api/me", advisorTok, http.StatusOK},
		{"user on me", "/api/me", userTok, http.StatusOK},
	}

	for _, tc := range cases {
		rr := doGet(h, tc.target, tc.token)
		if rr.Code != tc.want {
			t.Fatalf("%s: expected %d, got %d (%s)", tc.name, tc.want, rr.Code, rr.Body.String())
		}
		if tc.want == http.StatusForbidden {
			want := `{"message":"Access denied: insufficient permissions"}`
			if strings.TrimSpace(rr.Body.String()) != want {
				t.Fatalf("%s: got body %s", tc.name, rr.Body.String())
			}
		}
	}
}

func TestProtected_NoToken_Returns401(t *testing.T) {
	h := newTestRouter(t)

	for _, target := range []string{"/api/me", "/api/advisor/clients", "/api/admin/users"} {
		rr := doGet(h, target, "")
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", target, rr.Code)
		}
		want := `{"message":"No token provided"}`
		if strings.TrimSpace(rr.Body.String()) != want {
			t.Fatalf("%s: got body %s", target, rr.Body.String())
		}
	}
}

func TestProtected_MalformedHeader_Returns401(t *testing.T) {
	h := newTestRouter(t)
	tok := loginToken(t, h, "user1", "UserPass123!")

	for _, header := range []string{
		tok,            // no scheme
		"Basic " + tok, // wrong scheme
		"Bearer",       // scheme only
		"Bearer ",      // empty token
	} {
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", header)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, rr.Code)
		}
		want := `{"message":"Malformed token"}`
		if strings.TrimSpace(rr.Body.String()) != want {
			t.Fatalf("header %q: got body %s", header, rr.Body.String())
		}
	}
}

func TestLoginFailures_ByteIdenticalBodies(t *testing.T) {
	h := newTestRouter(t)

	unknown := doLogin(t, h, "nobody", "UserPass123!")
	wrongPass := doLogin(t, h, "user1", "WrongPass999!")

	if unknown.Code != http.StatusUnauthorized || wrongPass.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", unknown.Code, wrongPass.Code)
	}
	if unknown.Body.String() != wrongPass.Body.String() {
		t.Fatalf("failure bodies differ: %q vs %q", unknown.Body.String(), wrongPass.Body.String())
	}
}

func TestProtected_TamperedSignature_Returns403(t *testing.T) {
	h := newTestRouter(t)
	tok := loginToken(t, h, "user1", "UserPass123!")

	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %s", tok)
	}

	sigBytes, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		t.Fatalf("decode signature: %v", err)
	}
	sigBytes[0] ^= 0x01
	tampered := parts[0] + "." + parts[1] + "." + base64.RawURLEncoding.EncodeToString(sigBytes)

	rr := doGet(h, "/api/me", tampered)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d (%s)", rr.Code, rr.Body.String())
	}
	want := `{"message":"Invalid or expired token"}`
	if strings.TrimSpace(rr.Body.String()) != want {
		t.Fatalf("got body %s", rr.Body.String())
	}
}

func TestProtected_ExpiredToken_Returns403(t *testing.T) {
	h := newTestRouter(t)

	signer := security.NewJWTSigner(testSecret, "auth-service")
	expired, err := signer.SignAccessToken(domain.User{
		ID:       1,
		Username: "user1",
		Role:     domain.RoleUser,
	}, -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	rr := doGet(h, "/api/me", expired)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d (%s)", rr.Code, rr.Body.String())
	}
	want := `{"message":"Invalid or expired token"}`
	if strings.TrimSpace(rr.Body.String()) != want {
		t.Fatalf("got body %s", rr.Body.String())
	}
}

func TestResponses_NeverContainPasswordHash(t *testing.T) {
	h := newTestRouter(t)
	tok := loginToken(t, h, "admin1", "AdminPass123!")

	for _, target := range []string{"/api/me", "/api/advisor/clients", "/api/admin/users"} {
		rr := doGet(h, target, tok)
		body := rr.Body.String()
		if strings.Contains(body, "$2a$") || strings.Contains(body, "$2b$") ||
			strings.Contains(body, "password") {
			t.Fatalf("%s leaks password material: %s", target, body)
		}
	}
}

func TestRequestID_Propagated(t *testing.T) {
	h := newTestRouter(t)

	rr := doGet(h, "/healthz", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if rr.Header().Get("X-Request-Id") == "" {
		t.Fatalf("missing X-Request-Id header")
	}
}

func TestHealthEndpoints_Open(t *testing.T) {
	h := newTestRouter(t)

	for _, target := range []string{"/healthz", "/readyz"} {
		rr := doGet(h, target, "")
		if rr.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", target, rr.Code)
		}
	}
}
