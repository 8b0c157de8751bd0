package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/domain/user"
	"resume-match/internal/pkg/response"
	"resume-match/internal/usecase"
	ucauth "resume-match/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type mockAuthUsecase struct {
	usr  user.User
	pair usecase.TokenPair
	err  error
}

func (m mockAuthUsecase) Register(context.Context, ucauth.RegisterInput) (user.User, usecase.TokenPair, error) {
	return m.usr, m.pair, m.err
}
func (m mockAuthUsecase) Login(context.Context, ucauth.LoginInput) (user.User, usecase.TokenPair, error) {
	return m.usr, m.pair, m.err
}
func (m mockAuthUsecase) Refresh(context.Context, string) (usecase.TokenPair, error) {
	return m.pair, m.err
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newAuthTestApp(uc usecase.AuthUsecase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware().Middleware())
	NewAuthHandler(uc).RegisterRoutes(app.Group("/api/v1/auth"))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, fiber.TestConfig{Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("bad envelope %q: %v", raw, err)
	}
	return resp.StatusCode, env
}

func TestAuthRegister_SuccessEnvelope(t *testing.T) {
	uc := mockAuthUsecase{
		usr:  user.User{ID: uuid.New(), Email: "alice@example.com"},
		pair: usecase.TokenPair{AccessToken: "acc", RefreshToken: "ref"},
	}
	app := newAuthTestApp(uc)

	status, env := doJSON(t, app, "POST", "/api/v1/auth/register",
		`{"email":"alice@example.com","password":"changeme123"}`)

	if status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}
	if env.Status != fiber.StatusCreated {
		t.Fatalf("envelope status mismatch: %d", env.Status)
	}

	var data struct {
		User struct {
			Email string `json:"email"`
		} `json:"user"`
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("bad data: %v", err)
	}
	if data.User.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", data)
	}
	if data.AccessToken != "acc" || data.RefreshToken != "ref" {
		t.Fatalf("tokens missing from envelope: %+v", data)
	}
}

func TestAuthRegister_DuplicateEmailIsConflict(t *testing.T) {
	app := newAuthTestApp(mockAuthUsecase{err: ucauth.ErrEmailAlreadyRegistered})

	status, env := doJSON(t, app, "POST", "/api/v1/auth/register",
		`{"email":"dup@example.com","password":"changeme123"}`)

	if status != fiber.StatusConflict {
		t.Fatalf("expected 409, got %d", status)
	}
	if env.Message != "Email already registered" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}

func TestAuthLogin_InvalidCredentialsEnvelope(t *testing.T) {
	app := newAuthTestApp(mockAuthUsecase{err: ucauth.ErrInvalidCredentials})

	status, env := doJSON(t, app, "POST", "/api/v1/auth/login",
		`{"email":"bob@example.com","password":"wrong"}`)

	if status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
	if env.Status != fiber.StatusUnauthorized {
		t.Fatalf("envelope status mismatch: %d", env.Status)
	}
}

func TestAuthLogin_InternalErrorIsMasked(t *testing.T) {
	app := newAuthTestApp(mockAuthUsecase{err: ucauth.ErrInternal})

	status, env := doJSON(t, app, "POST", "/api/v1/auth/login",
		`{"email":"bob@example.com","password":"changeme123"}`)

	if status != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if env.Message != response.MessageInternalServerError {
		t.Fatalf("expected masked message, got %q", env.Message)
	}
}

func TestAuthRefresh_MissingBearerHeader(t *testing.T) {
	app := newAuthTestApp(mockAuthUsecase{})

	status, _ := doJSON(t, app, "POST", "/api/v1/auth/refresh", "")
	if status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
}

func TestBearerFromAuthorizationHeader(t *testing.T) {
	cases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"", "", false},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"Bearer tok123", "tok123", true},
		{"bearer tok123", "tok123", true},
		{"  Bearer tok123  ", "tok123", true},
	}
	for _, c := range cases {
		got, ok := bearerFromAuthorizationHeader(c.in)
		if got != c.want || ok != c.wantOK {
			t.Fatalf("bearerFromAuthorizationHeader(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.wantOK)
		}
	}
}
