package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/greenbites/greenbites-backend/api/middleware"
	"github.com/greenbites/greenbites-backend/internal/auth"
	"github.com/greenbites/greenbites-backend/internal/users"
	pkgerrors "github.com/greenbites/greenbites-backend/pkg/errors"
)

type stubAuthService struct {
	loginFn  func(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error)
	logoutFn func(ctx context.Context, accessID string) error
}

func (s *stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	if s.loginFn != nil {
		return s.loginFn(ctx, req)
	}
	return nil, pkgerrors.New(pkgerrors.CodeInternal, "not stubbed")
}

func (s *stubAuthService) Logout(ctx context.Context, accessID string) error {
	if s.logoutFn != nil {
		return s.logoutFn(ctx, accessID)
	}
	return nil
}

func TestAuthLoginSuccess(t *testing.T) {
	userID := uuid.New()
	svc := &stubAuthService{
		loginFn: func(_ context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
			if req.Email != "donor@example.com" {
				t.Fatalf("unexpected email %q", req.Email)
			}
			return &auth.LoginResponse{
				AccessToken: "token-123",
				User:        &users.UserDTO{ID: userID, Email: req.Email, Role: "donor"},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte(`{"email":"donor@example.com","password":"donor123"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	AuthLogin(svc, testLogger())(resp, req)
	requireStatus(t, resp.Code, http.StatusOK)

	var envelope struct {
		Data struct {
			AccessToken string         `json:"accessToken"`
			User        *users.UserDTO `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Data.AccessToken != "token-123" {
		t.Fatalf("unexpected token %q", envelope.Data.AccessToken)
	}
	if envelope.Data.User == nil || envelope.Data.User.ID != userID {
		t.Fatalf("unexpected user payload %+v", envelope.Data.User)
	}
}

func TestAuthLoginRejectsMalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte(`{"email":"not-an-email"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	AuthLogin(&stubAuthService{}, testLogger())(resp, req)
	requireStatus(t, resp.Code, http.StatusBadRequest)
}

func TestAuthLoginSurfacesInvalidCredentials(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(context.Context, auth.LoginRequest) (*auth.LoginResponse, error) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
		},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte(`{"email":"donor@example.com","password":"wrong-password"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	AuthLogin(svc, testLogger())(resp, req)
	requireStatus(t, resp.Code, http.StatusUnauthorized)
}

func TestAuthLogoutRevokesContextSession(t *testing.T) {
	var revoked string
	svc := &stubAuthService{
		logoutFn: func(_ context.Context, accessID string) error {
			revoked = accessID
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req = req.WithContext(middleware.WithAccessID(req.Context(), "session-42"))
	resp := httptest.NewRecorder()
	AuthLogout(svc, testLogger())(resp, req)
	requireStatus(t, resp.Code, http.StatusOK)
	if revoked != "session-42" {
		t.Fatalf("expected session-42 revoked, got %q", revoked)
	}
}
