package login

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/pulsefit/internal/models"
	authservice "github.com/magabrotheeeer/pulsefit/internal/services/auth"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Login(ctx context.Context, email, password string) (*authservice.Login, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authservice.Login), args.Error(1)
}

func TestLoginHandler_ServeHTTP(t *testing.T) {
	wrapped := fmt.Errorf("auth.Login: %w", authservice.ErrInvalidCredentials)

	tests := []struct {
		name           string
		body           string
		setup          func(m *ServiceMock)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "успешный вход",
			body: `{"email":"user@x.com","password":"user123"}`,
			setup: func(m *ServiceMock) {
				m.On("Login", mock.Anything, "user@x.com", "user123").Return(&authservice.Login{
					User:  &models.User{ID: 2, Email: "user@x.com", PasswordHash: "hash", Role: "user"},
					Token: "jwt",
				}, nil).Once()
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "неизвестный email",
			body: `{"email":"nobody@x.com","password":"user123"}`,
			setup: func(m *ServiceMock) {
				m.On("Login", mock.Anything, "nobody@x.com", "user123").Return(nil, wrapped).Once()
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "invalid credentials",
		},
		{
			name: "неверный пароль",
			body: `{"email":"user@x.com","password":"bad"}`,
			setup: func(m *ServiceMock) {
				m.On("Login", mock.Anything, "user@x.com", "bad").Return(nil, wrapped).Once()
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "invalid credentials",
		},
		{
			name:           "пустой пароль",
			body:           `{"email":"user@x.com"}`,
			setup:          func(*ServiceMock) {},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field Password is a required field",
		},
		{
			name:           "битый JSON",
			body:           `{`,
			setup:          func(*ServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
		},
		{
			name: "ошибка хранилища",
			body: `{"email":"user@x.com","password":"user123"}`,
			setup: func(m *ServiceMock) {
				m.On("Login", mock.Anything, "user@x.com", "user123").Return(nil, errors.New("db down")).Once()
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setup(svc)
			h := New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.wantStatusCode, rr.Code)
			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, resp["error"])
			} else {
				data := resp["data"].(map[string]any)
				assert.Equal(t, "jwt", data["token"])
				assert.Equal(t, true, data["success"])
				assert.NotContains(t, data["user"], "password_hash")
			}
			svc.AssertExpectations(t)
		})
	}
}
