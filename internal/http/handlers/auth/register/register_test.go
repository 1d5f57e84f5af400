package register

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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/pulsefit/internal/lib/password"
	"github.com/magabrotheeeer/pulsefit/internal/models"
	authservice "github.com/magabrotheeeer/pulsefit/internal/services/auth"
	"github.com/magabrotheeeer/pulsefit/internal/storage"
)

// Мок сервиса с методом Register
type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Register(ctx context.Context, in authservice.RegisterInput) (*authservice.Registration, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authservice.Registration), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestRegisterHandler_ServeHTTP(t *testing.T) {
	valid := Request{Name: "Jane", Email: "jane@x.com", Password: "secret1", Subscription: "Strength Training"}

	tests := []struct {
		name           string
		requestBody    any
		mockResult     *authservice.Registration
		mockErr        error
		callService    bool
		wantStatusCode int
		wantError      string
	}{
		{
			name:        "успешная регистрация",
			requestBody: valid,
			mockResult: &authservice.Registration{
				User: &models.User{ID: 5, Name: "Jane", Email: "jane@x.com", PasswordHash: "hash", Role: "user"},
				Subscription: models.SubscriptionSummary{
					Category: "Strength Training", Price: 800, StartDate: "2024-06-01", EndDate: "2025-06-01",
				},
			},
			callService:    true,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
		},
		{
			name:           "нет пароля",
			requestBody:    Request{Name: "Jane", Email: "jane@x.com", Subscription: "Yoga"},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field Password is a required field",
		},
		{
			name:           "пароль длиннее 72 байт",
			requestBody:    Request{Name: "Jane", Email: "jane@x.com", Password: strings.Repeat("a", 73), Subscription: "Yoga"},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field Password must be at most 72",
		},
		{
			name:           "email занят",
			requestBody:    valid,
			mockErr:        storage.ErrEmailTaken,
			callService:    true,
			wantStatusCode: http.StatusConflict,
			wantError:      "email already registered",
		},
		{
			name:           "ошибка сервиса",
			requestBody:    valid,
			mockErr:        errors.New("pq: connection refused"),
			callService:    true,
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "registration failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			if tt.callService {
				svc.On("Register", mock.Anything, authservice.RegisterInput{
					Name: valid.Name, Email: valid.Email, Password: valid.Password, Subscription: valid.Subscription,
				}).Return(tt.mockResult, tt.mockErr).Once()
			}
			handler := New(newNoopLogger(), svc)

			var body []byte
			switch v := tt.requestBody.(type) {
			case string:
				body = []byte(v)
			default:
				var err error
				body, err = json.Marshal(v)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatusCode, rr.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			if tt.wantError != "" {
				assert.Equal(t, "Error", resp["status"])
				assert.Contains(t, resp["error"], tt.wantError)
				assert.NotContains(t, rr.Body.String(), "connection refused")
			} else {
				data := resp["data"].(map[string]any)
				assert.Equal(t, true, data["success"])
				user := data["user"].(map[string]any)
				assert.Equal(t, "jane@x.com", user["email"])
				assert.NotContains(t, user, "password_hash")
				sub := user["subscription"].(map[string]any)
				assert.Equal(t, 800.0, sub["price"])
			}
			svc.AssertExpectations(t)
		})
	}
}

// Валидатор считает символы, bcrypt считает байты: 40 символов кириллицы
// проходят max=72, но занимают 80 байт.
func TestRegisterHandler_PasswordTooLongInBytes(t *testing.T) {
	long := strings.Repeat("ж", 40)
	in := authservice.RegisterInput{Name: "Jane", Email: "jane@x.com", Password: long, Subscription: "Yoga"}

	svc := new(ServiceMock)
	svc.On("Register", mock.Anything, in).
		Return(nil, fmt.Errorf("auth.Register: %w", fmt.Errorf("password.Hash: %w", password.ErrTooLong))).Once()

	body, err := json.Marshal(Request{Name: in.Name, Email: in.Email, Password: long, Subscription: in.Subscription})
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	New(newNoopLogger(), svc).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body)))

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), "field Password must be at most 72 bytes")
	svc.AssertExpectations(t)
}
