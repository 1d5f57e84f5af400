package update

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/pulsefit/internal/models"
	"github.com/magabrotheeeer/pulsefit/internal/storage"
)

// MockService реализует интерфейс update.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) UpdateSubscription(ctx context.Context, userID int64,
	upd models.SubscriptionUpdate) (*models.Subscription, error) {
	args := m.Called(ctx, userID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func TestUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	endOnly := mock.MatchedBy(func(u models.SubscriptionUpdate) bool {
		return u.EndDate != nil && u.EndDate.Equal(time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)) &&
			u.StartDate == nil && u.Category == nil && u.Price == nil && u.Status == nil
	})

	tests := []struct {
		name           string
		url            string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "продление подписки",
			url:  "/users/2/subscription",
			body: `{"endDate":"2025-06-30"}`,
			setupMock: func(m *MockService) {
				m.On("UpdateSubscription", mock.Anything, int64(2), endOnly).
					Return(&models.Subscription{ID: 7, UserID: 2, Status: models.StatusActive}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":7`,
		},
		{
			name:           "некорректная дата",
			url:            "/users/2/subscription",
			body:           `{"startDate":"01-2024"}`,
			setupMock:      func(*MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"dates must be in format 2006-01-02"`,
		},
		{
			name:           "отрицательная цена",
			url:            "/users/2/subscription",
			body:           `{"price":-5}`,
			setupMock:      func(*MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"status":"Error"`,
		},
		{
			name: "пустое обновление",
			url:  "/users/2/subscription",
			body: `{}`,
			setupMock: func(m *MockService) {
				m.On("UpdateSubscription", mock.Anything, int64(2), models.SubscriptionUpdate{}).
					Return(nil, storage.ErrEmptyUpdate)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"no fields to update"`,
		},
		{
			name: "подписок нет",
			url:  "/users/3/subscription",
			body: `{"endDate":"2025-06-30"}`,
			setupMock: func(m *MockService) {
				m.On("UpdateSubscription", mock.Anything, int64(3), endOnly).Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"subscription not found"`,
		},
		{
			name: "ошибка сервиса",
			url:  "/users/2/subscription",
			body: `{"endDate":"2025-06-30"}`,
			setupMock: func(m *MockService) {
				m.On("UpdateSubscription", mock.Anything, int64(2), endOnly).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not update subscription"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			r := chi.NewRouter()
			r.Put("/users/{id}/subscription", New(logger, mockService).ServeHTTP)

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, tt.url, bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}

func TestToUpdate(t *testing.T) {
	start := "2024-02-01"
	category := "Yoga"

	upd, err := toUpdate(models.DummySubscriptionUpdate{StartDate: &start, Category: &category})
	require.NoError(t, err)
	require.NotNil(t, upd.StartDate)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *upd.StartDate)
	assert.Nil(t, upd.EndDate)
	assert.Equal(t, "Yoga", *upd.Category)
}
