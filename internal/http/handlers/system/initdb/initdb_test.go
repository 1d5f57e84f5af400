package initdb

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/pulsefit/internal/models"
)

type InitializerMock struct{ mock.Mock }

func (m *InitializerMock) Initialize(ctx context.Context) (*models.InitResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InitResult), args.Error(1)
}

func TestInitHandler_ServeHTTP(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("успех", func(t *testing.T) {
		seeder := new(InitializerMock)
		seeder.On("Initialize", mock.Anything).Return(&models.InitResult{
			Stats: models.TableCounts{Users: 2, Subscriptions: 1, Attendance: 3, Exercises: 2},
			DemoAccounts: map[string]models.Credentials{
				"admin": {Email: "admin@pulsefit.com", Password: "admin123"},
			},
		}, nil).Once()

		rr := httptest.NewRecorder()
		New(log, seeder).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/init-database", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"demoAccounts"`)
		assert.Contains(t, rr.Body.String(), `"attendance":3`)
	})

	t.Run("ошибка скрыта от клиента", func(t *testing.T) {
		seeder := new(InitializerMock)
		seeder.On("Initialize", mock.Anything).Return(nil, errors.New("permission denied for schema public")).Once()

		rr := httptest.NewRecorder()
		New(log, seeder).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/init-database", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "permission denied")
	})
}
