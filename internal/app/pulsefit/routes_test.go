package pulsefit

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/pulsefit/internal/config"
	"github.com/magabrotheeeer/pulsefit/internal/storage"
)

func newTestRouter(t *testing.T) (chi.Router, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := storage.NewWithDB(sqlx.NewDb(db, "pgx"), logger)
	cfg := &config.Config{JWTToken: config.JWTToken{JWTSecretKey: "test-secret", TokenTTL: time.Hour}}

	r := chi.NewRouter()
	RegisterRoutes(r, logger, NewServices(st, cfg, logger))
	return r, mock
}

func TestRegisterRoutes(t *testing.T) {
	r, mock := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		url    string
		want   int
	}{
		{name: "профиль без id", method: http.MethodGet, url: "/users/abc", want: http.StatusBadRequest},
		{name: "профиль под /api", method: http.MethodGet, url: "/api/users/abc", want: http.StatusBadRequest},
		{name: "посещения без userId", method: http.MethodGet, url: "/api/attendance", want: http.StatusBadRequest},
		{name: "удаление без параметров", method: http.MethodDelete, url: "/exercises", want: http.StatusBadRequest},
		{name: "неизвестный маршрут", method: http.MethodGet, url: "/api/nope", want: http.StatusNotFound},
		{name: "метрики", method: http.MethodGet, url: "/metrics", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.url, nil))
			assert.Equal(t, tt.want, rr.Code)
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}
