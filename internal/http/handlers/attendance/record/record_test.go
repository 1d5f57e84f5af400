package record

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/pulsefit/internal/models"
	attendanceservice "github.com/magabrotheeeer/pulsefit/internal/services/attendance"
	"github.com/magabrotheeeer/pulsefit/internal/storage"
)

type ServiceMock struct{ mock.Mock }

func (m *ServiceMock) CheckIn(ctx context.Context, userID int64, checkIn, date time.Time) (*models.Attendance, error) {
	args := m.Called(ctx, userID, checkIn, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Attendance), args.Error(1)
}

func (m *ServiceMock) CheckOut(ctx context.Context, id int64, checkOut time.Time, duration *int) (*models.Attendance, error) {
	args := m.Called(ctx, id, checkOut, duration)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Attendance), args.Error(1)
}

func sameTime(want time.Time) any {
	return mock.MatchedBy(func(got time.Time) bool { return got.Equal(want) })
}

func TestRecordHandler_ServeHTTP(t *testing.T) {
	in := time.Date(2024, 6, 1, 6, 30, 0, 0, time.UTC)
	out := in.Add(90 * time.Minute)
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	fixedNow := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	ninety := 90

	tests := []struct {
		name     string
		body     string
		setup    func(m *ServiceMock)
		wantCode int
	}{
		{
			name: "вход",
			body: `{"action":"checkin","userId":2,"checkInTime":"2024-06-01T06:30:00Z","date":"2024-06-01"}`,
			setup: func(m *ServiceMock) {
				m.On("CheckIn", mock.Anything, int64(2), sameTime(in), sameTime(day)).
					Return(&models.Attendance{ID: 1, UserID: 2, CheckInTime: in, Date: day}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name: "вход без времени берёт текущее",
			body: `{"action":"checkin","userId":2}`,
			setup: func(m *ServiceMock) {
				m.On("CheckIn", mock.Anything, int64(2), sameTime(fixedNow), time.Time{}).
					Return(&models.Attendance{ID: 1}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name: "повторный вход",
			body: `{"action":"checkin","userId":2,"checkInTime":"2024-06-01T06:30:00Z"}`,
			setup: func(m *ServiceMock) {
				m.On("CheckIn", mock.Anything, int64(2), sameTime(in), time.Time{}).Return(nil, storage.ErrOpenSession).Once()
			},
			wantCode: http.StatusConflict,
		},
		{
			name:     "вход без userId",
			body:     `{"action":"checkin"}`,
			setup:    func(*ServiceMock) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "выход",
			body: `{"action":"checkout","attendanceId":1,"checkOutTime":"2024-06-01T08:00:00Z","duration":90}`,
			setup: func(m *ServiceMock) {
				m.On("CheckOut", mock.Anything, int64(1), sameTime(out), &ninety).
					Return(&models.Attendance{ID: 1, CheckOutTime: &out, Duration: &ninety}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name: "выход из закрытого посещения",
			body: `{"action":"checkout","attendanceId":1,"checkOutTime":"2024-06-01T08:00:00Z"}`,
			setup: func(m *ServiceMock) {
				m.On("CheckOut", mock.Anything, int64(1), sameTime(out), (*int)(nil)).
					Return(nil, attendanceservice.ErrAlreadyClosed).Once()
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "выход раньше входа",
			body: `{"action":"checkout","attendanceId":1,"checkOutTime":"2024-06-01T08:00:00Z"}`,
			setup: func(m *ServiceMock) {
				m.On("CheckOut", mock.Anything, int64(1), sameTime(out), (*int)(nil)).
					Return(nil, attendanceservice.ErrInvalidCheckout).Once()
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "посещение не найдено",
			body: `{"action":"checkout","attendanceId":9,"checkOutTime":"2024-06-01T08:00:00Z"}`,
			setup: func(m *ServiceMock) {
				m.On("CheckOut", mock.Anything, int64(9), sameTime(out), (*int)(nil)).Return(nil, storage.ErrNotFound).Once()
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "отрицательная длительность",
			body:     `{"action":"checkout","attendanceId":1,"duration":-1}`,
			setup:    func(*ServiceMock) {},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "выход без attendanceId",
			body:     `{"action":"checkout"}`,
			setup:    func(*ServiceMock) {},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "неизвестное действие",
			body:     `{"action":"dance","userId":2}`,
			setup:    func(*ServiceMock) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "битый JSON",
			body:     `{"action":`,
			setup:    func(*ServiceMock) {},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setup(svc)
			h := New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)
			h.now = func() time.Time { return fixedNow }

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/attendance", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.wantCode, rr.Code)
			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			svc.AssertExpectations(t)
		})
	}
}
