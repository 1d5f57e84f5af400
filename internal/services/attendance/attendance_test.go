package attendance_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/pulsefit/internal/models"
	"github.com/magabrotheeeer/pulsefit/internal/services/attendance"
	"github.com/magabrotheeeer/pulsefit/internal/storage"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateAttendance(ctx context.Context, userID int64, checkIn, date time.Time) (*models.Attendance, error) {
	args := m.Called(ctx, userID, checkIn, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Attendance), args.Error(1)
}

func (m *RepoMock) CloseAttendance(ctx context.Context, id int64, checkOut time.Time, duration int) (*models.Attendance, error) {
	args := m.Called(ctx, id, checkOut, duration)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Attendance), args.Error(1)
}

func (m *RepoMock) GetAttendance(ctx context.Context, id int64) (*models.Attendance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Attendance), args.Error(1)
}

func (m *RepoMock) ListAttendance(ctx context.Context, userID int64, limit int) ([]models.Attendance, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Attendance), args.Error(1)
}

func (m *RepoMock) GetAttendanceByDate(ctx context.Context, userID int64, date time.Time) (*models.Attendance, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Attendance), args.Error(1)
}

var checkIn = time.Date(2024, 6, 1, 6, 30, 0, 0, time.UTC)

func newService(repo *RepoMock) *attendance.Service {
	return attendance.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestService_CheckIn_DefaultDate(t *testing.T) {
	repo := new(RepoMock)
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	repo.On("CreateAttendance", mock.Anything, int64(2), checkIn, day).
		Return(&models.Attendance{ID: 1, UserID: 2, CheckInTime: checkIn, Date: day}, nil).Once()

	a, err := newService(repo).CheckIn(context.Background(), 2, checkIn, time.Time{})
	require.NoError(t, err)
	assert.True(t, a.IsOpen())
	repo.AssertExpectations(t)
}

func TestService_CheckIn_OpenSession(t *testing.T) {
	repo := new(RepoMock)
	repo.On("CreateAttendance", mock.Anything, int64(2), checkIn, mock.Anything).
		Return(nil, storage.ErrOpenSession).Once()

	_, err := newService(repo).CheckIn(context.Background(), 2, checkIn, checkIn)
	require.ErrorIs(t, err, storage.ErrOpenSession)
}

func TestService_CheckOut(t *testing.T) {
	open := &models.Attendance{ID: 1, UserID: 2, CheckInTime: checkIn}
	closedAt := checkIn.Add(90 * time.Minute)
	ninety, negative := 90, -5

	tests := []struct {
		name         string
		current      *models.Attendance
		checkOut     time.Time
		duration     *int
		wantDuration int
		wantErr      error
	}{
		{name: "длительность считается сама", current: open, checkOut: closedAt.Add(59 * time.Second), wantDuration: 90},
		{name: "длительность передана", current: open, checkOut: closedAt, duration: &ninety, wantDuration: 90},
		{name: "выход раньше входа", current: open, checkOut: checkIn.Add(-time.Minute), wantErr: attendance.ErrInvalidCheckout},
		{name: "отрицательная длительность", current: open, checkOut: closedAt, duration: &negative, wantErr: attendance.ErrInvalidCheckout},
		{
			name:     "уже закрыто",
			current:  &models.Attendance{ID: 1, CheckInTime: checkIn, CheckOutTime: &closedAt, Duration: &ninety},
			checkOut: closedAt,
			wantErr:  attendance.ErrAlreadyClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			repo.On("GetAttendance", mock.Anything, int64(1)).Return(tt.current, nil).Once()
			if tt.wantErr == nil {
				d := tt.wantDuration
				repo.On("CloseAttendance", mock.Anything, int64(1), tt.checkOut, tt.wantDuration).
					Return(&models.Attendance{ID: 1, CheckInTime: checkIn, CheckOutTime: &tt.checkOut, Duration: &d}, nil).Once()
			}

			a, err := newService(repo).CheckOut(context.Background(), 1, tt.checkOut, tt.duration)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "CloseAttendance")
				return
			}
			require.NoError(t, err)
			require.NotNil(t, a.Duration)
			assert.Equal(t, tt.wantDuration, *a.Duration)
			repo.AssertExpectations(t)
		})
	}
}

func TestService_CheckOut_NotFound(t *testing.T) {
	repo := new(RepoMock)
	repo.On("GetAttendance", mock.Anything, int64(7)).Return(nil, storage.ErrNotFound).Once()

	_, err := newService(repo).CheckOut(context.Background(), 7, checkIn, nil)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestService_CheckOut_ClosedConcurrently(t *testing.T) {
	repo := new(RepoMock)
	repo.On("GetAttendance", mock.Anything, int64(1)).
		Return(&models.Attendance{ID: 1, CheckInTime: checkIn}, nil).Once()
	repo.On("CloseAttendance", mock.Anything, int64(1), mock.Anything, mock.Anything).
		Return(nil, storage.ErrNotFound).Once()

	_, err := newService(repo).CheckOut(context.Background(), 1, checkIn.Add(time.Hour), nil)
	require.ErrorIs(t, err, attendance.ErrAlreadyClosed)
}

func TestService_History(t *testing.T) {
	repo := new(RepoMock)
	repo.On("ListAttendance", mock.Anything, int64(2), 0).
		Return([]models.Attendance{{ID: 3}, {ID: 2}}, nil).Once()

	list, err := newService(repo).History(context.Background(), 2, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	repo.AssertExpectations(t)
}
