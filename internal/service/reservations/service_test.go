package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ParkingService/internal/service/reservations/models"
)

type fakeRepo struct {
	byID      map[int64]*domain.Reservation
	cancelErr error
}

func newFakeRepo(reservations ...*domain.Reservation) *fakeRepo {
	f := &fakeRepo{byID: make(map[int64]*domain.Reservation)}
	for _, r := range reservations {
		f.byID[r.ID] = r
	}
	return f
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return r, nil
}

func (f *fakeRepo) GetByUserID(_ context.Context, userID int64) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, r := range f.byID {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64, cancelledAt time.Time) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	r, ok := f.byID[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	if r.Cancelled {
		return reservationRepo.ErrAlreadyCancelled
	}
	r.Cancelled = true
	r.CancelledAt = &cancelledAt
	return nil
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Сегодня в тестах: 15 марта 2026
var testToday = date(2026, time.March, 15)

func newTestService(repo *fakeRepo) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = fixedTime{now: testToday}
	return svc
}

// Набор бронирований пользователя 1: upcoming, ongoing, completed, cancelled
func seedReservations() []*domain.Reservation {
	return []*domain.Reservation{
		{
			ID:            1,
			UserID:        1,
			SlotID:        1,
			SlotName:      "Slot 1",
			VehicleNumber: "AA1111",
			VehicleType:   domain.VehicleTypeCar,
			StartDate:     date(2026, time.March, 20),
			EndDate:       date(2026, time.March, 22),
			Amount:        200,
		},
		{
			ID:            2,
			UserID:        1,
			SlotID:        2,
			SlotName:      "Slot 2",
			VehicleNumber: "BB2222",
			VehicleType:   domain.VehicleTypeBike,
			StartDate:     date(2026, time.March, 14),
			EndDate:       date(2026, time.March, 16),
			Amount:        100,
		},
		{
			ID:            3,
			UserID:        1,
			SlotID:        3,
			SlotName:      "Slot 3",
			VehicleNumber: "CC3333",
			VehicleType:   domain.VehicleTypeSUV,
			StartDate:     date(2026, time.March, 1),
			EndDate:       date(2026, time.March, 5),
			Amount:        600,
		},
		{
			ID:            4,
			UserID:        1,
			SlotID:        4,
			SlotName:      "Slot 4",
			VehicleNumber: "DD4444",
			VehicleType:   domain.VehicleTypeCar,
			StartDate:     date(2026, time.March, 25),
			EndDate:       date(2026, time.March, 27),
			Amount:        200,
			Cancelled:     true,
		},
	}
}

func TestGetByID(t *testing.T) {
	svc := newTestService(newFakeRepo(seedReservations()...))

	resp, err := svc.GetByID(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "upcoming", resp.Status)
	assert.Equal(t, "2026-03-20", resp.StartDate)

	_, err = svc.GetByID(context.Background(), 999, 1)
	assert.ErrorIs(t, err, ErrReservationNotFound)

	_, err = svc.GetByID(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrAccessDenied, "чужое бронирование недоступно")
}

func TestGetUserReservations_StatusFilter(t *testing.T) {
	tests := []struct {
		name    string
		filter  string
		wantIDs []int64
	}{
		{name: "all явно", filter: "all", wantIDs: []int64{1, 2, 3, 4}},
		{name: "пустой фильтр как all", filter: "", wantIDs: []int64{1, 2, 3, 4}},
		{name: "active включает upcoming и ongoing", filter: "active", wantIDs: []int64{1, 2}},
		{name: "completed", filter: "completed", wantIDs: []int64{3}},
		{name: "cancelled", filter: "cancelled", wantIDs: []int64{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(newFakeRepo(seedReservations()...))

			resp, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
				UserID: 1,
				Filter: tt.filter,
			})
			require.NoError(t, err)

			gotIDs := make([]int64, 0, len(resp.Reservations))
			for _, r := range resp.Reservations {
				gotIDs = append(gotIDs, r.ID)
			}
			assert.ElementsMatch(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestGetUserReservations_InvalidFilter(t *testing.T) {
	svc := newTestService(newFakeRepo(seedReservations()...))

	_, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
		UserID: 1,
		Filter: "pending",
	})
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestGetUserReservations_Search(t *testing.T) {
	tests := []struct {
		name    string
		search  string
		wantIDs []int64
	}{
		{name: "по госномеру без учета регистра", search: "bb22", wantIDs: []int64{2}},
		{name: "по имени слота", search: "slot 3", wantIDs: []int64{3}},
		{name: "общий префикс имени слота", search: "slot", wantIDs: []int64{1, 2, 3, 4}},
		{name: "без совпадений", search: "zz999", wantIDs: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(newFakeRepo(seedReservations()...))

			resp, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
				UserID:     1,
				SearchTerm: tt.search,
			})
			require.NoError(t, err)

			gotIDs := make([]int64, 0, len(resp.Reservations))
			for _, r := range resp.Reservations {
				gotIDs = append(gotIDs, r.ID)
			}
			assert.ElementsMatch(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestGetUserStats(t *testing.T) {
	svc := newTestService(newFakeRepo(seedReservations()...))

	stats, err := svc.GetUserStats(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Active)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 1, stats.Cancelled)
	assert.Equal(t, stats.Total, stats.Active+stats.Completed+stats.Cancelled,
		"классификация покрывает все бронирования")
	assert.Equal(t, int64(900), stats.TotalSpent, "отмененное бронирование не входит в сумму")
}

func TestGetUserStats_Empty(t *testing.T) {
	svc := newTestService(newFakeRepo())

	stats, err := svc.GetUserStats(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, &models.UserStatsResponse{}, stats)
}

func TestCancel(t *testing.T) {
	repo := newFakeRepo(seedReservations()...)
	svc := newTestService(repo)

	// upcoming отменяется
	err := svc.Cancel(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.True(t, repo.byID[1].Cancelled)
	require.NotNil(t, repo.byID[1].CancelledAt)
	assert.Equal(t, testToday, *repo.byID[1].CancelledAt)

	// повторная отмена отклоняется
	err = svc.Cancel(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_Guards(t *testing.T) {
	tests := []struct {
		name          string
		reservationID int64
		userID        int64
		wantErr       error
	}{
		{name: "ongoing отменяется", reservationID: 2, userID: 1, wantErr: nil},
		{name: "completed не отменяется", reservationID: 3, userID: 1, wantErr: ErrCannotCancel},
		{name: "уже отмененное не отменяется", reservationID: 4, userID: 1, wantErr: ErrCannotCancel},
		{name: "чужое бронирование", reservationID: 1, userID: 2, wantErr: ErrAccessDenied},
		{name: "несуществующее бронирование", reservationID: 999, userID: 1, wantErr: ErrReservationNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(newFakeRepo(seedReservations()...))

			err := svc.Cancel(context.Background(), tt.reservationID, tt.userID)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCancel_ConcurrentLoserGetsError(t *testing.T) {
	// Снапшот прошел проверки, но запись уже отменена конкурентным запросом:
	// репозиторий возвращает ErrAlreadyCancelled
	repo := newFakeRepo(seedReservations()...)
	repo.cancelErr = reservationRepo.ErrAlreadyCancelled
	svc := newTestService(repo)

	assert.ErrorIs(t, svc.Cancel(context.Background(), 1, 1), ErrCannotCancel)
}
