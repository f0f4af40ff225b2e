package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	slotstorage "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/authservice"
)

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	nextID       int64
	createErr    error
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	created := *res
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.reservations = append(f.reservations, &created)
	return &created, nil
}

func (f *fakeReservationRepo) GetActiveBySlotInPeriod(_ context.Context, slotID int64, start, end time.Time) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, r := range f.reservations {
		if r.SlotID != slotID || r.Cancelled {
			continue
		}
		if r.OverlapsWith(start, end) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeSlotRepo struct {
	slots map[int64]domain.Slot
}

func newFakeSlotRepo() *fakeSlotRepo {
	f := &fakeSlotRepo{slots: make(map[int64]domain.Slot)}
	for _, s := range domain.SeedSlots() {
		f.slots[s.ID] = s
	}
	return f
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.Slot, error) {
	s, ok := f.slots[id]
	if !ok {
		return nil, slotstorage.ErrSlotNotFound
	}
	return &s, nil
}

type fakeAuthClient struct {
	users map[int64]*authservice.User
}

func (f *fakeAuthClient) GetUser(_ context.Context, userID int64) (*authservice.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, authservice.ErrUserNotFound
	}
	return u, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(repo *fakeReservationRepo) *UseCase {
	auth := &fakeAuthClient{users: map[int64]*authservice.User{
		1: {ID: 1, Name: "Иван", Email: "ivan@example.com"},
	}}
	return NewUseCase(repo, newFakeSlotRepo(), auth, fakeTxManager{}, nopLogger{})
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:        1,
		SlotID:        3,
		VehicleNumber: " ab1234 ",
		VehicleType:   domain.VehicleTypeCar,
		StartDate:     date(2026, time.March, 1),
		EndDate:       date(2026, time.March, 4),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Slot 3", resp.SlotName)
	assert.Equal(t, "AB1234", resp.VehicleNumber, "госномер нормализуется к верхнему регистру без пробелов")
	assert.Equal(t, 3, resp.Days)
	assert.Equal(t, int64(300), resp.Amount, "3 дня по тарифу car (100)")
}

func TestExecute_PricingPerVehicleType(t *testing.T) {
	tests := []struct {
		name        string
		vehicleType domain.VehicleType
		start, end  time.Time
		wantDays    int
		wantAmount  int64
	}{
		{
			name:        "bike на один день",
			vehicleType: domain.VehicleTypeBike,
			start:       date(2026, time.March, 1),
			end:         date(2026, time.March, 2),
			wantDays:    1,
			wantAmount:  50,
		},
		{
			name:        "car на три дня",
			vehicleType: domain.VehicleTypeCar,
			start:       date(2026, time.March, 1),
			end:         date(2026, time.March, 4),
			wantDays:    3,
			wantAmount:  300,
		},
		{
			name:        "suv на неделю",
			vehicleType: domain.VehicleTypeSUV,
			start:       date(2026, time.March, 1),
			end:         date(2026, time.March, 8),
			wantDays:    7,
			wantAmount:  1050,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeReservationRepo{})

			resp, err := uc.Execute(context.Background(), &Request{
				UserID:        1,
				SlotID:        1,
				VehicleNumber: "XY9876",
				VehicleType:   tt.vehicleType,
				StartDate:     tt.start,
				EndDate:       tt.end,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.wantDays, resp.Days)
			assert.Equal(t, tt.wantAmount, resp.Amount)
		})
	}
}

func TestExecute_SlotConflict(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo)

	first := &Request{
		UserID:        1,
		SlotID:        5,
		VehicleNumber: "AA1111",
		VehicleType:   domain.VehicleTypeCar,
		StartDate:     date(2026, time.March, 1),
		EndDate:       date(2026, time.March, 5),
	}
	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)

	// Пересекающееся окно на тот же слот отклоняется
	second := &Request{
		UserID:        1,
		SlotID:        5,
		VehicleNumber: "BB2222",
		VehicleType:   domain.VehicleTypeBike,
		StartDate:     date(2026, time.March, 4),
		EndDate:       date(2026, time.March, 6),
	}
	_, err = uc.Execute(context.Background(), second)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// Стык end == start не считается пересечением
	adjacent := &Request{
		UserID:        1,
		SlotID:        5,
		VehicleNumber: "CC3333",
		VehicleType:   domain.VehicleTypeBike,
		StartDate:     date(2026, time.March, 5),
		EndDate:       date(2026, time.March, 7),
	}
	_, err = uc.Execute(context.Background(), adjacent)
	assert.NoError(t, err)

	// Тот же период на другой слот проходит
	otherSlot := &Request{
		UserID:        1,
		SlotID:        6,
		VehicleNumber: "DD4444",
		VehicleType:   domain.VehicleTypeCar,
		StartDate:     date(2026, time.March, 1),
		EndDate:       date(2026, time.March, 5),
	}
	_, err = uc.Execute(context.Background(), otherSlot)
	assert.NoError(t, err)
}

func TestExecute_CancelledReservationDoesNotBlock(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        1,
		SlotID:        7,
		VehicleNumber: "AA1111",
		VehicleType:   domain.VehicleTypeCar,
		StartDate:     date(2026, time.March, 1),
		EndDate:       date(2026, time.March, 5),
	})
	require.NoError(t, err)

	repo.reservations[0].Cancelled = true

	_, err = uc.Execute(context.Background(), &Request{
		UserID:        1,
		SlotID:        7,
		VehicleNumber: "BB2222",
		VehicleType:   domain.VehicleTypeCar,
		StartDate:     date(2026, time.March, 2),
		EndDate:       date(2026, time.March, 4),
	})
	assert.NoError(t, err, "отмененное бронирование освобождает слот")
}

func TestExecute_Validation(t *testing.T) {
	base := Request{
		UserID:        1,
		SlotID:        1,
		VehicleNumber: "AB1234",
		VehicleType:   domain.VehicleTypeCar,
		StartDate:     date(2026, time.March, 1),
		EndDate:       date(2026, time.March, 3),
	}

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{
			name:    "нулевой userID",
			mutate:  func(r *Request) { r.UserID = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "нулевой slotID",
			mutate:  func(r *Request) { r.SlotID = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "пустой госномер",
			mutate:  func(r *Request) { r.VehicleNumber = "   " },
			wantErr: ErrInvalidVehicleNumber,
		},
		{
			name:    "короткий госномер",
			mutate:  func(r *Request) { r.VehicleNumber = "AB1" },
			wantErr: ErrInvalidVehicleNumber,
		},
		{
			name:    "неизвестный тип транспорта",
			mutate:  func(r *Request) { r.VehicleType = "truck" },
			wantErr: ErrInvalidVehicleType,
		},
		{
			name:    "конец не позже начала",
			mutate:  func(r *Request) { r.EndDate = r.StartDate },
			wantErr: ErrInvalidPeriod,
		},
		{
			name: "обратный период",
			mutate: func(r *Request) {
				r.StartDate = date(2026, time.March, 5)
				r.EndDate = date(2026, time.March, 1)
			},
			wantErr: ErrInvalidPeriod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeReservationRepo{})
			req := base
			tt.mutate(&req)

			_, err := uc.Execute(context.Background(), &req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_UnknownUserAndSlot(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        999,
		SlotID:        1,
		VehicleNumber: "AB1234",
		VehicleType:   domain.VehicleTypeCar,
		StartDate:     date(2026, time.March, 1),
		EndDate:       date(2026, time.March, 3),
	})
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = uc.Execute(context.Background(), &Request{
		UserID:        1,
		SlotID:        21,
		VehicleNumber: "AB1234",
		VehicleType:   domain.VehicleTypeCar,
		StartDate:     date(2026, time.March, 1),
		EndDate:       date(2026, time.March, 3),
	})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_RepoFailureWrappedAsInternal(t *testing.T) {
	repo := &fakeReservationRepo{createErr: errors.New("connection reset")}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        1,
		SlotID:        1,
		VehicleNumber: "AB1234",
		VehicleType:   domain.VehicleTypeCar,
		StartDate:     date(2026, time.March, 1),
		EndDate:       date(2026, time.March, 3),
	})
	assert.ErrorIs(t, err, ErrInternal)
}
