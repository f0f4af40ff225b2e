package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type fakeSlotRepo struct{}

func (fakeSlotRepo) List(_ context.Context) ([]domain.Slot, error) {
	return domain.SeedSlots(), nil
}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
}

func (f *fakeReservationRepo) GetActiveInPeriod(_ context.Context, start, end time.Time) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, r := range f.reservations {
		if r.Cancelled {
			continue
		}
		if r.OverlapsWith(start, end) {
			out = append(out, r)
		}
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func slotIDs(slots []domain.Slot) []int64 {
	ids := make([]int64, 0, len(slots))
	for _, s := range slots {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestExecute_AllSlotsFreeWithoutReservations(t *testing.T) {
	uc := NewUseCase(fakeSlotRepo{}, &fakeReservationRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: date(2026, time.March, 1),
		EndDate:   date(2026, time.March, 3),
	})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, domain.TotalSlots)
	assert.Equal(t, int64(1), resp.Slots[0].ID, "слоты в порядке каталога")
	assert.Equal(t, int64(20), resp.Slots[len(resp.Slots)-1].ID)
}

func TestExecute_OccupiedSlotExcluded(t *testing.T) {
	repo := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			{
				ID:        1,
				SlotID:    1,
				StartDate: date(2026, time.March, 1),
				EndDate:   date(2026, time.March, 5),
			},
		},
	}
	uc := NewUseCase(fakeSlotRepo{}, repo, nopLogger{})

	// Окно внутри занятого периода: слот 1 исключен
	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: date(2026, time.March, 2),
		EndDate:   date(2026, time.March, 3),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, domain.TotalSlots-1)
	assert.NotContains(t, slotIDs(resp.Slots), int64(1))

	// Окно после окончания брони: слот 1 снова доступен
	resp, err = uc.Execute(context.Background(), &Request{
		StartDate: date(2026, time.March, 6),
		EndDate:   date(2026, time.March, 8),
	})
	require.NoError(t, err)
	assert.Contains(t, slotIDs(resp.Slots), int64(1))

	// Окно, начинающееся в день окончания брони, не пересекается
	resp, err = uc.Execute(context.Background(), &Request{
		StartDate: date(2026, time.March, 5),
		EndDate:   date(2026, time.March, 7),
	})
	require.NoError(t, err)
	assert.Contains(t, slotIDs(resp.Slots), int64(1))
}

func TestExecute_CancelledReservationFreesSlot(t *testing.T) {
	repo := &fakeReservationRepo{
		reservations: []*domain.Reservation{
			{
				ID:        1,
				SlotID:    4,
				StartDate: date(2026, time.March, 1),
				EndDate:   date(2026, time.March, 5),
				Cancelled: true,
			},
		},
	}
	uc := NewUseCase(fakeSlotRepo{}, repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		StartDate: date(2026, time.March, 2),
		EndDate:   date(2026, time.March, 4),
	})

	require.NoError(t, err)
	assert.Contains(t, slotIDs(resp.Slots), int64(4))
}

func TestExecute_InvalidPeriod(t *testing.T) {
	uc := NewUseCase(fakeSlotRepo{}, &fakeReservationRepo{}, nopLogger{})

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "нулевая дата начала",
			req:     &Request{EndDate: date(2026, time.March, 3)},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "нулевая дата окончания",
			req:     &Request{StartDate: date(2026, time.March, 1)},
			wantErr: ErrInvalidInput,
		},
		{
			name: "конец равен началу",
			req: &Request{
				StartDate: date(2026, time.March, 1),
				EndDate:   date(2026, time.March, 1),
			},
			wantErr: ErrInvalidPeriod,
		},
		{
			name: "обратный период",
			req: &Request{
				StartDate: date(2026, time.March, 5),
				EndDate:   date(2026, time.March, 1),
			},
			wantErr: ErrInvalidPeriod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
