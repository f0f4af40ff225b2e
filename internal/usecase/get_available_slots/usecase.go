package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// UseCase use case для получения слотов, свободных в заданном окне дат
type UseCase struct {
	slotRepo        SlotRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:        slotRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных слотов
// Слот свободен, если ни одно НЕотмененное бронирование этого слота
// не пересекается с окном [startDate, endDate)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: period=%s to %s",
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	start := domain.NormalizeDate(req.StartDate)
	end := domain.NormalizeDate(req.EndDate)

	// 2. Читаем каталог слотов (порядок каталога: ID по возрастанию)
	slots, err := uc.slotRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	// 3. Читаем активные бронирования, пересекающиеся с окном
	reservations, err := uc.reservationRepo.GetActiveInPeriod(ctx, start, end)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 4. Отфильтровываем занятые слоты
	// O(slots × reservations) достаточно при десятках слотов и тысячах бронирований
	available := filterAvailable(slots, reservations, start, end)

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for %s to %s",
		len(available), len(slots), start.Format(domain.DateFormat), end.Format(domain.DateFormat))

	return &Response{
		StartDate: start,
		EndDate:   end,
		Slots:     available,
	}, nil
}

// filterAvailable возвращает слоты без конфликтующих бронирований в окне [start, end)
func filterAvailable(slots []domain.Slot, reservations []*domain.Reservation, start, end time.Time) []domain.Slot {
	// Репозиторий уже отдал только пересекающиеся с окном неотмененные бронирования,
	// поэтому достаточно собрать занятые слоты в множество
	occupied := make(map[int64]struct{}, len(reservations))
	for _, r := range reservations {
		if r.OverlapsWith(start, end) {
			occupied[r.SlotID] = struct{}{}
		}
	}

	available := make([]domain.Slot, 0, len(slots))
	for _, s := range slots {
		if _, busy := occupied[s.ID]; !busy {
			available = append(available, s)
		}
	}

	return available
}
