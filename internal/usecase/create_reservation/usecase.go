package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	slotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
	authClient "github.com/m04kA/SMC-ParkingService/internal/integrations/authservice"
)

// UseCase use case для создания бронирования парковочного слота
type UseCase struct {
	reservationRepo ReservationRepository
	slotRepo        SlotRepository
	authClient      AuthServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	slotRepo SlotRepository,
	authClient AuthServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		slotRepo:        slotRepo,
		authClient:      authClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Повторная проверка доступности и вставка выполняются в сериализуемой транзакции:
// из двух конкурентных бронирований одного слота на пересекающиеся даты
// ровно одно получит ErrSlotNotAvailable
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, slot=%d, vehicle=%s, type=%s, period=%s to %s",
		req.UserID, req.SlotID, req.VehicleNumber, req.VehicleType,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	start := domain.NormalizeDate(req.StartDate)
	end := domain.NormalizeDate(req.EndDate)

	// 2. Проверяем существование пользователя
	if _, err := uc.authClient.GetUser(ctx, req.UserID); err != nil {
		if errors.Is(err, authClient.ErrUserNotFound) {
			uc.logger.Warn("CreateReservation: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateReservation: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 3. Считаем стоимость: days = ceil((end - start) / сутки), минимум 1
	days := domain.DaysBetween(start, end)
	amount := int64(days) * req.VehicleType.Rate()

	// Переменная для хранения результата
	var result *domain.Reservation

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Проверяем существование слота
		slot, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateReservation: slot id=%d not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("CreateReservation: failed to get slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// 4.2. Повторно проверяем доступность слота с блокировкой (FOR UPDATE)
		// Снапшот доступности у клиента мог устареть между показом и бронированием
		conflicts, err := uc.reservationRepo.GetActiveBySlotInPeriod(txCtx, req.SlotID, start, end)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get conflicting reservations: %v", err)
			return fmt.Errorf("%w: failed to get conflicting reservations: %v", ErrInternal, err)
		}

		if hasOverlap(conflicts, start, end) {
			uc.logger.Warn("CreateReservation: slot id=%d not available for %s to %s",
				req.SlotID, start.Format(domain.DateFormat), end.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 4.3. Создаем бронирование с денормализацией имени слота
		reservation := &domain.Reservation{
			UserID:        req.UserID,
			SlotID:        slot.ID,
			SlotName:      slot.Name,
			VehicleNumber: strings.ToUpper(strings.TrimSpace(req.VehicleNumber)),
			VehicleType:   req.VehicleType,
			StartDate:     start,
			EndDate:       end,
			Amount:        amount,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d (%d days, amount=%d)",
		result.ID, days, amount)

	return &Response{
		ID:            result.ID,
		UserID:        result.UserID,
		SlotID:        result.SlotID,
		SlotName:      result.SlotName,
		VehicleNumber: result.VehicleNumber,
		VehicleType:   result.VehicleType,
		StartDate:     result.StartDate,
		EndDate:       result.EndDate,
		Days:          result.Days(),
		Amount:        result.Amount,
		CreatedAt:     result.CreatedAt,
	}, nil
}

// hasOverlap проверяет, пересекается ли хотя бы одно бронирование с окном [start, end)
func hasOverlap(reservations []*domain.Reservation, start, end time.Time) bool {
	for _, r := range reservations {
		if r.Cancelled {
			continue
		}
		if r.OverlapsWith(start, end) {
			return true
		}
	}
	return false
}
