package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ParkingService/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями: отмена, история, статистика
type Service struct {
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только свои бронирования
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if reservation.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainReservation(reservation, s.timeProvider.Now()), nil
}

// GetUserReservations получает историю бронирований пользователя
// Фильтрует по производному статусу (all/active/completed/cancelled) и по
// подстроке госномера или имени слота (без учета регистра)
// Сортировка приходит из репозитория: по времени создания, сначала новые
func (s *Service) GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: user=%d, filter=%q, search=%q", req.UserID, req.Filter, req.SearchTerm)

	filter, err := models.ParseStatusFilter(req.Filter)
	if err != nil {
		s.logger.Warn("GetUserReservations: invalid filter=%q for user=%d", req.Filter, req.UserID)
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilter, req.Filter)
	}

	all, err := s.reservationRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	today := s.timeProvider.Now()
	search := strings.ToLower(strings.TrimSpace(req.SearchTerm))

	filtered := make([]*domain.Reservation, 0, len(all))
	for _, r := range all {
		if !filter.Matches(r.Status(today)) {
			continue
		}
		if search != "" && !matchesSearch(r, search) {
			continue
		}
		filtered = append(filtered, r)
	}

	s.logger.Info("GetUserReservations: %d of %d reservations match for user=%d",
		len(filtered), len(all), req.UserID)
	return models.FromDomainReservationList(filtered, today), nil
}

// GetUserStats считает статистику по всем бронированиям пользователя
// Значения не кешируются: отмена и ход календаря меняют классификацию записей
// между запросами без единой записи в БД
func (s *Service) GetUserStats(ctx context.Context, userID int64) (*models.UserStatsResponse, error) {
	s.logger.Info("GetUserStats: user=%d", userID)

	all, err := s.reservationRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserStats: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserStats - repository error: %v", ErrInternal, err)
	}

	today := s.timeProvider.Now()
	stats := &models.UserStatsResponse{Total: len(all)}

	for _, r := range all {
		switch r.Status(today) {
		case domain.StatusUpcoming, domain.StatusOngoing:
			stats.Active++
		case domain.StatusCompleted:
			stats.Completed++
		case domain.StatusCancelled:
			stats.Cancelled++
		}

		// Отмененные бронирования не участвуют в сумме расходов
		if !r.Cancelled {
			stats.TotalSpent += r.Amount
		}
	}

	return stats, nil
}

// Cancel отменяет бронирование
// Отмена монотонна: разрешена только для upcoming/ongoing; повторная отмена
// и отмена завершенного бронирования возвращают ErrCannotCancel
func (s *Service) Cancel(ctx context.Context, reservationID int64, userID int64) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", reservationID, userID)

	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if reservation.UserID != userID {
		s.logger.Warn("Cancel: access denied for user=%d to reservation id=%d", userID, reservationID)
		return ErrAccessDenied
	}

	now := s.timeProvider.Now()
	if !reservation.CanBeCancelled(now) {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s",
			reservationID, reservation.Status(now))
		return ErrCannotCancel
	}

	// Репозиторий обновляет строку только при cancelled = FALSE:
	// проигравший конкурентной отмены детерминированно получает ошибку
	if err := s.reservationRepo.Cancel(ctx, reservationID, now); err != nil {
		if errors.Is(err, reservationRepo.ErrAlreadyCancelled) {
			s.logger.Warn("Cancel: reservation id=%d already cancelled concurrently", reservationID)
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", reservationID)
	return nil
}

// matchesSearch проверяет вхождение подстроки в госномер или имя слота
func matchesSearch(r *domain.Reservation, search string) bool {
	return strings.Contains(strings.ToLower(r.VehicleNumber), search) ||
		strings.Contains(strings.ToLower(r.SlotName), search)
}
