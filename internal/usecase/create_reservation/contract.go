package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/authservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	// GetActiveBySlotInPeriod возвращает неотмененные бронирования слота,
	// пересекающиеся с [start, end); внутри транзакции блокирует строки (FOR UPDATE)
	GetActiveBySlotInPeriod(ctx context.Context, slotID int64, start, end time.Time) ([]*domain.Reservation, error)
}

// SlotRepository интерфейс репозитория каталога слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
}

// AuthServiceClient интерфейс клиента для AuthService
type AuthServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*authservice.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
