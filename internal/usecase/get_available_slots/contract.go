package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SlotRepository интерфейс репозитория каталога слотов
type SlotRepository interface {
	List(ctx context.Context) ([]domain.Slot, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetActiveInPeriod возвращает неотмененные бронирования, пересекающиеся с [start, end)
	GetActiveInPeriod(ctx context.Context, start, end time.Time) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
