package domain

import "time"

// VehicleType тип транспортного средства
type VehicleType string

const (
	VehicleTypeBike VehicleType = "bike"
	VehicleTypeCar  VehicleType = "car"
	VehicleTypeSUV  VehicleType = "suv"
)

// IsValid проверяет, что тип транспорта входит в фиксированный перечень
func (t VehicleType) IsValid() bool {
	return t == VehicleTypeBike || t == VehicleTypeCar || t == VehicleTypeSUV
}

// Rate возвращает тариф за сутки для типа транспорта
// Для неизвестного типа возвращает 0 (валидация типа должна быть выполнена раньше)
func (t VehicleType) Rate() int64 {
	switch t {
	case VehicleTypeBike:
		return RateBike
	case VehicleTypeCar:
		return RateCar
	case VehicleTypeSUV:
		return RateSUV
	default:
		return 0
	}
}

// ReservationStatus производный статус бронирования
// Статус НЕ хранится в БД: он каждый раз вычисляется из дат и флага отмены,
// чтобы хранимое состояние не расходилось с календарной реальностью
type ReservationStatus string

const (
	StatusUpcoming  ReservationStatus = "upcoming"
	StatusOngoing   ReservationStatus = "ongoing"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation represents a parking slot reservation
type Reservation struct {
	ID     int64
	UserID int64
	SlotID int64

	// Denormalized data for history
	SlotName string

	VehicleNumber string
	VehicleType   VehicleType

	StartDate time.Time // включительно, день
	EndDate   time.Time // исключительно по пересечениям, но включительно по статусу (ongoing до конца end date)

	Amount int64 // days * rate, в минимальных единицах валюты

	Cancelled   bool
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Days возвращает длительность бронирования в сутках (минимум 1)
func (r *Reservation) Days() int {
	return DaysBetween(r.StartDate, r.EndDate)
}

// Status вычисляет статус бронирования на указанный день
// Чистая функция от (StartDate, EndDate, Cancelled) и today
func (r *Reservation) Status(today time.Time) ReservationStatus {
	if r.Cancelled {
		return StatusCancelled
	}

	today = NormalizeDate(today)
	start := NormalizeDate(r.StartDate)
	end := NormalizeDate(r.EndDate)

	switch {
	case end.Before(today):
		return StatusCompleted
	case !start.After(today) && !end.Before(today):
		return StatusOngoing
	default:
		return StatusUpcoming
	}
}

// IsActive сообщает, является ли бронирование активным (upcoming или ongoing)
func (r *Reservation) IsActive(today time.Time) bool {
	status := r.Status(today)
	return status == StatusUpcoming || status == StatusOngoing
}

// CanBeCancelled сообщает, можно ли отменить бронирование
// Отмена разрешена только для upcoming и ongoing; отмена завершенного или
// уже отмененного бронирования считается ошибкой состояния
func (r *Reservation) CanBeCancelled(today time.Time) bool {
	return r.IsActive(today)
}

// OverlapsWith проверяет пересечение бронирования с окном [start, end)
func (r *Reservation) OverlapsWith(start, end time.Time) bool {
	return Overlaps(r.StartDate, r.EndDate, start, end)
}
