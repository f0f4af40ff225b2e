package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAccessDenied возвращается, когда пользователь пытается работать с чужим бронированием
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается при попытке отменить завершенное
	// или уже отмененное бронирование
	ErrCannotCancel = errors.New("reservation cannot be cancelled")

	// ErrInvalidFilter возвращается при неизвестном значении фильтра статусов
	ErrInvalidFilter = errors.New("invalid status filter")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
