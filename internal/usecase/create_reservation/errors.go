package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidVehicleNumber возвращается при пустом или слишком коротком госномере
	ErrInvalidVehicleNumber = errors.New("create_reservation: invalid vehicle number")

	// ErrInvalidVehicleType возвращается при неизвестном типе транспорта
	ErrInvalidVehicleType = errors.New("create_reservation: invalid vehicle type")

	// ErrInvalidPeriod возвращается, когда дата окончания не позже даты начала
	ErrInvalidPeriod = errors.New("create_reservation: end date must be after start date")

	// ErrSlotNotFound возвращается, когда слот не найден в каталоге
	ErrSlotNotFound = errors.New("create_reservation: slot not found")

	// ErrUserNotFound возвращается, когда пользователь не существует
	ErrUserNotFound = errors.New("create_reservation: user not found")

	// ErrSlotNotAvailable возвращается, когда слот уже занят в запрошенном окне
	// Это повторная проверка на записи: защита от устаревшего снапшота доступности у клиента
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available for the requested period")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
