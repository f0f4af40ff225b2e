package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	StartDate time.Time // Начало окна бронирования (включительно)
	EndDate   time.Time // Конец окна бронирования (исключительно)
}

// Response модель ответа со списком свободных слотов
type Response struct {
	StartDate time.Time     // Запрошенное начало окна
	EndDate   time.Time     // Запрошенный конец окна
	Slots     []domain.Slot // Свободные слоты в порядке каталога (ID по возрастанию)
}
