package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID        int64              // ID пользователя (владелец бронирования)
	SlotID        int64              // ID парковочного слота
	VehicleNumber string             // Госномер транспортного средства
	VehicleType   domain.VehicleType // Тип транспорта (bike/car/suv)
	StartDate     time.Time          // Дата начала (включительно)
	EndDate       time.Time          // Дата окончания
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	UserID        int64
	SlotID        int64
	SlotName      string
	VehicleNumber string
	VehicleType   domain.VehicleType
	StartDate     time.Time
	EndDate       time.Time
	Days          int
	Amount        int64
	CreatedAt     time.Time
}
