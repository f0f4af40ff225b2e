package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	createReservation "github.com/m04kA/SMC-ParkingService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	SlotID        int64  `json:"slotId"`
	VehicleNumber string `json:"vehicleNumber"`
	VehicleType   string `json:"vehicleType"` // bike/car/suv
	StartDate     string `json:"startDate"`   // "2025-03-01"
	EndDate       string `json:"endDate"`     // "2025-03-05"
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"userId"`
	SlotID        int64  `json:"slotId"`
	SlotName      string `json:"slotName"`
	VehicleNumber string `json:"vehicleNumber"`
	VehicleType   string `json:"vehicleType"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	Days          int    `json:"days"`
	Amount        int64  `json:"amount"`
	CreatedAt     string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// userID приходит из контекста аутентификации, не из тела запроса
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		UserID:        userID,
		SlotID:        r.SlotID,
		VehicleNumber: r.VehicleNumber,
		VehicleType:   domain.VehicleType(r.VehicleType),
		StartDate:     startDate,
		EndDate:       endDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:            resp.ID,
		UserID:        resp.UserID,
		SlotID:        resp.SlotID,
		SlotName:      resp.SlotName,
		VehicleNumber: resp.VehicleNumber,
		VehicleType:   string(resp.VehicleType),
		StartDate:     resp.StartDate.Format(domain.DateFormat),
		EndDate:       resp.EndDate.Format(domain.DateFormat),
		Days:          resp.Days,
		Amount:        resp.Amount,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
