package get_available_slots

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ParkingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель парковочного слота
type SlotResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Zone  string `json:"zone"`
	Floor int    `json:"floor"`
}

// AvailableSlotsResponse HTTP модель ответа со свободными слотами
type AvailableSlotsResponse struct {
	StartDate string         `json:"startDate"`
	EndDate   string         `json:"endDate"`
	Slots     []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			ID:    s.ID,
			Name:  s.Name,
			Zone:  s.Zone,
			Floor: s.Floor,
		})
	}

	return &AvailableSlotsResponse{
		StartDate: resp.StartDate.Format(domain.DateFormat),
		EndDate:   resp.EndDate.Format(domain.DateFormat),
		Slots:     slots,
	}
}
