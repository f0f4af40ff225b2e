package create_reservation

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Порядок проверок фиксирован: первая ошибка прерывает валидацию
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}

	vehicleNumber := strings.TrimSpace(req.VehicleNumber)
	if vehicleNumber == "" {
		return fmt.Errorf("%w: vehicle number is required", ErrInvalidVehicleNumber)
	}
	if len(vehicleNumber) < domain.MinVehicleNumberLength {
		return fmt.Errorf("%w: vehicle number must be at least %d characters",
			ErrInvalidVehicleNumber, domain.MinVehicleNumberLength)
	}
	if len(vehicleNumber) > domain.MaxVehicleNumberLength {
		return fmt.Errorf("%w: vehicle number must be at most %d characters",
			ErrInvalidVehicleNumber, domain.MaxVehicleNumberLength)
	}

	if !req.VehicleType.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidVehicleType, req.VehicleType)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	if !req.EndDate.After(req.StartDate) {
		return ErrInvalidPeriod
	}

	return nil
}
