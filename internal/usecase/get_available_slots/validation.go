package get_available_slots

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	// Перевернутые окна отклоняем до запроса в хранилище
	if !req.EndDate.After(req.StartDate) {
		return ErrInvalidPeriod
	}

	return nil
}
