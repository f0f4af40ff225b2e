package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ParkingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPeriod = "дата окончания должна быть позже даты начала"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/available?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	startDate, err := time.Parse(domain.DateFormat, query.Get("startDate"))
	if err != nil {
		h.logger.Warn("GET /slots/available - Invalid startDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, query.Get("endDate"))
	if err != nil {
		h.logger.Warn("GET /slots/available - Invalid endDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidPeriod):
			h.logger.Warn("GET /slots/available - Invalid period: %s to %s",
				query.Get("startDate"), query.Get("endDate"))
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots/available - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /slots/available - Failed to get available slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots/available - %d slots available for %s to %s",
		len(result.Slots), query.Get("startDate"), query.Get("endDate"))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
