package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-ParkingService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidVehicleNumber = "госномер должен содержать не менее 4 символов"
	msgInvalidVehicleType   = "некорректный тип транспорта, ожидается bike, car или suv"
	msgInvalidPeriod        = "дата окончания должна быть позже даты начала"
	msgSlotNotFound         = "парковочный слот не найден"
	msgUserNotFound         = "пользователь не найден"
	msgSlotNotAvailable     = "слот уже занят на выбранные даты"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - No authenticated user in context")
		handlers.RespondUnauthorized(w, "требуется авторизация")
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservations - Slot not available: user_id=%d, slot_id=%d", userID, req.SlotID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createReservation.ErrSlotNotFound):
			h.logger.Warn("POST /reservations - Slot not found: slot_id=%d", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createReservation.ErrUserNotFound):
			h.logger.Warn("POST /reservations - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createReservation.ErrInvalidVehicleNumber):
			h.logger.Warn("POST /reservations - Invalid vehicle number: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidVehicleNumber)

		case errors.Is(err, createReservation.ErrInvalidVehicleType):
			h.logger.Warn("POST /reservations - Invalid vehicle type: user_id=%d, type=%s", userID, req.VehicleType)
			handlers.RespondBadRequest(w, msgInvalidVehicleType)

		case errors.Is(err, createReservation.ErrInvalidPeriod):
			h.logger.Warn("POST /reservations - Invalid period: user_id=%d, %s to %s",
				userID, req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%d: %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, slot_id=%d, error=%v",
				userID, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, user_id=%d, slot_id=%d",
		result.ID, userID, req.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
