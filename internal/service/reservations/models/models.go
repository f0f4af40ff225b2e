package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

var (
	// ErrInvalidFilter возвращается при неизвестном значении фильтра статусов
	ErrInvalidFilter = errors.New("invalid status filter")
)

// StatusFilter фильтр истории бронирований по производному статусу
type StatusFilter string

const (
	FilterAll       StatusFilter = "all"
	FilterActive    StatusFilter = "active" // upcoming + ongoing
	FilterCompleted StatusFilter = "completed"
	FilterCancelled StatusFilter = "cancelled"
)

// ParseStatusFilter парсит фильтр из строки
// Пустая строка трактуется как "all"
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch StatusFilter(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterActive:
		return FilterActive, nil
	case FilterCompleted:
		return FilterCompleted, nil
	case FilterCancelled:
		return FilterCancelled, nil
	default:
		return "", ErrInvalidFilter
	}
}

// Matches проверяет, попадает ли статус в фильтр
func (f StatusFilter) Matches(status domain.ReservationStatus) bool {
	switch f {
	case FilterAll:
		return true
	case FilterActive:
		return status == domain.StatusUpcoming || status == domain.StatusOngoing
	case FilterCompleted:
		return status == domain.StatusCompleted
	case FilterCancelled:
		return status == domain.StatusCancelled
	default:
		return false
	}
}

// Request модели

// GetUserReservationsRequest запрос истории бронирований пользователя
type GetUserReservationsRequest struct {
	UserID     int64
	Filter     string // all/active/completed/cancelled; пусто = all
	SearchTerm string // подстрока госномера или имени слота, без учета регистра
}

// Response модели

// ReservationResponse ответ с данными бронирования и производным статусом
type ReservationResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"userId"`
	SlotID        int64   `json:"slotId"`
	SlotName      string  `json:"slotName"`
	VehicleNumber string  `json:"vehicleNumber"`
	VehicleType   string  `json:"vehicleType"`
	StartDate     string  `json:"startDate"` // "2025-03-01"
	EndDate       string  `json:"endDate"`
	Days          int     `json:"days"`
	Amount        int64   `json:"amount"`
	Status        string  `json:"status"` // производный, не хранится
	Cancelled     bool    `json:"cancelled"`
	CancelledAt   *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// UserStatsResponse агрегированная статистика по бронированиям пользователя
// Все значения пересчитываются из живого набора на каждый запрос
type UserStatsResponse struct {
	Total      int   `json:"total"`
	Active     int   `json:"active"` // upcoming + ongoing
	Completed  int   `json:"completed"`
	Cancelled  int   `json:"cancelled"`
	TotalSpent int64 `json:"totalSpent"` // сумма amount по НЕотмененным
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
// Статус вычисляется на переданный today
func FromDomainReservation(r *domain.Reservation, today time.Time) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:            r.ID,
		UserID:        r.UserID,
		SlotID:        r.SlotID,
		SlotName:      r.SlotName,
		VehicleNumber: r.VehicleNumber,
		VehicleType:   string(r.VehicleType),
		StartDate:     r.StartDate.Format(domain.DateFormat),
		EndDate:       r.EndDate.Format(domain.DateFormat),
		Days:          r.Days(),
		Amount:        r.Amount,
		Status:        string(r.Status(today)),
		Cancelled:     r.Cancelled,
		CreatedAt:     r.CreatedAt,
	}

	if r.CancelledAt != nil {
		resp.CancelledAt = ptr.Ptr(r.CancelledAt.Format(time.RFC3339))
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation, today time.Time) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		if dto := FromDomainReservation(r, today); dto != nil {
			resp.Reservations = append(resp.Reservations, *dto)
		}
	}

	return resp
}
