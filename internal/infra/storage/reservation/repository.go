package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

var reservationColumns = []string{
	"id",
	"user_id",
	"slot_id",
	"slot_name",
	"vehicle_number",
	"vehicle_type",
	"start_date",
	"end_date",
	"amount",
	"cancelled",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
// Бронирования никогда не удаляются физически: отмена выставляет флаг cancelled
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её,
// это обязательный режим для создания с проверкой доступности слота
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"user_id",
			"slot_id",
			"slot_name",
			"vehicle_number",
			"vehicle_type",
			"start_date",
			"end_date",
			"amount",
		).
		Values(
			res.UserID,
			res.SlotID,
			res.SlotName,
			res.VehicleNumber,
			res.VehicleType,
			res.StartDate,
			res.EndDate,
			res.Amount,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetByUserID получает все бронирования пользователя
// Сортировка: по времени создания, сначала новые
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetActiveInPeriod получает все НЕотмененные бронирования, пересекающиеся
// с полуоткрытым окном [start, end)
// Используется запросом доступности для фильтрации каталога слотов
func (r *Repository) GetActiveInPeriod(ctx context.Context, start, end time.Time) ([]*domain.Reservation, error) {
	return r.getActiveInPeriod(ctx, nil, start, end)
}

// GetActiveBySlotInPeriod получает НЕотмененные бронирования конкретного слота,
// пересекающиеся с окном [start, end)
// Внутри транзакции добавляет FOR UPDATE: это блокировка для сценария
// check-then-act при создании бронирования
func (r *Repository) GetActiveBySlotInPeriod(ctx context.Context, slotID int64, start, end time.Time) ([]*domain.Reservation, error) {
	return r.getActiveInPeriod(ctx, &slotID, start, end)
}

func (r *Repository) getActiveInPeriod(ctx context.Context, slotID *int64, start, end time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"cancelled": false}).
		// Полуоткрытые интервалы: соседние бронирования не конфликтуют
		Where(squirrel.Lt{"start_date": end}).
		Where(squirrel.Gt{"end_date": start}).
		OrderBy("slot_id ASC, start_date ASC")

	if slotID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"slot_id": *slotID})
	}

	// Блокируем строки только при выборке по конкретному слоту внутри транзакции
	// (usecase создания бронирования)
	if slotID != nil && dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getActiveInPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getActiveInPeriod - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// Cancel помечает бронирование отмененным
// Условие cancelled = FALSE делает отмену монотонной: конкурентная повторная
// отмена не затронет ни одной строки и вернет ErrAlreadyCancelled
func (r *Repository) Cancel(ctx context.Context, id int64, cancelledAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("cancelled", true).
		Set("cancelled_at", cancelledAt).
		Set("updated_at", cancelledAt).
		Where(squirrel.Eq{"id": id, "cancelled": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Либо бронирование не существует, либо уже отменено;
		// существование сервис проверяет до вызова Cancel
		return ErrAlreadyCancelled
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		res                  domain.Reservation
		cancelledAt          sql.NullTime
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&res.ID,
		&res.UserID,
		&res.SlotID,
		&res.SlotName,
		&res.VehicleNumber,
		&res.VehicleType,
		&res.StartDate,
		&res.EndDate,
		&res.Amount,
		&res.Cancelled,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if cancelledAt.Valid {
		res.CancelledAt = &cancelledAt.Time
	}
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := r.scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
