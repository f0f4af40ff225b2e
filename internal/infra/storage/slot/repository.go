package slot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

// Repository репозиторий каталога парковочных слотов
// Каталог read-mostly: слоты создаются один раз при первом запуске
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает весь каталог слотов, отсортированный по ID
func (r *Repository) List(ctx context.Context) ([]domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "zone", "floor").
		From("slots").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.Slot, 0, domain.TotalSlots)
	for rows.Next() {
		var s domain.Slot
		if err := rows.Scan(&s.ID, &s.Name, &s.Zone, &s.Floor); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "zone", "floor").
		From("slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Slot
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Name, &s.Zone, &s.Floor)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return &s, nil
}

// Seed наполняет каталог слотов при первом запуске
// Идемпотентен: уже существующие слоты не перезаписываются
func (r *Repository) Seed(ctx context.Context, slots []domain.Slot) error {
	if len(slots) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("slots").
		Columns("id", "name", "zone", "floor")

	for _, s := range slots {
		insertBuilder = insertBuilder.Values(s.ID, s.Name, s.Zone, s.Floor)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Seed - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Seed - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
