package boat

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/divetrip/booking-service/internal/domain"
	"github.com/divetrip/booking-service/pkg/dbmetrics"
	"github.com/divetrip/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с лодками и каютами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория лодок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает лодку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Boat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "created_at", "updated_at").
		From("boats").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Boat
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &b.Name, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBoatNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan boat: %v", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// List получает все лодки флота
func (r *Repository) List(ctx context.Context) ([]*domain.Boat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "created_at", "updated_at").
		From("boats").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	boats := make([]*domain.Boat, 0)
	for rows.Next() {
		var b domain.Boat
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&b.ID, &b.Name, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time
		boats = append(boats, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return boats, nil
}

// GetCabin получает каюту по ID
func (r *Repository) GetCabin(ctx context.Context, id int64) (*domain.Cabin, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "boat_id", "name", "deck", "bed_count").
		From("cabins").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCabin - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Cabin
	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.BoatID, &c.Name, &c.Deck, &c.BedCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCabinNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCabin - scan cabin: %v", ErrScanRow, err)
	}

	return &c, nil
}

// ListCabins получает все каюты лодки
func (r *Repository) ListCabins(ctx context.Context, boatID int64) ([]*domain.Cabin, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "boat_id", "name", "deck", "bed_count").
		From("cabins").
		Where(squirrel.Eq{"boat_id": boatID}).
		OrderBy("deck ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCabins - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCabins - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	cabins := make([]*domain.Cabin, 0)
	for rows.Next() {
		var c domain.Cabin
		if err := rows.Scan(&c.ID, &c.BoatID, &c.Name, &c.Deck, &c.BedCount); err != nil {
			return nil, fmt.Errorf("%w: ListCabins - scan row: %v", ErrScanRow, err)
		}
		cabins = append(cabins, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCabins - rows error: %v", ErrScanRow, err)
	}

	return cabins, nil
}
