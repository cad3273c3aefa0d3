package trip

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

var tripColumns = []string{
	"id",
	"boat_id",
	"name",
	"start_date",
	"end_date",
	"capacity",
	"booked_spots",
	"available_spots",
	"price_per_spot",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с рейсами и их счетчиками мест
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория рейсов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает рейс с начальными счетчиками (booked=0, available=capacity)
func (r *Repository) Create(ctx context.Context, t *domain.Trip) (*domain.Trip, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("trips").
		Columns(
			"boat_id",
			"name",
			"start_date",
			"end_date",
			"capacity",
			"booked_spots",
			"available_spots",
			"price_per_spot",
		).
		Values(
			t.BoatID,
			t.Name,
			t.StartDate,
			t.EndDate,
			t.Capacity,
			0,
			t.Capacity,
			t.PricePerSpot,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	t.BookedSpots = 0
	t.AvailableSpots = t.Capacity
	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return t, nil
}

// GetByID получает рейс по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Trip, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tripColumns...).
		From("trips").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	t, err := scanTripRow(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTripNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan trip: %v", ErrScanRow, err)
	}

	return t, nil
}

// ListByBoat получает все рейсы лодки, отсортированные по дате начала
func (r *Repository) ListByBoat(ctx context.Context, boatID int64) ([]*domain.Trip, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tripColumns...).
		From("trips").
		Where(squirrel.Eq{"boat_id": boatID}).
		OrderBy("start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBoat - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBoat - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	trips := make([]*domain.Trip, 0)
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBoat - scan row: %v", ErrScanRow, err)
		}
		trips = append(trips, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBoat - rows error: %v", ErrScanRow, err)
	}

	return trips, nil
}

// ReserveSpots атомарно резервирует spots мест на рейсе
//
// Выполняется ОДНИМ условным UPDATE: условие available_spots >= spots
// проверяется базой в момент записи, поэтому два конкурентных вызова
// не могут оба пройти, когда места хватает только одному
// Чтение счетчика в память с проверкой "if available >= N" здесь запрещено
func (r *Repository) ReserveSpots(ctx context.Context, tripID int64, spots int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("trips").
		Set("booked_spots", squirrel.Expr("booked_spots + ?", spots)).
		Set("available_spots", squirrel.Expr("available_spots - ?", spots)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": tripID}).
		Where(squirrel.GtOrEq{"available_spots": spots}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReserveSpots - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ReserveSpots - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ReserveSpots - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Либо рейса нет, либо мест не хватило - различаем отдельным чтением
		if _, err := r.GetByID(ctx, tripID); err != nil {
			return err
		}
		return fmt.Errorf("%w: trip=%d requested=%d", ErrNoCapacity, tripID, spots)
	}

	return nil
}

// ReleaseSpots атомарно освобождает spots мест на рейсе (обратная операция
// к ReserveSpots, с guard booked_spots >= spots)
func (r *Repository) ReleaseSpots(ctx context.Context, tripID int64, spots int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("trips").
		Set("booked_spots", squirrel.Expr("booked_spots - ?", spots)).
		Set("available_spots", squirrel.Expr("available_spots + ?", spots)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": tripID}).
		Where(squirrel.GtOrEq{"booked_spots": spots}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReleaseSpots - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ReleaseSpots - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ReleaseSpots - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		if _, err := r.GetByID(ctx, tripID); err != nil {
			return err
		}
		return fmt.Errorf("%w: trip=%d requested=%d", ErrNoBookedSpots, tripID, spots)
	}

	return nil
}

func scanTripRow(row *sql.Row) (*domain.Trip, error) {
	var t domain.Trip
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&t.ID,
		&t.BoatID,
		&t.Name,
		&t.StartDate,
		&t.EndDate,
		&t.Capacity,
		&t.BookedSpots,
		&t.AvailableSpots,
		&t.PricePerSpot,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return &t, nil
}

func scanTrip(rows *sql.Rows) (*domain.Trip, error) {
	var t domain.Trip
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&t.ID,
		&t.BoatID,
		&t.Name,
		&t.StartDate,
		&t.EndDate,
		&t.Capacity,
		&t.BookedSpots,
		&t.AvailableSpots,
		&t.PricePerSpot,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return &t, nil
}
