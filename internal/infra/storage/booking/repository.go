package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/divetrip/booking-service/internal/domain"
	"github.com/divetrip/booking-service/pkg/dbmetrics"
	"github.com/divetrip/booking-service/pkg/psqlbuilder"
)

// pgUniqueViolation код нарушения уникальности PostgreSQL
const pgUniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"trip_id",
	"cabin_id",
	"bed_number",
	"status",
	"gender",
	"group_name",
	"price",
	"original_price",
	"single_use",
	"cancel_date",
	"owner_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями мест
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// InsertMany создает пакет бронирований (по одному ряду на место)
// Вызывается только внутри транзакции: при ошибке любой вставки вся пачка
// откатывается вместе с резервацией счетчиков рейса
func (r *Repository) InsertMany(ctx context.Context, bookings []*domain.Booking) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for _, b := range bookings {
		query, args, err := psqlbuilder.Insert("bookings").
			Columns(
				"trip_id",
				"cabin_id",
				"bed_number",
				"status",
				"gender",
				"group_name",
				"price",
				"original_price",
				"single_use",
				"cancel_date",
				"owner_id",
			).
			Values(
				b.TripID,
				b.CabinID,
				b.BedNumber,
				b.Status,
				b.Gender,
				b.GroupName,
				b.Price,
				b.OriginalPrice,
				b.SingleUse,
				b.CancelDate,
				b.OwnerID,
			).
			Suffix("RETURNING id, created_at, updated_at").
			ToSql()

		if err != nil {
			return nil, fmt.Errorf("%w: InsertMany - build insert query: %v", ErrBuildQuery, err)
		}

		var createdAt, updatedAt sql.NullTime
		err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt, &updatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, fmt.Errorf("%w: trip=%d cabin=%v bed=%d", ErrBedTaken, b.TripID, b.CabinID, b.BedNumber)
			}
			return nil, fmt.Errorf("%w: InsertMany - execute insert: %w", ErrExecQuery, err)
		}

		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time
	}

	return bookings, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции блокирует ряд (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// ListActiveByTrip получает все активные (не отмененные) бронирования рейса
// Просроченные опционы НЕ исключаются на этом уровне: они все еще удерживают
// место в счетчиках, фильтрация по cancel_date выполняется вызывающим слоем
// Внутри транзакции блокирует ряды (FOR UPDATE)
func (r *Repository) ListActiveByTrip(ctx context.Context, tripID int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"trip_id": tripID}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("cabin_id ASC NULLS LAST, bed_number ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByTrip - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByTrip - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListByOwner получает бронирования пользователя, опционально по статусу
func (r *Repository) ListByOwner(ctx context.Context, ownerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// MaxWaitlistBed возвращает максимальный уже использованный синтетический
// номер места ожидания для рейса (включая отмененные ряды), либо 0
// Номера выдаются монотонно, поэтому учитываются и отмененные записи
func (r *Repository) MaxWaitlistBed(ctx context.Context, tripID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(MAX(bed_number), 0)").
		From("bookings").
		Where(squirrel.Eq{"trip_id": tripID}).
		Where(squirrel.GtOrEq{"bed_number": domain.WaitlistBedBandStart}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: MaxWaitlistBed - build select query: %v", ErrBuildQuery, err)
	}

	var maxBed int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&maxBed); err != nil {
		return 0, fmt.Errorf("%w: MaxWaitlistBed - scan: %v", ErrScanRow, err)
	}

	return maxBed, nil
}

// UpdateStatusFrom переводит бронирование из ожидаемого статуса в новый
// и возвращает обновленный ряд
// Guard по текущему статусу защищает от конкурентного изменения ряда:
// если ряд уже в другом статусе, возвращается ErrStatusChanged
func (r *Repository) UpdateStatusFrom(
	ctx context.Context,
	id int64,
	from, to domain.BookingStatus,
	clearCancelDate bool,
) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from})

	if clearCancelDate {
		updateBuilder = updateBuilder.Set("cancel_date", nil)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING " + strings.Join(bookingColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatusFrom - build update query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, r.classifyMissedUpdate(ctx, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatusFrom - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// PromoteWaitlist переводит запись листа ожидания в подтвержденное бронирование
// с назначением реальной каюты и места
func (r *Repository) PromoteWaitlist(ctx context.Context, id int64, cabinID int64, bedNumber int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusConfirmed).
		Set("cabin_id", cabinID).
		Set("bed_number", bedNumber).
		Set("cancel_date", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusWaitlist}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: PromoteWaitlist - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: cabin=%d bed=%d", ErrBedTaken, cabinID, bedNumber)
		}
		return fmt.Errorf("%w: PromoteWaitlist - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: PromoteWaitlist - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return r.classifyMissedUpdate(ctx, id)
	}

	return nil
}

// UpdatePricing обновляет цену и признак одноместного размещения
func (r *Repository) UpdatePricing(ctx context.Context, id int64, price float64, singleUse bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("price", price).
		Set("single_use", singleUse).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePricing - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePricing - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdatePricing - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// DeleteMany физически удаляет бронирования (используется при зачистке
// просроченных опционов; для обычной отмены используется UpdateStatusFrom)
func (r *Repository) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteMany - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteMany - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteMany - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// classifyMissedUpdate различает "ряд не найден" и "статус изменился"
// для guarded-обновлений, не затронувших ни одного ряда
func (r *Repository) classifyMissedUpdate(ctx context.Context, id int64) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	return ErrStatusChanged
}

// scanBooking сканирует одиночный ряд бронирования
func scanBooking(row *sql.Row) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.TripID,
		&b.CabinID,
		&b.BedNumber,
		&b.Status,
		&b.Gender,
		&b.GroupName,
		&b.Price,
		&b.OriginalPrice,
		&b.SingleUse,
		&b.CancelDate,
		&b.OwnerID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.TripID,
			&b.CabinID,
			&b.BedNumber,
			&b.Status,
			&b.Gender,
			&b.GroupName,
			&b.Price,
			&b.OriginalPrice,
			&b.SingleUse,
			&b.CancelDate,
			&b.OwnerID,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// isUniqueViolation проверяет нарушение уникального индекса
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation
}
