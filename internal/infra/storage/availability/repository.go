package availability

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	"github.com/m04kA/SMC-ShuttleService/pkg/psqlbuilder"
)

const (
	tableBlockedDates = "blocked_dates"
	tableBlockedSlots = "blocked_slots"
)

// Repository хранилище блокировок в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// BlockDate добавляет дату, повторная блокировка ничего не меняет
func (r *Repository) BlockDate(ctx context.Context, date string) error {
	query, args, err := psqlbuilder.Insert(tableBlockedDates).
		Columns("date").
		Values(date).
		Suffix("ON CONFLICT (date) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: BlockDate - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: BlockDate - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

func (r *Repository) UnblockDate(ctx context.Context, date string) error {
	query, args, err := psqlbuilder.Delete(tableBlockedDates).
		Where(squirrel.Eq{"date": date}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UnblockDate - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UnblockDate - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

func (r *Repository) UnblockAllDates(ctx context.Context) error {
	query, args, err := psqlbuilder.Delete(tableBlockedDates).ToSql()
	if err != nil {
		return fmt.Errorf("%w: UnblockAllDates - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UnblockAllDates - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

func (r *Repository) BlockSlot(ctx context.Context, slot domain.BlockedSlot) error {
	query, args, err := psqlbuilder.Insert(tableBlockedSlots).
		Columns("date", "route", "time").
		Values(slot.Date, string(slot.Route), slot.Time).
		Suffix("ON CONFLICT (date, route, time) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: BlockSlot - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: BlockSlot - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

func (r *Repository) UnblockSlot(ctx context.Context, slot domain.BlockedSlot) error {
	query, args, err := psqlbuilder.Delete(tableBlockedSlots).
		Where(squirrel.Eq{
			"date":  slot.Date,
			"route": string(slot.Route),
			"time":  slot.Time,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UnblockSlot - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UnblockSlot - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

// ListBlocked возвращает все заблокированные даты и слоты
func (r *Repository) ListBlocked(ctx context.Context) ([]string, []domain.BlockedSlot, error) {
	dates, err := r.listDates(ctx)
	if err != nil {
		return nil, nil, err
	}

	slots, err := r.listSlots(ctx)
	if err != nil {
		return nil, nil, err
	}

	return dates, slots, nil
}

func (r *Repository) listDates(ctx context.Context) ([]string, error) {
	query, args, err := psqlbuilder.Select("date").
		From(tableBlockedDates).
		OrderBy("date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlocked - build dates query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlocked - query dates: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]string, 0)
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("%w: ListBlocked - scan date: %v", ErrScanRow, err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBlocked - iterate dates: %v", ErrScanRow, err)
	}

	return dates, nil
}

func (r *Repository) listSlots(ctx context.Context) ([]domain.BlockedSlot, error) {
	query, args, err := psqlbuilder.Select("date", "route", "time").
		From(tableBlockedSlots).
		OrderBy("date", "route", "time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlocked - build slots query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlocked - query slots: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.BlockedSlot, 0)
	for rows.Next() {
		var (
			s     domain.BlockedSlot
			route string
		)
		if err := rows.Scan(&s.Date, &route, &s.Time); err != nil {
			return nil, fmt.Errorf("%w: ListBlocked - scan slot: %v", ErrScanRow, err)
		}
		s.Route = domain.RouteID(route)
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBlocked - iterate slots: %v", ErrScanRow, err)
	}

	return slots, nil
}
