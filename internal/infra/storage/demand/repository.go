package demand

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	"github.com/m04kA/SMC-ShuttleService/pkg/psqlbuilder"
)

const (
	tableDemandKeys     = "demand_keys"
	tableDemandRequests = "demand_requests"
)

// Repository хранилище заявок в PostgreSQL
type Repository struct {
	db DB
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

// Add атомарно увеличивает счетчик ключа и сохраняет заявку в одной транзакции
func (r *Repository) Add(ctx context.Context, req *domain.DemandRequest) (*domain.DemandAggregate, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: Add - begin: %v", ErrTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	upsert, args, err := psqlbuilder.Insert(tableDemandKeys).
		Columns("date", "time", "count", "status").
		Values(req.Date, req.Time, req.Passengers, string(domain.DemandStatusPending)).
		Suffix("ON CONFLICT (date, time) DO UPDATE SET count = demand_keys.count + EXCLUDED.count RETURNING count, status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Add - build upsert query: %v", ErrBuildQuery, err)
	}

	agg := &domain.DemandAggregate{Date: req.Date, Time: req.Time}
	var status string
	if err := tx.QueryRowContext(ctx, upsert, args...).Scan(&agg.Count, &status); err != nil {
		return nil, fmt.Errorf("%w: Add - execute upsert: %v", ErrExecQuery, err)
	}
	agg.Status = domain.DemandStatus(status)

	insert, args, err := psqlbuilder.Insert(tableDemandRequests).
		Columns("id", "date", "time", "route", "passengers", "name", "email", "phone", "created_at").
		Values(req.ID, req.Date, req.Time, string(req.Route), req.Passengers, req.Name, req.Email, req.Phone, req.CreatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Add - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := tx.ExecContext(ctx, insert, args...); err != nil {
		return nil, fmt.Errorf("%w: Add - execute insert: %v", ErrExecQuery, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: Add - commit: %v", ErrTransaction, err)
	}

	return agg, nil
}

func (r *Repository) Get(ctx context.Context, key domain.DemandKey) (*domain.DemandAggregate, error) {
	query, args, err := psqlbuilder.Select("date", "time", "count", "status").
		From(tableDemandKeys).
		Where(squirrel.Eq{"date": key.Date, "time": key.Time}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	agg, err := scanAggregate(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan aggregate: %v", ErrScanRow, err)
	}

	return agg, nil
}

// List возвращает все ключи, пустая date означает без фильтра
func (r *Repository) List(ctx context.Context, date string) ([]*domain.DemandAggregate, error) {
	builder := psqlbuilder.Select("date", "time", "count", "status").
		From(tableDemandKeys)
	if date != "" {
		builder = builder.Where(squirrel.Eq{"date": date})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.DemandAggregate, 0)
	for rows.Next() {
		agg, err := scanAggregate(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan aggregate: %v", ErrScanRow, err)
		}
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return result, nil
}

// Resolve переводит ключ из pending в итоговый статус одним UPDATE.
// Если строка не обновилась, текущее состояние определяет результат.
func (r *Repository) Resolve(ctx context.Context, key domain.DemandKey, status domain.DemandStatus) (*domain.DemandAggregate, bool, error) {
	query, args, err := psqlbuilder.Update(tableDemandKeys).
		Set("status", string(status)).
		Where(squirrel.Eq{
			"date":   key.Date,
			"time":   key.Time,
			"status": string(domain.DemandStatusPending),
		}).
		Suffix("RETURNING date, time, count, status").
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("%w: Resolve - build update query: %v", ErrBuildQuery, err)
	}

	agg, err := scanAggregate(r.db.QueryRowContext(ctx, query, args...))
	if err == nil {
		return agg, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("%w: Resolve - execute update: %v", ErrExecQuery, err)
	}

	current, err := r.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if current.Status == status {
		return current, false, nil
	}

	return current, false, ErrAlreadyResolved
}

// Requests возвращает заявки ключа в порядке поступления
func (r *Repository) Requests(ctx context.Context, key domain.DemandKey) ([]*domain.DemandRequest, error) {
	query, args, err := psqlbuilder.Select("id", "date", "time", "route", "passengers", "name", "email", "phone", "created_at").
		From(tableDemandRequests).
		Where(squirrel.Eq{"date": key.Date, "time": key.Time}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Requests - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Requests - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.DemandRequest, 0)
	for rows.Next() {
		var (
			req   domain.DemandRequest
			route string
		)
		if err := rows.Scan(&req.ID, &req.Date, &req.Time, &route, &req.Passengers,
			&req.Name, &req.Email, &req.Phone, &req.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: Requests - scan request: %v", ErrScanRow, err)
		}
		req.Route = domain.RouteID(route)
		result = append(result, &req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Requests - iterate rows: %v", ErrScanRow, err)
	}

	if len(result) == 0 {
		return nil, ErrKeyNotFound
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAggregate(row rowScanner) (*domain.DemandAggregate, error) {
	var (
		agg    domain.DemandAggregate
		status string
	)
	if err := row.Scan(&agg.Date, &agg.Time, &agg.Count, &status); err != nil {
		return nil, err
	}
	agg.Status = domain.DemandStatus(status)
	return &agg, nil
}
