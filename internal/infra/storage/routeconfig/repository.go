package routeconfig

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	"github.com/m04kA/SMC-ShuttleService/pkg/psqlbuilder"
)

const (
	tableRouteConfig = "route_config"

	// categoryKey строка с общим флагом маршрутов по спросу
	categoryKey = "*"
)

// Repository конфигурация маршрутов в PostgreSQL.
// Отсутствующие строки берутся из конфигурации по умолчанию.
type Repository struct {
	db       DB
	defaults *domain.RouteConfig
}

// NewRepository создает новый экземпляр репозитория конфигурации маршрутов
func NewRepository(db DB, defaults *domain.RouteConfig) *Repository {
	return &Repository{db: db, defaults: defaults.Clone()}
}

func (r *Repository) Get(ctx context.Context) (*domain.RouteConfig, error) {
	return r.get(ctx, r.db)
}

// Apply записывает переданные поля в одной транзакции и возвращает итоговую конфигурацию
func (r *Repository) Apply(ctx context.Context, upd Update) (*domain.RouteConfig, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: Apply - begin: %v", ErrTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if upd.Enabled != nil {
		if err := r.upsert(ctx, tx, categoryKey, *upd.Enabled); err != nil {
			return nil, err
		}
	}

	routes := make([]string, 0, len(upd.Routes))
	for route := range upd.Routes {
		routes = append(routes, string(route))
	}
	sort.Strings(routes)

	for _, route := range routes {
		if err := r.upsert(ctx, tx, route, upd.Routes[domain.RouteID(route)]); err != nil {
			return nil, err
		}
	}

	cfg, err := r.get(ctx, tx)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: Apply - commit: %v", ErrTransaction, err)
	}

	return cfg, nil
}

func (r *Repository) upsert(ctx context.Context, exec DBExecutor, key string, enabled bool) error {
	query, args, err := psqlbuilder.Insert(tableRouteConfig).
		Columns("route", "enabled").
		Values(key, enabled).
		Suffix("ON CONFLICT (route) DO UPDATE SET enabled = EXCLUDED.enabled").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Apply - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := exec.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Apply - execute upsert route=%s: %v", ErrExecQuery, key, err)
	}
	return nil
}

func (r *Repository) get(ctx context.Context, exec DBExecutor) (*domain.RouteConfig, error) {
	query, args, err := psqlbuilder.Select("route", "enabled").
		From(tableRouteConfig).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	cfg := r.defaults.Clone()
	for rows.Next() {
		var (
			key     string
			enabled bool
		)
		if err := rows.Scan(&key, &enabled); err != nil {
			return nil, fmt.Errorf("%w: Get - scan row: %v", ErrScanRow, err)
		}

		if key == categoryKey {
			cfg.Enabled = enabled
			continue
		}
		cfg.Routes[domain.RouteID(key)] = enabled
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Get - iterate rows: %v", ErrScanRow, err)
	}

	return cfg, nil
}
