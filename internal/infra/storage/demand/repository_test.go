package demand

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

func TestRepository_Add(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	createdAt := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
	req := &domain.DemandRequest{
		ID:         "a6c1b7c0-0000-4000-8000-000000000001",
		Route:      domain.RouteQueenstownToKingPhalo,
		Date:       "2025-06-01",
		Time:       "6:00 AM",
		Passengers: 4,
		Name:       "Thandi",
		Email:      "thandi@example.com",
		Phone:      "0820000000",
		CreatedAt:  createdAt,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO demand_keys (date,time,count,status) VALUES ($1,$2,$3,$4) ON CONFLICT (date, time) DO UPDATE")).
		WithArgs("2025-06-01", "6:00 AM", 4, "pending").
		WillReturnRows(sqlmock.NewRows([]string{"count", "status"}).AddRow(7, "pending"))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO demand_requests")).
		WithArgs(req.ID, "2025-06-01", "6:00 AM", "Queenstown_to_KingPhalo", 4, "Thandi", "thandi@example.com", "0820000000", createdAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewRepository(db)
	agg, err := repo.Add(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 7, agg.Count)
	assert.Equal(t, domain.DemandStatusPending, agg.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AddRollbackOnInsertError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO demand_keys").
		WillReturnRows(sqlmock.NewRows([]string{"count", "status"}).AddRow(3, "pending"))
	mock.ExpectExec("INSERT INTO demand_requests").WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	repo := NewRepository(db)
	_, err = repo.Add(context.Background(), &domain.DemandRequest{Date: "2025-06-01", Time: "6:00 AM", Passengers: 3})
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT date, time, count, status FROM demand_keys WHERE date = $1 AND time = $2")).
		WithArgs("2025-06-01", "6:00 AM").
		WillReturnRows(sqlmock.NewRows([]string{"date", "time", "count", "status"}))

	repo := NewRepository(db)
	_, err = repo.Get(context.Background(), domain.DemandKey{Date: "2025-06-01", Time: "6:00 AM"})
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRepository_ResolvePending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE demand_keys SET status = $1 WHERE date = $2 AND status = $3 AND time = $4 RETURNING date, time, count, status")).
		WithArgs("declined", "2025-06-01", "pending", "6:00 AM").
		WillReturnRows(sqlmock.NewRows([]string{"date", "time", "count", "status"}).
			AddRow("2025-06-01", "6:00 AM", 7, "declined"))

	repo := NewRepository(db)
	agg, changed, err := repo.Resolve(context.Background(), domain.DemandKey{Date: "2025-06-01", Time: "6:00 AM"}, domain.DemandStatusDeclined)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 7, agg.Count)
	assert.Equal(t, domain.DemandStatusDeclined, agg.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ResolveConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("UPDATE demand_keys").
		WillReturnRows(sqlmock.NewRows([]string{"date", "time", "count", "status"}))
	mock.ExpectQuery("SELECT date, time, count, status FROM demand_keys").
		WillReturnRows(sqlmock.NewRows([]string{"date", "time", "count", "status"}).
			AddRow("2025-06-01", "6:00 AM", 7, "confirmed"))

	repo := NewRepository(db)
	_, changed, err := repo.Resolve(context.Background(), domain.DemandKey{Date: "2025-06-01", Time: "6:00 AM"}, domain.DemandStatusDeclined)
	assert.ErrorIs(t, err, ErrAlreadyResolved)
	assert.False(t, changed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ResolveUnknownKey(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("UPDATE demand_keys").
		WillReturnRows(sqlmock.NewRows([]string{"date", "time", "count", "status"}))
	mock.ExpectQuery("SELECT date, time, count, status FROM demand_keys").
		WillReturnRows(sqlmock.NewRows([]string{"date", "time", "count", "status"}))

	repo := NewRepository(db)
	_, _, err = repo.Resolve(context.Background(), domain.DemandKey{Date: "2025-06-01", Time: "6:00 AM"}, domain.DemandStatusConfirmed)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT date, time, count, status FROM demand_keys WHERE date = $1")).
		WithArgs("2025-06-01").
		WillReturnRows(sqlmock.NewRows([]string{"date", "time", "count", "status"}).
			AddRow("2025-06-01", "6:00 AM", 3, "pending").
			AddRow("2025-06-01", "3:00 PM", 8, "confirmed"))

	repo := NewRepository(db)
	list, err := repo.List(context.Background(), "2025-06-01")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 8, list[1].Count)
	assert.Equal(t, domain.DemandStatusConfirmed, list[1].Status)
}
