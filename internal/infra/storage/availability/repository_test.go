package availability

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ViewingService/internal/domain"
	"github.com/m04kA/SMC-ViewingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ViewingService/pkg/types"
)

func TestRepository_GetByAgency(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM availability_rules WHERE agency_id = \$1 ORDER BY day_of_week ASC`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "agency_id", "day_of_week", "enabled", "start_time", "end_time"}).
			AddRow(int64(1), int64(1), 0, true, "09:00:00", "18:00:00").
			AddRow(int64(2), int64(1), 6, false, "10:00:00", "14:00:00"))

	rules, err := NewRepository(db).GetByAgency(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, types.TimeString("09:00"), rules[0].StartTime)
	assert.Equal(t, types.TimeString("18:00"), rules[0].EndTime)
	assert.False(t, rules[1].Enabled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByAgency_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM availability_rules`).WillReturnError(errors.New("boom"))

	_, err = NewRepository(db).GetByAgency(context.Background(), 1)
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_ReplaceForAgency(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM availability_rules WHERE agency_id = \$1`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 7))
	mock.ExpectExec(`INSERT INTO availability_rules \(agency_id,day_of_week,enabled,start_time,end_time\) VALUES \(\$1,\$2,\$3,\$4,\$5\),\(\$6,\$7,\$8,\$9,\$10\)`).
		WithArgs(int64(1), 0, true, "09:00", "17:00", int64(1), 5, false, "10:00", "12:00").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), &dbmetrics.SqlTxWrapper{Tx: tx})

	err = NewRepository(db).ReplaceForAgency(ctx, 1, []domain.AvailabilityRule{
		{DayOfWeek: 0, Enabled: true, StartTime: "09:00", EndTime: "17:00"},
		{DayOfWeek: 5, Enabled: false, StartTime: "10:00", EndTime: "12:00"},
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ReplaceForAgency_EmptyOnlyDeletes(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM availability_rules`).WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewRepository(db).ReplaceForAgency(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ReplaceForAgency_DeleteError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM availability_rules`).WillReturnError(errors.New("locked"))

	err = NewRepository(db).ReplaceForAgency(context.Background(), 1, []domain.AvailabilityRule{
		domain.DefaultAvailabilityRule(1, 0),
	})
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_ReplaceForAgency_UniqueViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM availability_rules`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO availability_rules`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "availability_rules_agency_id_day_of_week_key"})

	err = NewRepository(db).ReplaceForAgency(context.Background(), 1, []domain.AvailabilityRule{
		domain.DefaultAvailabilityRule(1, 0),
		domain.DefaultAvailabilityRule(1, 0),
	})
	assert.ErrorIs(t, err, ErrDuplicateDay)
}
