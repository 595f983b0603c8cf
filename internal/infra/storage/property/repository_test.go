package property

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var propertyColumns = []string{
	"id", "agency_id", "agent_id", "title", "address", "postcode", "status",
	"base_postcode", "created_at", "updated_at",
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM properties p JOIN agencies a ON a.id = p.agency_id WHERE p.id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(propertyColumns).
			AddRow(int64(3), int64(1), int64(1), "Two-bed flat", "12 Leinster Sq", "W2 4DX", "active", "W2 4DX", now, now))

	p, err := NewRepository(db).GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "W2 4DX", p.Postcode)
	assert.Equal(t, "W2 4DX", p.AgencyBasePostcode)
	assert.Equal(t, int64(1), p.AgentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NullBasePostcode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM properties p`).
		WillReturnRows(sqlmock.NewRows(propertyColumns).
			AddRow(int64(3), int64(1), int64(1), "Flat", "Addr", "N1 9GU", "active", nil, nil, nil))

	p, err := NewRepository(db).GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, p.AgencyBasePostcode)
	assert.True(t, p.CreatedAt.IsZero())
}

func TestRepository_GetByID_Errors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`FROM properties p`).WillReturnRows(sqlmock.NewRows(propertyColumns))
	_, err = repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrPropertyNotFound)

	mock.ExpectQuery(`FROM properties p`).WillReturnError(errors.New("timeout"))
	_, err = repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrScanRow)
}
