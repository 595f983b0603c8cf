package blockout

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ViewingService/internal/domain"
	"github.com/m04kA/SMC-ViewingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ViewingService/pkg/psqlbuilder"
)

var selectColumns = []string{
	"id",
	"agency_id",
	"date",
	"full_day",
	"start_time",
	"end_time",
	"created_at",
}

// Repository репозиторий блокировок (выходные, отпуска, перерывы)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает блокировку
func (r *Repository) Create(ctx context.Context, blockout *domain.Blockout) (*domain.Blockout, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blockouts").
		Columns("agency_id", "date", "full_day", "start_time", "end_time").
		Values(
			blockout.AgencyID,
			blockout.Date.Format(domain.DateFormat),
			blockout.FullDay,
			blockout.StartTime,
			blockout.EndTime,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&blockout.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	blockout.CreatedAt = createdAt.Time

	return blockout, nil
}

// GetByAgency получает все блокировки агентства, упорядоченные по дате
func (r *Repository) GetByAgency(ctx context.Context, agencyID int64) ([]domain.Blockout, error) {
	query, args, err := psqlbuilder.Select(selectColumns...).
		From("blockouts").
		Where(squirrel.Eq{"agency_id": agencyID}).
		OrderBy("date ASC", "start_time ASC NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByAgency - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "GetByAgency", query, args)
}

// GetByAgencyAndDate получает блокировки агентства на конкретную дату
func (r *Repository) GetByAgencyAndDate(ctx context.Context, agencyID int64, date time.Time) ([]domain.Blockout, error) {
	query, args, err := psqlbuilder.Select(selectColumns...).
		From("blockouts").
		Where(squirrel.Eq{
			"agency_id": agencyID,
			"date":      date.Format(domain.DateFormat),
		}).
		OrderBy("start_time ASC NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByAgencyAndDate - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "GetByAgencyAndDate", query, args)
}

// Delete удаляет блокировку агентства
func (r *Repository) Delete(ctx context.Context, agencyID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blockouts").
		Where(squirrel.Eq{
			"id":        id,
			"agency_id": agencyID,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockoutNotFound
	}

	return nil
}

func (r *Repository) query(ctx context.Context, method, query string, args []interface{}) ([]domain.Blockout, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	blockouts := make([]domain.Blockout, 0)
	for rows.Next() {
		var b domain.Blockout
		var createdAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.AgencyID,
			&b.Date,
			&b.FullDay,
			&b.StartTime,
			&b.EndTime,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}

		b.CreatedAt = createdAt.Time
		blockouts = append(blockouts, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return blockouts, nil
}
