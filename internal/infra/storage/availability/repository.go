package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ViewingService/internal/domain"
	"github.com/m04kA/SMC-ViewingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ViewingService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникальности (agency_id, day_of_week)
const uniqueViolation pq.ErrorCode = "23505"

// Repository репозиторий недельного расписания агентства
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByAgency получает правила расписания агентства, упорядоченные по дню недели
// Дни без правил не возвращаются
func (r *Repository) GetByAgency(ctx context.Context, agencyID int64) ([]domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"agency_id",
		"day_of_week",
		"enabled",
		"start_time",
		"end_time",
	).
		From("availability_rules").
		Where(squirrel.Eq{"agency_id": agencyID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByAgency - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAgency - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]domain.AvailabilityRule, 0, domain.DaysInWeek)
	for rows.Next() {
		var rule domain.AvailabilityRule
		err := rows.Scan(
			&rule.ID,
			&rule.AgencyID,
			&rule.DayOfWeek,
			&rule.Enabled,
			&rule.StartTime,
			&rule.EndTime,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByAgency - scan row: %v", ErrScanRow, err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByAgency - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// ReplaceForAgency полностью заменяет расписание агентства
// Должен вызываться внутри транзакции: удаление и вставка выполняются одним executor
func (r *Repository) ReplaceForAgency(ctx context.Context, agencyID int64, rules []domain.AvailabilityRule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// 1. Удаляем текущие правила
	deleteQuery, deleteArgs, err := psqlbuilder.Delete("availability_rules").
		Where(squirrel.Eq{"agency_id": agencyID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceForAgency - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForAgency - execute delete: %v", ErrExecQuery, err)
	}

	if len(rules) == 0 {
		return nil
	}

	// 2. Вставляем новые правила одним запросом
	insertBuilder := psqlbuilder.Insert("availability_rules").
		Columns("agency_id", "day_of_week", "enabled", "start_time", "end_time")

	for _, rule := range rules {
		insertBuilder = insertBuilder.Values(agencyID, rule.DayOfWeek, rule.Enabled, rule.StartTime, rule.EndTime)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForAgency - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("%w: ReplaceForAgency - %s", ErrDuplicateDay, pqErr.Constraint)
		}
		return fmt.Errorf("%w: ReplaceForAgency - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
