package viewing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ViewingService/internal/domain"
	"github.com/m04kA/SMC-ViewingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ViewingService/pkg/psqlbuilder"
)

// selectColumns колонки показа вместе с данными объекта из properties
var selectColumns = []string{
	"v.id",
	"v.agency_id",
	"v.agent_id",
	"v.property_id",
	"p.title",
	"p.postcode",
	"v.tenant_name",
	"v.tenant_email",
	"v.tenant_phone",
	"v.requested_date",
	"v.requested_time",
	"v.confirmed_time",
	"v.suggested_time",
	"v.status",
	"v.message",
	"v.move_in_date",
	"v.occupants",
	"v.rent_budget",
	"v.created_at",
	"v.updated_at",
}

// Repository репозиторий для работы с показами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория показов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func selectViewings() squirrel.SelectBuilder {
	return psqlbuilder.Select(selectColumns...).
		From("viewings v").
		Join("properties p ON p.id = v.property_id")
}

// Create создает новый запрос на показ
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, viewing *domain.Viewing) (*domain.Viewing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("viewings").
		Columns(
			"agency_id",
			"agent_id",
			"property_id",
			"tenant_name",
			"tenant_email",
			"tenant_phone",
			"requested_date",
			"requested_time",
			"status",
			"message",
			"move_in_date",
			"occupants",
			"rent_budget",
		).
		Values(
			viewing.AgencyID,
			viewing.AgentID,
			viewing.PropertyID,
			viewing.TenantName,
			viewing.TenantEmail,
			viewing.TenantPhone,
			viewing.RequestedDate,
			viewing.RequestedTime,
			viewing.Status,
			viewing.Message,
			viewing.MoveInDate,
			viewing.Occupants,
			viewing.RentBudget,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&viewing.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	viewing.CreatedAt = createdAt.Time
	viewing.UpdatedAt = updatedAt.Time

	return viewing, nil
}

// GetByID получает показ по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Viewing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectViewings().Where(squirrel.Eq{"v.id": id})

	// В транзакции блокируем строку до подтверждения
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF v")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	viewing, err := scanViewing(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrViewingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan viewing: %v", ErrScanRow, err)
	}

	return viewing, nil
}

// GetByAgency получает все показы агентства, сначала новые
func (r *Repository) GetByAgency(ctx context.Context, agencyID int64) ([]*domain.Viewing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectViewings().
		Where(squirrel.Eq{"v.agency_id": agencyID}).
		OrderBy("v.created_at DESC", "v.id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByAgency - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAgency - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanViewings(rows)
}

// GetConfirmedByAgentAndDate получает подтвержденные показы агента на дату
// Внутри транзакции строки блокируются (FOR UPDATE), чтобы два подтверждения не заняли одно окно
func (r *Repository) GetConfirmedByAgentAndDate(ctx context.Context, agentID int64, date time.Time) ([]*domain.Viewing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectViewings().
		Where(squirrel.Eq{
			"v.agent_id":       agentID,
			"v.status":         domain.StatusConfirmed,
			"v.requested_date": date.Format(domain.DateFormat),
		}).
		OrderBy("COALESCE(v.confirmed_time, v.requested_time) ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF v")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedByAgentAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetConfirmedByAgentAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanViewings(rows)
}

// UpdateStatus сохраняет статус, подтвержденное и предложенное время показа
func (r *Repository) UpdateStatus(ctx context.Context, viewing *domain.Viewing) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("viewings").
		Set("status", viewing.Status).
		Set("confirmed_time", viewing.ConfirmedTime).
		Set("suggested_time", viewing.SuggestedTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": viewing.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrViewingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanViewing(row rowScanner) (*domain.Viewing, error) {
	var viewing domain.Viewing
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&viewing.ID,
		&viewing.AgencyID,
		&viewing.AgentID,
		&viewing.PropertyID,
		&viewing.PropertyTitle,
		&viewing.PropertyPostcode,
		&viewing.TenantName,
		&viewing.TenantEmail,
		&viewing.TenantPhone,
		&viewing.RequestedDate,
		&viewing.RequestedTime,
		&viewing.ConfirmedTime,
		&viewing.SuggestedTime,
		&viewing.Status,
		&viewing.Message,
		&viewing.MoveInDate,
		&viewing.Occupants,
		&viewing.RentBudget,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	viewing.CreatedAt = createdAt.Time
	viewing.UpdatedAt = updatedAt.Time

	return &viewing, nil
}

// scanViewings сканирует результаты запроса в слайс показов
func scanViewings(rows *sql.Rows) ([]*domain.Viewing, error) {
	viewings := make([]*domain.Viewing, 0)

	for rows.Next() {
		viewing, err := scanViewing(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanViewings - scan row: %v", ErrScanRow, err)
		}
		viewings = append(viewings, viewing)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanViewings - rows error: %v", ErrScanRow, err)
	}

	return viewings, nil
}
