package property

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ViewingService/internal/domain"
	"github.com/m04kA/SMC-ViewingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ViewingService/pkg/psqlbuilder"
)

// Repository репозиторий объектов недвижимости (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория объектов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает объект вместе с базовым почтовым индексом агентства
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"p.id",
		"p.agency_id",
		"p.agent_id",
		"p.title",
		"p.address",
		"p.postcode",
		"p.status",
		"a.base_postcode",
		"p.created_at",
		"p.updated_at",
	).
		From("properties p").
		Join("agencies a ON a.id = p.agency_id").
		Where(squirrel.Eq{"p.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var property domain.Property
	var basePostcode sql.NullString
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&property.ID,
		&property.AgencyID,
		&property.AgentID,
		&property.Title,
		&property.Address,
		&property.Postcode,
		&property.Status,
		&basePostcode,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPropertyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan property: %v", ErrScanRow, err)
	}

	property.AgencyBasePostcode = basePostcode.String
	property.CreatedAt = createdAt.Time
	property.UpdatedAt = updatedAt.Time

	return &property, nil
}
