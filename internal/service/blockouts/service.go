package blockouts

import (
	"context"
	"errors"
	"fmt"

	blockoutRepo "github.com/m04kA/SMC-ViewingService/internal/infra/storage/blockout"
	"github.com/m04kA/SMC-ViewingService/internal/service/blockouts/models"
)

// Service сервис блокировок агентства (выходные, отпуска, перерывы)
type Service struct {
	blockoutRepo BlockoutRepository
	cache        SlotCache
	logger       Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(blockoutRepo BlockoutRepository, cache SlotCache, logger Logger) *Service {
	return &Service{
		blockoutRepo: blockoutRepo,
		cache:        cache,
		logger:       logger,
	}
}

// List получает все блокировки агентства
func (s *Service) List(ctx context.Context, agencyID int64) (*models.BlockoutListResponse, error) {
	if agencyID <= 0 {
		return nil, fmt.Errorf("%w: agencyID must be positive", ErrInvalidInput)
	}

	blockouts, err := s.blockoutRepo.GetByAgency(ctx, agencyID)
	if err != nil {
		s.logger.Error("List: repository error for agency=%d: %v", agencyID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockoutList(blockouts), nil
}

// Create создает блокировку и сбрасывает кэш слотов агентства
func (s *Service) Create(ctx context.Context, agencyID int64, req *models.CreateBlockoutRequest) (*models.BlockoutResponse, error) {
	s.logger.Info("Create: blockout for agency=%d, date=%s, fullDay=%t", agencyID, req.Date, req.FullDay)

	if agencyID <= 0 {
		return nil, fmt.Errorf("%w: agencyID must be positive", ErrInvalidInput)
	}

	blockout, err := toDomainBlockout(agencyID, req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.blockoutRepo.Create(ctx, blockout)
	if err != nil {
		s.logger.Error("Create: repository error for agency=%d: %v", agencyID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, agencyID)

	s.logger.Info("Create: successfully created blockout id=%d", created.ID)
	return models.FromDomainBlockout(created), nil
}

// Delete удаляет блокировку агентства
func (s *Service) Delete(ctx context.Context, agencyID, blockoutID int64) error {
	s.logger.Info("Delete: blockout id=%d for agency=%d", blockoutID, agencyID)

	err := s.blockoutRepo.Delete(ctx, agencyID, blockoutID)
	if err != nil {
		if errors.Is(err, blockoutRepo.ErrBlockoutNotFound) {
			s.logger.Warn("Delete: blockout id=%d not found for agency=%d", blockoutID, agencyID)
			return ErrBlockoutNotFound
		}
		s.logger.Error("Delete: repository error for blockout id=%d: %v", blockoutID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, agencyID)
	return nil
}

func (s *Service) invalidate(ctx context.Context, agencyID int64) {
	if err := s.cache.Invalidate(ctx, agencyID); err != nil {
		s.logger.Warn("failed to invalidate slot cache for agency=%d: %v", agencyID, err)
	}
}
