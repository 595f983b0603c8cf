package blockouts

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ViewingService/internal/domain"
	"github.com/m04kA/SMC-ViewingService/internal/service/blockouts/models"
	"github.com/m04kA/SMC-ViewingService/pkg/types"
)

// toDomainBlockout валидирует запрос и конвертирует его в domain модель
func toDomainBlockout(agencyID int64, req *models.CreateBlockoutRequest) (*domain.Blockout, error) {
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date format: %s. Must be YYYY-MM-DD", ErrInvalidInput, req.Date)
	}

	blockout := &domain.Blockout{
		AgencyID: agencyID,
		Date:     date,
		FullDay:  req.FullDay,
	}

	hasStart := req.StartTime != nil && *req.StartTime != ""
	hasEnd := req.EndTime != nil && *req.EndTime != ""

	if req.FullDay {
		if hasStart || hasEnd {
			return nil, fmt.Errorf("%w: startTime and endTime must be empty for full-day blockouts", ErrInvalidInput)
		}
		return blockout, nil
	}

	if !hasStart || !hasEnd {
		return nil, fmt.Errorf("%w: startTime and endTime are required for time-range blockouts", ErrInvalidInput)
	}

	start, err := types.NewTimeStringFromString(*req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime format: %s. Must be HH:MM", ErrInvalidInput, *req.StartTime)
	}
	end, err := types.NewTimeStringFromString(*req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endTime format: %s. Must be HH:MM", ErrInvalidInput, *req.EndTime)
	}
	if !start.IsBefore(end) {
		return nil, fmt.Errorf("%w: startTime %s must be before endTime %s", ErrInvalidInput, start, end)
	}

	blockout.StartTime = &start
	blockout.EndTime = &end
	return blockout, nil
}
