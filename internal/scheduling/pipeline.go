package scheduling

import (
	"fmt"

	"github.com/m04kA/SMC-ViewingService/pkg/types"
)

// Generate рассчитывает слоты агента на дату
// Этапы применяются строго по порядку, каждый только сужает набор кандидатов:
// шаблон недели -> блокировки -> конфликты с показами -> прошедшее время -> дорога -> классификация
func (e *Engine) Generate(req GenerateRequest) ([]Slot, error) {
	if err := validateDuration(req.DurationMinutes, req.BufferMinutes); err != nil {
		return nil, err
	}
	if e.cfg.SlotStepMinutes <= 0 {
		return nil, fmt.Errorf("%w: slot_step_minutes=%d must be positive", ErrInvalidInput, e.cfg.SlotStepMinutes)
	}

	day, enabled, err := validateRules(req.Rules, Weekday(req.Date))
	if err != nil {
		return nil, err
	}
	fullDay, windows, err := validateExclusions(req.Exclusions, req.Date)
	if err != nil {
		return nil, err
	}
	it, err := buildItinerary(req.AgentID, req.Date, 0, req.Appointments)
	if err != nil {
		return nil, err
	}

	// 1. Шаблон недели
	if !enabled {
		return []Slot{}, nil
	}
	candidates := e.raster(day)

	// 2. Блокировки
	if fullDay {
		return []Slot{}, nil
	}
	candidates = filterPoints(candidates, func(p int) bool {
		return !e.excluded(p, windows)
	})

	// 3. Конфликты с подтвержденными показами
	candidates = filterPoints(candidates, func(p int) bool {
		return !conflicts(p, it, req.DurationMinutes, req.BufferMinutes)
	})

	// 4. Прошедшее время, только для сегодняшней даты
	if sameDate(req.Date, req.Now) {
		limit := minutesOfDay(req.Now) + e.cfg.SameDayLeadMinutes
		candidates = filterPoints(candidates, func(p int) bool {
			return p > limit
		})
	}

	// 5-6. Проверка дороги и классификация
	// BufferMinutes относится только к этапу 3, на дорогу всегда закладывается TravelBufferMinutes
	slots := make([]Slot, 0, len(candidates))
	for _, p := range candidates {
		ev := e.evaluate(it, p, req.LocationKey, req.DurationMinutes, e.cfg.TravelBufferMinutes)
		if ev.Status == SlotConflict {
			continue
		}

		t, err := types.NewTimeStringFromMinutes(p)
		if err != nil {
			return nil, err
		}
		slots = append(slots, Slot{
			Time:          t,
			Status:        ev.Status,
			TravelMinutes: ev.TravelMinutes,
		})
	}

	return slots, nil
}

// raster точки с шагом SlotStepMinutes на [start, end)
func (e *Engine) raster(day window) []int {
	points := make([]int, 0, (day.end-day.start)/e.cfg.SlotStepMinutes+1)
	for p := day.start; p < day.end; p += e.cfg.SlotStepMinutes {
		points = append(points, p)
	}
	return points
}

// excluded true, если [p, p+step) пересекается хотя бы с одной блокировкой
func (e *Engine) excluded(p int, windows []window) bool {
	for _, w := range windows {
		if p < w.end && p+e.cfg.SlotStepMinutes > w.start {
			return true
		}
	}
	return false
}

// conflicts грубая проверка с запасом buffer с обеих сторон подтвержденного показа
func conflicts(p int, it itinerary, duration, buffer int) bool {
	for _, b := range it {
		if p < b.start+duration+buffer && p+duration+buffer > b.start {
			return true
		}
	}
	return false
}

func filterPoints(points []int, keep func(int) bool) []int {
	out := points[:0]
	for _, p := range points {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
