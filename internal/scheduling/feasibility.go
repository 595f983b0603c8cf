package scheduling

import (
	"github.com/m04kA/SMC-ViewingService/pkg/ptr"
)

const (
	reasonOccupied         = "agent has a viewing at this time"
	reasonTravelFromPrefix = "insufficient travel time from "
	reasonBeforeNext       = "insufficient time before next viewing"
)

// TravelEstimator оценка времени в пути между двумя адресами, в минутах
type TravelEstimator interface {
	Estimate(from, to string) int
}

// Engine движок подбора слотов
// Не хранит состояния между вызовами и безопасен для конкурентного использования
type Engine struct {
	cfg       Config
	estimator TravelEstimator
}

func NewEngine(cfg Config, estimator TravelEstimator) *Engine {
	return &Engine{cfg: cfg, estimator: estimator}
}

// Config возвращает константы движка
func (e *Engine) Config() Config {
	return e.cfg
}

type booking struct {
	id       int64
	start    int
	location string
}

// itinerary показы агента за день по возрастанию времени начала
type itinerary []booking

// neighbours ближайший показ строго до candidate и ближайший строго после
func (it itinerary) neighbours(candidate int) (prev, next *booking) {
	for i := range it {
		switch {
		case it[i].start < candidate:
			prev = &it[i]
		case it[i].start > candidate:
			return prev, &it[i]
		}
	}
	return prev, nil
}

// CheckFeasibility проверяет, можно ли вставить показ в расписание агента
// Используются длительность и запас из Config
func (e *Engine) CheckFeasibility(req FeasibilityRequest) (FeasibilityResult, error) {
	candidate, it, err := e.prepare(req)
	if err != nil {
		return FeasibilityResult{}, err
	}
	return e.check(it, candidate, req.LocationKey, e.cfg.ViewingDurationMinutes, e.cfg.TravelBufferMinutes), nil
}

// Evaluate проверяет время и классифицирует его как ok, tight или conflict
func (e *Engine) Evaluate(req FeasibilityRequest) (Evaluation, error) {
	candidate, it, err := e.prepare(req)
	if err != nil {
		return Evaluation{}, err
	}
	return e.evaluate(it, candidate, req.LocationKey, e.cfg.ViewingDurationMinutes, e.cfg.TravelBufferMinutes), nil
}

func (e *Engine) prepare(req FeasibilityRequest) (int, itinerary, error) {
	if err := validateDuration(e.cfg.ViewingDurationMinutes, e.cfg.TravelBufferMinutes); err != nil {
		return 0, nil, err
	}
	candidate, err := parseTime("time", req.Time)
	if err != nil {
		return 0, nil, err
	}
	it, err := buildItinerary(req.AgentID, req.Date, req.ExcludeID, req.Appointments)
	if err != nil {
		return 0, nil, err
	}
	return candidate, it, nil
}

// check первая найденная причина побеждает: пересечение, затем предыдущий показ, затем следующий
func (e *Engine) check(it itinerary, candidate int, location string, duration, buffer int) FeasibilityResult {
	candidateEnd := candidate + duration

	for _, b := range it {
		if candidate < b.start+duration && b.start < candidateEnd {
			return FeasibilityResult{Reason: reasonOccupied}
		}
	}

	prev, next := it.neighbours(candidate)

	if prev != nil {
		travel := e.estimator.Estimate(prev.location, location)
		if candidate < prev.start+duration+buffer+travel {
			return FeasibilityResult{Reason: reasonTravelFromPrefix + prev.location}
		}
	}

	if next != nil {
		travel := e.estimator.Estimate(location, next.location)
		if candidateEnd+buffer+travel > next.start {
			return FeasibilityResult{Reason: reasonBeforeNext}
		}
	}

	return FeasibilityResult{Feasible: true}
}

func (e *Engine) evaluate(it itinerary, candidate int, location string, duration, buffer int) Evaluation {
	res := e.check(it, candidate, location, duration, buffer)
	if !res.Feasible {
		return Evaluation{Status: SlotConflict, Reason: res.Reason}
	}
	return e.classify(it, candidate, location)
}

// classify учитывает только предыдущий показ: дорога к следующему на статус не влияет
func (e *Engine) classify(it itinerary, candidate int, location string) Evaluation {
	prev, _ := it.neighbours(candidate)
	if prev == nil {
		return Evaluation{Status: SlotOK}
	}

	travel := e.estimator.Estimate(prev.location, location)

	ev := Evaluation{Status: SlotOK}
	if travel > 0 {
		ev.TravelMinutes = ptr.Ptr(travel)
	}
	if travel > e.cfg.TightThresholdMinutes {
		ev.Status = SlotTight
	}
	return ev
}
