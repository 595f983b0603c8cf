package scheduling

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-ViewingService/pkg/types"
)

// window полуоткрытый интервал [start, end) в минутах от начала дня
type window struct {
	start int
	end   int
}

func parseTime(field string, t types.TimeString) (int, error) {
	m, err := t.ToMinutes()
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %v", ErrInvalidInput, field, string(t), err)
	}
	return m, nil
}

func validateDuration(duration, buffer int) error {
	if duration <= 0 {
		return fmt.Errorf("%w: duration_minutes=%d must be positive", ErrInvalidInput, duration)
	}
	if buffer < 0 {
		return fmt.Errorf("%w: buffer_minutes=%d must not be negative", ErrInvalidInput, buffer)
	}
	return nil
}

// validateRules проверяет недельный шаблон и возвращает окно на день day (ok=false, если день выключен)
func validateRules(rules []WeeklyRule, day int) (window, bool, error) {
	var (
		result window
		found  bool
		seen   = make(map[int]bool, len(rules))
	)

	for i, rule := range rules {
		if rule.DayOfWeek < 0 || rule.DayOfWeek > 6 {
			return window{}, false, fmt.Errorf("%w: rules[%d].day_of_week=%d out of range [0,6]",
				ErrInvalidInput, i, rule.DayOfWeek)
		}
		if seen[rule.DayOfWeek] {
			return window{}, false, fmt.Errorf("%w: rules[%d].day_of_week=%d duplicated",
				ErrInvalidInput, i, rule.DayOfWeek)
		}
		seen[rule.DayOfWeek] = true

		if !rule.Enabled && rule.StartTime.IsZero() && rule.EndTime.IsZero() {
			continue
		}

		start, err := parseTime(fmt.Sprintf("rules[%d].start_time", i), rule.StartTime)
		if err != nil {
			return window{}, false, err
		}
		end, err := parseTime(fmt.Sprintf("rules[%d].end_time", i), rule.EndTime)
		if err != nil {
			return window{}, false, err
		}
		if rule.Enabled && start >= end {
			return window{}, false, fmt.Errorf("%w: rules[%d] start_time=%s must be before end_time=%s",
				ErrInvalidInput, i, rule.StartTime, rule.EndTime)
		}

		if rule.DayOfWeek == day && rule.Enabled {
			result = window{start: start, end: end}
			found = true
		}
	}

	return result, found, nil
}

// validateExclusions проверяет все блокировки и возвращает относящиеся к date
func validateExclusions(exclusions []Exclusion, date time.Time) (fullDay bool, windows []window, err error) {
	for i, ex := range exclusions {
		if ex.FullDay {
			if ex.StartTime != nil || ex.EndTime != nil {
				return false, nil, fmt.Errorf("%w: exclusions[%d] full_day must not have start_time/end_time",
					ErrInvalidInput, i)
			}
			if sameDate(ex.Date, date) {
				fullDay = true
			}
			continue
		}

		if ex.StartTime == nil || ex.EndTime == nil {
			return false, nil, fmt.Errorf("%w: exclusions[%d] start_time and end_time are required",
				ErrInvalidInput, i)
		}
		start, err := parseTime(fmt.Sprintf("exclusions[%d].start_time", i), *ex.StartTime)
		if err != nil {
			return false, nil, err
		}
		end, err := parseTime(fmt.Sprintf("exclusions[%d].end_time", i), *ex.EndTime)
		if err != nil {
			return false, nil, err
		}
		if start >= end {
			return false, nil, fmt.Errorf("%w: exclusions[%d] start_time=%s must be before end_time=%s",
				ErrInvalidInput, i, *ex.StartTime, *ex.EndTime)
		}

		if sameDate(ex.Date, date) {
			windows = append(windows, window{start: start, end: end})
		}
	}

	return fullDay, windows, nil
}

// buildItinerary оставляет подтвержденные показы агента на дату, отсортированные по времени
func buildItinerary(agentID int64, date time.Time, excludeID int64, appointments []Appointment) (itinerary, error) {
	it := make(itinerary, 0, len(appointments))

	for i, a := range appointments {
		start, err := parseTime(fmt.Sprintf("appointments[%d].time", i), a.Time)
		if err != nil {
			return nil, err
		}

		if a.Status != AppointmentConfirmed || a.AgentID != agentID || !sameDate(a.Date, date) {
			continue
		}
		if excludeID != 0 && a.ID == excludeID {
			continue
		}

		it = append(it, booking{id: a.ID, start: start, location: a.LocationKey})
	}

	sort.SliceStable(it, func(i, j int) bool {
		return it[i].start < it[j].start
	})

	return it, nil
}

// Weekday номер дня недели, 0 - понедельник
func Weekday(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
