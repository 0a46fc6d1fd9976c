package careplan

import (
	"fmt"
	"sort"
	"time"
)

const (
	// MaxEventsPerDay es la densidad máxima de un día.
	MaxEventsPerDay = 2
	// MinDaySpacing: dos días distintos con eventos deben estar a >= 7 días.
	MinDaySpacing = 7
	// MaxSearchSteps acota la búsqueda día a día por candidata.
	MaxSearchSteps = 365
)

// dayLedger es el conteo por día de un solo animal. Nunca se comparte.
type dayLedger struct {
	counts map[int64]int
}

func newDayLedger() *dayLedger {
	return &dayLedger{counts: make(map[int64]int)}
}

// acceptable: el día tiene lugar y ningún *otro* día usado cae a menos de
// MinDaySpacing días.
func (l *dayLedger) acceptable(day int64) bool {
	if l.counts[day] >= MaxEventsPerDay {
		return false
	}
	for delta := int64(1); delta < MinDaySpacing; delta++ {
		if l.counts[day-delta] > 0 || l.counts[day+delta] > 0 {
			return false
		}
	}
	return true
}

// place busca el primer día aceptable desde start. ok=false si no hay
// lugar dentro de MaxSearchSteps pasos.
func (l *dayLedger) place(start time.Time) (time.Time, int, bool) {
	start = CivilDate(start)
	for step := 0; step < MaxSearchSteps; step++ {
		d := start.AddDate(0, 0, step)
		if l.acceptable(dayNumber(d)) {
			return d, step, true
		}
	}
	return time.Time{}, 0, false
}

func (l *dayLedger) commit(d time.Time) {
	l.counts[dayNumber(d)]++
}

// Schedule asigna fecha final a cada candidata de un mismo animal.
// Las candidatas se procesan en orden ascendente de fecha (empate: orden
// de entrada). Las que no entran se descartan con un warning.
func Schedule(animalID string, candidates []Candidate) ([]ScheduledEvent, []Warning) {
	ordered := make([]Candidate, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Date.Equal(ordered[j].Date) {
			return ordered[i].Date.Before(ordered[j].Date)
		}
		return ordered[i].seq < ordered[j].seq
	})

	ledger := newDayLedger()
	events := make([]ScheduledEvent, 0, len(ordered))
	var warnings []Warning

	for _, c := range ordered {
		d, shifted, ok := ledger.place(c.Date)
		if !ok {
			date := CivilDate(c.Date)
			warnings = append(warnings, Warning{
				Code:     WarningSchedulingOverflow,
				AnimalID: animalID,
				Item:     c.Name,
				Date:     &date,
				Message:  fmt.Sprintf("no free day within %d days of %s", MaxSearchSteps, date.Format(DateLayout)),
			})
			continue
		}

		ledger.commit(d)
		events = append(events, ScheduledEvent{
			AnimalID:    animalID,
			Name:        c.Name,
			DueDate:     d,
			Priority:    c.Priority,
			Recurring:   c.Recurring,
			Kind:        c.Kind,
			Cycle:       c.Cycle,
			ShiftedDays: shifted,
		})
	}

	return events, warnings
}
