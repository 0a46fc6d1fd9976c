package careplan

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Engine arma el calendario preventivo de un animal. No tiene estado
// mutable: se puede llamar en paralelo para animales distintos.
type Engine struct {
	resolver *Resolver
}

func NewEngine(resolver *Resolver) *Engine {
	return &Engine{resolver: resolver}
}

func (e *Engine) Resolver() *Resolver { return e.resolver }

// Validate revisa lo mínimo que necesita Build.
func Validate(animal AnimalProfile, horizonCycles int) error {
	if strings.TrimSpace(string(animal.Species)) == "" {
		return fmt.Errorf("%w: species is required", ErrInvalidInput)
	}
	if animal.BirthDate.IsZero() {
		return fmt.Errorf("%w: birth_date is required", ErrInvalidInput)
	}
	if horizonCycles > MaxHorizonCycles {
		return fmt.Errorf("%w: horizon_cycles must be <= %d", ErrInvalidInput, MaxHorizonCycles)
	}
	return nil
}

// Build: resolver -> proyectar -> resolver conflictos -> ordenar.
// horizonCycles <= 0 usa DefaultHorizonCycles.
func (e *Engine) Build(animal AnimalProfile, ref time.Time, horizonCycles int) (Result, error) {
	if horizonCycles <= 0 {
		horizonCycles = DefaultHorizonCycles
	}
	if err := Validate(animal, horizonCycles); err != nil {
		return Result{AnimalID: animal.ID}, err
	}

	candidates := e.Candidates(animal, ref, horizonCycles)
	events, warnings := Schedule(animal.ID, candidates)
	SortEvents(events)

	return Result{
		AnimalID: animal.ID,
		Events:   events,
		Warnings: warnings,
	}, nil
}

// Candidates proyecta vacunas y medicaciones en un único lote
// (comparten la misma restricción de densidad).
func (e *Engine) Candidates(animal AnimalProfile, ref time.Time, horizonCycles int) []Candidate {
	administered := NewAdministeredSet(animal.Administered)

	var out []Candidate
	seq := 0
	for _, entry := range e.resolver.EntriesFor(animal.Species) {
		for _, c := range Project(entry, animal.BirthDate, administered, ref, horizonCycles) {
			c.seq = seq
			seq++
			out = append(out, c)
		}
	}
	for _, med := range e.resolver.PeriodicMedicationsFor(animal.Species) {
		for _, c := range ProjectMedication(med, animal.BirthDate, ref, horizonCycles) {
			c.seq = seq
			seq++
			out = append(out, c)
		}
	}
	return out
}

// SortEvents ordena por fecha, luego prioridad (Core..Rare), luego nombre.
func SortEvents(events []ScheduledEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.DueDate.Equal(b.DueDate) {
			return a.DueDate.Before(b.DueDate)
		}
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() < b.Priority.Rank()
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Cycle < b.Cycle
	})
}

// Preview trunca un calendario ya ordenado a los primeros k eventos.
// k <= 0 devuelve todo.
func Preview(events []ScheduledEvent, k int) []ScheduledEvent {
	if k <= 0 || len(events) <= k {
		return events
	}
	return events[:k]
}
