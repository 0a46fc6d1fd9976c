package careplan

import (
	"strings"
	"time"
)

const DefaultHorizonCycles = 4

// MaxHorizonCycles acota cuántos ciclos futuros se proyectan por ítem.
const MaxHorizonCycles = 52

// AdministeredSet son los nombres ya aplicados, normalizados.
type AdministeredSet map[string]struct{}

func NewAdministeredSet(items []AdministeredItem) AdministeredSet {
	set := make(AdministeredSet, len(items))
	for _, it := range items {
		if k := normalizeName(it.Name); k != "" {
			set[k] = struct{}{}
		}
	}
	return set
}

func (s AdministeredSet) Has(name string) bool {
	_, ok := s[normalizeName(name)]
	return ok
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Project calcula las fechas candidatas de una vacuna.
//
// No recurrente: a lo sumo una candidata, y solo si no fue aplicada y su
// fecha de elegibilidad es posterior a ref (vencidas no se re-agendan).
// Recurrente: una candidata por ciclo anual futuro dentro del horizonte,
// aunque ya se haya aplicado alguna dosis.
func Project(entry CatalogEntry, birthDate time.Time, administered AdministeredSet, ref time.Time, horizonCycles int) []Candidate {
	eligibility := addWeeks(CivilDate(birthDate), entry.OffsetWeeks)

	if !entry.Recurring {
		if administered.Has(entry.Name) {
			return nil
		}
		if !isAfter(eligibility, ref) {
			return nil
		}
		return []Candidate{vaccineCandidate(entry, 0, eligibility)}
	}

	out := make([]Candidate, 0, horizonCycles)
	for i := 0; i < horizonCycles; i++ {
		d := eligibility.AddDate(i, 0, 0)
		if isAfter(d, ref) {
			out = append(out, vaccineCandidate(entry, i, d))
		}
	}
	return out
}

// ProjectMedication: eligibility = nacimiento + base + ciclo*cadencia.
func ProjectMedication(med PeriodicMedication, birthDate time.Time, ref time.Time, horizonCycles int) []Candidate {
	base := CivilDate(birthDate)

	out := make([]Candidate, 0, horizonCycles)
	for i := 0; i < horizonCycles; i++ {
		d := addWeeks(base, med.BaseOffsetWeeks+i*med.CadenceWeeks)
		if !isAfter(d, ref) {
			continue
		}
		out = append(out, Candidate{
			Name:      med.Name,
			Priority:  med.Priority,
			Recurring: true,
			Kind:      KindMedication,
			Cycle:     i,
			Date:      d,
		})
	}
	return out
}

func vaccineCandidate(entry CatalogEntry, cycle int, d time.Time) Candidate {
	return Candidate{
		Name:      entry.Name,
		Priority:  entry.Priority,
		Recurring: entry.Recurring,
		Kind:      KindVaccine,
		Cycle:     cycle,
		Date:      d,
	}
}
