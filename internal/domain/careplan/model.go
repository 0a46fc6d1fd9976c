package careplan

import (
	"strings"
	"time"
)

// Species identifica la especie de un animal en el catálogo.
// Siempre se guarda normalizada (minúsculas, sin espacios).
type Species string

const (
	SpeciesDog    Species = "dog"
	SpeciesCat    Species = "cat"
	SpeciesRabbit Species = "rabbit"
	SpeciesFish   Species = "fish"
)

// NormalizeSpecies acepta "Dog", " dog " etc.
func NormalizeSpecies(s string) Species {
	return Species(strings.ToLower(strings.TrimSpace(s)))
}

// Priority es el nivel de prioridad de un ítem preventivo.
// @Enum Core, Important, Seasonal, Rare
type Priority string

const (
	PriorityCore      Priority = "Core"
	PriorityImportant Priority = "Important"
	PrioritySeasonal  Priority = "Seasonal"
	PriorityRare      Priority = "Rare"
)

// Rank define el orden de desempate (Core primero).
func (p Priority) Rank() int {
	switch p {
	case PriorityCore:
		return 0
	case PriorityImportant:
		return 1
	case PrioritySeasonal:
		return 2
	case PriorityRare:
		return 3
	default:
		return 4
	}
}

func ParsePriority(s string) (Priority, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "core":
		return PriorityCore, true
	case "important":
		return PriorityImportant, true
	case "seasonal":
		return PrioritySeasonal, true
	case "rare":
		return PriorityRare, true
	default:
		return "", false
	}
}

type Kind string

const (
	KindVaccine    Kind = "vaccine"
	KindMedication Kind = "medication"
)

// CatalogEntry es la definición estática de una vacuna para una especie.
type CatalogEntry struct {
	Name        string   `json:"name"`
	Species     Species  `json:"species"`
	Priority    Priority `json:"priority"`
	Recurring   bool     `json:"recurring"`
	OffsetWeeks int      `json:"offset_weeks"` // edad mínima (semanas desde el nacimiento)
}

// PeriodicMedication es un ítem no-vacuna con cadencia fija.
// Siempre es recurrente.
type PeriodicMedication struct {
	Name            string   `json:"name"`
	Species         Species  `json:"species"`
	Priority        Priority `json:"priority"`
	BaseOffsetWeeks int      `json:"base_offset_weeks"`
	CadenceWeeks    int      `json:"cadence_weeks"`
}

type SpeciesCatalog struct {
	Vaccines    []CatalogEntry
	Medications []PeriodicMedication
}

// Table es la configuración inmutable por especie.
type Table map[Species]SpeciesCatalog

// AdministeredItem es un ítem que ya se aplicó al animal.
// Priority es opcional (se registra tal como vino).
type AdministeredItem struct {
	Name     string
	Priority Priority
}

// AnimalProfile es el snapshot de solo lectura que consume el motor.
type AnimalProfile struct {
	ID           string
	Species      Species
	BirthDate    time.Time
	Administered []AdministeredItem
}

// Candidate es una fecha calculada antes de resolver conflictos.
type Candidate struct {
	Name      string
	Priority  Priority
	Recurring bool
	Kind      Kind
	Cycle     int
	Date      time.Time

	seq int // orden de catálogo, para desempate estable
}

// ScheduledEvent es la unidad de salida del motor.
type ScheduledEvent struct {
	AnimalID    string
	Name        string
	DueDate     time.Time
	Priority    Priority
	Recurring   bool
	Kind        Kind
	Cycle       int
	ShiftedDays int // cuántos días se corrió respecto de la fecha candidata
}

type WarningCode string

const (
	WarningSchedulingOverflow WarningCode = "scheduling_overflow"
	WarningInvalidInput       WarningCode = "invalid_input"
)

type Warning struct {
	Code     WarningCode
	AnimalID string
	Item     string
	Date     *time.Time
	Message  string
}

// Result es el calendario de un animal (posiblemente con warnings).
type Result struct {
	AnimalID string
	Events   []ScheduledEvent
	Warnings []Warning
}
