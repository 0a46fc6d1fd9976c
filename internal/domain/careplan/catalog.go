package careplan

import (
	"errors"
	"fmt"
)

var (
	ErrCatalogMissing = errors.New("catalog missing")
	ErrInvalidInput   = errors.New("invalid input")
	ErrAnimalNotFound = errors.New("animal not found")
)

// Resolver es un lookup puro especie -> catálogo.
// La tabla se copia al construir, así nadie la puede mutar después.
type Resolver struct {
	table Table
}

func NewResolver(table Table) (*Resolver, error) {
	if len(table) == 0 {
		return nil, ErrCatalogMissing
	}

	copied := make(Table, len(table))
	for sp, c := range table {
		key := NormalizeSpecies(string(sp))
		if key == "" {
			return nil, fmt.Errorf("%w: empty species key", ErrInvalidInput)
		}

		vaccines := make([]CatalogEntry, len(c.Vaccines))
		copy(vaccines, c.Vaccines)
		for i := range vaccines {
			vaccines[i].Species = key
		}

		meds := make([]PeriodicMedication, len(c.Medications))
		copy(meds, c.Medications)
		for i := range meds {
			meds[i].Species = key
			if meds[i].Priority == "" {
				meds[i].Priority = PriorityImportant
			}
		}

		copied[key] = SpeciesCatalog{Vaccines: vaccines, Medications: meds}
	}

	return &Resolver{table: copied}, nil
}

// EntriesFor devuelve las vacunas en orden de catálogo.
// Especie desconocida => lista vacía (no es error).
func (r *Resolver) EntriesFor(species Species) []CatalogEntry {
	c, ok := r.table[NormalizeSpecies(string(species))]
	if !ok {
		return nil
	}
	out := make([]CatalogEntry, len(c.Vaccines))
	copy(out, c.Vaccines)
	return out
}

func (r *Resolver) PeriodicMedicationsFor(species Species) []PeriodicMedication {
	c, ok := r.table[NormalizeSpecies(string(species))]
	if !ok {
		return nil
	}
	out := make([]PeriodicMedication, len(c.Medications))
	copy(out, c.Medications)
	return out
}

// Species lista las especies configuradas (orden no garantizado).
func (r *Resolver) Species() []Species {
	out := make([]Species, 0, len(r.table))
	for sp := range r.table {
		out = append(out, sp)
	}
	return out
}
