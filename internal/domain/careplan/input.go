package careplan

import (
	"fmt"
	"strings"
	"time"
)

// RawAnimal es el registro tal como llega de afuera (HTTP, archivo del CLI).
type RawAnimal struct {
	ID           string            `json:"id"`
	Species      string            `json:"species"`
	BirthDate    string            `json:"birth_date"`
	Administered []RawAdministered `json:"administered"`
}

type RawAdministered struct {
	Name     string `json:"name"`
	Priority string `json:"priority,omitempty"`
}

// ParseDate acepta YYYY-MM-DD o RFC3339.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// ParseProfile valida y convierte un RawAnimal. Prioridades desconocidas en
// administered se ignoran (el dato es opcional).
func ParseProfile(raw RawAnimal) (AnimalProfile, error) {
	if strings.TrimSpace(raw.Species) == "" {
		return AnimalProfile{ID: raw.ID}, fmt.Errorf("%w: species is required", ErrInvalidInput)
	}
	if strings.TrimSpace(raw.BirthDate) == "" {
		return AnimalProfile{ID: raw.ID}, fmt.Errorf("%w: birth_date is required", ErrInvalidInput)
	}
	bd, err := ParseDate(raw.BirthDate)
	if err != nil {
		return AnimalProfile{ID: raw.ID}, fmt.Errorf("%w: birth_date must be YYYY-MM-DD", ErrInvalidInput)
	}

	items := make([]AdministeredItem, 0, len(raw.Administered))
	for _, a := range raw.Administered {
		if strings.TrimSpace(a.Name) == "" {
			continue
		}
		p, _ := ParsePriority(a.Priority)
		items = append(items, AdministeredItem{Name: strings.TrimSpace(a.Name), Priority: p})
	}

	return AnimalProfile{
		ID:           strings.TrimSpace(raw.ID),
		Species:      NormalizeSpecies(raw.Species),
		BirthDate:    CivilDate(bd),
		Administered: items,
	}, nil
}
