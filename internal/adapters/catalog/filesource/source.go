// Package filesource carga el catálogo preventivo desde un archivo YAML/JSON
// (o el catálogo embebido por defecto) y lo convierte en careplan.Table.
package filesource

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"pet-preventive-care/internal/domain/careplan"
	"pet-preventive-care/internal/platform/config"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

var ErrInvalidCatalog = errors.New("invalid catalog")

type fileCatalog struct {
	Species map[string]fileSpecies `json:"species"`
}

type fileSpecies struct {
	Vaccines    []fileVaccine    `json:"vaccines"`
	Medications []fileMedication `json:"medications"`
}

type fileVaccine struct {
	Name        string `json:"name"`
	Priority    string `json:"priority"`
	Recurring   bool   `json:"recurring"`
	OffsetWeeks int    `json:"offset_weeks"`
}

type fileMedication struct {
	Name            string `json:"name"`
	Priority        string `json:"priority"` // opcional, default Important
	BaseOffsetWeeks int    `json:"base_offset_weeks"`
	CadenceWeeks    int    `json:"cadence_weeks"`
}

// Default devuelve el catálogo embebido.
func Default() (careplan.Table, error) {
	return Parse("default_catalog.yaml", defaultCatalog)
}

// Load lee path; vacío => Default().
func Load(path string) (careplan.Table, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(path, b)
}

// Parse decodifica (extensión de name decide YAML vs JSON) y valida.
func Parse(name string, data []byte) (careplan.Table, error) {
	var fc fileCatalog
	if err := config.DecodeStrict(name, data, &fc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if len(fc.Species) == 0 {
		return nil, fmt.Errorf("%w: no species configured", ErrInvalidCatalog)
	}

	table := make(careplan.Table, len(fc.Species))
	for rawSpecies, fs := range fc.Species {
		sp := careplan.NormalizeSpecies(rawSpecies)
		if sp == "" {
			return nil, fmt.Errorf("%w: empty species key", ErrInvalidCatalog)
		}
		if _, dup := table[sp]; dup {
			return nil, fmt.Errorf("%w: species %q configured twice", ErrInvalidCatalog, sp)
		}

		sc, err := toSpeciesCatalog(sp, fs)
		if err != nil {
			return nil, err
		}
		table[sp] = sc
	}
	return table, nil
}

func toSpeciesCatalog(sp careplan.Species, fs fileSpecies) (careplan.SpeciesCatalog, error) {
	var out careplan.SpeciesCatalog

	seen := map[string]struct{}{}
	for i, v := range fs.Vaccines {
		name := strings.TrimSpace(v.Name)
		if name == "" {
			return out, fmt.Errorf("%w: %s vaccine #%d has no name", ErrInvalidCatalog, sp, i)
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return out, fmt.Errorf("%w: %s vaccine %q duplicated", ErrInvalidCatalog, sp, name)
		}
		seen[key] = struct{}{}

		p, ok := careplan.ParsePriority(v.Priority)
		if !ok {
			return out, fmt.Errorf("%w: %s vaccine %q has unknown priority %q", ErrInvalidCatalog, sp, name, v.Priority)
		}
		if v.OffsetWeeks < 0 {
			return out, fmt.Errorf("%w: %s vaccine %q offset_weeks must be >= 0", ErrInvalidCatalog, sp, name)
		}

		out.Vaccines = append(out.Vaccines, careplan.CatalogEntry{
			Name:        name,
			Species:     sp,
			Priority:    p,
			Recurring:   v.Recurring,
			OffsetWeeks: v.OffsetWeeks,
		})
	}

	seen = map[string]struct{}{}
	for i, m := range fs.Medications {
		name := strings.TrimSpace(m.Name)
		if name == "" {
			return out, fmt.Errorf("%w: %s medication #%d has no name", ErrInvalidCatalog, sp, i)
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return out, fmt.Errorf("%w: %s medication %q duplicated", ErrInvalidCatalog, sp, name)
		}
		seen[key] = struct{}{}

		p := careplan.PriorityImportant
		if strings.TrimSpace(m.Priority) != "" {
			parsed, ok := careplan.ParsePriority(m.Priority)
			if !ok {
				return out, fmt.Errorf("%w: %s medication %q has unknown priority %q", ErrInvalidCatalog, sp, name, m.Priority)
			}
			p = parsed
		}
		if m.BaseOffsetWeeks < 0 {
			return out, fmt.Errorf("%w: %s medication %q base_offset_weeks must be >= 0", ErrInvalidCatalog, sp, name)
		}
		if m.CadenceWeeks <= 0 {
			return out, fmt.Errorf("%w: %s medication %q cadence_weeks must be > 0", ErrInvalidCatalog, sp, name)
		}

		out.Medications = append(out.Medications, careplan.PeriodicMedication{
			Name:            name,
			Species:         sp,
			Priority:        p,
			BaseOffsetWeeks: m.BaseOffsetWeeks,
			CadenceWeeks:    m.CadenceWeeks,
		})
	}

	return out, nil
}
