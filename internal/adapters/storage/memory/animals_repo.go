package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-preventive-care/internal/domain/animals"
)

// ErrNotFound es el mismo sentinel del dominio, así errors.Is funciona
// sin importar qué adapter esté detrás.
var ErrNotFound = animals.ErrNotFound

type animalRepo struct {
	mu   sync.RWMutex
	byID map[string]animals.Animal
}

func NewAnimalRepo() animals.Repository {
	return &animalRepo{
		byID: make(map[string]animals.Animal),
	}
}

func (r *animalRepo) Create(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("animal id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("animal already exists")
	}
	r.byID[a.ID] = clone(a)
	return nil
}

func (r *animalRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, ErrNotFound
	}
	return clone(a), nil
}

func (r *animalRepo) List(ctx context.Context) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, clone(a))
	}

	// Orden estable por created_at asc (solo para consistencia en dev)
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *animalRepo) AddAdministered(ctx context.Context, animalID string, item animals.Administered) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[animalID]
	if !ok {
		return ErrNotFound
	}
	a.Administered = append(append([]animals.Administered(nil), a.Administered...), item)
	r.byID[animalID] = a
	return nil
}

// clone evita que quien llama comparta el slice guardado.
func clone(a animals.Animal) animals.Animal {
	a.Administered = append([]animals.Administered(nil), a.Administered...)
	return a
}
