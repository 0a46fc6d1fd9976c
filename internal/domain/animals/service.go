package animals

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-preventive-care/internal/domain/careplan"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name         string
	Species      string
	BirthDate    *time.Time
	Administered []Administered
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Animal, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Animal{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Species) == "" {
		return Animal{}, ErrInvalidInput
	}

	items := make([]Administered, 0, len(in.Administered))
	for _, it := range in.Administered {
		it.Name = strings.TrimSpace(it.Name)
		if it.Name == "" {
			return Animal{}, ErrInvalidInput
		}
		it.Priority = strings.TrimSpace(it.Priority)
		items = append(items, it)
	}

	now := s.now()
	a := Animal{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Species:      strings.ToLower(strings.TrimSpace(in.Species)),
		BirthDate:    in.BirthDate,
		Administered: items,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Animal, error) {
	return s.repo.List(ctx)
}

// RecordAdministered agrega un ítem aplicado y devuelve el animal actualizado.
func (s *Service) RecordAdministered(ctx context.Context, animalID string, item Administered) (Animal, error) {
	item.Name = strings.TrimSpace(item.Name)
	item.Priority = strings.TrimSpace(item.Priority)
	if item.Name == "" {
		return Animal{}, ErrInvalidInput
	}
	if item.Priority != "" {
		if _, ok := careplan.ParsePriority(item.Priority); !ok {
			return Animal{}, ErrInvalidInput
		}
	}

	if _, err := s.GetByID(ctx, animalID); err != nil {
		return Animal{}, err
	}
	if err := s.repo.AddAdministered(ctx, animalID, item); err != nil {
		return Animal{}, err
	}
	return s.repo.GetByID(ctx, animalID)
}

// Profile implementa careplan.ProfileSource.
// Sin birth_date no hay calendario posible => invalid input.
func (s *Service) Profile(ctx context.Context, animalID string) (careplan.AnimalProfile, error) {
	a, err := s.GetByID(ctx, animalID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return careplan.AnimalProfile{}, fmt.Errorf("%w: %w", careplan.ErrAnimalNotFound, err)
		}
		return careplan.AnimalProfile{}, err
	}
	if a.BirthDate == nil {
		return careplan.AnimalProfile{}, fmt.Errorf("%w: animal %s has no birth_date", careplan.ErrInvalidInput, a.ID)
	}

	items := make([]careplan.AdministeredItem, 0, len(a.Administered))
	for _, it := range a.Administered {
		p, _ := careplan.ParsePriority(it.Priority)
		items = append(items, careplan.AdministeredItem{Name: it.Name, Priority: p})
	}

	return careplan.AnimalProfile{
		ID:           a.ID,
		Species:      careplan.NormalizeSpecies(a.Species),
		BirthDate:    careplan.CivilDate(*a.BirthDate),
		Administered: items,
	}, nil
}
