package animals

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-preventive-care/internal/domain/careplan"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Animal
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Animal{}}
}

func (r *testRepo) Create(ctx context.Context, a Animal) error {
	if a.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Animal, error) {
	a, ok := r.byID[id]
	if !ok {
		return Animal{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) List(ctx context.Context) ([]Animal, error) {
	out := make([]Animal, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

func (r *testRepo) AddAdministered(ctx context.Context, animalID string, item Administered) error {
	a, ok := r.byID[animalID]
	if !ok {
		return ErrNotFound
	}
	a.Administered = append(a.Administered, item)
	r.byID[animalID] = a
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_NormalizesSpecies(t *testing.T) {
	svc := NewService(newTestRepo())

	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	a, err := svc.Create(context.Background(), CreateInput{Name: " Milo ", Species: " Dog "})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if a.ID == "" {
		t.Fatalf("expected generated id")
	}
	if a.Name != "Milo" || a.Species != "dog" {
		t.Fatalf("expected trimmed name and lower species, got %q %q", a.Name, a.Species)
	}
	if a.CreatedAt != now || a.UpdatedAt != now {
		t.Fatalf("expected CreatedAt/UpdatedAt to be now")
	}
}

func TestService_Create_RejectsMissingFields(t *testing.T) {
	svc := NewService(newTestRepo())

	cases := []CreateInput{
		{Species: "dog"},
		{Name: "Milo"},
		{Name: "Milo", Species: "dog", Administered: []Administered{{Name: " "}}},
	}
	for _, in := range cases {
		if _, err := svc.Create(context.Background(), in); err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", in, err)
		}
	}
}

func TestService_RecordAdministered(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	a, err := svc.Create(context.Background(), CreateInput{Name: "Milo", Species: "dog"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	updated, err := svc.RecordAdministered(context.Background(), a.ID, Administered{Name: " Rabies ", Priority: "Core"})
	if err != nil {
		t.Fatalf("RecordAdministered error: %v", err)
	}
	if len(updated.Administered) != 1 || updated.Administered[0].Name != "Rabies" {
		t.Fatalf("expected Rabies administered, got %#v", updated.Administered)
	}

	if _, err := svc.RecordAdministered(context.Background(), a.ID, Administered{Name: "X", Priority: "urgent"}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for bad priority, got %v", err)
	}
	if _, err := svc.RecordAdministered(context.Background(), "missing", Administered{Name: "X"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Profile(t *testing.T) {
	svc := NewService(newTestRepo())

	bd := time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC)
	a, err := svc.Create(context.Background(), CreateInput{
		Name:         "Milo",
		Species:      "Dog",
		BirthDate:    &bd,
		Administered: []Administered{{Name: "Parvovirus", Priority: "core"}},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	p, err := svc.Profile(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("Profile error: %v", err)
	}
	if p.Species != careplan.SpeciesDog {
		t.Fatalf("expected species dog, got %s", p.Species)
	}
	if !p.BirthDate.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected birth date truncated to day, got %s", p.BirthDate)
	}
	if len(p.Administered) != 1 || p.Administered[0].Priority != careplan.PriorityCore {
		t.Fatalf("unexpected administered: %#v", p.Administered)
	}
}

func TestService_Profile_Errors(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Profile(context.Background(), "missing")
	if !errors.Is(err, careplan.ErrAnimalNotFound) || !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrAnimalNotFound wrapping ErrNotFound, got %v", err)
	}

	a, err := svc.Create(context.Background(), CreateInput{Name: "Nemo", Species: "fish"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := svc.Profile(context.Background(), a.ID); !errors.Is(err, careplan.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without birth date, got %v", err)
	}
}
