package careplan_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"pet-preventive-care/internal/domain/careplan"
	"pet-preventive-care/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfiles map[string]careplan.AnimalProfile

func (f fakeProfiles) Profile(_ context.Context, id string) (careplan.AnimalProfile, error) {
	p, ok := f[id]
	if !ok {
		return careplan.AnimalProfile{}, fmt.Errorf("%w: %s", careplan.ErrAnimalNotFound, id)
	}
	return p, nil
}

func TestService_ScheduleFor(t *testing.T) {
	svc := careplan.NewService(mustEngine(t, twoVaccineDogTable()), careplan.ServiceOptions{
		Profiles: fakeProfiles{
			"dog-1": {ID: "dog-1", Species: careplan.SpeciesDog, BirthDate: date(2024, 1, 1)},
		},
	})

	res, err := svc.ScheduleFor(context.Background(), "dog-1", date(2024, 1, 1), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Parvovirus", "Distemper"}, eventNames(res.Events))

	_, err = svc.ScheduleFor(context.Background(), "missing", date(2024, 1, 1), 0)
	assert.True(t, errors.Is(err, careplan.ErrAnimalNotFound))
}

func TestService_ScheduleFor_WithoutProfiles(t *testing.T) {
	svc := careplan.NewService(mustEngine(t, twoVaccineDogTable()), careplan.ServiceOptions{})

	_, err := svc.ScheduleFor(context.Background(), "dog-1", date(2024, 1, 1), 0)
	assert.ErrorIs(t, err, careplan.ErrInvalidInput)
}

func TestService_DefaultHorizon(t *testing.T) {
	table := careplan.Table{
		careplan.SpeciesCat: {Vaccines: []careplan.CatalogEntry{
			{Name: "Rabies", Priority: careplan.PriorityCore, Recurring: true, OffsetWeeks: 12},
		}},
	}
	svc := careplan.NewService(mustEngine(t, table), careplan.ServiceOptions{DefaultHorizon: 2})
	cat := careplan.AnimalProfile{ID: "c", Species: careplan.SpeciesCat, BirthDate: date(2024, 1, 1)}

	res, err := svc.Build(context.Background(), cat, date(2024, 1, 1), 0)
	require.NoError(t, err)
	assert.Len(t, res.Events, 2)

	res, err = svc.Build(context.Background(), cat, date(2024, 1, 1), 5)
	require.NoError(t, err)
	assert.Len(t, res.Events, 5)
}

func TestService_LogsOverflowWarnings(t *testing.T) {
	vaccines := make([]careplan.CatalogEntry, 0, 110)
	for i := 0; i < 110; i++ {
		vaccines = append(vaccines, careplan.CatalogEntry{
			Name: fmt.Sprintf("V%03d", i), Priority: careplan.PriorityRare, OffsetWeeks: 10,
		})
	}
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Warn, Format: logger.FormatJSON, Out: &buf})
	svc := careplan.NewService(mustEngine(t, careplan.Table{careplan.SpeciesDog: {Vaccines: vaccines}}),
		careplan.ServiceOptions{Logger: log})

	res, err := svc.Build(context.Background(),
		careplan.AnimalProfile{ID: "dog-1", Species: careplan.SpeciesDog, BirthDate: date(2024, 1, 1)},
		date(2024, 1, 1), 0)

	require.NoError(t, err)
	assert.Len(t, res.Warnings, 4)
	assert.Equal(t, 4, bytes.Count(buf.Bytes(), []byte(`"scheduling overflow"`)))
	assert.Contains(t, buf.String(), `"component":"careplan"`)
	assert.NotContains(t, buf.String(), "schedule built")
}
