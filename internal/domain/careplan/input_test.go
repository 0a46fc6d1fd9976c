package careplan_test

import (
	"testing"

	"pet-preventive-care/internal/domain/careplan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfile_OK(t *testing.T) {
	p, err := careplan.ParseProfile(careplan.RawAnimal{
		ID:        " a1 ",
		Species:   " Dog ",
		BirthDate: "2024-01-01",
		Administered: []careplan.RawAdministered{
			{Name: "Parvovirus", Priority: "core"},
			{Name: "  "},
			{Name: "Unknown", Priority: "whatever"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "a1", p.ID)
	assert.Equal(t, careplan.SpeciesDog, p.Species)
	assert.Equal(t, date(2024, 1, 1), p.BirthDate)
	require.Len(t, p.Administered, 2)
	assert.Equal(t, careplan.PriorityCore, p.Administered[0].Priority)
	assert.Empty(t, p.Administered[1].Priority)
}

func TestParseProfile_RFC3339BirthDate_TruncatedToDay(t *testing.T) {
	p, err := careplan.ParseProfile(careplan.RawAnimal{ID: "a1", Species: "cat", BirthDate: "2024-01-01T18:45:00Z"})

	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 1), p.BirthDate)
}

func TestParseProfile_Invalid(t *testing.T) {
	cases := map[string]careplan.RawAnimal{
		"missing species":    {ID: "a1", BirthDate: "2024-01-01"},
		"missing birth date": {ID: "a1", Species: "dog"},
		"bad birth date":     {ID: "a1", Species: "dog", BirthDate: "01/01/2024"},
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			p, err := careplan.ParseProfile(raw)
			require.ErrorIs(t, err, careplan.ErrInvalidInput)
			assert.Equal(t, "a1", p.ID)
		})
	}
}

func TestParsePriority(t *testing.T) {
	p, ok := careplan.ParsePriority(" seasonal ")
	assert.True(t, ok)
	assert.Equal(t, careplan.PrioritySeasonal, p)

	_, ok = careplan.ParsePriority("urgent")
	assert.False(t, ok)

	assert.Less(t, careplan.PriorityCore.Rank(), careplan.PriorityImportant.Rank())
	assert.Less(t, careplan.PriorityImportant.Rank(), careplan.PrioritySeasonal.Rank())
	assert.Less(t, careplan.PrioritySeasonal.Rank(), careplan.PriorityRare.Rank())
	assert.Less(t, careplan.PriorityRare.Rank(), careplan.Priority("other").Rank())
}
