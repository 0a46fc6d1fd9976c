package careplan_test

import (
	"testing"

	"pet-preventive-care/internal/domain/careplan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResolver_EmptyTable_IsCatalogMissing(t *testing.T) {
	_, err := careplan.NewResolver(nil)
	require.ErrorIs(t, err, careplan.ErrCatalogMissing)

	_, err = careplan.NewResolver(careplan.Table{})
	require.ErrorIs(t, err, careplan.ErrCatalogMissing)
}

func TestResolver_LookupIsCaseInsensitiveAndOrdered(t *testing.T) {
	r, err := careplan.NewResolver(twoVaccineDogTable())
	require.NoError(t, err)

	entries := r.EntriesFor("Dog")
	require.Len(t, entries, 2)
	assert.Equal(t, "Parvovirus", entries[0].Name)
	assert.Equal(t, "Distemper", entries[1].Name)
	assert.Equal(t, careplan.SpeciesDog, entries[0].Species)
}

func TestResolver_UnknownSpecies_EmptyNotError(t *testing.T) {
	r, err := careplan.NewResolver(twoVaccineDogTable())
	require.NoError(t, err)

	assert.Empty(t, r.EntriesFor("hamster"))
	assert.Empty(t, r.PeriodicMedicationsFor("hamster"))
}

func TestResolver_IsImmutable(t *testing.T) {
	table := twoVaccineDogTable()
	r, err := careplan.NewResolver(table)
	require.NoError(t, err)

	// mutar la tabla de entrada no afecta al resolver
	table[careplan.SpeciesDog].Vaccines[0].Name = "changed"
	assert.Equal(t, "Parvovirus", r.EntriesFor(careplan.SpeciesDog)[0].Name)

	// mutar lo devuelto tampoco
	got := r.EntriesFor(careplan.SpeciesDog)
	got[0].Name = "changed"
	assert.Equal(t, "Parvovirus", r.EntriesFor(careplan.SpeciesDog)[0].Name)
}

func TestResolver_MedicationPriorityDefaultsToImportant(t *testing.T) {
	r, err := careplan.NewResolver(careplan.Table{
		"Cat": {Medications: []careplan.PeriodicMedication{{Name: "Hairball Remedy", BaseOffsetWeeks: 24, CadenceWeeks: 12}}},
	})
	require.NoError(t, err)

	meds := r.PeriodicMedicationsFor(careplan.SpeciesCat)
	require.Len(t, meds, 1)
	assert.Equal(t, careplan.PriorityImportant, meds[0].Priority)
}
