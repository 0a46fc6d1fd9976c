package careplan_test

import (
	"testing"
	"time"

	"pet-preventive-care/internal/domain/careplan"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustEngine(t *testing.T, table careplan.Table) *careplan.Engine {
	t.Helper()
	r, err := careplan.NewResolver(table)
	require.NoError(t, err)
	return careplan.NewEngine(r)
}

func twoVaccineDogTable() careplan.Table {
	return careplan.Table{
		careplan.SpeciesDog: {
			Vaccines: []careplan.CatalogEntry{
				{Name: "Parvovirus", Priority: careplan.PriorityCore, OffsetWeeks: 6},
				{Name: "Distemper", Priority: careplan.PriorityCore, OffsetWeeks: 8},
			},
		},
	}
}

func eventNames(events []careplan.ScheduledEvent) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Name)
	}
	return out
}
