package cli

import (
	"fmt"
	"sort"

	"pet-preventive-care/internal/domain/careplan"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [species]",
	Short: "Print the resolved preventive-care catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(); err != nil {
			return err
		}

		engine, err := openEngine()
		if err != nil {
			return err
		}
		resolver := engine.Resolver()

		var species []careplan.Species
		if len(args) == 1 {
			species = []careplan.Species{careplan.NormalizeSpecies(args[0])}
		} else {
			species = resolver.Species()
			sort.Slice(species, func(i, j int) bool { return species[i] < species[j] })
		}

		type speciesOutput struct {
			Species     careplan.Species              `json:"species"`
			Vaccines    []careplan.CatalogEntry       `json:"vaccines"`
			Medications []careplan.PeriodicMedication `json:"medications"`
		}

		out := make([]speciesOutput, 0, len(species))
		for _, sp := range species {
			out = append(out, speciesOutput{
				Species:     sp,
				Vaccines:    resolver.EntriesFor(sp),
				Medications: resolver.PeriodicMedicationsFor(sp),
			})
		}

		if formatFlag == "json" {
			return writeJSON(cmd.OutOrStdout(), out)
		}

		w := cmd.OutOrStdout()
		for _, so := range out {
			fmt.Fprintf(w, "== %s\n", so.Species)
			for _, v := range so.Vaccines {
				fmt.Fprintf(w, "  vaccine    %-20s %-10s %3dw recurring=%v\n", v.Name, v.Priority, v.OffsetWeeks, v.Recurring)
			}
			for _, m := range so.Medications {
				fmt.Fprintf(w, "  medication %-20s %-10s %3dw every %dw\n", m.Name, m.Priority, m.BaseOffsetWeeks, m.CadenceWeeks)
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(catalogCmd)
}
