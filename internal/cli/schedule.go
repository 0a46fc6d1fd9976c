package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"pet-preventive-care/internal/domain/careplan"
	"pet-preventive-care/internal/platform/config"

	"github.com/spf13/cobra"
)

var (
	animalsFile string
	atFlag      string
	horizonFlag int
	limitFlag   int
	workersFlag int
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Build the preventive-care schedule for every animal in a file",
	Long: `Reads a YAML or JSON list of animals:

  - id: milo
    species: dog
    birth_date: 2024-01-01
    administered: [{name: Parvovirus}]

and prints one schedule per animal. Invalid records are reported and skipped.`,
	RunE: runSchedule,
}

func init() {
	scheduleCmd.Flags().StringVar(&animalsFile, "file", "", "Animals file (YAML/JSON, required)")
	scheduleCmd.Flags().StringVar(&atFlag, "at", "", "Reference date (YYYY-MM-DD or RFC3339). Default: now")
	scheduleCmd.Flags().IntVar(&horizonFlag, "horizon", careplan.DefaultHorizonCycles, "Future cycles per recurring item")
	scheduleCmd.Flags().IntVar(&limitFlag, "limit", 0, "Keep only the first K events per animal (0 = all)")
	scheduleCmd.Flags().IntVar(&workersFlag, "workers", 0, "Animals processed in parallel (0 = default)")
	_ = scheduleCmd.MarkFlagRequired("file")
	RootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	if err := checkFormat(); err != nil {
		return err
	}

	ref := time.Now()
	if strings.TrimSpace(atFlag) != "" {
		t, err := careplan.ParseDate(atFlag)
		if err != nil {
			return fmt.Errorf("--at must be YYYY-MM-DD or RFC3339: %w", err)
		}
		ref = t
	}

	inputs, err := readAnimals(animalsFile)
	if err != nil {
		return err
	}

	engine, err := openEngine()
	if err != nil {
		return err
	}

	svc := careplan.NewService(engine, careplan.ServiceOptions{
		Logger:         newLogger(),
		DefaultHorizon: horizonFlag,
	})
	results := careplan.NewBatchRunner(svc, workersFlag).Run(cmd.Context(), inputs, ref, horizonFlag)

	if formatFlag == "text" {
		return printScheduleText(cmd.OutOrStdout(), results, limitFlag)
	}
	return writeJSON(cmd.OutOrStdout(), toScheduleOutput(results, limitFlag))
}

func readAnimals(path string) ([]careplan.RawAnimal, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read animals: %w", err)
	}
	var out []careplan.RawAnimal
	if err := config.DecodeStrict(path, b, &out); err != nil {
		return nil, fmt.Errorf("parse animals: %w", err)
	}
	return out, nil
}

type eventOutput struct {
	Name      string            `json:"name"`
	DueDate   string            `json:"due_date"`
	Priority  careplan.Priority `json:"priority"`
	Recurring bool              `json:"recurring"`
	Kind      careplan.Kind     `json:"kind"`
}

type animalOutput struct {
	AnimalID string        `json:"animal_id"`
	Events   []eventOutput `json:"events"`
	Warnings []string      `json:"warnings"`
	Error    string        `json:"error,omitempty"`
}

func toScheduleOutput(results []careplan.BatchResult, limit int) []animalOutput {
	out := make([]animalOutput, 0, len(results))
	for _, r := range results {
		ao := animalOutput{
			AnimalID: r.AnimalID,
			Events:   make([]eventOutput, 0),
			Warnings: make([]string, 0, len(r.Warnings)),
		}
		for _, e := range careplan.Preview(r.Events, limit) {
			ao.Events = append(ao.Events, eventOutput{
				Name:      e.Name,
				DueDate:   e.DueDate.Format(careplan.DateLayout),
				Priority:  e.Priority,
				Recurring: e.Recurring,
				Kind:      e.Kind,
			})
		}
		for _, w := range r.Warnings {
			ao.Warnings = append(ao.Warnings, fmt.Sprintf("%s: %s", w.Code, w.Message))
		}
		if r.Err != nil {
			ao.Error = r.Err.Error()
		}
		out = append(out, ao)
	}
	return out
}

func printScheduleText(w io.Writer, results []careplan.BatchResult, limit int) error {
	for _, r := range results {
		fmt.Fprintf(w, "== %s\n", r.AnimalID)
		if r.Err != nil {
			fmt.Fprintf(w, "  skipped: %v\n", r.Err)
			continue
		}
		for _, e := range careplan.Preview(r.Events, limit) {
			mark := " "
			if e.Recurring {
				mark = "*"
			}
			fmt.Fprintf(w, "  %s %s %-10s %s\n", e.DueDate.Format(careplan.DateLayout), mark, e.Priority, e.Name)
		}
		for _, wr := range r.Warnings {
			fmt.Fprintf(w, "  warning: %s %s\n", wr.Code, wr.Message)
		}
	}
	return nil
}
