// Package cli implementa los comandos de carecal.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"pet-preventive-care/internal/adapters/catalog/filesource"
	"pet-preventive-care/internal/domain/careplan"
	"pet-preventive-care/internal/platform/logger"

	"github.com/spf13/cobra"
)

var (
	catalogPath string
	formatFlag  string
	logLevel    string
)

// RootCmd es el comando de nivel superior.
var RootCmd = &cobra.Command{
	Use:   "carecal",
	Short: "Calendario preventivo de mascotas",
	Long:  "Calcula fechas de vacunas y medicaciones periódicas a partir de especie, fecha de nacimiento e ítems aplicados.",

	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Catalog file (YAML/JSON). Default: $CATALOG_PATH or embedded catalog")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (stderr): debug, info, warn, error")
}

func getCatalogPath() string {
	if catalogPath != "" {
		return catalogPath
	}
	return os.Getenv("CATALOG_PATH")
}

func newLogger() logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(logLevel),
		Format: logger.FormatText,
		App:    "carecal",
		Out:    os.Stderr,
	})
}

// openEngine carga el catálogo; sin catálogo el comando no puede seguir.
func openEngine() (*careplan.Engine, error) {
	table, err := filesource.Load(getCatalogPath())
	if err != nil {
		return nil, err
	}
	resolver, err := careplan.NewResolver(table)
	if err != nil {
		return nil, err
	}
	return careplan.NewEngine(resolver), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func checkFormat() error {
	if formatFlag != "json" && formatFlag != "text" {
		return fmt.Errorf("unknown format %q (json or text)", formatFlag)
	}
	return nil
}
