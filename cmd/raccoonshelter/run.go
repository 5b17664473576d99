package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ChicagoDave/raccoonshelter/internal/logger"
	"github.com/ChicagoDave/raccoonshelter/internal/server"
	"github.com/ChicagoDave/raccoonshelter/pkg/cost"
	"github.com/ChicagoDave/raccoonshelter/pkg/spec"
	"github.com/ChicagoDave/raccoonshelter/pkg/validation"
)

const serviceName = "raccoonshelter"

func newLogger(cmd *cobra.Command, level string) *slog.Logger {
	return logger.New(level, serviceName, cmd.ErrOrStderr())
}

// buildAndValidate loads the built-in price sheet, builds the model and
// checks it.
func buildAndValidate(log *slog.Logger) (*cost.Model, *validation.Report, error) {
	s, err := spec.Default()
	if err != nil {
		return nil, nil, err
	}
	log.Debug("price sheet loaded", "version", s.SpecVersion, "currency", s.Currency, "raccoons", s.Raccoons.Count)

	model := cost.Build(s)
	report := validation.ValidateModel(model)
	log.Debug("model built", "categories", model.Len(), "validation", report.Summary)
	return model, report, nil
}

func runReport(w, errW io.Writer, log *slog.Logger, jsonOut bool) error {
	model, report, err := buildAndValidate(log)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(errW, report)
		return fmt.Errorf("cost model failed validation: %w", report.Err())
	}

	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(model.Report())
	}
	return printCostReport(w, model)
}

func runValidate(w io.Writer, log *slog.Logger) error {
	_, report, err := buildAndValidate(log)
	if err != nil {
		return err
	}
	printValidationReport(w, report)
	return report.Err()
}

func runServe(ctx context.Context, port int, log *slog.Logger) error {
	s, err := spec.Default()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(s, port, log).Start(ctx)
}
