package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tolga/wagecalc/internal/config"
	"github.com/tolga/wagecalc/internal/repository"
	"github.com/tolga/wagecalc/internal/wageservice"
)

func newComputeCmd(cfg *config.Config) *cobra.Command {
	var personID string
	var year, month int

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Print monthly wage totals for one person",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newWageService(cfg)
			if err != nil {
				return err
			}
			id, err := uuid.Parse(personID)
			if err != nil {
				return fmt.Errorf("invalid --person: %w", err)
			}
			totals, err := svc.ComputeMonthlyTotals(context.Background(), id, year, month)
			if err != nil {
				return err
			}
			return printJSON(totals)
		},
	}
	cmd.Flags().StringVar(&personID, "person", "", "person id (uuid)")
	cmd.Flags().IntVar(&year, "year", 0, "target year")
	cmd.Flags().IntVar(&month, "month", 0, "target month (1-12)")
	_ = cmd.MarkFlagRequired("person")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("month")
	return cmd
}

func newSegmentsCmd(cfg *config.Config) *cobra.Command {
	var personID string
	var year, month int

	cmd := &cobra.Command{
		Use:   "segments",
		Short: "Print the per-day segment breakdown for one person",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newWageService(cfg)
			if err != nil {
				return err
			}
			id, err := uuid.Parse(personID)
			if err != nil {
				return fmt.Errorf("invalid --person: %w", err)
			}
			views, err := svc.GetDailySegments(context.Background(), id, year, month)
			if err != nil {
				return err
			}
			return printJSON(views)
		},
	}
	cmd.Flags().StringVar(&personID, "person", "", "person id (uuid)")
	cmd.Flags().IntVar(&year, "year", 0, "target year")
	cmd.Flags().IntVar(&month, "month", 0, "target month (1-12)")
	_ = cmd.MarkFlagRequired("person")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("month")
	return cmd
}

func newWageService(cfg *config.Config) (*wageservice.WageService, error) {
	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return wageservice.New(
		repository.NewReportRepository(db),
		repository.NewShiftKindRepository(db),
		repository.NewApartmentRepository(db),
		repository.NewPersonRepository(db),
		repository.NewStandbyRateRepository(db),
		repository.NewShiftHousingRateRepository(db),
		repository.NewSabbathTimesRepository(db),
		repository.NewMinimumWageRepository(db),
		cfg.MinimumWageFallback,
	), nil
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
