package main

import (
	"fmt"

	"github.com/blaisecz/glucose-dashboard/internal/analysis"
	"github.com/blaisecz/glucose-dashboard/internal/domain"
	"github.com/spf13/cobra"
)

func newHistogramCmd(opts *rootOptions) *cobra.Command {
	var (
		patients []string
		tag      string
	)

	cmd := &cobra.Command{
		Use:   "histogram",
		Short: "Print the carbohydrate distribution chart as JSON",
		Example: `  glucosectl histogram
  glucosectl histogram --patient 001 --patient 004 --tag breakfast`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := chartConfig()
			if err != nil {
				return err
			}
			ds, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}

			query := domain.ChartQuery{Tag: tag, PatientIDs: patients}
			for _, pid := range query.Selection().SelectedPatientIDs {
				if !ds.KnowsPatient(pid) {
					return fmt.Errorf("patient %q: %w", pid, domain.ErrNotFound)
				}
			}
			chart := analysis.BuildCarbChart(ds.Meals, query.Selection(), cfg)
			return printJSON(cmd.OutOrStdout(), chart)
		},
	}

	cmd.Flags().StringSliceVarP(&patients, "patient", "p", nil, "selected patient IDs")
	cmd.Flags().StringVarP(&tag, "tag", "t", domain.AllTagsValue, "meal tag (only applied with --patient)")
	return cmd
}

func newResponseCmd(opts *rootOptions) *cobra.Command {
	var (
		patient string
		tag     string
	)

	cmd := &cobra.Command{
		Use:   "response",
		Short: "Print the averaged post-meal glucose response as JSON",
		Long:  "Print one patient's averaged response with --patient, otherwise the aggregate over every patient.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := opts.load(cmd.Context())
			if err != nil {
				return err
			}

			filter := domain.NewTagFilter(tag)
			if patient == "" {
				return printJSON(cmd.OutOrStdout(), analysis.BuildAggregateResponse(ds, filter))
			}
			if !ds.HasPatient(patient) {
				return fmt.Errorf("patient %q: %w", patient, domain.ErrNotFound)
			}
			return printJSON(cmd.OutOrStdout(), analysis.BuildPatientResponse(ds, patient, filter))
		},
	}

	cmd.Flags().StringVarP(&patient, "patient", "p", "", "patient ID (default: all patients)")
	cmd.Flags().StringVarP(&tag, "tag", "t", domain.AllTagsValue, "meal tag")
	return cmd
}
