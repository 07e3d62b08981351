package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/blaisecz/glucose-dashboard/internal/config"
	"github.com/blaisecz/glucose-dashboard/internal/domain"
	"github.com/blaisecz/glucose-dashboard/internal/logging"
	"github.com/blaisecz/glucose-dashboard/internal/repository"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	glucose string
	meals   string
	logJSON bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "glucosectl",
		Short:         "Glucose dashboard dataset tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level, format := "warn", "console"
			if opts.verbose {
				level = "debug"
			}
			if opts.logJSON {
				format = "json"
			}
			logging.SetGlobal(logging.New(format, level))
		},
	}

	cmd.PersistentFlags().StringVar(&opts.glucose, "glucose", "data_website/flattened_glucose.json", "glucose dataset (file path or http(s) URL)")
	cmd.PersistentFlags().StringVar(&opts.meals, "meals", "data_website/food_log_tagged.json", "meal dataset (file path or http(s) URL)")
	cmd.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "write logs as JSON")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newImportCmd(opts),
		newHistogramCmd(opts),
		newResponseCmd(opts),
	)
	return cmd
}

func (o *rootOptions) load(ctx context.Context) (*domain.Datasets, error) {
	return repository.NewJSONDatasetRepository(o.glucose, o.meals, http.DefaultClient).Load(ctx)
}

// chartConfig reads carb thresholds and axis bounds from the environment like the API does.
func chartConfig() (domain.ChartConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return domain.ChartConfig{}, err
	}
	return cfg.ChartConfig(), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
