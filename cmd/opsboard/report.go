package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/opsboard/internal/adapters/batch"
	"github.com/okian/opsboard/internal/adapters/dataset"
	"github.com/okian/opsboard/internal/adapters/render"
	service "github.com/okian/opsboard/internal/app"
	"github.com/okian/opsboard/internal/domain/model"
	"github.com/okian/opsboard/internal/domain/types"
	"github.com/okian/opsboard/pkg/logger"
	"github.com/okian/opsboard/pkg/metrics"
)

func (c *cli) reportCmd() *cobra.Command {
	var (
		dataFiles       []string
		format          string
		outputFile      string
		start           string
		end             string
		locale          string
		metricsTextfile string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Evaluate datasets and print the classified reports",
		Long: `Evaluate every section of a dataset and print the report.

Examples:
  # Evaluate the built-in sample as a table
  opsboard report

  # Evaluate a dataset file as JSON into a file
  opsboard report --data=week42.yaml --format=json --out=week42.json

  # Evaluate one file per outlet concurrently
  opsboard report --data=kemang.yaml --data=pik.yaml --data=bintaro.yaml

  # Override the reporting period and locale
  opsboard report --data=week42.yaml --start=2026-10-17 --end=2026-10-24 --locale=id-ID`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if format == "" {
				format = c.cfg.OutputFormat
			}
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			loc, err := c.locale(locale)
			if err != nil {
				return err
			}

			var period *model.DateRange
			if start != "" || end != "" {
				period = &model.DateRange{Start: start, End: end}
			}
			svc := c.service(loc)

			reports, evalErr := c.evaluate(ctx, svc, dataFiles, period)
			if len(reports) == 0 {
				return evalErr
			}

			var w *render.Writer
			if outputFile == "" || outputFile == "-" {
				w = render.NewWriterTo(cmd.OutOrStdout())
			} else if w, err = render.NewWriter(outputFile); err != nil {
				return fmt.Errorf("failed to create output writer: %w", err)
			}
			defer func() { _ = w.Close() }()
			for _, r := range reports {
				if err := w.Write(r, f); err != nil {
					return err
				}
			}

			if metricsTextfile == "" {
				metricsTextfile = c.cfg.MetricsTextfile
			}
			if metricsTextfile != "" {
				if err := metrics.WriteTextfile(metricsTextfile, metrics.GetRegistry()); err != nil {
					return errors.Join(evalErr, err)
				}
				c.log.Debug(ctx, "metrics written", logger.String("path", metricsTextfile))
			}
			return evalErr
		},
	}

	cmd.Flags().StringSliceVar(&dataFiles, "data", nil, "dataset file (YAML or JSON), repeatable; the built-in sample when empty")
	cmd.Flags().StringVar(&format, "format", "", "output format: json or table (default from config)")
	cmd.Flags().StringVar(&outputFile, "out", "", "output file; stdout when empty or -")
	cmd.Flags().StringVar(&start, "start", "", "period start date, YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", "period end date, YYYY-MM-DD")
	cmd.Flags().StringVar(&locale, "locale", "", "period label locale: en-US, en-GB or id-ID")
	cmd.Flags().StringVar(&metricsTextfile, "metrics-textfile", "", "write Prometheus metrics to this file after the report")

	return cmd
}

// evaluate returns the reports that succeeded, in input order, and the
// joined errors of those that did not.
func (c *cli) evaluate(ctx context.Context, svc *service.Service, paths []string, period *model.DateRange) ([]*types.Report, error) {
	var eval batch.Evaluator = svc
	if period != nil {
		eval = periodOverride{svc: svc, period: *period}
	}

	if len(paths) == 0 {
		r, err := eval.Evaluate(ctx, dataset.Sample())
		if err != nil {
			return nil, err
		}
		c.warnRowErrors(ctx, "sample", r)
		return []*types.Report{r}, nil
	}

	pool := batch.NewPool(eval,
		batch.WithWorkers(c.cfg.WorkerCount),
		batch.WithLogger(c.log.Named("batch")),
	)
	var (
		reports []*types.Report
		errs    []error
	)
	for _, res := range pool.Run(ctx, paths) {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", res.Path, res.Err))
			continue
		}
		c.warnRowErrors(ctx, res.Path, res.Report)
		reports = append(reports, res.Report)
	}
	return reports, errors.Join(errs...)
}

func (c *cli) warnRowErrors(ctx context.Context, source string, r *types.Report) {
	if !r.HasErrors() {
		return
	}
	c.log.Warn(ctx, "some rows could not be classified",
		logger.String("source", source),
		logger.String("run_id", r.RunID),
		logger.Int("errors", r.Summary.Errors),
	)
}

// periodOverride evaluates every dataset over a fixed period.
type periodOverride struct {
	svc    *service.Service
	period model.DateRange
}

func (p periodOverride) Evaluate(ctx context.Context, ds model.Dataset) (*types.Report, error) {
	ds.Period = p.period
	return p.svc.Evaluate(ctx, ds)
}
