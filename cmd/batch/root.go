package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"call-metrics-go/internal/actionable"
	"call-metrics-go/internal/aggregator"
	"call-metrics-go/internal/app"
	"call-metrics-go/internal/config"
	"call-metrics-go/internal/dataset"
	"call-metrics-go/internal/logger"
	"call-metrics-go/internal/pipeline"
	"call-metrics-go/internal/types"
)

func newRootCmd() *cobra.Command {
	var datasetPath, reportPath string
	var concurrency int

	cmd := &cobra.Command{
		Use:           "batch",
		Short:         "Compute call metrics for every call in an xlsx dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("dataset") {
				cfg.DatasetPath = datasetPath
			}
			if cmd.Flags().Changed("out") {
				cfg.ReportPath = reportPath
			}
			if cmd.Flags().Changed("concurrency") {
				cfg.BatchConcurrency = concurrency
			}
			log := logger.NewFor(cfg.Environment, cfg.LogLevel)
			log.Logger.SetOutput(cmd.ErrOrStderr())
			if err := runBatch(cmd, cfg, log); err != nil {
				log.WithError(err).Error("batch failed")
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&datasetPath, "dataset", "", "xlsx file of call records (default $DATASET_PATH)")
	cmd.Flags().StringVar(&reportPath, "out", "", "xlsx report to write (default $REPORT_PATH)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "calls analyzed in parallel (default $BATCH_CONCURRENCY)")
	return cmd
}

func runBatch(cmd *cobra.Command, cfg *config.Config, log *logger.Logger) error {
	records, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		return fmt.Errorf("load dataset %q: %w", cfg.DatasetPath, err)
	}
	log.WithField("dataset_path", cfg.DatasetPath).WithField("calls", len(records)).Info("dataset loaded")

	eng, err := app.NewEngine(cfg, log, nil)
	if err != nil {
		return err
	}
	results, err := pipeline.Run(cmd.Context(), eng, records, cfg.BatchConcurrency, log)
	if err != nil {
		return fmt.Errorf("run pipeline: %w", err)
	}

	rows := make([]dataset.ReportRow, len(results))
	bundles := make([]*types.MetricsBundle, len(results))
	for i, res := range results {
		rows[i] = dataset.ReportRow{Record: records[i], Metrics: res.Metrics, Error: res.Error}
		bundles[i] = res.Metrics
	}
	ins := aggregator.Aggregate(bundles)
	if err := dataset.WriteReport(cfg.ReportPath, rows, ins, log); err != nil {
		return err
	}

	card := actionable.GenerateForTeam(ins)
	log.WithFields(logrus.Fields{
		"calls":              ins.Calls,
		"average_call_score": ins.AverageCallScore,
		"objection_rate":     ins.ObjectionRate,
		"top_keywords":       ins.TopKeywords,
	}).Info("batch insight")
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n  action: %s\n  impact: %s\nreport: %s\n",
		card.Insight, card.Action, card.Impact, cfg.ReportPath)
	return nil
}
