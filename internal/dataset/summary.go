package dataset

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"call-metrics-go/internal/aggregator"
	"call-metrics-go/internal/logger"
	"call-metrics-go/internal/types"
)

const (
	callsSheet   = "calls"
	summarySheet = "summary"
)

// ReportRow is one analyzed call as written to the report.
type ReportRow struct {
	Record  types.CallRecord
	Metrics *types.MetricsBundle
	Error   string
}

var callsHeader = []interface{}{
	"Call ID", "Agent", "Sentiment", "Call Score", "Agent Talk %", "Customer Talk %",
	"Overall WPM", "Fillers", "Fillers/min", "Objections", "Engagement", "Confidence",
	"Keywords", "Error",
}

// WriteReport writes a per-call sheet and a summary sheet to path.
func WriteReport(path string, rows []ReportRow, ins aggregator.Insight, log *logger.Logger) error {
	entry := log.WithComponent("dataset.report").WithField("path", path)
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", callsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(callsSheet, "A1", &callsHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := callRow(r)
		if err := f.SetSheetRow(callsSheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("add summary sheet: %w", err)
	}
	for i, kv := range summaryRows(ins) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &kv); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		entry.WithError(err).Error("save failed")
		return fmt.Errorf("save report: %w", err)
	}
	entry.WithField("calls", len(rows)).Info("report written")
	return nil
}

func callRow(r ReportRow) []interface{} {
	b := r.Metrics
	if b == nil {
		return []interface{}{r.Record.CallID, r.Record.Agent, "", "", "", "", "", "", "", "", "", "", "", r.Error}
	}
	return []interface{}{
		r.Record.CallID, r.Record.Agent, string(b.Sentiment), b.CallScore,
		b.TalkRatio.Agent, b.TalkRatio.Customer, b.SpeakingSpeed.Overall,
		b.FillerWords.Count, b.FillerWords.PerMinute, b.Objections.Count,
		b.CustomerEngagement, b.Confidence, strings.Join(b.Keywords, ", "), r.Error,
	}
}

func summaryRows(ins aggregator.Insight) [][]interface{} {
	out := [][]interface{}{
		{"Calls", ins.Calls},
		{"Average Call Score", round2(ins.AverageCallScore)},
		{"Average Engagement", round2(ins.AverageEngagement)},
		{"Average Customer Talk %", round2(ins.AverageCustomerTalkRatio)},
		{"Average Fillers/min", round2(ins.AverageFillersPerMinute)},
		{"Objection Rate", round2(ins.ObjectionRate)},
		{"Interruptions/call", round2(ins.InterruptionsPerCall)},
		{"Top Keywords", strings.Join(ins.TopKeywords, ", ")},
	}
	sentiments := make([]string, 0, len(ins.SentimentCounts))
	for s := range ins.SentimentCounts {
		sentiments = append(sentiments, string(s))
	}
	sort.Strings(sentiments)
	for _, s := range sentiments {
		out = append(out, []interface{}{"Sentiment " + s, ins.SentimentCounts[types.Sentiment(s)]})
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
