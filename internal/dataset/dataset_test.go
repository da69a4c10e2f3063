package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"call-metrics-go/internal/aggregator"
	"call-metrics-go/internal/logger"
	"call-metrics-go/internal/types"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calls.xlsx")
	f := excelize.NewFile()
	defer f.Close()
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoad(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Call ID", "Agent Name", "Transcript", "Duration"},
		{"c-1", "Dana", "Thanks for calling.", "95"},
		{"", "Lee", "Hello there.", "1:30"},
		{"c-3", "Kim", "", "10"},
		{"c-4", "Ash", "Bye.", ""},
	})
	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, types.CallRecord{CallID: "c-1", Agent: "Dana", Transcript: "Thanks for calling.", DurationSeconds: 95}, records[0])
	assert.Len(t, records[1].CallID, 36)
	assert.Equal(t, 90.0, records[1].DurationSeconds)
	assert.Equal(t, "c-4", records[2].CallID)
	assert.Zero(t, records[2].DurationSeconds)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)

	_, err = Load(writeWorkbook(t, [][]interface{}{{"Call ID", "Transcript"}}))
	assert.ErrorContains(t, err, "no data rows")

	_, err = Load(writeWorkbook(t, [][]interface{}{{"Call ID", "Notes"}, {"1", "x"}}))
	assert.ErrorContains(t, err, "no transcript column")

	_, err = Load(writeWorkbook(t, [][]interface{}{{"Transcript", "Duration"}, {"hi", "soon"}}))
	assert.ErrorContains(t, err, "row 2")
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"42", 42, false},
		{"12.5", 12.5, false},
		{"2:05", 125, false},
		{"1:00:00", 3600, false},
		{"1:2:3:4", 0, true},
		{"a:10", 0, true},
		{"-1:10", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDuration(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	rows := []ReportRow{
		{
			Record: types.CallRecord{CallID: "c-1", Agent: "Dana"},
			Metrics: &types.MetricsBundle{
				Sentiment: types.SentimentPositive, CallScore: 88,
				Keywords: []string{"pricing", "renewal"},
			},
		},
		{Record: types.CallRecord{CallID: "c-2", Agent: "Lee"}, Error: "metrics error: bad"},
	}
	ins := aggregator.Insight{
		Calls:           1,
		SentimentCounts: map[types.Sentiment]int{types.SentimentPositive: 1},
		TopKeywords:     []string{"pricing"},
	}
	require.NoError(t, WriteReport(path, rows, ins, logger.Discard()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{callsSheet, summarySheet}, f.GetSheetList())

	calls, err := f.GetRows(callsSheet)
	require.NoError(t, err)
	require.Len(t, calls, 3)
	assert.Equal(t, "Call ID", calls[0][0])
	assert.Equal(t, []string{"c-1", "Dana", "positive", "88"}, calls[1][:4])
	assert.Equal(t, "pricing, renewal", calls[1][12])
	assert.Equal(t, "c-2", calls[2][0])
	assert.Equal(t, "metrics error: bad", calls[2][len(calls[2])-1])

	summary, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"Calls", "1"}, summary[0])
	assert.Equal(t, []string{"Top Keywords", "pricing"}, summary[7])
	assert.Equal(t, []string{"Sentiment positive", "1"}, summary[8])
}
