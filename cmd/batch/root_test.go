package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeDataset(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	rows := [][]interface{}{
		{"Call ID", "Agent", "Transcript", "Duration"},
		{"c-1", "Dana", "Thanks for calling, happy to help. This is great.", "60"},
		{"c-2", "Lee", "Honestly it is too expensive and we have no budget.", "45"},
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	require.NoError(t, f.SaveAs(path))
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "calls.xlsx")
	out := filepath.Join(dir, "report.xlsx")
	writeDataset(t, in)
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LEXICON_PATH", "")

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--dataset", in, "--out", out, "--concurrency", "2"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, stdout.String(), "Objections raised in 50% of calls")
	assert.Contains(t, stdout.String(), "report: "+out)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("calls")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "c-1", rows[1][0])
	assert.Equal(t, "c-2", rows[2][0])
}

func TestBatchCommandMissingDataset(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--dataset", filepath.Join(t.TempDir(), "missing.xlsx")})
	assert.ErrorContains(t, cmd.Execute(), "load dataset")
}
