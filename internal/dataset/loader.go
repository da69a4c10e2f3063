package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"call-metrics-go/internal/types"
)

// columns holds the detected index of each known column, -1 when absent.
type columns struct {
	callID, agent, transcript, duration int
}

func detectColumns(header []string) columns {
	c := columns{callID: -1, agent: -1, transcript: -1, duration: -1}
	for i, h := range header {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case strings.Contains(l, "transcript") || l == "text":
			if c.transcript == -1 {
				c.transcript = i
			}
		case strings.Contains(l, "duration") || strings.Contains(l, "length") || strings.Contains(l, "seconds"):
			if c.duration == -1 {
				c.duration = i
			}
		case strings.Contains(l, "agent") || strings.Contains(l, "rep"):
			if c.agent == -1 {
				c.agent = i
			}
		case strings.Contains(l, "call id") || strings.Contains(l, "callid") || strings.Contains(l, "id"):
			if c.callID == -1 {
				c.callID = i
			}
		}
	}
	return c
}

// Load reads call records from the first sheet of an xlsx workbook, locating
// columns by header heuristics. Rows without transcript text are skipped;
// rows without a call id get a generated one.
func Load(path string) ([]types.CallRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("no data rows")
	}
	cols := detectColumns(rows[0])
	if cols.transcript == -1 {
		return nil, fmt.Errorf("no transcript column in header %q", rows[0])
	}

	cell := func(r []string, idx int) string {
		if idx >= 0 && idx < len(r) {
			return strings.TrimSpace(r[idx])
		}
		return ""
	}
	var out []types.CallRecord
	for i, r := range rows[1:] {
		record := types.CallRecord{
			CallID:     cell(r, cols.callID),
			Agent:      cell(r, cols.agent),
			Transcript: cell(r, cols.transcript),
		}
		if record.Transcript == "" {
			continue
		}
		if record.CallID == "" {
			record.CallID = uuid.NewString()
		}
		if raw := cell(r, cols.duration); raw != "" {
			d, err := parseDuration(raw)
			if err != nil {
				return nil, fmt.Errorf("row %d: duration %q: %w", i+2, raw, err)
			}
			record.DurationSeconds = d
		}
		out = append(out, record)
	}
	return out, nil
}

// parseDuration accepts plain seconds ("95.5") or clock notation ("1:35",
// "0:01:35").
func parseDuration(s string) (float64, error) {
	if !strings.Contains(s, ":") {
		return strconv.ParseFloat(s, 64)
	}
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("too many fields")
	}
	total := 0.0
	for _, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, err
		}
		if v < 0 {
			return 0, fmt.Errorf("negative field")
		}
		total = total*60 + v
	}
	return total, nil
}
