package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// Columns is the fixed CSV header, in order.
var Columns = []string{
	"Segment",
	"Sub_Mode",
	"Frequency",
	"MAC_Value",
	"Z_Score",
	"Is_Outlier",
	"Outlier_Type",
	"Distance_from_Mean",
}

// #region table
// Table is the full set of records for one run, kept in report order.
type Table struct {
	Records []Record
}

// NewTable sorts records by segment then sub-mode label and returns the
// table. The input slice is not retained.
func NewTable(records []Record) Table {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].SegmentID != sorted[j].SegmentID {
			return sorted[i].SegmentID < sorted[j].SegmentID
		}
		return sorted[i].SubModeLabel < sorted[j].SubModeLabel
	})
	return Table{Records: sorted}
}

// WriteCSV writes the header and one row per record.
func (t Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range t.Records {
		row := []string{
			strconv.Itoa(r.SegmentID),
			r.SubModeLabel,
			formatValue(r.Frequency),
			formatValue(r.MACValue),
			formatValue(r.ZScore),
			strconv.FormatBool(r.IsOutlier),
			r.OutlierType,
			formatValue(r.DistanceFromMean),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write record for segment %d: %w", r.SegmentID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// formatValue renders floats with fixed six-digit precision.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// #endregion table
