package dgtraj

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gbsatools/dgtraj/dgstat"
)

//The column names of the statistics report, kept compatible with what the
//Schrodinger-side tooling around these files expects.
var statsHeader = []string{"Ligand", "Mean_dGbind", "StdDev", "Min_Best", "Max_Worst", "Frames"}

//ffmt formats a float so it survives a round trip through the report
//unchanged.
func ffmt(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

//WriteStats writes the comparison table as delimited text: one row per
//trajectory with label, mean, sample std, min (best), max (worst) and frame
//count, in insertion order. The output parses back with ReadStats.
func (C *Comparison) WriteStats(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(statsHeader); err != nil {
		return err
	}
	for _, row := range C.rows {
		rec := []string{
			row.Label,
			ffmt(row.Stats.Mean),
			ffmt(row.Stats.Std),
			ffmt(row.Stats.Min),
			ffmt(row.Stats.Max),
			strconv.Itoa(row.Stats.Count),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

//ReadStats parses a statistics report written by WriteStats back into rows
//with labels and summary statistics. Colors and styles are not part of the
//report, so the returned rows carry none.
func ReadStats(r io.Reader) ([]ComparisonRow, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, err
	}
	if len(header) != len(statsHeader) || header[0] != statsHeader[0] {
		return nil, fmt.Errorf("dgtraj: Not a statistics report, header %v", header)
	}
	var rows []ComparisonRow
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		s := new(dgstat.Summary)
		if s.Mean, err = strconv.ParseFloat(rec[1], 64); err != nil {
			return nil, err
		}
		if s.Std, err = strconv.ParseFloat(rec[2], 64); err != nil {
			return nil, err
		}
		if s.Min, err = strconv.ParseFloat(rec[3], 64); err != nil {
			return nil, err
		}
		if s.Max, err = strconv.ParseFloat(rec[4], 64); err != nil {
			return nil, err
		}
		if s.Count, err = strconv.Atoi(rec[5]); err != nil {
			return nil, err
		}
		rows = append(rows, ComparisonRow{Label: rec[0], Stats: s})
	}
	return rows, nil
}

//WriteSeries writes the raw and derived series of a result as delimited text
//for re-plotting: frame, time in ns, raw ΔGbind, running mean and the error
//band magnitude, one row per frame.
func (R *Result) WriteSeries(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"frame", "time_ns", "dGbind", "running_mean", "err"}); err != nil {
		return err
	}
	frames := R.Traj.Frames()
	time := R.Time()
	dg := R.Traj.View()
	mean := R.Mean.View()
	band := R.Band.View()
	for i := range dg {
		rec := []string{
			strconv.Itoa(frames[i]),
			ffmt(time[i]),
			ffmt(dg[i]),
			ffmt(mean[i]),
			ffmt(band[i]),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

//WriteReport writes a human-readable statistics report for one result, in
//the shape the original per-ligand TXT downloads had.
func (R *Result) WriteReport(w io.Writer) error {
	lines := []string{
		fmt.Sprintf("Ligand: %s", R.Traj.Label()),
		fmt.Sprintf("Mean ΔGbind: %.2f kcal/mol", R.Stats.Mean),
		fmt.Sprintf("StdDev: %.2f", R.Stats.Std),
		fmt.Sprintf("Range: %.2f to %.2f", R.Stats.Min, R.Stats.Max),
		fmt.Sprintf("Frames: %d", R.Stats.Count),
		fmt.Sprintf("Running mean window size: %d", R.Mean.Window()),
		fmt.Sprintf("Error bars: %s", R.Band.Kind()),
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

//WriteReport writes a human-readable report for the whole comparison.
func (C *Comparison) WriteReport(w io.Writer) error {
	lines := []string{"MMGBSA Comparison Statistics", strings.Repeat("=", 30)}
	for _, row := range C.rows {
		lines = append(lines,
			"",
			fmt.Sprintf("Ligand: %s", row.Label),
			fmt.Sprintf("Mean ΔGbind: %.2f kcal/mol", row.Stats.Mean),
			fmt.Sprintf("StdDev: %.2f", row.Stats.Std),
			fmt.Sprintf("Range: %.2f to %.2f", row.Stats.Min, row.Stats.Max),
			fmt.Sprintf("Frames: %d", row.Stats.Count),
			strings.Repeat("-", 30),
		)
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
