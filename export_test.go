package dgtraj

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestStatsRoundTrip(Te *testing.T) {
	A := mkTraj(Te, "LIG-A", -45.23, -44.87, -46.12, -45.0, -45.5)
	B := mkTraj(Te, "LIG-B", -40.123456789, -41.987654321)
	C, err := Compare([]*Trajectory{A, B})
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	if err := C.WriteStats(&buf); err != nil {
		Te.Fatal(err)
	}
	rows, err := ReadStats(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	orig := C.Rows()
	if len(rows) != len(orig) {
		Te.Fatalf("got %d rows back, want %d", len(rows), len(orig))
	}
	for i := range rows {
		if rows[i].Label != orig[i].Label {
			Te.Errorf("row %d label %q, want %q", i, rows[i].Label, orig[i].Label)
		}
		got, want := rows[i].Stats, orig[i].Stats
		if got.Count != want.Count {
			Te.Errorf("row %d count %d, want %d", i, got.Count, want.Count)
		}
		for _, p := range [][2]float64{{got.Mean, want.Mean}, {got.Std, want.Std}, {got.Min, want.Min}, {got.Max, want.Max}} {
			if math.Abs(p[0]-p[1]) > 1e-12 {
				Te.Errorf("row %d: %v does not round-trip to %v", i, p[1], p[0])
			}
		}
	}
}

func TestWriteSeries(Te *testing.T) {
	A := mkTraj(Te, "LIG-A", -45.23, -44.87, -46.12)
	res, err := Analyze(A, nil)
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	if err := res.WriteSeries(&buf); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 { //header plus one row per frame
		Te.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	if lines[0] != "frame,time_ns,dGbind,running_mean,err" {
		Te.Errorf("header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1,0,-45.23,") {
		Te.Errorf("first data row %q", lines[1])
	}
}

func TestWriteReport(Te *testing.T) {
	A := mkTraj(Te, "LIG-A", -45.23, -44.87, -46.12)
	res, err := Analyze(A, nil)
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	if err := res.WriteReport(&buf); err != nil {
		Te.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Ligand: LIG-A", "Frames: 3", "Running mean window size: 3"} {
		if !strings.Contains(out, want) {
			Te.Errorf("report misses %q:\n%s", want, out)
		}
	}
}
