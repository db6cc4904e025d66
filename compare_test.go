package dgtraj

import (
	"os"
	"path/filepath"
	"testing"
)

func mkTraj(Te *testing.T, label string, values ...float64) *Trajectory {
	Te.Helper()
	t, err := NewTrajectory(label, values)
	if err != nil {
		Te.Fatal(err)
	}
	return t
}

func TestComparisonCap(Te *testing.T) {
	C := NewComparison()
	for i := 0; i < MaxTrajectories; i++ {
		t := mkTraj(Te, string(rune('A'+i)), -45.0, -44.0, -46.0)
		if err := C.Add(t); err != nil {
			Te.Fatalf("adding trajectory %d: %v", i, err)
		}
	}
	before := C.Rows()
	err := C.Add(mkTraj(Te, "G", -45.0))
	if err == nil {
		Te.Fatal("expected TooManyTrajectoriesError for the 7th series")
	}
	terr, ok := err.(*TooManyTrajectoriesError)
	if !ok {
		Te.Fatalf("wrong error type %T: %v", err, err)
	}
	if terr.Label() != "G" {
		Te.Errorf("rejected label reported as %q", terr.Label())
	}
	//the rejection must leave the first six untouched
	after := C.Rows()
	if len(after) != MaxTrajectories {
		Te.Fatalf("comparison grew to %d rows", len(after))
	}
	for i := range after {
		if after[i].Label != before[i].Label || after[i].Color != before[i].Color {
			Te.Errorf("row %d changed after the rejection", i)
		}
	}
}

func TestPositionalAssignment(Te *testing.T) {
	A := mkTraj(Te, "A", -45.0, -44.0)
	B := mkTraj(Te, "B", -40.0, -41.0)
	D := mkTraj(Te, "D", -50.0, -51.0)
	c1, err := Compare([]*Trajectory{A, B, D})
	if err != nil {
		Te.Fatal(err)
	}
	c2, err := Compare([]*Trajectory{D, A, B})
	if err != nil {
		Te.Fatal(err)
	}
	r1 := c1.Rows()
	r2 := c2.Rows()
	//colors and styles belong to positions, not labels
	for i := range r1 {
		if r1[i].Color != PaletteColor(i) || r2[i].Color != PaletteColor(i) {
			Te.Errorf("position %d: colors %q and %q, want %q", i, r1[i].Color, r2[i].Color, PaletteColor(i))
		}
		if r1[i].Style != PositionalStyle(i) || r2[i].Style != PositionalStyle(i) {
			Te.Errorf("position %d: styles %v and %v", i, r1[i].Style, r2[i].Style)
		}
	}
	if r2[0].Label != "D" || r2[1].Label != "A" || r2[2].Label != "B" {
		Te.Errorf("insertion order not preserved: %v %v %v", r2[0].Label, r2[1].Label, r2[2].Label)
	}
}

func TestOverrideDoesNotShift(Te *testing.T) {
	C := NewComparison()
	if err := C.Add(mkTraj(Te, "A", -45.0, -44.0)); err != nil {
		Te.Fatal(err)
	}
	if err := C.Add(mkTraj(Te, "B", -40.0, -41.0), StyleOverride{Color: "#123456", Style: Dotted}); err != nil {
		Te.Fatal(err)
	}
	if err := C.Add(mkTraj(Te, "D", -50.0, -51.0)); err != nil {
		Te.Fatal(err)
	}
	rows := C.Rows()
	if rows[1].Color != "#123456" || rows[1].Style != Dotted {
		Te.Errorf("override lost: %+v", rows[1])
	}
	//the override must not shift the assignment for the next series
	if rows[2].Color != PaletteColor(2) || rows[2].Style != PositionalStyle(2) {
		Te.Errorf("series after the override got %q/%v, want %q/%v",
			rows[2].Color, rows[2].Style, PaletteColor(2), PositionalStyle(2))
	}
}

func TestCompareFilesIsolation(Te *testing.T) {
	dir := Te.TempDir()
	good := filepath.Join(dir, "good.csv")
	bad := filepath.Join(dir, "bad.csv")
	if err := os.WriteFile(good, []byte("title,r_psp_MMGBSA_dG_Bind\nLIG1,-45.0\nLIG1,-44.0\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("title,not_the_column\nLIG2,-45.0\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	C, failed := CompareFiles([]string{good, bad})
	if C.Len() != 1 {
		Te.Fatalf("got %d series, want 1", C.Len())
	}
	if C.Rows()[0].Label != "LIG1" {
		Te.Errorf("surviving series is %q", C.Rows()[0].Label)
	}
	if len(failed) != 1 {
		Te.Fatalf("got %d failures, want 1", len(failed))
	}
	if _, ok := failed[0].Err.(*MissingColumnError); !ok {
		Te.Errorf("failure carries %T, want *MissingColumnError", failed[0].Err)
	}
}
