package dgtraj

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

const sampleCSV = `title,r_psp_MMGBSA_dG_Bind,r_psp_MMGBSA_dG_Bind_Coulomb
LIG123,-45.23,-10.1
LIG123,-44.87,-10.3
,garbage,-10.2
,,
LIG123,-46.12,-10.0
`

func TestCSVRead(Te *testing.T) {
	traj, err := CSVRead(strings.NewReader(sampleCSV), "fallback")
	if err != nil {
		Te.Fatal(err)
	}
	if traj.Label() != "LIG123" {
		Te.Errorf("label: got %q want LIG123", traj.Label())
	}
	//the two bad rows are dropped and the frames renumbered densely
	if traj.Len() != 3 {
		Te.Fatalf("got %d frames, want 3", traj.Len())
	}
	frames := traj.Frames()
	for i, f := range frames {
		if f != i+1 {
			Te.Errorf("frame %d numbered %d, numbering should be dense and 1-based", i, f)
		}
	}
	dg := traj.View()
	if dg[0] != -45.23 || dg[1] != -44.87 || dg[2] != -46.12 {
		Te.Errorf("wrong values %v", dg)
	}
}

func TestCSVReadFallbackLabel(Te *testing.T) {
	in := "r_psp_MMGBSA_dG_Bind\n-45.0\n-44.0\n"
	traj, err := CSVRead(strings.NewReader(in), "thermal_MMGBSA")
	if err != nil {
		Te.Fatal(err)
	}
	if traj.Label() != "thermal_MMGBSA" {
		Te.Errorf("label: got %q want the fallback", traj.Label())
	}
}

func TestCSVReadMissingColumn(Te *testing.T) {
	in := "title,r_some_other_energy\nLIG1,-45.0\n"
	_, err := CSVRead(strings.NewReader(in), "x", "bad.csv")
	if err == nil {
		Te.Fatal("expected MissingColumnError")
	}
	merr, ok := err.(*MissingColumnError)
	if !ok {
		Te.Fatalf("wrong error type %T: %v", err, err)
	}
	if merr.Column() != EnergyColumn || merr.FileName() != "bad.csv" {
		Te.Errorf("error details: column %q file %q", merr.Column(), merr.FileName())
	}
}

func TestCSVReadEmptySeries(Te *testing.T) {
	//the column is there, but every value is missing or non-numeric
	in := "title,r_psp_MMGBSA_dG_Bind\nLIG1,\nLIG1,NaN\nLIG1,oops\n"
	_, err := CSVRead(strings.NewReader(in), "x", "empty.csv")
	if err == nil {
		Te.Fatal("expected EmptySeriesError")
	}
	if _, ok := err.(*EmptySeriesError); !ok {
		Te.Fatalf("wrong error type %T: %v", err, err)
	}
}

func TestCSVReadFileGzip(Te *testing.T) {
	dir := Te.TempDir()
	path := filepath.Join(dir, "LIG7.csv.gz")
	f, err := os.Create(path)
	if err != nil {
		Te.Fatal(err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte("r_psp_MMGBSA_dG_Bind\n-45.23\n-44.87\n")); err != nil {
		Te.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		Te.Fatal(err)
	}
	if err := f.Close(); err != nil {
		Te.Fatal(err)
	}
	traj, err := CSVReadFile(path)
	if err != nil {
		Te.Fatal(err)
	}
	if traj.Len() != 2 {
		Te.Errorf("got %d frames, want 2", traj.Len())
	}
	//no title column, so the label comes from the file name, extensions off
	if traj.Label() != "LIG7" {
		Te.Errorf("label: got %q want LIG7", traj.Label())
	}
}
