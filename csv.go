package dgtraj

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const (
	//EnergyColumn is the column holding the per-frame ΔGbind in kcal/mol,
	//as written by Schrodinger's thermal_MMGBSA.py. The lookup is
	//case-sensitive on purpose: a file without this exact column is not an
	//MM-GBSA per-frame output.
	EnergyColumn = "r_psp_MMGBSA_dG_Bind"
	//TitleColumn optionally holds the ligand label.
	TitleColumn = "title"
)

//CSVRead reads one MM-GBSA per-frame CSV from r and returns its Trajectory.
//Only the two well-known columns are looked at. Rows with a missing or
//non-numeric energy cell are dropped before frames are numbered, so frame
//numbers always come out dense and 1-based. The label is the first non-empty
//title cell; if the title column is absent or all-empty, fallback is used.
//The filename is only used to make errors more useful, it can be empty.
func CSVRead(r io.Reader, fallback string, filename ...string) (*Trajectory, error) {
	fname := ""
	if len(filename) > 0 {
		fname = filename[0]
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 //some exporters pad rows unevenly
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, &EmptySeriesError{filename: fname}
	}
	energy := -1
	title := -1
	for i, h := range header {
		h = strings.TrimSpace(strings.Trim(h, "\""))
		if h == EnergyColumn {
			energy = i
		}
		if h == TitleColumn {
			title = i
		}
	}
	if energy < 0 {
		return nil, &MissingColumnError{column: EnergyColumn, filename: fname}
	}
	var values []float64
	label := ""
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if label == "" && title >= 0 && title < len(record) {
			label = strings.TrimSpace(strings.Trim(record[title], "\""))
		}
		if energy >= len(record) {
			continue
		}
		cell := strings.TrimSpace(strings.Trim(record[energy], "\""))
		if cell == "" || cell == "NA" || cell == "NaN" || cell == "null" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			continue //non-numeric cells are dropped, not fatal
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, &EmptySeriesError{filename: fname}
	}
	if label == "" {
		label = fallback
	}
	return NewTrajectory(label, values)
}

//CSVReadFile reads the MM-GBSA per-frame CSV in path, transparently
//decompressing .gz and .zst files. The fallback label is derived from the
//file name, with the extensions stripped.
func CSVReadFile(path string) (*Trajectory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.ReadCloser = f
	switch filepath.Ext(path) {
	case ".gz":
		r, err = gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer r.Close()
	case ".zst":
		d, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer d.Close()
		r = zstdcloser{d}
	}
	return CSVRead(r, fallbackLabel(path), filepath.Base(path))
}

//*zstd.Decoder does not implement io.ReadCloser, as its Close returns nothing.
type zstdcloser struct {
	*zstd.Decoder
}

func (z zstdcloser) Close() error {
	z.Decoder.Close()
	return nil
}

//fallbackLabel strips the directory and the (possibly stacked) extensions
//from path, leaving something usable as a ligand label.
func fallbackLabel(path string) string {
	base := filepath.Base(path)
	for {
		ext := filepath.Ext(base)
		if ext == "" {
			break
		}
		base = strings.TrimSuffix(base, ext)
	}
	if base == "" {
		return "Ligand"
	}
	return base
}
