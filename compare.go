package dgtraj

import (
	"encoding/json"

	"github.com/gbsatools/dgtraj/dgstat"
)

//MaxTrajectories is the most series one comparison will hold. More than this
//cannot be told apart in a single plot anyway.
const MaxTrajectories = 6

//palette is the fixed comparison palette. Colors are assigned to series by
//insertion position, i mod len(palette), never by label.
var palette = []string{
	"#4E79A7", "#F28E2B", "#E15759", "#76B7B2", "#59A14F", "#EDC948",
	"#B07AA1", "#FF9DA7", "#9C755F", "#BAB0AC",
}

//PaletteColor returns the hex color assigned to insertion position i.
func PaletteColor(i int) string {
	return palette[i%len(palette)]
}

//LineStyle is the dash pattern a series is drawn with.
type LineStyle int

const (
	StyleUnset LineStyle = iota //zero value, means "use the positional assignment"
	Solid
	Dashed
	Dotted
	DashDot
)

var styleNames = []string{"unset", "solid", "dashed", "dotted", "dashdot"}

func (s LineStyle) String() string {
	if s < StyleUnset || s > DashDot {
		return "unknown"
	}
	return styleNames[s]
}

//PositionalStyle returns the line style assigned to insertion position i.
func PositionalStyle(i int) LineStyle {
	return Solid + LineStyle(i%4)
}

//StyleOverride lets a caller pin the color and/or style of one series. Empty
//Color and StyleUnset mean "keep the positional assignment". Overrides never
//shift the assignment of later series.
type StyleOverride struct {
	Color string
	Style LineStyle
}

//ComparisonRow is one line of the comparison table: the series label, its
//assigned visual identity and its summary statistics.
type ComparisonRow struct {
	Label string
	Color string
	Style LineStyle
	Stats *dgstat.Summary
}

func (R *ComparisonRow) MarshalJSON() ([]byte, error) {
	j, err := json.Marshal(struct {
		Label string          `json:"label"`
		Color string          `json:"color"`
		Style string          `json:"style"`
		Stats *dgstat.Summary `json:"stats"`
	}{
		Label: R.Label,
		Color: R.Color,
		Style: R.Style.String(),
		Stats: R.Stats,
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

//Failure records one input that could not be turned into a trajectory, so
//comparison-mode callers can report it without losing the rest.
type Failure struct {
	File string
	Err  error
}

//Comparison is an ordered set of trajectories under shared visual
//conventions. Rows come out in insertion order, which is the upload order;
//there is no sorting by label or by value.
type Comparison struct {
	trajs []*Trajectory
	rows  []ComparisonRow
}

//NewComparison returns an empty comparison.
func NewComparison() *Comparison {
	return new(Comparison)
}

//Len returns the number of series in the comparison.
func (C *Comparison) Len() int { return len(C.trajs) }

//Add appends t to the comparison, assigning color and line style from its
//insertion position unless an override pins them. The 7th and later additions
//are rejected with a TooManyTrajectoriesError and leave the comparison
//exactly as it was.
func (C *Comparison) Add(t *Trajectory, override ...StyleOverride) error {
	if len(C.trajs) >= MaxTrajectories {
		return &TooManyTrajectoriesError{label: t.Label()}
	}
	stats, err := t.Stats()
	if err != nil {
		return errDecorate(err, "Add")
	}
	i := len(C.trajs)
	row := ComparisonRow{
		Label: t.Label(),
		Color: PaletteColor(i),
		Style: PositionalStyle(i),
		Stats: stats,
	}
	if len(override) > 0 {
		if override[0].Color != "" {
			row.Color = override[0].Color
		}
		if override[0].Style != StyleUnset {
			row.Style = override[0].Style
		}
	}
	C.trajs = append(C.trajs, t)
	C.rows = append(C.rows, row)
	return nil
}

//Rows returns a copy of the comparison table, in insertion order.
func (C *Comparison) Rows() []ComparisonRow {
	r := make([]ComparisonRow, len(C.rows))
	copy(r, C.rows)
	return r
}

//Trajectory returns the i-th series of the comparison.
func (C *Comparison) Trajectory(i int) *Trajectory {
	return C.trajs[i]
}

//Compare builds a comparison from trajs, in the given order. Overrides, if
//given, must have one entry per trajectory; zero-valued entries keep the
//positional assignment.
func Compare(trajs []*Trajectory, overrides ...[]StyleOverride) (*Comparison, error) {
	C := NewComparison()
	for i, t := range trajs {
		var err error
		if len(overrides) > 0 && i < len(overrides[0]) {
			err = C.Add(t, overrides[0][i])
		} else {
			err = C.Add(t)
		}
		if err != nil {
			return nil, errDecorate(err, "Compare")
		}
	}
	return C, nil
}

//CompareFiles loads every path and builds a comparison from those that could
//be read. Per-file failures are isolated: one malformed file does not stop
//the others, it just ends up in the returned Failure slice. Files past the
//MaxTrajectories cap are reported as failures too.
func CompareFiles(paths []string) (*Comparison, []Failure) {
	C := NewComparison()
	var failed []Failure
	for _, p := range paths {
		t, err := CSVReadFile(p)
		if err != nil {
			failed = append(failed, Failure{File: p, Err: err})
			continue
		}
		if err := C.Add(t); err != nil {
			failed = append(failed, Failure{File: p, Err: err})
		}
	}
	return C, failed
}
