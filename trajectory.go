package dgtraj

import (
	"github.com/gbsatools/dgtraj/dgstat"
)

//Trajectory is an immutable per-frame binding-energy series. Frame numbers
//are always dense and 1-based: whatever rows were dropped while reading the
//source, frame i+1 follows frame i. It is never mutated after construction;
//every derived series (running mean, bands, summaries) is computed fresh from
//it on each parameter change.
type Trajectory struct {
	label  string
	frames []int
	dg     []float64
}

//NewTrajectory builds a Trajectory from a label and the per-frame ΔGbind
//values, assigning frame numbers 1..len(values). The values are copied, so the
//caller keeps ownership of its slice. An empty series is an EmptySeriesError.
func NewTrajectory(label string, values []float64) (*Trajectory, error) {
	if len(values) == 0 {
		return nil, &EmptySeriesError{}
	}
	T := new(Trajectory)
	T.label = label
	T.dg = make([]float64, len(values))
	copy(T.dg, values)
	T.frames = make([]int, len(values))
	for i := range T.frames {
		T.frames[i] = i + 1
	}
	return T, nil
}

//Label returns the ligand label of the trajectory.
func (T *Trajectory) Label() string { return T.label }

//Len returns the number of frames.
func (T *Trajectory) Len() int { return len(T.dg) }

//DG returns a copy of the per-frame ΔGbind values. If a dest slice with
//enough capacity is given, it will be used to avoid an allocation.
func (T *Trajectory) DG(dest ...[]float64) []float64 {
	var d []float64
	if len(dest) > 0 && len(dest[0]) >= len(T.dg) {
		d = dest[0][:len(T.dg)]
	} else {
		d = make([]float64, len(T.dg))
	}
	copy(d, T.dg)
	return d
}

//View returns the ΔGbind values themselves, not a copy. The caller must not
//modify them.
func (T *Trajectory) View() []float64 { return T.dg }

//Frames returns a copy of the 1-based frame numbers.
func (T *Trajectory) Frames() []int {
	d := make([]int, len(T.frames))
	copy(d, T.frames)
	return d
}

//Time maps the frame numbers onto a time axis in ns, given the total length
//of the MD simulation. The first frame sits at t=0 and the last at totalNs.
func (T *Trajectory) Time(totalNs float64) []float64 {
	t := make([]float64, len(T.frames))
	den := len(T.frames) - 1
	if den < 1 {
		den = 1
	}
	dt := totalNs / float64(den)
	for i := range t {
		t[i] = float64(i) * dt
	}
	return t
}

//Stats computes the summary statistics of the raw series.
func (T *Trajectory) Stats() (*dgstat.Summary, error) {
	return dgstat.Summarize(T.dg)
}
