package dgtraj

import (
	"encoding/json"

	"github.com/gbsatools/dgtraj/dgstat"
)

//Result is everything one computation pass derives from one trajectory: the
//smoothed series with its effective window, the dispersion band for the
//selected kind and the whole-series summary. It is recomputed in full on
//every parameter change; nothing is cached across window or kind changes.
type Result struct {
	Traj  *Trajectory
	Mean  *dgstat.Smoothed
	Band  *dgstat.Band
	Stats *dgstat.Summary
	opts  Options //the options the result was computed with
}

//Analyze runs one full computation pass over t with the given options. A nil
//opts uses DefaultOptions.
func Analyze(t *Trajectory, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	mean, err := dgstat.RunningMean(t.View(), opts.Window(), opts.Strict())
	if err != nil {
		return nil, errDecorate(err, "Analyze")
	}
	band, err := dgstat.ComputeBand(t.View(), opts.Window(), opts.Kind(), opts.Strict())
	if err != nil {
		return nil, errDecorate(err, "Analyze")
	}
	stats, err := t.Stats()
	if err != nil {
		return nil, errDecorate(err, "Analyze")
	}
	return &Result{Traj: t, Mean: mean, Band: band, Stats: stats, opts: *opts}, nil
}

//Time returns the time axis of the result, in ns.
func (R *Result) Time() []float64 {
	return R.Traj.Time(R.opts.TotalNs())
}

func (R *Result) MarshalJSON() ([]byte, error) {
	j, err := json.Marshal(struct {
		Label  string          `json:"label"`
		Frames []int           `json:"frames"`
		Time   []float64       `json:"time_ns"`
		DG     []float64       `json:"dg"`
		Mean   []float64       `json:"running_mean"`
		Window int             `json:"window"`
		Kind   string          `json:"error_kind"`
		Band   []float64       `json:"error_band"`
		Stats  *dgstat.Summary `json:"stats"`
	}{
		Label:  R.Traj.Label(),
		Frames: R.Traj.Frames(),
		Time:   R.Time(),
		DG:     R.Traj.DG(),
		Mean:   R.Mean.Mean(),
		Window: R.Mean.Window(),
		Kind:   R.Band.Kind().String(),
		Band:   R.Band.Mag(),
		Stats:  R.Stats,
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}
