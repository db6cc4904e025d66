package dgstat

import (
	"gonum.org/v1/gonum/stat"
)

//MaxWindow is the largest running-mean window a caller may request.
//Windows above it are clamped (or rejected, in strict mode).
const MaxWindow int = 50

//Smoothed holds a running-mean series together with the window that was
//actually used to compute it, which can be smaller than the one requested.
type Smoothed struct {
	mean    []float64
	window  int //effective, after clamping
	clamped bool
}

//Window returns the effective window used for the computation.
func (S *Smoothed) Window() int { return S.window }

//Clamped returns true if the requested window had to be adjusted to fit
//the allowed range or the series length.
func (S *Smoothed) Clamped() bool { return S.clamped }

//Len returns the number of points in the smoothed series.
func (S *Smoothed) Len() int { return len(S.mean) }

//Mean returns a copy of the smoothed values. If a dest slice with enough
//capacity is given, it will be used to avoid an allocation.
func (S *Smoothed) Mean(dest ...[]float64) []float64 {
	d := getCopySlice(len(S.mean), dest...)
	copy(d, S.mean)
	return d
}

//View returns the smoothed values themselves, not a copy.
func (S *Smoothed) View() []float64 { return S.mean }

//clampWindow applies the window policy shared by RunningMean and Band:
//windows are forced into 1..min(MaxWindow, len(v)), unless strict is given
//and true, in which case out-of-range windows are an error.
func clampWindow(window, length int, strict ...bool) (int, bool, error) {
	max := MaxWindow
	if length < max {
		max = length
	}
	if window >= 1 && window <= max {
		return window, false, nil
	}
	if len(strict) > 0 && strict[0] {
		return 0, false, &InvalidWindowError{window: window, length: length}
	}
	if window < 1 {
		return 1, true, nil
	}
	return max, true, nil
}

//RunningMean computes the causal, left-truncated running mean of v: the point
//i is the mean of the min(i+1, window) values ending at i. A window of 1
//returns the series unchanged. Windows outside 1..min(MaxWindow, len(v)) are
//clamped into range, which is reported by the returned Smoothed, unless strict
//is given and true, in which case an InvalidWindowError is returned instead.
func RunningMean(v []float64, window int, strict ...bool) (*Smoothed, error) {
	if len(v) == 0 {
		return nil, &EmptySeriesError{}
	}
	w, clamped, err := clampWindow(window, len(v), strict...)
	if err != nil {
		return nil, errDecorate(err, "RunningMean")
	}
	mean := make([]float64, len(v))
	for i := range v {
		lo := i - w + 1
		if lo < 0 {
			lo = 0
		}
		mean[i] = stat.Mean(v[lo:i+1], nil)
	}
	return &Smoothed{mean: mean, window: w, clamped: clamped}, nil
}

//errDecorate asserts that err implements Error and decorates it with the
//caller's name before returning it. It will panic on any other error type.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

func getCopySlice(N int, dest ...[]float64) []float64 {
	var d []float64
	if len(dest) > 0 && len(dest[0]) >= N {
		d = dest[0][:N]
	} else {
		d = make([]float64, N)
	}
	return d
}
