package dgstat

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

//ErrKind selects the dispersion measure drawn around the running mean.
type ErrKind int

const (
	StdErr ErrKind = iota //standard error of the mean
	StdDev                //sample standard deviation
	CI95                  //95% confidence interval half-width (Student t)
)

//String returns the name used for the kind in reports and the command line.
func (k ErrKind) String() string {
	switch k {
	case StdErr:
		return "Standard Error"
	case StdDev:
		return "Standard Deviation"
	case CI95:
		return "95% Confidence Interval"
	}
	return "Unknown"
}

//Band holds per-point symmetric dispersion magnitudes around a running mean,
//computed over the same causal windows as the mean itself.
type Band struct {
	mag    []float64
	window int //effective, after clamping
	kind   ErrKind
}

//Window returns the effective window used for the computation.
func (B *Band) Window() int { return B.window }

//Kind returns the dispersion measure the band represents.
func (B *Band) Kind() ErrKind { return B.kind }

//Len returns the number of points in the band.
func (B *Band) Len() int { return len(B.mag) }

//Mag returns a copy of the per-point magnitudes. If a dest slice with enough
//capacity is given, it will be used to avoid an allocation.
func (B *Band) Mag(dest ...[]float64) []float64 {
	d := getCopySlice(len(B.mag), dest...)
	copy(d, B.mag)
	return d
}

//View returns the per-point magnitudes themselves, not a copy.
func (B *Band) View() []float64 { return B.mag }

//tCritical returns the two-sided 95% critical value of the Student t
//distribution with nu degrees of freedom.
func tCritical(nu int) float64 {
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(nu)}
	return t.Quantile(0.975)
}

//ComputeBand computes the symmetric dispersion envelope of kind for v, over the same
//causal windows as RunningMean, with the same clamping (and strict) policy.
//Windows of one point or less always yield an explicit zero: a standard
//deviation, standard error or confidence interval cannot be built from a
//single sample, and we don't want NaNs reaching the plotting layer.
func ComputeBand(v []float64, window int, kind ErrKind, strict ...bool) (*Band, error) {
	if len(v) == 0 {
		return nil, &EmptySeriesError{}
	}
	w, _, err := clampWindow(window, len(v), strict...)
	if err != nil {
		return nil, errDecorate(err, "ComputeBand")
	}
	//The critical values only depend on the window population, which is
	//bounded by w, so they are precomputed once per population size.
	var tcrit []float64
	if kind == CI95 {
		tcrit = make([]float64, w+1)
		for n := 2; n <= w; n++ {
			tcrit[n] = tCritical(n - 1)
		}
	}
	mag := make([]float64, len(v))
	for i := range v {
		lo := i - w + 1
		if lo < 0 {
			lo = 0
		}
		n := i + 1 - lo
		if n <= 1 {
			mag[i] = 0 //no dispersion from a single point
			continue
		}
		sd := stat.StdDev(v[lo:i+1], nil)
		switch kind {
		case StdDev:
			mag[i] = sd
		case StdErr:
			mag[i] = sd / math.Sqrt(float64(n))
		case CI95:
			mag[i] = tcrit[n] * sd / math.Sqrt(float64(n))
		}
	}
	return &Band{mag: mag, window: w, kind: kind}, nil
}
