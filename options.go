package dgtraj

import "github.com/gbsatools/dgtraj/dgstat"

//Options gathers everything a computation pass needs to know. It replaces the
//ambient per-session state of typical viewer front ends: a fresh Options can
//be built per request, and nothing in this library remembers it between calls.
type Options struct {
	window  int
	kind    dgstat.ErrKind
	strict  bool    //refuse out-of-range windows instead of clamping them
	totalNs float64 //total MD length, for the time axis
}

//DefaultOptions returns reasonable options for an atomistic MM-GBSA
//trajectory: a 10-frame running mean, standard-error bands and a 100 ns
//time axis.
func DefaultOptions() *Options {
	O := new(Options)
	O.window = 10
	O.kind = dgstat.StdErr
	O.totalNs = 100
	return O
}

//Window returns the running-mean window, and sets it to a new value,
//if given.
func (O *Options) Window(n ...int) int {
	if len(n) > 0 {
		O.window = n[0]
	}
	return O.window
}

//Kind returns the dispersion kind for the error band, and sets it to a new
//value, if given.
func (O *Options) Kind(k ...dgstat.ErrKind) dgstat.ErrKind {
	if len(k) > 0 {
		O.kind = k[0]
	}
	return O.kind
}

//Strict returns whether out-of-range windows are an error rather than being
//clamped, and sets it to a new value, if given.
func (O *Options) Strict(s ...bool) bool {
	if len(s) > 0 {
		O.strict = s[0]
	}
	return O.strict
}

//TotalNs returns the total MD length in ns used for the time axis, and sets
//it to a new value, if given.
func (O *Options) TotalNs(t ...float64) float64 {
	if len(t) > 0 && t[0] > 0 {
		O.totalNs = t[0]
	}
	return O.totalNs
}
