package dgstat

import "fmt"

//Errors

//Error is the error interface for the whole library. It is declared both here
//and in the parent package to avoid a circular import. The Decorate method
//allows adding information to the error as it is passed up the call stack,
//without changing its type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string
}

//EmptySeriesError is returned when a computation is requested over a series
//with no usable values.
type EmptySeriesError struct {
	deco []string
}

func (err *EmptySeriesError) Error() string {
	return "dgtraj/dgstat: Empty series, no values to compute on"
}

//Decorate adds new information to the error
func (err *EmptySeriesError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//InvalidWindowError is returned, when clamping is disabled, for a running-mean
//window outside the allowed range (see MaxWindow and the series length).
type InvalidWindowError struct {
	window int
	length int
	deco   []string
}

func (err *InvalidWindowError) Error() string {
	return fmt.Sprintf("dgtraj/dgstat: Window %d outside the allowed range 1-%d for a series of %d values", err.window, MaxWindow, err.length)
}

//Decorate adds new information to the error
func (err *InvalidWindowError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Window returns the offending window size.
func (err *InvalidWindowError) Window() int { return err.window }
