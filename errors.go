package dgtraj

import "fmt"

//Errors

//Error is the interface for errors that all packages in this library
//implement. The Decorate method allows adding information to the error as it
//is passed up the call stack, without changing its type or wrapping it around
//something else. Each call returns the current decoration slice. An empty
//string just returns the current value without adding anything.
type Error interface {
	Error() string
	Decorate(string) []string
}

//FileError is the interface for errors associated with a particular input
//file, so comparison-mode callers can report which file failed.
type FileError interface {
	Error
	FileName() string
}

//MissingColumnError is returned when the required binding-energy column is
//absent from an input file. It is fatal for that file only: in comparison
//mode the remaining files are still processed.
type MissingColumnError struct {
	column   string
	filename string
	deco     []string
}

func (err *MissingColumnError) Error() string {
	return fmt.Sprintf("dgtraj: Column %q not found in %s", err.column, err.filename)
}

//Decorate adds new information to the error
func (err *MissingColumnError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the input file missing the column
func (err *MissingColumnError) FileName() string { return err.filename }

//Column returns the name of the missing column
func (err *MissingColumnError) Column() string { return err.column }

//EmptySeriesError is returned when an input file has the required column but
//no usable (numeric, non-missing) rows survive filtering.
type EmptySeriesError struct {
	filename string
	deco     []string
}

func (err *EmptySeriesError) Error() string {
	if err.filename == "" {
		return "dgtraj: No valid binding-energy values"
	}
	return fmt.Sprintf("dgtraj: No valid binding-energy values in %s", err.filename)
}

//Decorate adds new information to the error
func (err *EmptySeriesError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the input file with no usable rows
func (err *EmptySeriesError) FileName() string { return err.filename }

//TooManyTrajectoriesError is returned when a caller tries to put more than
//MaxTrajectories series into one comparison. The comparison built so far is
//left untouched.
type TooManyTrajectoriesError struct {
	label string
	deco  []string
}

func (err *TooManyTrajectoriesError) Error() string {
	return fmt.Sprintf("dgtraj: Comparison already holds %d trajectories, cannot add %q", MaxTrajectories, err.label)
}

//Decorate adds new information to the error
func (err *TooManyTrajectoriesError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Label returns the label of the rejected trajectory
func (err *TooManyTrajectoriesError) Label() string { return err.label }

//errDecorate asserts that err implements Error and decorates it with the
//caller's name before returning it. It will panic on any other error type.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}
