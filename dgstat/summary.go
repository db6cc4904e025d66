package dgstat

import (
	"encoding/json"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Summary holds the scalar statistics of a whole raw series. They are always
//computed on the raw per-frame values, never on the smoothed ones.
type Summary struct {
	Mean  float64
	Std   float64 //sample standard deviation, zero for a single value
	Min   float64
	Max   float64
	Count int
}

//Summarize computes the Summary of v. It returns an EmptySeriesError for an
//empty series; upstream validation should make that unreachable, but we don't
//rely on it.
func Summarize(v []float64) (*Summary, error) {
	if len(v) == 0 {
		return nil, &EmptySeriesError{}
	}
	s := &Summary{
		Mean:  stat.Mean(v, nil),
		Min:   floats.Min(v),
		Max:   floats.Max(v),
		Count: len(v),
	}
	if len(v) > 1 {
		s.Std = stat.StdDev(v, nil)
	}
	//for a single value Std stays explicitly zero, there is no n-1 to divide by
	return s, nil
}

func (S *Summary) MarshalJSON() ([]byte, error) {
	j, err := json.Marshal(struct {
		Mean  float64 `json:"mean"`
		Std   float64 `json:"std"`
		Min   float64 `json:"min"`
		Max   float64 `json:"max"`
		Count int     `json:"count"`
	}{
		Mean:  S.Mean,
		Std:   S.Std,
		Min:   S.Min,
		Max:   S.Max,
		Count: S.Count,
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (S *Summary) UnmarshalJSON(b []byte) error {
	var a struct {
		Mean  float64 `json:"mean"`
		Std   float64 `json:"std"`
		Min   float64 `json:"min"`
		Max   float64 `json:"max"`
		Count int     `json:"count"`
	}
	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	S.Mean = a.Mean
	S.Std = a.Std
	S.Min = a.Min
	S.Max = a.Max
	S.Count = a.Count
	return nil
}
