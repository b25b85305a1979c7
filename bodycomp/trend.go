package bodycomp

import (
	"math"
	"time"
)

// noiseThreshold is the smallest change reported as a change. Anything
// smaller is floating noise from the inputs and reads as 0.
const noiseThreshold = 0.1

// Diff returns current minus comparison for m. Unknown on either side gives
// Unknown; a difference smaller than 0.1 in magnitude is exactly 0.
func Diff(current, comparison Assessment, m Metric) Value {
	d := sub(current.Metric(m), comparison.Metric(m))
	f, ok := d.Get()
	if !ok {
		return Unknown
	}
	if math.Abs(f) < noiseThreshold {
		return Known(0)
	}
	return d
}

// Delta is one metric's change between two assessments.
type Delta struct {
	Metric    Metric    `json:"metric"`
	Current   Value     `json:"current"`
	Previous  Value     `json:"previous"`
	Diff      Value     `json:"diff"`
	Direction Direction `json:"direction"`
}

// Compare diffs every metric of current against comparison, labelling each
// change with the given polarity table.
func Compare(current, comparison Assessment, table PolarityTable) []Delta {
	out := make([]Delta, 0, len(AllMetrics))
	for _, m := range AllMetrics {
		d := Diff(current, comparison, m)
		out = append(out, Delta{
			Metric:    m,
			Current:   current.Metric(m),
			Previous:  comparison.Metric(m),
			Diff:      d,
			Direction: ClassifyDirection(m, d, table),
		})
	}
	return out
}

// TrendReport compares the latest assessment with the one before it and
// with the first one on record.
type TrendReport struct {
	Count         int         `json:"count"`
	Current       *Assessment `json:"current"`
	Previous      *Assessment `json:"previous"`
	Initial       *Assessment `json:"initial"`
	SincePrevious []Delta     `json:"since_previous"`
	SinceInitial  []Delta     `json:"since_initial"`
}

// Analyze builds a TrendReport. With fewer than two records the delta lists
// are empty (not nil).
func Analyze(s Series, table PolarityTable) TrendReport {
	r := TrendReport{
		Count:         s.Len(),
		SincePrevious: []Delta{},
		SinceInitial:  []Delta{},
	}
	cur, ok := s.Current()
	if !ok {
		return r
	}
	r.Current = &cur

	if prev, ok := s.Previous(); ok {
		r.Previous = &prev
		r.SincePrevious = Compare(cur, prev, table)
	}
	if s.Len() >= 2 {
		initial, _ := s.Initial()
		r.Initial = &initial
		r.SinceInitial = Compare(cur, initial, table)
	}
	return r
}

// Point is one chart sample.
type Point struct {
	Timestamp time.Time `json:"timestamp"`
	Value     Value     `json:"value"`
}

// ChartPoints returns m across the series, oldest first. Records where m is
// unknown are kept so the caller can draw a gap.
func ChartPoints(s Series, m Metric) []Point {
	asc := s.OldestFirst()
	out := make([]Point, len(asc))
	for i, a := range asc {
		out[i] = Point{Timestamp: a.Timestamp, Value: a.Metric(m)}
	}
	return out
}
