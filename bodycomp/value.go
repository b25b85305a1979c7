// Package bodycomp derives body-composition metrics from raw anthropometric
// input: body fat from skinfolds, BMI, BMR, bilateral symmetry, trends across
// a subject's assessment history, and health-status bands.
//
// Everything here is pure. Missing or unusable input is carried as Unknown
// rather than as zero, so a real 0 stays distinguishable from "not measured".
package bodycomp

import (
	"encoding/json"
	"math"
	"strconv"
)

// Value is an optional number. The zero value is Unknown.
type Value struct {
	v     float64
	known bool
}

// Unknown is the absent Value.
var Unknown = Value{}

// Known wraps f. NaN and ±Inf are not numbers we can store or diff, so they
// collapse to Unknown.
func Known(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Unknown
	}
	return Value{v: f, known: true}
}

// FromPtr converts a nullable column value (nil = NULL) to a Value.
func FromPtr(p *float64) Value {
	if p == nil {
		return Unknown
	}
	return Known(*p)
}

// Get returns the number and whether it is known.
func (x Value) Get() (float64, bool) { return x.v, x.known }

func (x Value) IsKnown() bool { return x.known }

// Or returns the number, or def when unknown. Only for named fallbacks
// (e.g. the BMR height default); never use it to hide absence in storage.
func (x Value) Or(def float64) float64 {
	if !x.known {
		return def
	}
	return x.v
}

// Ptr returns a pointer suitable for a nullable column, nil when unknown.
func (x Value) Ptr() *float64 {
	if !x.known {
		return nil
	}
	v := x.v
	return &v
}

// Positive reports whether the value is known and strictly greater than zero.
func (x Value) Positive() bool { return x.known && x.v > 0 }

// Round rounds to the given number of decimal places. Stored values stay
// exact; this is for presentation callers.
func (x Value) Round(places int) Value {
	if !x.known {
		return x
	}
	p := math.Pow(10, float64(places))
	return Known(math.Round(x.v*p) / p)
}

func (x Value) String() string {
	if !x.known {
		return "unknown"
	}
	return strconv.FormatFloat(x.v, 'f', -1, 64)
}

func (x Value) MarshalJSON() ([]byte, error) {
	if !x.known {
		return []byte("null"), nil
	}
	return json.Marshal(x.v)
}

func (x *Value) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*x = Unknown
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*x = Known(f)
	return nil
}

// sub returns a-b, unknown if either side is.
func sub(a, b Value) Value {
	if !a.known || !b.known {
		return Unknown
	}
	return Known(a.v - b.v)
}
