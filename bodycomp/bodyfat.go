package bodycomp

import "math"

// Skinfolds holds the seven Jackson-Pollock caliper sites, in millimetres.
type Skinfolds struct {
	Chest       Value `json:"chest"`
	Axillary    Value `json:"axillary"`
	Triceps     Value `json:"triceps"`
	Subscapular Value `json:"subscapular"`
	Abdominal   Value `json:"abdominal"`
	Suprailiac  Value `json:"suprailiac"`
	Thigh       Value `json:"thigh"`
}

func (s Skinfolds) sites() []Value {
	return []Value{s.Chest, s.Axillary, s.Triceps, s.Subscapular, s.Abdominal, s.Suprailiac, s.Thigh}
}

// Sum adds the seven sites. Unknown if any site is unknown.
func (s Skinfolds) Sum() Value {
	var total float64
	for _, v := range s.sites() {
		f, ok := v.Get()
		if !ok {
			return Unknown
		}
		total += f
	}
	return Known(total)
}

// SkinfoldResult is the output of the 7-site regression.
type SkinfoldResult struct {
	Sum            Value
	BodyDensity    Value // g/cm³
	BodyFatPercent Value
}

// SkinfoldBodyFat estimates body density with the Jackson-Pollock 7-site
// equations and converts it to body-fat percentage with Siri.
//
// All seven sites, gender and age are required; a non-positive sum or age
// yields Unknown, as does a negative or non-finite percentage.
func SkinfoldBodyFat(s Skinfolds, g Gender, age Value) SkinfoldResult {
	sum := s.Sum()
	res := SkinfoldResult{Sum: sum}

	total, ok := sum.Get()
	if !ok || total <= 0 {
		return res
	}
	a, ok := age.Get()
	if !ok || a <= 0 {
		return res
	}

	var density float64
	switch g {
	case GenderMale:
		density = 1.112 - 0.00043499*total + 0.00000055*total*total - 0.0002882*a
	case GenderFemale:
		density = 1.0970 - 0.00046971*total + 0.00000056*total*total - 0.00012828*a
	default:
		return res
	}

	pct := (4.95/density - 4.50) * 100
	if math.IsNaN(pct) || math.IsInf(pct, 0) || pct < 0 {
		return res
	}
	res.BodyDensity = Known(density)
	res.BodyFatPercent = Known(pct)
	return res
}

// BodyFatEstimate is the body-fat figure for one assessment and where it
// came from.
type BodyFatEstimate struct {
	Method      FatMethod
	Percent     Value
	BodyDensity Value // only set by the skinfold method
}

// EstimateBodyFat picks the source of truth from the method selector. The
// skinfold method ignores any manual percentage; the other methods take the
// manual field as-is.
func EstimateBodyFat(in Input) BodyFatEstimate {
	est := BodyFatEstimate{Method: in.FatMethod}
	switch in.FatMethod {
	case FatMethodSkinfolds:
		r := SkinfoldBodyFat(in.Skinfolds, in.Gender, in.Age)
		est.Percent = r.BodyFatPercent
		est.BodyDensity = r.BodyDensity
	default:
		est.Percent = in.BodyFatManual
	}
	return est
}
