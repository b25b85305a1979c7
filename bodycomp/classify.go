package bodycomp

// Status is an ordinal health band for display.
type Status string

const (
	NotAvailable Status = "Not available"

	Underweight Status = "Underweight"
	Normal      Status = "Normal"
	Overweight  Status = "Overweight"
	Obese       Status = "Obese"

	Athlete Status = "Athlete"
	Good    Status = "Good"
	Average Status = "Average"
	High    Status = "High"

	Healthy  Status = "Healthy"
	Elevated Status = "Elevated"
	HighRisk Status = "High risk"

	Excellent Status = "Excellent"
	Attention Status = "Attention"
)

// ClassifyBMI: <18.5 underweight, <25 normal, <30 overweight, else obese.
func ClassifyBMI(bmi Value) Status {
	v, ok := bmi.Get()
	switch {
	case !ok:
		return NotAvailable
	case v < 18.5:
		return Underweight
	case v < 25:
		return Normal
	case v < 30:
		return Overweight
	default:
		return Obese
	}
}

// ClassifyBodyFat uses one set of bands for both genders.
// TODO: gender-specific body-fat bands once the coaches agree on the cut-offs.
func ClassifyBodyFat(pct Value) Status {
	v, ok := pct.Get()
	switch {
	case !ok:
		return NotAvailable
	case v < 10:
		return Athlete
	case v < 20:
		return Good
	case v < 25:
		return Average
	default:
		return High
	}
}

// ClassifyVisceralFat: up to 9 healthy, up to 14 elevated, above that high risk.
func ClassifyVisceralFat(level Value) Status {
	v, ok := level.Get()
	switch {
	case !ok:
		return NotAvailable
	case v <= 9:
		return Healthy
	case v <= 14:
		return Elevated
	default:
		return HighRisk
	}
}

// ClassifyMetabolicAge compares metabolic age with chronological age.
func ClassifyMetabolicAge(metabolic, chronological Value) Status {
	m, ok1 := metabolic.Get()
	c, ok2 := chronological.Get()
	switch {
	case !ok1 || !ok2:
		return NotAvailable
	case m < c:
		return Excellent
	case m == c:
		return Normal
	default:
		return Attention
	}
}

// Context carries what some classifications need besides the value itself.
type Context struct {
	ChronologicalAge Value
}

// Classify dispatches on metric. Metrics without bands are NotAvailable.
func Classify(m Metric, v Value, ctx Context) Status {
	switch m {
	case MetricBMI:
		return ClassifyBMI(v)
	case MetricBodyFat:
		return ClassifyBodyFat(v)
	case MetricVisceralFat:
		return ClassifyVisceralFat(v)
	case MetricMetabolicAge:
		return ClassifyMetabolicAge(v, ctx.ChronologicalAge)
	}
	return NotAvailable
}

// Classification is the set of bands shown for one assessment.
type Classification struct {
	BMI          Status `json:"bmi"`
	BodyFat      Status `json:"body_fat"`
	VisceralFat  Status `json:"visceral_fat"`
	MetabolicAge Status `json:"metabolic_age"`
}

func Summarize(a Assessment) Classification {
	ctx := Context{ChronologicalAge: a.Age}
	return Classification{
		BMI:          Classify(MetricBMI, a.BMI, ctx),
		BodyFat:      Classify(MetricBodyFat, a.BodyFatPercent, ctx),
		VisceralFat:  Classify(MetricVisceralFat, a.VisceralFat, ctx),
		MetabolicAge: Classify(MetricMetabolicAge, a.MetabolicAge, ctx),
	}
}

/* ─── Trend direction ────────────────────────────────────────────────── */

// Direction labels a diff against the metric's polarity.
type Direction string

const (
	DirectionUnknown   Direction = "unknown"
	DirectionUnchanged Direction = "unchanged"
	DirectionImproved  Direction = "improved"
	DirectionWorsened  Direction = "worsened"
	DirectionChanged   Direction = "changed" // neutral metric moved
)

// ClassifyDirection reads diff (as returned by Diff, already noise-filtered)
// through the polarity table.
func ClassifyDirection(m Metric, diff Value, table PolarityTable) Direction {
	d, ok := diff.Get()
	if !ok {
		return DirectionUnknown
	}
	if d == 0 {
		return DirectionUnchanged
	}
	switch table.Of(m) {
	case LowerIsBetter:
		if d < 0 {
			return DirectionImproved
		}
		return DirectionWorsened
	case HigherIsBetter:
		if d > 0 {
			return DirectionImproved
		}
		return DirectionWorsened
	}
	return DirectionChanged
}
