package bodycomp

// Metric names a numeric field of an Assessment that can be trended.
type Metric string

const (
	MetricWeight       Metric = "weight"
	MetricBMI          Metric = "bmi"
	MetricBodyFat      Metric = "body_fat_percent"
	MetricMuscleMass   Metric = "muscle_mass_percent"
	MetricVisceralFat  Metric = "visceral_fat"
	MetricMetabolicAge Metric = "metabolic_age"
	MetricBMR          Metric = "bmr"

	MetricChest   Metric = "chest"
	MetricWaist   Metric = "waist"
	MetricAbdomen Metric = "abdomen"
	MetricHips    Metric = "hips"

	MetricArmRight   Metric = "arm_right"
	MetricArmLeft    Metric = "arm_left"
	MetricThighRight Metric = "thigh_right"
	MetricThighLeft  Metric = "thigh_left"
	MetricCalfRight  Metric = "calf_right"
	MetricCalfLeft   Metric = "calf_left"
)

// AllMetrics lists every trendable metric in display order.
var AllMetrics = []Metric{
	MetricWeight, MetricBMI, MetricBodyFat, MetricMuscleMass,
	MetricVisceralFat, MetricMetabolicAge, MetricBMR,
	MetricChest, MetricWaist, MetricAbdomen, MetricHips,
	MetricArmRight, MetricArmLeft, MetricThighRight, MetricThighLeft,
	MetricCalfRight, MetricCalfLeft,
}

// IsValidMetric checks if a string names a trendable metric.
func IsValidMetric(s string) bool {
	for _, m := range AllMetrics {
		if string(m) == s {
			return true
		}
	}
	return false
}

// Metric returns the value of m on a, Unknown for an unrecognised metric.
func (a Assessment) Metric(m Metric) Value {
	switch m {
	case MetricWeight:
		return a.Weight
	case MetricBMI:
		return a.BMI
	case MetricBodyFat:
		return a.BodyFatPercent
	case MetricMuscleMass:
		return a.MuscleMassPercent
	case MetricVisceralFat:
		return a.VisceralFat
	case MetricMetabolicAge:
		return a.MetabolicAge
	case MetricBMR:
		return a.BMR
	case MetricChest:
		return a.Girths.Chest
	case MetricWaist:
		return a.Girths.Waist
	case MetricAbdomen:
		return a.Girths.Abdomen
	case MetricHips:
		return a.Girths.Hips
	case MetricArmRight:
		return a.BilateralGirths.ArmRight
	case MetricArmLeft:
		return a.BilateralGirths.ArmLeft
	case MetricThighRight:
		return a.BilateralGirths.ThighRight
	case MetricThighLeft:
		return a.BilateralGirths.ThighLeft
	case MetricCalfRight:
		return a.BilateralGirths.CalfRight
	case MetricCalfLeft:
		return a.BilateralGirths.CalfLeft
	}
	return Unknown
}

/* ─── Polarity ───────────────────────────────────────────────────────── */

// Polarity says which direction of change is good for a metric.
type Polarity int

const (
	Neutral Polarity = iota
	LowerIsBetter
	HigherIsBetter
)

func (p Polarity) String() string {
	switch p {
	case LowerIsBetter:
		return "lower_is_better"
	case HigherIsBetter:
		return "higher_is_better"
	}
	return "neutral"
}

// PolarityTable maps metrics to their good direction. Metrics absent from
// the table are Neutral. Treat tables as read-only; use With to derive one.
type PolarityTable map[Metric]Polarity

// DefaultPolarity is the body-composition framing: losing weight, fat and
// trunk girth is good, gaining muscle and limb girth is good.
var DefaultPolarity = PolarityTable{
	MetricWeight:       LowerIsBetter,
	MetricBMI:          LowerIsBetter,
	MetricBodyFat:      LowerIsBetter,
	MetricVisceralFat:  LowerIsBetter,
	MetricMetabolicAge: LowerIsBetter,
	MetricWaist:        LowerIsBetter,
	MetricAbdomen:      LowerIsBetter,

	MetricMuscleMass: HigherIsBetter,
	MetricArmRight:   HigherIsBetter,
	MetricArmLeft:    HigherIsBetter,
	MetricThighRight: HigherIsBetter,
	MetricThighLeft:  HigherIsBetter,
	MetricCalfRight:  HigherIsBetter,
	MetricCalfLeft:   HigherIsBetter,
}

// Of returns the polarity of m.
func (t PolarityTable) Of(m Metric) Polarity {
	return t[m]
}

// With returns a copy of t with m set to p. t itself is left untouched.
func (t PolarityTable) With(m Metric, p Polarity) PolarityTable {
	out := make(PolarityTable, len(t)+1)
	for k, v := range t {
		out[k] = v
	}
	out[m] = p
	return out
}
