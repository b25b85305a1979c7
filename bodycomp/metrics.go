package bodycomp

// Fallbacks used by BMR when the profile is incomplete.
const (
	DefaultBMRHeightCM = 170.0
	DefaultBMRAge      = 30.0
)

// Advisory defaults for the bioimpedance form. These are placeholders, not
// measurements; the assessment pipeline tags them as estimated.
const (
	DefaultMetabolicAge = 25.0
	DefaultVisceralFat  = 7.0
)

// ActivityLevel names a TDEE multiplier.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// ActivityMultipliers maps activity levels to their TDEE multiplier.
var ActivityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

// MaintenanceActivity is the only level the assessment models.
const MaintenanceActivity = ActivityLight

// BMI is weight (kg) over height (m) squared. Both must be positive.
func BMI(weightKG, heightCM Value) Value {
	if !weightKG.Positive() || !heightCM.Positive() {
		return Unknown
	}
	w, _ := weightKG.Get()
	h, _ := heightCM.Get()
	m := h / 100
	return Known(w / (m * m))
}

// BMR estimates basal metabolic rate with Mifflin-St Jeor. The +5 offset is
// applied regardless of gender, matching the product's current behaviour.
// Weight is required; height and age fall back to 170 cm and 30 years.
func BMR(weightKG, heightCM, age Value) Value {
	if !weightKG.Positive() {
		return Unknown
	}
	w, _ := weightKG.Get()
	h := DefaultBMRHeightCM
	if heightCM.Positive() {
		h, _ = heightCM.Get()
	}
	a := age.Or(DefaultBMRAge)
	return Known(10*w + 6.25*h - 5*a + 5)
}

// TDEE multiplies a BMR by the level's activity factor. Unknown for an
// unknown BMR or an unrecognised level.
func TDEE(bmr Value, level ActivityLevel) Value {
	mult, ok := ActivityMultipliers[level]
	if !ok {
		return Unknown
	}
	b, ok := bmr.Get()
	if !ok {
		return Unknown
	}
	return Known(b * mult)
}

// MaintenanceCalories is BMR at the lightly-active factor (1.375).
func MaintenanceCalories(bmr Value) Value {
	return TDEE(bmr, MaintenanceActivity)
}

// SuggestLeanMass returns 100 - body fat %.
func SuggestLeanMass(bodyFat Value) Value {
	bf, ok := bodyFat.Get()
	if !ok {
		return Unknown
	}
	return Known(100 - bf)
}

// SuggestMetabolicAge returns age-4 for ages over 5, the age itself
// otherwise, and 25 when age is unknown.
func SuggestMetabolicAge(age Value) Value {
	a, ok := age.Get()
	if !ok {
		return Known(DefaultMetabolicAge)
	}
	if a > 5 {
		return Known(a - 4)
	}
	return Known(a)
}

func SuggestVisceralFat() Value { return Known(DefaultVisceralFat) }
