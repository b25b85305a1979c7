package bodycomp

import "time"

// CentralGirths are trunk circumferences, in cm.
type CentralGirths struct {
	Chest   Value `json:"chest"`
	Waist   Value `json:"waist"`
	Abdomen Value `json:"abdomen"`
	Hips    Value `json:"hips"`
}

// Estimated marks which fields were filled by an advisory default instead of
// being measured or typed by the coach.
type Estimated struct {
	MuscleMass   bool `json:"muscle_mass"`
	VisceralFat  bool `json:"visceral_fat"`
	MetabolicAge bool `json:"metabolic_age"`
}

// Assessment is one evaluation event for a subject. It is built once from a
// raw input snapshot and never mutated afterwards; a correction is a new
// Assessment.
type Assessment struct {
	ID        string    `json:"id"`
	SubjectID string    `json:"subject_id"`
	Timestamp time.Time `json:"timestamp"`

	Age    Value  `json:"age"`
	Height Value  `json:"height"`
	Weight Value  `json:"weight"`
	BMI    Value  `json:"bmi"`
	Gender Gender `json:"gender"`

	FatMethod  FatMethod  `json:"fat_method"`
	BMRFormula BMRFormula `json:"tmb_method"`

	BodyDensity         Value     `json:"body_density"`
	BodyFatPercent      Value     `json:"body_fat_percent"`
	MuscleMassPercent   Value     `json:"muscle_mass_percent"`
	VisceralFat         Value     `json:"visceral_fat"`
	MetabolicAge        Value     `json:"metabolic_age"`
	BMR                 Value     `json:"bmr"`
	MaintenanceCalories Value     `json:"maintenance_calories"`
	Estimated           Estimated `json:"estimated"`

	Girths          CentralGirths   `json:"girths"`
	BilateralGirths BilateralGirths `json:"bilateral_girths"`
	Skinfolds       Skinfolds       `json:"skinfolds"`

	StrategicReport    string `json:"strategic_report,omitempty"`
	MotivationalReport string `json:"motivational_report,omitempty"`
}

// Build runs the whole pipeline over one raw input snapshot. id and at are
// supplied by the caller so that the same snapshot always yields the same
// record.
func Build(subjectID, id string, at time.Time, raw RawInput) Assessment {
	return FromInput(subjectID, id, at, ParseInput(raw))
}

// FromInput is Build for an already-normalized Input.
func FromInput(subjectID, id string, at time.Time, in Input) Assessment {
	bf := EstimateBodyFat(in)

	a := Assessment{
		ID:                id,
		SubjectID:         subjectID,
		Timestamp:         at,
		Age:               in.Age,
		Height:            in.Height,
		Weight:            in.Weight,
		BMI:               BMI(in.Weight, in.Height),
		Gender:            in.Gender,
		FatMethod:         in.FatMethod,
		BMRFormula:        in.BMRFormula,
		BodyDensity:       bf.BodyDensity,
		BodyFatPercent:    bf.Percent,
		MuscleMassPercent: in.MuscleMass,
		VisceralFat:       in.VisceralFat,
		MetabolicAge:      in.MetabolicAge,
		Girths:            in.Girths,
		BilateralGirths:   in.Bilateral,
		Skinfolds:         in.Skinfolds,
	}

	if in.FatMethod == FatMethodBioimpedance {
		applyAdvisoryDefaults(&a)
	}

	a.BMR = BMR(a.Weight, a.Height, a.Age)
	a.MaintenanceCalories = MaintenanceCalories(a.BMR)
	return a
}

// applyAdvisoryDefaults fills the bioimpedance fields the coach left blank.
// A value the coach typed is never replaced.
func applyAdvisoryDefaults(a *Assessment) {
	if !a.MuscleMassPercent.IsKnown() {
		if lm := SuggestLeanMass(a.BodyFatPercent); lm.IsKnown() {
			a.MuscleMassPercent = lm
			a.Estimated.MuscleMass = true
		}
	}
	if !a.MetabolicAge.IsKnown() {
		a.MetabolicAge = SuggestMetabolicAge(a.Age)
		a.Estimated.MetabolicAge = true
	}
	if !a.VisceralFat.IsKnown() {
		a.VisceralFat = SuggestVisceralFat()
		a.Estimated.VisceralFat = true
	}
}
