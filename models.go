package main

import (
	"time"

	"github.com/jackc/pgx/v5"

	"lg/body-comp-api/bodycomp"
)

/* ─── Database rows ──────────────────────────────────────────────────── */

// assessmentRow maps to the assessments table. Every measurement is nullable:
// NULL means "not measured", which bodycomp carries as Unknown, never as 0.
type assessmentRow struct {
	ID        string    `db:"id"`
	Seq       int64     `db:"seq"`
	SubjectID string    `db:"subject_id"`
	TakenAt   time.Time `db:"taken_at"`

	Age       *float64 `db:"age"`
	HeightCM  *float64 `db:"height_cm"`
	WeightKG  *float64 `db:"weight_kg"`
	BMI       *float64 `db:"bmi"`
	Gender    string   `db:"gender"`
	FatMethod string   `db:"fat_method"`
	TMBMethod string   `db:"tmb_method"`

	BodyDensity         *float64 `db:"body_density"`
	BodyFatPercent      *float64 `db:"body_fat_percent"`
	MuscleMassPercent   *float64 `db:"muscle_mass_percent"`
	VisceralFat         *float64 `db:"visceral_fat"`
	MetabolicAge        *float64 `db:"metabolic_age"`
	BMR                 *float64 `db:"bmr"`
	MaintenanceCalories *float64 `db:"maintenance_calories"`

	MuscleMassEstimated   bool `db:"muscle_mass_estimated"`
	VisceralFatEstimated  bool `db:"visceral_fat_estimated"`
	MetabolicAgeEstimated bool `db:"metabolic_age_estimated"`

	Chest   *float64 `db:"chest"`
	Waist   *float64 `db:"waist"`
	Abdomen *float64 `db:"abdomen"`
	Hips    *float64 `db:"hips"`

	ArmRight   *float64 `db:"arm_right"`
	ArmLeft    *float64 `db:"arm_left"`
	ThighRight *float64 `db:"thigh_right"`
	ThighLeft  *float64 `db:"thigh_left"`
	CalfRight  *float64 `db:"calf_right"`
	CalfLeft   *float64 `db:"calf_left"`

	SFChest       *float64 `db:"sf_chest"`
	SFAxillary    *float64 `db:"sf_axillary"`
	SFTriceps     *float64 `db:"sf_triceps"`
	SFSubscapular *float64 `db:"sf_subscapular"`
	SFAbdominal   *float64 `db:"sf_abdominal"`
	SFSuprailiac  *float64 `db:"sf_suprailiac"`
	SFThigh       *float64 `db:"sf_thigh"`

	StrategicReport    *string    `db:"strategic_report"`
	MotivationalReport *string    `db:"motivational_report"`
	CreatedAt          *time.Time `db:"created_at"`
}

// toAssessment converts a scanned row back into the domain record.
func (r assessmentRow) toAssessment() bodycomp.Assessment {
	v := bodycomp.FromPtr
	return bodycomp.Assessment{
		ID:         r.ID,
		SubjectID:  r.SubjectID,
		Timestamp:  r.TakenAt.UTC(),
		Age:        v(r.Age),
		Height:     v(r.HeightCM),
		Weight:     v(r.WeightKG),
		BMI:        v(r.BMI),
		Gender:     bodycomp.Gender(r.Gender),
		FatMethod:  bodycomp.FatMethod(r.FatMethod),
		BMRFormula: bodycomp.BMRFormula(r.TMBMethod),

		BodyDensity:         v(r.BodyDensity),
		BodyFatPercent:      v(r.BodyFatPercent),
		MuscleMassPercent:   v(r.MuscleMassPercent),
		VisceralFat:         v(r.VisceralFat),
		MetabolicAge:        v(r.MetabolicAge),
		BMR:                 v(r.BMR),
		MaintenanceCalories: v(r.MaintenanceCalories),
		Estimated: bodycomp.Estimated{
			MuscleMass:   r.MuscleMassEstimated,
			VisceralFat:  r.VisceralFatEstimated,
			MetabolicAge: r.MetabolicAgeEstimated,
		},

		Girths: bodycomp.CentralGirths{
			Chest:   v(r.Chest),
			Waist:   v(r.Waist),
			Abdomen: v(r.Abdomen),
			Hips:    v(r.Hips),
		},
		BilateralGirths: bodycomp.BilateralGirths{
			ArmRight:   v(r.ArmRight),
			ArmLeft:    v(r.ArmLeft),
			ThighRight: v(r.ThighRight),
			ThighLeft:  v(r.ThighLeft),
			CalfRight:  v(r.CalfRight),
			CalfLeft:   v(r.CalfLeft),
		},
		Skinfolds: bodycomp.Skinfolds{
			Chest:       v(r.SFChest),
			Axillary:    v(r.SFAxillary),
			Triceps:     v(r.SFTriceps),
			Subscapular: v(r.SFSubscapular),
			Abdominal:   v(r.SFAbdominal),
			Suprailiac:  v(r.SFSuprailiac),
			Thigh:       v(r.SFThigh),
		},

		StrategicReport:    deref(r.StrategicReport),
		MotivationalReport: deref(r.MotivationalReport),
	}
}

// assessmentArgs is the named-argument set for inserting a.
func assessmentArgs(a bodycomp.Assessment) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":        a.ID,
		"subjectID": a.SubjectID,
		"takenAt":   a.Timestamp,

		"age":       a.Age.Ptr(),
		"heightCM":  a.Height.Ptr(),
		"weightKG":  a.Weight.Ptr(),
		"bmi":       a.BMI.Ptr(),
		"gender":    string(a.Gender),
		"fatMethod": string(a.FatMethod),
		"tmbMethod": string(a.BMRFormula),

		"bodyDensity":         a.BodyDensity.Ptr(),
		"bodyFatPercent":      a.BodyFatPercent.Ptr(),
		"muscleMassPercent":   a.MuscleMassPercent.Ptr(),
		"visceralFat":         a.VisceralFat.Ptr(),
		"metabolicAge":        a.MetabolicAge.Ptr(),
		"bmr":                 a.BMR.Ptr(),
		"maintenanceCalories": a.MaintenanceCalories.Ptr(),

		"muscleMassEstimated":   a.Estimated.MuscleMass,
		"visceralFatEstimated":  a.Estimated.VisceralFat,
		"metabolicAgeEstimated": a.Estimated.MetabolicAge,

		"chest":   a.Girths.Chest.Ptr(),
		"waist":   a.Girths.Waist.Ptr(),
		"abdomen": a.Girths.Abdomen.Ptr(),
		"hips":    a.Girths.Hips.Ptr(),

		"armRight":   a.BilateralGirths.ArmRight.Ptr(),
		"armLeft":    a.BilateralGirths.ArmLeft.Ptr(),
		"thighRight": a.BilateralGirths.ThighRight.Ptr(),
		"thighLeft":  a.BilateralGirths.ThighLeft.Ptr(),
		"calfRight":  a.BilateralGirths.CalfRight.Ptr(),
		"calfLeft":   a.BilateralGirths.CalfLeft.Ptr(),

		"sfChest":       a.Skinfolds.Chest.Ptr(),
		"sfAxillary":    a.Skinfolds.Axillary.Ptr(),
		"sfTriceps":     a.Skinfolds.Triceps.Ptr(),
		"sfSubscapular": a.Skinfolds.Subscapular.Ptr(),
		"sfAbdominal":   a.Skinfolds.Abdominal.Ptr(),
		"sfSuprailiac":  a.Skinfolds.Suprailiac.Ptr(),
		"sfThigh":       a.Skinfolds.Thigh.Ptr(),

		"strategicReport":    nonEmpty(a.StrategicReport),
		"motivationalReport": nonEmpty(a.MotivationalReport),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

/* ─── Request / response shapes ──────────────────────────────────────── */

// assessmentInputRequest is the body for preview and report requests: the raw
// form fields exactly as the coach typed them. ActivityLevel is optional and
// only used by preview to add a TDEE figure.
type assessmentInputRequest struct {
	Input         bodycomp.RawInput      `json:"input"`
	ActivityLevel bodycomp.ActivityLevel `json:"activity_level"`
}

// createAssessmentRequest is the body for POST /api/subjects/:subjectID/assessments.
// TakenAt is optional (RFC 3339); the server clock is used when omitted.
// Reports are written before saving, so they travel with the create call.
type createAssessmentRequest struct {
	Input              bodycomp.RawInput `json:"input"`
	TakenAt            *time.Time        `json:"taken_at"`
	StrategicReport    string            `json:"strategic_report"`
	MotivationalReport string            `json:"motivational_report"`
}

// assessmentView is one record plus the labels a client shows next to it.
type assessmentView struct {
	Assessment     bodycomp.Assessment     `json:"assessment"`
	Classification bodycomp.Classification `json:"classification"`
	Symmetry       bodycomp.SymmetryScore  `json:"symmetry"`
}

func newAssessmentView(a bodycomp.Assessment) assessmentView {
	return assessmentView{
		Assessment:     a,
		Classification: bodycomp.Summarize(a),
		Symmetry:       bodycomp.ScoreSymmetry(a.BilateralGirths),
	}
}

// previewResponse adds the TDEE for the requested activity level, when one
// was given.
type previewResponse struct {
	assessmentView
	ActivityLevel bodycomp.ActivityLevel `json:"activity_level,omitempty"`
	TDEE          *bodycomp.Value        `json:"tdee,omitempty"`
}

// trendResponse is the response shape for GET /api/subjects/:subjectID/trend.
// Classification and Symmetry describe the current record and are null when
// the subject has no assessments.
type trendResponse struct {
	bodycomp.TrendReport
	Classification *bodycomp.Classification `json:"classification"`
	Symmetry       *bodycomp.SymmetryScore  `json:"symmetry"`
}

// chartResponse is the response shape for GET /api/subjects/:subjectID/chart.
type chartResponse struct {
	Metric bodycomp.Metric  `json:"metric"`
	Points []bodycomp.Point `json:"points"`
}

// reportsResponse is the response shape for POST /api/subjects/:subjectID/reports.
type reportsResponse struct {
	Assessment         bodycomp.Assessment `json:"assessment"`
	StrategicReport    string              `json:"strategic_report"`
	MotivationalReport string              `json:"motivational_report"`
}
