package bodycomp

import (
	"strconv"
	"strings"
)

// RawInput is what a user typed, keyed by field name. Every key is optional.
type RawInput map[string]string

// Field keys accepted in a RawInput.
const (
	FieldAge           = "age"
	FieldHeight        = "height"
	FieldWeight        = "weight"
	FieldBodyFatManual = "bodyFatManual"
	FieldMuscleMass    = "muscleMass"
	FieldVisceralFat   = "visceralFat"
	FieldMetabolicAge  = "metabolicAge"
	FieldGender        = "gender"
	FieldFatMethod     = "fatCalculationMethod"
	FieldBMRFormula    = "tmbMethod"

	FieldSkinfoldChest       = "sfChest"
	FieldSkinfoldAxillary    = "sfAxillary"
	FieldSkinfoldTriceps     = "sfTriceps"
	FieldSkinfoldSubscapular = "sfSubscapular"
	FieldSkinfoldAbdominal   = "sfAbdominal"
	FieldSkinfoldSuprailiac  = "sfSuprailiac"
	FieldSkinfoldThigh       = "sfThigh"

	FieldChest   = "chest"
	FieldWaist   = "waist"
	FieldAbdomen = "abdomen"
	FieldHips    = "hips"

	FieldArmRight   = "armRight"
	FieldArmLeft    = "armLeft"
	FieldThighRight = "thighRight"
	FieldThighLeft  = "thighLeft"
	FieldCalfRight  = "calfRight"
	FieldCalfLeft   = "calfLeft"
)

// ParseOptionalNumber turns free-form text into a Value. Blank input and
// anything that does not parse to a finite number yield Unknown. A lone comma
// is read as the decimal separator ("72,5" is 72.5).
func ParseOptionalNumber(raw string) Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Unknown
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Unknown
	}
	return Known(f)
}

// Input is a RawInput after normalization.
type Input struct {
	Age           Value
	Height        Value // cm
	Weight        Value // kg
	BodyFatManual Value // %
	MuscleMass    Value // %
	VisceralFat   Value
	MetabolicAge  Value
	Gender        Gender
	FatMethod     FatMethod
	BMRFormula    BMRFormula

	Skinfolds Skinfolds
	Girths    CentralGirths
	Bilateral BilateralGirths
}

// ParseInput normalizes every field of raw. It never fails: unusable fields
// come back Unknown.
func ParseInput(raw RawInput) Input {
	num := func(key string) Value { return ParseOptionalNumber(raw[key]) }

	return Input{
		Age:           num(FieldAge),
		Height:        num(FieldHeight),
		Weight:        num(FieldWeight),
		BodyFatManual: num(FieldBodyFatManual),
		MuscleMass:    num(FieldMuscleMass),
		VisceralFat:   num(FieldVisceralFat),
		MetabolicAge:  num(FieldMetabolicAge),
		Gender:        ParseGender(raw[FieldGender]),
		FatMethod:     ParseFatMethod(raw[FieldFatMethod]),
		BMRFormula:    ParseBMRFormula(raw[FieldBMRFormula]),
		Skinfolds: Skinfolds{
			Chest:       num(FieldSkinfoldChest),
			Axillary:    num(FieldSkinfoldAxillary),
			Triceps:     num(FieldSkinfoldTriceps),
			Subscapular: num(FieldSkinfoldSubscapular),
			Abdominal:   num(FieldSkinfoldAbdominal),
			Suprailiac:  num(FieldSkinfoldSuprailiac),
			Thigh:       num(FieldSkinfoldThigh),
		},
		Girths: CentralGirths{
			Chest:   num(FieldChest),
			Waist:   num(FieldWaist),
			Abdomen: num(FieldAbdomen),
			Hips:    num(FieldHips),
		},
		Bilateral: BilateralGirths{
			ArmRight:   num(FieldArmRight),
			ArmLeft:    num(FieldArmLeft),
			ThighRight: num(FieldThighRight),
			ThighLeft:  num(FieldThighLeft),
			CalfRight:  num(FieldCalfRight),
			CalfLeft:   num(FieldCalfLeft),
		},
	}
}

/* ─── Enumerations ───────────────────────────────────────────────────── */

type Gender string

const (
	GenderUnknown Gender = ""
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
)

// ParseGender accepts male/female in English or Portuguese, any case.
func ParseGender(raw string) Gender {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "male", "m", "masculino":
		return GenderMale
	case "female", "f", "feminino":
		return GenderFemale
	}
	return GenderUnknown
}

// FatMethod selects the source of truth for body-fat percentage.
type FatMethod string

const (
	FatMethodBioimpedance FatMethod = "Bioimpedance"
	FatMethodSkinfolds    FatMethod = "Skinfolds"
	FatMethodTape         FatMethod = "Tape"
)

// fatMethodAliases maps lowercased labels (including the pt-BR labels older
// records were saved with) to a method.
var fatMethodAliases = map[string]FatMethod{
	"bioimpedance":  FatMethodBioimpedance,
	"bioimpedância": FatMethodBioimpedance,
	"bioimpedancia": FatMethodBioimpedance,
	"skinfolds":     FatMethodSkinfolds,
	"dobras":        FatMethodSkinfolds,
	"tape":          FatMethodTape,
	"medidas":       FatMethodTape,
}

// ParseFatMethod maps a label to a FatMethod. Blank or unrecognised labels
// fall back to Bioimpedance, the default on the assessment form.
func ParseFatMethod(raw string) FatMethod {
	if m, ok := fatMethodAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return m
	}
	return FatMethodBioimpedance
}

// BMRFormula is the basal-metabolic-rate reference the coach selected. Only
// Mifflin-St Jeor is computed; the others are recorded as methodology for the
// report writer.
type BMRFormula string

const (
	BMRMifflinStJeor  BMRFormula = "Mifflin-St Jeor"
	BMRHarrisBenedict BMRFormula = "Harris Benedict"
	BMRTenHaaf        BMRFormula = "Ten Haaf"
	BMRCunningham     BMRFormula = "Cunningham"
)

var bmrFormulaAliases = map[string]BMRFormula{
	"mifflin-st jeor": BMRMifflinStJeor,
	"mifflin":         BMRMifflinStJeor,
	"harris benedict": BMRHarrisBenedict,
	"harris-benedict": BMRHarrisBenedict,
	"ten haaf":        BMRTenHaaf,
	"teen haaf":       BMRTenHaaf,
	"cunningham":      BMRCunningham,
}

func ParseBMRFormula(raw string) BMRFormula {
	if f, ok := bmrFormulaAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return f
	}
	return BMRMifflinStJeor
}
