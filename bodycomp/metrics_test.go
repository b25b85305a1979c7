package bodycomp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBMI(t *testing.T) {
	v, ok := BMI(Known(80), Known(180)).Get()
	require.True(t, ok)
	assert.InDelta(t, 24.69, v, 0.01)
	assert.Equal(t, Known(24.69), BMI(Known(80), Known(180)).Round(2))
}

func TestBMI_Unknown(t *testing.T) {
	cases := []struct {
		name           string
		weight, height Value
	}{
		{"zero weight", Known(0), Known(180)},
		{"zero height", Known(80), Known(0)},
		{"negative height", Known(80), Known(-170)},
		{"missing weight", Unknown, Known(180)},
		{"missing height", Known(80), Unknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, Unknown, BMI(tc.weight, tc.height))
		})
	}
}

/* ─── BMR / maintenance ──────────────────────────────────────────────── */

func TestBMR_AllInputs(t *testing.T) {
	// 10*80 + 6.25*180 - 5*30 + 5 = 1780
	assert.Equal(t, Known(1780), BMR(Known(80), Known(180), Known(30)))
}

func TestBMR_Fallbacks(t *testing.T) {
	// height 170, age 30: 10*70 + 1062.5 - 150 + 5 = 1617.5
	assert.Equal(t, Known(1617.5), BMR(Known(70), Unknown, Unknown))
}

func TestBMR_RequiresWeight(t *testing.T) {
	assert.Equal(t, Unknown, BMR(Unknown, Known(180), Known(30)))
	assert.Equal(t, Unknown, BMR(Known(0), Known(180), Known(30)))
}

func TestMaintenanceCalories(t *testing.T) {
	v, ok := MaintenanceCalories(Known(1780)).Get()
	require.True(t, ok)
	assert.InDelta(t, 2447.5, v, 1e-9)
	assert.Equal(t, Unknown, MaintenanceCalories(Unknown))
}

func TestTDEE_UnknownLevel(t *testing.T) {
	assert.Equal(t, Unknown, TDEE(Known(1500), "couch"))
	v, _ := TDEE(Known(1000), ActivityVeryActive).Get()
	assert.InDelta(t, 1900, v, 1e-9)
}

/* ─── Advisory suggestions ───────────────────────────────────────────── */

func TestSuggestMetabolicAge(t *testing.T) {
	assert.Equal(t, Known(26), SuggestMetabolicAge(Known(30)))
	assert.Equal(t, Known(5), SuggestMetabolicAge(Known(5)))
	assert.Equal(t, Known(3), SuggestMetabolicAge(Known(3)))
	assert.Equal(t, Known(25), SuggestMetabolicAge(Unknown))
}

func TestSuggestLeanMass(t *testing.T) {
	assert.Equal(t, Known(78), SuggestLeanMass(Known(22)))
	assert.Equal(t, Unknown, SuggestLeanMass(Unknown))
}

func TestSuggestVisceralFat(t *testing.T) {
	assert.Equal(t, Known(7), SuggestVisceralFat())
}
