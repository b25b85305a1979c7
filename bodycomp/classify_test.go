package bodycomp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBMI(t *testing.T) {
	cases := []struct {
		v    float64
		want Status
	}{
		{16, Underweight},
		{18.49, Underweight},
		{18.5, Normal},
		{24.99, Normal},
		{25, Overweight},
		{29.9, Overweight},
		{30, Obese},
		{42, Obese},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyBMI(Known(tc.v)), "bmi %v", tc.v)
	}
	assert.Equal(t, NotAvailable, ClassifyBMI(Unknown))
}

func TestClassifyBodyFat(t *testing.T) {
	cases := []struct {
		v    float64
		want Status
	}{
		{6, Athlete},
		{10, Good},
		{19.9, Good},
		{20, Average},
		{24.9, Average},
		{25, High},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyBodyFat(Known(tc.v)), "body fat %v", tc.v)
	}
	assert.Equal(t, NotAvailable, ClassifyBodyFat(Unknown))
}

func TestClassifyVisceralFat(t *testing.T) {
	assert.Equal(t, Healthy, ClassifyVisceralFat(Known(0)))
	assert.Equal(t, Healthy, ClassifyVisceralFat(Known(9)))
	assert.Equal(t, Elevated, ClassifyVisceralFat(Known(9.5)))
	assert.Equal(t, Elevated, ClassifyVisceralFat(Known(14)))
	assert.Equal(t, HighRisk, ClassifyVisceralFat(Known(15)))
	assert.Equal(t, NotAvailable, ClassifyVisceralFat(Unknown))
}

func TestClassifyMetabolicAge(t *testing.T) {
	assert.Equal(t, Excellent, ClassifyMetabolicAge(Known(26), Known(30)))
	assert.Equal(t, Normal, ClassifyMetabolicAge(Known(30), Known(30)))
	assert.Equal(t, Attention, ClassifyMetabolicAge(Known(35), Known(30)))
	assert.Equal(t, NotAvailable, ClassifyMetabolicAge(Known(35), Unknown))
	assert.Equal(t, NotAvailable, ClassifyMetabolicAge(Unknown, Known(30)))
}

func TestClassify_Dispatch(t *testing.T) {
	ctx := Context{ChronologicalAge: Known(40)}
	assert.Equal(t, Normal, Classify(MetricBMI, Known(22), ctx))
	assert.Equal(t, High, Classify(MetricBodyFat, Known(31), ctx))
	assert.Equal(t, Elevated, Classify(MetricVisceralFat, Known(12), ctx))
	assert.Equal(t, Excellent, Classify(MetricMetabolicAge, Known(36), ctx))
	assert.Equal(t, NotAvailable, Classify(MetricWeight, Known(80), ctx))
}

func TestClassify_Idempotent(t *testing.T) {
	first := ClassifyBMI(Known(27.3))
	second := ClassifyBMI(Known(27.3))
	assert.Equal(t, first, second)
}

func TestSummarize(t *testing.T) {
	a := Assessment{
		Age:            Known(30),
		BMI:            Known(24.69),
		BodyFatPercent: Known(12.5),
		VisceralFat:    Known(7),
		MetabolicAge:   Known(26),
	}
	assert.Equal(t, Classification{
		BMI:          Normal,
		BodyFat:      Good,
		VisceralFat:  Healthy,
		MetabolicAge: Excellent,
	}, Summarize(a))

	assert.Equal(t, Classification{
		BMI:          NotAvailable,
		BodyFat:      NotAvailable,
		VisceralFat:  NotAvailable,
		MetabolicAge: NotAvailable,
	}, Summarize(Assessment{}))
}
