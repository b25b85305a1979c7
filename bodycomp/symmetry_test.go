package bodycomp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreSymmetry_SinglePair(t *testing.T) {
	s := ScoreSymmetry(BilateralGirths{ArmRight: Known(36), ArmLeft: Known(34)})

	assert.Equal(t, 1, s.MeasuredPairCount)
	assert.Equal(t, Known(89), s.Score)
	require.Len(t, s.Pairs, 1)
	assert.Equal(t, PairArm, s.Pairs[0].Pair)
	assert.InDelta(t, 5.5556, s.Pairs[0].DiffPercent, 1e-4)
	assert.InDelta(t, 11.1111, s.Pairs[0].Penalty, 1e-4)
}

func TestScoreSymmetry_AllPairs(t *testing.T) {
	s := ScoreSymmetry(BilateralGirths{
		ArmRight: Known(36), ArmLeft: Known(34), // 11.11
		ThighRight: Known(58), ThighLeft: Known(60), // 6.67
		CalfRight: Known(38), CalfLeft: Known(38), // 0
	})

	assert.Equal(t, 3, s.MeasuredPairCount)
	assert.Equal(t, Known(82), s.Score)
}

func TestScoreSymmetry_NothingMeasured(t *testing.T) {
	cases := []struct {
		name string
		b    BilateralGirths
	}{
		{"empty", BilateralGirths{}},
		{"one side only", BilateralGirths{ArmRight: Known(36), ThighLeft: Known(55)}},
		{"zero sides", BilateralGirths{ArmRight: Known(0), ArmLeft: Known(0)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := ScoreSymmetry(tc.b)
			assert.Equal(t, 0, s.MeasuredPairCount)
			assert.False(t, s.Score.IsKnown())
			assert.Empty(t, s.Pairs)
		})
	}
}

func TestScoreSymmetry_FloorsAtZero(t *testing.T) {
	s := ScoreSymmetry(BilateralGirths{
		ArmRight: Known(40), ArmLeft: Known(10),
		ThighRight: Known(60), ThighLeft: Known(20),
	})
	assert.Equal(t, 2, s.MeasuredPairCount)
	assert.Equal(t, Known(0), s.Score)
}
