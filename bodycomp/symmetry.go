package bodycomp

import "math"

// BilateralGirths are limb circumferences measured on both sides, in cm.
type BilateralGirths struct {
	ArmRight   Value `json:"arm_right"`
	ArmLeft    Value `json:"arm_left"`
	ThighRight Value `json:"thigh_right"`
	ThighLeft  Value `json:"thigh_left"`
	CalfRight  Value `json:"calf_right"`
	CalfLeft   Value `json:"calf_left"`
}

// LimbPair names one of the three bilateral pairs.
type LimbPair string

const (
	PairArm   LimbPair = "arm"
	PairThigh LimbPair = "thigh"
	PairCalf  LimbPair = "calf"
)

// PairAsymmetry is the contribution of one measured pair to the score.
type PairAsymmetry struct {
	Pair        LimbPair `json:"pair"`
	DiffPercent float64  `json:"diff_percent"`
	Penalty     float64  `json:"penalty"`
}

// SymmetryScore is 0..100, Unknown when no pair could be measured.
// MeasuredPairCount lets callers decide whether the score means much.
type SymmetryScore struct {
	Score             Value           `json:"score"`
	MeasuredPairCount int             `json:"measured_pair_count"`
	Pairs             []PairAsymmetry `json:"pairs"`
}

// asymmetryPenaltyFactor converts a percentage difference into score points.
const asymmetryPenaltyFactor = 2

// ScoreSymmetry penalises each measured pair by twice its percentage
// difference relative to the larger side. A pair counts only when both sides
// are known and positive.
func ScoreSymmetry(b BilateralGirths) SymmetryScore {
	pairs := []struct {
		name        LimbPair
		right, left Value
	}{
		{PairArm, b.ArmRight, b.ArmLeft},
		{PairThigh, b.ThighRight, b.ThighLeft},
		{PairCalf, b.CalfRight, b.CalfLeft},
	}

	res := SymmetryScore{Pairs: []PairAsymmetry{}}
	var penalty float64
	for _, p := range pairs {
		if !p.right.Positive() || !p.left.Positive() {
			continue
		}
		r, _ := p.right.Get()
		l, _ := p.left.Get()
		diff := math.Abs(r-l) / math.Max(r, l) * 100
		pen := diff * asymmetryPenaltyFactor
		penalty += pen
		res.MeasuredPairCount++
		res.Pairs = append(res.Pairs, PairAsymmetry{Pair: p.name, DiffPercent: diff, Penalty: pen})
	}

	if res.MeasuredPairCount == 0 {
		return res
	}
	res.Score = Known(math.Round(math.Max(0, 100-penalty)))
	return res
}
