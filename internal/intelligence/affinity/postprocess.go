package affinity

import "math"

// Final scores are confined to a fixed band: raw regression outputs below the
// floor (including the 0.0 emitted for a failed batch) collapse to the floor,
// outputs above the ceiling collapse to the ceiling.
const (
	ScoreFloor   = 4.0
	ScoreCeiling = 12.0
)

// failedBatchRawScore is the raw placeholder recorded for every member of a
// batch whose inference call failed.
const failedBatchRawScore = 0.0

// FinalizeScore maps a raw model output onto the reportable score band:
// clamp to [ScoreFloor, ScoreCeiling], then round to two decimals.
func FinalizeScore(raw float64) float64 {
	clamped := math.Max(ScoreFloor, math.Min(ScoreCeiling, raw))
	return math.Round(clamped*100) / 100
}

// FinalizeScores applies FinalizeScore element-wise, preserving order.
func FinalizeScores(raw []float64) []float64 {
	out := make([]float64, len(raw))
	for i, r := range raw {
		out[i] = FinalizeScore(r)
	}
	return out
}
