package anxiety

import "math"

// Anxiety levels derived from the weighted score.
const (
	LevelLow      = "Low"
	LevelModerate = "Moderate"
	LevelHigh     = "High"
)

// Calculate maps emotion probabilities to an anxiety score and level.
// Emotions missing from the map count as zero. The score is rounded to two
// decimals and the level thresholds apply to the rounded value, so a returned
// score of 30.00 is always Moderate and 60.00 always High.
func Calculate(emotions map[string]float64) (float64, string) {
	score := 0.5*emotions["fear"] + 0.3*emotions["sad"] + 0.2*emotions["surprise"]
	score = math.Round(score*100) / 100

	level := LevelLow
	if score >= 60 {
		level = LevelHigh
	} else if score >= 30 {
		level = LevelModerate
	}

	return score, level
}
