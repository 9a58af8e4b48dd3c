package biometric

import (
	"image"
	"math"

	"veriface.io/application/config"
	"veriface.io/entities"
)

// LivenessAssessment is the combined verdict for one live capture.
type LivenessAssessment struct {
	Score         float64
	Passed        bool
	Checks        entities.QualityChecks
	ThresholdUsed float64
	SpoofSignal   float64
}

// AssessLiveness scores a face crop. Quality sub-scores and the passive
// anti-spoofing signal are weighted into a 0-100 score, but the three
// quality gates are hard requirements: a capture that fails any gate never
// passes regardless of its weighted score. When the face engine supplied a
// liveness probability it is used as the spoof signal; otherwise a local
// pixel heuristic stands in.
func AssessLiveness(crop image.Image, engineSpoofProbability *float64, cfg config.VerificationConfig) LivenessAssessment {
	checks := AnalyzeQuality(crop, cfg.Quality)

	brightnessScore := 1 - math.Abs(checks.Brightness-128)/128
	if brightnessScore < 0 {
		brightnessScore = 0
	}
	textureScore := math.Min(1, checks.BlurScore/200)
	contrastScore := math.Min(1, checks.Contrast/60)

	var spoofSignal float64
	if engineSpoofProbability != nil {
		spoofSignal = *engineSpoofProbability
	} else {
		spoofSignal = LocalSpoofSignal(crop)
	}

	score := 100 * (0.25*brightnessScore + 0.25*textureScore + 0.2*contrastScore + 0.3*spoofSignal)
	if score > 100 {
		score = 100
	}

	threshold := cfg.LivenessThreshold()
	return LivenessAssessment{
		Score:         score,
		Passed:        score >= threshold && checks.AllPassed(),
		Checks:        checks,
		ThresholdUsed: threshold,
		SpoofSignal:   spoofSignal,
	}
}
