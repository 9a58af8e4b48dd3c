package biometric

import (
	"image"
	"math"

	"veriface.io/infrastructure/imaging"
)

// LocalSpoofSignal estimates a passive anti-spoofing signal in [0, 1] from
// the pixel data alone: the high-frequency texture energy of the face region
// combined with the colour spread across channels. Printouts and screen
// replays tend to flatten both. This is a fallback heuristic for engines
// that report no liveness probability and is a documented limitation, not a
// guaranteed spoof defense.
func LocalSpoofSignal(img image.Image) float64 {
	luma := imaging.Luma(img)
	texture := math.Min(1, laplacianVariance(luma)/500.0)
	colour := math.Min(1, channelMeanVariance(img)/300.0)
	return 0.5*texture + 0.5*colour
}

// channelMeanVariance is the variance across the three channel means. Live
// skin tones keep the channels apart; recaptured images compress them.
func channelMeanVariance(img image.Image) float64 {
	bounds := img.Bounds()
	var sumR, sumG, sumB float64
	count := float64(bounds.Dx() * bounds.Dy())
	if count == 0 {
		return 0
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			sumR += float64(r) / 257.0
			sumG += float64(g) / 257.0
			sumB += float64(b) / 257.0
		}
	}
	means := []float64{sumR / count, sumG / count, sumB / count}
	overall := (means[0] + means[1] + means[2]) / 3
	variance := 0.0
	for _, m := range means {
		diff := m - overall
		variance += diff * diff
	}
	return variance / 3
}
