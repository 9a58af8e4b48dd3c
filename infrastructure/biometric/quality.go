package biometric

import (
	"image"
	"math"

	"veriface.io/application/config"
	"veriface.io/entities"
	"veriface.io/infrastructure/imaging"
)

// AnalyzeQuality computes brightness (mean luma), blur score (variance of a
// Laplacian edge response, higher = sharper) and contrast (standard
// deviation of luma) for a facial image, plus the derived gate booleans.
// Pure and deterministic given identical pixel input.
func AnalyzeQuality(img image.Image, bounds config.QualityBounds) entities.QualityChecks {
	luma := imaging.Luma(img)

	brightness := meanOf(luma)
	blur := laplacianVariance(luma)
	contrast := stddevOf(luma, brightness)

	return entities.QualityChecks{
		Brightness:      brightness,
		BlurScore:       blur,
		Contrast:        contrast,
		IsBrightEnough:  brightness > bounds.BrightnessMin && brightness < bounds.BrightnessMax,
		IsSharpEnough:   blur > bounds.BlurMin,
		HasGoodContrast: contrast > bounds.ContrastMin,
	}
}

func meanOf(luma [][]float64) float64 {
	total := 0.0
	count := 0
	for _, row := range luma {
		for _, v := range row {
			total += v
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

func stddevOf(luma [][]float64, mean float64) float64 {
	total := 0.0
	count := 0
	for _, row := range luma {
		for _, v := range row {
			diff := v - mean
			total += diff * diff
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return math.Sqrt(total / float64(count))
}

// laplacianVariance applies the 4-neighbour Laplacian kernel and returns
// the variance of the response over the interior pixels.
func laplacianVariance(luma [][]float64) float64 {
	height := len(luma)
	if height < 3 {
		return 0
	}
	width := len(luma[0])
	if width < 3 {
		return 0
	}

	responses := make([]float64, 0, (height-2)*(width-2))
	sum := 0.0
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			response := 4*luma[y][x] - luma[y-1][x] - luma[y+1][x] - luma[y][x-1] - luma[y][x+1]
			responses = append(responses, response)
			sum += response
		}
	}

	mean := sum / float64(len(responses))
	variance := 0.0
	for _, response := range responses {
		diff := response - mean
		variance += diff * diff
	}
	return variance / float64(len(responses))
}
