package biometric

import (
	"image"
	"image/color"
	"math"
	"testing"

	"veriface.io/application/config"
)

func uniformGray(level uint8, size int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetGray(x, y, color.Gray{Y: level})
		}
	}
	return img
}

// checkerboard alternates black and white pixels, the sharpest and highest
// contrast signal the analyzer can see.
func checkerboard(size int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x+y)%2 == 0 {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

func TestAnalyzeQuality(t *testing.T) {
	bounds := config.Default().Quality

	t.Run("uniform image has exact brightness and no texture", func(t *testing.T) {
		checks := AnalyzeQuality(uniformGray(120, 64), bounds)
		if math.Abs(checks.Brightness-120) > 1 {
			t.Errorf("expected brightness near 120, got %f", checks.Brightness)
		}
		if checks.BlurScore != 0 {
			t.Errorf("expected zero blur score on a flat image, got %f", checks.BlurScore)
		}
		if checks.Contrast > 1 {
			t.Errorf("expected near-zero contrast on a flat image, got %f", checks.Contrast)
		}
		if !checks.IsBrightEnough {
			t.Error("expected brightness gate to pass at level 120")
		}
		if checks.IsSharpEnough {
			t.Error("expected sharpness gate to fail on a flat image")
		}
		if checks.HasGoodContrast {
			t.Error("expected contrast gate to fail on a flat image")
		}
	})

	t.Run("checkerboard passes sharpness and contrast gates", func(t *testing.T) {
		checks := AnalyzeQuality(checkerboard(64), bounds)
		if !checks.IsSharpEnough {
			t.Errorf("expected sharpness gate to pass, blur score %f", checks.BlurScore)
		}
		if !checks.HasGoodContrast {
			t.Errorf("expected contrast gate to pass, contrast %f", checks.Contrast)
		}
	})

	t.Run("dark image fails the brightness gate", func(t *testing.T) {
		checks := AnalyzeQuality(uniformGray(20, 64), bounds)
		if checks.IsBrightEnough {
			t.Errorf("expected brightness gate to fail at level 20, got %f", checks.Brightness)
		}
	})

	t.Run("overexposed image fails the brightness gate", func(t *testing.T) {
		checks := AnalyzeQuality(uniformGray(240, 64), bounds)
		if checks.IsBrightEnough {
			t.Errorf("expected brightness gate to fail at level 240, got %f", checks.Brightness)
		}
	})

	t.Run("deterministic for identical pixels", func(t *testing.T) {
		first := AnalyzeQuality(checkerboard(32), bounds)
		second := AnalyzeQuality(checkerboard(32), bounds)
		if first != second {
			t.Error("expected identical metrics for identical pixel input")
		}
	})
}
