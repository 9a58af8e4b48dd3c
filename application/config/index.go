package config

import (
	"os"
	"strconv"
	"sync"
	"time"
)

type LivenessSensitivity string

const (
	SensitivityLow    LivenessSensitivity = "low"
	SensitivityMedium LivenessSensitivity = "medium"
	SensitivityHigh   LivenessSensitivity = "high"
)

// QualityBounds are the hard gates applied to any facial image before it
// can pass a liveness check.
type QualityBounds struct {
	BrightnessMin float64
	BrightnessMax float64
	BlurMin       float64
	ContrastMin   float64
}

// VerificationConfig is the configuration snapshot passed explicitly into
// every pipeline operation. Thresholds recorded on a result record always
// come from the snapshot active at call time, never from ambient state.
type VerificationConfig struct {
	OCRConfidenceMin       float64
	MatchDistanceThreshold float64
	LivenessSensitivity    LivenessSensitivity
	MinFaceSize            int
	StageTimeout           time.Duration
	Quality                QualityBounds
}

// LivenessThreshold maps the configured sensitivity to the minimum
// liveness score (0-100) a capture must reach to pass.
func (c VerificationConfig) LivenessThreshold() float64 {
	switch c.LivenessSensitivity {
	case SensitivityLow:
		return 40
	case SensitivityHigh:
		return 70
	default:
		return 55
	}
}

func Default() VerificationConfig {
	return VerificationConfig{
		OCRConfidenceMin:       60,
		MatchDistanceThreshold: 0.6,
		LivenessSensitivity:    SensitivityMedium,
		MinFaceSize:            100,
		StageTimeout:           15 * time.Second,
		Quality: QualityBounds{
			BrightnessMin: 50,
			BrightnessMax: 200,
			BlurMin:       100,
			ContrastMin:   30,
		},
	}
}

var (
	active     VerificationConfig
	activeOnce sync.Once
)

// Initialise loads the configuration snapshot from the environment once at
// startup. Subsequent Snapshot calls return copies of the loaded value.
func Initialise() {
	activeOnce.Do(func() {
		active = load()
	})
}

func Snapshot() VerificationConfig {
	Initialise()
	return active
}

func load() VerificationConfig {
	cfg := Default()
	if v, ok := envFloat("OCR_CONFIDENCE_MIN"); ok && v >= 0 && v <= 100 {
		cfg.OCRConfidenceMin = v
	}
	if v, ok := envFloat("FACE_MATCH_THRESHOLD"); ok && v > 0 && v <= 1 {
		cfg.MatchDistanceThreshold = v
	}
	switch LivenessSensitivity(os.Getenv("LIVENESS_SENSITIVITY")) {
	case SensitivityLow:
		cfg.LivenessSensitivity = SensitivityLow
	case SensitivityMedium:
		cfg.LivenessSensitivity = SensitivityMedium
	case SensitivityHigh:
		cfg.LivenessSensitivity = SensitivityHigh
	}
	if v, ok := envInt("MIN_FACE_SIZE"); ok && v > 0 {
		cfg.MinFaceSize = v
	}
	if v, ok := envInt("STAGE_TIMEOUT_SECONDS"); ok && v > 0 {
		cfg.StageTimeout = time.Duration(v) * time.Second
	}
	return cfg
}

func envFloat(key string) (float64, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func envInt(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
