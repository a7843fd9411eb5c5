package main

import (
	"fmt"
	"math"
)

// Keys under which settings are persisted and exposed by SettingsStore.Get.
const (
	keyMAMonths        = "ma_months"
	keyThresholdLow    = "threshold_low"
	keyThresholdHigh   = "threshold_high"
	keyRunwayThreshold = "runway_threshold"
)

// Settings holds the tunable classification parameters. Saved atomically,
// all fields or none.
type Settings struct {
	MAMonths        int
	ThresholdLow    int
	ThresholdHigh   int
	RunwayThreshold float64
}

func defaultSettings() Settings {
	return Settings{
		MAMonths:        3,
		ThresholdLow:    1,
		ThresholdHigh:   3,
		RunwayThreshold: 1.0,
	}
}

// Valid checks the domain invariants before anything is persisted.
func (s Settings) Valid() error {
	if !validMAMonths(s.MAMonths) {
		return fmt.Errorf("ma_months %d is not one of the allowed window sizes", s.MAMonths)
	}
	if !(runwayMin <= s.ThresholdLow && s.ThresholdLow < s.ThresholdHigh && s.ThresholdHigh <= runwayMax) {
		return fmt.Errorf("runway thresholds %d/%d must satisfy %d <= low < high <= %d",
			s.ThresholdLow, s.ThresholdHigh, runwayMin, runwayMax)
	}
	if s.RunwayThreshold < highlightMin || s.RunwayThreshold > highlightMax {
		return fmt.Errorf("runway_threshold %.2f must be between %.1f and %.1f",
			s.RunwayThreshold, highlightMin, highlightMax)
	}
	steps := (s.RunwayThreshold - highlightMin) / highlightStep
	if math.Abs(steps-math.Round(steps)) > 1e-9 {
		return fmt.Errorf("runway_threshold %.2f is not on the %.1f step grid", s.RunwayThreshold, highlightStep)
	}
	return nil
}

// sanitizeSettings replaces out-of-range fields with their defaults so an
// externally edited store can never surface a Settings value that fails
// Valid(). The threshold pair falls back together: a half-replaced pair could
// itself be unordered.
func sanitizeSettings(s Settings) Settings {
	defaults := defaultSettings()
	if !validMAMonths(s.MAMonths) {
		s.MAMonths = defaults.MAMonths
	}
	if !(runwayMin <= s.ThresholdLow && s.ThresholdLow < s.ThresholdHigh && s.ThresholdHigh <= runwayMax) {
		s.ThresholdLow = defaults.ThresholdLow
		s.ThresholdHigh = defaults.ThresholdHigh
	}
	steps := (s.RunwayThreshold - highlightMin) / highlightStep
	if s.RunwayThreshold < highlightMin || s.RunwayThreshold > highlightMax ||
		math.Abs(steps-math.Round(steps)) > 1e-9 {
		s.RunwayThreshold = defaults.RunwayThreshold
	}
	return s
}

func validMAMonths(v int) bool {
	for _, opt := range maMonthOptions {
		if v == opt {
			return true
		}
	}
	return false
}
