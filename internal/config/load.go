package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/structhealth/modal-tracking/go-analyzer/internal/pipeline"
	"github.com/structhealth/modal-tracking/go-analyzer/internal/shape"
)

// #region load
// Load reads a YAML file over the defaults and validates the result. Keys
// absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks threshold ranges and reference shape consistency.
func (c *Config) Validate() error {
	a := c.Analysis
	if a.MAC.MinMatch < 0 || a.MAC.MinMatch > 1 {
		return fmt.Errorf("mac.min_match %v outside [0,1]", a.MAC.MinMatch)
	}
	if a.DeviationScore.Threshold <= 0 {
		return fmt.Errorf("deviation_score.threshold %v must be positive", a.DeviationScore.Threshold)
	}
	if a.TrendFit.PolynomialDegree < 1 {
		return fmt.Errorf("trend_fit.polynomial_degree %d must be at least 1", a.TrendFit.PolynomialDegree)
	}
	if a.TrendFit.ConfidenceLevel <= 0 || a.TrendFit.ConfidenceLevel >= 1 {
		return fmt.Errorf("trend_fit.confidence_level %v outside (0,1)", a.TrendFit.ConfidenceLevel)
	}
	if a.JointDistance.DistanceThreshold <= 0 {
		return fmt.Errorf("joint_distance.distance_threshold %v must be positive", a.JointDistance.DistanceThreshold)
	}
	if a.JointDistance.MACThreshold < 0 || a.JointDistance.MACThreshold > 1 {
		return fmt.Errorf("joint_distance.mac_threshold %v outside [0,1]", a.JointDistance.MACThreshold)
	}

	sensorCount := len(c.OMA.Geometry.SensorNames)
	for modeNumber, mp := range a.Modes {
		if len(mp.References) == 0 {
			return fmt.Errorf("mode %d has no references", modeNumber)
		}
		for label, vec := range mp.References {
			if len(vec) == 0 {
				return fmt.Errorf("mode %d reference %s is empty", modeNumber, label)
			}
			if sensorCount > 0 && len(vec) != sensorCount {
				return fmt.Errorf("mode %d reference %s has %d components for %d sensors", modeNumber, label, len(vec), sensorCount)
			}
		}
	}
	return nil
}

// #endregion load

// #region conversion
// ModeNumbers lists the configured modes in ascending order.
func (c *Config) ModeNumbers() []int {
	out := make([]int, 0, len(c.Analysis.Modes))
	for m := range c.Analysis.Modes {
		out = append(out, m)
	}
	sort.Ints(out)
	return out
}

// PipelineConfig assembles the per-mode analysis configuration. Reference
// order is fixed by sorting labels.
func (c *Config) PipelineConfig(modeNumber int) (pipeline.Config, error) {
	mp, ok := c.Analysis.Modes[modeNumber]
	if !ok {
		return pipeline.Config{}, fmt.Errorf("mode %d not configured", modeNumber)
	}

	labels := make([]string, 0, len(mp.References))
	for label := range mp.References {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	refs := make([]shape.Reference, 0, len(labels))
	for _, label := range labels {
		refs = append(refs, shape.Reference{
			ModeNumber: modeNumber,
			Label:      label,
			Vector:     mp.References[label],
		})
	}

	pc := pipeline.DefaultConfig()
	pc.References = refs
	pc.Match.MinMatch = c.Analysis.MAC.MinMatch
	pc.BestOnly = c.Analysis.BestOnly
	pc.Deviation.Threshold = c.Analysis.DeviationScore.Threshold
	pc.TrendFit.PolynomialDegree = c.Analysis.TrendFit.PolynomialDegree
	pc.TrendFit.ConfidenceLevel = c.Analysis.TrendFit.ConfidenceLevel
	pc.Joint.DistanceThreshold = c.Analysis.JointDistance.DistanceThreshold
	pc.Joint.MACThreshold = c.Analysis.JointDistance.MACThreshold
	return pc, nil
}

// #endregion conversion
