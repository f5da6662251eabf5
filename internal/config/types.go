package config

// #region types
// Config is the full analyzer configuration, loaded from YAML. Zero values
// are filled from Default before the file is applied, so partial files work.
type Config struct {
	CaseName         string           `yaml:"case_name"`
	SignalProcessing SignalProcessing `yaml:"signal_processing"`
	OMA              OMA              `yaml:"oma"`
	Paths            Paths            `yaml:"paths"`
	Analysis         Analysis         `yaml:"analysis"`
}

// SignalProcessing carries acquisition parameters from the upstream steps.
type SignalProcessing struct {
	SamplingFrequency float64 `yaml:"sampling_frequency"` // Hz
}

// OMA locates the modal identification service and the sensor layout.
type OMA struct {
	Geometry       Geometry `yaml:"geometry"`
	ServiceAddress string   `yaml:"service_address"`
}

// Geometry names the sensor channels in mode-shape component order.
type Geometry struct {
	SensorNames []string `yaml:"sensor_names"`
}

// Paths locates input candidate sets and analysis outputs.
type Paths struct {
	CandidateDir string `yaml:"candidate_dir"`
	OutputDir    string `yaml:"output_dir"`
	Database     string `yaml:"database"`
}

// Analysis bundles detection thresholds and the tracked modes.
type Analysis struct {
	BestOnly       bool                `yaml:"best_only"`
	MAC            MACParams           `yaml:"mac"`
	DeviationScore DeviationParams     `yaml:"deviation_score"`
	TrendFit       TrendFitParams      `yaml:"trend_fit"`
	JointDistance  JointDistanceParams `yaml:"joint_distance"`
	Modes          map[int]ModeParams  `yaml:"modes"`
}

// MACParams controls reference matching.
type MACParams struct {
	MinMatch float64 `yaml:"min_match"`
}

// DeviationParams controls the z-score method.
type DeviationParams struct {
	Threshold float64 `yaml:"threshold"`
}

// TrendFitParams controls the polynomial band method.
type TrendFitParams struct {
	PolynomialDegree int     `yaml:"polynomial_degree"`
	ConfidenceLevel  float64 `yaml:"confidence_level"`
}

// JointDistanceParams controls the frequency/MAC distance method.
type JointDistanceParams struct {
	DistanceThreshold float64 `yaml:"distance_threshold"`
	MACThreshold      float64 `yaml:"mac_threshold"`
}

// ModeParams holds one tracked mode's reference shapes, label -> vector.
type ModeParams struct {
	References map[string][]float64 `yaml:"references"`
}

// #endregion types

// #region defaults
// Default returns the standard configuration. Reference shapes must come
// from a file; everything else has a workable value.
func Default() Config {
	return Config{
		SignalProcessing: SignalProcessing{SamplingFrequency: 250},
		OMA:              OMA{ServiceAddress: "localhost:50061"},
		Paths: Paths{
			CandidateDir: "data/oma",
			OutputDir:    "data/analysis",
			Database:     "analysis.db",
		},
		Analysis: Analysis{
			BestOnly:       true,
			MAC:            MACParams{MinMatch: 0.5},
			DeviationScore: DeviationParams{Threshold: 2.0},
			TrendFit:       TrendFitParams{PolynomialDegree: 2, ConfidenceLevel: 0.95},
			JointDistance:  JointDistanceParams{DistanceThreshold: 3.0, MACThreshold: 0.5},
		},
	}
}

// #endregion defaults
