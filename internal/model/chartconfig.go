package model

// Window bounds for the chart controls.
const (
	MinMAWindow         = 5
	MaxMAWindow         = 200
	MinOscillatorWindow = 5
	MaxOscillatorWindow = 50
)

// ChartConfig is an immutable snapshot of the chart controls for one
// render cycle. It is built once from user input and threaded
// explicitly through the pipeline; rendering code never reads ambient
// state. Any combination of panel flags, including none, is valid.
type ChartConfig struct {
	PrimaryMA         bool
	PrimaryMAWindow   int
	SecondaryMA       bool
	SecondaryMAWindow int
	Oscillator        bool
	OscillatorWindow  int
	VolumePanel       bool
}

// DefaultChartConfig mirrors the dashboard's initial control values.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		PrimaryMA:         true,
		PrimaryMAWindow:   50,
		SecondaryMA:       true,
		SecondaryMAWindow: 200,
		Oscillator:        true,
		OscillatorWindow:  14,
		VolumePanel:       true,
	}
}
