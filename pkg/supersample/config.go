package supersample

// Config holds the sampling configuration.
// Units:
//   - NSamples: sub-exposure samples per exposure (k)
//   - ExpTime: exposure duration in days
type Config struct {
	NSamples int
	ExpTime  float64
}

// DefaultConfig returns a Config matching the Kepler long-cadence setup:
// a single sample over a 29.4-minute exposure.
func DefaultConfig() *Config {
	return &Config{
		NSamples: 1,
		ExpTime:  0.020433598, // Kepler long cadence, days
	}
}
