package supersample

import (
	"fmt"

	"github.com/gonum/stat"

	"github.com/lcurve/supersample/pkg/lightcurve"
)

// Sampler expands exposure-center times into evenly spaced sub-exposure
// times and averages per-subsample values back into per-exposure means.
// It is immutable after construction and safe for concurrent use.
type Sampler struct {
	cfg     Config
	offsets []float64
}

// New creates a Sampler with the given config. A nil cfg selects
// DefaultConfig. NSamples must be >= 1 and ExpTime must be > 0; anything
// else is rejected with ErrInvalidConfig.
// Notes:
//   - ExpTime == 0 is rejected rather than treated as "sample at the
//     exposure center"; use NSamples: 1 for that behavior.
//   - Offsets are precomputed once at the mid-points of k equal
//     sub-intervals of [-0.5, 0.5]: offset[i] = (i+0.5)/k - 0.5.
func New(cfg *Config) (*Sampler, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.NSamples < 1 {
		return nil, fmt.Errorf("%w: nsamples %d", ErrInvalidConfig, cfg.NSamples)
	}
	if cfg.ExpTime <= 0 {
		return nil, fmt.Errorf("%w: exptime %g", ErrInvalidConfig, cfg.ExpTime)
	}

	k := cfg.NSamples
	offsets := make([]float64, k)
	for i := range offsets {
		// (i+0.5)/k - 0.5 as a single division, so each offset is the
		// correctly rounded value and symmetry is exact
		offsets[i] = float64(2*i+1-k) / float64(2*k)
	}
	return &Sampler{cfg: *cfg, offsets: offsets}, nil
}

// NSamples returns k, the number of sub-exposure samples per exposure.
func (s *Sampler) NSamples() int { return s.cfg.NSamples }

// ExpTime returns the exposure duration in days.
func (s *Sampler) ExpTime() float64 { return s.cfg.ExpTime }

// Offsets returns a copy of the normalized sub-exposure offsets. They are
// strictly increasing, symmetric about zero, and lie strictly within
// (-0.5, 0.5); scaled by ExpTime they give sub-times relative to an
// exposure center.
func (s *Sampler) Offsets() []float64 {
	out := make([]float64, len(s.offsets))
	copy(out, s.offsets)
	return out
}

// Sample expands n exposure-center times into n*k sub-exposure times,
// laid out exposure-major: the k sub-times of times[0] first, then
// times[1], and so on. The sub-time for exposure i and offset j is
//
//	times[i] + offsets[j]*ExpTime
//
// Pure and deterministic; an empty input yields an empty output.
func (s *Sampler) Sample(times []float64) []float64 {
	out := make([]float64, 0, len(times)*s.cfg.NSamples)
	for _, t := range times {
		for _, o := range s.offsets {
			out = append(out, t+o*s.cfg.ExpTime)
		}
	}
	return out
}

// Average reduces values laid out as produced by Sample back into n
// per-exposure arithmetic means. The input length must be a multiple of
// k; otherwise ErrLengthMismatch is returned and no partial result.
// Non-finite values propagate into the means per IEEE-754.
func (s *Sampler) Average(values []float64) ([]float64, error) {
	k := s.cfg.NSamples
	if len(values)%k != 0 {
		return nil, fmt.Errorf("%w: %d values with %d samples per exposure",
			ErrLengthMismatch, len(values), k)
	}
	out := make([]float64, len(values)/k)
	for i := range out {
		out[i] = stat.Mean(values[i*k:(i+1)*k], nil)
	}
	return out, nil
}

// Integrate approximates the finite-exposure average of an instantaneous
// model over each exposure: the model is evaluated at the sub-exposure
// times and the values are averaged back down. Equivalent to
// Average(lightcurve.Evaluate(m, Sample(times))).
func (s *Sampler) Integrate(times []float64, m lightcurve.Model) ([]float64, error) {
	return s.Average(lightcurve.Evaluate(m, s.Sample(times)))
}
