// Package supersample corrects instantaneous time-series models for
// finite-exposure-time smearing. A detector integrates flux over the whole
// exposure, so evaluating a model only at the exposure center misses the
// smearing that long cadences introduce (e.g. Kepler's 29.4-minute
// exposures around a sharp transit ingress). The fix is classic
// supersampling: evaluate the model at k sub-times inside each exposure
// and average the results.
//
// Overview
//
//   - Sampler:
//     New(cfg) precomputes k normalized offsets at the mid-points of k
//     equal sub-intervals of [-0.5, 0.5] (k=5 gives -0.4, -0.2, 0, 0.2,
//     0.4). The offsets never touch the exposure edges, are strictly
//     increasing and symmetric about zero.
//
//   - Sample(times):
//     expands n exposure-center times into n*k sub-times, exposure-major:
//     sub[i*k+j] = times[i] + offsets[j]*ExpTime.
//
//   - Average(values):
//     reduces n*k values in the same layout back to n per-exposure means.
//
//   - Integrate(times, m):
//     the full loop in one call; m is any lightcurve.Model.
//
//   - Errors (errs.go):
//     ErrInvalidConfig   : NSamples < 1 or ExpTime <= 0 at construction
//     ErrLengthMismatch  : Average input length not a multiple of NSamples
//
// Units are days throughout, matching the photometric convention; any
// consistent unit works as long as times and ExpTime agree.
//
// A Sampler is immutable after construction: Sample and Average read only
// the precomputed offsets and their arguments, so concurrent calls need
// no locking.
//
// Example: averaging a box transit over Kepler long-cadence exposures
//
//	/*
//	s, err := supersample.New(&supersample.Config{NSamples: 7, ExpTime: 0.020433598})
//	if err != nil { log.Fatal(err) }
//
//	times := []float64{...}                  // exposure centers, days
//	model := lightcurve.Box(0.0, 0.12, 0.01) // 1% dip, 0.12 d wide
//	flux, _ := s.Integrate(times, model)
//	*/
//
// Example: the expand/evaluate/reduce steps spelled out
//
//	/*
//	sub := s.Sample(times)                 // len(times)*k sub-times
//	vals := lightcurve.Evaluate(model, sub)
//	flux, err := s.Average(vals)           // one mean per exposure
//	*/
//
// See also pkg/lightcurve for the toy instantaneous models used in tests
// and the demo CLI, and pkg/types.Days for human-friendly duration output.
//
// Package import path: github.com/lcurve/supersample/pkg/supersample
package supersample
