package lightcurve

// Model is an instantaneous flux model: flux as a function of time in days.
type Model func(t float64) float64

// Step returns a model that is 0 up to and including t0 and 1 after it.
func Step(t0 float64) Model {
	return func(t float64) float64 {
		if t > t0 {
			return 1
		}
		return 0
	}
}

// Box returns a unit-baseline model with a flat dip of the given depth,
// centered on center and lasting width days. The dip interval is closed
// on both ends.
func Box(center, width, depth float64) Model {
	lo := center - width/2
	hi := center + width/2
	return func(t float64) float64 {
		if t >= lo && t <= hi {
			return 1 - depth
		}
		return 1
	}
}

// Evaluate applies m elementwise to times.
func Evaluate(m Model, times []float64) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = m(t)
	}
	return out
}
