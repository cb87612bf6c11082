package types

import "fmt"

// Days is a float64 wrapper representing a duration in days.
type Days float64

// Humanized returns a human-readable string with automatic unit (d, h, min, s).
func (d Days) Humanized() string {
	v := float64(d)
	switch {
	case v >= 1:
		return fmt.Sprintf("%.2f d", v)
	case v >= 1.0/24:
		return fmt.Sprintf("%.2f h", v*24)
	case v >= 1.0/1440:
		return fmt.Sprintf("%.2f min", v*1440)
	default:
		return fmt.Sprintf("%.2f s", v*86400)
	}
}

// Hours returns the duration in hours.
func (d Days) Hours() float64 { return float64(d) * 24 }

// Minutes returns the duration in minutes.
func (d Days) Minutes() float64 { return float64(d) * 1440 }

// Seconds returns the duration in seconds.
func (d Days) Seconds() float64 { return float64(d) * 86400 }
