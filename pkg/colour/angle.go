package colour

import "math"

// AngleUnit identifies the unit an Angle value is expressed in.
type AngleUnit int

// Supported angle units. A bare numeric hue with no unit is interpreted as
// degrees, so Degrees is the canonical unit throughout the package.
const (
	Degrees AngleUnit = iota
	Radians
)

// Angle is a hue angle tagged with its unit. Angles convert between units
// without loss; trigonometric code always goes through Rad().
type Angle struct {
	Value float64
	Unit  AngleUnit
}

// Deg creates an angle in degrees. This is also the interpretation used for
// unlabelled numeric hues.
func Deg(v float64) Angle {
	return Angle{Value: v, Unit: Degrees}
}

// Rad creates an angle in radians.
func Rad(v float64) Angle {
	return Angle{Value: v, Unit: Radians}
}

// Degrees returns the angle converted to degrees.
func (a Angle) Degrees() float64 {
	if a.Unit == Radians {
		return a.Value * 180 / math.Pi
	}
	return a.Value
}

// Radians returns the angle converted to radians.
func (a Angle) Radians() float64 {
	if a.Unit == Radians {
		return a.Value
	}
	return a.Value * math.Pi / 180
}

// Normalised returns the angle reduced to [0, 360) degrees.
func (a Angle) Normalised() Angle {
	d := math.Mod(a.Degrees(), 360)
	if d < 0 {
		d += 360
	}
	return Deg(d)
}
