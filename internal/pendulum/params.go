package pendulum

import (
	"fmt"
	"math"
)

// Parameters fully determine a trajectory and therefore the derived key.
// They are the secret shared between encrypting and decrypting parties.
type Parameters struct {
	Duration float64 // seconds simulated
	Samples  int     // evenly spaced samples over [0, Duration]
	Theta1   float64 // initial angles, radians
	Omega1   float64 // initial angular velocities, radians/second
	Theta2   float64
	Omega2   float64
	Mass1    float64
	Mass2    float64
	Length1  float64
	Length2  float64
	Gravity  float64
}

// Validate reports whether p can be simulated.
func (p Parameters) Validate() error {
	for name, v := range map[string]float64{
		"duration": p.Duration,
		"theta1":   p.Theta1,
		"omega1":   p.Omega1,
		"theta2":   p.Theta2,
		"omega2":   p.Omega2,
		"mass1":    p.Mass1,
		"mass2":    p.Mass2,
		"length1":  p.Length1,
		"length2":  p.Length2,
		"gravity":  p.Gravity,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidParameters, name, v)
		}
	}
	switch {
	case p.Samples < 1:
		return fmt.Errorf("%w: samples %d", ErrInvalidParameters, p.Samples)
	case p.Duration < 0:
		return fmt.Errorf("%w: duration %v", ErrInvalidParameters, p.Duration)
	case p.Mass1 <= 0 || p.Mass2 <= 0:
		return fmt.Errorf("%w: masses must be positive", ErrInvalidParameters)
	case p.Length1 <= 0 || p.Length2 <= 0:
		return fmt.Errorf("%w: lengths must be positive", ErrInvalidParameters)
	}
	return nil
}

// Reach is the largest distance of the outer mass from the pivot.
func (p Parameters) Reach() float64 {
	return p.Length1 + p.Length2
}
