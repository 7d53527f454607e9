package pendulum

import "math"

// DefaultMaxStep bounds the integrator step in seconds.
const DefaultMaxStep = 1e-3

// Trajectory holds mass positions at each sample instant. All four slices
// have the same length.
type Trajectory struct {
	X1, Y1, X2, Y2 []float64
}

// Len returns the number of samples.
func (t *Trajectory) Len() int { return len(t.X1) }

// SampleSource turns parameters into four equal-length sequences.
type SampleSource interface {
	Sample(p Parameters) (*Trajectory, error)
}

// Simulator integrates the equations of motion with fixed-step RK4.
type Simulator struct {
	// MaxStep is the largest integrator step. Zero means DefaultMaxStep.
	MaxStep float64
}

var _ SampleSource = Simulator{}

// Simulate runs the default Simulator.
func Simulate(p Parameters) (*Trajectory, error) {
	return Simulator{}.Sample(p)
}

type state [4]float64 // theta1, omega1, theta2, omega2

// Sample integrates from the initial conditions in p and samples the
// trajectory on linspace(0, Duration, Samples).
func (s Simulator) Sample(p Parameters) (*Trajectory, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	maxStep := s.MaxStep
	if maxStep <= 0 {
		maxStep = DefaultMaxStep
	}

	n := p.Samples
	tr := &Trajectory{
		X1: make([]float64, n),
		Y1: make([]float64, n),
		X2: make([]float64, n),
		Y2: make([]float64, n),
	}

	y := state{p.Theta1, p.Omega1, p.Theta2, p.Omega2}
	tr.record(0, p, y)
	if n == 1 {
		return tr, nil
	}

	interval := p.Duration / float64(n-1)
	steps := int(math.Ceil(interval / maxStep))
	if steps < 1 {
		steps = 1
	}
	h := interval / float64(steps)
	for i := 1; i < n; i++ {
		for k := 0; k < steps; k++ {
			y = rk4(p, y, h)
		}
		tr.record(i, p, y)
	}
	return tr, nil
}

func (t *Trajectory) record(i int, p Parameters, y state) {
	s1, c1 := math.Sincos(y[0])
	s2, c2 := math.Sincos(y[2])
	t.X1[i] = p.Length1 * s1
	t.Y1[i] = -p.Length1 * c1
	t.X2[i] = t.X1[i] + p.Length2*s2
	t.Y2[i] = t.Y1[i] - p.Length2*c2
}

func rk4(p Parameters, y state, h float64) state {
	k1 := derivative(p, y)
	k2 := derivative(p, y.add(k1, h/2))
	k3 := derivative(p, y.add(k2, h/2))
	k4 := derivative(p, y.add(k3, h))
	var out state
	for i := range out {
		out[i] = y[i] + h/6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return out
}

func (y state) add(d state, h float64) state {
	for i := range y {
		y[i] += h * d[i]
	}
	return y
}

// derivative is the Lagrangian equation of motion for two point masses on
// rigid massless rods.
func derivative(p Parameters, y state) state {
	th1, w1, th2, w2 := y[0], y[1], y[2], y[3]
	m1, m2, l1, l2, g := p.Mass1, p.Mass2, p.Length1, p.Length2, p.Gravity

	d := th1 - th2
	sd, cd := math.Sincos(d)
	den := 2*m1 + m2 - m2*math.Cos(2*d)

	a1 := (-g*(2*m1+m2)*math.Sin(th1) - m2*g*math.Sin(th1-2*th2) -
		2*sd*m2*(w2*w2*l2+w1*w1*l1*cd)) / (l1 * den)
	a2 := 2 * sd * (w1*w1*l1*(m1+m2) + g*(m1+m2)*math.Cos(th1) + w2*w2*l2*m2*cd) / (l2 * den)

	return state{w1, a1, w2, a2}
}
