package pendulum

import (
	"errors"
	"math"
	"testing"
)

func defaultParams() Parameters {
	return Parameters{
		Duration: 10,
		Samples:  101,
		Theta1:   1,
		Omega1:   -3,
		Theta2:   -1,
		Omega2:   5,
		Mass1:    2,
		Mass2:    1,
		Length1:  2,
		Length2:  1,
		Gravity:  9.81,
	}
}

func TestSimulate_Shape(t *testing.T) {
	p := defaultParams()
	tr, err := Simulate(p)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	for name, seq := range map[string][]float64{"x1": tr.X1, "y1": tr.Y1, "x2": tr.X2, "y2": tr.Y2} {
		if len(seq) != p.Samples {
			t.Errorf("len(%s) = %d, want %d", name, len(seq), p.Samples)
		}
	}

	const eps = 1e-9
	for i := 0; i < tr.Len(); i++ {
		if r := math.Hypot(tr.X1[i], tr.Y1[i]); math.Abs(r-p.Length1) > eps {
			t.Fatalf("sample %d: inner rod length %v, want %v", i, r, p.Length1)
		}
		if r := math.Hypot(tr.X2[i]-tr.X1[i], tr.Y2[i]-tr.Y1[i]); math.Abs(r-p.Length2) > eps {
			t.Fatalf("sample %d: outer rod length %v, want %v", i, r, p.Length2)
		}
		if math.Abs(tr.X2[i]) > p.Reach()+eps || math.Abs(tr.Y2[i]) > p.Reach()+eps {
			t.Fatalf("sample %d: outer mass beyond reach", i)
		}
	}
}

func TestSimulate_InitialSample(t *testing.T) {
	p := defaultParams()
	tr, err := Simulate(p)
	if err != nil {
		t.Fatal(err)
	}

	wantX1 := p.Length1 * math.Sin(p.Theta1)
	wantY2 := -p.Length1*math.Cos(p.Theta1) - p.Length2*math.Cos(p.Theta2)
	if math.Abs(tr.X1[0]-wantX1) > 1e-12 {
		t.Errorf("X1[0] = %v, want %v", tr.X1[0], wantX1)
	}
	if math.Abs(tr.Y2[0]-wantY2) > 1e-12 {
		t.Errorf("Y2[0] = %v, want %v", tr.Y2[0], wantY2)
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	a, err := Simulate(defaultParams())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Simulate(defaultParams())
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.X1 {
		if a.X1[i] != b.X1[i] || a.Y1[i] != b.Y1[i] || a.X2[i] != b.X2[i] || a.Y2[i] != b.Y2[i] {
			t.Fatalf("sample %d differs between runs", i)
		}
	}
}

func TestSimulate_SensitiveToInitialConditions(t *testing.T) {
	p := defaultParams()
	p.Duration = 40
	a, err := Simulate(p)
	if err != nil {
		t.Fatal(err)
	}
	p.Theta1 += 1e-9
	b, err := Simulate(p)
	if err != nil {
		t.Fatal(err)
	}

	last := a.Len() - 1
	if a.X2[last] == b.X2[last] && a.Y2[last] == b.Y2[last] {
		t.Error("perturbed trajectory ended at the same point")
	}
}

func energy(p Parameters, y state) float64 {
	th1, w1, th2, w2 := y[0], y[1], y[2], y[3]
	m1, m2, l1, l2, g := p.Mass1, p.Mass2, p.Length1, p.Length2, p.Gravity
	kinetic := 0.5*m1*l1*l1*w1*w1 +
		0.5*m2*(l1*l1*w1*w1+l2*l2*w2*w2+2*l1*l2*w1*w2*math.Cos(th1-th2))
	potential := -(m1+m2)*g*l1*math.Cos(th1) - m2*g*l2*math.Cos(th2)
	return kinetic + potential
}

func TestRK4_ConservesEnergy(t *testing.T) {
	p := defaultParams()
	y := state{p.Theta1, p.Omega1, p.Theta2, p.Omega2}
	e0 := energy(p, y)

	for i := 0; i < 10000; i++ {
		y = rk4(p, y, DefaultMaxStep)
	}

	if drift := math.Abs(energy(p, y) - e0); drift > 1e-2*(math.Abs(e0)+1) {
		t.Errorf("energy drifted by %v from %v", drift, e0)
	}
}

func TestSimulate_SingleSample(t *testing.T) {
	p := defaultParams()
	p.Samples = 1
	tr, err := Simulate(p)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tr.Len())
	}
}

func TestParameters_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Parameters)
	}{
		{"no samples", func(p *Parameters) { p.Samples = 0 }},
		{"negative duration", func(p *Parameters) { p.Duration = -1 }},
		{"zero mass", func(p *Parameters) { p.Mass2 = 0 }},
		{"negative length", func(p *Parameters) { p.Length1 = -2 }},
		{"NaN angle", func(p *Parameters) { p.Theta2 = math.NaN() }},
		{"infinite gravity", func(p *Parameters) { p.Gravity = math.Inf(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := defaultParams()
			tt.mutate(&p)
			if _, err := Simulate(p); !errors.Is(err, ErrInvalidParameters) {
				t.Errorf("expected ErrInvalidParameters, got %v", err)
			}
		})
	}
}
