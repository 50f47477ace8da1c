package core

import (
	"math"
	"testing"
)

// countingSampler counts draws made through it
type countingSampler struct {
	inner   Sampler
	draws2D int
	draws3D int
}

func (c *countingSampler) Get1D() float64 { return c.inner.Get1D() }
func (c *countingSampler) Get2D() Vec2    { c.draws2D++; return c.inner.Get2D() }
func (c *countingSampler) Get3D() Vec3    { c.draws3D++; return c.inner.Get3D() }

func TestSeededSampler_Reproducible(t *testing.T) {
	a := NewSeededSampler(42)
	b := NewSeededSampler(42)

	for i := 0; i < 100; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatalf("Samplers with the same seed diverged at draw %d", i)
		}
	}
}

func TestRandomSampler_Range(t *testing.T) {
	sampler := NewSeededSampler(1)
	for i := 0; i < 1000; i++ {
		s := sampler.Get3D()
		for _, c := range []float64{s.X, s.Y, s.Z} {
			if c < 0 || c >= 1 {
				t.Fatalf("Sample component %f outside [0, 1)", c)
			}
		}
	}
}

func TestRandomInUnitSphere_RejectsOutsideAndZero(t *testing.T) {
	sampler := NewSequenceSampler(nil, nil, []Vec3{
		NewVec3(0.99, 0.99, 0.99), // corner of the cube, outside
		NewVec3(0.5, 0.5, 0.5),    // exactly the origin
		NewVec3(0.75, 0.5, 0.5),   // (0.5, 0, 0)
	})

	p := RandomInUnitSphere(sampler)
	if !p.Equals(NewVec3(0.5, 0, 0)) {
		t.Errorf("Expected (0.5, 0, 0), got %v", p)
	}
}

func TestRandomInUnitSphere_TerminatesQuickly(t *testing.T) {
	sampler := &countingSampler{inner: NewSeededSampler(7)}
	const n = 10000

	for i := 0; i < n; i++ {
		before := sampler.draws3D
		p := RandomInUnitSphere(sampler)
		if sampler.draws3D-before > 100 {
			t.Fatalf("Rejection loop took %d iterations", sampler.draws3D-before)
		}
		if p.LengthSquared() >= 1 {
			t.Fatalf("Point %v is outside the unit sphere", p)
		}
	}

	// Acceptance probability is π/6, so about 1.91 draws per point
	average := float64(sampler.draws3D) / n
	if average < 1.7 || average > 2.1 {
		t.Errorf("Expected about 1.91 draws per point, got %f", average)
	}
}

func TestRandomUnitVector_IsUnit(t *testing.T) {
	sampler := NewSeededSampler(3)
	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(sampler)
		if math.Abs(v.Length()-1) > 1e-12 {
			t.Fatalf("Expected unit vector, got length %f", v.Length())
		}
	}
}

func TestRandomOnHemisphere(t *testing.T) {
	sampler := NewSeededSampler(5)
	normal := NewVec3(0, 0, 1)
	for i := 0; i < 1000; i++ {
		if v := RandomOnHemisphere(normal, sampler); v.Dot(normal) < 0 {
			t.Fatalf("Vector %v is below the hemisphere", v)
		}
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	sampler := &countingSampler{inner: NewSeededSampler(11)}
	const n = 10000

	for i := 0; i < n; i++ {
		p := RandomInUnitDisk(sampler)
		if p.Z != 0 {
			t.Fatalf("Disk sample should lie in z=0, got %v", p)
		}
		if p.LengthSquared() >= 1 {
			t.Fatalf("Point %v is outside the unit disk", p)
		}
	}

	// Acceptance probability is π/4, so about 1.27 draws per point
	average := float64(sampler.draws2D) / n
	if average < 1.15 || average > 1.4 {
		t.Errorf("Expected about 1.27 draws per point, got %f", average)
	}
}

func TestRandomVec3Range(t *testing.T) {
	sampler := NewSequenceSampler(nil, nil, []Vec3{NewVec3(0, 0.5, 0.75)})
	got := RandomVec3Range(sampler, -1, 1)
	if !got.Equals(NewVec3(-1, 0, 0.5)) {
		t.Errorf("Expected (-1, 0, 0.5), got %v", got)
	}
}

func TestSequenceSampler_PanicsWhenExhausted(t *testing.T) {
	sampler := NewSequenceSampler([]float64{0.1}, nil, nil)
	sampler.Get1D()

	defer func() {
		if recover() == nil {
			t.Error("Expected panic after the sequence ran out")
		}
	}()
	sampler.Get1D()
}

func TestSequenceSampler_ResetReplays(t *testing.T) {
	sampler := NewSequenceSampler(
		[]float64{0.25},
		[]Vec2{NewVec2(0.1, 0.2)},
		[]Vec3{NewVec3(0.3, 0.4, 0.5)},
	)

	first := RandomVec3(sampler)
	sampler.Get1D()
	sampler.Get2D()
	sampler.Reset()

	if got := sampler.Get1D(); got != 0.25 {
		t.Errorf("Expected 0.25 after Reset, got %v", got)
	}
	if got := sampler.Get2D(); got != NewVec2(0.1, 0.2) {
		t.Errorf("Expected (0.1, 0.2) after Reset, got %v", got)
	}
	if got := RandomVec3(sampler); !got.Equals(first) {
		t.Errorf("Expected %v after Reset, got %v", first, got)
	}
}
