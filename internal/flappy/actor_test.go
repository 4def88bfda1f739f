package flappy

import (
	"math/rand"
	"testing"
)

func TestActorIntegrate(t *testing.T) {
	a := NewActor(50, 300, 30)

	a.Integrate(0.5)
	if a.Vel != 0.5 || a.Y != 300.5 {
		t.Errorf("after one tick: vel=%v y=%v, expected 0.5 and 300.5", a.Vel, a.Y)
	}

	a.Integrate(0.5)
	if a.Vel != 1 || a.Y != 301.5 {
		t.Errorf("after two ticks: vel=%v y=%v, expected 1 and 301.5", a.Vel, a.Y)
	}
	if a.X != 50 {
		t.Errorf("X changed to %v", a.X)
	}
}

func TestActorImpulseOverrides(t *testing.T) {
	a := NewActor(50, 300, 30)
	a.Vel = 7

	a.Impulse(-10)
	if a.Vel != -10 {
		t.Errorf("Impulse should set velocity to -10, got %v", a.Vel)
	}

	a.Impulse(-10)
	if a.Vel != -10 {
		t.Errorf("Impulse must not accumulate, got %v", a.Vel)
	}
}

func TestActorClampedAtTop(t *testing.T) {
	a := NewActor(50, 5, 30)
	a.Impulse(-10)
	a.Integrate(0.5)

	if a.Y != 0 {
		t.Errorf("Y should clamp to 0, got %v", a.Y)
	}
}

func TestActorNeverNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	a := NewActor(50, 300, 30)

	for i := 0; i < 10000; i++ {
		if rng.Intn(3) == 0 {
			a.Impulse(-10)
		}
		a.Integrate(0.5)
		if a.Y < 0 {
			t.Fatalf("Y went negative (%v) at step %d", a.Y, i)
		}
	}
}

func TestActorBounds(t *testing.T) {
	a := NewActor(50, 120.5, 30)
	b := a.Bounds()

	if b.X != 50 || b.Y != 120.5 || b.W != 30 || b.H != 30 {
		t.Errorf("Bounds() = %+v", b)
	}
}
