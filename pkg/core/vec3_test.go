package core

import (
	"math"
	"math/rand"
	"testing"
)

const tolerance = 1e-9

func vecNear(a, b Vec3, tol float64) bool {
	return a.Subtract(b).Length() <= tol
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(-10, 0, 25)
	b := NewVec3(-10, 0, 25)

	if got := a.Add(b); !got.Equals(NewVec3(-20, 0, 50)) {
		t.Errorf("Add: expected (-20,0,50), got %v", got)
	}
	if got := a.Subtract(b); !got.Equals(NewVec3(0, 0, 0)) {
		t.Errorf("Subtract: expected zero vector, got %v", got)
	}
	if got := a.Multiply(2.5); !got.Equals(NewVec3(-25, 0, 62.5)) {
		t.Errorf("Multiply: expected (-25,0,62.5), got %v", got)
	}
	if got := a.Divide(2); !got.Equals(NewVec3(-5, 0, 12.5)) {
		t.Errorf("Divide: expected (-5,0,12.5), got %v", got)
	}
	if got := NewVec3(1, 2, 3).MultiplyVec(NewVec3(4, 5, 6)); !got.Equals(NewVec3(4, 10, 18)) {
		t.Errorf("MultiplyVec: expected (4,10,18), got %v", got)
	}
	if got := a.Negate(); !got.Equals(NewVec3(10, 0, -25)) {
		t.Errorf("Negate: expected (10,0,-25), got %v", got)
	}
}

func TestVec3_Dot(t *testing.T) {
	a := NewVec3(1, 10, -25)
	b := NewVec3(12.1, -52.2, 0)
	if got := a.Dot(b); math.Abs(got-(-509.9)) > tolerance {
		t.Errorf("Expected -509.9, got %f", got)
	}
}

func TestVec3_DotBilinearAndSymmetric(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	randVec := func() Vec3 {
		return NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
	}

	for i := 0; i < 100; i++ {
		a, b, c := randVec(), randVec(), randVec()

		if math.Abs(a.Dot(b)-b.Dot(a)) > tolerance {
			t.Fatalf("dot not symmetric for %v, %v", a, b)
		}
		lhs := a.Add(b).Dot(c)
		rhs := a.Dot(c) + b.Dot(c)
		if math.Abs(lhs-rhs) > 1e-9*math.Max(1, math.Abs(lhs)) {
			t.Fatalf("dot not additive: %f != %f", lhs, rhs)
		}
	}
}

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
	}{
		{"axis aligned", NewVec3(0, 0, -3)},
		{"diagonal", NewVec3(1, 1, 1)},
		{"tiny", NewVec3(1e-5, -2e-5, 3e-5)},
		{"large", NewVec3(1e6, 2e6, -3e6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.v.Normalize()
			if math.Abs(n.Length()-1) > tolerance {
				t.Errorf("Expected unit length, got %f", n.Length())
			}
			if !vecNear(n, tt.v.Divide(tt.v.Length()), tolerance) {
				t.Errorf("Normalize should equal v/|v|: got %v", n)
			}
		})
	}

	if got := NewVec3(0, 0, 0).Normalize(); !got.Equals(NewVec3(0, 0, 0)) {
		t.Errorf("Zero vector should normalize to zero, got %v", got)
	}
}

func TestVec3_LengthSquared(t *testing.T) {
	v := NewVec3(2, 3, 6)
	if v.LengthSquared() != 49 {
		t.Errorf("Expected 49, got %f", v.LengthSquared())
	}
	if v.Length() != 7 {
		t.Errorf("Expected 7, got %f", v.Length())
	}
}

func TestVec3_NearZero(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		expected bool
	}{
		{"zero", NewVec3(0, 0, 0), true},
		{"below epsilon", NewVec3(1e-9, -1e-9, 5e-9), true},
		{"one component above", NewVec3(1e-9, 1e-7, 0), false},
		{"negative above", NewVec3(0, 0, -1e-6), false},
		{"unit", NewVec3(1, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.NearZero(); got != tt.expected {
				t.Errorf("NearZero(%v) = %t, expected %t", tt.v, got, tt.expected)
			}
		})
	}
}

func TestVec3_Reflect(t *testing.T) {
	d := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)
	if got := d.Reflect(n); !vecNear(got, NewVec3(1, 1, 0), tolerance) {
		t.Errorf("Expected (1,1,0), got %v", got)
	}

	// Head-on reflection reverses the direction
	if got := NewVec3(0, 0, -1).Reflect(NewVec3(0, 0, 1)); !vecNear(got, NewVec3(0, 0, 1), tolerance) {
		t.Errorf("Expected (0,0,1), got %v", got)
	}
}

func TestVec3_Refract(t *testing.T) {
	n := NewVec3(0, 1, 0)

	t.Run("ratio one leaves direction unchanged", func(t *testing.T) {
		in := NewVec3(1, -1, 0).Normalize()
		if got := in.Refract(n, 1.0); !vecNear(got, in, tolerance) {
			t.Errorf("Expected %v, got %v", in, got)
		}
	})

	t.Run("normal incidence passes straight through", func(t *testing.T) {
		in := NewVec3(0, -1, 0)
		if got := in.Refract(n, 1.0/1.5); !vecNear(got, in, tolerance) {
			t.Errorf("Expected %v, got %v", in, got)
		}
	})

	t.Run("snell's law", func(t *testing.T) {
		ratio := 1.0 / 1.5
		in := NewVec3(1, -1, 0).Normalize()
		out := in.Refract(n, ratio)

		sinIn := math.Sqrt(1 - math.Pow(in.Negate().Dot(n), 2))
		sinOut := math.Sqrt(1 - math.Pow(out.Negate().Dot(n), 2))
		if math.Abs(sinOut-ratio*sinIn) > 1e-9 {
			t.Errorf("Expected sin(out)=%f, got %f", ratio*sinIn, sinOut)
		}
		if math.Abs(out.Length()-1) > 1e-9 {
			t.Errorf("Refracted direction should stay unit length, got %f", out.Length())
		}
	})
}

func TestVec3_Lerp(t *testing.T) {
	white := NewVec3(1, 1, 1)
	blue := NewVec3(0.5, 0.7, 1.0)

	if got := white.Lerp(blue, 0); !got.Equals(white) {
		t.Errorf("t=0 should be start, got %v", got)
	}
	if got := white.Lerp(blue, 1); !vecNear(got, blue, tolerance) {
		t.Errorf("t=1 should be end, got %v", got)
	}
	if got := white.Lerp(blue, 0.5); !vecNear(got, NewVec3(0.75, 0.85, 1.0), tolerance) {
		t.Errorf("t=0.5 should be midpoint, got %v", got)
	}
}

func TestVec3_Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	if got := x.Cross(y); !got.Equals(NewVec3(0, 0, 1)) {
		t.Errorf("Expected (0,0,1), got %v", got)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -2))
	if got := ray.At(1.5); !got.Equals(NewVec3(1, 2, 0)) {
		t.Errorf("Expected (1,2,0), got %v", got)
	}
}

func TestHitRecord_SetFaceNormal(t *testing.T) {
	outward := NewVec3(0, 0, 1)

	tests := []struct {
		name           string
		direction      Vec3
		expectedFront  bool
		expectedNormal Vec3
	}{
		{"ray against normal", NewVec3(0, 0, -1), true, outward},
		{"ray along normal", NewVec3(0, 0, 1), false, outward.Negate()},
		{"oblique inside", NewVec3(1, 0, 0.5), false, outward.Negate()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hit HitRecord
			ray := NewRay(NewVec3(0, 0, 0), tt.direction)
			hit.SetFaceNormal(ray, outward)

			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if !hit.Normal.Equals(tt.expectedNormal) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if ray.Direction.Dot(hit.Normal) > 0 {
				t.Error("Normal should face against the ray")
			}
		})
	}
}
