package math

import (
	"golang.org/x/exp/rand"
)

// Random produces reproducible inputs from a fixed seed. It is not safe
// for concurrent use.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Float returns a value in [0, 1).
func (r *Random) Float() float32 {
	return r.rng.Float32()
}

// FloatInRange returns a value in [min, max).
func (r *Random) FloatInRange(min, max float32) float32 {
	return min + r.rng.Float32()*(max-min)
}

// IntInRange returns a value in [min, max].
func (r *Random) IntInRange(min, max int) int {
	return min + r.rng.Intn(max-min+1)
}

func (r *Random) Vector2(min, max float32) Vector2 {
	return Vector2{r.FloatInRange(min, max), r.FloatInRange(min, max)}
}

func (r *Random) Vector3(min, max float32) Vector3 {
	return Vector3{r.FloatInRange(min, max), r.FloatInRange(min, max), r.FloatInRange(min, max)}
}

func (r *Random) Vector4(min, max float32) Vector4 {
	return Vector4{r.FloatInRange(min, max), r.FloatInRange(min, max), r.FloatInRange(min, max), r.FloatInRange(min, max)}
}

// UnitVector3 returns a direction uniformly distributed on the sphere.
func (r *Random) UnitVector3() Vector3 {
	z := r.FloatInRange(-1, 1)
	phi := r.FloatInRange(0, TwoPi)
	s := Sqrt(1 - z*z)
	return Vector3{s * Cos(phi), s * Sin(phi), z}
}

// Quaternion returns a uniformly distributed unit quaternion.
func (r *Random) Quaternion() Quaternion {
	u1, u2, u3 := r.Float(), r.Float()*TwoPi, r.Float()*TwoPi
	a := Sqrt(1 - u1)
	b := Sqrt(u1)
	return Quaternion{a * Sin(u2), a * Cos(u2), b * Sin(u3), b * Cos(u3)}
}

// Matrix returns a rigid transform with a random rotation and a
// translation within [-extent, extent) on each axis.
func (r *Random) Matrix(extent float32) Matrix {
	m := CreateFromQuaternion(r.Quaternion())
	m.SetTranslation(r.Vector3(-extent, extent))
	return m
}
