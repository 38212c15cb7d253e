// Package state holds the physical state representation shared by the
// Kepler drift and Bulirsch-Stoer kernels: a three-component vector type
// and a structure-of-arrays N-body System.
package state

import "gonum.org/v1/gonum/floats"

// Vector3 is a position, velocity, or acceleration triple. Its elementwise
// arithmetic is delegated to gonum/floats rather than hand-rolled, matching
// the teacher's state/arithmetic.go.
type Vector3 [3]float64

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 {
	r := v
	floats.Add(r[:], o[:])
	return r
}

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 {
	r := v
	floats.Sub(r[:], o[:])
	return r
}

// Scale returns v scaled by k.
func (v Vector3) Scale(k float64) Vector3 {
	r := v
	floats.Scale(k, r[:])
	return r
}

// AddScaled returns v + k*o.
func (v Vector3) AddScaled(k float64, o Vector3) Vector3 {
	var r Vector3
	floats.AddScaledTo(r[:], v[:], k, o[:])
	return r
}

// Dot returns the scalar product v.o.
func (v Vector3) Dot(o Vector3) float64 {
	return floats.Dot(v[:], o[:])
}

// Cross returns the vector product v x o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// Norm2 returns the squared Euclidean length of v.
func (v Vector3) Norm2() float64 {
	return v.Dot(v)
}

// Norm returns the Euclidean length of v.
func (v Vector3) Norm() float64 {
	return floats.Norm(v[:], 2)
}
