package state

// System holds an N-body state in structure-of-arrays layout: three
// position slices, three velocity slices, and a mass slice, all indexed
// by body. Body index 0 is conventionally the fixed central body; bodies
// 1..Len()-1 are the integrated bodies, matching the Bulirsch-Stoer step's
// convention.
//
// The SoA layout (rather than a []Body of structs) keeps the
// Bulirsch-Stoer inner loops cache-friendly, since the per-substep work
// touches whole X/Y/Z/Vx/Vy/Vz columns rather than scattered struct
// fields.
type System struct {
	Mass       []float64
	X, Y, Z    []float64
	Vx, Vy, Vz []float64
}

// NewSystem allocates a System for n bodies with all fields zeroed.
func NewSystem(n int) System {
	return System{
		Mass: make([]float64, n),
		X:    make([]float64, n),
		Y:    make([]float64, n),
		Z:    make([]float64, n),
		Vx:   make([]float64, n),
		Vy:   make([]float64, n),
		Vz:   make([]float64, n),
	}
}

// Len returns the number of bodies in the system.
func (s System) Len() int { return len(s.Mass) }

// Position returns body i's position.
func (s System) Position(i int) Vector3 {
	return Vector3{s.X[i], s.Y[i], s.Z[i]}
}

// Velocity returns body i's velocity.
func (s System) Velocity(i int) Vector3 {
	return Vector3{s.Vx[i], s.Vy[i], s.Vz[i]}
}

// SetPosition sets body i's position.
func (s System) SetPosition(i int, p Vector3) {
	s.X[i], s.Y[i], s.Z[i] = p[0], p[1], p[2]
}

// SetVelocity sets body i's velocity.
func (s System) SetVelocity(i int, v Vector3) {
	s.Vx[i], s.Vy[i], s.Vz[i] = v[0], v[1], v[2]
}

// Clone makes a deep copy of s.
func (s System) Clone() System {
	c := NewSystem(s.Len())
	copy(c.Mass, s.Mass)
	copy(c.X, s.X)
	copy(c.Y, s.Y)
	copy(c.Z, s.Z)
	copy(c.Vx, s.Vx)
	copy(c.Vy, s.Vy)
	copy(c.Vz, s.Vz)
	return c
}

// CloneBlank makes a same-shape copy of s with all positions and
// velocities zeroed but masses preserved.
func (s System) CloneBlank() System {
	c := NewSystem(s.Len())
	copy(c.Mass, s.Mass)
	return c
}
