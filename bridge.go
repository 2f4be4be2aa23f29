package studiobridge

// Vec2 is a 2D point or velocity in world units. Game code works in 2D; the
// engine lifts values into the middleware's 3D space with a fixed basis
// (forward +Y, up +Z) when crossing into the binding layer.
type Vec2 struct {
	X float32
	Y float32
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// PositionVelocity is a 2D kinematic pose: where something is and how fast
// it is moving. Velocity feeds the middleware's doppler calculation.
type PositionVelocity struct {
	Position Vec2
	Velocity Vec2
}
