package core

// Vec is an immutable 2D point or displacement in level units.
// Every operation returns a new value.
type Vec struct {
	X, Y float64
}

// V is shorthand for constructing a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Plus returns the component-wise sum of v and o.
func (v Vec) Plus(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Times returns v scaled by factor on both axes.
func (v Vec) Times(factor float64) Vec {
	return Vec{X: v.X * factor, Y: v.Y * factor}
}
