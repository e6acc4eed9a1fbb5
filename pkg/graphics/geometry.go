package graphics

// Offset is a 2D position or adjustment in logical pixels.
type Offset struct {
	X float64
	Y float64
}

// IsZero reports whether both components are zero.
func (o Offset) IsZero() bool {
	return o.X == 0 && o.Y == 0
}

// Size is a 2D extent in logical pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty reports whether the size encloses no area.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}
