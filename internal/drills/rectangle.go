package drills

// Rectangle is a width × height record.
type Rectangle struct {
	Width  uint32
	Height uint32
}

// Area returns Width * Height.
func (r Rectangle) Area() uint32 {
	return r.Width * r.Height
}

// IncWidth grows the rectangle in place.
func (r *Rectangle) IncWidth(delta uint32) {
	r.Width += delta
}
