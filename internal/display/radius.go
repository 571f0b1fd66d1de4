package display

import "github.com/mattjoyce/launchpad/internal/ring"

// WithRadius returns a copy of f with every ring resized to radius. Values
// and fractions are unchanged.
func (f Frame) WithRadius(radius float64) Frame {
	out := f
	out.Radius = radius
	for i, u := range f.Units {
		// Unit is not serialised; restore it from the position.
		u.Unit = Units[i]
		u.State = ring.Ring{Radius: radius, Max: u.Max}.Sample(u.Value)
		out.Units[i] = u
	}
	return out
}
