package game

// Rect is an axis-aligned box in world units, origin top-left
type Rect struct {
	X, Y, W, H float64
}

// Intersects reports whether two boxes overlap with positive area; touching edges do not count
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// FirstCollision returns the first un-caught fish in population order whose box
// overlaps the hook box. There is no distance tie-break: slot order decides.
func FirstCollision(hook Rect, fish []*Fish) *Fish {
	for _, f := range fish {
		if f.Caught {
			continue
		}
		if hook.Intersects(f.Bounds()) {
			return f
		}
	}
	return nil
}
