package render

// Contains reports whether screen point (x, y) lies inside t, edges
// included, for either winding.
func (t Triangle) Contains(x, y float64) bool {
	edge := func(i, j int) float64 {
		ax, ay := float64(t.X[i]), float64(t.Y[i])
		bx, by := float64(t.X[j]), float64(t.Y[j])
		return (bx-ax)*(y-ay) - (by-ay)*(x-ax)
	}
	area := (t.X[1]-t.X[0])*(t.Y[2]-t.Y[0]) - (t.Y[1]-t.Y[0])*(t.X[2]-t.X[0])
	if area == 0 {
		return false
	}
	d0, d1, d2 := edge(0, 1), edge(1, 2), edge(2, 0)
	neg := d0 < 0 || d1 < 0 || d2 < 0
	pos := d0 > 0 || d1 > 0 || d2 > 0
	return !(neg && pos)
}

// Hit reports whether any of tris covers screen point (x, y).
func Hit(tris []Triangle, x, y float64) bool {
	for _, t := range tris {
		if t.Contains(x, y) {
			return true
		}
	}
	return false
}
