// Package render holds the surface contract and display math shared by
// the terminal and windowed presentation layers
package render

// Surface is a read-only projection of battle state onto an output
// device. Render reads a fresh snapshot and draws it; surfaces never
// mutate state
type Surface interface {
	Render()
}

// BarFill converts a vital value to a filled-cell count for a bar of
// the given width. Clamping happens here and only here; stored values
// may legitimately sit outside [0, max]
func BarFill(current, max, width int) int {
	if max <= 0 || width <= 0 {
		return 0
	}
	if current <= 0 {
		return 0
	}
	if current >= max {
		return width
	}
	return current * width / max
}

// ClampVital bounds a value to [0, max] for display text
func ClampVital(current, max int) int {
	if current < 0 {
		return 0
	}
	if current > max {
		return max
	}
	return current
}
