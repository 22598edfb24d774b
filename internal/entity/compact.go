package entity

// Activatable is implemented by every entity that can drop out of play.
type Activatable interface {
	IsActive() bool
}

// RemoveInactive drops every inactive element by swapping it with the last
// element and shrinking the slice. Order is not preserved.
func RemoveInactive[T Activatable](items []T) []T {
	for i := 0; i < len(items); {
		if items[i].IsActive() {
			i++
			continue
		}
		last := len(items) - 1
		items[i] = items[last]
		var zero T
		items[last] = zero
		items = items[:last]
	}
	return items
}
