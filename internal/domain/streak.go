package domain

// StreakLimit is the number of consecutive picks after which an item is
// excluded from the next selection.
const StreakLimit uint8 = 3

// Streak counts consecutive identical selections. A zero Streak has no
// repeated item.
type Streak[T comparable] struct {
	Repeated T     `json:"repeated"`
	Times    uint8 `json:"times"`
}

// Update returns the streak after selected is picked: a repeat increments the
// count, anything else restarts it at one.
func (s Streak[T]) Update(selected T) Streak[T] {
	if s.Times > 0 && s.Repeated == selected {
		s.Times++
		return s
	}
	return Streak[T]{Repeated: selected, Times: 1}
}

// Excludes reports whether item is barred by this streak.
func (s Streak[T]) Excludes(item T) bool {
	return s.Times >= StreakLimit && s.Repeated == item
}
