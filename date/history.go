package date

import (
	"iter"
	"slices"
	"sort"
)

// History stores a chronological series of values, each associated with
// a specific date. Dates are unique and the series is always sorted,
// whatever the insertion order.
type History[T float32 | float64] struct {
	days   []Date
	values []T
}

// Len returns the number of points in the history.
func (h *History[T]) Len() int { return len(h.days) }

// Latest returns the latest date and value in the history.
// If the history is empty, it returns zero values.
func (h *History[T]) Latest() (day Date, value T) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, *new(T)
	}
	return h.days[last], h.values[last]
}

// Append adds a point to the history. An existing value at that date is
// overwritten, giving priority to the last data.
func (h *History[T]) Append(on Date, v T) *History[T] {
	if i := slices.Index(h.days, on); i >= 0 {
		h.values[i] = v
		return h
	}
	h.days, h.values = append(h.days, on), append(h.values, v)
	h.sort()
	return h
}

// AppendAll adds many points at once, sorting and deduplicating a
// single time. Like Append, a later point at an existing date wins.
// Much cheaper than repeated Append for a large feed.
func (h *History[T]) AppendAll(days []Date, values []T) *History[T] {
	h.days = append(h.days, days...)
	h.values = append(h.values, values...)
	sort.Stable(chronological[T]{h})

	// Equal dates are kept in insertion order; keep the last of each run.
	w := 0
	for i := range h.days {
		if w > 0 && h.days[w-1] == h.days[i] {
			h.values[w-1] = h.values[i]
			continue
		}
		h.days[w], h.values[w] = h.days[i], h.values[i]
		w++
	}
	h.days, h.values = h.days[:w], h.values[:w]
	return h
}

// Get returns the value at 'day' and true, or the zero value and false.
func (h *History[T]) Get(day Date) (T, bool) {
	if i := slices.Index(h.days, day); i >= 0 {
		return h.values[i], true
	}
	var zero T
	return zero, false
}

// Values returns an iterator over all date/value pairs, in
// chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// chronological is a private implementation to keep the history sorted.
type chronological[T float32 | float64] struct{ *History[T] }

func (s chronological[T]) Len() int           { return len(s.days) }
func (s chronological[T]) Less(i, j int) bool { return s.days[i].Before(s.days[j]) }
func (s chronological[T]) Swap(i, j int) {
	s.days[i], s.days[j] = s.days[j], s.days[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

func (h *History[T]) sort() { sort.Sort(chronological[T]{h}) }
