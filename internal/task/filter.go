package task

import (
	"fmt"
	"strings"
)

// Filter selects which tasks a view shows.
type Filter string

const (
	// FilterAll shows every task.
	FilterAll Filter = "all"
	// FilterCompleted shows only completed tasks.
	FilterCompleted Filter = "completed"
	// FilterPending shows only tasks not yet completed.
	FilterPending Filter = "pending"
)

// allFilters is the selector order.
var allFilters = []Filter{FilterAll, FilterCompleted, FilterPending}

// Filters returns the filters in selector order.
func Filters() []Filter {
	out := make([]Filter, len(allFilters))
	copy(out, allFilters)
	return out
}

// ParseFilter parses a filter name case-insensitively.
func ParseFilter(s string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", fmt.Errorf("unknown filter %q (want all, completed or pending)", s)
	}
	return f, nil
}

// IsValid returns true if the filter is a known filter.
func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterCompleted, FilterPending:
		return true
	default:
		return false
	}
}

// Matches reports whether a task belongs in a view under this filter.
func (f Filter) Matches(t *Task) bool {
	switch f {
	case FilterCompleted:
		return t.Completed
	case FilterPending:
		return !t.Completed
	default:
		return true
	}
}

// Label returns the display name ("All", "Completed", "Pending").
func (f Filter) Label() string {
	switch f {
	case FilterCompleted:
		return LabelCompleted
	case FilterPending:
		return LabelPending
	default:
		return "All"
	}
}

// String returns the string representation of the filter.
func (f Filter) String() string {
	return string(f)
}

// Next returns the filter after f in selector order, wrapping around.
func (f Filter) Next() Filter {
	return allFilters[(f.index()+1)%len(allFilters)]
}

// Prev returns the filter before f in selector order, wrapping around.
func (f Filter) Prev() Filter {
	return allFilters[(f.index()+len(allFilters)-1)%len(allFilters)]
}

func (f Filter) index() int {
	for i, candidate := range allFilters {
		if candidate == f {
			return i
		}
	}
	return 0
}
