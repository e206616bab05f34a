package task

import (
	"sync"
	"time"

	"github.com/google/uuid"

	todoerrors "github.com/wexinc/todo/internal/errors"
)

// NoSelection is the view index callers pass when nothing is selected.
const NoSelection = -1

// Action names used in selection errors.
const (
	actionComplete = "mark as completed"
	actionDelete   = "delete"
)

// Store holds the ordered task list for the lifetime of the process.
// Tasks keep insertion order; there is no sorting.
type Store struct {
	mu    sync.RWMutex
	tasks []*Task
	newID func() string
	now   func() time.Time
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		tasks: []*Task{},
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// Add validates the input and appends a new pending task to the end of the
// list. On failure the list is unchanged and the validation error is
// returned. The returned task is a copy.
func (s *Store) Add(description, dueDate string) (*Task, error) {
	desc, due, err := ValidateInput(description, dueDate)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := &Task{
		ID:          s.newID(),
		Description: desc,
		DueDate:     due,
		CreatedAt:   s.now(),
	}
	s.tasks = append(s.tasks, t)
	return t.Clone(), nil
}

// List returns a snapshot of the tasks matching filter, in insertion order.
// The returned tasks are copies; modifying them does not affect the store.
func (s *Store) List(filter Filter) []*Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := make([]*Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if filter.Matches(t) {
			view = append(view, t.Clone())
		}
	}
	return view
}

// MarkCompleted completes the task shown at viewIndex in List(filter).
// Completing an already completed task succeeds without changing it.
// Returns a NoSelection error if viewIndex does not name a visible task.
func (s *Store) MarkCompleted(viewIndex int, filter Filter) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.resolve(viewIndex, filter)
	if i < 0 {
		return nil, todoerrors.NoSelection(actionComplete)
	}
	s.tasks[i].markCompleted(s.now())
	return s.tasks[i].Clone(), nil
}

// Delete removes the task shown at viewIndex in List(filter). The remaining
// tasks keep their relative order. Returns a NoSelection error if viewIndex
// does not name a visible task.
func (s *Store) Delete(viewIndex int, filter Filter) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.resolve(viewIndex, filter)
	if i < 0 {
		return nil, todoerrors.NoSelection(actionDelete)
	}
	removed := s.tasks[i]
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return removed, nil
}

// resolve maps a position in the filtered view to the position of the same
// task in the underlying list, or -1. Callers must hold the lock.
func (s *Store) resolve(viewIndex int, filter Filter) int {
	if viewIndex < 0 {
		return -1
	}
	seen := 0
	for i, t := range s.tasks {
		if !filter.Matches(t) {
			continue
		}
		if seen == viewIndex {
			return i
		}
		seen++
	}
	return -1
}

// Get retrieves a task by ID.
func (s *Store) Get(id string) (*Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tasks {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return nil, false
}

// Count returns the total number of tasks.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// Counts returns the number of completed and pending tasks.
func (s *Store) Counts() (completed, pending int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tasks {
		if t.Completed {
			completed++
		} else {
			pending++
		}
	}
	return
}
