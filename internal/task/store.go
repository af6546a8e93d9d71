package task

import (
	"fmt"
	"math"
	"strconv"
	"sync"
)

// Roles resolves a member's role. *team.Directory satisfies it.
type Roles interface {
	RoleOf(name string) (string, error)
}

// Store is the ordered task table. Ids come from a counter that only moves
// forward, so they stay unique even if rows are ever removed.
type Store struct {
	mu     sync.RWMutex
	roles  Roles
	tasks  []*Task
	byID   map[int]*Task
	nextID int
}

func NewStore(roles Roles) *Store {
	return &Store{
		roles: roles,
		byID:  make(map[int]*Task),
	}
}

// CreateMainTask appends a task with no parent.
func (s *Store) CreateMainTask(in Input) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.create(nil, in)
}

// CreateSubtask appends a task under parentID, which must be a main task.
func (s *Store) CreateSubtask(parentID int, in Input) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	parent, ok := s.byID[parentID]
	if !ok {
		return Task{}, fmt.Errorf("%w: task %d does not exist", ErrInvalidParent, parentID)
	}
	if !parent.IsMain() {
		return Task{}, fmt.Errorf("%w: task %d is a subtask", ErrInvalidParent, parentID)
	}
	pid := parentID
	return s.create(&pid, in)
}

func (s *Store) create(parentID *int, in Input) (Task, error) {
	in.StartDate = DateOnly(in.StartDate)
	in.EndDate = DateOnly(in.EndDate)
	if err := validateInput(in); err != nil {
		return Task{}, err
	}
	role, err := s.roles.RoleOf(in.Assignee)
	if err != nil {
		return Task{}, NotFoundError{Kind: "member", ID: in.Assignee}
	}

	s.nextID++
	t := &Task{
		ID:           s.nextID,
		ParentID:     parentID,
		Name:         in.Name,
		Description:  in.Description,
		DueDate:      in.EndDate,
		AssignedTo:   in.Assignee,
		Priority:     in.Priority,
		Status:       in.Status,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		AssigneeRole: role,
	}
	s.tasks = append(s.tasks, t)
	s.byID[t.ID] = t
	return t.clone(), nil
}

func (s *Store) Get(id int) (Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.byID[id]
	if !ok {
		return Task{}, false
	}
	return t.clone(), true
}

// All returns every task in store order.
func (s *Store) All() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(func(*Task) bool { return true })
}

func (s *Store) ListMainTasks() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(func(t *Task) bool { return t.IsMain() })
}

func (s *Store) ListSubtasks(parentID int) []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(func(t *Task) bool {
		p, ok := t.Parent()
		return ok && p == parentID
	})
}

// Tree returns main tasks each followed by their subtasks.
func (s *Store) Tree() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Task, 0, len(s.tasks))
	for _, m := range s.tasks {
		if !m.IsMain() {
			continue
		}
		out = append(out, m.clone())
		for _, t := range s.tasks {
			if p, ok := t.Parent(); ok && p == m.ID {
				out = append(out, t.clone())
			}
		}
	}
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

func (s *Store) filter(keep func(*Task) bool) []Task {
	out := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if keep(t) {
			out = append(out, t.clone())
		}
	}
	return out
}

// ReassignResource moves a task to another member and refreshes the role
// snapshot from the directory. It reports whether anything changed.
func (s *Store) ReassignResource(taskID int, assignee string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byID[taskID]
	if !ok {
		return false, NotFoundError{Kind: "task", ID: strconv.Itoa(taskID)}
	}
	role, err := s.roles.RoleOf(assignee)
	if err != nil {
		return false, NotFoundError{Kind: "member", ID: assignee}
	}
	if t.AssignedTo == assignee && t.AssigneeRole == role {
		return false, nil
	}
	t.AssignedTo = assignee
	t.AssigneeRole = role
	return true, nil
}

// SetBudget records the budget of a main task.
func (s *Store) SetBudget(mainTaskID int, amount float64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byID[mainTaskID]
	if !ok {
		return false, NotFoundError{Kind: "task", ID: strconv.Itoa(mainTaskID)}
	}
	if err := checkAmount("budget", amount); err != nil {
		return false, err
	}
	if !t.IsMain() {
		return false, fmt.Errorf("%w: task %d is a subtask; budgets apply to main tasks", ErrInvalidArgument, mainTaskID)
	}
	if t.Budget == amount {
		return false, nil
	}
	t.Budget = amount
	return true, nil
}

// SetEffortHours records the hours spent on a task.
func (s *Store) SetEffortHours(taskID int, hours float64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byID[taskID]
	if !ok {
		return false, NotFoundError{Kind: "task", ID: strconv.Itoa(taskID)}
	}
	if err := checkAmount("effort hours", hours); err != nil {
		return false, err
	}
	if t.EffortHours == hours {
		return false, nil
	}
	t.EffortHours = hours
	return true, nil
}

func checkAmount(what string, v float64) error {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return fmt.Errorf("%w: %s must be a finite number", ErrInvalidArgument, what)
	case v < 0:
		return fmt.Errorf("%w: %s %v is negative", ErrInvalidArgument, what, v)
	}
	return nil
}
