package task

import (
	"fmt"
	"strings"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists priorities in the order forms offer them.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

type Status string

const (
	StatusNotStarted Status = "Not Started"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusBlocked    Status = "Blocked"
)

// Statuses lists statuses in the order forms offer them.
var Statuses = []Status{StatusNotStarted, StatusInProgress, StatusCompleted, StatusBlocked}

// DateLayout is the calendar date format used for input and display.
const DateLayout = "2006-01-02"

// Task is one row of the task table. A nil ParentID marks a main task.
type Task struct {
	ID           int
	ParentID     *int
	Name         string
	Description  string
	DueDate      time.Time
	AssignedTo   string
	Priority     Priority
	Status       Status
	StartDate    time.Time
	EndDate      time.Time
	AssigneeRole string
	EffortHours  float64
	Budget       float64
}

// IsMain reports whether t has no parent.
func (t Task) IsMain() bool {
	return t.ParentID == nil
}

// Parent returns the parent id and whether there is one.
func (t Task) Parent() (int, bool) {
	if t.ParentID == nil {
		return 0, false
	}
	return *t.ParentID, true
}

// clone returns a copy that shares no pointers with t.
func (t Task) clone() Task {
	if t.ParentID != nil {
		p := *t.ParentID
		t.ParentID = &p
	}
	return t
}

// Input carries the user-supplied fields for a new task.
type Input struct {
	Name        string
	Description string
	StartDate   time.Time `validate:"required"`
	EndDate     time.Time `validate:"required,gtefield=StartDate"`
	Assignee    string    `validate:"required"`
	Priority    Priority  `validate:"required,oneof=Low Medium High"`
	Status      Status    `validate:"required,oneof='Not Started' 'In Progress' Completed Blocked"`
}

// Date returns midnight UTC of the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOnly drops the clock part of t, keeping its calendar day.
func DateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return Date(y, m, d)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidArgument, s)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD, or "-" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(DateLayout)
}
