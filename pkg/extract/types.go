package extract

import (
	"time"
)

// Priority classifies how urgent a task is.
type Priority string

const (
	// PriorityLow marks tasks explicitly deferred by the source text.
	PriorityLow Priority = "low"
	// PriorityMedium marks tasks flagged as important but not urgent.
	PriorityMedium Priority = "medium"
	// PriorityHigh marks urgent tasks.
	PriorityHigh Priority = "high"
)

// Status is the completion state of a task.
type Status string

const (
	// StatusTodo is the default status for newly extracted tasks.
	StatusTodo Status = "todo"
	// StatusInProgress marks tasks the text describes as underway.
	StatusInProgress Status = "in-progress"
	// StatusDone marks tasks the text describes as finished.
	StatusDone Status = "done"
)

// Frequency is the recurrence period of a recurring task.
type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

// Task is a single structured task record extracted from a note.
//
// Optional enum fields use the zero value ("") for "unset"; optional
// dates are nil pointers. Assignee is never empty: extraction falls back
// to a configured default identity. The invariant IsRecurring == false
// implies Frequency == "" always holds for assembled tasks.
type Task struct {
	// ID is an opaque unique token assigned at assembly time.
	ID string `json:"id"`

	// Title is the actionable text of the segmented unit. Never empty.
	Title string `json:"title"`

	// Description carries any supplementary text. Usually empty.
	Description string `json:"description,omitempty"`

	// DueDate is the extracted deadline, if any.
	DueDate *time.Time `json:"due_date,omitempty"`

	// StartDate is the extracted start, if any.
	StartDate *time.Time `json:"start_date,omitempty"`

	// HardDeadline is true when the text phrases the due date as
	// non-negotiable.
	HardDeadline bool `json:"hard_deadline"`

	// Priority is low, medium, high, or empty when no keyword fired.
	Priority Priority `json:"priority,omitempty"`

	// Status defaults to todo.
	Status Status `json:"status"`

	// Assignee is the extracted owner, or the default identity.
	Assignee string `json:"assignee"`

	// Project is the document-level project name, or empty.
	Project string `json:"project,omitempty"`

	// Duration is the matched estimate phrase verbatim ("2 hours"),
	// not a normalized value. Consumers needing minutes parse it
	// themselves.
	Duration string `json:"duration,omitempty"`

	// IsRecurring is true when the text describes a repeating task.
	IsRecurring bool `json:"is_recurring"`

	// Frequency is set only for recurring tasks, and may still be
	// empty when the text does not name a period.
	Frequency Frequency `json:"frequency,omitempty"`
}

// Recurrence is the result of the recurrence extractor.
type Recurrence struct {
	IsRecurring bool      `json:"is_recurring"`
	Frequency   Frequency `json:"frequency,omitempty"`
}

// Options adjusts a single Extract call.
type Options struct {
	// ProjectName overrides project-name inference for every task
	// derived from this call.
	ProjectName string

	// DefaultAssignee is used when no assignee pattern matches.
	// Empty falls back to the engine config, then to "Me".
	DefaultAssignee string

	// ReferenceTime anchors relative and year-less date phrases
	// ("tomorrow", "by Friday", "May 1st"). When zero, only dates
	// carrying an explicit year are extracted; the engine never reads
	// the clock itself.
	ReferenceTime time.Time
}
