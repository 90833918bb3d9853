package tasks

import "time"

// Fields is the set of task attributes an update overwrites, keyed by the
// persisted field name.
type Fields map[string]any

// Persisted field names shared by the store implementations.
const (
	FieldTitle         = "title"
	FieldDescription   = "description"
	FieldDeadline      = "deadline"
	FieldPriority      = "priority"
	FieldStatus        = "status"
	FieldEmail         = "email"
	FieldTimestamp     = "timestamp"
	FieldOngoingDate   = "ongoingDate"
	FieldCompletedDate = "completedDate"
)

// FullUpdate overwrites every caller-editable attribute wholesale. The status
// always resets to to-do and the write time is restamped: an edited task goes
// back to the start of the board.
func FullUpdate(t Task, now time.Time) Fields {
	return Fields{
		FieldTitle:       t.Title,
		FieldDescription: t.Description,
		FieldDeadline:    t.Deadline,
		FieldPriority:    t.Priority,
		FieldStatus:      StatusToDo,
		FieldEmail:       t.Email,
		FieldTimestamp:   now,
	}
}

// MarkOngoing moves a task to ongoing and records when that happened.
func MarkOngoing(now time.Time) Fields {
	return Fields{
		FieldStatus:      StatusOngoing,
		FieldOngoingDate: now,
	}
}

// MarkCompleted moves a task to completed and records when that happened.
func MarkCompleted(now time.Time) Fields {
	return Fields{
		FieldStatus:        StatusCompleted,
		FieldCompletedDate: now,
	}
}
