package tasks

import (
	"context"
	"time"
)

// Status is the lifecycle state of a task. Transitions are plain writes; no
// state machine validates the ordering.
type Status string

const (
	StatusToDo      Status = "to-do"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

// Task is a single to-do item owned by exactly one user email. The owner is
// set at creation and only changes when a full update overwrites it.
type Task struct {
	ID            string     `json:"_id,omitempty"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Deadline      string     `json:"deadline"`
	Priority      string     `json:"priority"`
	Status        Status     `json:"status"`
	Email         string     `json:"email"`
	Timestamp     time.Time  `json:"timestamp"`
	OngoingDate   *time.Time `json:"ongoingDate,omitempty"`
	CompletedDate *time.Time `json:"completedDate,omitempty"`
}

// Repo is the contract the route handlers need from the task store. Update
// and delete counts report how many documents the write touched; an unknown
// id yields a zero count, not an error. Writes are last-write-wins, there is
// no concurrency token.
type Repo interface {
	ListByOwner(ctx context.Context, email string) ([]Task, error)
	GetByID(ctx context.Context, id string) (*Task, error)
	Insert(ctx context.Context, task Task) (string, error)
	UpdateFields(ctx context.Context, id string, fields Fields) (int64, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}
