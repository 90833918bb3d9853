package repofake

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jdelaney/go-task-server/internal/errors"
	"github.com/jdelaney/go-task-server/tasks"
)

var _ tasks.Repo = (*FakeTaskRepo)(nil)

// NowTimeFunc stamps insert timestamps. It can be overridden in tests that
// need a deterministic clock.
var NowTimeFunc = time.Now

// FakeTaskRepo is an in-memory task store used in place of MongoDB in tests.
type FakeTaskRepo struct {
	lock  sync.RWMutex
	tasks map[string]*tasks.Task
}

func NewFakeTaskRepo() *FakeTaskRepo {
	return &FakeTaskRepo{
		tasks: make(map[string]*tasks.Task),
	}
}

func (r *FakeTaskRepo) ListByOwner(ctx context.Context, email string) ([]tasks.Task, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	owned := make([]tasks.Task, 0)
	for _, t := range r.tasks {
		if t.Email == email {
			owned = append(owned, *t)
		}
	}

	sort.Slice(owned, func(i, j int) bool {
		return owned[i].Timestamp.After(owned[j].Timestamp)
	})
	return owned, nil
}

func (r *FakeTaskRepo) GetByID(ctx context.Context, id string) (*tasks.Task, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	t, ok := r.tasks[id]
	if !ok {
		return nil, errors.ErrNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *FakeTaskRepo) Insert(ctx context.Context, task tasks.Task) (string, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	task.ID = uuid.New().String()
	task.Timestamp = NowTimeFunc()
	r.tasks[task.ID] = &task
	return task.ID, nil
}

func (r *FakeTaskRepo) UpdateFields(ctx context.Context, id string, fields tasks.Fields) (int64, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return 0, nil
	}

	// Mirrors MongoDB's ModifiedCount: a $set that changes nothing reports
	// zero even though the document matched.
	changed := false
	for name, value := range fields {
		switch name {
		case tasks.FieldTitle:
			changed = setString(&t.Title, value) || changed
		case tasks.FieldDescription:
			changed = setString(&t.Description, value) || changed
		case tasks.FieldDeadline:
			changed = setString(&t.Deadline, value) || changed
		case tasks.FieldPriority:
			changed = setString(&t.Priority, value) || changed
		case tasks.FieldStatus:
			if v := value.(tasks.Status); t.Status != v {
				t.Status = v
				changed = true
			}
		case tasks.FieldEmail:
			changed = setString(&t.Email, value) || changed
		case tasks.FieldTimestamp:
			if v := value.(time.Time); !t.Timestamp.Equal(v) {
				t.Timestamp = v
				changed = true
			}
		case tasks.FieldOngoingDate:
			changed = setDate(&t.OngoingDate, value) || changed
		case tasks.FieldCompletedDate:
			changed = setDate(&t.CompletedDate, value) || changed
		}
	}
	if !changed {
		return 0, nil
	}
	return 1, nil
}

func setString(field *string, value any) bool {
	v := value.(string)
	if *field == v {
		return false
	}
	*field = v
	return true
}

func setDate(field **time.Time, value any) bool {
	v := value.(time.Time)
	if *field != nil && (*field).Equal(v) {
		return false
	}
	*field = &v
	return true
}

func (r *FakeTaskRepo) DeleteByID(ctx context.Context, id string) (int64, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return 0, nil
	}
	delete(r.tasks, id)
	return 1, nil
}
