package server_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jdelaney/go-task-server/server"
	"github.com/jdelaney/go-task-server/tasks"
)

func decodeTasks(t *testing.T, body string) []tasks.Task {
	t.Helper()
	var list []tasks.Task
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	return list
}

func TestListTasksReturnsOwnerNewestFirst(t *testing.T) {
	f := setupTestFixture(t)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	withClock(t, base, base.Add(1*time.Minute), base.Add(2*time.Minute), base.Add(3*time.Minute))

	f.seedTask(t, tasks.Task{Title: "oldest", Email: ownerEmail, Status: tasks.StatusToDo})
	f.seedTask(t, tasks.Task{Title: "middle", Email: ownerEmail, Status: tasks.StatusToDo})
	f.seedTask(t, tasks.Task{Title: "not mine", Email: otherEmail, Status: tasks.StatusToDo})
	f.seedTask(t, tasks.Task{Title: "newest", Email: ownerEmail, Status: tasks.StatusToDo})

	rec := f.do(f.authedRequest(t, http.MethodGet, server.RouteTasks+"?email="+ownerEmail, nil, ownerEmail))
	require.Equal(t, http.StatusOK, rec.Code)

	list := decodeTasks(t, rec.Body.String())
	require.Len(t, list, 3)
	require.Equal(t, "newest", list[0].Title)
	require.Equal(t, "middle", list[1].Title)
	require.Equal(t, "oldest", list[2].Title)
	for _, item := range list {
		require.Equal(t, ownerEmail, item.Email)
	}
}

func TestAddTaskThenFetchByID(t *testing.T) {
	f := setupTestFixture(t)

	body := `{"title":"write report","description":"quarterly numbers","deadline":"2024-04-01","priority":"high","status":"to-do","email":"a@x.com"}`
	rec := f.do(f.authedRequest(t, http.MethodPost, server.RouteAddTask+"?email="+ownerEmail, strings.NewReader(body), ownerEmail))
	require.Equal(t, http.StatusOK, rec.Code)

	var inserted struct {
		Acknowledged bool   `json:"acknowledged"`
		InsertedID   string `json:"insertedId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &inserted))
	require.True(t, inserted.Acknowledged)
	require.NotEmpty(t, inserted.InsertedID)

	// Fetch by id carries no guard; no cookie needed.
	rec = f.do(request(http.MethodGet, "/api/v1/task/"+inserted.InsertedID, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched tasks.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	require.Equal(t, "write report", fetched.Title)
	require.Equal(t, "quarterly numbers", fetched.Description)
	require.Equal(t, "high", fetched.Priority)
	require.Equal(t, ownerEmail, fetched.Email)
	// The store stamps the write time; the body never supplies it.
	require.False(t, fetched.Timestamp.IsZero())
}

func TestAddTaskOwnershipMismatch(t *testing.T) {
	f := setupTestFixture(t)

	body := `{"title":"sneaky","email":"b@x.com"}`
	rec := f.do(f.authedRequest(t, http.MethodPost, server.RouteAddTask+"?email="+otherEmail, strings.NewReader(body), ownerEmail))
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetUnknownTaskAnswersNull(t *testing.T) {
	f := setupTestFixture(t)

	rec := f.do(request(http.MethodGet, "/api/v1/task/does-not-exist", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}

func TestUpdateTaskResetsStatusToToDo(t *testing.T) {
	f := setupTestFixture(t)

	id := f.seedTask(t, tasks.Task{
		Title:  "ship release",
		Email:  ownerEmail,
		Status: tasks.StatusCompleted,
	})

	body := `{"title":"ship release v2","description":"with fixes","deadline":"2024-05-01","priority":"medium","email":"a@x.com"}`
	target := fmt.Sprintf("/api/v1/update-task/%s?email=%s", id, ownerEmail)
	rec := f.do(f.authedRequest(t, http.MethodPatch, target, strings.NewReader(body), ownerEmail))
	require.Equal(t, http.StatusOK, rec.Code)

	var updated struct {
		Acknowledged  bool  `json:"acknowledged"`
		ModifiedCount int64 `json:"modifiedCount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.True(t, updated.Acknowledged)
	require.Equal(t, int64(1), updated.ModifiedCount)

	stored, err := f.repo.GetByID(t.Context(), id)
	require.NoError(t, err)
	require.Equal(t, "ship release v2", stored.Title)
	require.Equal(t, tasks.StatusToDo, stored.Status)
}

func TestStatusOngoingTransition(t *testing.T) {
	f := setupTestFixture(t)

	id := f.seedTask(t, tasks.Task{Title: "task", Email: ownerEmail, Status: tasks.StatusToDo})

	// Status transitions carry the guard but no ownership comparison.
	rec := f.do(f.authedRequest(t, http.MethodPatch, "/api/v1/task/status-ongoing/"+id, nil, otherEmail))
	require.Equal(t, http.StatusOK, rec.Code)

	stored, err := f.repo.GetByID(t.Context(), id)
	require.NoError(t, err)
	require.Equal(t, tasks.StatusOngoing, stored.Status)
	require.NotNil(t, stored.OngoingDate)
}

func TestStatusCompletedTransition(t *testing.T) {
	f := setupTestFixture(t)

	id := f.seedTask(t, tasks.Task{Title: "task", Email: ownerEmail, Status: tasks.StatusOngoing})

	rec := f.do(f.authedRequest(t, http.MethodPatch, "/api/v1/task/status-completed/"+id, nil, ownerEmail))
	require.Equal(t, http.StatusOK, rec.Code)

	stored, err := f.repo.GetByID(t.Context(), id)
	require.NoError(t, err)
	require.Equal(t, tasks.StatusCompleted, stored.Status)
	require.NotNil(t, stored.CompletedDate)
}

func TestDeleteTask(t *testing.T) {
	f := setupTestFixture(t)

	id := f.seedTask(t, tasks.Task{Title: "done with this", Email: ownerEmail, Status: tasks.StatusToDo})

	target := fmt.Sprintf("/api/v1/delete-task/%s?email=%s", id, ownerEmail)
	rec := f.do(f.authedRequest(t, http.MethodDelete, target, nil, ownerEmail))
	require.Equal(t, http.StatusOK, rec.Code)

	var deleted struct {
		Acknowledged bool  `json:"acknowledged"`
		DeletedCount int64 `json:"deletedCount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &deleted))
	require.Equal(t, int64(1), deleted.DeletedCount)

	_, err := f.repo.GetByID(t.Context(), id)
	require.Error(t, err)
}

func TestDeleteUnknownTaskReportsZero(t *testing.T) {
	f := setupTestFixture(t)

	target := "/api/v1/delete-task/does-not-exist?email=" + ownerEmail
	rec := f.do(f.authedRequest(t, http.MethodDelete, target, nil, ownerEmail))
	require.Equal(t, http.StatusOK, rec.Code)

	var deleted struct {
		Acknowledged bool  `json:"acknowledged"`
		DeletedCount int64 `json:"deletedCount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &deleted))
	require.True(t, deleted.Acknowledged)
	require.Zero(t, deleted.DeletedCount)
}

func TestCorsAllowsConfiguredOriginWithCredentials(t *testing.T) {
	f := setupTestFixture(t)

	req := request(http.MethodPost, server.RouteJWT, strings.NewReader(`{"email":"a@x.com"}`))
	req.Header.Set("Origin", "http://localhost:5173")
	rec := f.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCorsIgnoresUnknownOrigin(t *testing.T) {
	f := setupTestFixture(t)

	req := request(http.MethodPost, server.RouteJWT, strings.NewReader(`{"email":"a@x.com"}`))
	req.Header.Set("Origin", "http://evil.example.com")
	rec := f.do(req)

	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
