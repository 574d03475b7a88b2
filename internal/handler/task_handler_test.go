package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/faresFatooh/media-platform/internal/model"
)

type fakeTaskStore struct {
	tasks   []model.Task
	total   int
	task    *model.Task
	updated bool
	deleted bool
	err     error
}

func (f *fakeTaskStore) Create(ctx context.Context, task *model.Task) error {
	task.ID = 1
	return f.err
}

func (f *fakeTaskStore) ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]model.Task, error) {
	return f.tasks, f.err
}

func (f *fakeTaskStore) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	return f.total, f.err
}

func (f *fakeTaskStore) GetByID(ctx context.Context, ownerID, id int64) (*model.Task, error) {
	return f.task, f.err
}

func (f *fakeTaskStore) Update(ctx context.Context, ownerID, id int64, status, outputText string) (bool, error) {
	return f.updated, f.err
}

func (f *fakeTaskStore) DeleteByID(ctx context.Context, ownerID, id int64) (bool, error) {
	return f.deleted, f.err
}

func newTaskTestRouter(store TaskStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(userIDContextKey, int64(42))
		c.Next()
	})
	h := NewTaskHandler(store)
	r.GET("/tasks", h.ListTasks)
	r.POST("/tasks", h.CreateTask)
	r.GET("/tasks/:id", h.GetTask)
	r.PUT("/tasks/:id", h.UpdateTask)
	r.DELETE("/tasks/:id", h.DeleteTask)
	return r
}

func TestCreateTask_DefaultsToPending(t *testing.T) {
	r := newTaskTestRouter(&fakeTaskStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/tasks", strings.NewReader(`{"application_id":3,"input_text":"run it"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var res TaskResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, model.TaskStatusPending, res.Status)
	assert.Equal(t, int64(3), res.ApplicationID)
}

func TestCreateTask_MissingApplication(t *testing.T) {
	r := newTaskTestRouter(&fakeTaskStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/tasks", strings.NewReader(`{"input_text":"run it"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateTask_InvalidStatus(t *testing.T) {
	r := newTaskTestRouter(&fakeTaskStore{updated: true})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/tasks/1", strings.NewReader(`{"status":"RUNNING"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateTask_Completed(t *testing.T) {
	r := newTaskTestRouter(&fakeTaskStore{updated: true})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/tasks/1", strings.NewReader(`{"status":"COMPLETED","output_text":"done"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGetTask_NotFound(t *testing.T) {
	r := newTaskTestRouter(&fakeTaskStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/tasks/9", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
