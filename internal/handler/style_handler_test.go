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
	"github.com/faresFatooh/media-platform/internal/service"
)

type fakeStyleStore struct {
	examples []model.StyleExample
	total    int
	example  *model.StyleExample
	updated  bool
	deleted  bool
	err      error
}

func (f *fakeStyleStore) Create(ctx context.Context, example *model.StyleExample) error {
	example.ID = 1
	return f.err
}

func (f *fakeStyleStore) ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]model.StyleExample, error) {
	return f.examples, f.err
}

func (f *fakeStyleStore) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	return f.total, f.err
}

func (f *fakeStyleStore) GetByID(ctx context.Context, ownerID, id int64) (*model.StyleExample, error) {
	return f.example, f.err
}

func (f *fakeStyleStore) Update(ctx context.Context, ownerID, id int64, beforeText, afterText string) (bool, error) {
	return f.updated, f.err
}

func (f *fakeStyleStore) DeleteByID(ctx context.Context, ownerID, id int64) (bool, error) {
	return f.deleted, f.err
}

type fakePredictor struct {
	edited  string
	err     error
	rawText string
}

func (f *fakePredictor) Predict(ctx context.Context, ownerID int64, rawText string) (string, error) {
	f.rawText = rawText
	if f.err != nil {
		return "", f.err
	}
	return f.edited, nil
}

func newStyleTestRouter(store StyleStore, predictor StylePredictor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(userIDContextKey, int64(42))
		c.Next()
	})
	h := NewStyleHandler(store, predictor)
	r.POST("/predict", h.Predict)
	r.GET("/style-examples", h.ListExamples)
	r.POST("/style-examples", h.CreateExample)
	r.GET("/style-examples/:id", h.GetExample)
	r.PUT("/style-examples/:id", h.UpdateExample)
	r.DELETE("/style-examples/:id", h.DeleteExample)
	return r
}

func TestPredict_ReturnsEditedText(t *testing.T) {
	predictor := &fakePredictor{edited: "edited output"}
	r := newStyleTestRouter(&fakeStyleStore{}, predictor)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/predict", strings.NewReader(`{"raw_text":"rough draft"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rough draft", predictor.rawText)

	var res PredictResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "edited output", res.EditedText)
}

func TestPredict_EmptyText(t *testing.T) {
	predictor := &fakePredictor{err: &service.ValidationError{Msg: "raw_text is required."}}
	r := newStyleTestRouter(&fakeStyleStore{}, predictor)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/predict", strings.NewReader(`{"raw_text":""}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateExample_MissingFields(t *testing.T) {
	r := newStyleTestRouter(&fakeStyleStore{}, &fakePredictor{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/style-examples", strings.NewReader(`{"before_text":"only before"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateExample_Created(t *testing.T) {
	r := newStyleTestRouter(&fakeStyleStore{}, &fakePredictor{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/style-examples", strings.NewReader(`{"before_text":"b","after_text":"a"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var res StyleExampleResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, int64(1), res.ID)
	assert.Equal(t, "b", res.BeforeText)
}

func TestListExamples_ReturnsExamples(t *testing.T) {
	store := &fakeStyleStore{
		examples: []model.StyleExample{{ID: 2, BeforeText: "b", AfterText: "a"}},
		total:    1,
	}
	r := newStyleTestRouter(store, &fakePredictor{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/style-examples", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res StyleExampleListResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, 1, len(res.Examples))
}

func TestUpdateExample_NotFound(t *testing.T) {
	r := newStyleTestRouter(&fakeStyleStore{updated: false}, &fakePredictor{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/style-examples/5", strings.NewReader(`{"before_text":"b","after_text":"a"}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteExample_NoContent(t *testing.T) {
	r := newStyleTestRouter(&fakeStyleStore{deleted: true}, &fakePredictor{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/style-examples/5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
