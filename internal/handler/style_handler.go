package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/faresFatooh/media-platform/internal/model"
)

type StyleStore interface {
	Create(ctx context.Context, example *model.StyleExample) error
	ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]model.StyleExample, error)
	CountByOwner(ctx context.Context, ownerID int64) (int, error)
	GetByID(ctx context.Context, ownerID, id int64) (*model.StyleExample, error)
	Update(ctx context.Context, ownerID, id int64, beforeText, afterText string) (bool, error)
	DeleteByID(ctx context.Context, ownerID, id int64) (bool, error)
}

type StylePredictor interface {
	Predict(ctx context.Context, ownerID int64, rawText string) (string, error)
}

type StyleHandler struct {
	repository StyleStore
	predictor  StylePredictor
}

func NewStyleHandler(repository StyleStore, predictor StylePredictor) *StyleHandler {
	return &StyleHandler{repository: repository, predictor: predictor}
}

func (h *StyleHandler) Predict(c *gin.Context) {
	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	edited, err := h.predictor.Predict(c.Request.Context(), currentUserID(c), req.RawText)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, PredictResponse{EditedText: edited})
}

func (h *StyleHandler) ListExamples(c *gin.Context) {
	ownerID := currentUserID(c)
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	total, err := h.repository.CountByOwner(c.Request.Context(), ownerID)
	if err != nil {
		slog.Error("error counting style examples", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	examples, err := h.repository.ListByOwner(c.Request.Context(), ownerID, limit, offset)
	if err != nil {
		slog.Error("error fetching style examples", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := make([]StyleExampleResponse, 0, len(examples))
	for _, e := range examples {
		res = append(res, toStyleExampleResponse(e))
	}

	c.JSON(http.StatusOK, StyleExampleListResponse{
		Examples: res,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	})
}

func (h *StyleHandler) CreateExample(c *gin.Context) {
	var req StyleExampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.BeforeText == "" || req.AfterText == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "before_text and after_text are required"})
		return
	}

	example := model.StyleExample{
		OwnerID:    currentUserID(c),
		BeforeText: req.BeforeText,
		AfterText:  req.AfterText,
	}

	if err := h.repository.Create(c.Request.Context(), &example); err != nil {
		slog.Error("error creating style example", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, toStyleExampleResponse(example))
}

func (h *StyleHandler) GetExample(c *gin.Context) {
	exampleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid example id"})
		return
	}

	example, err := h.repository.GetByID(c.Request.Context(), currentUserID(c), exampleID)
	if err != nil {
		slog.Error("error fetching style example", "error", err, "example_id", exampleID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if example == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Example not found"})
		return
	}

	c.JSON(http.StatusOK, toStyleExampleResponse(*example))
}

func (h *StyleHandler) UpdateExample(c *gin.Context) {
	exampleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid example id"})
		return
	}

	var req StyleExampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.BeforeText == "" || req.AfterText == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "before_text and after_text are required"})
		return
	}

	updated, err := h.repository.Update(c.Request.Context(), currentUserID(c), exampleID, req.BeforeText, req.AfterText)
	if err != nil {
		slog.Error("error updating style example", "error", err, "example_id", exampleID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "Example not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *StyleHandler) DeleteExample(c *gin.Context) {
	exampleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid example id"})
		return
	}

	deleted, err := h.repository.DeleteByID(c.Request.Context(), currentUserID(c), exampleID)
	if err != nil {
		slog.Error("error deleting style example", "error", err, "example_id", exampleID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Example not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

func toStyleExampleResponse(e model.StyleExample) StyleExampleResponse {
	return StyleExampleResponse{
		ID:         e.ID,
		BeforeText: e.BeforeText,
		AfterText:  e.AfterText,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
	}
}
