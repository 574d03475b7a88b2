package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/faresFatooh/media-platform/internal/model"
)

type ApplicationStore interface {
	List(ctx context.Context) ([]model.Application, error)
	GetByID(ctx context.Context, id int64) (*model.Application, error)
}

type ApplicationHandler struct {
	repository ApplicationStore
}

func NewApplicationHandler(repository ApplicationStore) *ApplicationHandler {
	return &ApplicationHandler{repository: repository}
}

func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	applications, err := h.repository.List(c.Request.Context())
	if err != nil {
		slog.Error("error fetching applications", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := make([]ApplicationResponse, 0, len(applications))
	for _, a := range applications {
		res = append(res, ApplicationResponse{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	applicationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application id"})
		return
	}

	application, err := h.repository.GetByID(c.Request.Context(), applicationID)
	if err != nil {
		slog.Error("error fetching application", "error", err, "application_id", applicationID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if application == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	c.JSON(http.StatusOK, ApplicationResponse{
		ID:          application.ID,
		Name:        application.Name,
		Description: application.Description,
	})
}
