package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faresFatooh/media-platform/internal/service"
)

// writeServiceError maps service failures to HTTP statuses. Raw error
// text goes to the log, never to the client.
func writeServiceError(c *gin.Context, err error) {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Msg})
		return
	}

	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	var gErr *service.GatewayError
	if errors.As(err, &gErr) {
		slog.Error("model gateway failure", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "The model service is unavailable"})
		return
	}

	var fErr *service.FormatError
	if errors.As(err, &fErr) {
		slog.Error("malformed model output", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "The model returned an unexpected response"})
		return
	}

	slog.Error("unexpected error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
