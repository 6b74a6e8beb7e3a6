package handler

import (
	"errors"
	"log"
	"net/http"

	"batepapo/backend/internal/chat"
	"batepapo/backend/internal/sanitize"

	"github.com/gin-gonic/gin"
)

// Handler serves the chat API on top of the presence registry and message log.
type Handler struct {
	registry  *chat.Registry
	messages  *chat.Log
	sanitizer *sanitize.Sanitizer
}

// New creates a Handler.
func New(registry *chat.Registry, messages *chat.Log, sanitizer *sanitize.Sanitizer) *Handler {
	return &Handler{registry: registry, messages: messages, sanitizer: sanitizer}
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

var errorStatuses = []struct {
	err    error
	status int
}{
	{chat.ErrInvalidInput, http.StatusUnprocessableEntity},
	{chat.ErrConflict, http.StatusConflict},
	{chat.ErrNotFound, http.StatusNotFound},
	{chat.ErrForbidden, http.StatusUnauthorized},
	{chat.ErrUnauthenticated, http.StatusUnprocessableEntity},
}

// abortWithError writes err as JSON. Anything that is not a chat error is a
// 500 and its detail is logged instead of returned.
func abortWithError(c *gin.Context, err error) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			c.AbortWithStatusJSON(e.status, ErrorResponse{Error: err.Error()})
			return
		}
	}
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}
