package handlers

import (
	"errors"
	"net/http"

	"github.com/Conceptual-Machines/tweetcraft-api/internal/api/middleware"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/llm"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/logger"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/services"
	"github.com/gin-gonic/gin"
)

// Short messages returned to the caller. Details stay in the logs.
const (
	msgGenerationFailed  = "Failed to generate tweet"
	msgPersistenceFailed = "Failed to save preferences"
	msgEmptyResult       = "Failed to generate improved tweet"
	msgInternal          = "Internal Server Error"
	msgInvalidBody       = "Invalid request body"
)

// writeError maps a pipeline error onto a status code and a short JSON body
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := msgInternal

	var (
		validationErr  *services.ValidationError
		generationErr  *llm.GenerationError
		persistenceErr *services.PersistenceError
	)
	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
		message = validationErr.Message
	case errors.As(err, &generationErr):
		message = msgGenerationFailed
	case errors.As(err, &persistenceErr):
		message = msgPersistenceFailed
	case errors.Is(err, services.ErrEmptyResult):
		message = msgEmptyResult
	}

	fields := logger.WithContext(c)
	if status >= http.StatusInternalServerError {
		logger.Error(message, err, fields)
	} else {
		fields["error"] = err.Error()
		logger.Warn(message, fields)
	}

	c.JSON(status, gin.H{
		"error":      message,
		"request_id": c.GetString(middleware.RequestIDKey),
	})
}
