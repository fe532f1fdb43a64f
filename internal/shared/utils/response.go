package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brt06a/Testv5/internal/shared/errors"
)

// genericErrorMessage is returned for failures whose detail must stay in the logs.
const genericErrorMessage = "Internal server error"

// MessageResponse is the body of every error and of informational replies.
type MessageResponse struct {
	Message string `json:"message"`
}

// SuccessResponse is the acknowledgement body for state changing calls.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// JSONResponse writes data as the top-level body without an envelope.
func JSONResponse(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

// OKResponse writes {"success": true}.
func OKResponse(c *gin.Context) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// MessageOKResponse writes {"message": message} with status 200.
func MessageOKResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// ErrorResponse sends an error response with custom status code and message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageResponse{Message: message})
}

// ErrorResponseWithError maps err onto a status code and a client-safe message.
// Errors that are not AppErrors never leak their text.
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		ErrorResponse(c, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	message := appErr.Message
	if message == "" {
		message = http.StatusText(appErr.Code)
	}
	ErrorResponse(c, appErr.Code, message)
}
