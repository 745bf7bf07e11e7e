package api

import (
	"errors"
	"net/http"
	"unicode"
	"unicode/utf8"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/gin-gonic/gin"
)

// envelope is the body of every API response.
type envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Stack   string      `json:"stack,omitempty"`
}

func respondData(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, envelope{Success: true, Message: message, Data: data})
}

func respondList[T any](c *gin.Context, items []T) {
	count := len(items)
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, envelope{Success: true, Count: &count, Data: items})
}

// respondError maps domain errors onto HTTP statuses. Unexpected errors get a
// 500 with action as the message and the error text alongside.
func respondError(c *gin.Context, err error, action string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, envelope{Success: false, Message: action, Error: err.Error()})
		return
	}
	c.JSON(status, envelope{Success: false, Message: capitalize(err.Error())})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrPartialFailure):
		return http.StatusInternalServerError
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrInsufficientSeats):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// badRequest reports a body that could not be decoded.
func badRequest(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrValidation) {
		respondError(c, err, "")
		return
	}
	c.JSON(http.StatusBadRequest, envelope{Success: false, Message: "Invalid request body", Error: err.Error()})
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
