package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/soulful-academy/chakra-report/internal/report"
	"github.com/soulful-academy/chakra-report/internal/session"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		answerErr     *session.AnswerError
		profileErr    *report.ProfileError
	)
	switch {
	case errors.As(err, &validationErr),
		errors.As(err, &answerErr),
		errors.As(err, &profileErr),
		errors.Is(err, session.ErrPageOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
