package httpx

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "missionctl/internal/platform/errors"
)

// ErrorResponse is the body of every 4xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// OK writes payload with status 200. Read endpoints answer this way even when
// every source failed; the payload is then empty but well typed.
func OK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// Fail maps err onto a status. Only malformed requests are reported; anything
// else is a server fault.
func Fail(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrInvalidInput) {
		BadRequest(c, err.Error())
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// IntQuery parses an optional integer query parameter bounded to [lo, hi].
// A missing value yields def; a malformed or out-of-range value is an
// ErrInvalidInput.
func IntQuery(c *gin.Context, name string, def, lo, hi int) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < lo || n > hi {
		return 0, invalidParam(name, lo, hi)
	}
	return n, nil
}

func invalidParam(name string, lo, hi int) error {
	return &paramError{name: name, lo: lo, hi: hi}
}

type paramError struct {
	name   string
	lo, hi int
}

func (e *paramError) Error() string {
	return e.name + " must be an integer between " + strconv.Itoa(e.lo) + " and " + strconv.Itoa(e.hi)
}

func (e *paramError) Unwrap() error {
	return apperrors.ErrInvalidInput
}
