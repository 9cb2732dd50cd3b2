package httputil

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/notes/internal/errors"
)

// Page size bounds for list endpoints.
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 100
)

var (
	// ErrInvalidOffset is returned for an offset that is not a non-negative integer.
	ErrInvalidOffset = apperrors.New("invalid offset parameter: must be a non-negative integer")

	// ErrInvalidLimit is returned for a limit outside [1, MaxPageLimit].
	ErrInvalidLimit = apperrors.New("invalid limit parameter: must be between 1 and 100")
)

// ParsePagination reads the offset and limit query parameters.
// Missing values default to 0 and DefaultPageLimit.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	offset, ok := queryInt(c, "offset", 0)
	if !ok || offset < 0 {
		return 0, 0, ErrInvalidOffset
	}

	limit, ok = queryInt(c, "limit", DefaultPageLimit)
	if !ok || limit < 1 || limit > MaxPageLimit {
		return 0, 0, ErrInvalidLimit
	}

	return offset, limit, nil
}

// queryInt parses an integer query parameter, returning def when it is absent.
func queryInt(c *gin.Context, key string, def int) (int, bool) {
	raw, present := c.GetQuery(key)
	if !present {
		return def, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}
