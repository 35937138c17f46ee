package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/metaphorce/taskflow/internal/errors"
)

// parseIDParam reads a numeric path parameter. On failure it writes a 400
// response and reports false.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}

// parseTimeParam reads an RFC 3339 timestamp from a path parameter. On
// failure it writes a 400 response and reports false.
func parseTimeParam(c *gin.Context, name string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, c.Param(name))
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name+", expected RFC 3339 timestamp")
		return time.Time{}, false
	}
	return t, true
}

// parsePeriodQuery reads the start/end query parameters bounding a period.
func parsePeriodQuery(c *gin.Context) (start, end time.Time, ok bool) {
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid start, expected RFC 3339 timestamp")
		return time.Time{}, time.Time{}, false
	}
	end, err = time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid end, expected RFC 3339 timestamp")
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
