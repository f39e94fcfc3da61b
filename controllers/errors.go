package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/table-order-service/services"
	"github.com/yeremiapane/table-order-service/utils"
)

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

var ErrDeleteFailed = &CustomError{"failed"}

// respondServiceError maps gateway errors to status codes. Anything that is
// not a known precondition is logged and answered with a generic failure.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNoActiveSession),
		errors.Is(err, services.ErrItemNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, services.ErrSessionAlreadyActive):
		utils.RespondError(c, http.StatusConflict, err)
	case errors.Is(err, services.ErrInvalidCustomers),
		errors.Is(err, services.ErrInvalidAmount):
		utils.RespondError(c, http.StatusBadRequest, err)
	default:
		utils.RespondFailure(c, http.StatusInternalServerError, err)
	}
}

func tableNrParam(c *gin.Context) (uint8, bool) {
	raw := c.Param("table_nr")
	nr, err := strconv.ParseUint(raw, 10, 8)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid table number %q", raw))
		return 0, false
	}
	return uint8(nr), true
}

func idParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid %s %q", name, raw))
		return 0, false
	}
	return uint(id), true
}
