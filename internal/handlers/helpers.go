package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Mishael-2584/odel-portal-api/internal/httperr"
	"github.com/Mishael-2584/odel-portal-api/internal/middleware"
)

var businessMessages = map[string]string{
	httperr.CodeSlotTaken:           "This time slot is no longer available, please choose another.",
	httperr.CodeInvalidState:        "The appointment is not in a state that allows this action.",
	httperr.CodeMissingReason:       "A cancellation reason is required.",
	httperr.CodeAppointmentNotFound: "Appointment not found.",
	httperr.CodeCounselorNotFound:   "Counselor not found.",
	httperr.CodeCounselorInactive:   "This counselor is not currently taking appointments.",
	httperr.CodeInvalidDate:         "Invalid date; use YYYY-MM-DD.",
	httperr.CodeInvalidTime:         "Invalid time; use HH:MM.",
	httperr.CodeOutsideHours:        "The requested time is not a bookable slot for this counselor.",
	"date_in_past":                  "The appointment date has already passed.",
}

// writeBusinessErr maps a usecase error onto the HTTP envelope. Anything
// that is not a BusinessError is a storage-level failure and surfaces as a
// generic 500.
func writeBusinessErr(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)
	if code == "" {
		httperr.Internal(c, "internal_error", "Something went wrong, please try again.")
		return
	}

	message, ok := businessMessages[code]
	if !ok {
		message = "Invalid request."
	}

	switch {
	case code == httperr.CodeSlotTaken:
		httperr.Conflict(c, code, message)
	case code == httperr.CodeAppointmentNotFound, code == httperr.CodeCounselorNotFound:
		httperr.NotFound(c, code, message)
	case strings.HasPrefix(code, "missing_"), strings.HasPrefix(code, "invalid_"),
		code == httperr.CodeOutsideHours, code == httperr.CodeCounselorInactive:
		httperr.BadRequest(c, code, message)
	default:
		httperr.BadRequest(c, code, message)
	}
}

func adminID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextAdminID).(uint)
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return 0, false
	}
	return uint(id), true
}
