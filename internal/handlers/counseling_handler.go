package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Mishael-2584/odel-portal-api/internal/httperr"
	"github.com/Mishael-2584/odel-portal-api/internal/httpresp"
	"github.com/Mishael-2584/odel-portal-api/internal/timezone"
	ucCounseling "github.com/Mishael-2584/odel-portal-api/internal/usecase/counseling"
)

type CounselingHandler struct {
	availabilityUC *ucCounseling.GetAvailability
	bookUC         *ucCounseling.BookAppointment
	listUC         *ucCounseling.ListAppointments
	confirmUC      *ucCounseling.ConfirmAppointment
	cancelUC       *ucCounseling.CancelAppointment
	rescheduleUC   *ucCounseling.RescheduleAppointment
	deleteUC       *ucCounseling.DeleteAppointment
}

func NewCounselingHandler(
	availabilityUC *ucCounseling.GetAvailability,
	bookUC *ucCounseling.BookAppointment,
	listUC *ucCounseling.ListAppointments,
	confirmUC *ucCounseling.ConfirmAppointment,
	cancelUC *ucCounseling.CancelAppointment,
	rescheduleUC *ucCounseling.RescheduleAppointment,
	deleteUC *ucCounseling.DeleteAppointment,
) *CounselingHandler {
	return &CounselingHandler{
		availabilityUC: availabilityUC,
		bookUC:         bookUC,
		listUC:         listUC,
		confirmUC:      confirmUC,
		cancelUC:       cancelUC,
		rescheduleUC:   rescheduleUC,
		deleteUC:       deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	StudentName  string `json:"student_name" binding:"required"`
	StudentEmail string `json:"student_email" binding:"required"`
	StudentPhone string `json:"student_phone"`

	CounselorID uint `json:"counselor_id" binding:"required"`

	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`

	Type            string `json:"type" binding:"required"`
	PreferredGender string `json:"preferred_gender"`
	Reason          string `json:"reason"`
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason"`
}

type RescheduleAppointmentRequest struct {
	NewDate string `json:"new_date" binding:"required"`
	NewTime string `json:"new_time" binding:"required"`
	Reason  string `json:"reason"`
}

// ======================================================
// PUBLIC
// ======================================================

func (h *CounselingHandler) Availability(c *gin.Context) {
	counselorID, ok := parseIDParam(c)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, timezone.Campus())
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date; use YYYY-MM-DD.")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), counselorID, date)
	if err != nil {
		writeBusinessErr(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

func (h *CounselingHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking request.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucCounseling.BookAppointmentInput{
		StudentName:     req.StudentName,
		StudentEmail:    req.StudentEmail,
		StudentPhone:    req.StudentPhone,
		CounselorID:     req.CounselorID,
		Date:            req.Date,
		Time:            req.Time,
		Type:            req.Type,
		PreferredGender: req.PreferredGender,
		Reason:          req.Reason,
	})
	if err != nil {
		writeBusinessErr(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// ADMIN
// ======================================================

func (h *CounselingHandler) List(c *gin.Context) {
	aps, err := h.listUC.Execute(c.Request.Context(), c.Query("status"))
	if err != nil {
		writeBusinessErr(c, err)
		return
	}

	httpresp.List(c, aps)
}

func (h *CounselingHandler) Confirm(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ap, err := h.confirmUC.Execute(c.Request.Context(), adminID(c), id)
	if err != nil {
		writeBusinessErr(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *CounselingHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req CancelAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid cancellation request.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), adminID(c), id, req.Reason)
	if err != nil {
		writeBusinessErr(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *CounselingHandler) Reschedule(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid reschedule request.")
		return
	}

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), adminID(c), ucCounseling.RescheduleAppointmentInput{
		AppointmentID: id,
		NewDate:       req.NewDate,
		NewTime:       req.NewTime,
		Reason:        req.Reason,
	})
	if err != nil {
		writeBusinessErr(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *CounselingHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), adminID(c), id); err != nil {
		writeBusinessErr(c, err)
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}
