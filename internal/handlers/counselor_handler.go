package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Mishael-2584/odel-portal-api/internal/audit"
	"github.com/Mishael-2584/odel-portal-api/internal/httperr"
	"github.com/Mishael-2584/odel-portal-api/internal/httpresp"
	"github.com/Mishael-2584/odel-portal-api/internal/models"
	"github.com/Mishael-2584/odel-portal-api/internal/validators"
)

type CounselorHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewCounselorHandler(db *gorm.DB, auditor *audit.Dispatcher) *CounselorHandler {
	return &CounselorHandler{db: db, audit: auditor}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateCounselorRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	Gender         string `json:"gender" binding:"required,oneof=male female"`
	Specialization string `json:"specialization"`
}

type UpdateCounselorRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Gender         *string `json:"gender"`
	Specialization *string `json:"specialization"`
	Active         *bool   `json:"active"`
}

type WorkingHoursEntry struct {
	Weekday   string `json:"weekday" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Active    *bool  `json:"active"`
}

var validWeekdays = map[string]bool{
	"Monday": true, "Tuesday": true, "Wednesday": true,
	"Thursday": true, "Friday": true, "Saturday": true, "Sunday": true,
}

// ======================================================
// PUBLIC
// ======================================================

// List returns active counselors, optionally filtered by gender (for
// students with a gender preference) and specialization.
func (h *CounselorHandler) List(c *gin.Context) {
	q := h.db.Where("active = ?", true).Order("name ASC")

	if gender := c.Query("gender"); gender != "" {
		q = q.Where("gender = ?", gender)
	}
	if spec := c.Query("specialization"); spec != "" {
		q = q.Where("specialization ILIKE ?", "%"+spec+"%")
	}

	var counselors []models.Counselor
	if err := q.Preload("WorkingHours").Find(&counselors).Error; err != nil {
		httperr.Internal(c, "failed_to_list_counselors", "Could not load counselors.")
		return
	}

	httpresp.List(c, counselors)
}

// ======================================================
// ADMIN
// ======================================================

func (h *CounselorHandler) Create(c *gin.Context) {
	var req CreateCounselorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid counselor data.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not appear to be valid.")
		return
	}

	counselor := models.Counselor{
		Name:           req.Name,
		Email:          email,
		Phone:          req.Phone,
		Gender:         req.Gender,
		Specialization: req.Specialization,
		Active:         true,
	}

	if err := h.db.Create(&counselor).Error; err != nil {
		httperr.Internal(c, "failed_to_create_counselor", "Could not create counselor.")
		return
	}

	id := adminID(c)
	h.audit.Dispatch(audit.Event{
		AdminID:  &id,
		Action:   "counselor_created",
		Entity:   "counselor",
		EntityID: &counselor.ID,
	})

	httpresp.Created(c, counselor)
}

func (h *CounselorHandler) Update(c *gin.Context) {
	counselorID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var counselor models.Counselor
	if err := h.db.First(&counselor, counselorID).Error; err != nil {
		httperr.NotFound(c, "counselor_not_found", "Counselor not found.")
		return
	}

	var req UpdateCounselorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid counselor data.")
		return
	}

	if req.Name != nil {
		counselor.Name = *req.Name
	}
	if req.Email != nil {
		counselor.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		counselor.Phone = *req.Phone
	}
	if req.Gender != nil {
		if *req.Gender != "male" && *req.Gender != "female" {
			httperr.BadRequest(c, "invalid_gender", "Gender must be male or female.")
			return
		}
		counselor.Gender = *req.Gender
	}
	if req.Specialization != nil {
		counselor.Specialization = *req.Specialization
	}
	if req.Active != nil {
		counselor.Active = *req.Active
	}

	if err := h.db.Save(&counselor).Error; err != nil {
		httperr.Internal(c, "failed_to_update_counselor", "Could not update counselor.")
		return
	}

	id := adminID(c)
	h.audit.Dispatch(audit.Event{
		AdminID:  &id,
		Action:   "counselor_updated",
		Entity:   "counselor",
		EntityID: &counselor.ID,
	})

	httpresp.OK(c, counselor)
}

// SetWorkingHours replaces the counselor's weekly calendar. Weekdays
// omitted from the payload become non-working days.
func (h *CounselorHandler) SetWorkingHours(c *gin.Context) {
	counselorID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var counselor models.Counselor
	if err := h.db.First(&counselor, counselorID).Error; err != nil {
		httperr.NotFound(c, "counselor_not_found", "Counselor not found.")
		return
	}

	var entries []WorkingHoursEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid working hours payload.")
		return
	}

	seen := map[string]bool{}
	rows := make([]models.WorkingHours, 0, len(entries))
	for _, e := range entries {
		if !validWeekdays[e.Weekday] {
			httperr.BadRequest(c, "invalid_weekday", "Unknown weekday: "+e.Weekday)
			return
		}
		if seen[e.Weekday] {
			httperr.BadRequest(c, "duplicate_weekday", "Weekday listed twice: "+e.Weekday)
			return
		}
		seen[e.Weekday] = true

		active := true
		if e.Active != nil {
			active = *e.Active
		}

		rows = append(rows, models.WorkingHours{
			CounselorID: counselor.ID,
			Weekday:     e.Weekday,
			StartTime:   e.StartTime,
			EndTime:     e.EndTime,
			Active:      active,
		})
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("counselor_id = ?", counselor.ID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_set_working_hours", "Could not update working hours.")
		return
	}

	id := adminID(c)
	h.audit.Dispatch(audit.Event{
		AdminID:  &id,
		Action:   "working_hours_updated",
		Entity:   "counselor",
		EntityID: &counselor.ID,
	})

	httpresp.OK(c, rows)
}
