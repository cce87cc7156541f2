package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Mishael-2584/odel-portal-api/internal/httperr"
	"github.com/Mishael-2584/odel-portal-api/internal/httpresp"
	"github.com/Mishael-2584/odel-portal-api/internal/models"
	"github.com/Mishael-2584/odel-portal-api/internal/timezone"
)

// ContentHandler serves the portal's news and events back-office.
type ContentHandler struct {
	db *gorm.DB
}

func NewContentHandler(db *gorm.DB) *ContentHandler {
	return &ContentHandler{db: db}
}

type NewsRequest struct {
	Title     string `json:"title" binding:"required"`
	Body      string `json:"body"`
	Published *bool  `json:"published"`
}

type EventRequest struct {
	Title     string `json:"title" binding:"required"`
	Body      string `json:"body"`
	Venue     string `json:"venue"`
	StartsAt  string `json:"starts_at" binding:"required"`
	Published *bool  `json:"published"`
}

// ------------------------------
// News
// ------------------------------

func (h *ContentHandler) ListNews(c *gin.Context) {
	var posts []models.NewsPost
	if err := h.db.Where("published = ?", true).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		httperr.Internal(c, "failed_to_list_news", "Could not load news.")
		return
	}
	httpresp.List(c, posts)
}

func (h *ContentHandler) CreateNews(c *gin.Context) {
	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid news payload.")
		return
	}

	post := models.NewsPost{Title: req.Title, Body: req.Body, Published: true}
	if req.Published != nil {
		post.Published = *req.Published
	}

	if err := h.db.Create(&post).Error; err != nil {
		httperr.Internal(c, "failed_to_create_news", "Could not create news post.")
		return
	}
	httpresp.Created(c, post)
}

func (h *ContentHandler) UpdateNews(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var post models.NewsPost
	if err := h.db.First(&post, id).Error; err != nil {
		httperr.NotFound(c, "news_not_found", "News post not found.")
		return
	}

	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid news payload.")
		return
	}

	post.Title = req.Title
	post.Body = req.Body
	if req.Published != nil {
		post.Published = *req.Published
	}

	if err := h.db.Save(&post).Error; err != nil {
		httperr.Internal(c, "failed_to_update_news", "Could not update news post.")
		return
	}
	httpresp.OK(c, post)
}

func (h *ContentHandler) DeleteNews(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var post models.NewsPost
	if err := h.db.First(&post, id).Error; err != nil {
		httperr.NotFound(c, "news_not_found", "News post not found.")
		return
	}

	if err := h.db.Delete(&post).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_news", "Could not delete news post.")
		return
	}
	httpresp.OK(c, gin.H{"deleted": true})
}

// ------------------------------
// Events
// ------------------------------

func (h *ContentHandler) ListEvents(c *gin.Context) {
	var events []models.Event
	if err := h.db.Where("published = ?", true).
		Order("starts_at ASC").
		Find(&events).Error; err != nil {
		httperr.Internal(c, "failed_to_list_events", "Could not load events.")
		return
	}
	httpresp.List(c, events)
}

func (h *ContentHandler) CreateEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid event payload.")
		return
	}

	startsAt, err := parseEventTime(req.StartsAt)
	if err != nil {
		httperr.BadRequest(c, "invalid_starts_at", "Invalid event start; use YYYY-MM-DD HH:MM.")
		return
	}

	event := models.Event{
		Title:     req.Title,
		Body:      req.Body,
		Venue:     req.Venue,
		StartsAt:  startsAt,
		Published: true,
	}
	if req.Published != nil {
		event.Published = *req.Published
	}

	if err := h.db.Create(&event).Error; err != nil {
		httperr.Internal(c, "failed_to_create_event", "Could not create event.")
		return
	}
	httpresp.Created(c, event)
}

func (h *ContentHandler) UpdateEvent(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var event models.Event
	if err := h.db.First(&event, id).Error; err != nil {
		httperr.NotFound(c, "event_not_found", "Event not found.")
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid event payload.")
		return
	}

	startsAt, err := parseEventTime(req.StartsAt)
	if err != nil {
		httperr.BadRequest(c, "invalid_starts_at", "Invalid event start; use YYYY-MM-DD HH:MM.")
		return
	}

	event.Title = req.Title
	event.Body = req.Body
	event.Venue = req.Venue
	event.StartsAt = startsAt
	if req.Published != nil {
		event.Published = *req.Published
	}

	if err := h.db.Save(&event).Error; err != nil {
		httperr.Internal(c, "failed_to_update_event", "Could not update event.")
		return
	}
	httpresp.OK(c, event)
}

func (h *ContentHandler) DeleteEvent(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var event models.Event
	if err := h.db.First(&event, id).Error; err != nil {
		httperr.NotFound(c, "event_not_found", "Event not found.")
		return
	}

	if err := h.db.Delete(&event).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_event", "Could not delete event.")
		return
	}
	httpresp.OK(c, gin.H{"deleted": true})
}

func parseEventTime(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", s, timezone.Campus())
}
