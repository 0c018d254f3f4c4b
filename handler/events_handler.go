package handler

import (
	"errors"
	"time"

	"studytrack/dto"
	"studytrack/model"
	"studytrack/usecase"
	"studytrack/utils"

	"github.com/gin-gonic/gin"
)

type EventsHandler struct {
	events      *usecase.EventsService
	completions *usecase.CompletionsService
}

func NewEventsHandler(events *usecase.EventsService, completions *usecase.CompletionsService) *EventsHandler {
	return &EventsHandler{events: events, completions: completions}
}

func (h *EventsHandler) CreateEvent(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Title       string               `json:"title" binding:"required"`
		IsRecurring bool                 `json:"is_recurring"`
		FixedDate   time.Time            `json:"fixed_date"`
		Recurrence  model.RecurrenceType `json:"recurrence,omitempty"`
		DaysOfWeek  []int                `json:"days_of_week,omitempty"`
		ExamID      string               `json:"exam_id,omitempty"`
		SubjectID   string               `json:"subject_id,omitempty"`
		TopicID     string               `json:"topic_id,omitempty"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	event := &model.StudyEvent{
		UserID:      userID.(string),
		Title:       req.Title,
		IsRecurring: req.IsRecurring,
		FixedDate:   req.FixedDate,
		Recurrence:  req.Recurrence,
		DaysOfWeek:  req.DaysOfWeek,
		ExamID:      req.ExamID,
		SubjectID:   req.SubjectID,
		TopicID:     req.TopicID,
	}

	if err := h.events.CreateEvent(c.Request.Context(), event); err != nil {
		if isValidationError(err) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Created(c, dto.ToEventResponse(event))
}

func (h *EventsHandler) GetUserEvents(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	events, err := h.events.GetUserEvents(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.ToEventResponses(events))
}

func (h *EventsHandler) UpdateEvent(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	eventID := c.Param("id")
	if eventID == "" {
		utils.BadRequest(c, "Missing event ID")
		return
	}

	var updates model.StudyEvent
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.events.UpdateEvent(c.Request.Context(), eventID, userID.(string), &updates)
	if err != nil {
		if errors.Is(err, usecase.ErrEventNotFound) {
			utils.NotFound(c, err.Error())
			return
		}
		if isValidationError(err) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.ToEventResponse(updated))
}

// CompleteEvent marks one occurrence of an event as done. The day defaults to
// today when the body carries no date.
func (h *EventsHandler) CompleteEvent(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	eventID := c.Param("id")
	if eventID == "" {
		utils.BadRequest(c, "Missing event ID")
		return
	}

	var req struct {
		Date time.Time `json:"date"`
	}

	// An empty body means today; anything present must parse
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequest(c, "Invalid date")
			return
		}
	}

	record, err := h.completions.MarkComplete(c.Request.Context(), eventID, userID.(string), req.Date)
	if err != nil {
		if errors.Is(err, usecase.ErrEventNotFound) {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.ToCompletionResponse(record))
}

func isValidationError(err error) bool {
	return errors.Is(err, usecase.ErrTitleRequired) ||
		errors.Is(err, usecase.ErrFixedDateRequired) ||
		errors.Is(err, usecase.ErrDaysOfWeekRequired) ||
		errors.Is(err, usecase.ErrInvalidDayOfWeek) ||
		errors.Is(err, usecase.ErrInvalidRecurrence)
}
