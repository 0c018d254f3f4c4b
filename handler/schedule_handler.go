package handler

import (
	"errors"

	"studytrack/dto"
	"studytrack/usecase"
	"studytrack/utils"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	schedule *usecase.ScheduleService
}

func NewScheduleHandler(schedule *usecase.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedule: schedule}
}

// GetMonthSchedule materializes the full calendar month given as ?month=YYYY-MM.
func (h *ScheduleHandler) GetMonthSchedule(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	month := c.Query("month")
	if month == "" {
		utils.BadRequest(c, "Missing month parameter")
		return
	}

	occurrences, err := h.schedule.MonthOccurrences(c.Request.Context(), userID.(string), month)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidMonth) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.ToOccurrenceResponses(occurrences))
}

func (h *ScheduleHandler) GetTodaySchedule(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	occurrences, err := h.schedule.Today(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.ToOccurrenceResponses(occurrences))
}

func (h *ScheduleHandler) GetMonthStats(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	month := c.Query("month")
	if month == "" {
		utils.BadRequest(c, "Missing month parameter")
		return
	}

	stats, err := h.schedule.MonthStats(c.Request.Context(), userID.(string), month)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidMonth) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, stats)
}
