package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teamboard/backend/internal/models"
	"github.com/teamboard/backend/internal/schedule"
)

type PollHandler struct {
	polls  *schedule.Service
	logger *zap.SugaredLogger
}

func NewPollHandler(polls *schedule.Service, logger *zap.SugaredLogger) *PollHandler {
	return &PollHandler{polls: polls, logger: logger}
}

// CreatePoll creates a time poll and answers with the project's refreshed
// list of active polls.
func (h *PollHandler) CreatePoll(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var input models.CreateTimePollRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	_, err := h.polls.CreatePoll(ctx, schedule.CreatePollInput{
		ProjectID: input.ProjectID,
		CreatorID: userID,
		Title:     input.Title,
		StartDate: input.StartDate.Date,
		Duration:  input.Duration,
		DayStart:  input.DayStart.Time,
		DayEnd:    input.DayEnd.Time,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	polls, err := h.polls.ListActive(ctx, input.ProjectID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, polls)
}

// ListPolls returns the project's polls that have not ended yet.
func (h *PollHandler) ListPolls(c *gin.Context) {
	projectID, ok := paramID(c, "id")
	if !ok {
		return
	}

	polls, err := h.polls.ListActive(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, polls)
}

// GetPoll returns the team and personal availability grids.
func (h *PollHandler) GetPoll(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	pollID, ok := paramID(c, "id")
	if !ok {
		return
	}

	detail, err := h.polls.Detail(c.Request.Context(), pollID, userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// SubmitAvailability replaces the caller's free intervals and answers with
// the recomputed grids.
func (h *PollHandler) SubmitAvailability(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	pollID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input models.SubmitAvailabilityRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	intervals := make([]schedule.Interval, len(input.AvailableTimes))
	for i, r := range input.AvailableTimes {
		intervals[i] = schedule.Interval{Start: r.Start.DateTime, End: r.End.DateTime}
	}

	ctx := c.Request.Context()
	if err := h.polls.Submit(ctx, pollID, userID, intervals); err != nil {
		respondError(c, h.logger, err)
		return
	}

	detail, err := h.polls.Detail(ctx, pollID, userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}
