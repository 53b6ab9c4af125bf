package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teamboard/backend/internal/models"
	"github.com/teamboard/backend/internal/voting"
)

type VoteHandler struct {
	votes  VoteService
	logger *zap.SugaredLogger
}

func NewVoteHandler(votes VoteService, logger *zap.SugaredLogger) *VoteHandler {
	return &VoteHandler{votes: votes, logger: logger}
}

// CreateVote attaches a vote to an existing post.
func (h *VoteHandler) CreateVote(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var input models.CreateVoteRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := voting.CreateVoteInput{
		PostID:        input.PostID,
		CreatorID:     userID,
		Title:         input.Title,
		Options:       input.OptionContents,
		AllowMultiple: input.AllowMultipleChoices,
		Anonymous:     input.IsAnonymous,
	}
	if input.EndTime != nil {
		end := input.EndTime.DateTime
		in.EndAt = &end
	}

	ctx := c.Request.Context()
	voteID, err := h.votes.CreateVote(ctx, in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	view, err := h.votes.View(ctx, voteID, userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// GetVote returns the vote with counts and the caller's selections.
func (h *VoteHandler) GetVote(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	voteID, ok := paramID(c, "id")
	if !ok {
		return
	}

	view, err := h.votes.View(c.Request.Context(), voteID, userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Cast selects an option for the caller.
func (h *VoteHandler) Cast(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	optionID, ok := paramID(c, "optionId")
	if !ok {
		return
	}

	if err := h.votes.Cast(c.Request.Context(), optionID, userID); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vote recorded"})
}

// Recast changes the caller's selection: it moves a single choice vote and
// toggles an option of a multiple choice vote.
func (h *VoteHandler) Recast(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	optionID, ok := paramID(c, "optionId")
	if !ok {
		return
	}

	if err := h.votes.Recast(c.Request.Context(), optionID, userID); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vote updated"})
}
