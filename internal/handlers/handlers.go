package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teamboard/backend/internal/apperr"
	"github.com/teamboard/backend/internal/auth"
	"github.com/teamboard/backend/internal/middleware"
	"github.com/teamboard/backend/internal/models"
	"github.com/teamboard/backend/internal/schedule"
	"github.com/teamboard/backend/internal/voting"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, userID int) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	FindByID(ctx context.Context, projectID int) (*models.Project, error)
	FindByCode(ctx context.Context, code string) (*models.Project, error)
	AddMember(ctx context.Context, projectID, userID int) error
	IsMember(ctx context.Context, projectID, userID int) (bool, error)
}

// JoinNotifier hears about members joining a project by code.
type JoinNotifier interface {
	ProjectJoined(ctx context.Context, project models.Project, memberID int)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post, vote *models.Vote) error
	FindByID(ctx context.Context, postID int) (*models.Post, error)
	ListByProject(ctx context.Context, projectID int) ([]models.Post, error)
	Update(ctx context.Context, postID, userID int, changes models.UpdatePostRequest) (*models.Post, error)
	Delete(ctx context.Context, postID, userID int) error
}

type VoteService interface {
	Cast(ctx context.Context, optionID, userID int) error
	Recast(ctx context.Context, optionID, userID int) error
	PrepareVote(in voting.CreateVoteInput) (*models.Vote, error)
	CreateVote(ctx context.Context, in voting.CreateVoteInput) (int, error)
	View(ctx context.Context, voteID, viewerID int) (*voting.View, error)
	ViewForPost(ctx context.Context, postID, viewerID int) (*voting.View, error)
}

// Deps is everything the handlers need.
type Deps struct {
	Users    UserRepository
	Projects ProjectRepository
	Joins    JoinNotifier
	Posts    PostRepository
	Votes    VoteService
	Polls    *schedule.Service
	Tokens   *auth.Tokens
	Logger   *zap.SugaredLogger
}

// Handler combines all handler types
type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Project *ProjectHandler
	Post    *PostHandler
	Vote    *VoteHandler
	Poll    *PollHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(d Deps) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(d.Users, d.Tokens, d.Logger),
		User:    NewUserHandler(d.Users, d.Logger),
		Project: NewProjectHandler(d.Projects, d.Joins, d.Logger),
		Post:    NewPostHandler(d.Posts, d.Projects, d.Votes, d.Logger),
		Vote:    NewVoteHandler(d.Votes, d.Logger),
		Poll:    NewPollHandler(d.Polls, d.Logger),
	}
}

// respondError writes err with the status matching its kind. Internal
// errors are logged and their details withheld from the client.
func respondError(c *gin.Context, logger *zap.SugaredLogger, err error) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindConflict:
		status = http.StatusConflict
	case apperr.KindInvalidInput:
		status = http.StatusBadRequest
	case apperr.KindForbidden:
		status = http.StatusForbidden
	default:
		logger.Errorw("Request failed", "path", c.FullPath(), "error", err)
	}
	_ = c.Error(err)
	c.JSON(status, gin.H{"error": apperr.Message(err)})
}

// currentUser returns the authenticated caller, writing 401 when absent.
func currentUser(c *gin.Context) (int, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
	}
	return id, ok
}

// paramID parses a positive integer path parameter, writing 400 when it is
// malformed.
func paramID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}
