package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teamboard/backend/internal/apperr"
	"github.com/teamboard/backend/internal/models"
	"github.com/teamboard/backend/internal/voting"
)

type PostHandler struct {
	posts    PostRepository
	projects ProjectRepository
	votes    VoteService
	logger   *zap.SugaredLogger
}

func NewPostHandler(posts PostRepository, projects ProjectRepository, votes VoteService, logger *zap.SugaredLogger) *PostHandler {
	return &PostHandler{posts: posts, projects: projects, votes: votes, logger: logger}
}

// postResponse is a post as seen by one user.
type postResponse struct {
	models.Post
	IsAuthor bool         `json:"is_author"`
	Vote     *voting.View `json:"vote,omitempty"`
}

// requireMember writes 403 unless userID belongs to the project.
func (h *PostHandler) requireMember(c *gin.Context, projectID, userID int) bool {
	ok, err := h.projects.IsMember(c.Request.Context(), projectID, userID)
	if err != nil {
		respondError(c, h.logger, err)
		return false
	}
	if !ok {
		respondError(c, h.logger, apperr.Forbidden("handlers.Post", "not a member of this project"))
		return false
	}
	return true
}

// CreatePost creates a post in a project, optionally with a vote
// (PROTECTED - requires membership)
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input models.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.requireMember(c, projectID, userID) {
		return
	}

	var vote *models.Vote
	if input.HasVoting {
		in := voting.CreateVoteInput{
			CreatorID:     userID,
			Title:         input.VoteTitle,
			Options:       input.VoteOptions,
			AllowMultiple: input.AllowMultipleChoices,
			Anonymous:     input.IsAnonymous,
		}
		if input.VoteEndTime != nil {
			end := input.VoteEndTime.DateTime
			in.EndAt = &end
		}
		var err error
		if vote, err = h.votes.PrepareVote(in); err != nil {
			respondError(c, h.logger, err)
			return
		}
	}

	post := models.Post{
		ProjectID: projectID,
		UserID:    userID,
		Title:     input.Title,
		Content:   input.Content,
		IsNotice:  input.IsNotice,
	}
	if err := h.posts.Create(c.Request.Context(), &post, vote); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Infow("Post created", "post_id", post.ID, "project_id", projectID, "has_voting", post.HasVoting)
	c.JSON(http.StatusCreated, gin.H{"id": post.ID, "message": "Post created successfully"})
}

// GetPosts lists the posts of a project, notices first.
func (h *PostHandler) GetPosts(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := paramID(c, "id")
	if !ok {
		return
	}
	if !h.requireMember(c, projectID, userID) {
		return
	}

	posts, err := h.posts.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	// If no posts, return empty array not null
	if posts == nil {
		posts = []models.Post{}
	}
	c.JSON(http.StatusOK, posts)
}

// GetPost returns a single post with its vote
func (h *PostHandler) GetPost(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	postID, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	post, err := h.posts.FindByID(ctx, postID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if !h.requireMember(c, post.ProjectID, userID) {
		return
	}

	resp := postResponse{Post: *post, IsAuthor: post.UserID == userID}
	if post.HasVoting {
		if resp.Vote, err = h.votes.ViewForPost(ctx, post.ID, userID); err != nil {
			respondError(c, h.logger, err)
			return
		}
	}

	c.JSON(http.StatusOK, resp)
}

// UpdatePost edits the title, content or notice flag of a post
// (PROTECTED - requires ownership)
func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	postID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input models.UpdatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		respondError(c, h.logger, apperr.InvalidInput("handlers.UpdatePost", "title must not be blank"))
		return
	}

	post, err := h.posts.Update(c.Request.Context(), postID, userID, input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, postResponse{Post: *post, IsAuthor: true})
}

// DeletePost deletes a post with its vote (PROTECTED - requires ownership)
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	postID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.posts.Delete(c.Request.Context(), postID, userID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Infow("Post deleted", "post_id", postID, "user_id", userID)
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
