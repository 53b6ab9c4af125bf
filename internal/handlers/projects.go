package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teamboard/backend/internal/apperr"
	"github.com/teamboard/backend/internal/models"
)

type ProjectHandler struct {
	projects ProjectRepository
	joins    JoinNotifier
	logger   *zap.SugaredLogger
}

// NewProjectHandler builds the project handler. joins may be nil.
func NewProjectHandler(projects ProjectRepository, joins JoinNotifier, logger *zap.SugaredLogger) *ProjectHandler {
	return &ProjectHandler{projects: projects, joins: joins, logger: logger}
}

// newJoinCode returns an 8 character code handed to people joining a project.
func newJoinCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// CreateProject creates a project owned by the caller.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var input models.CreateProjectRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project := models.Project{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Code:        newJoinCode(),
		OwnerID:     userID,
	}
	if project.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}
	if err := h.projects.Create(c.Request.Context(), &project); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Infow("Project created", "project_id", project.ID, "owner_id", userID)
	c.JSON(http.StatusCreated, project)
}

// JoinProject adds the caller to the project matching the code.
func (h *ProjectHandler) JoinProject(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var input models.JoinProjectRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	project, err := h.projects.FindByCode(ctx, strings.ToUpper(strings.TrimSpace(input.Code)))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if err := h.projects.AddMember(ctx, project.ID, userID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Infow("Project joined", "project_id", project.ID, "user_id", userID)
	if h.joins != nil {
		h.joins.ProjectJoined(ctx, *project, userID)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Joined project", "project_id": project.ID})
}

// GetProject returns a project with its members. Only members may read it.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	projectID, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	project, err := h.projects.FindByID(ctx, projectID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if !hasMember(project, userID) {
		respondError(c, h.logger, apperr.Forbidden("handlers.GetProject", "not a member of this project"))
		return
	}

	c.JSON(http.StatusOK, project)
}

func hasMember(project *models.Project, userID int) bool {
	for _, m := range project.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}
