package schedule

import (
	"context"

	"cloud.google.com/go/civil"

	"github.com/teamboard/backend/internal/models"
)

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mock_schedule

// Store persists polls and their responses. Lookups of a missing poll return
// an apperr NotFound error.
type Store interface {
	CreatePoll(ctx context.Context, poll *models.TimePoll) error
	FindPoll(ctx context.Context, pollID int) (*models.TimePoll, error)
	// ListActivePolls returns the polls of a project whose end date is on or
	// after today, newest first.
	ListActivePolls(ctx context.Context, projectID int, today civil.Date) ([]models.TimePoll, error)
	// CountRespondents returns, per poll id, the number of distinct users
	// with at least one response. Polls without responses are absent.
	CountRespondents(ctx context.Context, pollIDs []int) (map[int]int, error)
	ListResponses(ctx context.Context, pollID int) ([]models.TimeResponse, error)
	// ReplaceResponses deletes every response of (pollID, userID) and inserts
	// responses in one transaction.
	ReplaceResponses(ctx context.Context, pollID, userID int, responses []models.TimeResponse) error

	ProjectExists(ctx context.Context, projectID int) (bool, error)
	UserExists(ctx context.Context, userID int) (bool, error)
	IsMember(ctx context.Context, projectID, userID int) (bool, error)
}
