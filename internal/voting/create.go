package voting

import (
	"context"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/teamboard/backend/internal/apperr"
	"github.com/teamboard/backend/internal/models"
)

type CreateVoteInput struct {
	PostID        int
	CreatorID     int
	Title         string
	Options       []string
	AllowMultiple bool
	Anonymous     bool
	EndAt         *civil.DateTime // nil: never closes
}

// NewVote validates in and builds the vote row with its options. Blank option
// texts are skipped; the rest keep their input order.
func NewVote(in CreateVoteInput, now civil.DateTime) (*models.Vote, error) {
	const op = "voting.NewVote"

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperr.InvalidInput(op, "vote title is required")
	}

	vote := &models.Vote{
		PostID:        in.PostID,
		Title:         title,
		StartAt:       models.LocalDateTime{DateTime: now},
		AllowMultiple: in.AllowMultiple,
		IsAnonymous:   in.Anonymous,
	}
	if in.EndAt != nil {
		vote.EndAt = &models.LocalDateTime{DateTime: *in.EndAt}
	}

	for _, content := range in.Options {
		content = strings.TrimSpace(content)
		if content == "" {
			continue
		}
		vote.Options = append(vote.Options, models.VoteOption{
			Content:  content,
			Position: len(vote.Options),
		})
	}
	if len(vote.Options) == 0 {
		return nil, apperr.InvalidInput(op, "at least one vote option is required")
	}
	return vote, nil
}

// PrepareVote builds a vote starting now, for callers that insert it
// together with its post.
func (e *Engine) PrepareVote(in CreateVoteInput) (*models.Vote, error) {
	return NewVote(in, e.wallClock())
}

// CreateVote attaches a new vote to an existing post. Only members of the
// post's project may do so, and a post carries at most one vote.
func (e *Engine) CreateVote(ctx context.Context, in CreateVoteInput) (int, error) {
	const op = "voting.CreateVote"

	vote, err := NewVote(in, e.wallClock())
	if err != nil {
		return 0, err
	}

	err = e.store.InTx(ctx, func(tx Tx) error {
		if ok, err := tx.PostExists(in.PostID); err != nil {
			return err
		} else if !ok {
			return apperr.NotFound(op, "post not found")
		}
		if ok, err := tx.UserExists(in.CreatorID); err != nil {
			return err
		} else if !ok {
			return apperr.NotFound(op, "user not found")
		}
		if ok, err := tx.IsPostMember(in.PostID, in.CreatorID); err != nil {
			return err
		} else if !ok {
			return apperr.Forbidden(op, "not a member of this project")
		}
		if ok, err := tx.PostHasVote(in.PostID); err != nil {
			return err
		} else if ok {
			return apperr.Conflict(op, "post already has a vote")
		}
		return tx.CreateVote(vote)
	})
	if err != nil {
		return 0, err
	}

	e.logger.Infow("Vote created", "vote_id", vote.ID, "post_id", in.PostID, "options", len(vote.Options))
	return vote.ID, nil
}
