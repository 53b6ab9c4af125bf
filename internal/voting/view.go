package voting

import (
	"context"
	"sort"

	"cloud.google.com/go/civil"

	"github.com/teamboard/backend/internal/apperr"
	"github.com/teamboard/backend/internal/models"
)

type OptionView struct {
	ID       int      `json:"id"`
	Content  string   `json:"content"`
	Count    int      `json:"count"`
	Selected bool     `json:"selected"`
	Voters   []string `json:"voters,omitempty"` // empty for anonymous votes
}

// View is a vote as seen by one user.
type View struct {
	ID            int                   `json:"id"`
	PostID        int                   `json:"post_id"`
	Title         string                `json:"title"`
	StartAt       models.LocalDateTime  `json:"start_at"`
	EndAt         *models.LocalDateTime `json:"end_at"`
	AllowMultiple bool                  `json:"allow_multiple_choices"`
	IsAnonymous   bool                  `json:"is_anonymous"`
	Closed        bool                  `json:"closed"`
	Options       []OptionView          `json:"options"`
	HasVoted      bool                  `json:"has_voted"`
	MySelections  []int                 `json:"my_selections"`
	TotalVoters   int                   `json:"total_voters"`
}

func (e *Engine) View(ctx context.Context, voteID, viewerID int) (*View, error) {
	vote, err := e.store.FindVote(ctx, voteID)
	if err != nil {
		return nil, err
	}
	return e.view(ctx, vote, viewerID)
}

// ViewForPost returns the vote attached to postID, or nil when the post has
// none.
func (e *Engine) ViewForPost(ctx context.Context, postID, viewerID int) (*View, error) {
	vote, err := e.store.FindVoteByPost(ctx, postID)
	if apperr.KindOf(err) == apperr.KindNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e.view(ctx, vote, viewerID)
}

func (e *Engine) view(ctx context.Context, vote *models.Vote, viewerID int) (*View, error) {
	records, err := e.store.ListRecords(ctx, vote.ID)
	if err != nil {
		return nil, err
	}

	var names map[int]string
	if !vote.IsAnonymous && len(records) > 0 {
		ids := make([]int, 0, len(records))
		for _, r := range records {
			ids = append(ids, r.UserID)
		}
		if names, err = e.store.UserNames(ctx, ids); err != nil {
			return nil, err
		}
	}

	return buildView(vote, records, names, viewerID, e.wallClock()), nil
}

func buildView(vote *models.Vote, records []models.VoteRecord, names map[int]string, viewerID int, now civil.DateTime) *View {
	v := &View{
		ID:            vote.ID,
		PostID:        vote.PostID,
		Title:         vote.Title,
		StartAt:       vote.StartAt,
		EndAt:         vote.EndAt,
		AllowMultiple: vote.AllowMultiple,
		IsAnonymous:   vote.IsAnonymous,
		Closed:        vote.ClosedAt(now),
		Options:       make([]OptionView, len(vote.Options)),
		MySelections:  []int{},
	}

	options := append([]models.VoteOption(nil), vote.Options...)
	sort.SliceStable(options, func(i, j int) bool { return options[i].Position < options[j].Position })

	index := make(map[int]int, len(options))
	for i, o := range options {
		index[o.ID] = i
		v.Options[i] = OptionView{ID: o.ID, Content: o.Content, Count: o.Count}
	}

	voters := make(map[int]struct{})
	for _, r := range records {
		voters[r.UserID] = struct{}{}
		i, ok := index[r.OptionID]
		if !ok {
			continue
		}
		if r.UserID == viewerID {
			v.Options[i].Selected = true
			v.MySelections = append(v.MySelections, r.OptionID)
		}
		if !vote.IsAnonymous {
			v.Options[i].Voters = append(v.Options[i].Voters, names[r.UserID])
		}
	}
	v.HasVoted = len(v.MySelections) > 0
	v.TotalVoters = len(voters)
	return v
}
