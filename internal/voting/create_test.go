package voting

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamboard/backend/internal/apperr"
	"github.com/teamboard/backend/internal/models"
)

func TestNewVote(t *testing.T) {
	now := civil.DateTime{Date: civil.Date{Year: 2025, Month: time.June, Day: 1}, Time: civil.Time{Hour: 12}}
	end := now
	end.Date = end.Date.AddDays(3)

	vote, err := NewVote(CreateVoteInput{
		PostID:        5,
		Title:         " dinner ",
		Options:       []string{"bbq", "  ", "", " sushi "},
		AllowMultiple: true,
		EndAt:         &end,
	}, now)
	require.NoError(t, err)

	assert.Equal(t, "dinner", vote.Title)
	assert.Equal(t, 5, vote.PostID)
	assert.True(t, vote.AllowMultiple)
	assert.False(t, vote.IsAnonymous)
	assert.Equal(t, now, vote.StartAt.DateTime)
	require.NotNil(t, vote.EndAt)
	assert.Equal(t, end, vote.EndAt.DateTime)

	require.Len(t, vote.Options, 2)
	assert.Equal(t, models.VoteOption{Content: "bbq", Position: 0}, vote.Options[0])
	assert.Equal(t, models.VoteOption{Content: "sushi", Position: 1}, vote.Options[1])
}

func TestNewVoteRejects(t *testing.T) {
	tests := []struct {
		name string
		in   CreateVoteInput
	}{
		{"blank title", CreateVoteInput{Title: " ", Options: []string{"a"}}},
		{"no options", CreateVoteInput{Title: "t"}},
		{"only blank options", CreateVoteInput{Title: "t", Options: []string{"", "   "}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewVote(tt.in, civil.DateTime{})
			assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
		})
	}
}

func TestCreateVote(t *testing.T) {
	s := newMemStore()
	s.addUser(1, "kim")
	s.posts[20] = false
	e := newTestEngine(t, s)
	ctx := context.Background()

	in := CreateVoteInput{PostID: 20, CreatorID: 1, Title: "venue", Options: []string{"hall", "cafe"}}
	id, err := e.CreateVote(ctx, in)
	require.NoError(t, err)

	vote, err := s.FindVote(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "venue", vote.Title)
	require.Len(t, vote.Options, 2)
	assert.Equal(t, "hall", vote.Options[0].Content)
	assert.Equal(t, models.NewLocalDateTime(2025, time.June, 1, 12, 0), vote.StartAt)

	_, err = e.CreateVote(ctx, in)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err), "a post carries one vote")
}

func TestCreateVoteLookups(t *testing.T) {
	s := newMemStore()
	s.addUser(1, "kim")
	s.posts[20] = false
	e := newTestEngine(t, s)
	ctx := context.Background()

	_, err := e.CreateVote(ctx, CreateVoteInput{PostID: 21, CreatorID: 1, Title: "t", Options: []string{"a"}})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err), "post")

	_, err = e.CreateVote(ctx, CreateVoteInput{PostID: 20, CreatorID: 2, Title: "t", Options: []string{"a"}})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err), "user")
}

func TestCreateVoteRequiresMembership(t *testing.T) {
	s := newMemStore()
	s.addUser(1, "kim")
	s.addUser(3, "park")
	s.outsiders[3] = true
	s.posts[20] = false
	e := newTestEngine(t, s)
	ctx := context.Background()

	_, err := e.CreateVote(ctx, CreateVoteInput{PostID: 20, CreatorID: 3, Title: "t", Options: []string{"a"}})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	assert.False(t, s.posts[20], "post left without a vote")

	_, err = e.CreateVote(ctx, CreateVoteInput{PostID: 20, CreatorID: 1, Title: "t", Options: []string{"a"}})
	require.NoError(t, err)
}
