package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/teamboard/backend/internal/apperr"
	"github.com/teamboard/backend/internal/models"
	mock_schedule "github.com/teamboard/backend/internal/schedule/mocks"
)

func newTestService(t *testing.T, now time.Time) (*Service, *mock_schedule.MockStore) {
	ctrl := gomock.NewController(t)
	store := mock_schedule.NewMockStore(ctrl)
	loc, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)
	svc := NewService(store, loc, zap.NewNop().Sugar(), WithClock(func() time.Time { return now }))
	return svc, store
}

func validInput() CreatePollInput {
	return CreatePollInput{
		ProjectID: 3,
		CreatorID: 7,
		Title:     "  kickoff  ",
		StartDate: civil.Date{Year: 2025, Month: time.January, Day: 1},
		Duration:  2,
		DayStart:  civil.Time{Hour: 9},
		DayEnd:    civil.Time{Hour: 18},
	}
}

func TestCreatePoll(t *testing.T) {
	svc, store := newTestService(t, time.Now())
	ctx := context.Background()

	store.EXPECT().ProjectExists(ctx, 3).Return(true, nil)
	store.EXPECT().UserExists(ctx, 7).Return(true, nil)
	store.EXPECT().IsMember(ctx, 3, 7).Return(true, nil)
	store.EXPECT().CreatePoll(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *models.TimePoll) error {
		assert.Equal(t, "kickoff", p.Title)
		assert.Equal(t, models.NewDate(2025, time.January, 1), p.StartDate)
		assert.Equal(t, models.NewDate(2025, time.January, 2), p.EndDate)
		assert.Equal(t, models.NewTimeOfDay(9, 0), p.DayStart)
		assert.Equal(t, models.NewTimeOfDay(18, 0), p.DayEnd)
		p.ID = 42
		return nil
	})

	id, err := svc.CreatePoll(ctx, validInput())
	require.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestCreatePollAcceptsLongestDuration(t *testing.T) {
	svc, store := newTestService(t, time.Now())
	ctx := context.Background()

	store.EXPECT().ProjectExists(ctx, 3).Return(true, nil)
	store.EXPECT().UserExists(ctx, 7).Return(true, nil)
	store.EXPECT().IsMember(ctx, 3, 7).Return(true, nil)
	store.EXPECT().CreatePoll(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *models.TimePoll) error {
		assert.Equal(t, models.NewDate(2026, time.January, 1), p.EndDate)
		p.ID = 43
		return nil
	})

	in := validInput()
	in.Duration = MaxPollDays
	_, err := svc.CreatePoll(ctx, in)
	require.NoError(t, err)
}

func TestCreatePollRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreatePollInput)
	}{
		{"blank title", func(in *CreatePollInput) { in.Title = "   " }},
		{"missing start date", func(in *CreatePollInput) { in.StartDate = civil.Date{} }},
		{"zero duration", func(in *CreatePollInput) { in.Duration = 0 }},
		{"negative duration", func(in *CreatePollInput) { in.Duration = -3 }},
		{"duration over a year", func(in *CreatePollInput) { in.Duration = MaxPollDays + 1 }},
		{"huge duration", func(in *CreatePollInput) { in.Duration = 10000000 }},
		{"empty window", func(in *CreatePollInput) { in.DayEnd = in.DayStart }},
		{"inverted window", func(in *CreatePollInput) { in.DayStart, in.DayEnd = in.DayEnd, in.DayStart }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No store expectations: validation must fail before any lookup.
			svc, _ := newTestService(t, time.Now())
			in := validInput()
			tt.mutate(&in)

			_, err := svc.CreatePoll(context.Background(), in)
			assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
		})
	}
}

func TestCreatePollLookups(t *testing.T) {
	ctx := context.Background()

	t.Run("project missing", func(t *testing.T) {
		svc, store := newTestService(t, time.Now())
		store.EXPECT().ProjectExists(ctx, 3).Return(false, nil)

		_, err := svc.CreatePoll(ctx, validInput())
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("creator missing", func(t *testing.T) {
		svc, store := newTestService(t, time.Now())
		store.EXPECT().ProjectExists(ctx, 3).Return(true, nil)
		store.EXPECT().UserExists(ctx, 7).Return(false, nil)

		_, err := svc.CreatePoll(ctx, validInput())
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("creator not a member", func(t *testing.T) {
		svc, store := newTestService(t, time.Now())
		store.EXPECT().ProjectExists(ctx, 3).Return(true, nil)
		store.EXPECT().UserExists(ctx, 7).Return(true, nil)
		store.EXPECT().IsMember(ctx, 3, 7).Return(false, nil)

		_, err := svc.CreatePoll(ctx, validInput())
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	})

	t.Run("store failure", func(t *testing.T) {
		svc, store := newTestService(t, time.Now())
		boom := errors.New("connection reset")
		store.EXPECT().ProjectExists(ctx, 3).Return(false, boom)

		_, err := svc.CreatePoll(ctx, validInput())
		assert.ErrorIs(t, err, boom)
	})
}

func TestListActiveUsesReferenceZoneForToday(t *testing.T) {
	// 16:00 UTC on Jan 1 is already Jan 2 in Seoul.
	now := time.Date(2025, time.January, 1, 16, 0, 0, 0, time.UTC)
	svc, store := newTestService(t, now)
	ctx := context.Background()

	polls := []models.TimePoll{
		{ID: 5, Title: "b", StartDate: models.NewDate(2025, time.January, 2), EndDate: models.NewDate(2025, time.January, 4)},
		{ID: 4, Title: "a", StartDate: models.NewDate(2024, time.December, 30), EndDate: models.NewDate(2025, time.January, 2)},
	}
	store.EXPECT().ListActivePolls(ctx, 3, civil.Date{Year: 2025, Month: time.January, Day: 2}).Return(polls, nil)
	store.EXPECT().CountRespondents(ctx, []int{5, 4}).Return(map[int]int{5: 2}, nil)

	got, err := svc.ListActive(ctx, 3)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, 5, got[0].ID)
	assert.Equal(t, 3, got[0].Duration)
	assert.Equal(t, 2, got[0].UserCount)

	assert.Equal(t, 4, got[1].ID)
	assert.Equal(t, 4, got[1].Duration)
	assert.Equal(t, 0, got[1].UserCount)
}

func TestListActiveEmpty(t *testing.T) {
	svc, store := newTestService(t, time.Now())
	store.EXPECT().ListActivePolls(gomock.Any(), 3, gomock.Any()).Return(nil, nil)

	got, err := svc.ListActive(context.Background(), 3)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSubmitPollMissing(t *testing.T) {
	svc, store := newTestService(t, time.Now())
	store.EXPECT().FindPoll(gomock.Any(), 9).Return(nil, apperr.NotFound("repository.FindPoll", "time poll not found"))

	err := svc.Submit(context.Background(), 9, 1, nil)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestSubmitUserMissing(t *testing.T) {
	svc, store := newTestService(t, time.Now())
	store.EXPECT().FindPoll(gomock.Any(), 1).Return(newPoll(9, 0, 10, 0, 2), nil)
	store.EXPECT().UserExists(gomock.Any(), 8).Return(false, nil)

	err := svc.Submit(context.Background(), 1, 8, nil)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

// memStore keeps responses in memory so the replace contract can be observed
// through Detail.
type memStore struct {
	responses []models.TimeResponse
}

func (m *memStore) replace(_ context.Context, pollID, userID int, rs []models.TimeResponse) error {
	kept := m.responses[:0:0]
	for _, r := range m.responses {
		if r.PollID != pollID || r.UserID != userID {
			kept = append(kept, r)
		}
	}
	m.responses = append(kept, rs...)
	return nil
}

func (m *memStore) list(context.Context, int) ([]models.TimeResponse, error) {
	return append([]models.TimeResponse(nil), m.responses...), nil
}

func TestSubmitReplacesAndIsIdempotent(t *testing.T) {
	svc, store := newTestService(t, time.Now())
	mem := &memStore{}
	poll := newPoll(9, 0, 10, 0, 2)

	store.EXPECT().FindPoll(gomock.Any(), 1).Return(poll, nil).AnyTimes()
	store.EXPECT().UserExists(gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()
	store.EXPECT().ReplaceResponses(gomock.Any(), 1, gomock.Any(), gomock.Any()).DoAndReturn(mem.replace).AnyTimes()
	store.EXPECT().ListResponses(gomock.Any(), 1).DoAndReturn(mem.list).AnyTimes()

	ctx := context.Background()
	first := []Interval{{Start: at(2025, 1, 1, 9, 0), End: at(2025, 1, 1, 10, 0)}}
	second := []Interval{{Start: at(2025, 1, 2, 9, 30), End: at(2025, 1, 2, 10, 0)}}

	require.NoError(t, svc.Submit(ctx, 1, 2, []Interval{{Start: at(2025, 1, 1, 9, 0), End: at(2025, 1, 1, 9, 30)}}))

	require.NoError(t, svc.Submit(ctx, 1, 1, first))
	once, err := svc.Detail(ctx, 1, 1)
	require.NoError(t, err)

	require.NoError(t, svc.Submit(ctx, 1, 1, first))
	twice, err := svc.Detail(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
	assert.Equal(t, [][]int{{2, 1}, {0, 0}}, twice.TeamGrid)

	require.NoError(t, svc.Submit(ctx, 1, 1, second))
	replaced, err := svc.Detail(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 0}, {0, 1}}, replaced.MyGrid)
	assert.Equal(t, [][]int{{1, 0}, {0, 1}}, replaced.TeamGrid)

	require.NoError(t, svc.Submit(ctx, 1, 1, nil))
	cleared, err := svc.Detail(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 0}, {0, 0}}, cleared.MyGrid)
	assert.Equal(t, [][]int{{1, 0}, {0, 0}}, cleared.TeamGrid)
}

func TestDetailPollMissing(t *testing.T) {
	svc, store := newTestService(t, time.Now())
	store.EXPECT().FindPoll(gomock.Any(), 1).Return(nil, apperr.NotFound("repository.FindPoll", "time poll not found"))

	_, err := svc.Detail(context.Background(), 1, 1)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
