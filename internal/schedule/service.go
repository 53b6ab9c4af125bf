package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"go.uber.org/zap"

	"github.com/teamboard/backend/internal/apperr"
	"github.com/teamboard/backend/internal/models"
)

type Service struct {
	store  Store
	loc    *time.Location
	now    func() time.Time
	logger *zap.SugaredLogger
}

type Option func(*Service)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService builds a Service. loc is the zone in which "today" is evaluated
// when deciding whether a poll is still active.
func NewService(store Store, loc *time.Location, logger *zap.SugaredLogger, opts ...Option) *Service {
	s := &Service{
		store:  store,
		loc:    loc,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type CreatePollInput struct {
	ProjectID int
	CreatorID int
	Title     string
	StartDate civil.Date
	Duration  int // days, >= 1
	DayStart  civil.Time
	DayEnd    civil.Time
}

type PollSummary struct {
	ID        int              `json:"id"`
	Title     string           `json:"title"`
	StartDate models.Date      `json:"start_date"`
	EndDate   models.Date      `json:"end_date"`
	DayStart  models.TimeOfDay `json:"start_time_of_day"`
	DayEnd    models.TimeOfDay `json:"end_time_of_day"`
	Duration  int              `json:"duration"`
	UserCount int              `json:"user_count"`
}

// MaxPollDays bounds a poll's duration; every detail read allocates a row
// per day.
const MaxPollDays = 366

func (s *Service) CreatePoll(ctx context.Context, in CreatePollInput) (int, error) {
	const op = "schedule.CreatePoll"

	title := strings.TrimSpace(in.Title)
	switch {
	case title == "":
		return 0, apperr.InvalidInput(op, "title is required")
	case in.StartDate.IsZero():
		return 0, apperr.InvalidInput(op, "start date is required")
	case in.Duration < 1:
		return 0, apperr.InvalidInput(op, "duration must be at least one day")
	case in.Duration > MaxPollDays:
		return 0, apperr.InvalidInput(op, fmt.Sprintf("duration must be at most %d days", MaxPollDays))
	case secondsOfDay(in.DayStart) >= secondsOfDay(in.DayEnd):
		return 0, apperr.InvalidInput(op, "start time of day must be before end time of day")
	}

	if ok, err := s.store.ProjectExists(ctx, in.ProjectID); err != nil {
		return 0, err
	} else if !ok {
		return 0, apperr.NotFound(op, "project not found")
	}
	if ok, err := s.store.UserExists(ctx, in.CreatorID); err != nil {
		return 0, err
	} else if !ok {
		return 0, apperr.NotFound(op, "user not found")
	}
	if ok, err := s.store.IsMember(ctx, in.ProjectID, in.CreatorID); err != nil {
		return 0, err
	} else if !ok {
		return 0, apperr.Forbidden(op, "not a member of this project")
	}

	poll := &models.TimePoll{
		ProjectID: in.ProjectID,
		CreatorID: in.CreatorID,
		Title:     title,
		StartDate: models.Date{Date: in.StartDate},
		EndDate:   models.Date{Date: in.StartDate.AddDays(in.Duration - 1)},
		DayStart:  models.TimeOfDay{Time: in.DayStart},
		DayEnd:    models.TimeOfDay{Time: in.DayEnd},
	}
	if err := s.store.CreatePoll(ctx, poll); err != nil {
		s.logger.Errorw("Failed to create time poll", "project_id", in.ProjectID, "error", err)
		return 0, err
	}

	s.logger.Infow("Time poll created", "poll_id", poll.ID, "project_id", in.ProjectID, "days", in.Duration)
	return poll.ID, nil
}

// ListActive returns the project's polls that end today or later. Today is
// read once per call in the service's reference zone.
func (s *Service) ListActive(ctx context.Context, projectID int) ([]PollSummary, error) {
	today := civil.DateOf(s.now().In(s.loc))

	polls, err := s.store.ListActivePolls(ctx, projectID, today)
	if err != nil {
		return nil, err
	}
	if len(polls) == 0 {
		return []PollSummary{}, nil
	}

	ids := make([]int, len(polls))
	for i, p := range polls {
		ids[i] = p.ID
	}
	counts, err := s.store.CountRespondents(ctx, ids)
	if err != nil {
		return nil, err
	}

	summaries := make([]PollSummary, len(polls))
	for i, p := range polls {
		summaries[i] = PollSummary{
			ID:        p.ID,
			Title:     p.Title,
			StartDate: p.StartDate,
			EndDate:   p.EndDate,
			DayStart:  p.DayStart,
			DayEnd:    p.DayEnd,
			Duration:  p.EndDate.DaysSince(p.StartDate.Date) + 1,
			UserCount: counts[p.ID],
		}
	}
	return summaries, nil
}

// Submit replaces everything userID previously submitted for the poll with
// intervals. An empty list clears the user's availability. Intervals are
// stored as given; overlap and ordering are not checked.
func (s *Service) Submit(ctx context.Context, pollID, userID int, intervals []Interval) error {
	const op = "schedule.Submit"

	if _, err := s.store.FindPoll(ctx, pollID); err != nil {
		return err
	}
	if ok, err := s.store.UserExists(ctx, userID); err != nil {
		return err
	} else if !ok {
		return apperr.NotFound(op, "user not found")
	}

	responses := make([]models.TimeResponse, len(intervals))
	for i, iv := range intervals {
		responses[i] = models.TimeResponse{
			PollID:  pollID,
			UserID:  userID,
			StartAt: models.LocalDateTime{DateTime: iv.Start},
			EndAt:   models.LocalDateTime{DateTime: iv.End},
		}
	}

	if err := s.store.ReplaceResponses(ctx, pollID, userID, responses); err != nil {
		s.logger.Errorw("Failed to replace availability", "poll_id", pollID, "user_id", userID, "error", err)
		return err
	}

	s.logger.Infow("Availability submitted", "poll_id", pollID, "user_id", userID, "intervals", len(intervals))
	return nil
}

// Detail recomputes both grids from the responses currently stored. All
// responses are read in one query so the team and personal grids come from
// the same snapshot.
func (s *Service) Detail(ctx context.Context, pollID, userID int) (Detail, error) {
	poll, err := s.store.FindPoll(ctx, pollID)
	if err != nil {
		return Detail{}, err
	}
	responses, err := s.store.ListResponses(ctx, pollID)
	if err != nil {
		return Detail{}, err
	}
	return BuildDetail(poll, responses, userID), nil
}
