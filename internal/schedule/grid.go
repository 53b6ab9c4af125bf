package schedule

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"

	"github.com/teamboard/backend/internal/models"
)

const (
	dateLabelLayout = "01-02"
	timeLabelLayout = "15:04"
)

// Detail is the heatmap view of a poll. It is always derived from the
// stored responses and never persisted.
type Detail struct {
	PollID     int      `json:"poll_id"`
	Title      string   `json:"title"`
	TeamGrid   [][]int  `json:"team_grid"`
	MyGrid     [][]int  `json:"my_grid"`
	DateLabels []string `json:"date_labels"`
	TimeLabels []string `json:"time_labels"`
}

// GridOf returns the grid shape of a poll: one row per day from StartDate to
// EndDate inclusive, one column per whole slot of the daily window. A window
// that is not a multiple of SlotDuration loses its trailing partial slot.
func GridOf(poll *models.TimePoll) Grid {
	windowSeconds := int64(poll.DayEnd.Seconds() - poll.DayStart.Seconds())
	slots := 0
	if windowSeconds > 0 {
		slots = int(windowSeconds / slotSeconds)
	}
	days := poll.EndDate.DaysSince(poll.StartDate.Date) + 1
	if days < 0 {
		days = 0
	}
	return Grid{
		Origin:      poll.StartDate.Date,
		WindowStart: poll.DayStart.Time,
		Days:        days,
		Slots:       slots,
	}
}

// BuildDetail fills the team grid from every response and the personal grid
// from the responses of userID. Order of responses does not matter.
func BuildDetail(poll *models.TimePoll, responses []models.TimeResponse, userID int) Detail {
	g := GridOf(poll)
	team := newMatrix(g.Days, g.Slots)
	mine := newMatrix(g.Days, g.Slots)

	for _, r := range responses {
		cells := g.Cells(Interval{Start: r.StartAt.DateTime, End: r.EndAt.DateTime})
		for _, c := range cells {
			team[c.Day][c.Slot]++
			if r.UserID == userID {
				mine[c.Day][c.Slot]++
			}
		}
	}

	return Detail{
		PollID:     poll.ID,
		Title:      poll.Title,
		TeamGrid:   team,
		MyGrid:     mine,
		DateLabels: DateLabels(g),
		TimeLabels: TimeLabels(g),
	}
}

func newMatrix(rows, cols int) [][]int {
	m := make([][]int, rows)
	for i := range m {
		m[i] = make([]int, cols)
	}
	return m
}

// DateLabels returns one "MM-DD" label per grid row.
func DateLabels(g Grid) []string {
	labels := make([]string, g.Days)
	for i := range labels {
		labels[i] = g.Origin.AddDays(i).In(time.UTC).Format(dateLabelLayout)
	}
	return labels
}

// TimeLabels returns the "HH:MM" start of every grid column.
func TimeLabels(g Grid) []string {
	labels := make([]string, g.Slots)
	start := civil.DateTime{Date: g.Origin, Time: g.WindowStart}.In(time.UTC)
	for i := range labels {
		labels[i] = start.Add(time.Duration(i) * SlotDuration).Format(timeLabelLayout)
	}
	return labels
}

// String renders the matrix for debugging and test failure output.
func (d Detail) String() string {
	return fmt.Sprintf("%s %v x %v team=%v mine=%v", d.Title, d.DateLabels, d.TimeLabels, d.TeamGrid, d.MyGrid)
}
