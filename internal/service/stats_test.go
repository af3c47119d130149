package service

import (
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikita1503agarwal/perma-backend/internal/model"
	"github.com/nikita1503agarwal/perma-backend/internal/repository"
)

type fakeCheckInRepo struct {
	checkIns []*model.CheckIn
	err      error
}

func (f *fakeCheckInRepo) Create(c *model.CheckIn) error {
	cp := *c
	f.checkIns = append(f.checkIns, &cp)
	return nil
}

func (f *fakeCheckInRepo) ByUserAndDate(userID, date string) (*model.CheckIn, error) {
	for _, c := range f.checkIns {
		if c.UserID == userID && c.Date == date {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repository.ErrCheckInNotFound
}

func (f *fakeCheckInRepo) Update(c *model.CheckIn) error {
	for i, existing := range f.checkIns {
		if existing.ID == c.ID {
			cp := *c
			f.checkIns[i] = &cp
			return nil
		}
	}
	return repository.ErrCheckInNotFound
}

func (f *fakeCheckInRepo) Range(userID, start, end string, limit int) ([]*model.CheckIn, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*model.CheckIn
	for _, c := range f.checkIns {
		if c.UserID != userID {
			continue
		}
		if start != "" && c.Date < start {
			continue
		}
		if end != "" && c.Date > end {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeCheckInRepo) Recent(userID string, limit int) ([]*model.CheckIn, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*model.CheckIn
	for _, c := range f.checkIns {
		if c.UserID == userID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func fixedNow(date string) func() time.Time {
	day, _ := time.Parse(model.DateLayout, date)
	return func() time.Time { return day.Add(15 * time.Hour) }
}

func checkInOn(userID, date string, scores ...int) *model.CheckIn {
	c := &model.CheckIn{ID: userID + "-" + date, UserID: userID, Date: date}
	if len(scores) == 5 {
		c.P, c.E, c.R, c.M, c.A = scores[0], scores[1], scores[2], scores[3], scores[4]
	}
	return c
}

func TestSummaryEmpty(t *testing.T) {
	svc := NewStatsService(&fakeCheckInRepo{})
	svc.now = fixedNow("2024-01-03")

	summary, err := svc.Summary(model.Identity{UserID: "u1"}, 30)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Count)
	assert.Nil(t, summary.Avg.P)
	assert.Nil(t, summary.Avg.E)
	assert.Nil(t, summary.Avg.R)
	assert.Nil(t, summary.Avg.M)
	assert.Nil(t, summary.Avg.A)
	assert.Nil(t, summary.Latest)
	assert.Equal(t, 0, summary.Streak)
}

func TestSummaryAverages(t *testing.T) {
	repo := &fakeCheckInRepo{checkIns: []*model.CheckIn{
		checkInOn("u1", "2024-01-01", 5, 2, 10, 0, 3),
		checkInOn("u1", "2024-01-02", 6, 3, 9, 1, 4),
		checkInOn("u1", "2024-01-03", 6, 4, 8, 2, 5),
	}}
	svc := NewStatsService(repo)
	svc.now = fixedNow("2024-01-03")

	summary, err := svc.Summary(model.Identity{UserID: "u1"}, 30)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Count)
	require.NotNil(t, summary.Avg.P)
	assert.Equal(t, 5.67, *summary.Avg.P) // 17/3 rounded to 2 decimals
	assert.Equal(t, 3.0, *summary.Avg.E)
	assert.Equal(t, 9.0, *summary.Avg.R)
	assert.Equal(t, 1.0, *summary.Avg.M)
	assert.Equal(t, 4.0, *summary.Avg.A)
}

func TestSummaryAveragesRoundHalfToEven(t *testing.T) {
	// 1/8 = 0.125 exactly; half-even rounding gives 0.12, and 3/8 = 0.375
	// gives 0.38.
	checkIns := []*model.CheckIn{
		checkInOn("u1", "2024-01-01", 1, 3, 0, 0, 0),
	}
	for day := 2; day <= 8; day++ {
		date := time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC).Format(model.DateLayout)
		checkIns = append(checkIns, checkInOn("u1", date, 0, 0, 0, 0, 0))
	}
	svc := NewStatsService(&fakeCheckInRepo{checkIns: checkIns})
	svc.now = fixedNow("2024-01-08")

	summary, err := svc.Summary(model.Identity{UserID: "u1"}, 30)
	require.NoError(t, err)

	assert.Equal(t, 8, summary.Count)
	assert.Equal(t, 0.12, *summary.Avg.P)
	assert.Equal(t, 0.38, *summary.Avg.E)
}

func TestSummaryLatestIsMostRecent(t *testing.T) {
	repo := &fakeCheckInRepo{checkIns: []*model.CheckIn{
		checkInOn("u1", "2024-01-01", 1, 1, 1, 1, 1),
		checkInOn("u1", "2024-01-03", 9, 9, 9, 9, 9),
		checkInOn("u1", "2024-01-02", 5, 5, 5, 5, 5),
	}}
	svc := NewStatsService(repo)
	svc.now = fixedNow("2024-01-03")

	summary, err := svc.Summary(model.Identity{UserID: "u1"}, 30)
	require.NoError(t, err)

	require.NotNil(t, summary.Latest)
	assert.Equal(t, "2024-01-03", summary.Latest.Date)
}

func TestSummaryAveragesIgnoreGaps(t *testing.T) {
	// Averages run over the fetched check-ins, not calendar days.
	repo := &fakeCheckInRepo{checkIns: []*model.CheckIn{
		checkInOn("u1", "2024-01-01", 4, 4, 4, 4, 4),
		checkInOn("u1", "2024-01-10", 8, 8, 8, 8, 8),
	}}
	svc := NewStatsService(repo)
	svc.now = fixedNow("2024-01-10")

	summary, err := svc.Summary(model.Identity{UserID: "u1"}, 30)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, 6.0, *summary.Avg.P)
}

func TestStreakEndsToday(t *testing.T) {
	repo := &fakeCheckInRepo{checkIns: []*model.CheckIn{
		checkInOn("u1", "2024-01-01", 5, 5, 5, 5, 5),
		checkInOn("u1", "2024-01-02", 5, 5, 5, 5, 5),
		checkInOn("u1", "2024-01-03", 5, 5, 5, 5, 5),
	}}
	svc := NewStatsService(repo)
	svc.now = fixedNow("2024-01-03")

	summary, err := svc.Summary(model.Identity{UserID: "u1"}, 30)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Streak)
}

func TestStreakZeroWithoutCheckInToday(t *testing.T) {
	// Same history, but "today" has no check-in: streak resets to 0.
	repo := &fakeCheckInRepo{checkIns: []*model.CheckIn{
		checkInOn("u1", "2024-01-01", 5, 5, 5, 5, 5),
		checkInOn("u1", "2024-01-02", 5, 5, 5, 5, 5),
		checkInOn("u1", "2024-01-03", 5, 5, 5, 5, 5),
	}}
	svc := NewStatsService(repo)
	svc.now = fixedNow("2024-01-04")

	summary, err := svc.Summary(model.Identity{UserID: "u1"}, 30)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Streak)
}

func TestStreakStopsAtGap(t *testing.T) {
	repo := &fakeCheckInRepo{checkIns: []*model.CheckIn{
		checkInOn("u1", "2024-01-01", 5, 5, 5, 5, 5),
		// no check-in on 2024-01-02
		checkInOn("u1", "2024-01-03", 5, 5, 5, 5, 5),
		checkInOn("u1", "2024-01-04", 5, 5, 5, 5, 5),
	}}
	svc := NewStatsService(repo)
	svc.now = fixedNow("2024-01-04")

	summary, err := svc.Summary(model.Identity{UserID: "u1"}, 30)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Streak)
}

func TestStreakDeduplicatesDates(t *testing.T) {
	// Two records on the same date must count as one day.
	repo := &fakeCheckInRepo{checkIns: []*model.CheckIn{
		checkInOn("u1", "2024-01-02", 5, 5, 5, 5, 5),
		{ID: "dup", UserID: "u1", Date: "2024-01-02", P: 1},
		checkInOn("u1", "2024-01-03", 5, 5, 5, 5, 5),
	}}
	svc := NewStatsService(repo)
	svc.now = fixedNow("2024-01-03")

	summary, err := svc.Summary(model.Identity{UserID: "u1"}, 30)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Streak)
}

func TestStreakBoundedByWindow(t *testing.T) {
	// A streak longer than the fetch window is under-reported; the window
	// caps what the walk can see.
	repo := &fakeCheckInRepo{checkIns: []*model.CheckIn{
		checkInOn("u1", "2024-01-01", 5, 5, 5, 5, 5),
		checkInOn("u1", "2024-01-02", 5, 5, 5, 5, 5),
		checkInOn("u1", "2024-01-03", 5, 5, 5, 5, 5),
		checkInOn("u1", "2024-01-04", 5, 5, 5, 5, 5),
		checkInOn("u1", "2024-01-05", 5, 5, 5, 5, 5),
	}}
	svc := NewStatsService(repo)
	svc.now = fixedNow("2024-01-05")

	summary, err := svc.Summary(model.Identity{UserID: "u1"}, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, 2, summary.Streak)
}

func TestSummaryScopedToUser(t *testing.T) {
	repo := &fakeCheckInRepo{checkIns: []*model.CheckIn{
		checkInOn("u1", "2024-01-03", 5, 5, 5, 5, 5),
		checkInOn("u2", "2024-01-03", 9, 9, 9, 9, 9),
	}}
	svc := NewStatsService(repo)
	svc.now = fixedNow("2024-01-03")

	summary, err := svc.Summary(model.Identity{UserID: "u1"}, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Count)
	assert.Equal(t, 5.0, *summary.Avg.P)
}

func TestSummaryStorageError(t *testing.T) {
	svc := NewStatsService(&fakeCheckInRepo{err: errors.New("connection refused")})

	_, err := svc.Summary(model.Identity{UserID: "u1"}, 30)
	assert.Error(t, err)
}
