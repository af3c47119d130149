package service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/nikita1503agarwal/perma-backend/internal/model"
	"github.com/nikita1503agarwal/perma-backend/internal/repository"
)

// Averages holds per-dimension means; nil means no data in the window.
type Averages struct {
	P *float64 `json:"p"`
	E *float64 `json:"e"`
	R *float64 `json:"r"`
	M *float64 `json:"m"`
	A *float64 `json:"a"`
}

type Summary struct {
	Count  int            `json:"count"`
	Avg    Averages       `json:"avg"`
	Latest *model.CheckIn `json:"latest"`
	Streak int            `json:"streak"`
}

type StatsService struct {
	repo repository.CheckInRepository
	now  func() time.Time
}

func NewStatsService(repo repository.CheckInRepository) *StatsService {
	return &StatsService{
		repo: repo,
		now:  time.Now,
	}
}

// Summary computes per-dimension averages, the latest check-in and the
// current consecutive-day streak from the user's most recent windowDays
// check-ins. The averages run over however many check-ins exist in the
// window, not over calendar days, so gaps do not drag them down.
//
// The streak is also computed from the fetched window, so a streak longer
// than windowDays is under-reported.
func (s *StatsService) Summary(identity model.Identity, windowDays int) (*Summary, error) {
	checkIns, err := s.repo.Recent(identity.UserID, windowDays)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch check-ins: %w", err)
	}

	if len(checkIns) == 0 {
		return &Summary{}, nil
	}

	var sumP, sumE, sumR, sumM, sumA int
	for _, c := range checkIns {
		sumP += c.P
		sumE += c.E
		sumR += c.R
		sumM += c.M
		sumA += c.A
	}

	n := len(checkIns)
	return &Summary{
		Count: n,
		Avg: Averages{
			P: round2(sumP, n),
			E: round2(sumE, n),
			R: round2(sumR, n),
			M: round2(sumM, n),
			A: round2(sumA, n),
		},
		Latest: checkIns[0],
		Streak: s.streak(checkIns),
	}, nil
}

// round2 rounds half to even, so exact third-decimal halves land on the
// same side as the original API (0.125 -> 0.12, not 0.13).
func round2(sum, n int) *float64 {
	avg := math.RoundToEven(float64(sum)/float64(n)*100) / 100
	return &avg
}

// streak counts consecutive calendar days with a check-in, walking backward
// from today. No check-in dated today means 0 regardless of history. Dates
// are deduplicated first; one check-in per day is the invariant, but the
// walk should not depend on it.
func (s *StatsService) streak(checkIns []*model.CheckIn) int {
	seen := map[string]bool{}
	var dates []time.Time
	for _, c := range checkIns {
		if seen[c.Date] {
			continue
		}
		seen[c.Date] = true

		day, err := time.Parse(model.DateLayout, c.Date)
		if err != nil {
			continue
		}
		dates = append(dates, day)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	now := s.now()
	expected := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	streak := 0
	for _, day := range dates {
		if !day.Equal(expected) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}

	return streak
}
