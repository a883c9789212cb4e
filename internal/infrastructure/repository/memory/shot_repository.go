package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/shot"
)

type ShotRepository struct {
	mu      sync.RWMutex
	byMatch map[string][]shot.Shot
}

func NewShotRepository(shots []shot.Shot) *ShotRepository {
	byMatch := make(map[string][]shot.Shot)
	for _, item := range shots {
		byMatch[item.MatchID] = append(byMatch[item.MatchID], item)
	}
	return &ShotRepository{byMatch: byMatch}
}

func (r *ShotRepository) ListBySeasonAndTeam(_ context.Context, season, team string) ([]shot.Shot, error) {
	out := r.filter(func(s shot.Shot) bool { return s.Season == season && s.Team == team })
	sortByDateDescMinuteAsc(out)
	return out, nil
}

func (r *ShotRepository) ListAll(_ context.Context) ([]shot.Shot, error) {
	out := r.filter(func(shot.Shot) bool { return true })
	sortByDateDescMinuteAsc(out)
	return out, nil
}

func (r *ShotRepository) ListByMatch(_ context.Context, matchID string) ([]shot.Shot, error) {
	r.mu.RLock()
	items := r.byMatch[matchID]
	out := make([]shot.Shot, 0, len(items))
	out = append(out, items...)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Minute < out[j].Minute })
	return out, nil
}

func (r *ShotRepository) ListByPlayer(_ context.Context, season, team, playerName string) ([]shot.Shot, error) {
	out := r.filter(func(s shot.Shot) bool {
		return s.Season == season && s.Team == team && s.PlayerName == playerName
	})
	sortByDateDescMinuteAsc(out)
	return out, nil
}

func (r *ShotRepository) ReplaceForMatch(_ context.Context, matchID string, shots []shot.Shot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]shot.Shot, 0, len(shots))
	items = append(items, shots...)
	r.byMatch[matchID] = items
	return nil
}

func (r *ShotRepository) filter(keep func(shot.Shot) bool) []shot.Shot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]shot.Shot, 0)
	for _, items := range r.byMatch {
		for _, item := range items {
			if keep(item) {
				out = append(out, item)
			}
		}
	}
	return out
}

func sortByDateDescMinuteAsc(items []shot.Shot) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].MatchDate.Equal(items[j].MatchDate) {
			return items[i].MatchDate.After(items[j].MatchDate)
		}
		if items[i].MatchID != items[j].MatchID {
			return items[i].MatchID < items[j].MatchID
		}
		if items[i].Minute != items[j].Minute {
			return items[i].Minute < items[j].Minute
		}
		return items[i].ID < items[j].ID
	})
}
