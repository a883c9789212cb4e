package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches map[string]match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	byID := make(map[string]match.Match, len(matches))
	for _, item := range matches {
		byID[item.ID] = item
	}
	return &MatchRepository{matches: byID}
}

func (r *MatchRepository) ListSeasons(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, item := range r.matches {
		if _, ok := seen[item.Season]; ok || item.Season == "" {
			continue
		}
		seen[item.Season] = struct{}{}
		out = append(out, item.Season)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out, nil
}

func (r *MatchRepository) ListBySeason(_ context.Context, season string) ([]match.Match, error) {
	return r.filter(func(m match.Match) bool { return m.Season == season }), nil
}

func (r *MatchRepository) ListAll(_ context.Context) ([]match.Match, error) {
	return r.filter(func(match.Match) bool { return true }), nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.matches[matchID]
	return item, ok, nil
}

func (r *MatchRepository) Upsert(_ context.Context, matches []match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range matches {
		r.matches[item.ID] = item
	}
	return nil
}

func (r *MatchRepository) filter(keep func(match.Match) bool) []match.Match {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, item := range r.matches {
		if keep(item) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
