package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/match"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/shot"
)

const (
	// CompletenessPopulated is reported whenever both matches and shots exist.
	// It is a coarse flag, not a measured ratio.
	CompletenessPopulated = 95.0

	FreshnessUnknown = "Unknown"
)

type DataQuality struct {
	TotalMatches     int
	TotalShots       int
	DataCompleteness float64
	LastUpdate       time.Time
	HasLastUpdate    bool
	SeasonsAvailable []string
	ValidationErrors int
	DataFreshness    string
}

// DataQualitySnapshot reports coverage of the loaded facts as seen at now.
// ValidationErrors is left at zero; callers fill it from a validation run.
func DataQualitySnapshot(matches []match.Match, shots []shot.Shot, now time.Time) DataQuality {
	out := DataQuality{
		TotalMatches:  len(matches),
		TotalShots:    len(shots),
		DataFreshness: FreshnessUnknown,
	}
	if out.TotalMatches > 0 && out.TotalShots > 0 {
		out.DataCompleteness = CompletenessPopulated
	}

	seasons := make(map[string]struct{})
	for _, m := range matches {
		if m.Season != "" {
			seasons[m.Season] = struct{}{}
		}
		if !m.Date.IsZero() && (!out.HasLastUpdate || m.Date.After(out.LastUpdate)) {
			out.LastUpdate = m.Date
			out.HasLastUpdate = true
		}
	}
	out.SeasonsAvailable = make([]string, 0, len(seasons))
	for s := range seasons {
		out.SeasonsAvailable = append(out.SeasonsAvailable, s)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(out.SeasonsAvailable)))

	if out.HasLastUpdate {
		days := int(now.Sub(out.LastUpdate).Hours() / 24)
		out.DataFreshness = Freshness(days)
	}

	return out
}

// Freshness renders a whole number of days since the last match.
func Freshness(days int) string {
	if days < 0 {
		days = 0
	}
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	default:
		return fmt.Sprintf("%d months ago", days/30)
	}
}
