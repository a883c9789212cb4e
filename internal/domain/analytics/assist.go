package analytics

import (
	"sort"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/shot"
)

type AssistEdge struct {
	Season           string
	Assister         string
	Shooter          string
	AssistsCount     int
	GoalsFromAssists int
	TotalXGAssisted  float64
}

type assistKey struct {
	assister string
	shooter  string
}

// BuildAssistNetwork groups assisted shots by (assister, shooter). Shots
// without an assister never produce an edge.
func BuildAssistNetwork(season string, shots []shot.Shot) []AssistEdge {
	edges := make(map[assistKey]*AssistEdge)
	for _, s := range shots {
		assister, ok := s.Assister()
		if !ok {
			continue
		}
		key := assistKey{assister: assister, shooter: s.PlayerName}
		edge, exists := edges[key]
		if !exists {
			edge = &AssistEdge{Season: season, Assister: assister, Shooter: s.PlayerName}
			edges[key] = edge
		}
		edge.AssistsCount++
		if s.IsGoal() {
			edge.GoalsFromAssists++
		}
		edge.TotalXGAssisted += s.XG
	}

	out := make([]AssistEdge, 0, len(edges))
	for _, edge := range edges {
		edge.TotalXGAssisted = round2(edge.TotalXGAssisted)
		out = append(out, *edge)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].AssistsCount != out[j].AssistsCount {
			return out[i].AssistsCount > out[j].AssistsCount
		}
		if out[i].Assister != out[j].Assister {
			return out[i].Assister < out[j].Assister
		}
		return out[i].Shooter < out[j].Shooter
	})

	return out
}
