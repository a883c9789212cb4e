package httpapi

import (
	"time"

	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/analytics"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/match"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/shot"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/domain/validation"
	"github.com/Muhammadatef/Gunners-Data-Platform/internal/usecase"
)

const dateLayout = "2006-01-02"

type seasonSummaryDTO struct {
	Season                 string  `json:"season"`
	MatchesPlayed          int     `json:"matchesPlayed"`
	Wins                   int     `json:"wins"`
	Draws                  int     `json:"draws"`
	Losses                 int     `json:"losses"`
	Points                 int     `json:"points"`
	GoalsFor               int     `json:"goalsFor"`
	GoalsAgainst           int     `json:"goalsAgainst"`
	GoalDifference         int     `json:"goalDifference"`
	TotalXGFor             float64 `json:"totalXgFor"`
	TotalXGAgainst         float64 `json:"totalXgAgainst"`
	AvgXGPerMatch          float64 `json:"avgXgPerMatch"`
	TotalXGOverperformance float64 `json:"totalXgOverperformance"`
	HomeMatches            int     `json:"homeMatches"`
	AwayMatches            int     `json:"awayMatches"`
	HomeWins               int     `json:"homeWins"`
	AwayWins               int     `json:"awayWins"`
}

type matchDTO struct {
	MatchID           string  `json:"matchId"`
	MatchURL          string  `json:"matchUrl,omitempty"`
	MatchDate         string  `json:"matchDate"`
	Season            string  `json:"season"`
	HomeTeam          string  `json:"homeTeam"`
	AwayTeam          string  `json:"awayTeam"`
	Opponent          string  `json:"opponent"`
	Venue             string  `json:"venue"`
	Result            string  `json:"result"`
	GoalsFor          int     `json:"goalsFor"`
	GoalsAgainst      int     `json:"goalsAgainst"`
	XGFor             float64 `json:"xgFor"`
	XGAgainst         float64 `json:"xgAgainst"`
	XGOverperformance float64 `json:"xgOverperformance"`
}

type matchOptionDTO struct {
	MatchID   string `json:"matchId"`
	MatchName string `json:"matchName"`
	MatchDate string `json:"matchDate"`
	Opponent  string `json:"opponent"`
	Result    string `json:"result"`
}

type shotDTO struct {
	ID         string  `json:"id"`
	MatchID    string  `json:"matchId"`
	MatchDate  string  `json:"matchDate"`
	Season     string  `json:"season"`
	HomeTeam   string  `json:"homeTeam"`
	AwayTeam   string  `json:"awayTeam"`
	HomeGoals  int     `json:"homeGoals"`
	AwayGoals  int     `json:"awayGoals"`
	HomeXG     float64 `json:"homeXg"`
	AwayXG     float64 `json:"awayXg"`
	Team       string  `json:"team"`
	PlayerID   string  `json:"playerId,omitempty"`
	PlayerName string  `json:"playerName"`
	Minute     int     `json:"minute"`
	Result     string  `json:"result"`
	Situation  string  `json:"situation"`
	ShotType   string  `json:"shotType"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	XG         float64 `json:"xg"`
	AssistedBy string  `json:"assistedBy,omitempty"`
	LastAction string  `json:"lastAction,omitempty"`
}

type playerStatsDTO struct {
	PlayerName             string  `json:"playerName"`
	Season                 string  `json:"season"`
	MatchesPlayed          int     `json:"matchesPlayed"`
	TotalShots             int     `json:"totalShots"`
	Goals                  int     `json:"goals"`
	TotalXG                float64 `json:"totalXg"`
	AvgXGPerShot           float64 `json:"avgXgPerShot"`
	ConversionPct          float64 `json:"conversionPct"`
	ShotsOnTarget          int     `json:"shotsOnTarget"`
	ShotAccuracyPct        float64 `json:"shotAccuracyPct"`
	MissedShots            int     `json:"missedShots"`
	BlockedShots           int     `json:"blockedShots"`
	SavedShots             int     `json:"savedShots"`
	BigChances             int     `json:"bigChances"`
	BigChancesScored       int     `json:"bigChancesScored"`
	BigChanceConversionPct float64 `json:"bigChanceConversionPct"`
	BoxShots               int     `json:"boxShots"`
	OutsideBoxShots        int     `json:"outsideBoxShots"`
	AvgShotDistance        float64 `json:"avgShotDistance"`
	RightFootShots         int     `json:"rightFootShots"`
	RightFootGoals         int     `json:"rightFootGoals"`
	LeftFootShots          int     `json:"leftFootShots"`
	LeftFootGoals          int     `json:"leftFootGoals"`
	Headers                int     `json:"headers"`
	HeaderGoals            int     `json:"headerGoals"`
	OpenPlayShots          int     `json:"openPlayShots"`
	OpenPlayGoals          int     `json:"openPlayGoals"`
	CornerShots            int     `json:"cornerShots"`
	SetPieceShots          int     `json:"setPieceShots"`
	PenaltiesTaken         int     `json:"penaltiesTaken"`
	PenaltiesScored        int     `json:"penaltiesScored"`
	Assists                int     `json:"assists"`
	XGOverperformance      float64 `json:"xgOverperformance"`
	ShotsPerMatch          float64 `json:"shotsPerMatch"`
	GoalsPerMatch          float64 `json:"goalsPerMatch"`
	XGPerMatch             float64 `json:"xgPerMatch"`
}

type assistEdgeDTO struct {
	Assister         string  `json:"assister"`
	Shooter          string  `json:"shooter"`
	Season           string  `json:"season"`
	AssistsCount     int     `json:"assistsCount"`
	GoalsFromAssists int     `json:"goalsFromAssists"`
	TotalXGAssisted  float64 `json:"totalXgAssisted"`
}

type timingBucketDTO struct {
	Label string `json:"label"`
	Shots int    `json:"shots"`
	Goals int    `json:"goals"`
}

type situationSplitDTO struct {
	Shots int     `json:"shots"`
	Goals int     `json:"goals"`
	XG    float64 `json:"xg"`
}

type tacticalDTO struct {
	Season              string            `json:"season"`
	Timing              []timingBucketDTO `json:"timing"`
	ShotsFromPass       int               `json:"shotsFromPass"`
	ShotsFromDribble    int               `json:"shotsFromDribble"`
	ShotsFromRebound    int               `json:"shotsFromRebound"`
	ShotsFromChip       int               `json:"shotsFromChip"`
	ShotsFromCross      int               `json:"shotsFromCross"`
	OpenPlay            situationSplitDTO `json:"openPlay"`
	Corner              situationSplitDTO `json:"corner"`
	SetPiece            situationSplitDTO `json:"setPiece"`
	Penalty             situationSplitDTO `json:"penalty"`
	BigChancesCreated   int               `json:"bigChancesCreated"`
	BigChancesConverted int               `json:"bigChancesConverted"`
}

type matchAdvancedDTO struct {
	MatchID               string  `json:"matchId"`
	MatchDate             string  `json:"matchDate"`
	Season                string  `json:"season"`
	Opponent              string  `json:"opponent"`
	Venue                 string  `json:"venue"`
	Result                string  `json:"result"`
	ClubGoals             int     `json:"clubGoals"`
	OpponentGoals         int     `json:"opponentGoals"`
	ClubXG                float64 `json:"clubXg"`
	OpponentXG            float64 `json:"opponentXg"`
	ClubShots             int     `json:"clubShots"`
	OpponentShots         int     `json:"opponentShots"`
	ClubShotsOnTarget     int     `json:"clubShotsOnTarget"`
	OpponentShotsOnTarget int     `json:"opponentShotsOnTarget"`
	ClubShotAccuracyPct   float64 `json:"clubShotAccuracyPct"`
	ClubBigChances        int     `json:"clubBigChances"`
	ClubBigChancesScored  int     `json:"clubBigChancesScored"`
	ClubBoxShots          int     `json:"clubBoxShots"`
	ClubOutsideBoxShots   int     `json:"clubOutsideBoxShots"`
	ClubFirstHalfShots    int     `json:"clubFirstHalfShots"`
	ClubFirstHalfXG       float64 `json:"clubFirstHalfXg"`
	ClubSecondHalfShots   int     `json:"clubSecondHalfShots"`
	ClubSecondHalfXG      float64 `json:"clubSecondHalfXg"`
	ClubAvgShotXG         float64 `json:"clubAvgShotXg"`
	OpponentAvgShotXG     float64 `json:"opponentAvgShotXg"`
}

type opponentDTO struct {
	Opponent        string  `json:"opponent"`
	MatchesPlayed   int     `json:"matchesPlayed"`
	Wins            int     `json:"wins"`
	Draws           int     `json:"draws"`
	Losses          int     `json:"losses"`
	WinRatePct      float64 `json:"winRatePct"`
	GoalsFor        int     `json:"goalsFor"`
	GoalsAgainst    int     `json:"goalsAgainst"`
	AvgGoalsFor     float64 `json:"avgGoalsFor"`
	AvgGoalsAgainst float64 `json:"avgGoalsAgainst"`
	TotalXGFor      float64 `json:"totalXgFor"`
	TotalXGAgainst  float64 `json:"totalXgAgainst"`
	AvgXGFor        float64 `json:"avgXgFor"`
	AvgXGAgainst    float64 `json:"avgXgAgainst"`
	CleanSheets     int     `json:"cleanSheets"`
	FailedToScore   int     `json:"failedToScore"`
	LastPlayed      string  `json:"lastPlayed"`
	LastResult      string  `json:"lastResult"`
}

type trendPointDTO struct {
	MatchID         string  `json:"matchId"`
	MatchDate       string  `json:"matchDate"`
	Opponent        string  `json:"opponent"`
	Result          string  `json:"result"`
	Goals           int     `json:"goals"`
	XG              float64 `json:"xg"`
	Shots           int     `json:"shots"`
	ShotsOnTarget   int     `json:"shotsOnTarget"`
	BigChances      int     `json:"bigChances"`
	RollingAvgXG    float64 `json:"rollingAvgXg"`
	RollingAvgGoals float64 `json:"rollingAvgGoals"`
}

type dataQualityDTO struct {
	TotalMatches     int      `json:"totalMatches"`
	TotalShots       int      `json:"totalShots"`
	DataCompleteness float64  `json:"dataCompleteness"`
	LastUpdate       *string  `json:"lastUpdate"`
	SeasonsAvailable []string `json:"seasonsAvailable"`
	ValidationErrors int      `json:"validationErrors"`
	DataFreshness    string   `json:"dataFreshness"`
}

type anomalyDTO struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateLayout)
}

func seasonSummaryToDTO(s analytics.SeasonSummary) seasonSummaryDTO {
	return seasonSummaryDTO{
		Season:                 s.Season,
		MatchesPlayed:          s.MatchesPlayed,
		Wins:                   s.Wins,
		Draws:                  s.Draws,
		Losses:                 s.Losses,
		Points:                 s.Points,
		GoalsFor:               s.GoalsFor,
		GoalsAgainst:           s.GoalsAgainst,
		GoalDifference:         s.GoalDifference,
		TotalXGFor:             s.TotalXGFor,
		TotalXGAgainst:         s.TotalXGAgainst,
		AvgXGPerMatch:          s.AvgXGPerMatch,
		TotalXGOverperformance: s.TotalXGOverperformance,
		HomeMatches:            s.HomeMatches,
		AwayMatches:            s.AwayMatches,
		HomeWins:               s.HomeWins,
		AwayWins:               s.AwayWins,
	}
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		MatchID:           m.ID,
		MatchURL:          m.URL,
		MatchDate:         formatDate(m.Date),
		Season:            m.Season,
		HomeTeam:          m.HomeTeam,
		AwayTeam:          m.AwayTeam,
		Opponent:          m.Opponent,
		Venue:             string(m.Venue),
		Result:            string(m.Result),
		GoalsFor:          m.GoalsFor,
		GoalsAgainst:      m.GoalsAgainst,
		XGFor:             m.XGFor,
		XGAgainst:         m.XGAgainst,
		XGOverperformance: m.XGOverperformance(),
	}
}

func matchOptionToDTO(o usecase.MatchOption) matchOptionDTO {
	return matchOptionDTO{
		MatchID:   o.ID,
		MatchName: o.Label,
		MatchDate: formatDate(o.Date),
		Opponent:  o.Opponent,
		Result:    string(o.Result),
	}
}

func shotToDTO(s shot.Shot) shotDTO {
	return shotDTO{
		ID:         s.ID,
		MatchID:    s.MatchID,
		MatchDate:  formatDate(s.MatchDate),
		Season:     s.Season,
		HomeTeam:   s.HomeTeam,
		AwayTeam:   s.AwayTeam,
		HomeGoals:  s.HomeGoals,
		AwayGoals:  s.AwayGoals,
		HomeXG:     s.HomeXG,
		AwayXG:     s.AwayXG,
		Team:       s.Team,
		PlayerID:   s.PlayerID,
		PlayerName: s.PlayerName,
		Minute:     s.Minute,
		Result:     string(s.Outcome),
		Situation:  string(s.Situation),
		ShotType:   string(s.BodyPart),
		X:          s.X,
		Y:          s.Y,
		XG:         s.XG,
		AssistedBy: s.AssistedBy,
		LastAction: s.LastAction,
	}
}

func shotsToDTO(shots []shot.Shot) []shotDTO {
	out := make([]shotDTO, 0, len(shots))
	for _, s := range shots {
		out = append(out, shotToDTO(s))
	}
	return out
}

func playerStatsToDTO(p analytics.PlayerSeasonStats) playerStatsDTO {
	return playerStatsDTO{
		PlayerName:             p.PlayerName,
		Season:                 p.Season,
		MatchesPlayed:          p.MatchesPlayed,
		TotalShots:             p.TotalShots,
		Goals:                  p.Goals,
		TotalXG:                p.TotalXG,
		AvgXGPerShot:           p.AvgXGPerShot,
		ConversionPct:          p.ConversionPct,
		ShotsOnTarget:          p.ShotsOnTarget,
		ShotAccuracyPct:        p.ShotAccuracyPct,
		MissedShots:            p.MissedShots,
		BlockedShots:           p.BlockedShots,
		SavedShots:             p.SavedShots,
		BigChances:             p.BigChances,
		BigChancesScored:       p.BigChancesScored,
		BigChanceConversionPct: p.BigChanceConversionPct,
		BoxShots:               p.BoxShots,
		OutsideBoxShots:        p.OutsideBoxShots,
		AvgShotDistance:        p.AvgShotDistance,
		RightFootShots:         p.RightFootShots,
		RightFootGoals:         p.RightFootGoals,
		LeftFootShots:          p.LeftFootShots,
		LeftFootGoals:          p.LeftFootGoals,
		Headers:                p.Headers,
		HeaderGoals:            p.HeaderGoals,
		OpenPlayShots:          p.OpenPlayShots,
		OpenPlayGoals:          p.OpenPlayGoals,
		CornerShots:            p.CornerShots,
		SetPieceShots:          p.SetPieceShots,
		PenaltiesTaken:         p.PenaltiesTaken,
		PenaltiesScored:        p.PenaltiesScored,
		Assists:                p.Assists,
		XGOverperformance:      p.XGOverperformance,
		ShotsPerMatch:          p.ShotsPerMatch,
		GoalsPerMatch:          p.GoalsPerMatch,
		XGPerMatch:             p.XGPerMatch,
	}
}

func assistEdgesToDTO(edges []analytics.AssistEdge) []assistEdgeDTO {
	out := make([]assistEdgeDTO, 0, len(edges))
	for _, e := range edges {
		out = append(out, assistEdgeDTO{
			Assister:         e.Assister,
			Shooter:          e.Shooter,
			Season:           e.Season,
			AssistsCount:     e.AssistsCount,
			GoalsFromAssists: e.GoalsFromAssists,
			TotalXGAssisted:  e.TotalXGAssisted,
		})
	}
	return out
}

func situationToDTO(s analytics.SituationSplit) situationSplitDTO {
	return situationSplitDTO{Shots: s.Shots, Goals: s.Goals, XG: s.XG}
}

func tacticalToDTO(t analytics.TacticalBreakdown) tacticalDTO {
	timing := make([]timingBucketDTO, 0, len(t.Timing))
	for _, b := range t.Timing {
		timing = append(timing, timingBucketDTO{Label: b.Label, Shots: b.Shots, Goals: b.Goals})
	}
	return tacticalDTO{
		Season:              t.Season,
		Timing:              timing,
		ShotsFromPass:       t.ShotsFromPass,
		ShotsFromDribble:    t.ShotsFromDribble,
		ShotsFromRebound:    t.ShotsFromRebound,
		ShotsFromChip:       t.ShotsFromChip,
		ShotsFromCross:      t.ShotsFromCross,
		OpenPlay:            situationToDTO(t.OpenPlay),
		Corner:              situationToDTO(t.Corner),
		SetPiece:            situationToDTO(t.SetPiece),
		Penalty:             situationToDTO(t.Penalty),
		BigChancesCreated:   t.BigChancesCreated,
		BigChancesConverted: t.BigChancesConverted,
	}
}

func matchAdvancedToDTO(m analytics.MatchAdvanced) matchAdvancedDTO {
	return matchAdvancedDTO{
		MatchID:               m.MatchID,
		MatchDate:             formatDate(m.MatchDate),
		Season:                m.Season,
		Opponent:              m.Opponent,
		Venue:                 string(m.Venue),
		Result:                string(m.Result),
		ClubGoals:             m.ClubGoals,
		OpponentGoals:         m.OpponentGoals,
		ClubXG:                m.ClubXG,
		OpponentXG:            m.OpponentXG,
		ClubShots:             m.ClubShots,
		OpponentShots:         m.OpponentShots,
		ClubShotsOnTarget:     m.ClubShotsOnTarget,
		OpponentShotsOnTarget: m.OpponentShotsOnTarget,
		ClubShotAccuracyPct:   m.ClubShotAccuracyPct,
		ClubBigChances:        m.ClubBigChances,
		ClubBigChancesScored:  m.ClubBigChancesScored,
		ClubBoxShots:          m.ClubBoxShots,
		ClubOutsideBoxShots:   m.ClubOutsideBoxShots,
		ClubFirstHalfShots:    m.ClubFirstHalfShots,
		ClubFirstHalfXG:       m.ClubFirstHalfXG,
		ClubSecondHalfShots:   m.ClubSecondHalfShots,
		ClubSecondHalfXG:      m.ClubSecondHalfXG,
		ClubAvgShotXG:         m.ClubAvgShotXG,
		OpponentAvgShotXG:     m.OpponentAvgShotXG,
	}
}

func opponentsToDTO(records []analytics.OpponentRecord) []opponentDTO {
	out := make([]opponentDTO, 0, len(records))
	for _, r := range records {
		out = append(out, opponentDTO{
			Opponent:        r.Opponent,
			MatchesPlayed:   r.MatchesPlayed,
			Wins:            r.Wins,
			Draws:           r.Draws,
			Losses:          r.Losses,
			WinRatePct:      r.WinRatePct,
			GoalsFor:        r.GoalsFor,
			GoalsAgainst:    r.GoalsAgainst,
			AvgGoalsFor:     r.AvgGoalsFor,
			AvgGoalsAgainst: r.AvgGoalsAgainst,
			TotalXGFor:      r.TotalXGFor,
			TotalXGAgainst:  r.TotalXGAgainst,
			AvgXGFor:        r.AvgXGFor,
			AvgXGAgainst:    r.AvgXGAgainst,
			CleanSheets:     r.CleanSheets,
			FailedToScore:   r.FailedToScore,
			LastPlayed:      formatDate(r.LastPlayed),
			LastResult:      string(r.LastResult),
		})
	}
	return out
}

func trendToDTO(points []analytics.TrendPoint) []trendPointDTO {
	out := make([]trendPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, trendPointDTO{
			MatchID:         p.MatchID,
			MatchDate:       formatDate(p.MatchDate),
			Opponent:        p.Opponent,
			Result:          string(p.Result),
			Goals:           p.Goals,
			XG:              p.XG,
			Shots:           p.Shots,
			ShotsOnTarget:   p.ShotsOnTarget,
			BigChances:      p.BigChances,
			RollingAvgXG:    p.RollingAvgXG,
			RollingAvgGoals: p.RollingAvgGoals,
		})
	}
	return out
}

func dataQualityToDTO(q analytics.DataQuality) dataQualityDTO {
	out := dataQualityDTO{
		TotalMatches:     q.TotalMatches,
		TotalShots:       q.TotalShots,
		DataCompleteness: q.DataCompleteness,
		SeasonsAvailable: q.SeasonsAvailable,
		ValidationErrors: q.ValidationErrors,
		DataFreshness:    q.DataFreshness,
	}
	if out.SeasonsAvailable == nil {
		out.SeasonsAvailable = []string{}
	}
	if q.HasLastUpdate {
		v := formatDate(q.LastUpdate)
		out.LastUpdate = &v
	}
	return out
}

func anomaliesToDTO(items []validation.Anomaly) []anomalyDTO {
	out := make([]anomalyDTO, 0, len(items))
	for _, a := range items {
		out = append(out, anomalyDTO{Subject: a.Subject, Message: a.Message})
	}
	return out
}
