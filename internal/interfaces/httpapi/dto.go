package httpapi

import (
	"time"

	"github.com/riskibarqy/football-league/internal/domain/application"
	"github.com/riskibarqy/football-league/internal/domain/club"
	"github.com/riskibarqy/football-league/internal/domain/management"
	"github.com/riskibarqy/football-league/internal/domain/match"
	"github.com/riskibarqy/football-league/internal/domain/partner"
	"github.com/riskibarqy/football-league/internal/domain/player"
	"github.com/riskibarqy/football-league/internal/domain/playerstat"
	"github.com/riskibarqy/football-league/internal/domain/referee"
	"github.com/riskibarqy/football-league/internal/domain/season"
	"github.com/riskibarqy/football-league/internal/domain/stadium"
	"github.com/riskibarqy/football-league/internal/domain/standing"
	"github.com/riskibarqy/football-league/internal/domain/transfer"
	"github.com/riskibarqy/football-league/internal/usecase"
)

type seasonDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Format      string    `json:"format"`
	StartDate   string    `json:"start_date,omitempty"`
	EndDate     string    `json:"end_date,omitempty"`
	IsActive    bool      `json:"is_active"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type seasonGroupDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

type clubDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ShortName    string    `json:"short_name,omitempty"`
	City         string    `json:"city,omitempty"`
	FoundedYear  int       `json:"founded_year,omitempty"`
	CoachName    string    `json:"coach_name,omitempty"`
	Stadium      string    `json:"stadium,omitempty"`
	Status       string    `json:"status"`
	ContactEmail string    `json:"contact_email,omitempty"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	Website      string    `json:"website,omitempty"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type standingDTO struct {
	SeasonID       string    `json:"season_id"`
	ClubID         string    `json:"club_id"`
	GroupID        string    `json:"group_id,omitempty"`
	Position       int       `json:"position"`
	Games          int       `json:"games"`
	Wins           int       `json:"wins"`
	Draws          int       `json:"draws"`
	Losses         int       `json:"losses"`
	GoalsFor       int       `json:"goals_for"`
	GoalsAgainst   int       `json:"goals_against"`
	GoalDifference int       `json:"goal_difference"`
	Points         int       `json:"points"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type tableGroupDTO struct {
	GroupID   string        `json:"group_id,omitempty"`
	GroupName string        `json:"group_name,omitempty"`
	Rows      []standingDTO `json:"rows"`
}

type tableDTO struct {
	Season  seasonDTO       `json:"season"`
	Grouped bool            `json:"grouped"`
	Rows    []standingDTO   `json:"rows,omitempty"`
	Groups  []tableGroupDTO `json:"groups,omitempty"`
}

type playerDTO struct {
	ID          string    `json:"id"`
	ClubID      string    `json:"club_id"`
	SeasonID    string    `json:"season_id,omitempty"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	FullName    string    `json:"full_name"`
	DateOfBirth string    `json:"date_of_birth,omitempty"`
	Position    string    `json:"position"`
	Number      int       `json:"number"`
	Nationality string    `json:"nationality,omitempty"`
	HeightCM    int       `json:"height_cm,omitempty"`
	WeightKG    int       `json:"weight_kg,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type playerStatDTO struct {
	SeasonID         string    `json:"season_id"`
	PlayerID         string    `json:"player_id"`
	MatchesPlayed    int       `json:"matches_played"`
	MatchesStarted   int       `json:"matches_started"`
	MinutesPlayed    int       `json:"minutes_played"`
	Goals            int       `json:"goals"`
	Assists          int       `json:"assists"`
	AssistsFromGoals int       `json:"assists_from_goals"`
	AssistsRecorded  int       `json:"assists_recorded"`
	YellowCards      int       `json:"yellow_cards"`
	RedCards         int       `json:"red_cards"`
	CleanSheets      int       `json:"clean_sheets"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type topScorerDTO struct {
	Rank   int           `json:"rank"`
	Player playerDTO     `json:"player"`
	Stats  playerStatDTO `json:"stats"`
}

type topScorersDTO struct {
	Season  seasonDTO      `json:"season"`
	Scorers []topScorerDTO `json:"scorers"`
}

type matchDTO struct {
	ID          string    `json:"id"`
	SeasonID    string    `json:"season_id"`
	GroupID     string    `json:"group_id,omitempty"`
	HomeClubID  string    `json:"home_club_id"`
	AwayClubID  string    `json:"away_club_id"`
	KickoffAt   time.Time `json:"kickoff_at"`
	Status      string    `json:"status"`
	HomeScore   *int      `json:"home_score"`
	AwayScore   *int      `json:"away_score"`
	HomeScoreHT *int      `json:"home_score_ht"`
	AwayScoreHT *int      `json:"away_score_ht"`
	Round       int       `json:"round,omitempty"`
	StadiumID   string    `json:"stadium_id,omitempty"`
	Stadium     string    `json:"stadium,omitempty"`
	RefereeID   string    `json:"referee_id,omitempty"`
	Attendance  *int      `json:"attendance,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type goalDTO struct {
	ID          string `json:"id"`
	MatchID     string `json:"match_id"`
	ClubID      string `json:"club_id"`
	ScorerID    string `json:"scorer_id"`
	AssistID    string `json:"assist_id,omitempty"`
	Minute      int    `json:"minute"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

type cardDTO struct {
	ID       string `json:"id"`
	MatchID  string `json:"match_id"`
	ClubID   string `json:"club_id"`
	PlayerID string `json:"player_id"`
	Type     string `json:"type"`
	Minute   int    `json:"minute"`
	Reason   string `json:"reason,omitempty"`
}

type substitutionDTO struct {
	ID          string `json:"id"`
	MatchID     string `json:"match_id"`
	ClubID      string `json:"club_id"`
	PlayerOutID string `json:"player_out_id"`
	PlayerInID  string `json:"player_in_id"`
	Minute      int    `json:"minute"`
}

type assistDTO struct {
	ID       string `json:"id"`
	MatchID  string `json:"match_id"`
	ClubID   string `json:"club_id"`
	PlayerID string `json:"player_id"`
	Minute   int    `json:"minute"`
}

type matchEventsDTO struct {
	MatchID       string            `json:"match_id"`
	Goals         []goalDTO         `json:"goals"`
	Cards         []cardDTO         `json:"cards"`
	Substitutions []substitutionDTO `json:"substitutions"`
	Assists       []assistDTO       `json:"assists"`
}

type transferDTO struct {
	ID           string    `json:"id"`
	PlayerID     string    `json:"player_id"`
	FromClubID   string    `json:"from_club_id,omitempty"`
	ToClubID     string    `json:"to_club_id"`
	SeasonID     string    `json:"season_id,omitempty"`
	TransferDate string    `json:"transfer_date"`
	Status       string    `json:"status"`
	FeeCents     *int64    `json:"fee_cents,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type refereeDTO struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Category    string    `json:"category"`
	DateOfBirth string    `json:"date_of_birth,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type coachDTO struct {
	ID          string    `json:"id"`
	ClubID      string    `json:"club_id"`
	SeasonID    string    `json:"season_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	FullName    string    `json:"full_name"`
	DateOfBirth string    `json:"date_of_birth,omitempty"`
	Nationality string    `json:"nationality,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type managerDTO struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Position  string    `json:"position"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	Order     int       `json:"order"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type partnerDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Website     string    `json:"website,omitempty"`
	Description string    `json:"description,omitempty"`
	Order       int       `json:"order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type stadiumDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city,omitempty"`
	Capacity  *int      `json:"capacity,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type applicationDTO struct {
	ID             string     `json:"id"`
	SeasonID       string     `json:"season_id"`
	ClubName       string     `json:"club_name"`
	ShortName      string     `json:"short_name,omitempty"`
	City           string     `json:"city"`
	FoundedYear    int        `json:"founded_year,omitempty"`
	ContactPerson  string     `json:"contact_person"`
	ContactPhone   string     `json:"contact_phone,omitempty"`
	ContactEmail   string     `json:"contact_email,omitempty"`
	CoachName      string     `json:"coach_name"`
	AssistantCoach string     `json:"assistant_coach,omitempty"`
	Description    string     `json:"description,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	Status         string     `json:"status"`
	ClubID         string     `json:"club_id,omitempty"`
	ReviewedAt     *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type recomputeResultDTO struct {
	SeasonID   string `json:"season_id"`
	Clubs      int    `json:"clubs"`
	Players    int    `json:"players"`
	Matches    int    `json:"matches"`
	DurationMS int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
}

type recomputeAllDTO struct {
	Seasons   []recomputeResultDTO `json:"seasons"`
	Succeeded int                  `json:"succeeded"`
	Failed    int                  `json:"failed"`
}

func mapSlice[T, D any](items []T, fn func(T) D) []D {
	out := make([]D, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

func seasonToDTO(v season.Season) seasonDTO {
	return seasonDTO{
		ID:          v.ID,
		Name:        v.Name,
		Format:      string(v.Format),
		StartDate:   formatDate(v.StartDate),
		EndDate:     formatDate(v.EndDate),
		IsActive:    v.IsActive,
		Description: v.Description,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func seasonGroupToDTO(v season.Group) seasonGroupDTO {
	return seasonGroupDTO{ID: v.ID, Name: v.Name, Order: v.Order}
}

func clubToDTO(v club.Club) clubDTO {
	return clubDTO{
		ID:           v.ID,
		Name:         v.Name,
		ShortName:    v.ShortName,
		City:         v.City,
		FoundedYear:  v.FoundedYear,
		CoachName:    v.CoachName,
		Stadium:      v.Stadium,
		Status:       string(v.Status),
		ContactEmail: v.ContactEmail,
		ContactPhone: v.ContactPhone,
		Website:      v.Website,
		Description:  v.Description,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func standingToDTO(v standing.Record) standingDTO {
	return standingDTO{
		SeasonID:       v.SeasonID,
		ClubID:         v.ClubID,
		GroupID:        v.GroupID,
		Position:       v.Position,
		Games:          v.Games,
		Wins:           v.Wins,
		Draws:          v.Draws,
		Losses:         v.Losses,
		GoalsFor:       v.GoalsFor,
		GoalsAgainst:   v.GoalsAgainst,
		GoalDifference: v.GoalDifference,
		Points:         v.Points,
		UpdatedAt:      v.UpdatedAt,
	}
}

func tableToDTO(v usecase.SeasonTable, grouped bool) tableDTO {
	out := tableDTO{Season: seasonToDTO(v.Season), Grouped: grouped}
	if !grouped {
		out.Rows = []standingDTO{}
		for _, t := range v.Tables {
			out.Rows = append(out.Rows, mapSlice(t.Rows, standingToDTO)...)
		}
		return out
	}

	names := make(map[string]string, len(v.Groups))
	for _, g := range v.Groups {
		names[g.ID] = g.Name
	}
	out.Groups = make([]tableGroupDTO, 0, len(v.Tables))
	for _, t := range v.Tables {
		out.Groups = append(out.Groups, tableGroupDTO{
			GroupID:   t.GroupID,
			GroupName: names[t.GroupID],
			Rows:      mapSlice(t.Rows, standingToDTO),
		})
	}
	return out
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:          v.ID,
		ClubID:      v.ClubID,
		SeasonID:    v.SeasonID,
		FirstName:   v.FirstName,
		LastName:    v.LastName,
		FullName:    v.FullName(),
		DateOfBirth: formatDate(v.DateOfBirth),
		Position:    string(v.Position),
		Number:      v.Number,
		Nationality: v.Nationality,
		HeightCM:    v.HeightCM,
		WeightKG:    v.WeightKG,
		Status:      string(v.Status),
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func playerStatToDTO(v playerstat.SeasonRecord) playerStatDTO {
	return playerStatDTO{
		SeasonID:         v.SeasonID,
		PlayerID:         v.PlayerID,
		MatchesPlayed:    v.MatchesPlayed,
		MatchesStarted:   v.MatchesStarted,
		MinutesPlayed:    v.MinutesPlayed,
		Goals:            v.Goals,
		Assists:          v.Assists,
		AssistsFromGoals: v.AssistsFromGoals,
		AssistsRecorded:  v.AssistsRecorded,
		YellowCards:      v.YellowCards,
		RedCards:         v.RedCards,
		CleanSheets:      v.CleanSheets,
		UpdatedAt:        v.UpdatedAt,
	}
}

func matchToDTO(v match.Match) matchDTO {
	return matchDTO{
		ID:          v.ID,
		SeasonID:    v.SeasonID,
		GroupID:     v.GroupID,
		HomeClubID:  v.HomeClubID,
		AwayClubID:  v.AwayClubID,
		KickoffAt:   v.KickoffAt,
		Status:      string(v.Status),
		HomeScore:   v.HomeScore,
		AwayScore:   v.AwayScore,
		HomeScoreHT: v.HomeScoreHT,
		AwayScoreHT: v.AwayScoreHT,
		Round:       v.Round,
		StadiumID:   v.StadiumID,
		Stadium:     v.Stadium,
		RefereeID:   v.RefereeID,
		Attendance:  v.Attendance,
		Description: v.Description,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func goalToDTO(v match.Goal) goalDTO {
	return goalDTO{
		ID:          v.ID,
		MatchID:     v.MatchID,
		ClubID:      v.ClubID,
		ScorerID:    v.ScorerID,
		AssistID:    v.AssistID,
		Minute:      v.Minute,
		Type:        string(v.Type),
		Description: v.Description,
	}
}

func cardToDTO(v match.Card) cardDTO {
	return cardDTO{
		ID:       v.ID,
		MatchID:  v.MatchID,
		ClubID:   v.ClubID,
		PlayerID: v.PlayerID,
		Type:     string(v.Type),
		Minute:   v.Minute,
		Reason:   v.Reason,
	}
}

func substitutionToDTO(v match.Substitution) substitutionDTO {
	return substitutionDTO{
		ID:          v.ID,
		MatchID:     v.MatchID,
		ClubID:      v.ClubID,
		PlayerOutID: v.PlayerOutID,
		PlayerInID:  v.PlayerInID,
		Minute:      v.Minute,
	}
}

func assistToDTO(v match.Assist) assistDTO {
	return assistDTO{
		ID:       v.ID,
		MatchID:  v.MatchID,
		ClubID:   v.ClubID,
		PlayerID: v.PlayerID,
		Minute:   v.Minute,
	}
}

func matchEventsToDTO(matchID string, v match.Events) matchEventsDTO {
	return matchEventsDTO{
		MatchID:       matchID,
		Goals:         mapSlice(v.Goals, goalToDTO),
		Cards:         mapSlice(v.Cards, cardToDTO),
		Substitutions: mapSlice(v.Substitutions, substitutionToDTO),
		Assists:       mapSlice(v.Assists, assistToDTO),
	}
}

func transferToDTO(v transfer.Transfer) transferDTO {
	return transferDTO{
		ID:           v.ID,
		PlayerID:     v.PlayerID,
		FromClubID:   v.FromClubID,
		ToClubID:     v.ToClubID,
		SeasonID:     v.SeasonID,
		TransferDate: v.TransferDate.Format(dateLayout),
		Status:       string(v.Status),
		FeeCents:     v.FeeCents,
		Notes:        v.Notes,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func refereeToDTO(v referee.Referee) refereeDTO {
	return refereeDTO{
		ID:          v.ID,
		FirstName:   v.FirstName,
		LastName:    v.LastName,
		Category:    string(v.Category),
		DateOfBirth: formatDate(v.DateOfBirth),
		Phone:       v.Phone,
		Email:       v.Email,
		IsActive:    v.IsActive,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func coachToDTO(v club.Coach) coachDTO {
	return coachDTO{
		ID:          v.ID,
		ClubID:      v.ClubID,
		SeasonID:    v.SeasonID,
		FirstName:   v.FirstName,
		LastName:    v.LastName,
		FullName:    v.FullName(),
		DateOfBirth: formatDate(v.DateOfBirth),
		Nationality: v.Nationality,
		Bio:         v.Bio,
		IsActive:    v.IsActive,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func managerToDTO(v management.Manager) managerDTO {
	return managerDTO{
		ID:        v.ID,
		FirstName: v.FirstName,
		LastName:  v.LastName,
		Position:  string(v.Position),
		Phone:     v.Phone,
		Email:     v.Email,
		Bio:       v.Bio,
		Order:     v.Order,
		IsActive:  v.IsActive,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func partnerToDTO(v partner.Partner) partnerDTO {
	return partnerDTO{
		ID:          v.ID,
		Name:        v.Name,
		Category:    string(v.Category),
		Website:     v.Website,
		Description: v.Description,
		Order:       v.Order,
		IsActive:    v.IsActive,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func recomputeResultToDTO(v usecase.SeasonRecomputeResult) recomputeResultDTO {
	return recomputeResultDTO{
		SeasonID:   v.SeasonID,
		Clubs:      v.Clubs,
		Players:    v.Players,
		Matches:    v.Matches,
		DurationMS: v.Duration.Milliseconds(),
		Error:      v.Error,
	}
}

func stadiumToDTO(v stadium.Stadium) stadiumDTO {
	return stadiumDTO{
		ID:        v.ID,
		Name:      v.Name,
		City:      v.City,
		Capacity:  v.Capacity,
		Address:   v.Address,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func applicationToDTO(v application.Application) applicationDTO {
	return applicationDTO{
		ID:             v.ID,
		SeasonID:       v.SeasonID,
		ClubName:       v.ClubName,
		ShortName:      v.ShortName,
		City:           v.City,
		FoundedYear:    v.FoundedYear,
		ContactPerson:  v.ContactPerson,
		ContactPhone:   v.ContactPhone,
		ContactEmail:   v.ContactEmail,
		CoachName:      v.CoachName,
		AssistantCoach: v.AssistantCoach,
		Description:    v.Description,
		Notes:          v.Notes,
		Status:         string(v.Status),
		ClubID:         v.ClubID,
		ReviewedAt:     v.ReviewedAt,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}
