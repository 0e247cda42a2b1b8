package postgres

import (
	"context"
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-league/internal/domain/match"
	qb "github.com/riskibarqy/football-league/internal/platform/querybuilder"
)

const countEventsByPlayerQuery = `
SELECT
	(SELECT COUNT(*) FROM goals WHERE scorer_id = $1 OR assist_id = $1) +
	(SELECT COUNT(*) FROM cards WHERE player_id = $1) +
	(SELECT COUNT(*) FROM substitutions WHERE player_out_id = $1 OR player_in_id = $1) +
	(SELECT COUNT(*) FROM assists WHERE player_id = $1)`

// MatchRepository stores matches and their sub-events. Events cascade with
// their match through the foreign keys.
type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context, filter match.Filter) ([]match.Match, error) {
	conditions := make([]qb.Condition, 0, 6)
	if filter.SeasonID != "" {
		conditions = append(conditions, qb.Eq("season_id", filter.SeasonID))
	}
	if filter.ClubID != "" {
		conditions = append(conditions, qb.Or(
			qb.Eq("home_club_id", filter.ClubID),
			qb.Eq("away_club_id", filter.ClubID),
		))
	}
	if filter.StadiumID != "" {
		conditions = append(conditions, qb.Eq("stadium_id", filter.StadiumID))
	}
	if filter.Status != "" {
		conditions = append(conditions, qb.Eq("status", string(filter.Status)))
	}
	if filter.From != nil {
		conditions = append(conditions, qb.Gte("kickoff_at", *filter.From))
	}
	if filter.To != nil {
		conditions = append(conditions, qb.Lt("kickoff_at", *filter.To))
	}

	order := []string{"kickoff_at", "id"}
	if filter.NewestFirst {
		order = []string{"kickoff_at DESC", "id DESC"}
	}

	query, args, err := qb.Select("*").From("matches").
		Where(conditions...).
		OrderBy(order...).
		Limit(filter.Limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "list matches")
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").Where(qb.Eq("id", id)).Limit(1).ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, crerr.Wrapf(err, "get match %s", id)
	}
	return row.toDomain(), true, nil
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) error {
	query, args, err := qb.InsertModel("matches", matchFromDomain(m), "")
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError(err, "insert match %s", m.ID)
	}
	return nil
}

func (r *MatchRepository) Update(ctx context.Context, m match.Match) error {
	query, args, err := qb.UpdateModel("matches", matchFromDomain(m), []string{"id", "created_at"}, qb.Eq("id", m.ID))
	if err != nil {
		return fmt.Errorf("build update match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError(err, "update match %s", m.ID)
	}
	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom("matches").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError(err, "delete match %s", id)
	}
	return nil
}

func (r *MatchRepository) CountByClub(ctx context.Context, clubID string) (int, error) {
	return r.count(ctx, "matches", "count matches by club", qb.Or(
		qb.Eq("home_club_id", clubID),
		qb.Eq("away_club_id", clubID),
	))
}

func (r *MatchRepository) CountBySeason(ctx context.Context, seasonID string) (int, error) {
	return r.count(ctx, "matches", "count matches by season", qb.Eq("season_id", seasonID))
}

func (r *MatchRepository) count(ctx context.Context, table, op string, where qb.Condition) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From(table).Where(where).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build %s query: %w", op, err)
	}
	var n int
	if err := r.db.GetContext(ctx, &n, query, args...); err != nil {
		return 0, crerr.Wrap(err, op)
	}
	return n, nil
}

func (r *MatchRepository) ListByMatch(ctx context.Context, matchID string) (match.Events, error) {
	return r.listEvents(ctx, qb.Eq("match_id", matchID))
}

func (r *MatchRepository) ListBySeason(ctx context.Context, seasonID string) (match.Events, error) {
	return r.listEvents(ctx, qb.Expr("match_id IN (SELECT id FROM matches WHERE season_id = ?)", seasonID))
}

func (r *MatchRepository) listEvents(ctx context.Context, where qb.Condition) (match.Events, error) {
	var (
		out     match.Events
		goals   []goalTableModel
		cards   []cardTableModel
		subs    []substitutionTableModel
		assists []assistTableModel
	)

	if err := r.selectEvents(ctx, match.KindGoal, goalTableModel{}, where, &goals); err != nil {
		return match.Events{}, err
	}
	if err := r.selectEvents(ctx, match.KindCard, cardTableModel{}, where, &cards); err != nil {
		return match.Events{}, err
	}
	if err := r.selectEvents(ctx, match.KindSubstitution, substitutionTableModel{}, where, &subs); err != nil {
		return match.Events{}, err
	}
	if err := r.selectEvents(ctx, match.KindAssist, assistTableModel{}, where, &assists); err != nil {
		return match.Events{}, err
	}

	for _, row := range goals {
		out.Goals = append(out.Goals, row.toDomain())
	}
	for _, row := range cards {
		out.Cards = append(out.Cards, row.toDomain())
	}
	for _, row := range subs {
		out.Substitutions = append(out.Substitutions, row.toDomain())
	}
	for _, row := range assists {
		out.Assists = append(out.Assists, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) selectEvents(ctx context.Context, kind match.EventKind, model any, where qb.Condition, dest any) error {
	query, args, err := qb.Select(qb.Columns(model)...).From(string(kind)).
		Where(where).
		OrderBy("match_id", "minute", "created_at", "id").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build list %s query: %w", kind, err)
	}
	if err := r.db.SelectContext(ctx, dest, query, args...); err != nil {
		return crerr.Wrapf(err, "list %s", kind)
	}
	return nil
}

func (r *MatchRepository) SaveGoal(ctx context.Context, g match.Goal) error {
	return r.saveEvent(ctx, match.KindGoal, g.ID, goalTableModel{
		ID:          g.ID,
		MatchID:     g.MatchID,
		ClubID:      g.ClubID,
		ScorerID:    g.ScorerID,
		AssistID:    nullString(g.AssistID),
		Minute:      g.Minute,
		GoalType:    string(g.Type),
		Description: g.Description,
	})
}

func (r *MatchRepository) SaveCard(ctx context.Context, c match.Card) error {
	return r.saveEvent(ctx, match.KindCard, c.ID, cardTableModel{
		ID:       c.ID,
		MatchID:  c.MatchID,
		ClubID:   c.ClubID,
		PlayerID: c.PlayerID,
		CardType: string(c.Type),
		Minute:   c.Minute,
		Reason:   c.Reason,
	})
}

func (r *MatchRepository) SaveSubstitution(ctx context.Context, s match.Substitution) error {
	return r.saveEvent(ctx, match.KindSubstitution, s.ID, substitutionTableModel{
		ID:          s.ID,
		MatchID:     s.MatchID,
		ClubID:      s.ClubID,
		PlayerOutID: s.PlayerOutID,
		PlayerInID:  s.PlayerInID,
		Minute:      s.Minute,
	})
}

func (r *MatchRepository) SaveAssist(ctx context.Context, a match.Assist) error {
	return r.saveEvent(ctx, match.KindAssist, a.ID, assistTableModel{
		ID:       a.ID,
		MatchID:  a.MatchID,
		ClubID:   a.ClubID,
		PlayerID: a.PlayerID,
		Minute:   a.Minute,
	})
}

func (r *MatchRepository) saveEvent(ctx context.Context, kind match.EventKind, id string, model any) error {
	suffix := upsertSuffix([]string{"id"}, qb.Columns(model), "id", "match_id")
	query, args, err := qb.InsertModel(string(kind), model, suffix)
	if err != nil {
		return fmt.Errorf("build save %s query: %w", kind, err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError(err, "save %s %s", kind, id)
	}
	return nil
}

func (r *MatchRepository) DeleteEvent(ctx context.Context, kind match.EventKind, matchID, eventID string) (bool, error) {
	if _, err := match.ParseEventKind(string(kind)); err != nil {
		return false, err
	}

	query, args, err := qb.DeleteFrom(string(kind)).
		Where(qb.Eq("id", eventID), qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete %s query: %w", kind, err)
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, writeError(err, "delete %s %s", kind, eventID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, crerr.Wrapf(err, "delete %s %s rows affected", kind, eventID)
	}
	return n > 0, nil
}

func (r *MatchRepository) ClearScoringEvents(ctx context.Context, matchID string) (int, error) {
	removed := 0
	err := inTx(ctx, r.db, "clear scoring events", func(tx *sqlx.Tx) error {
		for _, kind := range []match.EventKind{match.KindGoal, match.KindCard, match.KindAssist} {
			query, args, err := qb.DeleteFrom(string(kind)).Where(qb.Eq("match_id", matchID)).ToSQL()
			if err != nil {
				return fmt.Errorf("build clear %s query: %w", kind, err)
			}
			res, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return crerr.Wrapf(err, "clear %s of match %s", kind, matchID)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return crerr.Wrapf(err, "clear %s rows affected", kind)
			}
			removed += int(n)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

func (r *MatchRepository) CountByPlayer(ctx context.Context, playerID string) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, countEventsByPlayerQuery, playerID); err != nil {
		return 0, crerr.Wrapf(err, "count events of player %s", playerID)
	}
	return n, nil
}

// upsertSuffix renders ON CONFLICT (conflict...) DO UPDATE for every column
// not listed in keep.
func upsertSuffix(conflict, columns []string, keep ...string) string {
	skipped := make(map[string]struct{}, len(keep)+len(conflict))
	for _, col := range append(keep, conflict...) {
		skipped[col] = struct{}{}
	}

	sets := make([]string, 0, len(columns))
	for _, col := range columns {
		if _, ok := skipped[col]; ok {
			continue
		}
		sets = append(sets, col+" = EXCLUDED."+col)
	}
	if len(sets) == 0 {
		return "ON CONFLICT (" + strings.Join(conflict, ", ") + ") DO NOTHING"
	}
	return "ON CONFLICT (" + strings.Join(conflict, ", ") + ") DO UPDATE SET " + strings.Join(sets, ", ")
}

func matchFromDomain(m match.Match) matchTableModel {
	return matchTableModel{
		ID:          m.ID,
		SeasonID:    m.SeasonID,
		GroupID:     nullString(m.GroupID),
		HomeClubID:  m.HomeClubID,
		AwayClubID:  m.AwayClubID,
		KickoffAt:   m.KickoffAt,
		Status:      string(m.Status),
		HomeScore:   nullInt(m.HomeScore),
		AwayScore:   nullInt(m.AwayScore),
		HomeScoreHT: nullInt(m.HomeScoreHT),
		AwayScoreHT: nullInt(m.AwayScoreHT),
		Round:       m.Round,
		StadiumID:   nullString(m.StadiumID),
		Stadium:     m.Stadium,
		RefereeID:   nullString(m.RefereeID),
		Attendance:  nullInt(m.Attendance),
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (row matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:          row.ID,
		SeasonID:    row.SeasonID,
		GroupID:     row.GroupID.String,
		HomeClubID:  row.HomeClubID,
		AwayClubID:  row.AwayClubID,
		KickoffAt:   row.KickoffAt,
		Status:      match.Status(row.Status),
		HomeScore:   intPtr(row.HomeScore),
		AwayScore:   intPtr(row.AwayScore),
		HomeScoreHT: intPtr(row.HomeScoreHT),
		AwayScoreHT: intPtr(row.AwayScoreHT),
		Round:       row.Round,
		StadiumID:   row.StadiumID.String,
		Stadium:     row.Stadium,
		RefereeID:   row.RefereeID.String,
		Attendance:  intPtr(row.Attendance),
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func (row goalTableModel) toDomain() match.Goal {
	return match.Goal{
		ID:          row.ID,
		MatchID:     row.MatchID,
		ClubID:      row.ClubID,
		ScorerID:    row.ScorerID,
		AssistID:    row.AssistID.String,
		Minute:      row.Minute,
		Type:        match.GoalType(row.GoalType),
		Description: row.Description,
	}
}

func (row cardTableModel) toDomain() match.Card {
	return match.Card{
		ID:       row.ID,
		MatchID:  row.MatchID,
		ClubID:   row.ClubID,
		PlayerID: row.PlayerID,
		Type:     match.CardType(row.CardType),
		Minute:   row.Minute,
		Reason:   row.Reason,
	}
}

func (row substitutionTableModel) toDomain() match.Substitution {
	return match.Substitution{
		ID:          row.ID,
		MatchID:     row.MatchID,
		ClubID:      row.ClubID,
		PlayerOutID: row.PlayerOutID,
		PlayerInID:  row.PlayerInID,
		Minute:      row.Minute,
	}
}

func (row assistTableModel) toDomain() match.Assist {
	return match.Assist{
		ID:       row.ID,
		MatchID:  row.MatchID,
		ClubID:   row.ClubID,
		PlayerID: row.PlayerID,
		Minute:   row.Minute,
	}
}
