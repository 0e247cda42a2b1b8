package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("clubs").
		Where(Eq("status", "active"), IsNull("deleted_at")).
		OrderBy("name", "id").
		Limit(10).
		Offset(20).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM clubs WHERE status = $1 AND deleted_at IS NULL ORDER BY name, id LIMIT 10 OFFSET 20"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "active" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_OrILikeAndSuffix(t *testing.T) {
	query, args, err := Select("*").
		From("clubs").
		Where(
			Or(ILike("name", "50%_off"), ILike("city", "jak")),
			InStrings("id", []string{"c1", "c2"}),
		).
		Suffix("FOR UPDATE").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT * FROM clubs WHERE (name ILIKE $1 OR city ILIKE $2) AND id IN ($3, $4) FOR UPDATE"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	wantArgs := []any{`%50\%\_off%`, "%jak%", "c1", "c2"}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EmptyInNeverMatches(t *testing.T) {
	query, args, err := Select("id").From("players").Where(In("club_id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT id FROM players WHERE 1=0" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_MultiRow(t *testing.T) {
	query, args, err := InsertInto("season_groups").
		Columns("id", "name").
		Values("g1", "Group A").
		Values("g2", "Group B").
		Suffix("ON CONFLICT DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO season_groups (id, name) VALUES ($1, $2), ($3, $4) ON CONFLICT DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[2] != "g2" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("clubs").Columns("id", "name").Values("c1").ToSQL()
	if err == nil {
		t.Fatalf("expected error for short row")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("seasons").
		Set("is_active", false).
		SetExpr("updated_at", "NOW()").
		Where(NotEq("id", "s1"), Eq("is_active", true)).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE seasons SET is_active = $1, updated_at = NOW() WHERE id <> $2 AND is_active = $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != false || args[1] != "s1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("goals").Where(Eq("match_id", "m1")).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM goals WHERE match_id = $1" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 || args[0] != "m1" {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("goals").ToSQL(); err == nil {
		t.Fatalf("expected error for unconditional delete")
	}
}

func TestExprPlaceholderNumbering(t *testing.T) {
	query, args, err := Select("id").
		From("matches").
		Where(Eq("season_id", "s1"), Expr("(home_club_id = ? OR away_club_id = ?)", "c1", "c1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM matches WHERE season_id = $1 AND (home_club_id = $2 OR away_club_id = $3)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

type clubRow struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Ignored string `db:"-"`
	City    string `db:"city"`
	hidden  string
}

func TestInsertModelAndUpdateModel(t *testing.T) {
	row := clubRow{ID: "c1", Name: "Persija", City: "Jakarta", hidden: "x"}

	query, args, err := InsertModel("clubs", row, "RETURNING id")
	if err != nil {
		t.Fatalf("build insert model: %v", err)
	}
	if query != "INSERT INTO clubs (id, name, city) VALUES ($1, $2, $3) RETURNING id" {
		t.Fatalf("unexpected insert query: %s", query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected insert args: %+v", args)
	}

	query, args, err = UpdateModel("clubs", &row, []string{"id"}, Eq("id", row.ID))
	if err != nil {
		t.Fatalf("build update model: %v", err)
	}
	if query != "UPDATE clubs SET name = $1, city = $2 WHERE id = $3" {
		t.Fatalf("unexpected update query: %s", query)
	}
	if len(args) != 3 || args[2] != "c1" {
		t.Fatalf("unexpected update args: %+v", args)
	}

	if cols := Columns(row); !reflect.DeepEqual(cols, []string{"id", "name", "city"}) {
		t.Fatalf("unexpected columns: %+v", cols)
	}
}
