package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/football-league/internal/infrastructure/repository/memory"
	idgen "github.com/riskibarqy/football-league/internal/platform/id"
	"github.com/riskibarqy/football-league/internal/platform/logging"
	"github.com/riskibarqy/football-league/internal/usecase"
)

const (
	testAdminToken = "admin-secret"
	testJobToken   = "job-secret"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	seasons := memory.NewSeasonRepository(memory.SeedSeasons())
	clubs := memory.NewClubRepository(memory.SeedClubs())
	players := memory.NewPlayerRepository(memory.SeedPlayers())
	matches := memory.NewMatchRepository(nil)
	standings := memory.NewStandingRepository(memory.SeedMemberships())
	stats := memory.NewPlayerStatRepository()
	transfers := memory.NewTransferRepository()
	referees := memory.NewRefereeRepository()
	stadiums := memory.NewStadiumRepository()
	coaches := memory.NewCoachRepository()
	ids := idgen.NewSequence("test")

	recompute := usecase.NewStatsRecomputeService(
		seasons, matches, matches, players, standings, stats,
		memory.NewSeasonAggregateWriter(standings, stats),
		usecase.StatsRecomputeConfig{},
		logger,
	)

	handler := NewHandler(Services{
		Seasons:      usecase.NewSeasonService(seasons, clubs, matches, players, standings, stats, coaches, recompute, ids, logger),
		Clubs:        usecase.NewClubService(clubs, matches, players, standings, coaches, recompute, ids, logger),
		Players:      usecase.NewPlayerService(players, clubs, seasons, matches, transfers, stats, recompute, ids, logger),
		Standings:    usecase.NewStandingService(seasons, standings),
		Matches:      usecase.NewMatchService(matches, matches, seasons, clubs, referees, stadiums, standings, recompute, ids, usecase.MatchServiceConfig{ZeroScoreClearsEvents: true}, logger),
		Events:       usecase.NewMatchEventService(matches, matches, players, recompute, ids, logger),
		Transfers:    usecase.NewTransferService(transfers, players, clubs, seasons, recompute, ids, logger),
		Referees:     usecase.NewRefereeService(referees, ids),
		Managers:     usecase.NewManagerService(memory.NewManagerRepository(), ids),
		Partners:     usecase.NewPartnerService(memory.NewPartnerRepository(), ids),
		Stadiums:     usecase.NewStadiumService(stadiums, matches, ids),
		Coaches:      usecase.NewCoachService(coaches, clubs, seasons, ids),
		Applications: usecase.NewApplicationService(memory.NewApplicationRepository(), clubs, seasons, standings, recompute, ids, logger),
		Recompute:    recompute,
	}, logger)

	return NewRouter(handler, logger, RouterConfig{
		AdminToken:       testAdminToken,
		InternalJobToken: testJobToken,
	})
}

type testEnvelope struct {
	APIVersion string         `json:"apiVersion"`
	Data       map[string]any `json:"data"`
	Error      *struct {
		Code   int    `json:"code"`
		Status string `json:"status"`
	} `json:"error"`
}

func doRequest(t *testing.T, router http.Handler, method, path, body string, headers map[string]string) (int, testEnvelope) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env testEnvelope
	if rec.Body.Len() > 0 {
		if err := sonic.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("unmarshal %s %s response: %v (body=%s)", method, path, err, rec.Body.String())
		}
	}
	return rec.Code, env
}

func adminHeaders() map[string]string {
	return map[string]string{"Authorization": "Bearer " + testAdminToken}
}

func tableRows(t *testing.T, env testEnvelope) []map[string]any {
	t.Helper()
	raw, ok := env.Data["rows"].([]any)
	if !ok {
		t.Fatalf("expected rows in table response, got %v", env.Data)
	}
	rows := make([]map[string]any, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, r.(map[string]any))
	}
	return rows
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	status, env := doRequest(t, router, http.MethodGet, "/healthz", "", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if env.Data["status"] != "ok" {
		t.Fatalf("unexpected health payload: %v", env.Data)
	}
}

func TestRouter_WritesRequireAdminToken(t *testing.T) {
	router := newTestRouter(t)

	status, env := doRequest(t, router, http.MethodPost, "/v1/clubs", `{"name":"Arema"}`, nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
	if env.Error == nil || env.Error.Status != "UNAUTHENTICATED" {
		t.Fatalf("unexpected error envelope: %+v", env.Error)
	}
}

func TestRouter_RejectsUnknownFields(t *testing.T) {
	router := newTestRouter(t)

	status, _ := doRequest(t, router, http.MethodPost, "/v1/clubs", `{"name":"Arema","colour":"blue"}`, adminHeaders())
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field, got %d", status)
	}
}

func TestRouter_FinishedMatchUpdatesTable(t *testing.T) {
	router := newTestRouter(t)

	body := `{
		"season_id": "` + memory.SeasonIDCurrent + `",
		"home_club_id": "club-persija",
		"away_club_id": "club-persib",
		"kickoff_at": "2025-09-01T12:00:00Z",
		"status": "finished",
		"home_score": 2,
		"away_score": 1
	}`
	status, env := doRequest(t, router, http.MethodPost, "/v1/matches", body, adminHeaders())
	if status != http.StatusCreated {
		t.Fatalf("create match: expected 201, got %d (%+v)", status, env.Error)
	}

	status, env = doRequest(t, router, http.MethodGet, "/v1/table", "", nil)
	if status != http.StatusOK {
		t.Fatalf("get table: expected 200, got %d", status)
	}
	rows := tableRows(t, env)
	if len(rows) != 4 {
		t.Fatalf("expected 4 table rows, got %d", len(rows))
	}
	top := rows[0]
	if top["club_id"] != "club-persija" || top["points"] != float64(3) || top["position"] != float64(1) {
		t.Fatalf("unexpected leader row: %v", top)
	}
	last := rows[len(rows)-1]
	if last["club_id"] != "club-persib" || last["losses"] != float64(1) {
		t.Fatalf("unexpected last row: %v", last)
	}
}

func TestRouter_MatchEventKindValidated(t *testing.T) {
	router := newTestRouter(t)

	status, _ := doRequest(t, router, http.MethodPost, "/v1/matches/unknown/events/corners", `{}`, adminHeaders())
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown event kind, got %d", status)
	}
}

func TestRouter_RecomputeJob(t *testing.T) {
	router := newTestRouter(t)

	status, _ := doRequest(t, router, http.MethodPost, "/v1/internal/jobs/recompute", "", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 without job token, got %d", status)
	}

	status, env := doRequest(t, router, http.MethodPost, "/v1/internal/jobs/recompute", "", map[string]string{
		"X-Internal-Job-Token": testJobToken,
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if env.Data["succeeded"] != float64(1) || env.Data["failed"] != float64(0) {
		t.Fatalf("unexpected recompute result: %v", env.Data)
	}
}

func TestRouter_UnknownSeasonIs404(t *testing.T) {
	router := newTestRouter(t)

	status, env := doRequest(t, router, http.MethodGet, "/v1/table?season_id=missing", "", nil)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if env.Error == nil || env.Error.Status != "NOT_FOUND" {
		t.Fatalf("unexpected error envelope: %+v", env.Error)
	}
}

func TestRouter_ClubApplicationWorkflow(t *testing.T) {
	router := newTestRouter(t)

	body := `{
		"season_id": "` + memory.SeasonIDCurrent + `",
		"club_name": "PSM Makassar",
		"city": "Makassar",
		"contact_person": "Andi Rahman",
		"coach_name": "Bernardo Tavares"
	}`
	status, env := doRequest(t, router, http.MethodPost, "/v1/applications", body, adminHeaders())
	if status != http.StatusCreated {
		t.Fatalf("create application: expected 201, got %d (%+v)", status, env.Error)
	}
	id, _ := env.Data["id"].(string)
	if env.Data["status"] != "pending" || id == "" {
		t.Fatalf("unexpected application: %v", env.Data)
	}

	status, env = doRequest(t, router, http.MethodPost, "/v1/applications/"+id+"/approve", "", adminHeaders())
	if status != http.StatusOK {
		t.Fatalf("approve: expected 200, got %d (%+v)", status, env.Error)
	}
	registered, _ := env.Data["club"].(map[string]any)
	if registered["name"] != "PSM Makassar" || registered["status"] != "active" {
		t.Fatalf("unexpected approved club: %v", env.Data["club"])
	}

	status, _ = doRequest(t, router, http.MethodPost, "/v1/applications/"+id+"/reject", `{"reason":"late"}`, adminHeaders())
	if status != http.StatusConflict {
		t.Fatalf("reject approved: expected 409, got %d", status)
	}

	status, env = doRequest(t, router, http.MethodGet, "/v1/table", "", nil)
	if status != http.StatusOK {
		t.Fatalf("get table: expected 200, got %d", status)
	}
	if rows := tableRows(t, env); len(rows) != 5 {
		t.Fatalf("expected approved club in the table, got %d rows", len(rows))
	}
}

func TestRouter_StadiumsArePublicToRead(t *testing.T) {
	router := newTestRouter(t)

	status, _ := doRequest(t, router, http.MethodPost, "/v1/stadiums", `{"name":"Kapten I Wayan Dipta"}`, nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 without admin token, got %d", status)
	}
	status, env := doRequest(t, router, http.MethodPost, "/v1/stadiums", `{"name":"Kapten I Wayan Dipta","city":"Gianyar","capacity":18000}`, adminHeaders())
	if status != http.StatusCreated {
		t.Fatalf("create stadium: expected 201, got %d (%+v)", status, env.Error)
	}

	status, env = doRequest(t, router, http.MethodGet, "/v1/stadiums?city=gianyar", "", nil)
	if status != http.StatusOK {
		t.Fatalf("list stadiums: expected 200, got %d", status)
	}
	items, _ := env.Data["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected one stadium, got %v", env.Data)
	}
}

func TestRouter_SeasonGroupLifecycle(t *testing.T) {
	router := newTestRouter(t)
	base := "/v1/seasons/" + memory.SeasonIDCurrent + "/groups"

	status, env := doRequest(t, router, http.MethodPost, base, `{"name":"Group East","order":1}`, adminHeaders())
	if status != http.StatusCreated {
		t.Fatalf("create group: expected 201, got %d (%+v)", status, env.Error)
	}
	id, _ := env.Data["id"].(string)
	if id == "" {
		t.Fatalf("expected group id, got %v", env.Data)
	}

	status, env = doRequest(t, router, http.MethodPut, base+"/"+id, `{"name":"Group West","order":2}`, adminHeaders())
	if status != http.StatusOK || env.Data["name"] != "Group West" {
		t.Fatalf("update group: got %d %v", status, env.Data)
	}

	status, _ = doRequest(t, router, http.MethodDelete, base+"/"+id, "", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("delete without admin token: expected 401, got %d", status)
	}
	status, _ = doRequest(t, router, http.MethodDelete, base+"/"+id, "", adminHeaders())
	if status != http.StatusNoContent {
		t.Fatalf("delete group: expected 204, got %d", status)
	}
	status, _ = doRequest(t, router, http.MethodPut, base+"/"+id, `{"name":"Group West"}`, adminHeaders())
	if status != http.StatusNotFound {
		t.Fatalf("update deleted group: expected 404, got %d", status)
	}
}

func TestRouter_CoachOfClubSeason(t *testing.T) {
	router := newTestRouter(t)

	body := `{"club_id":"club-persija","season_id":"` + memory.SeasonIDCurrent + `","first_name":"Carlos","last_name":"Pena"}`
	status, env := doRequest(t, router, http.MethodPost, "/v1/coaches", body, adminHeaders())
	if status != http.StatusCreated {
		t.Fatalf("create coach: expected 201, got %d (%+v)", status, env.Error)
	}
	if env.Data["full_name"] != "Carlos Pena" || env.Data["is_active"] != true {
		t.Fatalf("unexpected coach: %v", env.Data)
	}

	status, _ = doRequest(t, router, http.MethodPost, "/v1/coaches", body, adminHeaders())
	if status != http.StatusConflict {
		t.Fatalf("second coach for the club season: expected 409, got %d", status)
	}

	status, env = doRequest(t, router, http.MethodGet, "/v1/coaches?club_id=club-persija", "", nil)
	if status != http.StatusOK {
		t.Fatalf("list coaches: expected 200, got %d", status)
	}
	if items, _ := env.Data["items"].([]any); len(items) != 1 {
		t.Fatalf("expected one coach, got %v", env.Data)
	}
}
