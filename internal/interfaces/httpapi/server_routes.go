package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET "+openAPIPath, handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/seasons/active", handler.GetActiveSeason)
	mux.HandleFunc("GET /v1/seasons/{id}", handler.GetSeason)
	mux.HandleFunc("GET /v1/seasons/{id}/groups", handler.ListSeasonGroups)
	mux.HandleFunc("GET /v1/seasons/{id}/clubs", handler.ListSeasonClubs)
	mux.HandleFunc("GET /v1/table", handler.GetTable)

	mux.HandleFunc("GET /v1/clubs", handler.ListClubs)
	mux.HandleFunc("GET /v1/clubs/{id}", handler.GetClub)
	mux.HandleFunc("GET /v1/clubs/{id}/seasons", handler.ListClubSeasons)
	mux.HandleFunc("GET /v1/coaches", handler.ListCoaches)
	mux.HandleFunc("GET /v1/coaches/{id}", handler.GetCoach)

	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/top-scorers", handler.ListTopScorers)
	mux.HandleFunc("GET /v1/players/{id}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/players/{id}/stats", handler.GetPlayerStats)

	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/latest", handler.ListLatestMatches)
	mux.HandleFunc("GET /v1/matches/upcoming", handler.ListUpcomingMatches)
	mux.HandleFunc("GET /v1/matches/live", handler.ListLiveMatches)
	mux.HandleFunc("GET /v1/matches/{id}", handler.GetMatch)
	mux.HandleFunc("GET /v1/matches/{id}/events", handler.ListMatchEvents)

	mux.HandleFunc("GET /v1/transfers", handler.ListTransfers)
	mux.HandleFunc("GET /v1/transfers/{id}", handler.GetTransfer)

	mux.HandleFunc("GET /v1/referees", handler.ListReferees)
	mux.HandleFunc("GET /v1/referees/{id}", handler.GetReferee)
	mux.HandleFunc("GET /v1/managers", handler.ListManagers)
	mux.HandleFunc("GET /v1/managers/{id}", handler.GetManager)
	mux.HandleFunc("GET /v1/partners", handler.ListPartners)
	mux.HandleFunc("GET /v1/partners/{id}", handler.GetPartner)
	mux.HandleFunc("GET /v1/stadiums", handler.ListStadiums)
	mux.HandleFunc("GET /v1/stadiums/{id}", handler.GetStadium)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, token string) {
	admin := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, RequireAdminToken(token, fn))
	}

	admin("POST /v1/seasons", handler.CreateSeason)
	admin("PUT /v1/seasons/{id}", handler.UpdateSeason)
	admin("DELETE /v1/seasons/{id}", handler.DeleteSeason)
	admin("POST /v1/seasons/{id}/activate", handler.ActivateSeason)
	admin("POST /v1/seasons/{id}/groups", handler.CreateSeasonGroup)
	admin("PUT /v1/seasons/{id}/groups/{groupID}", handler.UpdateSeasonGroup)
	admin("DELETE /v1/seasons/{id}/groups/{groupID}", handler.DeleteSeasonGroup)
	admin("POST /v1/seasons/{id}/clubs", handler.JoinSeasonClub)
	admin("DELETE /v1/seasons/{id}/clubs/{clubID}", handler.RemoveSeasonClub)
	admin("POST /v1/seasons/{id}/recompute", handler.RecomputeSeason)

	admin("POST /v1/clubs", handler.CreateClub)
	admin("PUT /v1/clubs/{id}", handler.UpdateClub)
	admin("DELETE /v1/clubs/{id}", handler.DeleteClub)
	admin("POST /v1/coaches", handler.SaveCoach)
	admin("PUT /v1/coaches/{id}", handler.SaveCoach)
	admin("DELETE /v1/coaches/{id}", handler.DeleteCoach)

	admin("POST /v1/players", handler.CreatePlayer)
	admin("PUT /v1/players/{id}", handler.UpdatePlayer)
	admin("DELETE /v1/players/{id}", handler.DeletePlayer)

	admin("POST /v1/matches", handler.CreateMatch)
	admin("PUT /v1/matches/{id}", handler.UpdateMatch)
	admin("DELETE /v1/matches/{id}", handler.DeleteMatch)
	admin("POST /v1/matches/{id}/events/clear", handler.ClearMatchEvents)
	admin("POST /v1/matches/{id}/events/{kind}", handler.SaveMatchEvent)
	admin("PUT /v1/matches/{id}/events/{kind}/{eventID}", handler.SaveMatchEvent)
	admin("DELETE /v1/matches/{id}/events/{kind}/{eventID}", handler.DeleteMatchEvent)

	admin("POST /v1/transfers", handler.CreateTransfer)
	admin("POST /v1/transfers/{id}/confirm", handler.ConfirmTransfer)
	admin("POST /v1/transfers/{id}/cancel", handler.CancelTransfer)
	admin("DELETE /v1/transfers/{id}", handler.DeleteTransfer)

	admin("POST /v1/referees", handler.SaveReferee)
	admin("PUT /v1/referees/{id}", handler.SaveReferee)
	admin("DELETE /v1/referees/{id}", handler.DeleteReferee)
	admin("POST /v1/managers", handler.SaveManager)
	admin("PUT /v1/managers/{id}", handler.SaveManager)
	admin("DELETE /v1/managers/{id}", handler.DeleteManager)
	admin("POST /v1/partners", handler.SavePartner)
	admin("PUT /v1/partners/{id}", handler.SavePartner)
	admin("DELETE /v1/partners/{id}", handler.DeletePartner)
	admin("POST /v1/stadiums", handler.SaveStadium)
	admin("PUT /v1/stadiums/{id}", handler.SaveStadium)
	admin("DELETE /v1/stadiums/{id}", handler.DeleteStadium)

	admin("GET /v1/applications", handler.ListApplications)
	admin("GET /v1/applications/{id}", handler.GetApplication)
	admin("POST /v1/applications", handler.CreateApplication)
	admin("POST /v1/applications/{id}/approve", handler.ApproveApplication)
	admin("POST /v1/applications/{id}/reject", handler.RejectApplication)
	admin("POST /v1/applications/{id}/withdraw", handler.WithdrawApplication)
	admin("DELETE /v1/applications/{id}", handler.DeleteApplication)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, token string) {
	mux.Handle("POST /v1/internal/jobs/sync-seasons", RequireInternalJobToken(token, http.HandlerFunc(handler.RunSeasonSyncJob)))
	mux.Handle("POST /v1/internal/jobs/recompute", RequireInternalJobToken(token, http.HandlerFunc(handler.RunRecomputeAllJob)))
}
