package rest

import "net/http"

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Auth    *AuthHandler
	Entries *EntriesHandler
	League  *LeagueHandler
	Roster  *RosterHandler
	Health  *HealthHandler
}

// NewRouter mounts all REST routes on a ServeMux. Authentication is applied
// by middleware outside the router; handlers read the user from the context.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login", h.Auth.Login)
	mux.HandleFunc("POST /auth/register", h.Auth.Register)
	mux.HandleFunc("POST /auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /auth/logout", h.Auth.Logout)

	mux.HandleFunc("GET /api/meets/{meetID}/teams/{teamID}/entries/edit", h.Entries.EditGrid)
	mux.HandleFunc("POST /api/meets/{meetID}/teams/{teamID}/entries/edit", h.Entries.SaveGrid)
	mux.HandleFunc("GET /api/meets/{meetID}/teams/{teamID}/entries/view", h.Entries.ViewGrid)

	mux.HandleFunc("POST /api/teams", h.League.CreateTeam)
	mux.HandleFunc("GET /api/teams", h.League.ListTeams)
	mux.HandleFunc("GET /api/teams/{teamID}", h.League.GetTeam)
	mux.HandleFunc("DELETE /api/teams/{teamID}", h.League.DeleteTeam)
	mux.HandleFunc("GET /api/teams/{teamID}/meets", h.League.ListTeamRegistrations)
	mux.HandleFunc("POST /api/meets", h.League.CreateMeet)
	mux.HandleFunc("GET /api/meets", h.League.ListMeets)
	mux.HandleFunc("GET /api/meets/{meetID}", h.League.GetMeet)
	mux.HandleFunc("PATCH /api/meets/{meetID}", h.League.UpdateMeet)
	mux.HandleFunc("POST /api/meets/{meetID}/entries/open", h.League.OpenEntries)
	mux.HandleFunc("POST /api/meets/{meetID}/entries/close", h.League.CloseEntries)
	mux.HandleFunc("DELETE /api/meets/{meetID}", h.League.DeleteMeet)
	mux.HandleFunc("GET /api/meets/{meetID}/teams", h.League.ListRegistrations)
	mux.HandleFunc("POST /api/meets/{meetID}/teams/{teamID}", h.League.RegisterTeam)
	mux.HandleFunc("DELETE /api/meets/{meetID}/teams/{teamID}", h.League.WithdrawTeam)
	mux.HandleFunc("POST /api/teams/{teamID}/coaches/{userID}", h.League.AssignCoach)
	mux.HandleFunc("DELETE /api/teams/{teamID}/coaches/{userID}", h.League.RemoveCoach)

	mux.HandleFunc("POST /api/teams/{teamID}/athletes", h.Roster.CreateAthlete)
	mux.HandleFunc("GET /api/teams/{teamID}/athletes", h.Roster.ListAthletes)
	mux.HandleFunc("GET /api/athletes/{athleteID}", h.Roster.GetAthlete)
	mux.HandleFunc("PATCH /api/athletes/{athleteID}", h.Roster.UpdateAthlete)
	mux.HandleFunc("POST /api/athletes/{athleteID}/deactivate", h.Roster.DeactivateAthlete)
	mux.HandleFunc("DELETE /api/athletes/{athleteID}", h.Roster.DeleteAthlete)

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /live", h.Health.Live)

	return mux
}
