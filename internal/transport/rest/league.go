package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/laneline/swimreg-backend/internal/domain"
	"github.com/laneline/swimreg-backend/internal/service/league"
	"github.com/laneline/swimreg-backend/internal/transport/middleware"
)

// leagueService defines the minimal interface needed by LeagueHandler.
type leagueService interface {
	CreateTeam(ctx context.Context, in league.CreateTeamInput) (*domain.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*domain.Team, error)
	ListTeams(ctx context.Context) ([]*domain.Team, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error
	CreateMeet(ctx context.Context, in league.CreateMeetInput) (*domain.Meet, error)
	GetMeet(ctx context.Context, id uuid.UUID) (*domain.Meet, error)
	ListMeets(ctx context.Context) ([]*domain.Meet, error)
	UpdateMeet(ctx context.Context, id uuid.UUID, in league.UpdateMeetInput) (*domain.Meet, error)
	OpenEntries(ctx context.Context, id uuid.UUID) (*domain.Meet, error)
	CloseEntries(ctx context.Context, id uuid.UUID) (*domain.Meet, error)
	DeleteMeet(ctx context.Context, id uuid.UUID) error
	RegisterTeam(ctx context.Context, meetID, teamID uuid.UUID) (*domain.MeetTeam, error)
	WithdrawTeam(ctx context.Context, meetID, teamID uuid.UUID) error
	ListRegistrationsByMeet(ctx context.Context, meetID uuid.UUID) ([]*domain.MeetTeam, error)
	ListRegistrationsByTeam(ctx context.Context, teamID uuid.UUID) ([]*domain.MeetTeam, error)
	AssignCoach(ctx context.Context, teamID, userID uuid.UUID) (*domain.Coach, error)
	RemoveCoach(ctx context.Context, teamID, userID uuid.UUID) error
}

// LeagueHandler serves the admin-only league management endpoints.
type LeagueHandler struct {
	svc leagueService
	log *slog.Logger
}

// NewLeagueHandler creates a LeagueHandler.
func NewLeagueHandler(svc leagueService, logger *slog.Logger) *LeagueHandler {
	return &LeagueHandler{svc: svc, log: logger.With("handler", "league")}
}

func (h *LeagueHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		respondError(w, r, h.log, err)
		return false
	}
	return true
}

type createTeamRequest struct {
	Name string `json:"name"`
}

type teamResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type meetRequest struct {
	Name        *string `json:"name"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	EntriesOpen *bool   `json:"entriesOpen"`
}

type meetResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	EntriesOpen bool    `json:"entriesOpen"`
}

type registrationResponse struct {
	ID     string `json:"id"`
	MeetID string `json:"meetId"`
	TeamID string `json:"teamId"`
}

// CreateTeam handles POST /api/teams.
func (h *LeagueHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	var req createTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	team, err := h.svc.CreateTeam(r.Context(), league.CreateTeamInput{Name: req.Name})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTeamResponse(team))
}

// ListTeams handles GET /api/teams. Open to any authenticated user.
func (h *LeagueHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.svc.ListTeams(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	resp := make([]teamResponse, 0, len(teams))
	for _, t := range teams {
		resp = append(resp, toTeamResponse(t))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetTeam handles GET /api/teams/{teamID}.
func (h *LeagueHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := pathUUID(r, "teamID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	team, err := h.svc.GetTeam(r.Context(), teamID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTeamResponse(team))
}

// DeleteTeam handles DELETE /api/teams/{teamID}.
func (h *LeagueHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	teamID, err := pathUUID(r, "teamID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.DeleteTeam(r.Context(), teamID); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateMeet handles POST /api/meets.
func (h *LeagueHandler) CreateMeet(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	var req meetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := league.CreateMeetInput{}
	if req.Name != nil {
		in.Name = *req.Name
	}
	if req.EntriesOpen != nil {
		in.EntriesOpen = *req.EntriesOpen
	}
	var parseErr error
	if in.StartDate, parseErr = parseDate(req.StartDate); parseErr != nil {
		writeError(w, http.StatusBadRequest, "invalid startDate")
		return
	}
	if in.EndDate, parseErr = parseDate(req.EndDate); parseErr != nil {
		writeError(w, http.StatusBadRequest, "invalid endDate")
		return
	}

	meet, err := h.svc.CreateMeet(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMeetResponse(meet))
}

// ListMeets handles GET /api/meets. Open to any authenticated user.
func (h *LeagueHandler) ListMeets(w http.ResponseWriter, r *http.Request) {
	meets, err := h.svc.ListMeets(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	resp := make([]meetResponse, 0, len(meets))
	for _, m := range meets {
		resp = append(resp, toMeetResponse(m))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetMeet handles GET /api/meets/{meetID}.
func (h *LeagueHandler) GetMeet(w http.ResponseWriter, r *http.Request) {
	meetID, err := pathUUID(r, "meetID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	meet, err := h.svc.GetMeet(r.Context(), meetID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMeetResponse(meet))
}

// OpenEntries handles POST /api/meets/{meetID}/entries/open.
func (h *LeagueHandler) OpenEntries(w http.ResponseWriter, r *http.Request) {
	h.setEntriesOpen(w, r, h.svc.OpenEntries)
}

// CloseEntries handles POST /api/meets/{meetID}/entries/close.
func (h *LeagueHandler) CloseEntries(w http.ResponseWriter, r *http.Request) {
	h.setEntriesOpen(w, r, h.svc.CloseEntries)
}

func (h *LeagueHandler) setEntriesOpen(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (*domain.Meet, error)) {
	if !h.requireAdmin(w, r) {
		return
	}
	meetID, err := pathUUID(r, "meetID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	meet, err := op(r.Context(), meetID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMeetResponse(meet))
}

// UpdateMeet handles PATCH /api/meets/{meetID}. Toggling entriesOpen here is
// how entries are opened and closed; the dedicated open/close endpoints are
// shorthands for the same update.
func (h *LeagueHandler) UpdateMeet(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	meetID, err := pathUUID(r, "meetID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req meetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := league.UpdateMeetInput{Name: req.Name, EntriesOpen: req.EntriesOpen}
	var parseErr error
	if in.StartDate, parseErr = parseDate(req.StartDate); parseErr != nil {
		writeError(w, http.StatusBadRequest, "invalid startDate")
		return
	}
	if in.EndDate, parseErr = parseDate(req.EndDate); parseErr != nil {
		writeError(w, http.StatusBadRequest, "invalid endDate")
		return
	}

	meet, err := h.svc.UpdateMeet(r.Context(), meetID, in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMeetResponse(meet))
}

// DeleteMeet handles DELETE /api/meets/{meetID}.
func (h *LeagueHandler) DeleteMeet(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	meetID, err := pathUUID(r, "meetID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.DeleteMeet(r.Context(), meetID); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RegisterTeam handles POST /api/meets/{meetID}/teams/{teamID}.
func (h *LeagueHandler) RegisterTeam(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	meetID, teamID, ok := h.meetTeamIDs(w, r)
	if !ok {
		return
	}
	mt, err := h.svc.RegisterTeam(r.Context(), meetID, teamID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, registrationResponse{
		ID:     mt.ID.String(),
		MeetID: mt.MeetID.String(),
		TeamID: mt.TeamID.String(),
	})
}

// WithdrawTeam handles DELETE /api/meets/{meetID}/teams/{teamID}.
func (h *LeagueHandler) WithdrawTeam(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	meetID, teamID, ok := h.meetTeamIDs(w, r)
	if !ok {
		return
	}
	if err := h.svc.WithdrawTeam(r.Context(), meetID, teamID); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListRegistrations handles GET /api/meets/{meetID}/teams.
func (h *LeagueHandler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	meetID, err := pathUUID(r, "meetID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	regs, err := h.svc.ListRegistrationsByMeet(r.Context(), meetID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	resp := make([]registrationResponse, 0, len(regs))
	for _, mt := range regs {
		resp = append(resp, registrationResponse{
			ID:     mt.ID.String(),
			MeetID: mt.MeetID.String(),
			TeamID: mt.TeamID.String(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListTeamRegistrations handles GET /api/teams/{teamID}/meets.
func (h *LeagueHandler) ListTeamRegistrations(w http.ResponseWriter, r *http.Request) {
	teamID, err := pathUUID(r, "teamID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	regs, err := h.svc.ListRegistrationsByTeam(r.Context(), teamID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	resp := make([]registrationResponse, 0, len(regs))
	for _, mt := range regs {
		resp = append(resp, registrationResponse{
			ID:     mt.ID.String(),
			MeetID: mt.MeetID.String(),
			TeamID: mt.TeamID.String(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// AssignCoach handles POST /api/teams/{teamID}/coaches/{userID}.
func (h *LeagueHandler) AssignCoach(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	teamID, userID, ok := h.teamUserIDs(w, r)
	if !ok {
		return
	}
	coach, err := h.svc.AssignCoach(r.Context(), teamID, userID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"id":     coach.ID.String(),
		"teamId": coach.TeamID.String(),
		"userId": coach.UserID.String(),
	})
}

// RemoveCoach handles DELETE /api/teams/{teamID}/coaches/{userID}.
func (h *LeagueHandler) RemoveCoach(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	teamID, userID, ok := h.teamUserIDs(w, r)
	if !ok {
		return
	}
	if err := h.svc.RemoveCoach(r.Context(), teamID, userID); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *LeagueHandler) meetTeamIDs(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	meetID, err := pathUUID(r, "meetID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return uuid.Nil, uuid.Nil, false
	}
	teamID, err := pathUUID(r, "teamID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return uuid.Nil, uuid.Nil, false
	}
	return meetID, teamID, true
}

func (h *LeagueHandler) teamUserIDs(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	teamID, err := pathUUID(r, "teamID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return uuid.Nil, uuid.Nil, false
	}
	userID, err := pathUUID(r, "userID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return uuid.Nil, uuid.Nil, false
	}
	return teamID, userID, true
}

func toTeamResponse(t *domain.Team) teamResponse {
	return teamResponse{ID: t.ID.String(), Name: t.Name}
}

func toMeetResponse(m *domain.Meet) meetResponse {
	return meetResponse{
		ID:          m.ID.String(),
		Name:        m.Name,
		StartDate:   formatDate(m.StartDate),
		EndDate:     formatDate(m.EndDate),
		EntriesOpen: m.EntriesOpen,
	}
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
