package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/laneline/swimreg-backend/internal/domain"
	"github.com/laneline/swimreg-backend/internal/service/roster"
)

// rosterService defines the minimal interface needed by RosterHandler.
type rosterService interface {
	CreateAthlete(ctx context.Context, in roster.CreateAthleteInput) (*domain.Athlete, error)
	GetAthlete(ctx context.Context, id uuid.UUID) (*domain.Athlete, error)
	ListAthletes(ctx context.Context, in roster.ListAthletesInput) ([]*domain.Athlete, error)
	UpdateAthlete(ctx context.Context, id uuid.UUID, in roster.UpdateAthleteInput) (*domain.Athlete, error)
	DeactivateAthlete(ctx context.Context, id uuid.UUID) (*domain.Athlete, error)
	DeleteAthlete(ctx context.Context, id uuid.UUID) error
}

// RosterHandler serves the team roster endpoints. Access control lives in the
// roster service; the handler only shapes requests and responses.
type RosterHandler struct {
	svc rosterService
	log *slog.Logger
}

// NewRosterHandler creates a RosterHandler.
func NewRosterHandler(svc rosterService, logger *slog.Logger) *RosterHandler {
	return &RosterHandler{svc: svc, log: logger.With("handler", "roster")}
}

type createAthleteRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Active    *bool  `json:"active"`
	ClassOf   *int   `json:"classOf"`
}

type updateAthleteRequest struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Active       *bool   `json:"active"`
	ClassOf      *int    `json:"classOf"`
	ClearClassOf bool    `json:"clearClassOf"`
}

type athleteResponse struct {
	ID        string `json:"id"`
	TeamID    string `json:"teamId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Active    bool   `json:"active"`
	ClassOf   *int   `json:"classOf,omitempty"`
}

// CreateAthlete handles POST /api/teams/{teamID}/athletes.
func (h *RosterHandler) CreateAthlete(w http.ResponseWriter, r *http.Request) {
	teamID, err := pathUUID(r, "teamID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req createAthleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := roster.CreateAthleteInput{
		TeamID:    teamID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Active:    true,
		ClassOf:   req.ClassOf,
	}
	if req.Active != nil {
		in.Active = *req.Active
	}

	athlete, err := h.svc.CreateAthlete(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAthleteResponse(athlete))
}

// ListAthletes handles GET /api/teams/{teamID}/athletes. The ?active=true and
// ?include_deleted=true query params narrow or widen the listing.
func (h *RosterHandler) ListAthletes(w http.ResponseWriter, r *http.Request) {
	teamID, err := pathUUID(r, "teamID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	q := r.URL.Query()
	athletes, err := h.svc.ListAthletes(r.Context(), roster.ListAthletesInput{
		TeamID:         teamID,
		ActiveOnly:     q.Get("active") == "true",
		IncludeDeleted: q.Get("include_deleted") == "true",
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := make([]athleteResponse, 0, len(athletes))
	for _, a := range athletes {
		resp = append(resp, toAthleteResponse(a))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetAthlete handles GET /api/athletes/{athleteID}.
func (h *RosterHandler) GetAthlete(w http.ResponseWriter, r *http.Request) {
	athleteID, err := pathUUID(r, "athleteID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	athlete, err := h.svc.GetAthlete(r.Context(), athleteID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAthleteResponse(athlete))
}

// UpdateAthlete handles PATCH /api/athletes/{athleteID}.
func (h *RosterHandler) UpdateAthlete(w http.ResponseWriter, r *http.Request) {
	athleteID, err := pathUUID(r, "athleteID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req updateAthleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	athlete, err := h.svc.UpdateAthlete(r.Context(), athleteID, roster.UpdateAthleteInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Active:       req.Active,
		ClassOf:      req.ClassOf,
		ClearClassOf: req.ClearClassOf,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAthleteResponse(athlete))
}

// DeactivateAthlete handles POST /api/athletes/{athleteID}/deactivate.
func (h *RosterHandler) DeactivateAthlete(w http.ResponseWriter, r *http.Request) {
	athleteID, err := pathUUID(r, "athleteID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	athlete, err := h.svc.DeactivateAthlete(r.Context(), athleteID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAthleteResponse(athlete))
}

// DeleteAthlete handles DELETE /api/athletes/{athleteID}.
func (h *RosterHandler) DeleteAthlete(w http.ResponseWriter, r *http.Request) {
	athleteID, err := pathUUID(r, "athleteID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.DeleteAthlete(r.Context(), athleteID); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toAthleteResponse(a *domain.Athlete) athleteResponse {
	return athleteResponse{
		ID:        a.ID.String(),
		TeamID:    a.TeamID.String(),
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Active:    a.Active,
		ClassOf:   a.ClassOf,
	}
}
