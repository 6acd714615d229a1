package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/laneline/swimreg-backend/internal/domain"
	"github.com/laneline/swimreg-backend/internal/service/entries"
	"github.com/laneline/swimreg-backend/pkg/ctxutil"
)

// entriesService defines the minimal interface needed by EntriesHandler.
type entriesService interface {
	Grid(ctx context.Context, in entries.GridInput) (*entries.Grid, error)
	SaveGrid(ctx context.Context, in entries.GridInput, values entries.FormValues) (*entries.Grid, error)
}

// EntriesHandler serves the meet entry grid endpoints.
type EntriesHandler struct {
	svc entriesService
	log *slog.Logger
}

// NewEntriesHandler creates an EntriesHandler.
func NewEntriesHandler(svc entriesService, logger *slog.Logger) *EntriesHandler {
	return &EntriesHandler{svc: svc, log: logger.With("handler", "entries")}
}

// EditGrid handles GET /api/meets/{meetID}/teams/{teamID}/entries/edit.
// While entries are closed the editable grid is unavailable and the client is
// redirected to the read-only view.
func (h *EntriesHandler) EditGrid(w http.ResponseWriter, r *http.Request) {
	in, ok := h.gridInput(w, r)
	if !ok {
		return
	}

	grid, err := h.svc.Grid(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if grid.ReadOnly {
		http.Redirect(w, r, viewPath(in), http.StatusSeeOther)
		return
	}

	writeJSON(w, http.StatusOK, toGridResponse(grid))
}

// ViewGrid handles GET /api/meets/{meetID}/teams/{teamID}/entries/view.
// The view works whether or not entries are open.
func (h *EntriesHandler) ViewGrid(w http.ResponseWriter, r *http.Request) {
	in, ok := h.gridInput(w, r)
	if !ok {
		return
	}

	grid, err := h.svc.Grid(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	grid.ReadOnly = true

	writeJSON(w, http.StatusOK, toGridResponse(grid))
}

// SaveGrid handles POST /api/meets/{meetID}/teams/{teamID}/entries/edit.
// The body is the flat entry form. A submission against a closed meet
// redirects to the read-only view; a submission with slot errors returns 422
// with the grid redisplaying the submitted values.
func (h *EntriesHandler) SaveGrid(w http.ResponseWriter, r *http.Request) {
	in, ok := h.gridInput(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form body")
		return
	}
	values := entries.FormValues{}
	for key, vals := range r.PostForm {
		if len(vals) > 0 {
			values[key] = vals[0]
		}
	}

	grid, err := h.svc.SaveGrid(r.Context(), in, values)
	if err != nil {
		if errors.Is(err, domain.ErrEntriesClosed) {
			http.Redirect(w, r, viewPath(in), http.StatusSeeOther)
			return
		}
		respondError(w, r, h.log, err)
		return
	}

	status := http.StatusOK
	if !grid.Saved {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, toGridResponse(grid))
}

func (h *EntriesHandler) gridInput(w http.ResponseWriter, r *http.Request) (entries.GridInput, bool) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return entries.GridInput{}, false
	}
	meetID, err := pathUUID(r, "meetID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return entries.GridInput{}, false
	}
	teamID, err := pathUUID(r, "teamID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return entries.GridInput{}, false
	}
	return entries.GridInput{UserID: userID, MeetID: meetID, TeamID: teamID}, true
}

func viewPath(in entries.GridInput) string {
	return fmt.Sprintf("/api/meets/%s/teams/%s/entries/view", in.MeetID, in.TeamID)
}

type gridResponse struct {
	Meet     gridMeet      `json:"meet"`
	Team     gridTeam      `json:"team"`
	ReadOnly bool          `json:"readOnly"`
	Saved    bool          `json:"saved"`
	Athletes []gridAthlete `json:"athletes"`
	Sections []gridSection `json:"sections"`
}

type gridMeet struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	EntriesOpen bool    `json:"entriesOpen"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
}

type gridTeam struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type gridAthlete struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	ClassOf *int   `json:"classOf,omitempty"`
}

type gridSection struct {
	Event string     `json:"event"`
	Slug  string     `json:"slug"`
	Kind  string     `json:"kind"`
	Count int        `json:"count"`
	Slots []gridSlot `json:"slots"`
}

type gridSlot struct {
	Order          int                 `json:"order"`
	Values         map[string]string   `json:"values"`
	FieldErrors    map[string][]string `json:"fieldErrors,omitempty"`
	NonFieldErrors []string            `json:"nonFieldErrors,omitempty"`
}

func toGridResponse(grid *entries.Grid) gridResponse {
	resp := gridResponse{
		Meet: gridMeet{
			ID:          grid.Meet.ID.String(),
			Name:        grid.Meet.Name,
			EntriesOpen: grid.Meet.EntriesOpen,
			StartDate:   formatDate(grid.Meet.StartDate),
			EndDate:     formatDate(grid.Meet.EndDate),
		},
		Team:     gridTeam{ID: grid.Team.ID.String(), Name: grid.Team.Name},
		ReadOnly: grid.ReadOnly,
		Saved:    grid.Saved,
		Athletes: make([]gridAthlete, 0, len(grid.Athletes)),
		Sections: make([]gridSection, 0, len(grid.Sections)),
	}
	for _, a := range grid.Athletes {
		resp.Athletes = append(resp.Athletes, gridAthlete{
			ID:      a.ID.String(),
			Name:    a.FullName(),
			ClassOf: a.ClassOf,
		})
	}
	for _, section := range grid.Sections {
		sec := gridSection{
			Event: section.Event.String(),
			Slug:  section.Event.Slug(),
			Kind:  section.Event.Kind().String(),
			Count: section.Count,
			Slots: make([]gridSlot, 0, len(section.Slots)),
		}
		for _, slot := range section.Slots {
			sec.Slots = append(sec.Slots, gridSlot{
				Order:          slot.Order,
				Values:         slot.Values,
				FieldErrors:    slot.FieldErrors,
				NonFieldErrors: slot.NonFieldErrors,
			})
		}
		resp.Sections = append(resp.Sections, sec)
	}
	return resp
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
