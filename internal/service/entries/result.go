package entries

import (
	"github.com/laneline/swimreg-backend/internal/domain"
)

// Field names within one slot. Individual slots carry FieldAthlete and
// FieldSeed; relay slots carry four numbered athlete fields and FieldSeed.
const (
	FieldAthlete = "athlete"
	FieldSeed    = "seed"
)

// RelayAthleteFields lists the relay athlete field names in leg order.
var RelayAthleteFields = [domain.RelayAthleteCount]string{
	"athlete_0", "athlete_1", "athlete_2", "athlete_3",
}

// SlotForm is the bound state of one entry slot: the submitted (or persisted)
// raw values plus any validation errors, ready for redisplay.
type SlotForm struct {
	Event          domain.Event
	Order          int
	Values         map[string]string
	FieldErrors    map[string][]string
	NonFieldErrors []string
}

func newSlotForm(event domain.Event, order int) *SlotForm {
	return &SlotForm{
		Event:  event,
		Order:  order,
		Values: map[string]string{},
	}
}

func (f *SlotForm) addFieldError(field, msg string) {
	if f.FieldErrors == nil {
		f.FieldErrors = map[string][]string{}
	}
	f.FieldErrors[field] = append(f.FieldErrors[field], msg)
}

func (f *SlotForm) addNonFieldError(msg string) {
	f.NonFieldErrors = append(f.NonFieldErrors, msg)
}

// HasErrors reports whether the slot carries any field or non-field error.
func (f *SlotForm) HasErrors() bool {
	return len(f.FieldErrors) > 0 || len(f.NonFieldErrors) > 0
}

// athleteFields returns the required athlete field names for the slot's event.
func (f *SlotForm) athleteFields() []string {
	if f.Event.Kind() == domain.EventKindRelay {
		return RelayAthleteFields[:]
	}
	return []string{FieldAthlete}
}

// semanticFields returns every value-bearing field name of the slot.
func (f *SlotForm) semanticFields() []string {
	return append(f.athleteFields(), FieldSeed)
}

// isEmpty reports whether all semantic fields are blank.
func (f *SlotForm) isEmpty() bool {
	for _, field := range f.semanticFields() {
		if f.Values[field] != "" {
			return false
		}
	}
	return true
}

// Section is one event's slice of the grid, slots in order 0..Count-1.
type Section struct {
	Event domain.Event
	Count int
	Slots []*SlotForm
}

// Grid is the full entry grid for one (meet, team) pair: one section per
// event in canonical program order, plus the athlete choices offered.
type Grid struct {
	Meet     *domain.Meet
	Team     *domain.Team
	Sections []Section
	Athletes []*domain.Athlete

	// ReadOnly is set while the meet is not accepting edits; the transport
	// renders such a grid without form controls.
	ReadOnly bool

	// Saved is true after a submission that produced no errors.
	Saved bool
}

// HasErrors reports whether any slot in any section carries an error.
func (g *Grid) HasErrors() bool {
	for _, section := range g.Sections {
		for _, slot := range section.Slots {
			if slot.HasErrors() {
				return true
			}
		}
	}
	return false
}
