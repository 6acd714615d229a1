package entries

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/laneline/swimreg-backend/internal/domain"
	"github.com/laneline/swimreg-backend/pkg/seedtime"
)

// FormValues is the flat submitted form, keyed by slot field names of the
// shape "{event-slug}-{order}-{field}", e.g. "100_yard_freestyle-2-athlete".
type FormValues map[string]string

// maxSeedSeconds is the first value the seed column cannot hold;
// NUMERIC(6,2) tops out at 9999.99.
var maxSeedSeconds = decimal.NewFromInt(10000)

// FieldName builds the flat form key for one field of one slot.
func FieldName(event domain.Event, order int, field string) string {
	return fmt.Sprintf("%s-%d-%s", event.Slug(), order, field)
}

func (v FormValues) slotValue(event domain.Event, order int, field string) string {
	return strings.TrimSpace(v[FieldName(event, order, field)])
}

// parsedSlot is one slot after structural validation: the bound form plus the
// typed values extracted from it. Athlete slots that failed choice validation
// stay uuid.Nil.
type parsedSlot struct {
	form       *SlotForm
	athleteIDs []uuid.UUID
	seed       *decimal.Decimal
}

// parseSlot binds and validates one slot of the submitted grid. Athlete
// references must parse as UUIDs and belong to the eligible roster; a
// non-blank seed must be a valid seed time. Violations are recorded as field
// errors on the returned form.
func (s *Service) parseSlot(values FormValues, event domain.Event, order int, roster map[uuid.UUID]bool) *parsedSlot {
	form := newSlotForm(event, order)
	slot := &parsedSlot{form: form}

	athleteFields := form.athleteFields()
	slot.athleteIDs = make([]uuid.UUID, len(athleteFields))
	for i, field := range athleteFields {
		raw := values.slotValue(event, order, field)
		form.Values[field] = raw
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil || !roster[id] {
			form.addFieldError(field, "Select a valid choice")
			continue
		}
		slot.athleteIDs[i] = id
	}

	rawSeed := values.slotValue(event, order, FieldSeed)
	form.Values[FieldSeed] = rawSeed
	if rawSeed != "" {
		if !seedtime.IsSeed(rawSeed) {
			form.addFieldError(FieldSeed, "Enter a valid seed time")
		} else {
			seed, err := seedtime.Parse(rawSeed)
			switch {
			case err != nil:
				form.addFieldError(FieldSeed, "Enter a valid seed time")
			case seed.GreaterThanOrEqual(maxSeedSeconds):
				form.addFieldError(FieldSeed, "Seed time is too large")
			default:
				slot.seed = &seed
			}
		}
	}

	return slot
}

// missingAthletes records a "Missing athlete" error on every blank required
// athlete field of a non-empty slot. Returns true if any field was blank.
func (slot *parsedSlot) missingAthletes() bool {
	missing := false
	for i, field := range slot.form.athleteFields() {
		if slot.form.Values[field] == "" && slot.athleteIDs[i] == uuid.Nil {
			slot.form.addFieldError(field, "Missing athlete")
			missing = true
		}
	}
	return missing
}
