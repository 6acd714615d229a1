package entries

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/laneline/swimreg-backend/internal/domain"
)

const msgRelayDistinct = "Relay athletes must be distinct"

// reconcile walks every slot of the grid against the persisted entries.
// Entries still pending after the walk belong to slots the submission left
// empty or invalid; those are swept with a soft delete. Each create, update
// and delete writes an audit record.
func (s *Service) reconcile(ctx context.Context, in GridInput, values FormValues, roster map[uuid.UUID]bool) ([]Section, error) {
	persisted, err := s.entries.ListByMeetTeam(ctx, in.MeetID, in.TeamID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	pending := entriesByPosition(persisted)

	var sections []Section
	for _, event := range domain.EventOrder {
		count := s.slotsPerEvent(event)
		section := Section{Event: event, Count: count}
		for order := 0; order < count; order++ {
			form, err := s.reconcileSlot(ctx, in, values, event, order, roster, pending)
			if err != nil {
				return nil, err
			}
			section.Slots = append(section.Slots, form)
		}
		sections = append(sections, section)
	}

	// Everything left pending is swept, including entries at positions
	// beyond the configured slot count (possible after the per-event
	// counts were lowered).
	for _, slots := range pending {
		for _, entry := range slots {
			if err := s.entries.SoftDelete(ctx, entry); err != nil {
				return nil, fmt.Errorf("delete entry %s: %w", entry.Core().ID, err)
			}
			if err := s.auditEntry(ctx, in.UserID, domain.AuditActionDelete, entry); err != nil {
				return nil, err
			}
		}
	}
	return sections, nil
}

// reconcileSlot parses one slot and applies it. A slot that fails validation,
// is empty, or is missing athletes contributes nothing here; its persisted
// entry, if any, stays pending and is swept by the caller.
func (s *Service) reconcileSlot(
	ctx context.Context,
	in GridInput,
	values FormValues,
	event domain.Event,
	order int,
	roster map[uuid.UUID]bool,
	pending map[domain.Event]map[int]domain.Entry,
) (*SlotForm, error) {
	slot := s.parseSlot(values, event, order, roster)
	if slot.form.HasErrors() || slot.form.isEmpty() || slot.missingAthletes() {
		return slot.form, nil
	}

	var err error
	if event.Kind() == domain.EventKindRelay {
		err = s.applyRelay(ctx, in, event, order, slot, pending)
	} else {
		err = s.applyIndividual(ctx, in, event, order, slot, pending)
	}
	return slot.form, err
}

func (s *Service) applyIndividual(
	ctx context.Context,
	in GridInput,
	event domain.Event,
	order int,
	slot *parsedSlot,
	pending map[domain.Event]map[int]domain.Entry,
) error {
	athleteID := slot.athleteIDs[0]

	existing, hasExisting := pending[event][order]
	if !hasExisting {
		created, err := s.entries.CreateIndividual(ctx, &domain.IndividualEntry{
			EntryCore: domain.EntryCore{
				MeetID: in.MeetID,
				TeamID: in.TeamID,
				Event:  event,
				Order:  order,
				Seed:   slot.seed,
			},
			AthleteID: athleteID,
		})
		if err != nil {
			return fmt.Errorf("create entry: %w", err)
		}
		return s.auditEntry(ctx, in.UserID, domain.AuditActionCreate, created)
	}

	delete(pending[event], order)
	cur := existing.(*domain.IndividualEntry)
	if cur.AthleteID == athleteID && seedsEqual(cur.Seed, slot.seed) {
		return nil
	}

	updated, err := s.entries.UpdateIndividual(ctx, cur.ID, athleteID, slot.seed)
	if err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	return s.auditEntry(ctx, in.UserID, domain.AuditActionUpdate, updated)
}

func (s *Service) applyRelay(
	ctx context.Context,
	in GridInput,
	event domain.Event,
	order int,
	slot *parsedSlot,
	pending map[domain.Event]map[int]domain.Entry,
) error {
	var athleteIDs [domain.RelayAthleteCount]uuid.UUID
	copy(athleteIDs[:], slot.athleteIDs)

	existing, hasExisting := pending[event][order]

	next := &domain.RelayEntry{
		EntryCore: domain.EntryCore{
			MeetID: in.MeetID,
			TeamID: in.TeamID,
			Event:  event,
			Order:  order,
			Seed:   slot.seed,
		},
		AthleteIDs: athleteIDs,
	}
	if err := next.Validate(); err != nil {
		// The only invariant left after parsing is athlete distinctness.
		// The stored entry, if any, is kept as it was.
		slot.form.addNonFieldError(msgRelayDistinct)
		if hasExisting {
			delete(pending[event], order)
		}
		return nil
	}

	if !hasExisting {
		created, err := s.entries.CreateRelay(ctx, next)
		if err != nil {
			return fmt.Errorf("create relay entry: %w", err)
		}
		return s.auditEntry(ctx, in.UserID, domain.AuditActionCreate, created)
	}

	delete(pending[event], order)
	cur := existing.(*domain.RelayEntry)
	if cur.AthleteIDs == athleteIDs && seedsEqual(cur.Seed, slot.seed) {
		return nil
	}

	updated, err := s.entries.UpdateRelay(ctx, cur.ID, athleteIDs, slot.seed)
	if err != nil {
		return fmt.Errorf("update relay entry: %w", err)
	}
	return s.auditEntry(ctx, in.UserID, domain.AuditActionUpdate, updated)
}

func (s *Service) auditEntry(ctx context.Context, userID uuid.UUID, action domain.AuditAction, entry domain.Entry) error {
	core := entry.Core()
	id := core.ID

	rec := &domain.AuditRecord{
		UserID:     userID,
		EntityType: domain.EntityTypeIndividualEntry,
		EntityID:   &id,
		Action:     action,
		Changes:    entryChanges(entry),
	}
	if _, ok := entry.(*domain.RelayEntry); ok {
		rec.EntityType = domain.EntityTypeRelayEntry
	}

	if err := s.audit.Create(ctx, rec); err != nil {
		return fmt.Errorf("audit %s entry %s: %w", action, id, err)
	}
	return nil
}

func entryChanges(entry domain.Entry) map[string]any {
	core := entry.Core()
	changes := map[string]any{
		"meet_id":     core.MeetID.String(),
		"team_id":     core.TeamID.String(),
		"event":       core.Event.Slug(),
		"entry_order": core.Order,
	}
	if core.Seed != nil {
		changes["seed"] = core.Seed.String()
	}
	switch e := entry.(type) {
	case *domain.IndividualEntry:
		changes["athlete"] = e.AthleteID.String()
	case *domain.RelayEntry:
		for i, field := range RelayAthleteFields {
			changes[field] = e.AthleteIDs[i].String()
		}
	}
	return changes
}

func seedsEqual(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
