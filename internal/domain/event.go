package domain

import "strings"

// EventKind partitions the event domain into single-athlete and four-athlete
// events. The kind drives the shape of an entry slot: individual events carry
// one athlete reference, relay events carry four.
type EventKind string

const (
	EventKindIndividual EventKind = "INDIVIDUAL"
	EventKindRelay      EventKind = "RELAY"
)

func (k EventKind) String() string { return string(k) }

// AthleteCount returns the number of athlete references per entry slot.
func (k EventKind) AthleteCount() int {
	if k == EventKindRelay {
		return RelayAthleteCount
	}
	return 1
}

// RelayAthleteCount is the number of swimmers in one relay entry.
const RelayAthleteCount = 4

// Event is one of the fixed swim/dive events a meet program consists of.
type Event string

const (
	Event1MeterDiving            Event = "1 Meter Diving"
	Event200YardMedleyRelay      Event = "200 Yard Medley Relay"
	Event200YardFreestyleRelay   Event = "200 Yard Freestyle Relay"
	Event400YardFreestyleRelay   Event = "400 Yard Freestyle Relay"
	Event200YardIndividualMedley Event = "200 Yard Individual Medley"
	Event100YardButterfly        Event = "100 Yard Butterfly"
	Event100YardBackstroke       Event = "100 Yard Backstroke"
	Event100YardBreaststroke     Event = "100 Yard Breaststroke"
	Event50YardFreestyle         Event = "50 Yard Freestyle"
	Event100YardFreestyle        Event = "100 Yard Freestyle"
	Event200YardFreestyle        Event = "200 Yard Freestyle"
	Event500YardFreestyle        Event = "500 Yard Freestyle"
)

// EventOrder is the canonical program order. Grid sections are rendered and
// reconciled in exactly this order.
var EventOrder = []Event{
	Event1MeterDiving,
	Event200YardMedleyRelay,
	Event200YardFreestyle,
	Event200YardIndividualMedley,
	Event50YardFreestyle,
	Event100YardButterfly,
	Event100YardFreestyle,
	Event500YardFreestyle,
	Event200YardFreestyleRelay,
	Event100YardBackstroke,
	Event100YardBreaststroke,
	Event400YardFreestyleRelay,
}

func (e Event) String() string { return string(e) }

func (e Event) IsValid() bool {
	switch e {
	case Event1MeterDiving, Event200YardMedleyRelay, Event200YardFreestyleRelay,
		Event400YardFreestyleRelay, Event200YardIndividualMedley, Event100YardButterfly,
		Event100YardBackstroke, Event100YardBreaststroke, Event50YardFreestyle,
		Event100YardFreestyle, Event200YardFreestyle, Event500YardFreestyle:
		return true
	}
	return false
}

// Kind reports whether the event is entered by one athlete or a relay of four.
func (e Event) Kind() EventKind {
	switch e {
	case Event200YardMedleyRelay, Event200YardFreestyleRelay, Event400YardFreestyleRelay:
		return EventKindRelay
	}
	return EventKindIndividual
}

// Slug returns the form-field prefix for the event: the display name
// lowercased with spaces replaced by underscores ("100_yard_freestyle").
func (e Event) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(e)), " ", "_")
}

// EventBySlug resolves a form-field prefix back to its Event.
// The second return value is false for unknown slugs.
func EventBySlug(slug string) (Event, bool) {
	for _, e := range EventOrder {
		if e.Slug() == slug {
			return e, true
		}
	}
	return "", false
}
