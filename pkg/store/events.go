package store

import (
	"time"

	"github.com/jordanlanch/nexuscrm/pkg/models"
)

// EventKind names a state change observed on the store.
type EventKind string

const (
	EventLeadAdded      EventKind = "lead.added"
	EventLeadUpdated    EventKind = "lead.updated"
	EventLeadStageMoved EventKind = "lead.stage_moved"
	EventActivityAdded  EventKind = "activity.added"
	EventFeedLinked     EventKind = "feed.linked"
	EventSessionChanged EventKind = "session.changed"
)

// Event describes one effective mutation. No-op mutations produce no event.
type Event struct {
	Kind      EventKind        `json:"kind"`
	LeadID    string           `json:"leadId,omitempty"`
	FeedID    string           `json:"feedId,omitempty"`
	Activity  *models.Activity `json:"activity,omitempty"`
	FromStage models.DealStage `json:"fromStage,omitempty"`
	ToStage   models.DealStage `json:"toStage,omitempty"`
	At        time.Time        `json:"at"`
}

// Listener is notified after a mutation has been applied and the store unlocked.
type Listener func(Event)

// Subscribe registers l and returns a function that removes it.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	id := s.nextListener
	s.nextListener++
	s.listeners[id] = l

	return func() {
		s.listenersMu.Lock()
		delete(s.listeners, id)
		s.listenersMu.Unlock()
	}
}

func (s *Store) emit(events ...Event) {
	if len(events) == 0 {
		return
	}

	s.listenersMu.Lock()
	ls := make([]Listener, 0, len(s.listeners))
	for i := 0; i < s.nextListener; i++ {
		if l, ok := s.listeners[i]; ok {
			ls = append(ls, l)
		}
	}
	s.listenersMu.Unlock()

	for _, e := range events {
		for _, l := range ls {
			l(e)
		}
	}
}
