// Package store holds the in-memory CRM state: leads, users, activities,
// campaigns, feeds and the UI selection state, plus the mutations on them.
//
// Mutations never fail. Targeting an unknown id is a silent no-op for lead
// updates and stage moves, and creates a dangling reference for activities
// and feed links.
package store

import (
	"fmt"
	"slices"
	"sync"

	"github.com/jordanlanch/nexuscrm/pkg/domain"
	"github.com/jordanlanch/nexuscrm/pkg/idgen"
	"github.com/jordanlanch/nexuscrm/pkg/logger"
	"github.com/jordanlanch/nexuscrm/pkg/models"
)

// Data is the initial content of a store.
type Data struct {
	Users         []models.User
	Leads         []models.Lead
	Activities    []models.Activity
	Campaigns     []models.Campaign
	Feeds         []models.FeedItem
	CurrentUserID string
}

// Snapshot is a copy of the whole store state.
type Snapshot struct {
	Leads              []models.Lead     `json:"leads"`
	Users              []models.User     `json:"users"`
	Activities         []models.Activity `json:"activities"`
	Campaigns          []models.Campaign `json:"campaigns"`
	Feeds              []models.FeedItem `json:"feeds"`
	CurrentUser        *models.User      `json:"currentUser"`
	SelectedLeadID     *string           `json:"selectedLeadId"`
	IsAddLeadModalOpen bool              `json:"isAddLeadModalOpen"`
}

// Store is the single source of truth for CRM state. It is safe for
// concurrent use; each mutation runs to completion under the write lock.
type Store struct {
	mu    sync.RWMutex
	clock domain.Clock
	ids   domain.IDGenerator
	log   logger.Logger

	leads      []models.Lead
	users      []models.User
	activities []models.Activity
	campaigns  []models.Campaign
	feeds      []models.FeedItem

	currentUser      *models.User
	selectedLeadID   *string
	addLeadModalOpen bool

	listenersMu  sync.Mutex
	listeners    map[int]Listener
	nextListener int
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used to stamp stage moves.
func WithClock(c domain.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithIDGenerator sets the generator for synthesized activity ids.
func WithIDGenerator(g domain.IDGenerator) Option {
	return func(s *Store) { s.ids = g }
}

// WithLogger sets the store logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		clock:      domain.SystemClock{},
		ids:        idgen.UUID{Length: 9},
		log:        logger.Nop(),
		leads:      []models.Lead{},
		users:      []models.User{},
		activities: []models.Activity{},
		campaigns:  []models.Campaign{},
		feeds:      []models.FeedItem{},
		listeners:  map[int]Listener{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromSeed creates a store initialised with data. The current user is
// resolved from data.CurrentUserID; an unknown id leaves it unset.
func NewFromSeed(data Data, opts ...Option) *Store {
	s := New(opts...)

	s.users = append(s.users, data.Users...)
	s.campaigns = append(s.campaigns, data.Campaigns...)
	s.activities = append(s.activities, data.Activities...)
	for _, l := range data.Leads {
		s.leads = append(s.leads, l.Clone())
	}
	for _, f := range data.Feeds {
		s.feeds = append(s.feeds, f.Clone())
	}
	if u, ok := s.findUser(data.CurrentUserID); ok {
		s.currentUser = &u
	}

	s.log.Info("store seeded",
		"users", len(s.users),
		"leads", len(s.leads),
		"campaigns", len(s.campaigns),
		"feeds", len(s.feeds),
	)
	return s
}

// AddLead appends lead. No duplicate-id or owner check is made.
func (s *Store) AddLead(lead models.Lead) {
	lead = lead.Clone()

	s.mu.Lock()
	s.leads = append(s.leads, lead)
	s.mu.Unlock()

	s.log.Debug("lead added", "lead_id", lead.ID)
	s.emit(Event{Kind: EventLeadAdded, LeadID: lead.ID, At: s.clock.Now()})
}

// UpdateLead applies upd to the lead with the given id. Unknown ids are ignored.
func (s *Store) UpdateLead(id string, upd models.LeadUpdate) {
	s.mu.Lock()
	i := s.leadIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	upd.Apply(&s.leads[i])
	s.mu.Unlock()

	s.emit(Event{Kind: EventLeadUpdated, LeadID: id, At: s.clock.Now()})
}

// MoveLeadStage moves a lead to stage, stamps its last interaction and
// prepends a Status Change activity. A missing lead or an unchanged stage
// is a no-op, so repeated calls with the same target are idempotent.
func (s *Store) MoveLeadStage(id string, stage models.DealStage) {
	s.mu.Lock()
	i := s.leadIndex(id)
	if i < 0 || s.leads[i].Stage == stage {
		s.mu.Unlock()
		return
	}

	now := s.clock.Now()
	from := s.leads[i].Stage
	userID := models.SystemUserID
	if s.currentUser != nil {
		userID = s.currentUser.ID
	}

	activity := models.Activity{
		ID:          s.ids.NextID(),
		LeadID:      id,
		Type:        models.ActivityStatusChange,
		Description: fmt.Sprintf("Stage changed from %s to %s", from, stage),
		Timestamp:   now,
		UserID:      userID,
	}

	s.leads[i].Stage = stage
	s.leads[i].LastInteraction = now
	s.activities = slices.Insert(s.activities, 0, activity)
	s.mu.Unlock()

	s.log.Info("lead stage moved", "lead_id", id, "from", from, "to", stage, "user_id", userID)
	s.emit(
		Event{Kind: EventLeadStageMoved, LeadID: id, FromStage: from, ToStage: stage, At: now},
		Event{Kind: EventActivityAdded, LeadID: id, Activity: &activity, At: now},
	)
}

// AddActivity prepends a. The lead id is not checked.
func (s *Store) AddActivity(a models.Activity) {
	s.mu.Lock()
	s.activities = slices.Insert(s.activities, 0, a)
	s.mu.Unlock()

	s.emit(Event{Kind: EventActivityAdded, LeadID: a.LeadID, Activity: &a, At: s.clock.Now()})
}

// LinkFeedToLead appends leadID to the feed's linked leads. Linking the same
// pair twice records the lead twice. Unknown feeds are ignored.
func (s *Store) LinkFeedToLead(feedID, leadID string) {
	s.mu.Lock()
	i := slices.IndexFunc(s.feeds, func(f models.FeedItem) bool { return f.ID == feedID })
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.feeds[i].LinkedLeadIDs = append(s.feeds[i].LinkedLeadIDs, leadID)
	s.mu.Unlock()

	s.emit(Event{Kind: EventFeedLinked, FeedID: feedID, LeadID: leadID, At: s.clock.Now()})
}

// SetCurrentUser sets the user new records are attributed to. Nil clears it.
func (s *Store) SetCurrentUser(u *models.User) {
	s.mu.Lock()
	if u == nil {
		s.currentUser = nil
	} else {
		cp := *u
		s.currentUser = &cp
	}
	s.mu.Unlock()

	s.emit(Event{Kind: EventSessionChanged, At: s.clock.Now()})
}

// SetSelectedLeadID sets the lead shown in the detail panel. Nil clears it.
func (s *Store) SetSelectedLeadID(id *string) {
	s.mu.Lock()
	if id == nil {
		s.selectedLeadID = nil
	} else {
		v := *id
		s.selectedLeadID = &v
	}
	s.mu.Unlock()

	s.emit(Event{Kind: EventSessionChanged, At: s.clock.Now()})
}

// SetAddLeadModalOpen toggles the add-lead form.
func (s *Store) SetAddLeadModalOpen(open bool) {
	s.mu.Lock()
	s.addLeadModalOpen = open
	s.mu.Unlock()

	s.emit(Event{Kind: EventSessionChanged, At: s.clock.Now()})
}

func (s *Store) leadIndex(id string) int {
	return slices.IndexFunc(s.leads, func(l models.Lead) bool { return l.ID == id })
}

func (s *Store) findUser(id string) (models.User, bool) {
	i := slices.IndexFunc(s.users, func(u models.User) bool { return u.ID == id })
	if i < 0 {
		return models.User{}, false
	}
	return s.users[i], true
}
