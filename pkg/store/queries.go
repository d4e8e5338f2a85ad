package store

import (
	"slices"

	"github.com/jordanlanch/nexuscrm/pkg/models"
)

// Leads returns a copy of all leads in insertion order.
func (s *Store) Leads() []models.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneLeads(s.leads)
}

// Lead returns the lead with the given id.
func (s *Store) Lead(id string) (models.Lead, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.leadIndex(id)
	if i < 0 {
		return models.Lead{}, false
	}
	return s.leads[i].Clone(), true
}

// Users returns a copy of all users.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.users)
}

// User returns the user with the given id.
func (s *Store) User(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findUser(id)
}

// Activities returns a copy of all activities, most recently added first.
func (s *Store) Activities() []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.activities)
}

// Campaigns returns a copy of all campaigns.
func (s *Store) Campaigns() []models.Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.campaigns)
}

// Feeds returns a copy of all feed items.
func (s *Store) Feeds() []models.FeedItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneFeeds(s.feeds)
}

// Feed returns the feed item with the given id.
func (s *Store) Feed(id string) (models.FeedItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := slices.IndexFunc(s.feeds, func(f models.FeedItem) bool { return f.ID == id })
	if i < 0 {
		return models.FeedItem{}, false
	}
	return s.feeds[i].Clone(), true
}

// CurrentUser returns the user new records are attributed to, if any.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.currentUser == nil {
		return models.User{}, false
	}
	return *s.currentUser, true
}

// SelectedLeadID returns the selected lead id, if any.
func (s *Store) SelectedLeadID() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selectedLeadID == nil {
		return "", false
	}
	return *s.selectedLeadID, true
}

// IsAddLeadModalOpen reports whether the add-lead form is open.
func (s *Store) IsAddLeadModalOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.addLeadModalOpen
}

// Snapshot returns a consistent copy of the whole state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Leads:              cloneLeads(s.leads),
		Users:              slices.Clone(s.users),
		Activities:         slices.Clone(s.activities),
		Campaigns:          slices.Clone(s.campaigns),
		Feeds:              cloneFeeds(s.feeds),
		IsAddLeadModalOpen: s.addLeadModalOpen,
	}
	if s.currentUser != nil {
		u := *s.currentUser
		snap.CurrentUser = &u
	}
	if s.selectedLeadID != nil {
		id := *s.selectedLeadID
		snap.SelectedLeadID = &id
	}
	return snap
}

func cloneLeads(in []models.Lead) []models.Lead {
	out := make([]models.Lead, len(in))
	for i, l := range in {
		out[i] = l.Clone()
	}
	return out
}

func cloneFeeds(in []models.FeedItem) []models.FeedItem {
	out := make([]models.FeedItem, len(in))
	for i, f := range in {
		out[i] = f.Clone()
	}
	return out
}
