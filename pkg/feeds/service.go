// Package feeds serves published content items and their links to leads.
package feeds

import (
	"slices"

	"github.com/jordanlanch/nexuscrm/pkg/domain"
	"github.com/jordanlanch/nexuscrm/pkg/logger"
	"github.com/jordanlanch/nexuscrm/pkg/models"
	"github.com/jordanlanch/nexuscrm/pkg/store"
)

// AllTypes disables the type filter in List.
const AllTypes = "All"

// LinkRequest represents a request to attribute a lead to a feed item.
type LinkRequest struct {
	LeadID string `json:"leadId" validate:"required"`
}

// Service handles feed items.
type Service struct {
	store *store.Store
	log   logger.Logger
}

// NewService creates a new feed service.
func NewService(s *store.Store, log logger.Logger) *Service {
	return &Service{store: s, log: log}
}

// List returns feed items of the given type. An empty type or AllTypes
// returns every item.
func (s *Service) List(feedType string) ([]models.FeedItem, error) {
	all := s.store.Feeds()
	if feedType == "" || feedType == AllTypes {
		return all, nil
	}

	t := models.FeedType(feedType)
	if !t.IsValid() {
		return nil, domain.NewValidationError("unknown feed type: " + feedType)
	}
	return slices.DeleteFunc(all, func(f models.FeedItem) bool { return f.Type != t }), nil
}

// Get returns a single feed item.
func (s *Service) Get(feedID string) (models.FeedItem, error) {
	f, ok := s.store.Feed(feedID)
	if !ok {
		return models.FeedItem{}, domain.NewNotFoundError("feed item")
	}
	return f, nil
}

// Link attributes a lead to a feed item and returns the updated item.
// Linking an already linked lead records it again.
func (s *Service) Link(feedID string, req LinkRequest) (models.FeedItem, error) {
	if _, err := s.Get(feedID); err != nil {
		return models.FeedItem{}, err
	}
	if _, ok := s.store.Lead(req.LeadID); !ok {
		return models.FeedItem{}, domain.NewNotFoundError("lead")
	}

	s.store.LinkFeedToLead(feedID, req.LeadID)
	s.log.Info("feed linked to lead", "feed_id", feedID, "lead_id", req.LeadID)
	return s.Get(feedID)
}

// LinkedLeads returns the leads linked from a feed item, in lead order.
// Each lead appears once however many times it was linked, and links to
// leads that do not exist are skipped.
func (s *Service) LinkedLeads(feedID string) ([]models.Lead, error) {
	f, err := s.Get(feedID)
	if err != nil {
		return nil, err
	}

	out := []models.Lead{}
	for _, l := range s.store.Leads() {
		if f.Links(l.ID) {
			out = append(out, l)
		}
	}
	return out, nil
}
