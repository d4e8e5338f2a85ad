package leads

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/jordanlanch/nexuscrm/pkg/domain"
	"github.com/jordanlanch/nexuscrm/pkg/logger"
	"github.com/jordanlanch/nexuscrm/pkg/models"
	"github.com/jordanlanch/nexuscrm/pkg/store"
)

// Service handles lead creation, updates and listing on top of the store.
type Service struct {
	store     *store.Store
	builder   *Builder
	validator *validator.Validate
	log       logger.Logger
}

// NewService creates a new lead service.
func NewService(s *store.Store, builder *Builder, log logger.Logger) *Service {
	return &Service{
		store:     s,
		builder:   builder,
		validator: validator.New(),
		log:       log,
	}
}

// Create builds a lead owned by the current user and adds it to the store.
func (s *Service) Create(ctx context.Context, req CreateLeadRequest) (models.Lead, error) {
	owner, ok := s.store.CurrentUser()
	if !ok {
		return models.Lead{}, domain.NewUnauthorizedError()
	}

	lead, err := s.builder.Build(req, owner)
	if err != nil {
		return models.Lead{}, err
	}

	s.store.AddLead(lead)
	s.log.Info("lead created", "lead_id", lead.ID, "owner_id", owner.ID, "source", lead.Source)
	return lead, nil
}

// Get returns a single lead.
func (s *Service) Get(id string) (models.Lead, error) {
	lead, ok := s.store.Lead(id)
	if !ok {
		return models.Lead{}, domain.NewNotFoundError("lead")
	}
	return lead, nil
}

// Update applies a partial update and returns the updated lead.
func (s *Service) Update(id string, upd models.LeadUpdate) (models.Lead, error) {
	if err := s.validator.Struct(upd); err != nil {
		return models.Lead{}, domain.NewValidationError(describe(err))
	}
	if upd.Source != nil && !upd.Source.IsValid() {
		return models.Lead{}, domain.NewValidationError("unknown source")
	}
	if upd.Priority != nil && !upd.Priority.IsValid() {
		return models.Lead{}, domain.NewValidationError("unknown priority")
	}
	if upd.Status != nil && !upd.Status.IsValid() {
		return models.Lead{}, domain.NewValidationError("unknown status")
	}
	if _, ok := s.store.Lead(id); !ok {
		return models.Lead{}, domain.NewNotFoundError("lead")
	}

	s.store.UpdateLead(id, upd)
	return s.Get(id)
}

// List returns the leads matching f.
func (s *Service) List(f Filter) []models.Lead {
	return Search(s.store.Leads(), s.store.Feeds(), f)
}
