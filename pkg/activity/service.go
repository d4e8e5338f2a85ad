package activity

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jordanlanch/nexuscrm/pkg/domain"
	"github.com/jordanlanch/nexuscrm/pkg/logger"
	"github.com/jordanlanch/nexuscrm/pkg/models"
	"github.com/jordanlanch/nexuscrm/pkg/store"
)

// DefaultInsightTimeout bounds a background insight request.
const DefaultInsightTimeout = 30 * time.Second

// Service handles the activity timeline of leads.
type Service struct {
	store          *store.Store
	ids            domain.IDGenerator
	clock          domain.Clock
	suggester      domain.ContentSuggester
	log            logger.Logger
	validator      *validator.Validate
	insightTimeout time.Duration

	inflight sync.WaitGroup
}

// Option configures a Service.
type Option func(*Service)

// WithInsightTimeout overrides DefaultInsightTimeout.
func WithInsightTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.insightTimeout = d
		}
	}
}

// NewService creates a new activity service.
func NewService(
	s *store.Store,
	ids domain.IDGenerator,
	clock domain.Clock,
	suggester domain.ContentSuggester,
	log logger.Logger,
	opts ...Option,
) *Service {
	svc := &Service{
		store:          s,
		ids:            ids,
		clock:          clock,
		suggester:      suggester,
		log:            log,
		validator:      validator.New(),
		insightTimeout: DefaultInsightTimeout,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// CreateNoteRequest represents a note typed on the lead detail view.
type CreateNoteRequest struct {
	Content string `json:"content" validate:"max=10000"`
}

// LogActivityRequest represents a manually logged touchpoint.
type LogActivityRequest struct {
	Type        models.ActivityType `json:"type" validate:"required"`
	Description string              `json:"description" validate:"required,max=10000"`
}

// loggable lists the activity types users may record by hand. Status changes
// and AI insights are only produced by the system.
var loggable = []models.ActivityType{
	models.ActivityCall,
	models.ActivityEmail,
	models.ActivityMeeting,
	models.ActivityNote,
	models.ActivityCampaignInteraction,
}

// AddNote records a note by the current user.
func (s *Service) AddNote(leadID string, req CreateNoteRequest) (models.Activity, error) {
	if strings.TrimSpace(req.Content) == "" {
		return models.Activity{}, domain.NewValidationError("note content is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return models.Activity{}, domain.NewValidationError("note content is too long")
	}
	return s.record(leadID, models.ActivityNote, req.Content)
}

// Log records a call, email, meeting or other manual touchpoint by the
// current user.
func (s *Service) Log(leadID string, req LogActivityRequest) (models.Activity, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Activity{}, domain.NewValidationError("type and description are required")
	}
	if !slices.Contains(loggable, req.Type) {
		return models.Activity{}, domain.NewValidationError("activity type cannot be logged manually: " + string(req.Type))
	}
	return s.record(leadID, req.Type, req.Description)
}

func (s *Service) record(leadID string, typ models.ActivityType, description string) (models.Activity, error) {
	user, ok := s.store.CurrentUser()
	if !ok {
		return models.Activity{}, domain.NewUnauthorizedError()
	}
	if _, ok := s.store.Lead(leadID); !ok {
		return models.Activity{}, domain.NewNotFoundError("lead")
	}

	a := models.Activity{
		ID:          s.ids.NextID(),
		LeadID:      leadID,
		Type:        typ,
		Description: description,
		Timestamp:   s.clock.Now(),
		UserID:      user.ID,
	}
	s.store.AddActivity(a)
	s.log.Info("activity recorded", "lead_id", leadID, "type", typ, "user_id", user.ID)
	return a, nil
}

// ListByLead returns a lead's activities, newest first. Activities sharing a
// timestamp keep their store order.
func (s *Service) ListByLead(leadID string) []models.Activity {
	out := []models.Activity{}
	for _, a := range s.store.Activities() {
		if a.LeadID == leadID {
			out = append(out, a)
		}
	}
	slices.SortStableFunc(out, func(a, b models.Activity) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return out
}

// GenerateInsight drafts outreach content for a lead and records it as an
// AI Insight attributed to the system user.
func (s *Service) GenerateInsight(ctx context.Context, leadID string) (models.Activity, error) {
	lead, ok := s.store.Lead(leadID)
	if !ok {
		return models.Activity{}, domain.NewNotFoundError("lead")
	}

	text, err := s.suggester.Suggest(ctx, lead)
	if err != nil {
		return models.Activity{}, domain.NewUnavailableError("content suggester", err)
	}

	a := models.Activity{
		ID:          s.ids.NextID(),
		LeadID:      leadID,
		Type:        models.ActivityAIInsight,
		Description: text,
		Timestamp:   s.clock.Now(),
		UserID:      models.SystemUserID,
	}
	s.store.AddActivity(a)
	s.log.Info("ai insight generated", "lead_id", leadID)
	return a, nil
}

// RequestInsight starts GenerateInsight in the background and returns once
// the lead is known to exist. The insight is recorded even if the caller has
// gone away; the request is only bounded by the insight timeout.
func (s *Service) RequestInsight(leadID string) error {
	if _, ok := s.store.Lead(leadID); !ok {
		return domain.NewNotFoundError("lead")
	}

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.insightTimeout)
		defer cancel()

		if _, err := s.GenerateInsight(ctx, leadID); err != nil {
			s.log.Error("ai insight failed", "lead_id", leadID, "error", err)
		}
	}()
	return nil
}

// Wait blocks until every background insight request has finished.
func (s *Service) Wait() {
	s.inflight.Wait()
}
