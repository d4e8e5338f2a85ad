package leads

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jordanlanch/nexuscrm/pkg/domain"
	"github.com/jordanlanch/nexuscrm/pkg/models"
)

// Defaults applied to leads created through the form.
const (
	DefaultScore    = 10
	DefaultSource   = models.SourceWebsite
	DefaultPriority = models.PriorityMedium
)

// Builder constructs fully-formed leads from form input.
type Builder struct {
	ids       domain.IDGenerator
	clock     domain.Clock
	validator *validator.Validate
}

// NewBuilder creates a lead builder.
func NewBuilder(ids domain.IDGenerator, clock domain.Clock) *Builder {
	return &Builder{
		ids:       ids,
		clock:     clock,
		validator: validator.New(),
	}
}

// Build validates the required fields of req and returns a new lead in the
// New Lead stage owned by owner. Unknown sources and priorities fall back to
// the defaults, a negative deal value becomes zero and an unparseable
// follow-up date is dropped.
func (b *Builder) Build(req CreateLeadRequest, owner models.User) (models.Lead, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Company = strings.TrimSpace(req.Company)
	req.Email = strings.TrimSpace(req.Email)

	if err := b.validator.Struct(req); err != nil {
		return models.Lead{}, domain.NewValidationError(describe(err))
	}

	now := b.clock.Now()

	source := models.LeadSource(req.Source)
	if !source.IsValid() {
		source = DefaultSource
	}

	priority := models.Priority(req.Priority)
	if !priority.IsValid() {
		priority = DefaultPriority
	}

	dealValue := int(req.DealValue)
	if dealValue < 0 {
		dealValue = 0
	}

	tags := make([]string, 0, len(req.Tags))
	for _, t := range req.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	var followUp *string
	if _, err := time.Parse(time.DateOnly, req.NextFollowUp); err == nil {
		d := req.NextFollowUp
		followUp = &d
	}

	return models.Lead{
		ID:              b.ids.NextID(),
		Name:            req.Name,
		Company:         req.Company,
		Email:           req.Email,
		Phone:           strings.TrimSpace(req.Phone),
		Source:          source,
		Campaign:        req.Campaign,
		Tags:            tags,
		Score:           DefaultScore,
		OwnerID:         owner.ID,
		CreatedAt:       now,
		LastInteraction: now,
		Status:          models.StatusLead,
		DealValue:       dealValue,
		Stage:           models.StageNewLead,
		Priority:        priority,
		NextFollowUp:    followUp,
	}, nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return "invalid fields: " + strings.Join(fields, ", ")
}
