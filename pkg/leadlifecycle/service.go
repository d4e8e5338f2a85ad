package leadlifecycle

import (
	"slices"

	"github.com/jordanlanch/nexuscrm/pkg/domain"
	"github.com/jordanlanch/nexuscrm/pkg/logger"
	"github.com/jordanlanch/nexuscrm/pkg/models"
	"github.com/jordanlanch/nexuscrm/pkg/store"
)

// Service handles pipeline stage transitions.
type Service struct {
	store *store.Store
	log   logger.Logger
}

// NewService creates a new lead lifecycle service.
func NewService(s *store.Store, log logger.Logger) *Service {
	return &Service{store: s, log: log}
}

// MoveStageRequest represents a request to move a lead to another stage.
type MoveStageRequest struct {
	Stage string `json:"stage" validate:"required"`
}

// DropRequest represents a card dropped on the board. OverID is either a
// stage name (a column) or the id of another lead (a card in a column).
type DropRequest struct {
	LeadID string `json:"leadId" validate:"required"`
	OverID string `json:"overId" validate:"required"`
}

// Column is one Kanban column.
type Column struct {
	Stage      models.DealStage `json:"stage"`
	Leads      []models.Lead    `json:"leads"`
	Count      int              `json:"count"`
	TotalValue int              `json:"totalValue"`
}

// Stages returns every pipeline stage in pipeline order.
func Stages() []models.DealStage {
	return models.AllDealStages()
}

// IsTerminal reports whether stage closes the deal. Leads may still leave a
// terminal stage.
func IsTerminal(stage models.DealStage) bool {
	return stage == models.StageClosedWon || stage == models.StageClosedLost
}

// BoardStages returns the stages shown as board columns.
func BoardStages() []models.DealStage {
	return slices.DeleteFunc(Stages(), func(s models.DealStage) bool {
		return s == models.StageClosedLost
	})
}

// MoveStage moves a lead to stage. Moving a lead to the stage it is already
// in changes nothing.
func (s *Service) MoveStage(leadID string, stage models.DealStage) (models.Lead, error) {
	if !stage.IsValid() {
		return models.Lead{}, domain.NewValidationError("unknown stage: " + string(stage))
	}

	lead, ok := s.store.Lead(leadID)
	if !ok {
		return models.Lead{}, domain.NewNotFoundError("lead")
	}
	if lead.Stage == stage {
		return lead, nil
	}

	s.store.MoveLeadStage(leadID, stage)

	moved, ok := s.store.Lead(leadID)
	if !ok {
		return models.Lead{}, domain.NewNotFoundError("lead")
	}
	return moved, nil
}

// ResolveDrop maps a drop target to a stage: a stage name resolves to
// itself, a lead id resolves to that lead's current stage.
func (s *Service) ResolveDrop(overID string) (models.DealStage, bool) {
	if stage := models.DealStage(overID); stage.IsValid() {
		return stage, true
	}
	if over, ok := s.store.Lead(overID); ok {
		return over.Stage, true
	}
	return "", false
}

// Drop resolves the drop target and moves the dragged lead there.
func (s *Service) Drop(req DropRequest) (models.Lead, error) {
	stage, ok := s.ResolveDrop(req.OverID)
	if !ok {
		return models.Lead{}, domain.NewBadRequestError("unknown drop target: " + req.OverID)
	}

	s.log.Debug("lead dropped on board", "lead_id", req.LeadID, "over_id", req.OverID, "stage", stage)
	return s.MoveStage(req.LeadID, stage)
}

// Board groups leads into the board columns, preserving store order
// within each column.
func (s *Service) Board() []Column {
	stages := BoardStages()
	index := make(map[models.DealStage]int, len(stages))
	columns := make([]Column, len(stages))
	for i, stage := range stages {
		index[stage] = i
		columns[i] = Column{Stage: stage, Leads: []models.Lead{}}
	}

	for _, l := range s.store.Leads() {
		i, ok := index[l.Stage]
		if !ok {
			continue
		}
		columns[i].Leads = append(columns[i].Leads, l)
		columns[i].Count++
		columns[i].TotalValue += l.DealValue
	}
	return columns
}

// History returns the stage changes recorded for a lead, newest first.
func (s *Service) History(leadID string) []models.Activity {
	var out []models.Activity
	for _, a := range s.store.Activities() {
		if a.LeadID == leadID && a.Type == models.ActivityStatusChange {
			out = append(out, a)
		}
	}
	slices.SortStableFunc(out, func(a, b models.Activity) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	if out == nil {
		out = []models.Activity{}
	}
	return out
}
