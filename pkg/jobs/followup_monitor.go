package jobs

import (
	"slices"
	"time"

	"github.com/jordanlanch/nexuscrm/pkg/domain"
	"github.com/jordanlanch/nexuscrm/pkg/logger"
	"github.com/jordanlanch/nexuscrm/pkg/models"
	"github.com/jordanlanch/nexuscrm/pkg/store"
)

// DueGauge receives the number of follow-ups due.
type DueGauge interface {
	SetFollowUpsDue(n int)
}

// FollowUpMonitor finds open leads whose follow-up date has arrived.
type FollowUpMonitor struct {
	store *store.Store
	clock domain.Clock
	gauge DueGauge
	log   logger.Logger
}

// NewFollowUpMonitor creates a new follow-up monitor. gauge may be nil.
func NewFollowUpMonitor(s *store.Store, clock domain.Clock, gauge DueGauge, log logger.Logger) *FollowUpMonitor {
	return &FollowUpMonitor{store: s, clock: clock, gauge: gauge, log: log}
}

// Due returns open leads with a follow-up date on or before now's date,
// most overdue first. Leads in a closed stage and malformed dates are
// ignored.
func (m *FollowUpMonitor) Due(now time.Time) []models.Lead {
	today := now.Format(time.DateOnly)

	var due []models.Lead
	for _, l := range m.store.Leads() {
		if l.NextFollowUp == nil {
			continue
		}
		if l.Stage == models.StageClosedWon || l.Stage == models.StageClosedLost {
			continue
		}
		if _, err := time.Parse(time.DateOnly, *l.NextFollowUp); err != nil {
			continue
		}
		if *l.NextFollowUp <= today {
			due = append(due, l)
		}
	}

	slices.SortStableFunc(due, func(a, b models.Lead) int {
		switch {
		case *a.NextFollowUp < *b.NextFollowUp:
			return -1
		case *a.NextFollowUp > *b.NextFollowUp:
			return 1
		default:
			return 0
		}
	})
	return due
}

// Check counts due follow-ups, updates the gauge and logs the result.
func (m *FollowUpMonitor) Check() int {
	due := m.Due(m.clock.Now())

	if m.gauge != nil {
		m.gauge.SetFollowUpsDue(len(due))
	}

	if len(due) == 0 {
		m.log.Debug("no follow-ups due")
		return 0
	}

	ids := make([]string, 0, len(due))
	for _, l := range due {
		ids = append(ids, l.ID)
	}
	m.log.Info("follow-ups due", "count", len(due), "lead_ids", ids)
	return len(due)
}
