// Package analytics computes read-only projections over the store. Every
// view is recomputed on each call.
package analytics

import (
	"math"

	"github.com/jordanlanch/nexuscrm/pkg/store"
)

// Service exposes the analytics views over the live store.
type Service struct {
	store *store.Store
}

// NewService creates a new analytics service
func NewService(s *store.Store) *Service {
	return &Service{store: s}
}

// Dashboard returns the headline metrics.
func (s *Service) Dashboard() Summary {
	return Dashboard(s.store.Leads(), s.store.Campaigns())
}

// Funnel returns lead counts per pipeline stage.
func (s *Service) Funnel() []StageCount {
	return Funnel(s.store.Leads())
}

// Sources returns lead counts per acquisition channel.
func (s *Service) Sources() []SourceCount {
	return BySource(s.store.Leads())
}

// Campaigns returns derived campaign performance.
func (s *Service) Campaigns() []CampaignStats {
	return CampaignPerformance(s.store.Campaigns())
}

// Team returns the sales team report.
func (s *Service) Team() []TeamMember {
	return TeamPerformance(s.store.Users(), s.store.Leads())
}

// percent returns part/whole as a percentage rounded to one decimal, or
// zero when whole is zero.
func percent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return round1(part / whole * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
