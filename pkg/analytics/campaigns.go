package analytics

import "github.com/jordanlanch/nexuscrm/pkg/models"

// CampaignStats is a campaign with its derived spend metrics.
type CampaignStats struct {
	models.Campaign
	RemainingBudget   int     `json:"remainingBudget"`
	BudgetUtilization float64 `json:"budgetUtilization"`
	ConversionRate    float64 `json:"conversionRate"`
	CostPerConversion float64 `json:"costPerConversion"`
}

// CampaignPerformance derives spend metrics for every campaign, preserving
// order. Remaining budget goes negative when a campaign overspends.
func CampaignPerformance(campaigns []models.Campaign) []CampaignStats {
	out := make([]CampaignStats, 0, len(campaigns))
	for _, c := range campaigns {
		st := CampaignStats{
			Campaign:          c,
			RemainingBudget:   c.Budget - c.Spent,
			BudgetUtilization: percent(float64(c.Spent), float64(c.Budget)),
			ConversionRate:    percent(float64(c.Conversions), float64(c.Clicks)),
		}
		if c.Conversions > 0 {
			st.CostPerConversion = round2(float64(c.Spent) / float64(c.Conversions))
		}
		out = append(out, st)
	}
	return out
}
