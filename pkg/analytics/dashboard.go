package analytics

import (
	"math"

	"github.com/jordanlanch/nexuscrm/pkg/models"
)

// PredictedRevenueMultiplier projects closed-won revenue forward.
const PredictedRevenueMultiplier = 1.2

// Summary holds the dashboard headline metrics.
type Summary struct {
	TotalLeads       int     `json:"totalLeads"`
	Revenue          int     `json:"revenue"`
	ActiveDeals      int     `json:"activeDeals"`
	AvgAIScore       int     `json:"avgAiScore"`
	TotalAdSpend     int     `json:"totalAdSpend"`
	AvgROI           float64 `json:"avgRoi"`
	PredictedRevenue float64 `json:"predictedRevenue"`
	ConversionRate   float64 `json:"conversionRate"`
}

// Dashboard aggregates leads and campaigns into headline metrics. Averages
// over an empty collection are zero.
func Dashboard(leads []models.Lead, campaigns []models.Campaign) Summary {
	var sum Summary
	sum.TotalLeads = len(leads)

	won := 0
	aiTotal := 0
	for _, l := range leads {
		switch l.Stage {
		case models.StageClosedWon:
			sum.Revenue += l.DealValue
			won++
		case models.StageClosedLost:
		default:
			sum.ActiveDeals++
		}
		aiTotal += l.AIScore
	}
	if len(leads) > 0 {
		sum.AvgAIScore = int(math.Round(float64(aiTotal) / float64(len(leads))))
	}

	roiTotal := 0.0
	for _, c := range campaigns {
		sum.TotalAdSpend += c.Spent
		roiTotal += c.ROI
	}
	if len(campaigns) > 0 {
		sum.AvgROI = round1(roiTotal / float64(len(campaigns)))
	}

	sum.PredictedRevenue = round2(float64(sum.Revenue) * PredictedRevenueMultiplier)
	sum.ConversionRate = percent(float64(won), float64(len(leads)))
	return sum
}
