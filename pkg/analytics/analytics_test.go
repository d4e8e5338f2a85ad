package analytics

import (
	"testing"

	"github.com/jordanlanch/nexuscrm/pkg/models"
	"github.com/jordanlanch/nexuscrm/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLeads() []models.Lead {
	return []models.Lead{
		{ID: "a", Stage: models.StageClosedWon, DealValue: 5000, AIScore: 80, Source: models.SourceGoogleAds, OwnerID: "u2"},
		{ID: "b", Stage: models.StageClosedWon, DealValue: 3000, AIScore: 71, Source: models.SourceFacebookAds, OwnerID: "u2"},
		{ID: "c", Stage: models.StageClosedLost, DealValue: 2000, AIScore: 50, Source: models.SourceGoogleAds, OwnerID: "u4"},
		{ID: "d", Stage: models.StageNewLead, DealValue: 1000, AIScore: 60, Source: models.SourceGoogleAds, OwnerID: "u4"},
	}
}

func TestDashboard(t *testing.T) {
	t.Run("Success - aggregates", func(t *testing.T) {
		campaigns := []models.Campaign{
			{ID: "c1", Spent: 100, ROI: 2.0},
			{ID: "c2", Spent: 300, ROI: 3.0},
		}

		sum := Dashboard(testLeads(), campaigns)

		assert.Equal(t, 4, sum.TotalLeads)
		assert.Equal(t, 8000, sum.Revenue)
		assert.Equal(t, 1, sum.ActiveDeals)
		assert.Equal(t, 65, sum.AvgAIScore)
		assert.Equal(t, 400, sum.TotalAdSpend)
		assert.InDelta(t, 2.5, sum.AvgROI, 1e-9)
		assert.InDelta(t, 9600, sum.PredictedRevenue, 1e-9)
		assert.InDelta(t, 50, sum.ConversionRate, 1e-9)
	})

	t.Run("Success - empty collections yield zeros", func(t *testing.T) {
		sum := Dashboard(nil, nil)

		assert.Equal(t, Summary{}, sum)
	})
}

func TestFunnel(t *testing.T) {
	funnel := Funnel(testLeads())

	require.Len(t, funnel, len(models.AllDealStages()))
	assert.Equal(t, models.StageNewLead, funnel[0].Stage)
	assert.Equal(t, 1, funnel[0].Count)
	assert.Equal(t, 1000, funnel[0].DealValue)
	assert.InDelta(t, 25, funnel[0].Share, 1e-9)

	won := funnel[5]
	assert.Equal(t, models.StageClosedWon, won.Stage)
	assert.Equal(t, 2, won.Count)
	assert.Equal(t, 8000, won.DealValue)

	assert.Zero(t, funnel[1].Count)
	assert.Zero(t, funnel[1].Share)
}

func TestBySource(t *testing.T) {
	sources := BySource(testLeads())

	require.Len(t, sources, 2)
	assert.Equal(t, models.SourceGoogleAds, sources[0].Source)
	assert.Equal(t, 3, sources[0].Leads)
	assert.Equal(t, 1, sources[0].Won)
	assert.InDelta(t, 33.3, sources[0].ConversionRate, 1e-9)
	assert.Equal(t, models.SourceFacebookAds, sources[1].Source)
	assert.InDelta(t, 100, sources[1].ConversionRate, 1e-9)

	assert.Empty(t, BySource(nil))
}

func TestCampaignPerformance(t *testing.T) {
	stats := CampaignPerformance([]models.Campaign{
		{ID: "c1", Budget: 5000, Spent: 2340, Clicks: 1200, Conversions: 85},
		{ID: "over", Budget: 100, Spent: 150},
		{ID: "draft"},
	})

	require.Len(t, stats, 3)

	assert.Equal(t, "c1", stats[0].ID)
	assert.Equal(t, 2660, stats[0].RemainingBudget)
	assert.InDelta(t, 46.8, stats[0].BudgetUtilization, 1e-9)
	assert.InDelta(t, 7.1, stats[0].ConversionRate, 1e-9)
	assert.InDelta(t, 27.53, stats[0].CostPerConversion, 1e-9)

	assert.Equal(t, -50, stats[1].RemainingBudget)
	assert.InDelta(t, 150, stats[1].BudgetUtilization, 1e-9)

	assert.Zero(t, stats[2].BudgetUtilization)
	assert.Zero(t, stats[2].ConversionRate)
	assert.Zero(t, stats[2].CostPerConversion)
}

func TestTeamPerformance(t *testing.T) {
	users := []models.User{
		{ID: "u1", Name: "Alex Admin", Role: models.RoleAdmin},
		{ID: "u2", Name: "Sarah Sales", Role: models.RoleSalesManager},
		{ID: "u3", Name: "Mike Marketing", Role: models.RoleMarketingManager},
		{ID: "u4", Name: "John Exec", Role: models.RoleSalesExecutive},
		{ID: "u5", Name: "Nora", Role: models.Role("Inside Sales")},
	}

	team := TeamPerformance(users, testLeads())

	require.Len(t, team, 3)
	assert.Equal(t, "u2", team[0].UserID)
	assert.Equal(t, 2, team[0].Leads)
	assert.Equal(t, 2, team[0].DealsWon)
	assert.Equal(t, 8000, team[0].Revenue)
	assert.InDelta(t, 100, team[0].ConversionRate, 1e-9)

	assert.Equal(t, "u4", team[1].UserID)
	assert.Equal(t, 2, team[1].Leads)
	assert.Zero(t, team[1].DealsWon)
	assert.Equal(t, 1000, team[1].PipelineValue)

	assert.Equal(t, "u5", team[2].UserID)
	assert.Zero(t, team[2].Leads)
	assert.Zero(t, team[2].ConversionRate)
}

func TestService(t *testing.T) {
	s := store.NewFromSeed(store.Data{
		Users:     []models.User{{ID: "u2", Name: "Sarah Sales", Role: models.RoleSalesManager}},
		Leads:     testLeads(),
		Campaigns: []models.Campaign{{ID: "c1", Budget: 10, Spent: 5, ROI: 1}},
	})
	service := NewService(s)

	assert.Equal(t, 4, service.Dashboard().TotalLeads)
	assert.Len(t, service.Funnel(), 7)
	assert.Len(t, service.Sources(), 2)
	assert.Equal(t, 5, service.Campaigns()[0].RemainingBudget)
	assert.Equal(t, 2, service.Team()[0].Leads)

	s.MoveLeadStage("d", models.StageClosedWon)
	assert.Equal(t, 9000, service.Dashboard().Revenue)
}
