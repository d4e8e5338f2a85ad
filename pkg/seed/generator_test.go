package seed

import (
	"fmt"
	"testing"
	"time"

	"github.com/jordanlanch/nexuscrm/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC)

func TestGenerator_LeadsShape(t *testing.T) {
	leads := NewGenerator(42, nil).Leads(DefaultLeadCount, now)
	require.Len(t, leads, DefaultLeadCount)

	owners := map[string]bool{}
	for _, u := range Users() {
		owners[u.ID] = true
	}

	for i, l := range leads {
		assert.Equal(t, fmt.Sprintf("l%d", i), l.ID)
		assert.NotEmpty(t, l.Name)
		assert.NotEmpty(t, l.Company)
		assert.Contains(t, l.Email, "@example.com")
		assert.True(t, l.Stage.IsValid(), "stage %q", l.Stage)
		assert.True(t, l.Source.IsValid(), "source %q", l.Source)
		assert.True(t, l.Priority.IsValid(), "priority %q", l.Priority)
		assert.Equal(t, models.StatusOpportunity, l.Status)
		assert.GreaterOrEqual(t, l.Score, 0)
		assert.LessOrEqual(t, l.Score, 100)
		assert.GreaterOrEqual(t, l.AIScore, 0)
		assert.LessOrEqual(t, l.AIScore, 100)
		assert.Positive(t, l.DealValue)
		assert.GreaterOrEqual(t, l.PredictedLTV, 5000)
		assert.True(t, owners[l.OwnerID], "owner %q", l.OwnerID)
		assert.Len(t, l.Tags, 1)
		assert.False(t, l.CreatedAt.After(now))
		if l.NextFollowUp != nil {
			assert.Equal(t, "2025-02-10", *l.NextFollowUp)
		}
	}
}

func TestGenerator_SeededIsReproducible(t *testing.T) {
	a := NewGenerator(7, nil).Leads(10, now)
	b := NewGenerator(7, nil).Leads(10, now)
	assert.Equal(t, a, b)
}

func TestAIScore_Clamped(t *testing.T) {
	assert.Equal(t, 100, aiScore(99, 1.2))
	assert.Equal(t, 0, aiScore(0, 0.8))
	assert.Equal(t, 40, aiScore(50, 0.8))
}

func TestDefault(t *testing.T) {
	data := Default(now, 1, DefaultLeadCount)

	assert.Len(t, data.Users, 4)
	assert.Len(t, data.Campaigns, 4)
	assert.Len(t, data.Feeds, 4)
	assert.Len(t, data.Leads, DefaultLeadCount)
	assert.Equal(t, "u1", data.CurrentUserID)
	assert.Empty(t, data.Activities)
}

func TestFeeds_Fixture(t *testing.T) {
	feeds := Feeds(now)
	require.Len(t, feeds, 4)

	assert.Equal(t, []string{"l1", "l5"}, feeds[0].LinkedLeadIDs)
	assert.Equal(t, now.AddDate(0, 0, -10), feeds[3].Timestamp)
	assert.NotNil(t, feeds[2].LinkedLeadIDs)
}
