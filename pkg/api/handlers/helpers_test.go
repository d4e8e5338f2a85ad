package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jordanlanch/nexuscrm/pkg/activity"
	"github.com/jordanlanch/nexuscrm/pkg/analytics"
	"github.com/jordanlanch/nexuscrm/pkg/domain"
	"github.com/jordanlanch/nexuscrm/pkg/export"
	"github.com/jordanlanch/nexuscrm/pkg/feeds"
	"github.com/jordanlanch/nexuscrm/pkg/idgen"
	"github.com/jordanlanch/nexuscrm/pkg/insights"
	"github.com/jordanlanch/nexuscrm/pkg/leadlifecycle"
	"github.com/jordanlanch/nexuscrm/pkg/leads"
	"github.com/jordanlanch/nexuscrm/pkg/logger"
	"github.com/jordanlanch/nexuscrm/pkg/models"
	"github.com/jordanlanch/nexuscrm/pkg/seed"
	"github.com/jordanlanch/nexuscrm/pkg/store"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 2, 10, 9, 30, 0, 0, time.UTC)

type testEnv struct {
	store     *store.Store
	clock     domain.Clock
	leads     *leads.Service
	lifecycle *leadlifecycle.Service
	activity  *activity.Service
	feeds     *feeds.Service
	analytics *analytics.Service
	exporter  *export.Service
}

func testLeads() []models.Lead {
	return []models.Lead{
		{ID: "l1", Name: "Priya Patel", Company: "B.Tech CSE", Email: "priya@example.com", Phone: "+1 202 555 0101",
			Source: models.SourceWebsite, Stage: models.StageNewLead, Status: models.StatusLead, OwnerID: "u2",
			DealValue: 2000, Tags: []string{"High Intent"}, Score: 40, AIScore: 50},
		{ID: "l2", Name: "Rahul Sharma", Company: "MBA", Email: "rahul@example.com",
			Source: models.SourceGoogleAds, Stage: models.StageProposalSent, Status: models.StatusOpportunity, OwnerID: "u4",
			DealValue: 5000, Tags: []string{"Nurture"}, Score: 70, AIScore: 80},
		{ID: "l3", Name: "Anita Rao", Company: "Data Science", Email: "anita@example.com",
			Source: models.SourceLinkedIn, Stage: models.StageClosedWon, Status: models.StatusWon, OwnerID: "u2",
			DealValue: 8000, Score: 90, AIScore: 95},
		{ID: "l4", Name: "Vikram Singh", Company: "MBA", Email: "vikram@example.com",
			Source: models.SourceReferral, Stage: models.StageClosedLost, Status: models.StatusLost, OwnerID: "u4",
			DealValue: 3000, Score: 20, AIScore: 10},
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	clock := domain.FixedClock{T: testNow}
	s := store.NewFromSeed(store.Data{
		Users:         seed.Users(),
		Leads:         testLeads(),
		Campaigns:     seed.Campaigns(),
		Feeds:         seed.Feeds(testNow),
		CurrentUserID: "u1",
	}, store.WithClock(clock), store.WithIDGenerator(idgen.NewSequence("s")))

	log := logger.Nop()
	return &testEnv{
		store:     s,
		clock:     clock,
		leads:     leads.NewService(s, leads.NewBuilder(idgen.NewSequence("n"), clock), log),
		lifecycle: leadlifecycle.NewService(s, log),
		activity:  activity.NewService(s, idgen.NewSequence("a"), clock, insights.TemplateSuggester{}, log),
		feeds:     feeds.NewService(s, log),
		analytics: analytics.NewService(s),
		exporter:  export.NewService("US"),
	}
}

// newContext builds an echo context for target with a JSON body (may be
// empty) and path parameters given as name, value pairs.
func newContext(method, target, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	if len(names) > 0 {
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

type failingPinger struct{ err error }

func (p failingPinger) Ping(context.Context) error { return p.err }
