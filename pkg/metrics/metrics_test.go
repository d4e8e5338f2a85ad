package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jordanlanch/nexuscrm/pkg/domain"
	"github.com/jordanlanch/nexuscrm/pkg/models"
	"github.com/jordanlanch/nexuscrm/pkg/store"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/v1/leads/:id", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "nope")
	})

	for _, path := range []string{"/api/v1/leads/l1", "/api/v1/leads/l2", "/boom"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/leads/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/boom", "418")))
}

func TestStoreListener(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	s := store.NewFromSeed(store.Data{
		Leads: []models.Lead{{ID: "l1", Stage: models.StageNewLead}},
		Feeds: []models.FeedItem{{ID: "f1"}},
	}, store.WithClock(domain.FixedClock{}))
	s.Subscribe(m.StoreListener())

	s.AddLead(models.Lead{ID: "l2", Stage: models.StageNewLead})
	s.MoveLeadStage("l1", models.StageDemoScheduled)
	s.MoveLeadStage("l1", models.StageDemoScheduled)
	s.AddActivity(models.Activity{ID: "a", LeadID: "l1", Type: models.ActivityCall})
	s.LinkFeedToLead("f1", "l1")
	s.LinkFeedToLead("f9", "l1")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.LeadsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StageTransitions.WithLabelValues("New Lead", "Demo Scheduled")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ActivitiesRecorded.WithLabelValues("Status Change")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ActivitiesRecorded.WithLabelValues("Call")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FeedLinks))
}

func TestHandler(t *testing.T) {
	m := New()
	m.SetFollowUpsDue(3)
	m.RecordExport("leads", "csv")
	m.RecordCacheHit("redis")
	m.RecordCacheMiss("redis")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "crm_followups_due 3")
	assert.Contains(t, body, `crm_exports_created_total{format="csv",report="leads"} 1`)
	assert.Contains(t, body, `cache_hits_total{cache_type="redis"} 1`)
	assert.Contains(t, body, "go_goroutines")
}
