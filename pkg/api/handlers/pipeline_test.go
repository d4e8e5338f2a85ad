package handlers

import (
	"net/http"
	"testing"

	"github.com/jordanlanch/nexuscrm/pkg/leadlifecycle"
	"github.com/jordanlanch/nexuscrm/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineHandler_MoveStage(t *testing.T) {
	t.Run("Success - records status change", func(t *testing.T) {
		env := newTestEnv(t)
		h := NewPipelineHandler(env.lifecycle)
		c, rec := newContext(http.MethodPost, "/api/v1/leads/l1/stage", `{"stage":"Demo Scheduled"}`, "id", "l1")

		require.NoError(t, h.MoveStage(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var lead models.Lead
		decode(t, rec, &lead)
		assert.Equal(t, models.StageDemoScheduled, lead.Stage)

		acts := env.store.Activities()
		require.Len(t, acts, 1)
		assert.Equal(t, "Stage changed from New Lead to Demo Scheduled", acts[0].Description)
		assert.Equal(t, "u1", acts[0].UserID)
	})

	t.Run("Error - unknown stage", func(t *testing.T) {
		env := newTestEnv(t)
		h := NewPipelineHandler(env.lifecycle)
		c, rec := newContext(http.MethodPost, "/api/v1/leads/l1/stage", `{"stage":"Won"}`, "id", "l1")

		require.NoError(t, h.MoveStage(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, env.store.Activities())
	})

	t.Run("Error - missing stage", func(t *testing.T) {
		env := newTestEnv(t)
		h := NewPipelineHandler(env.lifecycle)
		c, rec := newContext(http.MethodPost, "/api/v1/leads/l1/stage", `{}`, "id", "l1")

		require.NoError(t, h.MoveStage(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Error - unknown lead", func(t *testing.T) {
		env := newTestEnv(t)
		h := NewPipelineHandler(env.lifecycle)
		c, rec := newContext(http.MethodPost, "/api/v1/leads/nope/stage", `{"stage":"Negotiation"}`, "id", "nope")

		require.NoError(t, h.MoveStage(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestPipelineHandler_Drop(t *testing.T) {
	t.Run("Success - dropped on a card takes its stage", func(t *testing.T) {
		env := newTestEnv(t)
		h := NewPipelineHandler(env.lifecycle)
		c, rec := newContext(http.MethodPost, "/api/v1/pipeline/drop", `{"leadId":"l1","overId":"l2"}`)

		require.NoError(t, h.Drop(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		lead, _ := env.store.Lead("l1")
		assert.Equal(t, models.StageProposalSent, lead.Stage)
	})

	t.Run("Error - unknown target", func(t *testing.T) {
		env := newTestEnv(t)
		h := NewPipelineHandler(env.lifecycle)
		c, rec := newContext(http.MethodPost, "/api/v1/pipeline/drop", `{"leadId":"l1","overId":"trash"}`)

		require.NoError(t, h.Drop(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		lead, _ := env.store.Lead("l1")
		assert.Equal(t, models.StageNewLead, lead.Stage)
	})
}

func TestPipelineHandler_BoardAndHistory(t *testing.T) {
	env := newTestEnv(t)
	h := NewPipelineHandler(env.lifecycle)
	env.store.MoveLeadStage("l1", models.StageAINurturing)

	c, rec := newContext(http.MethodGet, "/api/v1/pipeline/board", "")
	require.NoError(t, h.Board(c))

	var columns []leadlifecycle.Column
	decode(t, rec, &columns)
	require.Len(t, columns, len(leadlifecycle.BoardStages()))
	for _, col := range columns {
		assert.NotEqual(t, models.StageClosedLost, col.Stage)
		if col.Stage == models.StageAINurturing {
			assert.Equal(t, 1, col.Count)
			assert.Equal(t, 2000, col.TotalValue)
		}
	}

	c, rec = newContext(http.MethodGet, "/api/v1/leads/l1/stage-history", "", "id", "l1")
	require.NoError(t, h.History(c))

	var history []models.Activity
	decode(t, rec, &history)
	require.Len(t, history, 1)
	assert.Equal(t, models.ActivityStatusChange, history[0].Type)
}
